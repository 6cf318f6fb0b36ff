package cli

import (
	"github.com/spf13/cobra"

	"github.com/vslice-dev/vslice/internal/core/project"
)

var sliceCmd = &cobra.Command{
	Use:   "slice <name>",
	Short: "Add a feature slice to the current project",
	Long: `Add a feature slice under app/features/<name> with routes, models and
domain directories. Run it from anywhere inside a project.

Slice names use lowercase letters, numbers and underscores.`,
	Args: cobra.ExactArgs(1),
	RunE: runSlice,
}

func init() {
	rootCmd.AddCommand(sliceCmd)
}

func runSlice(cmd *cobra.Command, args []string) error {
	cwd, err := workingDir()
	if err != nil {
		return err
	}

	result, err := deps.Scaffolder.NewSlice(cmd.Context(), project.SliceOptions{
		Name: args[0],
		Dir:  cwd,
	})
	if err != nil {
		return err
	}

	deps.Logger.Debug("slice created", "path", result.Path)
	return nil
}
