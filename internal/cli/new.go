package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vslice-dev/vslice/internal/core/project"
	"github.com/vslice-dev/vslice/internal/ui"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new project",
	Long: `Create a new project in ./<name>.

The project directory must not exist. vslice initializes the dependency
manifest, installs the runtime and development packages one at a time,
initializes a git repository and renders the application skeleton.

Examples:
  vslice new blog
  vslice new blog --skip-install --no-git`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().Bool("skip-install", false, "Do not run the dependency manager")
	newCmd.Flags().Bool("no-git", false, "Do not initialize a git repository")
}

func runNew(cmd *cobra.Command, args []string) error {
	cwd, err := workingDir()
	if err != nil {
		return err
	}

	cfg := deps.Config
	skipInstall := getBoolFlag(cmd, "skip-install")

	result, err := deps.Scaffolder.NewProject(cmd.Context(), project.ProjectOptions{
		Name:            args[0],
		ParentDir:       cwd,
		SkipInstall:     skipInstall,
		SkipGit:         getBoolFlag(cmd, "no-git"),
		RuntimePackages: cfg.RuntimePackages,
		DevGroup:        cfg.DevGroup,
		DevPackages:     cfg.DevPackages,
		DatabaseURL:     cfg.DatabaseURL,
	})
	deps.Printer.Done()
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		deps.Printer.Warn(w)
	}

	return printNextSteps(cmd, ui.ProjectMarkdown(args[0], cfg.Tool, skipInstall))
}

// printNextSteps renders md after a blank line.
func printNextSteps(cmd *cobra.Command, md string) error {
	out, err := deps.NextSteps.Render(md)
	if err != nil {
		deps.Logger.Debug("next steps rendering failed", "error", err)
		out = md
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "\n%s", out)
	return err
}
