package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vslice-dev/vslice/internal/core/project"
	"github.com/vslice-dev/vslice/internal/naming"
	"github.com/vslice-dev/vslice/internal/ui"
)

var ingredientCmd = &cobra.Command{
	Use:   "ingredient <ingredient> <slice>",
	Short: "Add a model, route and service to a slice",
	Long: `Add an ingredient to an existing slice. vslice writes
models/<ingredient>.py, routes/<ingredient>.py and
domain/<ingredient>_service.py inside the slice.

Columns are given as name:type where type is one of int, float, str,
bool or datetime. They appear in the model in the order given.

Examples:
  vslice ingredient user accounts --col name:str --col age:int
  vslice ingredient order shop --interactive`,
	Args: cobra.ExactArgs(2),
	RunE: runIngredient,
}

func init() {
	rootCmd.AddCommand(ingredientCmd)

	ingredientCmd.Flags().StringArray("col", nil, "Model column as name:type (repeatable)")
	ingredientCmd.Flags().Bool("force", false, "Overwrite existing ingredient files")
	ingredientCmd.Flags().BoolP("interactive", "i", false, "Collect columns with an interactive form")
}

func runIngredient(cmd *cobra.Command, args []string) error {
	name, slice := args[0], args[1]

	// Reject bad names before locating the project or asking any questions.
	if err := naming.Validate(slice, naming.SliceRule); err != nil {
		return err
	}
	if err := naming.Validate(name, naming.IngredientRule); err != nil {
		return err
	}

	cwd, err := workingDir()
	if err != nil {
		return err
	}
	root, err := project.FindProjectRoot(cwd)
	if err != nil {
		return err
	}

	cols, err := cmd.Flags().GetStringArray("col")
	if err != nil {
		return err
	}

	if getBoolFlag(cmd, "interactive") {
		if info, err := os.Stat(project.SlicePath(root, slice)); err != nil || !info.IsDir() {
			return &project.SliceNotFoundError{Slice: slice}
		}
		cols, err = deps.Columns.Run(cmd.Context(), name, cols)
		if err != nil {
			return err
		}
	}

	_, err = deps.Generator.Generate(cmd.Context(), project.IngredientOptions{
		ProjectRoot: root,
		Slice:       slice,
		Name:        name,
		Columns:     cols,
		Force:       getBoolFlag(cmd, "force"),
	})
	if err != nil {
		return err
	}

	return printNextSteps(cmd, ui.IngredientMarkdown(slice, name))
}
