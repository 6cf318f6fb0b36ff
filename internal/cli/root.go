package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vslice-dev/vslice/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "vslice",
	Short: "Scaffold vertical-slice Flask applications",
	Long: `vslice creates Flask applications organised as vertical slices.

A project holds feature slices under app/features. Each slice groups its
routes, models and domain services. Ingredients add a model, a route and a
service to a slice in one step.`,
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: ensureDependencies,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("vslice %s\n", version.GetFullVersion()))

	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: $XDG_CONFIG_HOME/vslice/config.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored and animated output")
}

// Execute runs the root command. Errors are printed as a single line on
// stderr; the caller decides the exit status.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if d := GetDeps(); d != nil {
		d.Printer.Done()
	}
	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), errorLine(err))
	}
	return err
}

// errorLine formats err as the single line printed on failure.
func errorLine(err error) string {
	msg := fmt.Sprintf("❌ %v", err)
	if d := GetDeps(); d != nil && d.Theme != nil {
		msg = d.Theme.Error.Render(msg)
	}
	return msg
}

// ensureDependencies builds the composition root from the global flags
// unless one was injected.
func ensureDependencies(cmd *cobra.Command, _ []string) error {
	if deps != nil {
		return nil
	}
	return InitDependencies(Options{
		ConfigFile: getStringFlag(cmd, "config"),
		Verbose:    getBoolFlag(cmd, "verbose"),
		NoColor:    getBoolFlag(cmd, "no-color"),
		Out:        cmd.OutOrStdout(),
	})
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// workingDir returns the directory commands operate in.
func workingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}
