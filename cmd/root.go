package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/deskpilot/deskpilot/internal/output"
	"github.com/deskpilot/deskpilot/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deskpilot",
	Short: "Inspect and drive the focused application's UI",
	Long:  "A desktop assistant helper that reads the focused application's accessibility tree, resolves natural-language labels to live elements, and performs actions against them.",
}

// usageError marks a failure caused by how the command was invoked
// rather than by the system. It maps to exit status 2.
type usageError struct{ error }

func usageErrorf(format string, a ...interface{}) error {
	return usageError{fmt.Errorf(format, a...)}
}

// Execute runs the root command. Exit status: 0 on success, 2 on usage
// error, 1 on any other failure.
func Execute() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	var ue usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") {
		os.Exit(2)
	}
	os.Exit(1)
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "json", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return usageErrorf("unsupported format: %s (use yaml or json)", format)
		}
		if pretty, err := cmd.Flags().GetBool("pretty"); err == nil {
			output.PrettyOutput = pretty
		}
		return nil
	}
}

// exactArgs is cobra.ExactArgs with the usage-error exit status.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageErrorf("%s requires exactly %d argument(s), got %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

// minArgs is cobra.MinimumNArgs with the usage-error exit status.
func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return usageErrorf("%s requires at least %d argument(s), got %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}
