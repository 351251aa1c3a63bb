package cmd

import (
	"github.com/deskpilot/deskpilot/internal/ax"
	"github.com/spf13/cobra"
)

var typeCmd = &cobra.Command{
	Use:   "type <text> <label>",
	Short: "Type text into the element matching a label",
	Long:  "Resolve a free-text label to a text-input element, focus it best-effort, and set its value to the given text.",
	Args:  exactArgs(2),
	RunE:  runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
	typeCmd.Flags().Bool("confirm", false, "Proceed even when the label looks destructive")
}

func runType(cmd *cobra.Command, args []string) error {
	confirmed, _ := cmd.Flags().GetBool("confirm")
	return runAction(ax.Action{Name: ax.ActionType, Target: args[1], Text: args[0]}, confirmed)
}
