package cmd

import (
	"github.com/deskpilot/deskpilot/internal/ax"
	"github.com/spf13/cobra"
)

var focusCmd = &cobra.Command{
	Use:   "focus <label>",
	Short: "Move keyboard focus to the element matching a label",
	Args:  exactArgs(1),
	RunE:  runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	focusCmd.Flags().Bool("confirm", false, "Proceed even when the label looks destructive")
}

func runFocus(cmd *cobra.Command, args []string) error {
	confirmed, _ := cmd.Flags().GetBool("confirm")
	return runAction(ax.Action{Name: ax.ActionFocus, Target: args[0]}, confirmed)
}
