package cmd

import (
	"github.com/deskpilot/deskpilot/internal/ax"
	"github.com/spf13/cobra"
)

var clickCmd = &cobra.Command{
	Use:   "click <label>",
	Short: "Click the element matching a label",
	Long:  "Resolve a free-text label to a live element in the focused application and press it, falling back to a synthetic mouse click at its center.",
	Args:  exactArgs(1),
	RunE:  runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	clickCmd.Flags().Bool("confirm", false, "Proceed even when the label looks destructive")
}

func runClick(cmd *cobra.Command, args []string) error {
	confirmed, _ := cmd.Flags().GetBool("confirm")
	return runAction(ax.Action{Name: ax.ActionClick, Target: args[0]}, confirmed)
}
