package cmd

import (
	"time"

	"github.com/deskpilot/deskpilot/internal/ax"
	"github.com/deskpilot/deskpilot/internal/config"
	"github.com/deskpilot/deskpilot/internal/output"
	"github.com/deskpilot/deskpilot/internal/platform"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Capture the focused window's interesting elements",
	Long:  "Walk the focused window's accessibility tree and print a bounded list of interactive elements (role, title, enabled, frame).",
	Args:  exactArgs(0),
	RunE:  runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().Int("limit", 0, "Max elements to capture (default from config)")
	snapshotCmd.Flags().Int("depth", -1, "Max traversal depth (default from config)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	depth, _ := cmd.Flags().GetInt("depth")
	if limit <= 0 {
		limit = cfg.SnapshotLimit
	}
	if depth < 0 {
		depth = cfg.SnapshotDepth
	}

	nodes, err := ax.Capture(provider.Accessor, limit, depth)
	if err != nil {
		return err
	}
	return output.Print(output.SnapshotResult{
		TS:       time.Now().Unix(),
		Count:    len(nodes),
		Elements: nodes,
	})
}
