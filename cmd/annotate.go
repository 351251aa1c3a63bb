package cmd

import (
	"fmt"
	"os"

	"github.com/deskpilot/deskpilot/internal/ax"
	"github.com/deskpilot/deskpilot/internal/config"
	"github.com/deskpilot/deskpilot/internal/platform"
	"github.com/deskpilot/deskpilot/internal/render"
	"github.com/spf13/cobra"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Render the focused window's snapshot as a PNG wireframe",
	Long:  "Capture the focused window's elements and draw them as labeled boxes, so you can see exactly what the planner would be shown.",
	Args:  exactArgs(0),
	RunE:  runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)
	annotateCmd.Flags().StringP("out", "o", "snapshot.png", "Output file (\"-\" for stdout)")
	annotateCmd.Flags().Int("limit", 0, "Max elements to capture (default from config)")
	annotateCmd.Flags().Int("depth", -1, "Max traversal depth (default from config)")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
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

	out, _ := cmd.Flags().GetString("out")
	if out == "-" {
		return render.WritePNG(os.Stdout, nodes)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()
	if err := render.WritePNG(f, nodes); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d elements)\n", out, len(nodes))
	return nil
}
