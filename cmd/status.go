package cmd

import (
	"fmt"
	"time"

	"github.com/deskpilot/deskpilot/internal/config"
	"github.com/deskpilot/deskpilot/internal/output"
	"github.com/deskpilot/deskpilot/internal/plan"
	"github.com/deskpilot/deskpilot/internal/platform"
	"github.com/deskpilot/deskpilot/internal/version"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report accessibility permission and planning service health",
	Args:  exactArgs(0),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	res := output.StatusResult{Version: version.Version}

	provider, err := platform.NewProvider()
	switch {
	case err != nil:
		res.Accessibility = "unavailable: " + err.Error()
	case provider.Accessor.Trusted():
		res.Accessibility = "granted"
	default:
		res.Accessibility = "not granted"
	}

	client := plan.NewClient(cfg.PlannerURL, cfg.PlannerTimeout)
	h, err := client.CheckHealth(cmd.Context())
	if err != nil {
		res.Planner = "unreachable: " + err.Error()
	} else {
		res.Planner = h.Status
		res.PlannerModel = h.Model
		res.PlannerUptime = (time.Duration(h.UptimeSeconds) * time.Second).String()
	}

	if err := output.Print(res); err != nil {
		return err
	}
	if res.Accessibility != "granted" {
		return fmt.Errorf("accessibility permission not granted")
	}
	return nil
}
