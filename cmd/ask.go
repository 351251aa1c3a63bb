package cmd

import (
	"strings"

	"github.com/deskpilot/deskpilot/internal/ax"
	"github.com/deskpilot/deskpilot/internal/config"
	"github.com/deskpilot/deskpilot/internal/output"
	"github.com/deskpilot/deskpilot/internal/plan"
	"github.com/deskpilot/deskpilot/internal/platform"
	"github.com/deskpilot/deskpilot/internal/session"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <instruction...>",
	Short: "Send an instruction to the planning service and enact its decision",
	Long:  "Capture a snapshot of the focused window, send it with the instruction to the local planning service, and perform the action it returns. Destructive actions are held unless --yes is given.",
	Args:  minArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().Bool("yes", false, "Auto-confirm actions held by the destructive-keyword gate")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	log := newLogger(cfg.LogLevel)
	client := plan.NewClient(cfg.PlannerURL, cfg.PlannerTimeout)
	performer := ax.NewPerformer(provider)
	s := session.New(client, performer, capturer(provider, cfg), log)

	instruction := strings.Join(args, " ")
	res, err := s.Submit(cmd.Context(), instruction)
	if err != nil {
		return err
	}

	if yes, _ := cmd.Flags().GetBool("yes"); yes && res.Status == session.StatusPending {
		res, err = s.Submit(cmd.Context(), "confirm")
		if err != nil {
			return err
		}
	}

	out := output.AskResult{Status: string(res.Status), Response: res.Text}
	if res.Action != nil {
		out.Action = res.Action.Describe()
	}
	if res.Pending != nil {
		out.Pending = res.Pending.Describe()
	}
	return output.Print(out)
}
