package cmd

import (
	"github.com/deskpilot/deskpilot/internal/ax"
	"github.com/deskpilot/deskpilot/internal/output"
	"github.com/deskpilot/deskpilot/internal/platform"
)

// runAction resolves the label and performs one action, printing the
// result on success. A destructive target that was not confirmed
// surfaces as an ordinary failure telling the user to re-run with
// --confirm.
func runAction(act ax.Action, confirmed bool) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	performer := ax.NewPerformer(provider)
	if err := performer.Perform(act, confirmed); err != nil {
		return err
	}
	return output.Print(output.ActionResult{
		Status: "ok",
		Action: act.Name,
		Target: act.Target,
		Detail: act.Describe(),
	})
}
