package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/peak/internal/cli/formatter"
	"github.com/alexanderramin/peak/internal/contract"
	"github.com/spf13/cobra"
)

// sessionFlags are the inputs shared by plan and run.
type sessionFlags struct {
	input    string
	minutes  int
	generate bool
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "How you feel, in your own words")
	cmd.Flags().IntVarP(&f.minutes, "minutes", "m", 0, "Session length in minutes")
	cmd.Flags().BoolVar(&f.generate, "generate", false, "Ask the configured model for nudges, falling back to the knowledge base")
}

// resolve fills unset flags from the prompt when interactive, otherwise
// from the configured defaults.
func (f *sessionFlags) resolve(cmd *cobra.Command, app *App) (contract.PlanRequest, error) {
	input, minutes := f.input, f.minutes
	inputSet := cmd.Flags().Changed("input")
	minutesSet := cmd.Flags().Changed("minutes")

	if !inputSet && !minutesSet && app.interactive() {
		answers := promptAnswers{Minutes: app.Config.DefaultDuration}
		if err := runSessionPrompt(&answers); err != nil {
			return contract.PlanRequest{}, err
		}
		input, minutes = answers.Input, answers.Minutes
		inputSet, minutesSet = true, true
	}

	if !inputSet {
		input = app.Config.DefaultInput
	}
	if !minutesSet {
		minutes = app.Config.DefaultDuration
	}
	req := contract.NewPlanRequest(input, minutes)
	req.AllowGenerated = f.generate
	return req, nil
}

func newPlanCmd(app *App) *cobra.Command {
	var flags sessionFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan nudges and their timing for a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.resolve(cmd, app)
			if err != nil {
				return err
			}

			var waiting *formatter.Waiting
			if req.AllowGenerated && app.Nudges != nil && app.interactive() && !asJSON {
				waiting = formatter.ShowWaiting(cmd.ErrOrStderr(), "Writing nudges")
			}
			resp, err := app.Plans.Plan(cmd.Context(), req)
			if waiting != nil {
				waiting.Stop()
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			fmt.Fprintln(out, formatter.FormatPlan(resp))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")

	return cmd
}
