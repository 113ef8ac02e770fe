package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// ErrNotInteractive is returned by run when stdin is not a terminal.
var ErrNotInteractive = errors.New("run needs an interactive terminal; use 'peak plan' instead")

func newRunCmd(app *App) *cobra.Command {
	var flags sessionFlags
	var speed float64

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a live session that surfaces each nudge on time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return ErrNotInteractive
			}
			if speed <= 0 {
				return fmt.Errorf("--speed must be positive, got %v", speed)
			}

			req, err := flags.resolve(cmd, app)
			if err != nil {
				return err
			}
			resp, err := app.Plans.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newSessionModel(resp, speed),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&speed, "speed", 1, "Clock multiplier, e.g. 60 runs a minute per second")

	return cmd
}
