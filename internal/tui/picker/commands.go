package picker

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loadOptionsCmd runs the loader off the program loop. A positive delay is
// waited out first so a slow source can be simulated.
func loadOptionsCmd(ctx context.Context, delay time.Duration, load Loader) tea.Cmd {
	return func() tea.Msg {
		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()

			select {
			case <-ctx.Done():
				return loadCancelledMsg{}
			case <-timer.C:
			}
		}

		options, err := load(ctx)
		if err != nil {
			// Context cancellation
			if ctx.Err() != nil {
				return loadCancelledMsg{}
			}
			return OptionsLoadedMsg{Err: err}
		}
		return OptionsLoadedMsg{Options: options}
	}
}
