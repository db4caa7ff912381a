package picker

import "github.com/alexisbeaulieu97/dropdown/internal/dropdown"

// OptionsLoadedMsg carries the result of an asynchronous option load.
type OptionsLoadedMsg struct {
	Options []dropdown.Option
	Err     error
}

// loadCancelledMsg is returned by a load whose context ended first.
type loadCancelledMsg struct{}
