package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/dropdown/internal/dropdown"
	"github.com/alexisbeaulieu97/dropdown/internal/tui/picker"
)

type outputOption struct {
	Value    dropdown.ID    `json:"value"`
	Label    string         `json:"label"`
	Sublabel string         `json:"sublabel,omitempty"`
	Group    string         `json:"group,omitempty"`
	Extra    map[string]any `json:"extra,omitempty"`
}

type outputPayload struct {
	Value   dropdown.Selection `json:"value"`
	Options []outputOption     `json:"options"`
}

// writeResult prints one id per line in text format, or the value together
// with the selected options in JSON format.
func writeResult(w io.Writer, format string, res picker.Result) error {
	if format == formatJSON {
		payload := outputPayload{Value: res.Value, Options: make([]outputOption, len(res.Options))}
		for i, opt := range res.Options {
			payload.Options[i] = outputOption{
				Value:    opt.Value,
				Label:    dropdown.DefaultLabel(opt),
				Sublabel: opt.Sublabel,
				Group:    opt.Group,
				Extra:    opt.Extra,
			}
		}

		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	for _, id := range res.Value.IDs() {
		// a cleared single value carries the empty id
		if id == dropdown.StringID("") {
			continue
		}
		if _, err := fmt.Fprintln(w, id.String()); err != nil {
			return err
		}
	}
	return nil
}
