package dropdown

import "strings"

// VisibleOptions derives the menu contents from the full option list. When
// searching is off or the search text is empty the input slice is returned
// as-is. Otherwise options whose label contains the search text, ignoring
// case, are kept in their original order. Sublabels are not searched.
func VisibleOptions(options []Option, searchable bool, search string, label LabelFunc) []Option {
	if !searchable || search == "" {
		return options
	}
	if label == nil {
		label = DefaultLabel
	}

	query := strings.ToLower(search)
	visible := make([]Option, 0, len(options))
	for _, opt := range options {
		if strings.Contains(strings.ToLower(label(opt)), query) {
			visible = append(visible, opt)
		}
	}
	return visible
}
