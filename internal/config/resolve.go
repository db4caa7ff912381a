package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/dropdown/internal/dropdown"
	dderrors "github.com/alexisbeaulieu97/dropdown/pkg/errors"
)

// Resolve validates doc, projects its records into options and normalises
// its value. Every problem found is reported at once.
func Resolve(path string, doc *Document) (*Loaded, error) {
	if doc == nil {
		return nil, dderrors.NewValidationError("document", "document is nil", nil)
	}

	errs := convertValidationErrors(validatorInstance().Struct(doc))

	options, err := dropdown.Project(doc.Options, doc.Fields.FieldMap())
	if err != nil {
		errs = append(errs, &dderrors.ValidationError{Field: "options", Message: err.Error(), Err: err})
	}

	value, err := dropdown.SelectionFrom(doc.Value)
	if err != nil {
		errs = append(errs, &dderrors.ValidationError{Field: "value", Message: err.Error(), Err: err})
	} else if msg := checkValueShape(value, doc.MultiSelect); msg != "" {
		errs = append(errs, &dderrors.ValidationError{Field: "value", Message: msg})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	if doc.MultiSelect && value.IsNone() {
		value = dropdown.Multi()
	}

	return &Loaded{
		Path:     path,
		Document: doc,
		Options:  options,
		Value:    value,
		Warnings: warnings(options, value),
	}, nil
}

func checkValueShape(value dropdown.Selection, multi bool) string {
	switch {
	case multi && !value.IsNone() && !value.IsMulti():
		return "must be a list in multi-select mode"
	case !multi && value.IsMulti():
		return "must be a single id in single-select mode"
	}
	return ""
}

func warnings(options []dropdown.Option, value dropdown.Selection) []string {
	var out []string

	for _, id := range dropdown.DuplicateIDs(options) {
		out = append(out, fmt.Sprintf("duplicate option id %q: only the first occurrence can be selected", id.String()))
	}

	for _, id := range value.IDs() {
		if _, ok := dropdown.FindOption(options, id); !ok {
			out = append(out, fmt.Sprintf("value %q matches no option", id.String()))
		}
	}

	if len(options) == 0 {
		out = append(out, "document has no options")
	}

	return out
}
