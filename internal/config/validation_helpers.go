package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	dderrors "github.com/alexisbeaulieu97/dropdown/pkg/errors"
)

// convertValidationErrors turns every validator failure into a field-level
// validation error.
func convertValidationErrors(err error) dderrors.ValidationErrors {
	if err == nil {
		return nil
	}

	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return dderrors.ValidationErrors{{Field: "document", Message: err.Error(), Err: err}}
	}

	out := make(dderrors.ValidationErrors, 0, len(ves))
	for _, fe := range ves {
		field := documentFieldName(fe)
		out = append(out, &dderrors.ValidationError{
			Field:   field,
			Message: describe(fe),
			Err:     fe,
		})
	}
	return out
}

// documentFieldName drops the root type from the namespace.
func documentFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "color":
		return fmt.Sprintf("%q is not a colour (use #rgb, #rrggbb or 0-255)", fe.Value())
	case "padding":
		return fmt.Sprintf("%q is not a padding (use \"n\" or \"vertical horizontal\")", fe.Value())
	case "field_key":
		return fmt.Sprintf("%q is not a valid record key", fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min", "max":
		return fmt.Sprintf("failed validation for tag '%s=%s'", fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
