package config

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/dropdown/internal/ui/components"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	fieldKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)
	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// report document keys rather than Go field names
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("field_key", func(fl validator.FieldLevel) bool {
			return fieldKeyPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			return isColor(fl.Field().String())
		})

		_ = v.RegisterValidation("padding", func(fl validator.FieldLevel) bool {
			_, _, err := components.ParsePadding(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// isColor accepts #rgb, #rrggbb and ANSI 256 palette indexes.
func isColor(s string) bool {
	if hexColorPattern.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255 && strconv.Itoa(n) == s
}
