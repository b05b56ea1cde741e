// Package validator wraps go-playground/validator with a process-wide instance
// and a uniform error shape: ErrValidation joined with one message per
// violated field.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidation is the root of every error returned by Validate for rule violations.
var ErrValidation = errors.New("validation failed")

var validator *gvalidator.Validate

const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	validator.RegisterTagNameFunc(fieldName)
}

// fieldName reports fields by the name users actually type: the environment
// variable for configuration structs, the JSON key for payloads and the Go
// field name otherwise.
func fieldName(f reflect.StructField) string {
	for _, key := range []string{"envconfig", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return f.Name
}

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, fieldErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat, fieldErr.Namespace(), fieldErr.Value(), fieldErr.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags. It returns nil when
// every rule holds, otherwise an error matching ErrValidation.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against a tag expression such as "required,eth_addr".
func Var(field any, tag string) error {
	if err := validator.Var(field, tag); err != nil {
		return formatError(err)
	}

	return nil
}
