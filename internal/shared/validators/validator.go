package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance. Field errors are reported with the mapstructure or json
// tag name of the field, so they read the same way users spell the setting. Fields tagged "-" are
// not validated.
func New() *Validate {
	v := validator.New()
	v.RegisterTagNameFunc(tagName)
	return v
}

func tagName(f reflect.StructField) string {
	for _, key := range []string{"mapstructure", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name == "-" {
			return "-"
		}
		if name != "" {
			return name
		}
	}
	return strings.ToLower(f.Name)
}

// Describe turns a validation error into one readable entry per failed field,
// e.g. "server.port (max=65535)". Errors that are not ValidationErrors are returned as is.
func Describe(err error) []string {
	var ve ValidationErrors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(ve))
	for _, e := range ve {
		messages = append(messages, formatFieldError(e))
	}
	return messages
}

func formatFieldError(e FieldError) string {
	field := e.Field()

	// Drop the root struct name, e.g. "Config.server.port" -> "server.port"
	if ns := e.Namespace(); ns != "" {
		if _, rest, ok := strings.Cut(ns, "."); ok {
			field = rest
		}
	}

	if e.Param() == "" {
		return fmt.Sprintf("%s (%s)", field, e.Tag())
	}
	return fmt.Sprintf("%s (%s=%s)", field, e.Tag(), e.Param())
}
