package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed validation rule in a 422 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ValidationErrorBody is the 422 response shape.
type ValidationErrorBody struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
	Path    string       `json:"path"`
}

// NewValidationErrorBody shapes a binding failure into the 422 body.
// Validator failures become one entry per failed rule; anything else
// (malformed JSON, type mismatches) becomes a single body-level entry.
func NewValidationErrorBody(err error, path string) ValidationErrorBody {
	body := ValidationErrorBody{
		Message: "Validation error",
		Errors:  []FieldError{},
		Path:    path,
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			body.Errors = append(body.Errors, FieldError{
				Field:   fe.Field(),
				Message: fieldMessage(fe),
				Type:    fe.Tag(),
			})
		}
		return body
	}
	body.Errors = append(body.Errors, FieldError{
		Field:   "body",
		Message: err.Error(),
		Type:    "invalid",
	})
	return body
}

// RegisterTagNames makes validator errors report json/form field names
// instead of Go struct field names.
func RegisterTagNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "form", "uri"} {
			tag, ok := fld.Tag.Lookup(key)
			if !ok {
				continue
			}
			name := strings.SplitN(tag, ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
}

// fieldMessage renders a human-readable message for one failed rule.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return "Must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return "Invalid value"
	}
}
