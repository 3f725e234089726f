package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator builds the validator used by the handlers, with the notblank
// rule registered (required alone accepts all-whitespace strings).
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// productValidationMessages converts a validation failure into the complete
// list of human-readable messages, one per violated rule. It never
// short-circuits on the first violation.
func productValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		switch e.Field() {
		case "Name":
			if e.Tag() == "required" {
				messages = append(messages, "the product name cannot be empty")
			} else {
				messages = append(messages, "the product name cannot have fewer than 4 or more than 25 characters")
			}
		case "Description":
			messages = append(messages, "the product description is required")
		case "Stock":
			messages = append(messages, "the stock cannot be less than zero")
		case "Price":
			messages = append(messages, "the price cannot be negative")
		default:
			messages = append(messages, fmt.Sprintf("field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
		}
	}
	return messages
}

// rootCause walks the wrap chain down to the most specific underlying error.
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
