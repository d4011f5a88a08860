package tools

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError reports malformed tool input. It fails the single tool
// call it belongs to, never the whole run.
type ValidationError struct {
	Tool string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid input: %v", e.Tool, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is a tool input validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidateInput checks a tool input struct against its `validate` tags.
func ValidateInput(tool string, input any) error {
	if err := validate.Struct(input); err != nil {
		return &ValidationError{Tool: tool, Err: err}
	}
	return nil
}
