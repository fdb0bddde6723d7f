package validator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownRule is returned when a rule name is not in the enumeration.
	ErrUnknownRule = errors.New("unrecognized validation rule")

	// ErrInvalidParam is returned when a rule parameter has the wrong shape.
	ErrInvalidParam = errors.New("invalid rule parameter")

	// ErrEmptyField is returned when a rule is added without a field name.
	ErrEmptyField = errors.New("field name is required")

	// ErrValidationFailed is returned by Outcome.Err when no violation details are available.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError describes a single rule violation.
type ValidationError struct {
	Field          string
	Rule           RuleName
	Violation      string
	Severity       Severity
	Message        string
	TranslationKey string
	// TranslationValues holds the raw placeholder values used in Message.
	TranslationValues map[string]any
}

// ValidationErrors is a collection of violations that implements error.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns every message recorded for field, in evaluation order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var out []ValidationError
	for _, err := range ve {
		if err.Field == field {
			out = append(out, err)
		}
	}
	return out
}

// Fields returns the distinct fields with violations, in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// BySeverity filters violations of the given severity.
func (ve ValidationErrors) BySeverity(s Severity) ValidationErrors {
	var out ValidationErrors
	for _, err := range ve {
		if err.Severity == s {
			out = append(out, err)
		}
	}
	return out
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error chain.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}
	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
