package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestValidationErrors(t *testing.T) {
	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())
	assert.Equal(t, "validation failed", errs.Error())

	errs.Add(validator.ValidationError{Field: "email", Rule: validator.RuleEmail, Message: "bad email"})
	errs.Add(validator.ValidationError{Field: "age", Rule: validator.RuleMinVal, Message: "too young", Severity: validator.SeverityWarning})
	errs.Add(validator.ValidationError{Field: "email", Rule: validator.RuleRequired, Message: "missing"})

	assert.False(t, errs.IsEmpty())
	assert.Equal(t, "validation failed: email: bad email; age: too young; email: missing", errs.Error())
	assert.True(t, errs.Has("age"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"bad email", "missing"}, errs.Get("email"))
	assert.Len(t, errs.GetErrors("email"), 2)
	assert.Equal(t, []string{"email", "age"}, errs.Fields())

	warnings := errs.BySeverity(validator.SeverityWarning)
	assert.Len(t, warnings, 1)
	assert.Equal(t, "age", warnings[0].Field)
}
