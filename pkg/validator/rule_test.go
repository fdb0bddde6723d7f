package validator_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestNewRule_Setup(t *testing.T) {
	t.Run("unknown rule", func(t *testing.T) {
		_, err := validator.NewRule("palindrome", true)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrUnknownRule)
		assert.Contains(t, err.Error(), "palindrome")
	})

	invalid := []struct {
		name  string
		rule  validator.RuleName
		param any
	}{
		{"min_length with text", validator.RuleMinLength, "abc"},
		{"max_val with bool", validator.RuleMaxVal, true},
		{"max_size with nil", validator.RuleMaxSize, nil},
		{"max_size negative", validator.RuleMaxSize, -1},
		{"min_size beyond int64", validator.RuleMinSize, 1e30},
		{"min_size with text", validator.RuleMinSize, "big"},
		{"required with number", validator.RuleRequired, 1},
		{"email with string", validator.RuleEmail, "yes"},
		{"decimal with negative", validator.RuleDecimal, -2},
		{"decimal with fraction", validator.RuleDecimal, 1.5},
		{"range_val with three items", validator.RuleRangeVal, []int{1, 2, 3}},
		{"range_val with text bound", validator.RuleRangeVal, []any{1, "x"}},
		{"range_length with scalar", validator.RuleRangeLength, 5},
		{"min_date unparseable", validator.RuleMinDate, "31/12/2020"},
		{"range_date bad bound", validator.RuleRangeDate, []string{"2020-01-01", "tomorrow"}},
		{"min_time wrong type", validator.RuleMinTime, 10},
		{"options empty", validator.RuleOptions, []string{}},
		{"options scalar", validator.RuleOptions, "a"},
		{"unique nil", validator.RuleUnique, nil},
		{"compare nil", validator.RuleCompare, nil},
		{"extension nil", validator.RuleExtension, nil},
		{"min_date_field nil", validator.RuleMinDateField, nil},
		{"required_either empty", validator.RuleRequiredEither, []string{}},
		{"required_either blank name", validator.RuleRequiredEither, " "},
		{"custom not a function", validator.RuleCustom, "callback"},
		{"string_deny empty", validator.RuleStringDeny, []string{}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validator.NewRule(tt.rule, tt.param)
			require.Error(t, err)
			assert.ErrorIs(t, err, validator.ErrInvalidParam)
			assert.Contains(t, err.Error(), string(tt.rule))
		})
	}

	t.Run("unknown string features are named", func(t *testing.T) {
		_, err := validator.NewRule(validator.RuleStringAllow, []string{"alpha", "emoji", "tabs"})
		require.ErrorIs(t, err, validator.ErrInvalidParam)
		assert.Contains(t, err.Error(), "emoji, tabs")
	})
}

func TestNewRule_Normalization(t *testing.T) {
	t.Run("numeric strings become numbers", func(t *testing.T) {
		r := mustRule(t, validator.RuleMinLength, "3")
		assert.Equal(t, 3.0, r.Param())
	})

	t.Run("dates are parsed once", func(t *testing.T) {
		r := mustRule(t, validator.RuleMinDate, "2024-02-29")
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), r.Param())
		assert.Equal(t, validator.DefaultDateFormat, r.Layout())
	})

	t.Run("time values are accepted", func(t *testing.T) {
		now := time.Now()
		r := mustRule(t, validator.RuleMaxDateTime, now)
		assert.Equal(t, now, r.Param())
		assert.Equal(t, validator.DefaultDateTimeFormat, r.Layout())
	})

	t.Run("defaults and options", func(t *testing.T) {
		r := mustRule(t, validator.RuleRequired, true)
		assert.Equal(t, validator.RuleRequired, r.Name())
		assert.Equal(t, validator.SeverityError, r.Severity())
		assert.Empty(t, r.Message())

		w := mustRule(t, validator.RuleRequired, true, validator.AsWarning(), validator.WithMessage("{field} please"))
		assert.Equal(t, validator.SeverityWarning, w.Severity())
		assert.Equal(t, "{field} please", w.Message())
	})

	t.Run("every listed rule is known", func(t *testing.T) {
		names := validator.RuleNames()
		assert.Len(t, names, 43)
		for _, n := range names {
			assert.True(t, validator.IsKnownRule(n), n)
		}
		assert.False(t, validator.IsKnownRule("nope"))
	})

	t.Run("predicate shapes", func(t *testing.T) {
		mustRule(t, validator.RuleCustom, validator.Predicate(func(any, validator.Record) bool { return true }))
		mustRule(t, validator.RuleCustom, func(any, validator.Record) bool { return true })
		mustRule(t, validator.RuleCustom, func(any, map[string]any) bool { return true })
		mustRule(t, validator.RuleCustom, func(any) bool { return true })
	})
}

func TestEvaluate_UnregisteredRule(t *testing.T) {
	res := validator.Evaluate(context.Background(), validator.RuleSpec{}, "x", nil, nil)
	assert.False(t, res.OK())
	assert.Equal(t, "unknown_rule", res.Violation())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "error", validator.SeverityError.String())
	assert.Equal(t, "warning", validator.SeverityWarning.String())
}
