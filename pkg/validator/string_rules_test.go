package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestLengthRules(t *testing.T) {
	assert.True(t, eval(t, validator.RuleMinLength, 3, "abc").OK())
	assert.Equal(t, "min_length", eval(t, validator.RuleMinLength, 3, "ab").Violation())
	assert.True(t, eval(t, validator.RuleMaxLength, 3, "abc").OK())
	assert.Equal(t, "max_length", eval(t, validator.RuleMaxLength, 3, "abcd").Violation())
	assert.False(t, eval(t, validator.RuleExactLength, 4, "ñandú").OK())
	assert.True(t, eval(t, validator.RuleExactLength, 5, "ñandú").OK(), "length counts characters")
	assert.Equal(t, "exact_length", eval(t, validator.RuleExactLength, 2, "abc").Violation())

	t.Run("range is inclusive", func(t *testing.T) {
		assert.True(t, eval(t, validator.RuleRangeLength, []int{2, 4}, "ab").OK())
		assert.True(t, eval(t, validator.RuleRangeLength, []int{2, 4}, "abcd").OK())
		assert.Equal(t, "range_length", eval(t, validator.RuleRangeLength, []int{2, 4}, "a").Violation())
		assert.Equal(t, "range_length", eval(t, validator.RuleRangeLength, []int{2, 4}, "abcde").Violation())
	})

	t.Run("empty passes", func(t *testing.T) {
		assert.True(t, eval(t, validator.RuleMinLength, 3, "").OK())
		assert.True(t, eval(t, validator.RuleRangeLength, []int{2, 4}, nil).OK())
	})

	t.Run("numbers are measured as text", func(t *testing.T) {
		assert.True(t, eval(t, validator.RuleExactLength, 4, 2024).OK())
	})
}

func TestStringDeny(t *testing.T) {
	res := eval(t, validator.RuleStringDeny, []string{"numbers"}, "abc123")
	assert.Equal(t, "string", res.Violation())
	assert.Equal(t, []string{"string_numbers"}, res.Details())

	assert.True(t, eval(t, validator.RuleStringDeny, []string{"numbers"}, "abc").OK())
	assert.True(t, eval(t, validator.RuleStringDeny, []string{"numbers"}, "").OK())

	res = eval(t, validator.RuleStringDeny, []string{"quotes", "spaces", "dots"}, `it's a "test".`)
	assert.Equal(t, []string{"string_spaces", "string_dots", "string_quotes"}, res.Details(), "vocabulary order")
}

func TestStringAllow(t *testing.T) {
	allowAlnum := []string{"alpha", "numbers"}

	res := eval(t, validator.RuleStringAllow, allowAlnum, "bob_99")
	assert.Equal(t, "string", res.Violation())
	assert.Equal(t, []string{"string_low_strips"}, res.Details())

	assert.True(t, eval(t, validator.RuleStringAllow, allowAlnum, "bob99").OK())
	assert.True(t, eval(t, validator.RuleStringAllow, allowAlnum, "Ñandú42").OK(), "letters are unicode")

	tests := []struct {
		value   string
		feature string
	}{
		{"a b", "string_spaces"},
		{"a-b", "string_mid_strips"},
		{"a.b", "string_dots"},
		{"a,b", "string_commas"},
		{"¿a?", "string_punctuation"},
		{"a'b", "string_quotes"},
		{"a^b", "string_symbols"},
		{"a\\b", "string_symbols"},
		{"a~b", "string_symbols"},
	}
	for _, tt := range tests {
		res := eval(t, validator.RuleStringAllow, allowAlnum, tt.value)
		assert.Equal(t, []string{tt.feature}, res.Details(), tt.value)
	}

	t.Run("allow-set punctuation is not a symbol", func(t *testing.T) {
		res := eval(t, validator.RuleStringAllow, []string{"alpha"}, "a@b#c%d$e&f")
		assert.True(t, res.OK())
	})

	t.Run("only numbers allowed", func(t *testing.T) {
		res := eval(t, validator.RuleStringAllow, []string{"numbers"}, "12 ab")
		assert.Equal(t, []string{"string_alpha", "string_spaces"}, res.Details())
	})
}
