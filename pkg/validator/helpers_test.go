package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/file"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

func mustRule(t *testing.T, name validator.RuleName, param any, opts ...validator.RuleOption) validator.RuleSpec {
	t.Helper()
	spec, err := validator.NewRule(name, param, opts...)
	require.NoError(t, err)
	return spec
}

func eval(t *testing.T, name validator.RuleName, param, value any) validator.Result {
	t.Helper()
	return evalRecord(t, name, param, value, nil)
}

func evalRecord(t *testing.T, name validator.RuleName, param, value any, record validator.Record) validator.Result {
	t.Helper()
	return validator.Evaluate(context.Background(), mustRule(t, name, param), value, record, nil)
}

// existing treats every path as an existing file.
var existing = file.CheckerFunc(func(context.Context, string) bool { return true })
