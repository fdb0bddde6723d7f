package validator_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/file"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestValidator_Add(t *testing.T) {
	t.Run("setup errors are returned", func(t *testing.T) {
		v := validator.New()
		err := v.Add("name", validator.RuleMinLength, "three")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrInvalidParam)
		assert.Contains(t, err.Error(), `field "name"`)
		assert.Empty(t, v.Fields())

		assert.ErrorIs(t, v.Add("name", "nope", true), validator.ErrUnknownRule)
		assert.ErrorIs(t, v.Add("", validator.RuleRequired, true), validator.ErrEmptyField)
	})

	t.Run("MustAdd panics", func(t *testing.T) {
		assert.Panics(t, func() {
			validator.New().MustAdd("age", validator.RuleRangeVal, 18)
		})
	})

	t.Run("re-adding a rule replaces it in place", func(t *testing.T) {
		v := validator.New()
		v.MustAdd("name", validator.RuleRequired, true).
			MustAdd("name", validator.RuleMaxLength, 10).
			MustAdd("name", validator.RuleRequired, false)

		rules := v.Rules("name")
		require.Len(t, rules, 2)
		assert.Equal(t, validator.RuleRequired, rules[0].Name())
		assert.Equal(t, false, rules[0].Param())
		assert.Equal(t, validator.RuleMaxLength, rules[1].Name())
	})

	t.Run("fields keep registration order", func(t *testing.T) {
		v := validator.New()
		v.MustAdd("c", validator.RuleRequired, true).
			MustAdd("a", validator.RuleRequired, true).
			MustAdd("b", validator.RuleRequired, true).
			MustAdd("a", validator.RuleEmail, true)
		assert.Equal(t, []string{"c", "a", "b"}, v.Fields())
	})

	t.Run("AddRules is all or nothing", func(t *testing.T) {
		v := validator.New()
		err := v.AddRules("email",
			validator.Def{Name: validator.RuleRequired, Param: true},
			validator.Def{Name: validator.RuleMaxLength, Param: "long"},
		)
		assert.ErrorIs(t, err, validator.ErrInvalidParam)
		assert.Empty(t, v.Rules("email"))

		require.NoError(t, v.AddRules("email",
			validator.Def{Name: validator.RuleRequired, Param: true},
			validator.Def{Name: validator.RuleEmail, Param: true, Severity: validator.SeverityWarning, Message: "check {value}"},
		))
		rules := v.Rules("email")
		require.Len(t, rules, 2)
		assert.Equal(t, validator.SeverityWarning, rules[1].Severity())
		assert.Equal(t, "check {value}", rules[1].Message())
	})

	t.Run("prebuilt rules", func(t *testing.T) {
		v := validator.New()
		require.NoError(t, v.AddRule("age", mustRule(t, validator.RuleMinVal, 18)))
		assert.ErrorIs(t, v.AddRule("age", validator.RuleSpec{}), validator.ErrUnknownRule)
	})
}

func TestValidator_Validate(t *testing.T) {
	t.Run("range_val end to end", func(t *testing.T) {
		v := validator.New()
		v.MustAdd("age", validator.RuleRangeVal, []int{18, 65})

		out := v.Validate(validator.Record{"age": 70})
		assert.False(t, out.Valid)
		assert.Equal(t, map[string]string{"age": "The value must be between 18 and 65."}, out.Errors)
		assert.Empty(t, out.Warnings)
	})

	t.Run("string_allow end to end", func(t *testing.T) {
		v := validator.New()
		v.MustAdd("nick", validator.RuleStringAllow, []string{"alpha", "numbers"})

		out := v.Validate(validator.Record{"nick": "bob_99"})
		assert.False(t, out.Valid)
		assert.Equal(t, "This field does not allow: underscores", out.Errors["nick"])
		require.Len(t, out.Violations, 1)
		assert.Equal(t, "string", out.Violations[0].Violation)
		assert.Equal(t, validator.RuleStringAllow, out.Violations[0].Rule)
	})

	t.Run("required_either", func(t *testing.T) {
		v := validator.New()
		v.MustAdd("a", validator.RuleRequiredEither, "b")

		out := v.Validate(validator.Record{"a": "", "b": ""})
		assert.False(t, out.Valid)
		assert.Contains(t, out.Errors, "a")

		out = v.Validate(validator.Record{"a": "", "b": "x"})
		assert.True(t, out.Valid)
		assert.Empty(t, out.Errors)

		out = v.Validate(validator.Record{"a": ""})
		assert.False(t, out.Valid)
		assert.Equal(t, "The referenced field is not part of the form.", out.Errors["a"])
		require.Len(t, out.Violations, 1)
		assert.Equal(t, "required_either_field", out.Violations[0].Violation)
	})

	t.Run("multi-file max_size reports one file", func(t *testing.T) {
		v := validator.New()
		v.MustAdd("photos", validator.RuleMaxSize, 1024)

		files := []file.Descriptor{upload("a.png", 10), upload("b.png", 4096), upload("c.png", 10)}
		multi := v.Validate(validator.Record{"photos": files})
		single := v.Validate(validator.Record{"photos": files[1]})

		assert.False(t, multi.Valid)
		assert.Equal(t, single.Errors, multi.Errors)
		assert.Equal(t, "The file size must not exceed 1 KB.", multi.Errors["photos"])
	})

	t.Run("absent fields are skipped", func(t *testing.T) {
		v := validator.New()
		v.MustAdd("name", validator.RuleRequired, true)

		out := v.Validate(validator.Record{"other": "x"})
		assert.True(t, out.Valid)
		assert.Empty(t, out.Errors)
	})

	t.Run("empty values pass non-required rules", func(t *testing.T) {
		v := validator.New()
		v.MustAdd("f", validator.RuleMinLength, 3).
			MustAdd("f", validator.RuleMaxVal, 1).
			MustAdd("f", validator.RuleEmail, true).
			MustAdd("f", validator.RuleURL, true).
			MustAdd("f", validator.RuleCompare, "x").
			MustAdd("f", validator.RuleRangeDate, []string{"2024-01-01", "2024-12-31"}).
			MustAdd("f", validator.RuleNumber, true).
			MustAdd("f", validator.RuleDecimal, true).
			MustAdd("f", validator.RuleExtension, "pdf").
			MustAdd("f", validator.RuleOptions, []string{"x"}).
			MustAdd("f", validator.RuleStringDeny, []string{"spaces"}).
			MustAdd("f", validator.RuleMinDateField, "other")

		for _, empty := range []any{nil, "", []string{}} {
			out := v.Validate(validator.Record{"f": empty})
			assert.True(t, out.Valid, "%#v", empty)
		}

		v.MustAdd("f", validator.RuleRequired, true)
		assert.False(t, v.Validate(validator.Record{"f": ""}).Valid)
	})

	t.Run("later failures overwrite earlier ones", func(t *testing.T) {
		v := validator.New()
		v.MustAdd("code", validator.RuleMinLength, 5, validator.WithMessage("first")).
			MustAdd("code", validator.RuleNumber, true, validator.WithMessage("second"))

		out := v.Validate(validator.Record{"code": "ab"})
		assert.Equal(t, "second", out.Errors["code"])
		assert.Len(t, out.Violations, 2)
		assert.Equal(t, []string{"first", "second"}, out.Violations.Get("code"))
	})

	t.Run("warnings do not fail the pass", func(t *testing.T) {
		v := validator.New()
		v.MustAdd("bio", validator.RuleMaxLength, 5, validator.AsWarning()).
			MustAdd("name", validator.RuleRequired, true)

		out := v.Validate(validator.Record{"bio": "too long", "name": "Ana"})
		assert.True(t, out.Valid)
		assert.Empty(t, out.Errors)
		assert.Equal(t, "The number of characters must be less than (5).", out.Warnings["bio"])
		assert.NoError(t, out.Err())
	})

	t.Run("custom rule reads the record", func(t *testing.T) {
		v := validator.New()
		v.MustAdd("confirm", validator.RuleCustom, func(value any, r validator.Record) bool {
			return value == r["password"]
		}, validator.WithMessage("{field} must match"))

		out := v.Validate(validator.Record{"password": "a", "confirm": "b"})
		assert.Equal(t, "confirm must match", out.Errors["confirm"])
	})

	t.Run("unique keeps its polarity", func(t *testing.T) {
		v := validator.New()
		v.MustAdd("username", validator.RuleUnique, []string{"admin", "root"})

		out := v.Validate(validator.Record{"username": "root"})
		assert.Equal(t, "The value (root) already exists.", out.Errors["username"])
		assert.True(t, v.Validate(validator.Record{"username": "ana"}).Valid)
	})
}

func TestValidator_Idempotent(t *testing.T) {
	v := validator.New()
	v.MustAdd("age", validator.RuleRangeVal, []int{18, 65}).
		MustAdd("email", validator.RuleEmail, true).
		MustAdd("bio", validator.RuleMaxLength, 3, validator.AsWarning())

	record := validator.Record{"age": 10, "email": "nope", "bio": "long text"}
	first := v.Validate(record)
	second := v.Validate(record)

	assert.Equal(t, first.Errors, second.Errors)
	assert.Equal(t, first.Warnings, second.Warnings)
	assert.Equal(t, first.Valid, second.Valid)
	assert.Len(t, second.Errors, 2)
}

func TestValidator_ReturnBoolean(t *testing.T) {
	v := validator.New(validator.WithReturnBoolean(true))
	v.MustAdd("age", validator.RuleRangeVal, []int{18, 65})

	out := v.Validate(validator.Record{"age": 70})
	assert.False(t, out.Valid)
	assert.Empty(t, out.Errors)
	assert.Empty(t, out.Warnings)
	assert.Nil(t, out.Violations)
	assert.ErrorIs(t, out.Err(), validator.ErrValidationFailed)

	assert.True(t, v.Validate(validator.Record{"age": 30}).Valid)
}

func TestValidator_Catalog(t *testing.T) {
	v := validator.New(validator.WithCatalog(validator.MapCatalog(map[string]string{
		"required": "Este campo es obligatorio.",
	})))
	v.MustAdd("name", validator.RuleRequired, true)

	out := v.Validate(validator.Record{"name": ""})
	assert.Equal(t, "Este campo es obligatorio.", out.Errors["name"])
}

func TestValidator_FileChecker(t *testing.T) {
	var seen []string
	checker := file.CheckerFunc(func(_ context.Context, path string) bool {
		seen = append(seen, path)
		return path == "staged/ok"
	})

	v := validator.New(validator.WithFileChecker(checker))
	v.MustAdd("doc", validator.RuleUpload, true)

	assert.True(t, v.Validate(validator.Record{"doc": file.Descriptor{Name: "a.pdf", Size: 1, TmpPath: "staged/ok"}}).Valid)
	out := v.Validate(validator.Record{"doc": file.Descriptor{Name: "b.pdf", Size: 1, TmpPath: "staged/gone"}})
	assert.Equal(t, "The file could not be uploaded.", out.Errors["doc"])
	assert.Equal(t, []string{"staged/ok", "staged/gone"}, seen)
}

func TestValidator_Logging(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter(), logger.WithLevel(slog.LevelDebug))

	v := validator.New(validator.WithLogger(log))
	v.MustAdd("email", validator.RuleEmail, true)
	ctx := logger.WithPassAttrs(context.Background(), slog.String("form", "signup"))
	v.ValidateContext(ctx, validator.Record{"email": "bad"})

	assert.Contains(t, buf.String(), "rule violated")
	assert.Contains(t, buf.String(), "field=email")
	assert.Contains(t, buf.String(), "rule=email")
	assert.Contains(t, buf.String(), "severity=error")
	assert.Contains(t, buf.String(), "validation finished")
	assert.Contains(t, buf.String(), "form=signup")
}

func TestValidator_Concurrent(t *testing.T) {
	v := validator.New()
	v.MustAdd("n", validator.RuleRangeVal, []int{0, 100})

	var wg sync.WaitGroup
	results := make([]bool, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = v.Validate(validator.Record{"n": i * 3}).Valid
		}(i)
	}
	wg.Wait()

	for i, ok := range results {
		assert.Equal(t, i*3 <= 100, ok, fmt.Sprint(i))
	}
}

func TestOutcome_Err(t *testing.T) {
	v := validator.New()
	v.MustAdd("email", validator.RuleEmail, true).
		MustAdd("nick", validator.RuleMaxLength, 3, validator.AsWarning())

	out := v.Validate(validator.Record{"email": "bad", "nick": "toolong"})
	err := out.Err()
	require.Error(t, err)
	assert.True(t, validator.IsValidationError(err))

	wrapped := fmt.Errorf("signup: %w", err)
	errs := validator.ExtractValidationErrors(wrapped)
	require.NotNil(t, errs)
	assert.Equal(t, []string{"email"}, errs.Fields(), "warnings are not errors")
	assert.False(t, errs.Has("nick"))

	assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))
	assert.False(t, validator.IsValidationError(nil))
}
