package validator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

// Validator holds per-field rules and validates records against them.
// It is safe for concurrent use; each pass works on its own record.
type Validator struct {
	mu        sync.RWMutex
	fields    []string
	rules     map[string][]RuleSpec
	opts      *options
	formatter *MessageFormatter
}

// Outcome is the result of one validation pass.
type Outcome struct {
	Valid    bool
	Errors   map[string]string
	Warnings map[string]string
	// Violations lists every failure in evaluation order. Empty in boolean mode.
	Violations ValidationErrors
}

// Err returns the error-severity violations as ValidationErrors, or nil
// when the pass succeeded.
func (o Outcome) Err() error {
	if o.Valid {
		return nil
	}
	if errs := o.Violations.BySeverity(SeverityError); len(errs) > 0 {
		return errs
	}
	return ErrValidationFailed
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Validator{
		rules:     make(map[string][]RuleSpec),
		opts:      o,
		formatter: NewMessageFormatter(o.catalog),
	}
}

// Layouts returns the configured date layouts.
func (v *Validator) Layouts() Layouts {
	return v.opts.layouts
}

// Formatter returns the message formatter in use.
func (v *Validator) Formatter() *MessageFormatter {
	return v.formatter
}

// NewRule builds a RuleSpec with the validator's date layouts.
func (v *Validator) NewRule(name RuleName, param any, opts ...RuleOption) (RuleSpec, error) {
	return newRule(name, param, v.opts.layouts, opts...)
}

// Add registers a rule for field. Re-adding a rule name replaces the
// previous one in place.
func (v *Validator) Add(field string, name RuleName, param any, opts ...RuleOption) error {
	rule, err := v.NewRule(name, param, opts...)
	if err != nil {
		return fmt.Errorf("field %q: %w", field, err)
	}
	return v.AddRule(field, rule)
}

// MustAdd is like Add but panics on setup errors. It returns the validator
// for chaining.
func (v *Validator) MustAdd(field string, name RuleName, param any, opts ...RuleOption) *Validator {
	if err := v.Add(field, name, param, opts...); err != nil {
		panic(err)
	}
	return v
}

// AddRule registers a prebuilt rule for field.
func (v *Validator) AddRule(field string, rule RuleSpec) error {
	if strings.TrimSpace(field) == "" {
		return ErrEmptyField
	}
	if !IsKnownRule(rule.name) {
		return fmt.Errorf("field %q: %w: %q", field, ErrUnknownRule, rule.name)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	rules, known := v.rules[field]
	if !known {
		v.fields = append(v.fields, field)
	}
	for i, existing := range rules {
		if existing.name == rule.name {
			rules[i] = rule
			return nil
		}
	}
	v.rules[field] = append(rules, rule)
	return nil
}

// AddRules registers several rules for field. Nothing is registered when
// any definition is invalid.
func (v *Validator) AddRules(field string, defs ...Def) error {
	built := make([]RuleSpec, 0, len(defs))
	for _, def := range defs {
		rule, err := v.NewRule(def.Name, def.Param, def.options()...)
		if err != nil {
			return fmt.Errorf("field %q: %w", field, err)
		}
		built = append(built, rule)
	}
	for _, rule := range built {
		if err := v.AddRule(field, rule); err != nil {
			return err
		}
	}
	return nil
}

// Fields returns the fields with rules, in registration order.
func (v *Validator) Fields() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]string(nil), v.fields...)
}

// Rules returns the rules of field in evaluation order.
func (v *Validator) Rules(field string) []RuleSpec {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]RuleSpec(nil), v.rules[field]...)
}

// Validate runs every rule against record.
func (v *Validator) Validate(record Record) Outcome {
	return v.ValidateContext(context.Background(), record)
}

// ValidateContext runs every rule against record. The context is passed to
// the file checker used by upload rules.
//
// Fields are visited in registration order and rules in insertion order.
// Fields missing from the record are skipped. A field keeps at most one
// message per severity; later failures overwrite earlier ones.
func (v *Validator) ValidateContext(ctx context.Context, record Record) Outcome {
	if ctx == nil {
		ctx = context.Background()
	}
	out := Outcome{
		Valid:    true,
		Errors:   make(map[string]string),
		Warnings: make(map[string]string),
	}
	ec := &evalContext{ctx: ctx, record: record, files: v.opts.files}
	log := v.opts.logger

	v.mu.RLock()
	defer v.mu.RUnlock()

	for _, field := range v.fields {
		value, present := record.Lookup(field)
		if !present {
			continue
		}
		for _, rule := range v.rules[field] {
			res := registry[rule.name].check(ec, rule, value)
			if res.OK() {
				continue
			}
			if rule.severity == SeverityError {
				out.Valid = false
			}

			log.DebugContext(ctx, "rule violated",
				logger.Field(field),
				logger.Rule(string(rule.name)),
				logger.Severity(rule.severity.String()),
				slog.String("violation", res.violation),
			)

			if v.opts.returnBoolean {
				continue
			}

			msg := v.formatter.Format(field, value, rule, res)
			if rule.severity == SeverityError {
				out.Errors[field] = msg
			} else {
				out.Warnings[field] = msg
			}
			out.Violations.Add(ValidationError{
				Field:          field,
				Rule:           rule.name,
				Violation:      res.violation,
				Severity:       rule.severity,
				Message:        msg,
				TranslationKey: res.violation,
				TranslationValues: map[string]any{
					"field": field,
					"value": value,
					"param": v.formatter.RenderParam(rule),
				},
			})
		}
	}

	log.DebugContext(ctx, "validation finished",
		slog.Bool("valid", out.Valid),
		logger.Count("errors", len(out.Errors)),
		logger.Count("warnings", len(out.Warnings)),
	)
	return out
}
