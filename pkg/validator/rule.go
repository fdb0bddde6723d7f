package validator

import "fmt"

// RuleSpec is one configured rule occurrence. It is immutable once built.
type RuleSpec struct {
	name     RuleName
	param    any
	severity Severity
	message  string
	layout   string
	kind     dateKind
}

// RuleOption customizes a RuleSpec at construction.
type RuleOption func(*RuleSpec)

// AsWarning files violations of the rule as warnings.
func AsWarning() RuleOption {
	return func(r *RuleSpec) {
		r.severity = SeverityWarning
	}
}

// WithSeverity sets the rule severity.
func WithSeverity(s Severity) RuleOption {
	return func(r *RuleSpec) {
		r.severity = s
	}
}

// WithMessage overrides the catalog template. The override may use the
// {field}, {value} and {param} placeholders.
func WithMessage(tmpl string) RuleOption {
	return func(r *RuleSpec) {
		r.message = tmpl
	}
}

// NewRule builds a RuleSpec using the default date layouts.
// It fails with ErrUnknownRule or ErrInvalidParam.
func NewRule(name RuleName, param any, opts ...RuleOption) (RuleSpec, error) {
	return newRule(name, param, DefaultLayouts(), opts...)
}

func newRule(name RuleName, param any, layouts Layouts, opts ...RuleOption) (RuleSpec, error) {
	def, ok := registry[name]
	if !ok {
		return RuleSpec{}, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}

	layout := layouts.forKind(def.kind)
	normalized, err := def.normalize(name, param, layout)
	if err != nil {
		return RuleSpec{}, err
	}

	r := RuleSpec{
		name:     name,
		param:    normalized,
		severity: SeverityError,
		layout:   layout,
		kind:     def.kind,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r, nil
}

func (r RuleSpec) Name() RuleName {
	return r.name
}

// Param returns the normalized parameter.
func (r RuleSpec) Param() any {
	return r.param
}

func (r RuleSpec) Severity() Severity {
	return r.severity
}

// Message returns the override template, empty when none is set.
func (r RuleSpec) Message() string {
	return r.message
}

// Layout returns the date layout of a date-family rule.
func (r RuleSpec) Layout() string {
	return r.layout
}

// Def describes a rule for batch registration with Validator.AddRules.
type Def struct {
	Name     RuleName
	Param    any
	Severity Severity
	Message  string
}

func (d Def) options() []RuleOption {
	opts := []RuleOption{WithSeverity(d.Severity)}
	if d.Message != "" {
		opts = append(opts, WithMessage(d.Message))
	}
	return opts
}
