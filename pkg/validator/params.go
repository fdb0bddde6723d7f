package validator

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
)

// Predicate is the parameter of the custom rule. It receives the field
// value and the whole record.
type Predicate func(value any, record Record) bool

type numRange struct {
	min, max float64
}

type timeRange struct {
	min, max time.Time
}

// valueSet keeps insertion order for display and an index for membership.
type valueSet struct {
	items []string
	index map[string]struct{}
}

func (s *valueSet) has(v string) bool {
	_, ok := s.index[v]
	return ok
}

func (s *valueSet) add(v string) {
	if _, ok := s.index[v]; ok {
		return
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
}

// fieldRefs lists sibling field names referenced by a cross-field rule.
type fieldRefs []string

// dateKind selects the layout a date-family rule uses.
type dateKind int

const (
	kindNone dateKind = iota
	kindDate
	kindDateTime
	kindTime
)

// Layouts are the parse/format templates of the date-family rules.
type Layouts struct {
	Date     string
	DateTime string
	Time     string
}

// DefaultLayouts returns the layouts used when none are configured.
func DefaultLayouts() Layouts {
	return Layouts{
		Date:     DefaultDateFormat,
		DateTime: DefaultDateTimeFormat,
		Time:     DefaultTimeFormat,
	}
}

const (
	DefaultDateFormat     = "2006-01-02"
	DefaultDateTimeFormat = "2006-01-02 15:04"
	DefaultTimeFormat     = "15:04"
)

func (l Layouts) forKind(k dateKind) string {
	switch k {
	case kindDate:
		return l.Date
	case kindDateTime:
		return l.DateTime
	case kindTime:
		return l.Time
	}
	return ""
}

func invalidParam(name RuleName, format string, args ...any) error {
	return fmt.Errorf("%w: rule %q: %s", ErrInvalidParam, name, fmt.Sprintf(format, args...))
}

func boolParam(name RuleName, raw any, _ string) (any, error) {
	b, ok := raw.(bool)
	if !ok {
		return nil, invalidParam(name, "expected bool, got %T", raw)
	}
	return b, nil
}

func numberParam(name RuleName, raw any, _ string) (any, error) {
	if _, isBool := raw.(bool); !isBool {
		if f, ok := toFloat(raw); ok && !math.IsNaN(f) {
			return f, nil
		}
	}
	return nil, invalidParam(name, "expected a number, got %T(%v)", raw, raw)
}

// sizeParam accepts a byte count that fits in an int64.
func sizeParam(name RuleName, raw any, _ string) (any, error) {
	if _, isBool := raw.(bool); !isBool {
		if f, ok := toFloat(raw); ok && f >= 0 && f < math.MaxInt64 {
			return math.Trunc(f), nil
		}
	}
	return nil, invalidParam(name, "expected a non-negative byte count, got %T(%v)", raw, raw)
}

func decimalParam(name RuleName, raw any, _ string) (any, error) {
	if b, ok := raw.(bool); ok {
		return b, nil
	}
	f, ok := toFloat(raw)
	if !ok || f < 0 || f != math.Trunc(f) {
		return nil, invalidParam(name, "expected bool or a non-negative digit count, got %T(%v)", raw, raw)
	}
	return int(f), nil
}

func pairParam(name RuleName, raw any) (any, any, error) {
	items, ok := collection(raw)
	if !ok || len(items) != 2 {
		return nil, nil, invalidParam(name, "expected an ordered pair [min, max], got %T(%v)", raw, raw)
	}
	return items[0], items[1], nil
}

func numRangeParam(name RuleName, raw any, _ string) (any, error) {
	a, b, err := pairParam(name, raw)
	if err != nil {
		return nil, err
	}
	lo, err := numberParam(name, a, "")
	if err != nil {
		return nil, err
	}
	hi, err := numberParam(name, b, "")
	if err != nil {
		return nil, err
	}
	return numRange{min: lo.(float64), max: hi.(float64)}, nil
}

func dateParam(name RuleName, raw any, layout string) (any, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := time.Parse(layout, strings.TrimSpace(v))
		if err != nil {
			return nil, invalidParam(name, "expected a date in layout %q: %v", layout, err)
		}
		return t, nil
	}
	return nil, invalidParam(name, "expected a date string or time.Time, got %T", raw)
}

func dateRangeParam(name RuleName, raw any, layout string) (any, error) {
	a, b, err := pairParam(name, raw)
	if err != nil {
		return nil, err
	}
	lo, err := dateParam(name, a, layout)
	if err != nil {
		return nil, err
	}
	hi, err := dateParam(name, b, layout)
	if err != nil {
		return nil, err
	}
	return timeRange{min: lo.(time.Time), max: hi.(time.Time)}, nil
}

// setParam accepts a collection of scalars or a map whose keys and values
// are both members.
func setParam(name RuleName, raw any, _ string) (any, error) {
	set := &valueSet{index: make(map[string]struct{})}

	switch v := raw.(type) {
	case map[string]any:
		for _, k := range sortedKeys(v) {
			set.add(k)
			if isScalar(v[k]) {
				set.add(toString(v[k]))
			}
		}
	case map[string]string:
		for _, k := range sortedKeys(v) {
			set.add(k)
			set.add(v[k])
		}
	default:
		items, ok := toStrings(raw)
		if !ok {
			return nil, invalidParam(name, "expected a non-empty list of values, got %T", raw)
		}
		if _, single := raw.(string); single {
			return nil, invalidParam(name, "expected a non-empty list of values, got a string")
		}
		for _, item := range items {
			set.add(item)
		}
	}

	if len(set.items) == 0 {
		return nil, invalidParam(name, "expected a non-empty list of values")
	}
	return set, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func featuresParam(name RuleName, raw any, _ string) (any, error) {
	items, ok := toStrings(raw)
	if !ok || len(items) == 0 {
		return nil, invalidParam(name, "expected a non-empty list of string features, got %T", raw)
	}

	var unknown []string
	requested := make([]Feature, 0, len(items))
	for _, item := range items {
		f := Feature(item)
		if !slices.Contains(Features, f) {
			unknown = append(unknown, item)
			continue
		}
		if !slices.Contains(requested, f) {
			requested = append(requested, f)
		}
	}
	if len(unknown) > 0 {
		return nil, invalidParam(name, "unknown string features (%s)", strings.Join(unknown, ", "))
	}
	return requested, nil
}

func fieldRefsParam(name RuleName, raw any, _ string) (any, error) {
	if raw == nil {
		return nil, invalidParam(name, "expected a field name or a list of field names, got nil")
	}
	items, ok := toStrings(raw)
	if !ok || len(items) == 0 {
		return nil, invalidParam(name, "expected a field name or a list of field names, got %T", raw)
	}
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			return nil, invalidParam(name, "field names must not be empty")
		}
	}
	return fieldRefs(items), nil
}

func extensionParam(name RuleName, raw any, _ string) (any, error) {
	if raw == nil {
		return nil, invalidParam(name, "expected an extension or a list of extensions, got nil")
	}
	items, ok := toStrings(raw)
	if !ok || len(items) == 0 {
		return nil, invalidParam(name, "expected an extension or a list of extensions, got %T", raw)
	}
	exts := make([]string, 0, len(items))
	for _, item := range items {
		ext := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(item), "."))
		if ext == "" {
			return nil, invalidParam(name, "extensions must not be empty")
		}
		exts = append(exts, ext)
	}
	return exts, nil
}

func compareParam(name RuleName, raw any, _ string) (any, error) {
	if raw == nil {
		return nil, invalidParam(name, "expected a value to compare with, got nil")
	}
	return raw, nil
}

func predicateParam(name RuleName, raw any, _ string) (any, error) {
	switch fn := raw.(type) {
	case Predicate:
		if fn != nil {
			return fn, nil
		}
	case func(any, Record) bool:
		if fn != nil {
			return Predicate(fn), nil
		}
	case func(any, map[string]any) bool:
		if fn != nil {
			return Predicate(func(v any, r Record) bool { return fn(v, r) }), nil
		}
	case func(any) bool:
		if fn != nil {
			return Predicate(func(v any, _ Record) bool { return fn(v) }), nil
		}
	}
	return nil, invalidParam(name, "expected func(value any, record Record) bool, got %T", raw)
}
