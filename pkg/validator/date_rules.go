package validator

import (
	"strings"
	"time"
)

// kindViolation names the format violation of each date kind.
var kindViolation = map[dateKind]string{
	kindDate:     string(RuleDate),
	kindDateTime: string(RuleDateTime),
	kindTime:     string(RuleTime),
}

// kindFieldViolation names the reference error of each date kind.
var kindFieldViolation = map[dateKind]string{
	kindDate:     violationDateField,
	kindDateTime: violationDateTimeField,
	kindTime:     violationTimeField,
}

// parseTime reads a value as the layout sees it. time.Time values are
// truncated to the layout precision so bounds and values compare alike.
func parseTime(value any, layout string) (time.Time, bool) {
	if t, ok := value.(time.Time); ok {
		return truncateToLayout(t, layout), true
	}
	t, err := time.Parse(layout, strings.TrimSpace(toString(value)))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func truncateToLayout(t time.Time, layout string) time.Time {
	out, err := time.Parse(layout, t.Format(layout))
	if err != nil {
		return t
	}
	return out
}

func specKind(spec RuleSpec) dateKind {
	return spec.kind
}

func checkDateFormat(_ *evalContext, spec RuleSpec, value any) Result {
	if enabled, _ := spec.param.(bool); !enabled || isEmpty(value) {
		return Ok()
	}
	if _, ok := parseTime(value, spec.layout); !ok {
		return Fail(kindViolation[specKind(spec)])
	}
	return Ok()
}

func checkMinDate(_ *evalContext, spec RuleSpec, value any) Result {
	if isEmpty(value) {
		return Ok()
	}
	t, ok := parseTime(value, spec.layout)
	if !ok {
		return Fail(kindViolation[specKind(spec)])
	}
	if t.Before(truncateToLayout(spec.param.(time.Time), spec.layout)) {
		return Fail(string(spec.name))
	}
	return Ok()
}

func checkMaxDate(_ *evalContext, spec RuleSpec, value any) Result {
	if isEmpty(value) {
		return Ok()
	}
	t, ok := parseTime(value, spec.layout)
	if !ok {
		return Fail(kindViolation[specKind(spec)])
	}
	if t.After(truncateToLayout(spec.param.(time.Time), spec.layout)) {
		return Fail(string(spec.name))
	}
	return Ok()
}

func checkRangeDate(_ *evalContext, spec RuleSpec, value any) Result {
	if isEmpty(value) {
		return Ok()
	}
	t, ok := parseTime(value, spec.layout)
	if !ok {
		return Fail(kindViolation[specKind(spec)])
	}
	r := spec.param.(timeRange)
	if t.Before(truncateToLayout(r.min, spec.layout)) || t.After(truncateToLayout(r.max, spec.layout)) {
		return Fail(string(spec.name))
	}
	return Ok()
}

// compareWithFields parses every referenced sibling and reports the first
// one for which broken returns true.
func compareWithFields(ec *evalContext, spec RuleSpec, value any, broken func(value, sibling time.Time) bool) Result {
	if isEmpty(value) {
		return Ok()
	}
	kind := specKind(spec)
	t, ok := parseTime(value, spec.layout)
	if !ok {
		return Fail(kindViolation[kind])
	}
	for _, ref := range spec.param.(fieldRefs) {
		raw, ok := ec.record.Lookup(ref)
		if !ok || isEmpty(raw) {
			return Fail(kindFieldViolation[kind])
		}
		sibling, ok := parseTime(raw, spec.layout)
		if !ok {
			return Fail(kindFieldViolation[kind])
		}
		if broken(t, sibling) {
			return Fail(string(spec.name))
		}
	}
	return Ok()
}

// checkMinDateField requires the value not to be before any referenced field.
func checkMinDateField(ec *evalContext, spec RuleSpec, value any) Result {
	return compareWithFields(ec, spec, value, func(v, s time.Time) bool { return v.Before(s) })
}

// checkMaxDateField requires the value not to be after any referenced field.
func checkMaxDateField(ec *evalContext, spec RuleSpec, value any) Result {
	return compareWithFields(ec, spec, value, func(v, s time.Time) bool { return v.After(s) })
}
