package validator

import (
	"math"
	"strings"
)

// numericValue parses the value as a finite number.
func numericValue(value any) (float64, bool) {
	if _, isBool := value.(bool); isBool {
		return 0, false
	}
	f, ok := toFloat(value)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func checkMinVal(_ *evalContext, spec RuleSpec, value any) Result {
	if isEmpty(value) {
		return Ok()
	}
	n, ok := numericValue(value)
	if !ok || n < spec.param.(float64) {
		return Fail(string(RuleMinVal))
	}
	return Ok()
}

func checkMaxVal(_ *evalContext, spec RuleSpec, value any) Result {
	if isEmpty(value) {
		return Ok()
	}
	n, ok := numericValue(value)
	if !ok || n > spec.param.(float64) {
		return Fail(string(RuleMaxVal))
	}
	return Ok()
}

func checkExactVal(_ *evalContext, spec RuleSpec, value any) Result {
	if isEmpty(value) {
		return Ok()
	}
	n, ok := numericValue(value)
	if !ok || n != spec.param.(float64) {
		return Fail(string(RuleExactVal))
	}
	return Ok()
}

func checkRangeVal(_ *evalContext, spec RuleSpec, value any) Result {
	if isEmpty(value) {
		return Ok()
	}
	r := spec.param.(numRange)
	n, ok := numericValue(value)
	if !ok || n < r.min || n > r.max {
		return Fail(string(RuleRangeVal))
	}
	return Ok()
}

func checkNumber(_ *evalContext, spec RuleSpec, value any) Result {
	if enabled, _ := spec.param.(bool); !enabled || isEmpty(value) {
		return Ok()
	}
	if _, ok := numericValue(value); !ok {
		return Fail(string(RuleNumber))
	}
	return Ok()
}

// checkDecimal matches digits, a dot and either any number of fraction
// digits (param true) or exactly param of them.
func checkDecimal(_ *evalContext, spec RuleSpec, value any) Result {
	if enabled, isFlag := spec.param.(bool); isFlag && !enabled {
		return Ok()
	}
	if isEmpty(value) {
		return Ok()
	}

	whole, fraction, found := strings.Cut(toString(value), ".")
	if !found || !isDigits(whole) || (fraction != "" && !isDigits(fraction)) {
		return Fail(string(RuleDecimal))
	}

	switch p := spec.param.(type) {
	case int:
		if len(fraction) != p {
			return Fail(string(RuleDecimal))
		}
	default:
		if fraction == "" {
			return Fail(string(RuleDecimal))
		}
	}
	return Ok()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
