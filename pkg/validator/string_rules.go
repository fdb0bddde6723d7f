package validator

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

func runeLength(value any) int {
	return utf8.RuneCountInString(toString(value))
}

func checkMinLength(_ *evalContext, spec RuleSpec, value any) Result {
	if isEmpty(value) {
		return Ok()
	}
	if float64(runeLength(value)) < spec.param.(float64) {
		return Fail(string(RuleMinLength))
	}
	return Ok()
}

func checkMaxLength(_ *evalContext, spec RuleSpec, value any) Result {
	if isEmpty(value) {
		return Ok()
	}
	if float64(runeLength(value)) > spec.param.(float64) {
		return Fail(string(RuleMaxLength))
	}
	return Ok()
}

func checkExactLength(_ *evalContext, spec RuleSpec, value any) Result {
	if isEmpty(value) {
		return Ok()
	}
	if float64(runeLength(value)) != spec.param.(float64) {
		return Fail(string(RuleExactLength))
	}
	return Ok()
}

func checkRangeLength(_ *evalContext, spec RuleSpec, value any) Result {
	if isEmpty(value) {
		return Ok()
	}
	r := spec.param.(numRange)
	n := float64(runeLength(value))
	if n < r.min || n > r.max {
		return Fail(string(RuleRangeLength))
	}
	return Ok()
}

// symbolAllowed lists the punctuation that does not count as a symbol.
const symbolAllowed = `|&*():+.,[]-;/?!¿¡'"#%$@`

var featureDetectors = map[Feature]func(rune) bool{
	FeatureAlpha:       unicode.IsLetter,
	FeatureNumbers:     func(r rune) bool { return r >= '0' && r <= '9' },
	FeatureSpaces:      unicode.IsSpace,
	FeatureLowStrips:   func(r rune) bool { return r == '_' },
	FeatureMidStrips:   func(r rune) bool { return r == '-' },
	FeatureDots:        func(r rune) bool { return r == '.' },
	FeatureCommas:      func(r rune) bool { return r == ',' },
	FeaturePunctuation: func(r rune) bool { return strings.ContainsRune("¿?¡!", r) },
	FeatureQuotes:      func(r rune) bool { return r == '\'' || r == '"' },
	FeatureSymbols:     isSymbol,
}

func isSymbol(r rune) bool {
	switch {
	case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r), r == '_':
		return false
	}
	return !strings.ContainsRune(symbolAllowed, r)
}

func hasFeature(s string, f Feature) bool {
	return strings.ContainsFunc(s, featureDetectors[f])
}

// stringViolations returns the features the value breaks, in vocabulary order.
//
//	allow mode: requested features are always fine, others must be absent.
//	deny mode:  requested features must be absent, others are always fine.
func stringViolations(allow bool, s string, requested []Feature) []Feature {
	var broken []Feature
	for _, f := range Features {
		isRequested := slices.Contains(requested, f)
		if allow == isRequested {
			continue
		}
		if hasFeature(s, f) {
			broken = append(broken, f)
		}
	}
	return broken
}

func checkStringMode(allow bool, spec RuleSpec, value any) Result {
	if isEmpty(value) {
		return Ok()
	}
	broken := stringViolations(allow, toString(value), spec.param.([]Feature))
	if len(broken) == 0 {
		return Ok()
	}
	details := make([]string, len(broken))
	for i, f := range broken {
		details[i] = violationString + "_" + string(f)
	}
	return Fail(violationString, details...)
}

func checkStringAllow(_ *evalContext, spec RuleSpec, value any) Result {
	return checkStringMode(true, spec, value)
}

func checkStringDeny(_ *evalContext, spec RuleSpec, value any) Result {
	return checkStringMode(false, spec, value)
}
