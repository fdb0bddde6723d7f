package validator

import (
	"context"

	"github.com/dmitrymomot/formrules/pkg/file"
)

// evalContext carries what a check may read besides its own value.
type evalContext struct {
	ctx    context.Context
	record Record
	files  file.Checker
}

type checkFunc func(ec *evalContext, spec RuleSpec, value any) Result

type normalizeFunc func(name RuleName, raw any, layout string) (any, error)

// ruleDef pairs a parameter-shape check with the evaluator of a rule.
type ruleDef struct {
	normalize normalizeFunc
	check     checkFunc
	kind      dateKind
	bytes     bool // {param} renders as a human-readable size
}

var registry = map[RuleName]ruleDef{
	RuleRequired:       {normalize: boolParam, check: checkRequired},
	RuleRequiredEither: {normalize: fieldRefsParam, check: checkRequiredEither},
	RuleOptions:        {normalize: setParam, check: checkOptions},
	RuleCompare:        {normalize: compareParam, check: checkCompare},
	RuleUnique:         {normalize: setParam, check: checkUnique},
	RuleCustom:         {normalize: predicateParam, check: checkCustom},

	RuleMinLength:   {normalize: numberParam, check: checkMinLength},
	RuleMaxLength:   {normalize: numberParam, check: checkMaxLength},
	RuleExactLength: {normalize: numberParam, check: checkExactLength},
	RuleRangeLength: {normalize: numRangeParam, check: checkRangeLength},
	RuleStringAllow: {normalize: featuresParam, check: checkStringAllow},
	RuleStringDeny:  {normalize: featuresParam, check: checkStringDeny},

	RuleMinVal:   {normalize: numberParam, check: checkMinVal},
	RuleMaxVal:   {normalize: numberParam, check: checkMaxVal},
	RuleExactVal: {normalize: numberParam, check: checkExactVal},
	RuleRangeVal: {normalize: numRangeParam, check: checkRangeVal},
	RuleNumber:   {normalize: boolParam, check: checkNumber},
	RuleDecimal:  {normalize: decimalParam, check: checkDecimal},

	RuleDate:      {normalize: boolParam, check: checkDateFormat, kind: kindDate},
	RuleMinDate:   {normalize: dateParam, check: checkMinDate, kind: kindDate},
	RuleMaxDate:   {normalize: dateParam, check: checkMaxDate, kind: kindDate},
	RuleRangeDate: {normalize: dateRangeParam, check: checkRangeDate, kind: kindDate},

	RuleDateTime:      {normalize: boolParam, check: checkDateFormat, kind: kindDateTime},
	RuleMinDateTime:   {normalize: dateParam, check: checkMinDate, kind: kindDateTime},
	RuleMaxDateTime:   {normalize: dateParam, check: checkMaxDate, kind: kindDateTime},
	RuleRangeDateTime: {normalize: dateRangeParam, check: checkRangeDate, kind: kindDateTime},

	RuleTime:      {normalize: boolParam, check: checkDateFormat, kind: kindTime},
	RuleMinTime:   {normalize: dateParam, check: checkMinDate, kind: kindTime},
	RuleMaxTime:   {normalize: dateParam, check: checkMaxDate, kind: kindTime},
	RuleRangeTime: {normalize: dateRangeParam, check: checkRangeDate, kind: kindTime},

	RuleMinDateField:     {normalize: fieldRefsParam, check: checkMinDateField, kind: kindDate},
	RuleMaxDateField:     {normalize: fieldRefsParam, check: checkMaxDateField, kind: kindDate},
	RuleMinDateTimeField: {normalize: fieldRefsParam, check: checkMinDateField, kind: kindDateTime},
	RuleMaxDateTimeField: {normalize: fieldRefsParam, check: checkMaxDateField, kind: kindDateTime},
	RuleMinTimeField:     {normalize: fieldRefsParam, check: checkMinDateField, kind: kindTime},
	RuleMaxTimeField:     {normalize: fieldRefsParam, check: checkMaxDateField, kind: kindTime},

	RuleURL:   {normalize: boolParam, check: checkURL},
	RuleEmail: {normalize: boolParam, check: checkEmail},
	RuleJSON:  {normalize: boolParam, check: checkJSON},

	RuleUpload:    {normalize: boolParam, check: checkUpload},
	RuleExtension: {normalize: extensionParam, check: checkExtension},
	RuleMinSize:   {normalize: sizeParam, check: checkMinSize, bytes: true},
	RuleMaxSize:   {normalize: sizeParam, check: checkMaxSize, bytes: true},
}

// IsKnownRule reports whether name is a supported rule.
func IsKnownRule(name RuleName) bool {
	_, ok := registry[name]
	return ok
}

// Evaluate runs a single rule against value. The record gives cross-field
// rules access to sibling values; a nil checker falls back to file.OSChecker.
func Evaluate(ctx context.Context, spec RuleSpec, value any, record Record, files file.Checker) Result {
	def, ok := registry[spec.name]
	if !ok {
		return Fail(violationUnknownRule)
	}
	if files == nil {
		files = file.OSChecker{}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return def.check(&evalContext{ctx: ctx, record: record, files: files}, spec, value)
}
