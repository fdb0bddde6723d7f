package validator

// RuleName identifies a rule kind.
type RuleName string

const (
	RuleRequired       RuleName = "required"
	RuleRequiredEither RuleName = "required_either"
	RuleOptions        RuleName = "options"
	RuleCompare        RuleName = "compare"

	RuleMinLength   RuleName = "min_length"
	RuleMaxLength   RuleName = "max_length"
	RuleExactLength RuleName = "exact_length"
	RuleRangeLength RuleName = "range_length"

	RuleMinVal   RuleName = "min_val"
	RuleMaxVal   RuleName = "max_val"
	RuleExactVal RuleName = "exact_val"
	RuleRangeVal RuleName = "range_val"

	RuleDate      RuleName = "date"
	RuleMinDate   RuleName = "min_date"
	RuleMaxDate   RuleName = "max_date"
	RuleRangeDate RuleName = "range_date"

	RuleDateTime      RuleName = "date_time"
	RuleMinDateTime   RuleName = "min_date_time"
	RuleMaxDateTime   RuleName = "max_date_time"
	RuleRangeDateTime RuleName = "range_date_time"

	RuleTime      RuleName = "time"
	RuleMinTime   RuleName = "min_time"
	RuleMaxTime   RuleName = "max_time"
	RuleRangeTime RuleName = "range_time"

	RuleMinDateField     RuleName = "min_date_field"
	RuleMaxDateField     RuleName = "max_date_field"
	RuleMinDateTimeField RuleName = "min_date_time_field"
	RuleMaxDateTimeField RuleName = "max_date_time_field"
	RuleMinTimeField     RuleName = "min_time_field"
	RuleMaxTimeField     RuleName = "max_time_field"

	RuleURL       RuleName = "url"
	RuleEmail     RuleName = "email"
	RuleExtension RuleName = "extension"
	RuleJSON      RuleName = "json"
	RuleMaxSize   RuleName = "max_size"
	RuleMinSize   RuleName = "min_size"
	RuleUnique    RuleName = "unique"

	RuleStringAllow RuleName = "string_allow"
	RuleStringDeny  RuleName = "string_deny"

	RuleCustom  RuleName = "custom"
	RuleUpload  RuleName = "upload"
	RuleNumber  RuleName = "number"
	RuleDecimal RuleName = "decimal"
)

// RuleNames lists every supported rule in declaration order.
func RuleNames() []RuleName {
	names := make([]RuleName, len(ruleOrder))
	copy(names, ruleOrder)
	return names
}

var ruleOrder = []RuleName{
	RuleRequired, RuleRequiredEither, RuleOptions, RuleCompare,
	RuleMinLength, RuleMaxLength, RuleExactLength, RuleRangeLength,
	RuleMinVal, RuleMaxVal, RuleExactVal, RuleRangeVal,
	RuleDate, RuleMinDate, RuleMaxDate, RuleRangeDate,
	RuleDateTime, RuleMinDateTime, RuleMaxDateTime, RuleRangeDateTime,
	RuleTime, RuleMinTime, RuleMaxTime, RuleRangeTime,
	RuleMinDateField, RuleMaxDateField,
	RuleMinDateTimeField, RuleMaxDateTimeField,
	RuleMinTimeField, RuleMaxTimeField,
	RuleURL, RuleEmail, RuleExtension, RuleJSON,
	RuleMaxSize, RuleMinSize, RuleUnique,
	RuleStringAllow, RuleStringDeny,
	RuleCustom, RuleUpload, RuleNumber, RuleDecimal,
}

// Feature is a character class used by string_allow and string_deny.
type Feature string

const (
	FeatureAlpha       Feature = "alpha"
	FeatureNumbers     Feature = "numbers"
	FeatureSpaces      Feature = "spaces"
	FeatureLowStrips   Feature = "low_strips"
	FeatureMidStrips   Feature = "mid_strips"
	FeatureDots        Feature = "dots"
	FeatureCommas      Feature = "commas"
	FeaturePunctuation Feature = "punctuation"
	FeatureQuotes      Feature = "quotes"
	FeatureSymbols     Feature = "symbols"
)

// Features is the string-feature vocabulary in evaluation order.
var Features = []Feature{
	FeatureAlpha, FeatureNumbers, FeatureSpaces, FeatureLowStrips, FeatureMidStrips,
	FeatureDots, FeatureCommas, FeaturePunctuation, FeatureQuotes, FeatureSymbols,
}

// Severity decides which outcome bucket a violation lands in.
type Severity int

const (
	// SeverityError fails the validation pass.
	SeverityError Severity = iota
	// SeverityWarning only annotates.
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Violation names that are not rule names.
const (
	violationString        = "string"
	violationEitherField   = "required_either_field"
	violationUnknownRule   = "unknown_rule"
	violationDateField     = "date_field"
	violationDateTimeField = "date_time_field"
	violationTimeField     = "time_field"
)
