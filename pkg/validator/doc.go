// Package validator is a declarative, per-field rule engine for form-like
// records.
//
// Rules are registered per field on a Validator. Each rule has a name from a
// closed set (RuleRequired, RuleMinLength, RuleRangeDate, RuleUpload, ...), a
// parameter whose shape is checked once when the rule is built, a severity and
// an optional message override. Validating a record runs every rule of every
// submitted field and collects the failures instead of stopping at the first.
//
// # Architecture
//
//   - RuleSpec        – one configured rule; immutable, built by NewRule or Validator.Add
//   - registry        – maps each RuleName to its parameter check and evaluator
//   - Result          – Ok or a named violation returned by every evaluator
//   - MessageFormatter – renders {field}, {value} and {param} into catalog templates
//   - Validator       – holds the rule set and produces an Outcome per record
//
// Evaluators receive the whole record explicitly, which is how cross-field
// rules (required_either, min_date_field, ...) read sibling values. Empty
// values pass every rule except required, required_either and upload.
//
// # Usage
//
//	v := validator.New(validator.WithCatalog(catalog))
//	v.MustAdd("age", validator.RuleRangeVal, []int{18, 65}).
//		MustAdd("nick", validator.RuleStringAllow, []string{"alpha", "numbers"}).
//		MustAdd("bio", validator.RuleMaxLength, 200, validator.AsWarning())
//
//	out := v.Validate(validator.Record{"age": 70, "nick": "bob_99"})
//	if !out.Valid {
//		// out.Errors["age"] == "The value must be between 18 and 65."
//	}
//
// # Error Handling
//
// Setup problems are returned when a rule is built: ErrUnknownRule for an
// unsupported name and ErrInvalidParam for a malformed parameter. Violations
// never abort a pass. Outcome.Err exposes the error-severity violations as
// ValidationErrors, which work with ExtractValidationErrors and
// IsValidationError.
//
// With WithReturnBoolean(true) the Outcome only carries Valid.
package validator
