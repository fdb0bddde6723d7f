// Package formrules assembles a ready-to-use validator from environment
// configuration.
//
// The rule engine itself lives in pkg/validator. This package wires it to
// the message catalogs of pkg/i18n, the upload checkers of pkg/file and the
// slog factory of pkg/logger:
//
//	cfg, err := formrules.LoadConfig()
//	if err != nil {
//		return err
//	}
//	v, err := formrules.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	v.MustAdd("age", validator.RuleRangeVal, []int{18, 65})
//
//	out := v.Validate(validator.Record{"age": 70})
//	// out.Errors["age"] == "The value must be between 18 and 65."
//
// Every setting is read from variables prefixed with FORMRULES_, e.g.
// FORMRULES_LANGUAGE=es or FORMRULES_STORAGE=s3.
package formrules
