package validator

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[_a-z0-9-]+(\.[_a-z0-9-]+)*@[a-z0-9-]+(\.[a-z0-9-]+)*(\.[a-z]{2,3})$`)
	urlRegex   = regexp.MustCompile(`(?i)^(https?://)?([a-z0-9.-]+)\.([a-z.]{2,6})([/\w?=.-]*)*/?$`)
)

func checkEmail(_ *evalContext, spec RuleSpec, value any) Result {
	if enabled, _ := spec.param.(bool); !enabled || isEmpty(value) {
		return Ok()
	}
	if !emailRegex.MatchString(strings.ToLower(strings.TrimSpace(toString(value)))) {
		return Fail(string(RuleEmail))
	}
	return Ok()
}

func checkURL(_ *evalContext, spec RuleSpec, value any) Result {
	if enabled, _ := spec.param.(bool); !enabled || isEmpty(value) {
		return Ok()
	}
	if !urlRegex.MatchString(strings.TrimSpace(toString(value))) {
		return Fail(string(RuleURL))
	}
	return Ok()
}

// checkJSON validates encoded JSON. Already decoded values pass when they
// can be encoded.
func checkJSON(_ *evalContext, spec RuleSpec, value any) Result {
	if enabled, _ := spec.param.(bool); !enabled || isEmpty(value) {
		return Ok()
	}

	var valid bool
	switch v := value.(type) {
	case string:
		valid = json.Valid([]byte(v))
	case []byte:
		valid = json.Valid(v)
	case json.RawMessage:
		valid = json.Valid(v)
	default:
		_, err := json.Marshal(v)
		valid = err == nil
	}
	if !valid {
		return Fail(string(RuleJSON))
	}
	return Ok()
}
