package validator

// Result is the outcome of one rule check: Ok, or a named violation.
// Details are catalog keys appended to the violation message.
type Result struct {
	violation string
	details   []string
}

// Ok is a passing Result.
func Ok() Result {
	return Result{}
}

// Fail returns a violation named name. The name doubles as the catalog key
// of the message template.
func Fail(name string, details ...string) Result {
	return Result{violation: name, details: details}
}

// OK reports whether the check passed.
func (r Result) OK() bool {
	return r.violation == ""
}

// Violation returns the violation name, empty when the check passed.
func (r Result) Violation() string {
	return r.violation
}

// Details returns the catalog keys that qualify the violation.
func (r Result) Details() []string {
	return r.details
}
