package validator

func checkRequired(_ *evalContext, spec RuleSpec, value any) Result {
	if enabled, _ := spec.param.(bool); !enabled {
		return Ok()
	}
	if isEmpty(value) {
		return Fail(string(RuleRequired))
	}
	return Ok()
}

// checkRequiredEither passes when the value or any referenced sibling is
// filled in. A referenced field missing from the record is a reference
// error, reported apart from the plain violation.
func checkRequiredEither(ec *evalContext, spec RuleSpec, value any) Result {
	if !isEmpty(value) {
		return Ok()
	}
	filled := false
	for _, ref := range spec.param.(fieldRefs) {
		sibling, ok := ec.record.Lookup(ref)
		if !ok {
			return Fail(violationEitherField)
		}
		if !isEmpty(sibling) {
			filled = true
		}
	}
	if !filled {
		return Fail(string(RuleRequiredEither))
	}
	return Ok()
}

// checkOptions requires every submitted value to be an allowed option.
func checkOptions(_ *evalContext, spec RuleSpec, value any) Result {
	if isEmpty(value) {
		return Ok()
	}
	set := spec.param.(*valueSet)
	if items, ok := collection(value); ok {
		for _, item := range items {
			if !set.has(toString(item)) {
				return Fail(string(RuleOptions))
			}
		}
		return Ok()
	}
	if !set.has(toString(value)) {
		return Fail(string(RuleOptions))
	}
	return Ok()
}

// checkUnique fails when the value is already in the set of existing values.
func checkUnique(_ *evalContext, spec RuleSpec, value any) Result {
	if isEmpty(value) {
		return Ok()
	}
	set := spec.param.(*valueSet)
	if items, ok := collection(value); ok {
		for _, item := range items {
			if set.has(toString(item)) {
				return Fail(string(RuleUnique))
			}
		}
		return Ok()
	}
	if set.has(toString(value)) {
		return Fail(string(RuleUnique))
	}
	return Ok()
}

func checkCompare(_ *evalContext, spec RuleSpec, value any) Result {
	if isEmpty(value) {
		return Ok()
	}
	if toString(value) != toString(spec.param) {
		return Fail(string(RuleCompare))
	}
	return Ok()
}

func checkCustom(ec *evalContext, spec RuleSpec, value any) Result {
	if !spec.param.(Predicate)(value, ec.record) {
		return Fail(string(RuleCustom))
	}
	return Ok()
}
