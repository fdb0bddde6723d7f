package validator

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/dmitrymomot/formrules/pkg/file"
)

// eachFile applies check to a single descriptor or to every descriptor of a
// multi-file value, stopping at the first failure. The bool is false when
// the value is not a file.
func eachFile(value any, check func(d file.Descriptor) Result) (Result, bool) {
	if files, ok := asDescriptors(value); ok {
		for _, d := range files {
			if r := check(d); !r.OK() {
				return r, true
			}
		}
		return Ok(), true
	}
	if d, ok := asDescriptor(value); ok {
		return check(d), true
	}
	return Ok(), false
}

// checkUpload requires a transfer without error and an existing backing file.
func checkUpload(ec *evalContext, spec RuleSpec, value any) Result {
	if enabled, _ := spec.param.(bool); !enabled {
		return Ok()
	}

	noFile := Fail(string(RuleUpload), file.UploadErrorKey(file.UploadNoFile))
	if isEmpty(value) {
		if d, ok := asDescriptor(value); ok && d.Error != file.UploadOK {
			return uploadFailure(d.Error)
		}
		return noFile
	}

	res, handled := eachFile(value, func(d file.Descriptor) Result {
		if d.Error != file.UploadOK {
			return uploadFailure(d.Error)
		}
		if d.IsEmpty() {
			return noFile
		}
		if d.TmpPath == "" || !ec.files.Exists(ec.ctx, d.TmpPath) {
			return Fail(string(RuleUpload))
		}
		return Ok()
	})
	if !handled {
		return Fail(string(RuleUpload))
	}
	return res
}

func uploadFailure(code int) Result {
	if key := file.UploadErrorKey(code); key != "" {
		return Fail(string(RuleUpload), key)
	}
	return Fail(string(RuleUpload))
}

// checkExtension compares file extensions case-insensitively. Plain string
// values are treated as file names.
func checkExtension(_ *evalContext, spec RuleSpec, value any) Result {
	if isEmpty(value) {
		return Ok()
	}
	allowed := spec.param.([]string)
	match := func(ext string) Result {
		if !slices.Contains(allowed, ext) {
			return Fail(string(RuleExtension))
		}
		return Ok()
	}

	res, handled := eachFile(value, func(d file.Descriptor) Result {
		if d.IsEmpty() {
			return Ok()
		}
		return match(d.Extension())
	})
	if handled {
		return res
	}
	return match(strings.ToLower(strings.TrimPrefix(filepath.Ext(toString(value)), ".")))
}

func checkSize(name RuleName, value any, broken func(size float64) bool) Result {
	if isEmpty(value) {
		return Ok()
	}
	res, handled := eachFile(value, func(d file.Descriptor) Result {
		if d.IsEmpty() {
			return Ok()
		}
		if broken(float64(d.Size)) {
			return Fail(string(name))
		}
		return Ok()
	})
	if handled {
		return res
	}
	size, ok := numericValue(value)
	if !ok || broken(size) {
		return Fail(string(name))
	}
	return Ok()
}

func checkMinSize(_ *evalContext, spec RuleSpec, value any) Result {
	limit := spec.param.(float64)
	return checkSize(RuleMinSize, value, func(size float64) bool { return size < limit })
}

func checkMaxSize(_ *evalContext, spec RuleSpec, value any) Result {
	limit := spec.param.(float64)
	return checkSize(RuleMaxSize, value, func(size float64) bool { return size > limit })
}
