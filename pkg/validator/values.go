package validator

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/formrules/pkg/file"
)

// Record is the input of one validation pass: field name to value.
type Record map[string]any

// Lookup returns a field value and whether it was submitted.
func (r Record) Lookup(field string) (any, bool) {
	v, ok := r[field]
	return v, ok
}

// isEmpty reports whether a value counts as not provided.
// "0" and numeric zero are present.
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case file.Descriptor:
		return val.IsEmpty()
	case *file.Descriptor:
		return val == nil || val.IsEmpty()
	case time.Time:
		return val.IsZero()
	case map[string]any:
		if d, ok := file.FromMap(val); ok {
			return d.IsEmpty()
		}
		return len(val) == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		if rv.Len() == 0 {
			return true
		}
		if ds, ok := asDescriptors(v); ok {
			for _, d := range ds {
				if !d.IsEmpty() {
					return false
				}
			}
			return true
		}
		return false
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// collection returns the elements of a slice or array value.
// Strings and byte slices are not collections.
func collection(v any) ([]any, bool) {
	switch val := v.(type) {
	case nil, string, []byte, json.RawMessage:
		return nil, false
	case []any:
		return val, true
	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = s
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asDescriptor normalizes a single uploaded file value.
func asDescriptor(v any) (file.Descriptor, bool) {
	switch val := v.(type) {
	case file.Descriptor:
		return val, true
	case *file.Descriptor:
		if val == nil {
			return file.Descriptor{Error: file.UploadNoFile}, true
		}
		return *val, true
	case map[string]any:
		return file.FromMap(val)
	}
	return file.Descriptor{}, false
}

// asDescriptors detects a non-empty collection made only of file descriptors.
func asDescriptors(v any) ([]file.Descriptor, bool) {
	items, ok := collection(v)
	if !ok || len(items) == 0 {
		return nil, false
	}
	out := make([]file.Descriptor, 0, len(items))
	for _, item := range items {
		d, ok := asDescriptor(item)
		if !ok {
			return nil, false
		}
		out = append(out, d)
	}
	return out, true
}

// toString renders a scalar the way it is compared and displayed.
func toString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case json.Number:
		return val.String()
	case file.Descriptor:
		return val.Name
	case *file.Descriptor:
		if val == nil {
			return ""
		}
		return val.Name
	case fmt.Stringer:
		return val.String()
	}
	if d, ok := asDescriptor(v); ok {
		return d.Name
	}
	return fmt.Sprint(v)
}

// toFloat converts Go numbers and numeric strings.
func toFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case float32:
		return float64(val), true
	case float64:
		return val, true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return f, err == nil
	}
	return 0, false
}

// toStrings converts a string or a collection of scalars into strings.
func toStrings(v any) ([]string, bool) {
	if s, ok := v.(string); ok {
		return []string{s}, true
	}
	items, ok := collection(v)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !isScalar(item) {
			return nil, false
		}
		out = append(out, toString(item))
	}
	return out, true
}

func isScalar(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// naturalJoin joins items as "a, b and c".
func naturalJoin(items []string, conjunction string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " " + conjunction + " " + items[len(items)-1]
}
