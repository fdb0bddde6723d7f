package validator

import (
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/formrules/pkg/file"
)

// Catalog looks up a message template by key.
type Catalog func(key string) (string, bool)

// MapCatalog serves templates from a map.
func MapCatalog(m map[string]string) Catalog {
	return func(key string) (string, bool) {
		s, ok := m[key]
		return s, ok
	}
}

// MessageFormatter turns violations into human-readable messages.
type MessageFormatter struct {
	catalog Catalog
}

// NewMessageFormatter creates a formatter. Missing keys fall back to the
// built-in English messages and then to the key itself.
func NewMessageFormatter(catalog Catalog) *MessageFormatter {
	return &MessageFormatter{catalog: catalog}
}

func (f *MessageFormatter) lookup(key string) string {
	if f.catalog != nil {
		if s, ok := f.catalog(key); ok {
			return s
		}
	}
	if s, ok := defaultMessages[key]; ok {
		return s
	}
	return key
}

// Format renders the message of a failed rule. An override template on the
// rule replaces the catalog message and its details.
func (f *MessageFormatter) Format(field string, value any, spec RuleSpec, res Result) string {
	tmpl := spec.message
	if tmpl == "" {
		tmpl = f.lookup(res.violation)
		if len(res.details) > 0 {
			parts := make([]string, len(res.details))
			for i, key := range res.details {
				parts[i] = f.lookup(key)
			}
			tmpl += " " + strings.Join(parts, ", ")
		}
	}

	return strings.NewReplacer(
		"{field}", field,
		"{value}", f.RenderValue(value),
		"{param}", f.RenderParam(spec),
	).Replace(tmpl)
}

// RenderValue renders a field value for the {value} placeholder.
func (f *MessageFormatter) RenderValue(value any) string {
	if files, ok := asDescriptors(value); ok {
		names := make([]string, len(files))
		for i, d := range files {
			names[i] = d.Name
		}
		return f.join(names)
	}
	if items, ok := collection(value); ok {
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = toString(item)
		}
		return f.join(parts)
	}
	return toString(value)
}

// RenderParam renders a rule parameter for the {param} placeholder.
func (f *MessageFormatter) RenderParam(spec RuleSpec) string {
	switch p := spec.param.(type) {
	case Predicate:
		return "callback"
	case float64:
		if registry[spec.name].bytes {
			return file.FormatSize(int64(p))
		}
		return formatNumber(p)
	case int:
		return strconv.Itoa(p)
	case numRange:
		return f.join([]string{formatNumber(p.min), formatNumber(p.max)})
	case time.Time:
		return p.Format(spec.layout)
	case timeRange:
		return f.join([]string{p.min.Format(spec.layout), p.max.Format(spec.layout)})
	case *valueSet:
		return f.join(p.items)
	case []Feature:
		parts := make([]string, len(p))
		for i, feat := range p {
			parts[i] = string(feat)
		}
		return f.join(parts)
	case fieldRefs:
		return f.join(p)
	case []string:
		return f.join(p)
	}
	return f.RenderValue(spec.param)
}

func (f *MessageFormatter) join(items []string) string {
	return naturalJoin(items, f.lookup("and"))
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
