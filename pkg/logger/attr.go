package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the record field being validated under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Rule records a rule identifier under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Severity records a rule severity under the key "severity".
func Severity(level string) slog.Attr {
	return slog.String("severity", level)
}

// Lang records a language tag under the key "lang".
func Lang(tag string) slog.Attr {
	return slog.String("lang", tag)
}

// Key records a catalog key under the key "key".
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// Count records a counter under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
