package validator

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/formrules/pkg/file"
)

// Option configures a Validator.
type Option func(*options)

type options struct {
	returnBoolean bool
	layouts       Layouts
	catalog       Catalog
	files         file.Checker
	logger        *slog.Logger
}

func defaultOptions() *options {
	return &options{
		layouts: DefaultLayouts(),
		files:   file.OSChecker{},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithReturnBoolean switches to the boolean discipline: outcomes carry only
// the pass flag, no messages.
func WithReturnBoolean(enabled bool) Option {
	return func(o *options) {
		o.returnBoolean = enabled
	}
}

// WithDateFormat sets the layout of date rules. Empty keeps the default.
func WithDateFormat(layout string) Option {
	return func(o *options) {
		if layout != "" {
			o.layouts.Date = layout
		}
	}
}

// WithDateTimeFormat sets the layout of date_time rules. Empty keeps the default.
func WithDateTimeFormat(layout string) Option {
	return func(o *options) {
		if layout != "" {
			o.layouts.DateTime = layout
		}
	}
}

// WithTimeFormat sets the layout of time rules. Empty keeps the default.
func WithTimeFormat(layout string) Option {
	return func(o *options) {
		if layout != "" {
			o.layouts.Time = layout
		}
	}
}

// WithCatalog sets the message template source.
func WithCatalog(catalog Catalog) Option {
	return func(o *options) {
		o.catalog = catalog
	}
}

// WithFileChecker sets how upload rules verify backing files.
func WithFileChecker(checker file.Checker) Option {
	return func(o *options) {
		if checker != nil {
			o.files = checker
		}
	}
}

// WithLogger sets the logger. Violations and pass summaries are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
