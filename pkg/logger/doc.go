// Package logger builds *slog.Logger instances for formrules components.
//
// A single factory, New, creates a logger configured by Option functions:
//
//   - output format (text or json) and destination
//   - minimum level (ParseLevel accepts the usual "debug", "info", ... names)
//   - static attributes attached to every record
//   - ContextExtractor callbacks that pull attributes out of context.Context
//
// The concrete slog handler is wrapped by ContextHandler, which adds the
// attributes stored with WithPassAttrs and runs the extractors on every
// Handle call. Discard returns a logger that drops
// everything and is the default for components that accept an optional
// logger.
//
// Helper constructors in attr.go (Field, Rule, Severity, Error, ...) keep
// attribute naming consistent between the validator and the translator.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithTextFormatter(),
//	    logger.WithAttr(logger.Component("signup-form")),
//	)
//	log.Debug("rule violated", logger.Field("email"), logger.Rule("email"))
package logger
