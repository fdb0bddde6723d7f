package formrules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/formrules/pkg/file"
	"github.com/dmitrymomot/formrules/pkg/i18n"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// New builds a validator from cfg. Extra options are applied last and
// override what cfg selects.
func New(ctx context.Context, cfg Config, opts ...validator.Option) (*validator.Validator, error) {
	log, err := NewLogger(cfg)
	if err != nil {
		return nil, errors.Join(ErrBuildingValidator, err)
	}

	translator, err := NewTranslator(ctx, cfg, log)
	if err != nil {
		return nil, errors.Join(ErrBuildingValidator, err)
	}
	lang := translator.Negotiate(cfg.Language)
	if cfg.Language != "" && !strings.HasPrefix(strings.ToLower(cfg.Language), lang) {
		log.WarnContext(ctx, "language not available, using fallback",
			logger.Component("formrules"),
			logger.Lang(cfg.Language),
			slog.String("fallback", lang),
		)
	}

	checker, err := NewFileChecker(ctx, cfg)
	if err != nil {
		return nil, errors.Join(ErrBuildingValidator, err)
	}

	base := []validator.Option{
		validator.WithReturnBoolean(cfg.ReturnBoolean),
		validator.WithDateFormat(cfg.DateFormat),
		validator.WithDateTimeFormat(cfg.DateTimeFormat),
		validator.WithTimeFormat(cfg.TimeFormat),
		validator.WithCatalog(translator.Catalog(lang, "validation")),
		validator.WithFileChecker(checker),
		validator.WithLogger(log.With(logger.Component("validator"))),
	}

	log.DebugContext(ctx, "validator configured",
		logger.Component("formrules"),
		logger.Lang(lang),
		slog.String("storage", cfg.Storage),
		slog.Bool("return_boolean", cfg.ReturnBoolean),
	)
	return validator.New(append(base, opts...)...), nil
}

// NewLogger builds the slog logger described by cfg.
func NewLogger(cfg Config) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	format := logger.Format(strings.ToLower(cfg.LogFormat))
	switch format {
	case "":
		format = logger.FormatText
	case logger.FormatText, logger.FormatJSON:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.LogFormat)
	}

	return logger.New(logger.WithLevel(level), logger.WithFormat(format)), nil
}

// NewTranslator loads the embedded catalogs, overlaid with the files in
// cfg.TranslationsPath when set.
func NewTranslator(ctx context.Context, cfg Config, log *slog.Logger) (*i18n.Translator, error) {
	var adapter i18n.TranslationAdapter = i18n.DefaultAdapter()
	if cfg.TranslationsPath != "" {
		adapter = i18n.MergeAdapter{i18n.DefaultAdapter(), i18n.NewDirectoryAdapter(cfg.TranslationsPath)}
	}

	translator, err := i18n.NewTranslator(ctx, adapter,
		i18n.WithLogger(log.With(logger.Component("i18n"))),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return nil, err
	}
	return translator, nil
}

// NewFileChecker returns the backing-file checker selected by cfg.Storage.
func NewFileChecker(ctx context.Context, cfg Config) (file.Checker, error) {
	switch strings.ToLower(cfg.Storage) {
	case "", StorageOS:
		return file.OSChecker{}, nil
	case StorageLocal:
		storage, err := file.NewLocalStorage(cfg.StorageDir)
		if err != nil {
			return nil, err
		}
		return storage, nil
	case StorageS3:
		storage, err := file.NewS3Storage(ctx, file.S3Config{
			Bucket:         cfg.S3.Bucket,
			Region:         cfg.S3.Region,
			AccessKeyID:    cfg.S3.AccessKeyID,
			SecretKey:      cfg.S3.SecretKey,
			Endpoint:       cfg.S3.Endpoint,
			Prefix:         cfg.S3.Prefix,
			ForcePathStyle: cfg.S3.ForcePathStyle,
		})
		if err != nil {
			return nil, err
		}
		return storage, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, cfg.Storage)
	}
}
