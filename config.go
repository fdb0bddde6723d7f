package formrules

import (
	"errors"

	"github.com/dmitrymomot/formrules/pkg/config"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// EnvPrefix is prepended to every variable read by LoadConfig.
const EnvPrefix = "FORMRULES_"

// Storage backends for upload existence checks.
const (
	StorageOS    = "os"
	StorageLocal = "local"
	StorageS3    = "s3"
)

var (
	ErrUnknownStorage    = errors.New("unknown storage backend")
	ErrInvalidLogFormat  = errors.New("invalid log format")
	ErrBuildingValidator = errors.New("failed to build validator")
)

// Config describes a validator and its collaborators.
type Config struct {
	ReturnBoolean  bool   `env:"RETURN_BOOLEAN" envDefault:"false"`
	DateFormat     string `env:"DATE_FORMAT" envDefault:"2006-01-02"`
	DateTimeFormat string `env:"DATE_TIME_FORMAT" envDefault:"2006-01-02 15:04"`
	TimeFormat     string `env:"TIME_FORMAT" envDefault:"15:04"`

	Language         string `env:"LANGUAGE" envDefault:"en"`
	TranslationsPath string `env:"TRANSLATIONS_PATH"` // directory of extra *.yaml/*.json catalogs

	Storage    string   `env:"STORAGE" envDefault:"os"`
	StorageDir string   `env:"STORAGE_DIR"`
	S3         S3Config `envPrefix:"S3_"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// S3Config locates staged uploads in a bucket.
type S3Config struct {
	Bucket         string `env:"BUCKET"`
	Region         string `env:"REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"ACCESS_KEY_ID"`
	SecretKey      string `env:"SECRET_KEY"`
	Endpoint       string `env:"ENDPOINT"`
	Prefix         string `env:"PREFIX"`
	ForcePathStyle bool   `env:"FORCE_PATH_STYLE" envDefault:"false"`
}

// DefaultConfig returns the configuration used when no variable is set.
func DefaultConfig() Config {
	return Config{
		DateFormat:     validator.DefaultDateFormat,
		DateTimeFormat: validator.DefaultDateTimeFormat,
		TimeFormat:     validator.DefaultTimeFormat,
		Language:       "en",
		Storage:        StorageOS,
		S3:             S3Config{Region: "us-east-1"},
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// LoadConfig reads Config from FORMRULES_* variables. Options are applied
// after the prefix, so config.WithEnvironment can replace the process
// environment in tests.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
