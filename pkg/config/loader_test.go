package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/config"
)

type sampleConfig struct {
	Name   string   `env:"NAME" envDefault:"default"`
	Size   int      `env:"SIZE"`
	Flag   bool     `env:"FLAG"`
	Tags   []string `env:"TAGS" envSeparator:","`
	Needed string   `env:"NEEDED,required"`
}

func TestLoad(t *testing.T) {
	t.Run("parses from environment map", func(t *testing.T) {
		var cfg sampleConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{
			"NAME":   "custom",
			"SIZE":   "10",
			"FLAG":   "true",
			"TAGS":   "a,b",
			"NEEDED": "yes",
		}))
		require.NoError(t, err)
		assert.Equal(t, "custom", cfg.Name)
		assert.Equal(t, 10, cfg.Size)
		assert.True(t, cfg.Flag)
		assert.Equal(t, []string{"a", "b"}, cfg.Tags)
	})

	t.Run("applies prefix", func(t *testing.T) {
		var cfg sampleConfig
		err := config.Load(&cfg,
			config.WithPrefix("APP_"),
			config.WithEnvironment(map[string]string{"APP_NEEDED": "x", "NEEDED": "ignored", "APP_SIZE": "3"}),
		)
		require.NoError(t, err)
		assert.Equal(t, "x", cfg.Needed)
		assert.Equal(t, 3, cfg.Size)
		assert.Equal(t, "default", cfg.Name)
	})

	t.Run("missing required field", func(t *testing.T) {
		var cfg sampleConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("invalid value", func(t *testing.T) {
		var cfg sampleConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"NEEDED": "x", "SIZE": "big"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *sampleConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestLoad_EnvFiles(t *testing.T) {
	type fileConfig struct {
		Name string `env:"NAME"`
		Size int    `env:"SIZE"`
	}

	var cfg fileConfig
	err := config.Load(&cfg, config.WithPrefix("CFGFILE_"), config.WithEnvFiles("testdata/.env.test"))
	require.NoError(t, err)
	assert.Equal(t, "from_file", cfg.Name)
	assert.Equal(t, 42, cfg.Size)

	err = config.Load(&cfg, config.WithEnvFiles("testdata/missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg sampleConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
	assert.NotPanics(t, func() {
		var cfg sampleConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{"NEEDED": "1"}))
	})
}
