// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/joho/godotenv for reading .env files and
// github.com/caarlos0/env/v11 for parsing the environment into structs.
//
//	type Settings struct {
//		DateFormat string `env:"DATE_FORMAT" envDefault:"2006-01-02"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("FORMRULES_")); err != nil {
//		return err
//	}
//
// The default .env file in the working directory is loaded once, silently,
// before the first parse. Additional files are loaded with WithEnvFiles or
// LoadEnv; a missing explicit file is an error.
package config
