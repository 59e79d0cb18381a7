// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (reading .env files) and
// github.com/caarlos0/env/v11 (struct tags). Each configuration type is
// parsed once per process and cached; ForceReload and ResetCache exist for
// tests and for reloading after the environment changed.
//
//	config.MustLoadEnv(".env", ".env.local")
//
//	var cfg jwt.Config
//	config.MustLoad(&cfg)
//	svc, err := jwt.NewFromConfig(cfg)
package config
