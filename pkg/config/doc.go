// Package config fills tagged structs from environment variables.
//
// A .env file in the working directory is read once on first use, then
// github.com/caarlos0/env parses the struct tags:
//
//	type Config struct {
//		Timeout time.Duration `env:"IMAGELOAD_TIMEOUT" envDefault:"15s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
//
// Load caches the first successful result per struct type, so repeated calls
// are cheap and consistent. Parse skips the cache.
package config
