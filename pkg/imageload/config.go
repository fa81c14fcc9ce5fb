package imageload

import (
	"time"

	"github.com/extensioncollection/kit/pkg/config"
)

// Config holds the loader settings read from the environment.
type Config struct {
	Timeout   time.Duration `env:"IMAGELOAD_TIMEOUT" envDefault:"15s"`
	MaxBytes  int64         `env:"IMAGELOAD_MAX_BYTES" envDefault:"10485760"`
	UserAgent string        `env:"IMAGELOAD_USER_AGENT" envDefault:"extensioncollection-kit/imageload"`
}

// LoadConfig reads Config through the shared config loader.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
