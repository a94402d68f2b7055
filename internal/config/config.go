package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is read from the environment with the STOREFRONT_ prefix,
// e.g. STOREFRONT_STORAGE_BACKEND=redis.
type Config struct {
	ServiceName     string        `split_words:"true" default:"storefront"`
	LogLevel        string        `split_words:"true" default:"info"`
	StorageBackend  string        `split_words:"true" default:"file"`
	DataDir         string        `split_words:"true" default:"./data"`
	RedisAddr       string        `split_words:"true" default:"localhost:6379"`
	CartKey         string        `split_words:"true" default:"cart"`
	TaxRate         float64       `split_words:"true" default:"0.10"`
	RecheckInterval time.Duration `split_words:"true" default:"24h"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("storefront", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.TaxRate < 0 || cfg.TaxRate >= 1 {
		return Config{}, fmt.Errorf("tax rate %v out of range [0, 1)", cfg.TaxRate)
	}
	return cfg, nil
}
