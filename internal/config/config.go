package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"adledger/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_*).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the placement cache (REDIS_*).
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Kafka configures interaction event publishing (KAFKA_*).
	Kafka configs.Kafka `envPrefix:"KAFKA_"`

	// Ledger configures the store and auction limits (LEDGER_*).
	Ledger configs.Ledger `envPrefix:"LEDGER_"`
}

// Load reads configuration from environment variables into a Config and
// validates the values that have no sensible fallback.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Ledger.Store {
	case configs.StorePostgres, configs.StoreMemory:
	default:
		return fmt.Errorf("LEDGER_STORE: unknown store %q", c.Ledger.Store)
	}
	if c.Ledger.DefaultPlacementLimit <= 0 || c.Ledger.MaxPlacementLimit < c.Ledger.DefaultPlacementLimit {
		return fmt.Errorf("LEDGER_*_PLACEMENT_LIMIT: default %d must be positive and not above max %d",
			c.Ledger.DefaultPlacementLimit, c.Ledger.MaxPlacementLimit)
	}
	if c.Redis.Enabled() && c.Redis.PlacementTTL <= 0 {
		return fmt.Errorf("REDIS_PLACEMENT_TTL must be positive")
	}
	return nil
}
