package configs

import "time"

// Redis configures the placement cache. An empty Addr disables caching
// and every placement request goes to the database.
type Redis struct {
	Addr     string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// PlacementTTL bounds how stale a served placement list may be.
	PlacementTTL time.Duration `env:"PLACEMENT_TTL" envDefault:"5s"`
}

// Enabled reports whether a Redis address was configured.
func (c Redis) Enabled() bool {
	return c.Addr != ""
}
