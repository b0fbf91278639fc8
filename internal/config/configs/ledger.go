package configs

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Ledger configures the campaign ledger and placement auction.
type Ledger struct {
	// Store selects the backing store: "postgres" or "memory". The memory
	// store keeps everything in process and is meant for local runs.
	Store string `env:"STORE" envDefault:"postgres"`
	// DefaultPlacementLimit is used when a request does not ask for a
	// number of placements; MaxPlacementLimit caps what it may ask for.
	DefaultPlacementLimit int `env:"DEFAULT_PLACEMENT_LIMIT" envDefault:"5"`
	MaxPlacementLimit     int `env:"MAX_PLACEMENT_LIMIT" envDefault:"50"`
}
