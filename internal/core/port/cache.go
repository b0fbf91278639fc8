package port

import (
	"context"
	"time"

	"adledger/internal/core/domain"
)

// PlacementCache stores ranked placement lists for a bounded time. The TTL
// is the staleness the auction tolerates.
type PlacementCache interface {
	Get(ctx context.Context, key string) ([]domain.RankedPlacement, bool, error)
	Set(ctx context.Context, key string, placements []domain.RankedPlacement) error
}

// EventPublisher forwards tracked interaction events to downstream
// consumers. Callers use it best-effort: log and ignore errors.
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.InteractionEvent) error
	Close() error
}

// LedgerMetrics records ledger and auction outcomes.
type LedgerMetrics interface {
	ObserveTrack(eventType domain.EventType, outcome string, d time.Duration)
	ObservePlacements(served int)
}
