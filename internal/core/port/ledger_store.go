package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adledger/internal/core/domain"
)

// LedgerStore runs units of work against campaigns, wallets and markers.
// Implementations must be safe for concurrent use.
type LedgerStore interface {
	// WithinTx runs fn as one atomic unit. When fn returns nil every write
	// made through tx is committed; otherwise none is.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
}

// LedgerTx is the set of operations available inside a unit of work.
type LedgerTx interface {
	// LockCampaign loads a campaign with its business verification flag and
	// organization wallet balance, holding it against concurrent units
	// until the unit ends. Returns (nil, nil) when the campaign is missing.
	LockCampaign(ctx context.Context, id uuid.UUID) (*domain.CampaignState, error)
	// WalletBalance re-reads the organization wallet.
	WalletBalance(ctx context.Context, orgID uuid.UUID) (decimal.Decimal, error)
	// InsertVisitorMarker inserts m if absent. It returns false when an
	// identical marker already exists; that collision is the dedup decision.
	InsertVisitorMarker(ctx context.Context, m domain.VisitorMarker) (bool, error)
	// IncrementImpressions adds one impression and returns the new count.
	IncrementImpressions(ctx context.Context, campaignID uuid.UUID) (int64, error)
	// DebitWallet subtracts amount only if the balance covers it, as one
	// compare-and-update. It returns false when no row was updated.
	DebitWallet(ctx context.Context, orgID uuid.UUID, amount decimal.Decimal) (bool, error)
	// RecordClick adds one click and amount to spent, sets status, and
	// returns the resulting spent amount and click count.
	RecordClick(ctx context.Context, campaignID uuid.UUID, amount decimal.Decimal, status domain.CampaignStatus) (decimal.Decimal, int64, error)
	// SetCampaignStatus overwrites the campaign status.
	SetCampaignStatus(ctx context.Context, campaignID uuid.UUID, status domain.CampaignStatus) error
	// AppendEvent stores an interaction event.
	AppendEvent(ctx context.Context, ev *domain.InteractionEvent) error
}
