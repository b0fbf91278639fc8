package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adledger/internal/core/domain"
)

// CampaignRepository is the non-transactional side of the campaign store.
// Lookups return (nil, nil) when the row does not exist.
type CampaignRepository interface {
	// GetBusiness returns a business with its verification flag.
	GetBusiness(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	// ProvinceExists reports whether a targeting province id resolves.
	ProvinceExists(ctx context.Context, id int64) (bool, error)
	// CategoryExists reports whether a targeting category id resolves.
	CategoryExists(ctx context.Context, id int64) (bool, error)
	// CreateCampaign inserts c. ID, CreatedAt and UpdatedAt are set by the caller.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// ListCampaigns returns one page of an organization's campaigns,
	// newest first.
	ListCampaigns(ctx context.Context, orgID uuid.UUID, filter domain.CampaignFilter, page domain.Page) (*domain.CampaignPage, error)
}

// PlacementRepository is the read-only query behind the auction.
type PlacementRepository interface {
	// ListPlacementCandidates returns at most fetch campaigns satisfying the
	// selection predicate at now, ordered by bid desc, reputation desc,
	// updated_at desc.
	ListPlacementCandidates(ctx context.Context, pc domain.PlacementContext, now time.Time, fetch int) ([]domain.PlacementCandidate, error)
}

// StatsRepository aggregates interaction events.
type StatsRepository interface {
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}
