package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adledger/internal/core/domain"
)

// CampaignUseCase is the campaign manager port used by inbound adapters.
type CampaignUseCase interface {
	// CreateCampaign validates input and creates a campaign for orgID.
	CreateCampaign(ctx context.Context, orgID uuid.UUID, actor domain.Actor, in domain.NewCampaign) (*domain.Campaign, error)
	// UpdateStatus moves a campaign to a new status, re-validating
	// activation preconditions when entering ACTIVE.
	UpdateStatus(ctx context.Context, campaignID uuid.UUID, actor domain.Actor, status domain.CampaignStatus) (*domain.Campaign, error)
	// GetCampaign returns a campaign visible to actor.
	GetCampaign(ctx context.Context, campaignID uuid.UUID, actor domain.Actor) (*domain.Campaign, error)
	// ListCampaigns returns a filtered page of an organization's campaigns.
	ListCampaigns(ctx context.Context, orgID uuid.UUID, actor domain.Actor, filter domain.CampaignFilter, page domain.Page) (*domain.CampaignPage, error)
}

// PlacementUseCase is the auction port.
type PlacementUseCase interface {
	GetPlacements(ctx context.Context, pc domain.PlacementContext) ([]domain.RankedPlacement, error)
}

// LedgerUseCase records interactions. Untracked outcomes are returned in
// the result, only infrastructure failures are errors.
type LedgerUseCase interface {
	TrackImpression(ctx context.Context, campaignID uuid.UUID, visitorID, placementKey *string) (domain.TrackResult, error)
	TrackClick(ctx context.Context, campaignID uuid.UUID, visitorID, placementKey *string) (domain.TrackResult, error)
	GetStats(ctx context.Context, actor domain.Actor, req StatsReq) (*StatsResp, error)
}

// StatsResp contains aggregated event counts and cost for campaigns.
type StatsResp struct {
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Cost        decimal.Decimal `json:"cost"`
}

// StatsReq selects events in [From, To). A nil OrganizationID spans every
// organization and is only set that way for global admins.
type StatsReq struct {
	From           time.Time
	To             time.Time
	OrganizationID *uuid.UUID
	CampaignID     *uuid.UUID
}
