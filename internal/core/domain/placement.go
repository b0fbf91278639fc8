package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlacementContext is the request context of a placement query.
type PlacementContext struct {
	ProvinceID *int64
	CategoryID *int64
	Limit      int
}

// PlacementCandidate is a campaign that passed the store-side selection
// predicate, with the business data used for ranking.
type PlacementCandidate struct {
	Campaign        Campaign
	BusinessName    string
	ReputationScore decimal.Decimal
}

// RankedPlacement is one slot returned to the renderer.
type RankedPlacement struct {
	Position        int             `json:"position"`
	CampaignID      uuid.UUID       `json:"campaign_id"`
	BusinessID      uuid.UUID       `json:"business_id"`
	BusinessName    string          `json:"business_name"`
	CampaignName    string          `json:"campaign_name"`
	BidAmount       decimal.Decimal `json:"bid_amount"`
	ReputationScore decimal.Decimal `json:"reputation_score"`
	AdScore         decimal.Decimal `json:"ad_score"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

var (
	bidWeight        = decimal.RequireFromString("0.7")
	reputationWeight = decimal.RequireFromString("0.3")
	hundred          = decimal.NewFromInt(100)
)

// AdScore is bid*0.7 + (reputation/100)*0.3 rounded to 4 decimals.
func AdScore(bid, reputation decimal.Decimal) decimal.Decimal {
	return bid.Mul(bidWeight).
		Add(reputation.Div(hundred).Mul(reputationWeight)).
		Round(4)
}
