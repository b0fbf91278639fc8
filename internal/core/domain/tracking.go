package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reason explains why an interaction was not tracked. These are expected
// outcomes returned as data, not errors.
type Reason string

const (
	ReasonNone                    Reason = ""
	ReasonCampaignNotEligible     Reason = "CAMPAIGN_NOT_ELIGIBLE"
	ReasonDuplicatedVisitorEvent  Reason = "DUPLICATED_VISITOR_EVENT"
	ReasonWalletInsufficientFunds Reason = "WALLET_INSUFFICIENT_FUNDS"
	ReasonBudgetExhausted         Reason = "BUDGET_EXHAUSTED"
)

// TrackRequest is one interaction to record. VisitorID is the raw,
// un-hashed visitor identifier.
type TrackRequest struct {
	CampaignID   uuid.UUID
	EventType    EventType
	VisitorID    *string
	PlacementKey *string
}

// TrackResult is the ledger outcome. Click fields are populated only for
// tracked clicks.
type TrackResult struct {
	Tracked         bool             `json:"tracked"`
	Reason          Reason           `json:"reason,omitempty"`
	EventID         *uuid.UUID       `json:"event_id,omitempty"`
	Impressions     *int64           `json:"impressions,omitempty"`
	ChargedAmount   *decimal.Decimal `json:"charged_amount,omitempty"`
	SpentAmount     *decimal.Decimal `json:"spent_amount,omitempty"`
	RemainingBudget *decimal.Decimal `json:"remaining_budget,omitempty"`
	Clicks          *int64           `json:"clicks,omitempty"`
}

// Rejected builds an untracked result.
func Rejected(reason Reason) TrackResult {
	return TrackResult{Tracked: false, Reason: reason}
}

// Outcome is a label for metrics: "tracked" or the lower-level reason.
func (r TrackResult) Outcome() string {
	if r.Tracked {
		return "tracked"
	}
	return string(r.Reason)
}
