package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewCampaign is the create-campaign input. Status defaults to DRAFT.
type NewCampaign struct {
	BusinessID  uuid.UUID       `json:"business_id"`
	Name        string          `json:"name"`
	StartsAt    time.Time       `json:"starts_at"`
	EndsAt      time.Time       `json:"ends_at"`
	DailyBudget decimal.Decimal `json:"daily_budget"`
	TotalBudget decimal.Decimal `json:"total_budget"`
	BidAmount   decimal.Decimal `json:"bid_amount"`
	Targeting   Targeting       `json:"targeting"`
	Status      CampaignStatus  `json:"status"`
}

// Validate checks the financial and scheduling invariants of the input.
func (n *NewCampaign) Validate() error {
	if n.BusinessID == uuid.Nil {
		return &ValidationError{Field: "business_id", Reason: "is required"}
	}
	if strings.TrimSpace(n.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	for _, f := range []struct {
		name string
		v    decimal.Decimal
	}{
		{"daily_budget", n.DailyBudget},
		{"total_budget", n.TotalBudget},
		{"bid_amount", n.BidAmount},
	} {
		if err := checkMoney(f.name, f.v); err != nil {
			return err
		}
	}
	if n.DailyBudget.LessThan(MinBudget) {
		return &ValidationError{Field: "daily_budget", Reason: "must be at least 1"}
	}
	if n.TotalBudget.LessThan(MinBudget) {
		return &ValidationError{Field: "total_budget", Reason: "must be at least 1"}
	}
	if n.BidAmount.LessThan(MinBid) {
		return &ValidationError{Field: "bid_amount", Reason: "must be at least 0.01"}
	}
	if n.DailyBudget.GreaterThan(n.TotalBudget) {
		return &ValidationError{Field: "daily_budget", Reason: "must not exceed total_budget"}
	}
	if n.BidAmount.GreaterThan(n.DailyBudget) {
		return &ValidationError{Field: "bid_amount", Reason: "must not exceed daily_budget"}
	}
	if n.StartsAt.IsZero() || n.EndsAt.IsZero() {
		return &ValidationError{Field: "starts_at", Reason: "schedule window is required"}
	}
	if !n.EndsAt.After(n.StartsAt) {
		return &ValidationError{Field: "ends_at", Reason: "must be after starts_at"}
	}
	switch n.Status {
	case "", StatusDraft, StatusActive:
	default:
		return &ValidationError{Field: "status", Reason: "initial status must be DRAFT or ACTIVE"}
	}
	return nil
}
