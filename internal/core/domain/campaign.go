package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusDraft    CampaignStatus = "DRAFT"
	StatusActive   CampaignStatus = "ACTIVE"
	StatusPaused   CampaignStatus = "PAUSED"
	StatusEnded    CampaignStatus = "ENDED"
	StatusCanceled CampaignStatus = "CANCELED"
)

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusEnded, StatusCanceled:
		return true
	}
	return false
}

// Campaign represents an advertising campaign of one business. Money fields
// carry at most two decimal places. Counters and SpentAmount never decrease.
type Campaign struct {
	ID             uuid.UUID       `json:"id"`
	OrganizationID uuid.UUID       `json:"organization_id"`
	BusinessID     uuid.UUID       `json:"business_id"`
	Name           string          `json:"name"`
	Status         CampaignStatus  `json:"status"`
	StartsAt       time.Time       `json:"starts_at"`
	EndsAt         time.Time       `json:"ends_at"`
	DailyBudget    decimal.Decimal `json:"daily_budget"`
	TotalBudget    decimal.Decimal `json:"total_budget"`
	BidAmount      decimal.Decimal `json:"bid_amount"`
	SpentAmount    decimal.Decimal `json:"spent_amount"`
	Impressions    int64           `json:"impressions"`
	Clicks         int64           `json:"clicks"`
	Targeting      Targeting       `json:"targeting"`
	CreatedBy      uuid.UUID       `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// RemainingBudget is TotalBudget-SpentAmount floored at zero.
func (c *Campaign) RemainingBudget() decimal.Decimal {
	rem := c.TotalBudget.Sub(c.SpentAmount)
	if rem.IsNegative() {
		return decimal.Zero
	}
	return rem
}

// BudgetExhausted reports whether nothing is left to spend.
func (c *Campaign) BudgetExhausted() bool {
	return c.SpentAmount.GreaterThanOrEqual(c.TotalBudget)
}

// InSchedule reports whether now falls inside [StartsAt, EndsAt].
func (c *Campaign) InSchedule(now time.Time) bool {
	return !now.Before(c.StartsAt) && !now.After(c.EndsAt)
}

// CampaignState is a campaign row joined with the data the ledger needs to
// decide eligibility, as read inside one unit of work.
type CampaignState struct {
	Campaign
	BusinessVerified bool
	WalletBalance    decimal.Decimal
}

// Eligible reports whether the campaign may count an interaction at now.
func (s *CampaignState) Eligible(now time.Time) bool {
	return s.BusinessVerified &&
		s.Status == StatusActive &&
		s.InSchedule(now) &&
		s.SpentAmount.LessThan(s.TotalBudget)
}

// CampaignFilter narrows ListCampaigns results. Nil fields match anything.
type CampaignFilter struct {
	Status     *CampaignStatus
	BusinessID *uuid.UUID
}

// Page selects a window of a list.
type Page struct {
	Limit  int
	Offset int
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Normalize clamps the page into supported bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// CampaignPage is one page of campaigns plus the total match count.
type CampaignPage struct {
	Items  []Campaign `json:"items"`
	Total  int64      `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}
