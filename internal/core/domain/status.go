package domain

import "time"

// transitions lists the explicit (manager initiated) status moves. The
// ledger's automatic moves into PAUSED and ENDED bypass this table.
var transitions = map[CampaignStatus][]CampaignStatus{
	StatusDraft:    {StatusActive, StatusCanceled},
	StatusActive:   {StatusPaused, StatusEnded, StatusCanceled},
	StatusPaused:   {StatusActive, StatusEnded, StatusCanceled},
	StatusEnded:    {StatusActive},
	StatusCanceled: nil,
}

// CanTransition reports whether an explicit update may move from to next.
func CanTransition(from, next CampaignStatus) bool {
	for _, s := range transitions[from] {
		if s == next {
			return true
		}
	}
	return false
}

// CheckActivation validates the preconditions for entering ACTIVE.
func CheckActivation(c *Campaign, businessVerified bool, now time.Time) error {
	if !businessVerified {
		return &ValidationError{Field: "business_id", Reason: "business is not verified"}
	}
	if !c.EndsAt.After(now) {
		return &ValidationError{Field: "ends_at", Reason: "campaign schedule has already ended"}
	}
	if c.BudgetExhausted() {
		return &ValidationError{Field: "total_budget", Reason: "campaign budget is exhausted"}
	}
	return nil
}

// ValidateTransition combines the transition table with activation checks.
func ValidateTransition(s *CampaignState, next CampaignStatus, now time.Time) error {
	if !next.Valid() {
		return &ValidationError{Field: "status", Reason: "unknown status " + string(next)}
	}
	if !CanTransition(s.Status, next) {
		return &ValidationError{Field: "status", Reason: "cannot move from " + string(s.Status) + " to " + string(next)}
	}
	if next == StatusActive {
		return CheckActivation(&s.Campaign, s.BusinessVerified, now)
	}
	return nil
}
