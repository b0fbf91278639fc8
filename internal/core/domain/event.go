package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType distinguishes tracked interactions.
type EventType string

const (
	EventImpression EventType = "IMPRESSION"
	EventClick      EventType = "CLICK"
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	return t == EventImpression || t == EventClick
}

// InteractionEvent is an append-only record of a counted interaction.
// CostAmount is set only for billed clicks.
type InteractionEvent struct {
	ID             uuid.UUID        `json:"id"`
	CampaignID     uuid.UUID        `json:"campaign_id"`
	OrganizationID uuid.UUID        `json:"organization_id"`
	EventType      EventType        `json:"event_type"`
	VisitorHash    *string          `json:"visitor_hash,omitempty"`
	CostAmount     *decimal.Decimal `json:"cost_amount,omitempty"`
	PlacementKey   *string          `json:"placement_key,omitempty"`
	OccurredAt     time.Time        `json:"occurred_at"`
}

// VisitorMarker is the per-day dedup key. Its successful insertion is what
// authorizes counting an interaction.
type VisitorMarker struct {
	OrganizationID uuid.UUID
	MetricKey      string
	PeriodStart    time.Time
	PeriodEnd      time.Time
}

const visitorHashLen = 32

// HashVisitor derives the anonymized visitor identity: the first 32 hex
// characters of SHA-256 over the trimmed id. ok is false for blank ids.
func HashVisitor(visitorID string) (hash string, ok bool) {
	id := strings.TrimSpace(visitorID)
	if id == "" {
		return "", false
	}
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])[:visitorHashLen], true
}

// MetricKey builds "ad:{eventType}:{campaignId}:{visitorHash}".
func MetricKey(eventType EventType, campaignID uuid.UUID, visitorHash string) string {
	return fmt.Sprintf("ad:%s:%s:%s", eventType, campaignID, visitorHash)
}

// DayPeriod returns the UTC calendar day [start, end) containing t.
func DayPeriod(t time.Time) (start, end time.Time) {
	u := t.UTC()
	start = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// NewVisitorMarker builds the marker for one visitor interaction at now.
func NewVisitorMarker(orgID uuid.UUID, eventType EventType, campaignID uuid.UUID, visitorHash string, now time.Time) VisitorMarker {
	start, end := DayPeriod(now)
	return VisitorMarker{
		OrganizationID: orgID,
		MetricKey:      MetricKey(eventType, campaignID, visitorHash),
		PeriodStart:    start,
		PeriodEnd:      end,
	}
}
