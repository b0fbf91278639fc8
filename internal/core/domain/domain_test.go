package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVisitor(t *testing.T) {
	hash, ok := HashVisitor("abc")
	require.True(t, ok)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223", hash)

	trimmed, ok := HashVisitor("  abc\t")
	require.True(t, ok)
	assert.Equal(t, hash, trimmed)

	_, ok = HashVisitor("   ")
	assert.False(t, ok)
}

func TestNewVisitorMarker(t *testing.T) {
	org, campaign := uuid.New(), uuid.New()
	zone := time.FixedZone("AMT", 4*60*60)
	now := time.Date(2026, 3, 15, 1, 0, 0, 0, zone)

	m := NewVisitorMarker(org, EventClick, campaign, "h1", now)
	assert.Equal(t, org, m.OrganizationID)
	assert.Equal(t, "ad:CLICK:"+campaign.String()+":h1", m.MetricKey)
	assert.True(t, m.PeriodStart.Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)))
	assert.True(t, m.PeriodEnd.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))

	other := NewVisitorMarker(org, EventImpression, campaign, "h1", now)
	assert.NotEqual(t, m.MetricKey, other.MetricKey)
}

func TestAdScore(t *testing.T) {
	tests := []struct {
		bid, rep, want string
	}{
		{"5.00", "80", "3.74"},
		{"3.00", "80", "2.34"},
		{"2.50", "50", "1.9"},
		{"0.01", "0", "0.007"},
		{"1", "100", "1"},
	}
	for _, tt := range tests {
		got := AdScore(decimal.RequireFromString(tt.bid), decimal.RequireFromString(tt.rep))
		assert.Truef(t, decimal.RequireFromString(tt.want).Equal(got), "AdScore(%s, %s) = %s, want %s", tt.bid, tt.rep, got, tt.want)
	}
}

func TestTargetingMatches(t *testing.T) {
	one, two := int64(1), int64(2)
	tests := []struct {
		name      string
		target    Targeting
		province  *int64
		category  *int64
		wantMatch bool
	}{
		{"untargeted any request", Targeting{}, nil, nil, true},
		{"untargeted specific request", Targeting{}, &one, &two, true},
		{"province equal", Targeting{ProvinceID: &one}, &one, nil, true},
		{"province differs", Targeting{ProvinceID: &one}, &two, nil, false},
		{"province not requested", Targeting{ProvinceID: &one}, nil, nil, false},
		{"both equal", Targeting{ProvinceID: &one, CategoryID: &two}, &one, &two, true},
		{"category differs", Targeting{ProvinceID: &one, CategoryID: &two}, &one, &one, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMatch, tt.target.Matches(tt.province, tt.category))
		})
	}
}

func TestCanManageCampaigns(t *testing.T) {
	assert.True(t, CanManageCampaigns(GlobalRoleAdmin, ""))
	assert.True(t, CanManageCampaigns(GlobalRoleUser, OrgRoleOwner))
	assert.True(t, CanManageCampaigns(GlobalRoleUser, OrgRoleManager))
	assert.False(t, CanManageCampaigns(GlobalRoleUser, OrgRoleStaff))
	assert.False(t, CanManageCampaigns(GlobalRoleUser, ""))
}

func TestCanTransition(t *testing.T) {
	allowed := map[CampaignStatus][]CampaignStatus{
		StatusDraft:    {StatusActive, StatusCanceled},
		StatusActive:   {StatusPaused, StatusEnded, StatusCanceled},
		StatusPaused:   {StatusActive, StatusEnded, StatusCanceled},
		StatusEnded:    {StatusActive},
		StatusCanceled: {},
	}
	all := []CampaignStatus{StatusDraft, StatusActive, StatusPaused, StatusEnded, StatusCanceled}
	for from, targets := range allowed {
		for _, to := range all {
			want := false
			for _, s := range targets {
				if s == to {
					want = true
				}
			}
			assert.Equalf(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestCampaignState_Eligible(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	base := CampaignState{
		Campaign: Campaign{
			Status:      StatusActive,
			StartsAt:    now.Add(-time.Hour),
			EndsAt:      now.Add(time.Hour),
			TotalBudget: decimal.NewFromInt(100),
			SpentAmount: decimal.NewFromInt(99),
		},
		BusinessVerified: true,
	}
	assert.True(t, base.Eligible(now))
	assert.True(t, base.Eligible(base.StartsAt))
	assert.True(t, base.Eligible(base.EndsAt))
	assert.False(t, base.Eligible(base.EndsAt.Add(time.Nanosecond)))

	spent := base
	spent.SpentAmount = decimal.NewFromInt(100)
	assert.False(t, spent.Eligible(now))

	unverified := base
	unverified.BusinessVerified = false
	assert.False(t, unverified.Eligible(now))
}

func TestCampaignBudget(t *testing.T) {
	c := Campaign{TotalBudget: decimal.NewFromInt(50), SpentAmount: decimal.NewFromInt(10)}
	assert.True(t, decimal.NewFromInt(40).Equal(c.RemainingBudget()))
	assert.False(t, c.BudgetExhausted())

	c.SpentAmount = decimal.NewFromInt(50)
	assert.True(t, c.RemainingBudget().IsZero())
	assert.True(t, c.BudgetExhausted())
}

func TestPageNormalize(t *testing.T) {
	assert.Equal(t, Page{Limit: DefaultPageLimit}, Page{}.Normalize())
	assert.Equal(t, Page{Limit: MaxPageLimit, Offset: 5}, Page{Limit: 1000, Offset: 5}.Normalize())
	assert.Equal(t, Page{Limit: 10}, Page{Limit: 10, Offset: -1}.Normalize())
}

func TestTrackResultOutcome(t *testing.T) {
	assert.Equal(t, "tracked", TrackResult{Tracked: true}.Outcome())
	assert.Equal(t, "BUDGET_EXHAUSTED", Rejected(ReasonBudgetExhausted).Outcome())
}
