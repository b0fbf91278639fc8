package usecase

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adledger/internal/adapter/memory"
	"adledger/internal/core/domain"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

// fixture is one organization with a verified business and an active
// campaign, stored in memory.
type fixture struct {
	store    *memory.Store
	org      domain.Organization
	business domain.Business
	campaign domain.Campaign
}

type fixtureOpts struct {
	wallet string
	bid    string
	total  string
	spent  string
}

func newFixture(t *testing.T, o fixtureOpts) *fixture {
	t.Helper()
	if o.spent == "" {
		o.spent = "0"
	}
	f := &fixture{store: memory.NewStore()}
	f.org = domain.Organization{ID: uuid.New(), Name: "Acme", WalletBalance: money(o.wallet)}
	f.business = domain.Business{
		ID:              uuid.New(),
		OrganizationID:  f.org.ID,
		Name:            "Acme Coffee",
		Verified:        true,
		ReputationScore: money("80"),
	}
	f.campaign = f.newCampaign(o.bid, o.total, o.spent)

	f.store.AddOrganization(f.org)
	f.store.AddBusiness(f.business)
	f.store.PutCampaign(f.campaign)
	return f
}

func (f *fixture) newCampaign(bid, total, spent string) domain.Campaign {
	return domain.Campaign{
		ID:             uuid.New(),
		OrganizationID: f.org.ID,
		BusinessID:     f.business.ID,
		Name:           "Spring promo",
		Status:         domain.StatusActive,
		StartsAt:       testNow.Add(-time.Hour),
		EndsAt:         testNow.Add(24 * time.Hour),
		DailyBudget:    money(total),
		TotalBudget:    money(total),
		BidAmount:      money(bid),
		SpentAmount:    money(spent),
		CreatedAt:      testNow.Add(-time.Hour),
		UpdatedAt:      testNow.Add(-time.Hour),
	}
}

func (f *fixture) ledger() *LedgerUseCase {
	u := NewLedgerUseCase(f.store, f.store, nil, nil, discardLogger())
	u.now = func() time.Time { return testNow }
	return u
}

func (f *fixture) wallet(t *testing.T) decimal.Decimal {
	t.Helper()
	o, ok := f.store.Organization(f.org.ID)
	if !ok {
		t.Fatalf("organization %s missing", f.org.ID)
	}
	return o.WalletBalance
}

func (f *fixture) stored(t *testing.T, id uuid.UUID) domain.Campaign {
	t.Helper()
	c, ok := f.store.Campaign(id)
	if !ok {
		t.Fatalf("campaign %s missing", id)
	}
	return c
}
