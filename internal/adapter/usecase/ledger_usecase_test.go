package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adledger/internal/core/domain"
	"adledger/internal/core/port"
	"adledger/internal/core/port/mocks"
)

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, money(want).Equal(got), "want %s, got %s", want, got)
}

func TestTrackClick_ChargesBid(t *testing.T) {
	f := newFixture(t, fixtureOpts{wallet: "100", bid: "10", total: "50"})

	res, err := f.ledger().TrackClick(context.Background(), f.campaign.ID, ptr("visitor-1"), ptr("home:top"))
	require.NoError(t, err)
	require.True(t, res.Tracked)
	assert.Empty(t, res.Reason)
	require.NotNil(t, res.EventID)
	assertMoney(t, "10", *res.ChargedAmount)
	assertMoney(t, "10", *res.SpentAmount)
	assertMoney(t, "40", *res.RemainingBudget)
	assert.Equal(t, int64(1), *res.Clicks)

	assertMoney(t, "90", f.wallet(t))
	c := f.stored(t, f.campaign.ID)
	assertMoney(t, "10", c.SpentAmount)
	assert.Equal(t, domain.StatusActive, c.Status)

	events := f.store.Events()
	require.Len(t, events, 1)
	assert.Equal(t, *res.EventID, events[0].ID)
	assert.Equal(t, domain.EventClick, events[0].EventType)
	assertMoney(t, "10", *events[0].CostAmount)
	assert.Equal(t, "home:top", *events[0].PlacementKey)
	hash, _ := domain.HashVisitor("visitor-1")
	assert.Equal(t, hash, *events[0].VisitorHash)
}

func TestTrackClick_DuplicateVisitor(t *testing.T) {
	f := newFixture(t, fixtureOpts{wallet: "100", bid: "10", total: "50"})
	u := f.ledger()
	ctx := context.Background()

	first, err := u.TrackClick(ctx, f.campaign.ID, ptr("visitor-1"), nil)
	require.NoError(t, err)
	require.True(t, first.Tracked)

	// surrounding whitespace does not make a new visitor
	second, err := u.TrackClick(ctx, f.campaign.ID, ptr("  visitor-1 "), nil)
	require.NoError(t, err)
	assert.False(t, second.Tracked)
	assert.Equal(t, domain.ReasonDuplicatedVisitorEvent, second.Reason)
	assert.Nil(t, second.ChargedAmount)

	assertMoney(t, "90", f.wallet(t))
	assert.Equal(t, int64(1), f.stored(t, f.campaign.ID).Clicks)

	// impressions are deduplicated separately from clicks
	imp, err := u.TrackImpression(ctx, f.campaign.ID, ptr("visitor-1"), nil)
	require.NoError(t, err)
	assert.True(t, imp.Tracked)
}

func TestTrackClick_BlankVisitorIsAnonymous(t *testing.T) {
	f := newFixture(t, fixtureOpts{wallet: "100", bid: "1", total: "50"})
	u := f.ledger()

	for i := 0; i < 3; i++ {
		res, err := u.TrackClick(context.Background(), f.campaign.ID, ptr("   "), nil)
		require.NoError(t, err)
		require.True(t, res.Tracked)
	}
	assertMoney(t, "97", f.wallet(t))
	for _, ev := range f.store.Events() {
		assert.Nil(t, ev.VisitorHash)
	}
}

func TestTrackClick_BudgetExhausted(t *testing.T) {
	f := newFixture(t, fixtureOpts{wallet: "100", bid: "40", total: "100", spent: "80"})

	res, err := f.ledger().TrackClick(context.Background(), f.campaign.ID, nil, nil)
	require.NoError(t, err)
	assert.False(t, res.Tracked)
	assert.Equal(t, domain.ReasonBudgetExhausted, res.Reason)

	c := f.stored(t, f.campaign.ID)
	assert.Equal(t, domain.StatusEnded, c.Status)
	assertMoney(t, "80", c.SpentAmount)
	assert.Equal(t, int64(0), c.Clicks)
	assertMoney(t, "100", f.wallet(t))
	assert.Empty(t, f.store.Events())
}

func TestTrackClick_LastClickEndsCampaign(t *testing.T) {
	f := newFixture(t, fixtureOpts{wallet: "100", bid: "40", total: "100", spent: "60"})
	u := f.ledger()

	res, err := u.TrackClick(context.Background(), f.campaign.ID, nil, nil)
	require.NoError(t, err)
	require.True(t, res.Tracked)
	assertMoney(t, "100", *res.SpentAmount)
	assertMoney(t, "0", *res.RemainingBudget)

	c := f.stored(t, f.campaign.ID)
	assert.Equal(t, domain.StatusEnded, c.Status)
	assertMoney(t, "60", f.wallet(t))

	next, err := u.TrackClick(context.Background(), f.campaign.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonCampaignNotEligible, next.Reason)
}

func TestTrackClick_WalletInsufficientPauses(t *testing.T) {
	f := newFixture(t, fixtureOpts{wallet: "5", bid: "10", total: "100"})
	u := f.ledger()

	res, err := u.TrackClick(context.Background(), f.campaign.ID, ptr("visitor-1"), nil)
	require.NoError(t, err)
	assert.False(t, res.Tracked)
	assert.Equal(t, domain.ReasonWalletInsufficientFunds, res.Reason)
	assert.Equal(t, domain.StatusPaused, f.stored(t, f.campaign.ID).Status)
	assertMoney(t, "5", f.wallet(t))

	next, err := u.TrackClick(context.Background(), f.campaign.ID, ptr("visitor-2"), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonCampaignNotEligible, next.Reason)

	// the marker of a rejected click is kept for the rest of the day
	f.org.WalletBalance = money("100")
	f.store.AddOrganization(f.org)
	c := f.stored(t, f.campaign.ID)
	c.Status = domain.StatusActive
	f.store.PutCampaign(c)

	again, err := u.TrackClick(context.Background(), f.campaign.ID, ptr("visitor-1"), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonDuplicatedVisitorEvent, again.Reason)
}

func TestTrackInteraction_NotEligible(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *fixture, c *domain.Campaign)
	}{
		{"draft", func(_ *fixture, c *domain.Campaign) { c.Status = domain.StatusDraft }},
		{"paused", func(_ *fixture, c *domain.Campaign) { c.Status = domain.StatusPaused }},
		{"not started", func(_ *fixture, c *domain.Campaign) { c.StartsAt = testNow.Add(time.Minute) }},
		{"finished", func(_ *fixture, c *domain.Campaign) { c.EndsAt = testNow.Add(-time.Minute) }},
		{"budget spent", func(_ *fixture, c *domain.Campaign) { c.SpentAmount = c.TotalBudget }},
		{"unverified business", func(f *fixture, _ *domain.Campaign) {
			f.business.Verified = false
			f.store.AddBusiness(f.business)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, fixtureOpts{wallet: "100", bid: "10", total: "100"})
			c := f.campaign
			tt.mutate(f, &c)
			f.store.PutCampaign(c)

			for _, track := range []func(context.Context, uuid.UUID, *string, *string) (domain.TrackResult, error){
				f.ledger().TrackImpression,
				f.ledger().TrackClick,
			} {
				res, err := track(context.Background(), c.ID, ptr("visitor-1"), nil)
				require.NoError(t, err)
				assert.False(t, res.Tracked)
				assert.Equal(t, domain.ReasonCampaignNotEligible, res.Reason)
			}
			assertMoney(t, "100", f.wallet(t))
			assert.Empty(t, f.store.Events())
		})
	}
}

func TestTrackInteraction_ScheduleEndIsInclusive(t *testing.T) {
	f := newFixture(t, fixtureOpts{wallet: "100", bid: "10", total: "100"})
	c := f.campaign
	c.EndsAt = testNow
	f.store.PutCampaign(c)

	res, err := f.ledger().TrackImpression(context.Background(), c.ID, nil, nil)
	require.NoError(t, err)
	assert.True(t, res.Tracked)
}

func TestTrackInteraction_CampaignNotFound(t *testing.T) {
	f := newFixture(t, fixtureOpts{wallet: "100", bid: "10", total: "100"})

	_, err := f.ledger().TrackClick(context.Background(), uuid.New(), nil, nil)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "campaign", nf.Resource)
}

func TestTrackInteraction_UnknownEventType(t *testing.T) {
	f := newFixture(t, fixtureOpts{wallet: "100", bid: "10", total: "100"})

	_, err := f.ledger().TrackInteraction(context.Background(), domain.TrackRequest{
		CampaignID: f.campaign.ID,
		EventType:  domain.EventType("VIEW"),
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestTrackImpression_CountsWithoutCharge(t *testing.T) {
	f := newFixture(t, fixtureOpts{wallet: "100", bid: "10", total: "100"})
	u := f.ledger()

	res, err := u.TrackImpression(context.Background(), f.campaign.ID, nil, nil)
	require.NoError(t, err)
	require.True(t, res.Tracked)
	assert.Equal(t, int64(1), *res.Impressions)
	assert.Nil(t, res.ChargedAmount)

	res, err = u.TrackImpression(context.Background(), f.campaign.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), *res.Impressions)

	dup, err := u.TrackImpression(context.Background(), f.campaign.ID, ptr("v"), nil)
	require.NoError(t, err)
	require.True(t, dup.Tracked)
	dup, err = u.TrackImpression(context.Background(), f.campaign.ID, ptr("v"), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonDuplicatedVisitorEvent, dup.Reason)

	c := f.stored(t, f.campaign.ID)
	assert.Equal(t, int64(3), c.Impressions)
	assertMoney(t, "0", c.SpentAmount)
	assertMoney(t, "100", f.wallet(t))
	for _, ev := range f.store.Events() {
		assert.Equal(t, domain.EventImpression, ev.EventType)
		assert.Nil(t, ev.CostAmount)
	}
}

// TestConcurrentClicks_NeverOverdraw fires more clicks than the wallet can
// pay for; exactly floor(wallet/bid) of them must be charged.
func TestConcurrentClicks_NeverOverdraw(t *testing.T) {
	f := newFixture(t, fixtureOpts{wallet: "95", bid: "10", total: "1000"})
	u := f.ledger()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		tracked int
	)
	count := 20
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			res, err := u.TrackClick(context.Background(), f.campaign.ID, nil, nil)
			if err != nil {
				t.Errorf("TrackClick error: %v", err)
				return
			}
			if res.Tracked {
				mu.Lock()
				tracked++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 9, tracked)
	assertMoney(t, "5", f.wallet(t))
	c := f.stored(t, f.campaign.ID)
	assertMoney(t, "90", c.SpentAmount)
	assert.Equal(t, int64(9), c.Clicks)
	assert.Equal(t, domain.StatusPaused, c.Status)
}

// TestConcurrentClicks_SharedWallet spends one wallet from two campaigns.
func TestConcurrentClicks_SharedWallet(t *testing.T) {
	f := newFixture(t, fixtureOpts{wallet: "50", bid: "10", total: "1000"})
	other := f.newCampaign("10", "1000", "0")
	f.store.PutCampaign(other)
	u := f.ledger()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		tracked int
	)
	for _, id := range []uuid.UUID{f.campaign.ID, other.ID} {
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(id uuid.UUID) {
				defer wg.Done()
				res, err := u.TrackClick(context.Background(), id, nil, nil)
				if err != nil {
					t.Errorf("TrackClick error: %v", err)
					return
				}
				if res.Tracked {
					mu.Lock()
					tracked++
					mu.Unlock()
				}
			}(id)
		}
	}
	wg.Wait()

	assert.Equal(t, 5, tracked)
	assertMoney(t, "0", f.wallet(t))
	spent := f.stored(t, f.campaign.ID).SpentAmount.Add(f.stored(t, other.ID).SpentAmount)
	assertMoney(t, "50", spent)
}

func TestConcurrentClicks_SameVisitorCountedOnce(t *testing.T) {
	f := newFixture(t, fixtureOpts{wallet: "100", bid: "1", total: "100"})
	u := f.ledger()

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		tracked    int
		duplicates int
	)
	count := 10
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			res, err := u.TrackClick(context.Background(), f.campaign.ID, ptr("visitor-1"), nil)
			if err != nil {
				t.Errorf("TrackClick error: %v", err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if res.Tracked {
				tracked++
			} else if res.Reason == domain.ReasonDuplicatedVisitorEvent {
				duplicates++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, tracked)
	assert.Equal(t, count-1, duplicates)
	assertMoney(t, "99", f.wallet(t))
}

func TestTrackClick_StorageFailure(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	tx := mocks.NewMockLedgerTx(t)
	metrics := mocks.NewMockLedgerMetrics(t)
	campaignID := uuid.New()
	boom := errors.New("connection reset")

	store.EXPECT().
		WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, port.LedgerTx) error) error {
			return fn(ctx, tx)
		})
	tx.EXPECT().LockCampaign(mock.Anything, campaignID).Return(nil, boom)
	metrics.EXPECT().ObserveTrack(domain.EventClick, "error", mock.Anything).Return()

	u := NewLedgerUseCase(store, nil, nil, metrics, discardLogger())
	_, err := u.TrackClick(context.Background(), campaignID, nil, nil)

	var se *domain.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "track interaction", se.Op)
	assert.ErrorIs(t, err, boom)
}

func TestTrackClick_DebitRaceLostPauses(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	tx := mocks.NewMockLedgerTx(t)
	f := newFixture(t, fixtureOpts{wallet: "100", bid: "10", total: "100"})
	st := &domain.CampaignState{Campaign: f.campaign, BusinessVerified: true, WalletBalance: money("100")}

	store.EXPECT().
		WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, port.LedgerTx) error) error {
			return fn(ctx, tx)
		})
	tx.EXPECT().LockCampaign(mock.Anything, f.campaign.ID).Return(st, nil)
	tx.EXPECT().WalletBalance(mock.Anything, f.org.ID).Return(money("100"), nil)
	// another campaign of the organization drained the wallet first
	tx.EXPECT().DebitWallet(mock.Anything, f.org.ID, f.campaign.BidAmount).Return(false, nil)
	tx.EXPECT().SetCampaignStatus(mock.Anything, f.campaign.ID, domain.StatusPaused).Return(nil)

	u := NewLedgerUseCase(store, nil, nil, nil, discardLogger())
	u.now = func() time.Time { return testNow }
	res, err := u.TrackClick(context.Background(), f.campaign.ID, nil, nil)
	require.NoError(t, err)
	assert.False(t, res.Tracked)
	assert.Equal(t, domain.ReasonWalletInsufficientFunds, res.Reason)
}

func TestTrackClick_PublishesAndObserves(t *testing.T) {
	f := newFixture(t, fixtureOpts{wallet: "100", bid: "2.50", total: "100"})
	publisher := mocks.NewMockEventPublisher(t)
	metrics := mocks.NewMockLedgerMetrics(t)

	publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(ev domain.InteractionEvent) bool {
			return ev.CampaignID == f.campaign.ID &&
				ev.EventType == domain.EventClick &&
				ev.CostAmount != nil && ev.CostAmount.Equal(money("2.50"))
		})).
		Return(errors.New("broker down")).
		Once()
	metrics.EXPECT().ObserveTrack(domain.EventClick, "tracked", mock.Anything).Return().Once()
	metrics.EXPECT().ObserveTrack(domain.EventClick, string(domain.ReasonDuplicatedVisitorEvent), mock.Anything).Return().Once()

	u := NewLedgerUseCase(f.store, f.store, publisher, metrics, discardLogger())
	u.now = func() time.Time { return testNow }

	res, err := u.TrackClick(context.Background(), f.campaign.ID, ptr("visitor-1"), nil)
	require.NoError(t, err)
	assert.True(t, res.Tracked, "publish failures must not fail tracking")

	res, err = u.TrackClick(context.Background(), f.campaign.ID, ptr("visitor-1"), nil)
	require.NoError(t, err)
	assert.False(t, res.Tracked)
}

func TestGetStats(t *testing.T) {
	f := newFixture(t, fixtureOpts{wallet: "100", bid: "1.25", total: "100"})
	u := f.ledger()
	ctx := context.Background()
	owner := domain.Actor{UserID: uuid.New(), OrganizationID: f.org.ID, OrgRole: domain.OrgRoleStaff}

	for i := 0; i < 2; i++ {
		_, err := u.TrackClick(ctx, f.campaign.ID, nil, nil)
		require.NoError(t, err)
	}
	_, err := u.TrackImpression(ctx, f.campaign.ID, nil, nil)
	require.NoError(t, err)

	resp, err := u.GetStats(ctx, owner, port.StatsReq{
		From:       testNow.Add(-time.Hour),
		To:         testNow.Add(time.Hour),
		CampaignID: &f.campaign.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Impressions)
	assert.Equal(t, int64(2), resp.Clicks)
	assertMoney(t, "2.50", resp.Cost)

	// the period is half open
	resp, err = u.GetStats(ctx, owner, port.StatsReq{From: testNow.Add(-time.Hour), To: testNow})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Clicks)

	_, err = u.GetStats(ctx, owner, port.StatsReq{From: testNow, To: testNow})
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestGetStats_ScopedToOrganization(t *testing.T) {
	f := newFixture(t, fixtureOpts{wallet: "100", bid: "1.00", total: "100"})
	u := f.ledger()
	ctx := context.Background()

	rival := domain.Organization{ID: uuid.New(), Name: "Rival", WalletBalance: money("100")}
	rivalBiz := domain.Business{ID: uuid.New(), OrganizationID: rival.ID, Name: "Rival Cafe", Verified: true, ReputationScore: money("50")}
	rivalCampaign := f.newCampaign("3.00", "100", "0")
	rivalCampaign.OrganizationID = rival.ID
	rivalCampaign.BusinessID = rivalBiz.ID
	f.store.AddOrganization(rival)
	f.store.AddBusiness(rivalBiz)
	f.store.PutCampaign(rivalCampaign)

	_, err := u.TrackClick(ctx, f.campaign.ID, nil, nil)
	require.NoError(t, err)
	_, err = u.TrackClick(ctx, rivalCampaign.ID, nil, nil)
	require.NoError(t, err)

	period := port.StatsReq{From: testNow.Add(-time.Hour), To: testNow.Add(time.Hour)}
	mine := domain.Actor{UserID: uuid.New(), OrganizationID: f.org.ID, OrgRole: domain.OrgRoleOwner}

	resp, err := u.GetStats(ctx, mine, period)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Clicks)
	assertMoney(t, "1.00", resp.Cost)

	// another organization's campaign yields nothing, and a caller-supplied
	// organization is overridden
	other := period
	other.CampaignID = &rivalCampaign.ID
	other.OrganizationID = &rival.ID
	resp, err = u.GetStats(ctx, mine, other)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Clicks)
	assertMoney(t, "0", resp.Cost)

	admin := domain.Actor{UserID: uuid.New(), GlobalRole: domain.GlobalRoleAdmin}
	resp, err = u.GetStats(ctx, admin, period)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Clicks)
	assertMoney(t, "4.00", resp.Cost)

	resp, err = u.GetStats(ctx, admin, other)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Clicks)

	_, err = u.GetStats(ctx, domain.Actor{UserID: uuid.New()}, period)
	var pe *domain.PermissionError
	assert.ErrorAs(t, err, &pe)
}
