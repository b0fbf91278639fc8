package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adledger/internal/core/domain"
	"adledger/internal/core/port"
)

func seeded(t *testing.T) (*Store, domain.Organization, domain.Campaign) {
	t.Helper()
	s := NewStore()
	org := domain.Organization{ID: uuid.New(), Name: "Acme", WalletBalance: decimal.NewFromInt(100)}
	biz := domain.Business{ID: uuid.New(), OrganizationID: org.ID, Name: "Acme Coffee", Verified: true}
	c := domain.Campaign{
		ID:             uuid.New(),
		OrganizationID: org.ID,
		BusinessID:     biz.ID,
		Status:         domain.StatusActive,
		TotalBudget:    decimal.NewFromInt(50),
		BidAmount:      decimal.NewFromInt(10),
	}
	s.AddOrganization(org)
	s.AddBusiness(biz)
	s.PutCampaign(c)
	return s, org, c
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	s, org, c := seeded(t)
	boom := errors.New("boom")
	marker := domain.NewVisitorMarker(org.ID, domain.EventClick, c.ID, "h", time.Now())

	err := s.WithinTx(context.Background(), func(ctx context.Context, tx port.LedgerTx) error {
		inserted, err := tx.InsertVisitorMarker(ctx, marker)
		require.NoError(t, err)
		require.True(t, inserted)

		ok, err := tx.DebitWallet(ctx, org.ID, decimal.NewFromInt(10))
		require.NoError(t, err)
		require.True(t, ok)

		_, _, err = tx.RecordClick(ctx, c.ID, decimal.NewFromInt(10), domain.StatusActive)
		require.NoError(t, err)
		require.NoError(t, tx.AppendEvent(ctx, &domain.InteractionEvent{ID: uuid.New(), CampaignID: c.ID}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	o, _ := s.Organization(org.ID)
	assert.True(t, decimal.NewFromInt(100).Equal(o.WalletBalance))
	got, _ := s.Campaign(c.ID)
	assert.Equal(t, int64(0), got.Clicks)
	assert.True(t, got.SpentAmount.IsZero())
	assert.Empty(t, s.Events())

	// the marker was released with the rest of the unit
	err = s.WithinTx(context.Background(), func(ctx context.Context, tx port.LedgerTx) error {
		inserted, err := tx.InsertVisitorMarker(ctx, marker)
		require.NoError(t, err)
		assert.True(t, inserted)
		return nil
	})
	require.NoError(t, err)
}

func TestWithinTx_CanceledContext(t *testing.T) {
	s, _, _ := seeded(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.WithinTx(ctx, func(context.Context, port.LedgerTx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestLedgerTx_DebitAndRecord(t *testing.T) {
	s, org, c := seeded(t)

	err := s.WithinTx(context.Background(), func(ctx context.Context, tx port.LedgerTx) error {
		st, err := tx.LockCampaign(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, st)
		assert.True(t, st.BusinessVerified)
		assert.True(t, decimal.NewFromInt(100).Equal(st.WalletBalance))

		missing, err := tx.LockCampaign(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, missing)

		ok, err := tx.DebitWallet(ctx, org.ID, decimal.NewFromInt(101))
		require.NoError(t, err)
		assert.False(t, ok)

		// spend may never pass the total budget
		_, _, err = tx.RecordClick(ctx, c.ID, decimal.NewFromInt(51), domain.StatusActive)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)

		spent, clicks, err := tx.RecordClick(ctx, c.ID, decimal.NewFromInt(50), domain.StatusEnded)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(50).Equal(spent))
		assert.Equal(t, int64(1), clicks)
		return nil
	})
	require.NoError(t, err)

	got, _ := s.Campaign(c.ID)
	assert.Equal(t, domain.StatusEnded, got.Status)
}

func TestCreateCampaign_Duplicate(t *testing.T) {
	s, _, c := seeded(t)
	err := s.CreateCampaign(context.Background(), &c)
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
}
