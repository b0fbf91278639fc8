package postgres

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adledger/internal/core/domain"
	"adledger/internal/core/port"
)

// mockTx records the statements a ledger unit sends. Methods the ledger
// never calls fall through to the nil embedded pgx.Tx.
type mockTx struct {
	pgx.Tx
	mock.Mock
}

func (m *mockTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	ret := m.Called(flatten(sql), args)
	return ret.Get(0).(pgconn.CommandTag), ret.Error(1)
}

func (m *mockTx) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	return m.Called(flatten(sql), args).Get(0).(pgx.Row)
}

func (m *mockTx) Commit(context.Context) error {
	return m.Called().Error(0)
}

func (m *mockTx) Rollback(context.Context) error {
	return m.Called().Error(0)
}

type stubRow struct {
	values []any
	err    error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.values[i]))
	}
	return nil
}

type stubBeginner struct {
	tx   pgx.Tx
	opts pgx.TxOptions
}

func (b *stubBeginner) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	b.opts = opts
	return b.tx, nil
}

func flatten(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}

func containsSQL(fragment string) any {
	return mock.MatchedBy(func(sql string) bool { return strings.Contains(sql, fragment) })
}

func TestDebitWallet(t *testing.T) {
	orgID := uuid.New()
	const debit = "UPDATE organizations SET wallet_balance = wallet_balance - $1::numeric, updated_at = now() WHERE id = $2 AND wallet_balance >= $1::numeric"

	tests := []struct {
		name string
		tag  string
		want bool
	}{
		{name: "balance covers the bid", tag: "UPDATE 1", want: true},
		{name: "balance moved below the bid", tag: "UPDATE 0", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &mockTx{}
			tx.On("Exec", debit, []any{"2.5", orgID}).Return(pgconn.NewCommandTag(tt.tag), nil)

			ok, err := (&ledgerTx{tx: tx}).DebitWallet(context.Background(), orgID, decimal.RequireFromString("2.50"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			tx.AssertExpectations(t)
		})
	}
}

func TestDebitWallet_Error(t *testing.T) {
	tx := &mockTx{}
	tx.On("Exec", mock.Anything, mock.Anything).Return(pgconn.CommandTag{}, errors.New("conn reset"))

	_, err := (&ledgerTx{tx: tx}).DebitWallet(context.Background(), uuid.New(), decimal.NewFromInt(1))
	assert.ErrorContains(t, err, "debit wallet")
}

func TestInsertVisitorMarker(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	marker := domain.NewVisitorMarker(uuid.New(), domain.EventClick, uuid.New(), "ba7816bf8f01cfea414140de5dae2223", now)
	insert := containsSQL("ON CONFLICT (organization_id, metric_key, period_start, period_end) DO NOTHING RETURNING id")
	argsMatch := mock.MatchedBy(func(args []any) bool {
		return len(args) == 5 &&
			args[1] == marker.OrganizationID &&
			args[2] == marker.MetricKey &&
			args[3] == marker.PeriodStart &&
			args[4] == marker.PeriodEnd
	})

	tx := &mockTx{}
	tx.On("QueryRow", insert, argsMatch).Return(stubRow{values: []any{uuid.New()}}).Once()
	tx.On("QueryRow", insert, argsMatch).Return(stubRow{err: pgx.ErrNoRows}).Once()
	lt := &ledgerTx{tx: tx}

	inserted, err := lt.InsertVisitorMarker(context.Background(), marker)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = lt.InsertVisitorMarker(context.Background(), marker)
	require.NoError(t, err)
	assert.False(t, inserted)
	tx.AssertExpectations(t)
}

func TestLockCampaign_LocksCampaignRow(t *testing.T) {
	id := uuid.New()
	tx := &mockTx{}
	tx.On("QueryRow", containsSQL("WHERE c.id = $1 FOR UPDATE OF c"), []any{id}).Return(stubRow{err: pgx.ErrNoRows})

	st, err := (&ledgerTx{tx: tx}).LockCampaign(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, st)
	tx.AssertExpectations(t)
}

func TestWithinTx(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		tx := &mockTx{}
		tx.On("Commit").Return(nil)
		b := &stubBeginner{tx: tx}

		err := (&LedgerStore{pool: b}).WithinTx(context.Background(), func(context.Context, port.LedgerTx) error {
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, pgx.ReadCommitted, b.opts.IsoLevel)
		tx.AssertExpectations(t)
		tx.AssertNotCalled(t, "Rollback")
	})

	t.Run("rolls back on error", func(t *testing.T) {
		tx := &mockTx{}
		tx.On("Rollback").Return(nil)
		boom := errors.New("boom")

		err := (&LedgerStore{pool: &stubBeginner{tx: tx}}).WithinTx(context.Background(), func(context.Context, port.LedgerTx) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
		tx.AssertExpectations(t)
		tx.AssertNotCalled(t, "Commit")
	})

	t.Run("reports commit failure", func(t *testing.T) {
		tx := &mockTx{}
		tx.On("Commit").Return(errors.New("serialization failure"))

		err := (&LedgerStore{pool: &stubBeginner{tx: tx}}).WithinTx(context.Background(), func(context.Context, port.LedgerTx) error {
			return nil
		})
		assert.ErrorContains(t, err, "commit tx")
	})
}
