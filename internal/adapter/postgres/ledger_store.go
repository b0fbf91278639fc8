package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adledger/internal/core/domain"
	"adledger/internal/core/port"
)

// LedgerStore implements port.LedgerStore on PostgreSQL.
//
// Units run at READ COMMITTED. The campaign row is locked with
// SELECT ... FOR UPDATE, visitor markers rely on a unique index through
// INSERT ... ON CONFLICT DO NOTHING, and the wallet is debited with a
// single conditional UPDATE which re-checks the balance against the latest
// committed row. Clicks on different campaigns of one organization
// therefore never overdraw the shared wallet.
type LedgerStore struct {
	pool txBeginner
}

// txBeginner is the part of *pgxpool.Pool the ledger needs.
type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// NewLedgerStore returns a new store instance.
func NewLedgerStore(pool *pgxpool.Pool) *LedgerStore {
	return &LedgerStore{pool: pool}
}

var _ port.LedgerStore = (*LedgerStore)(nil)

// WithinTx runs fn in a transaction, committing only if fn returns nil.
func (s *LedgerStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx port.LedgerTx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = fmt.Errorf("commit tx: %w", err)
		}
	}()
	return fn(ctx, &ledgerTx{tx: tx})
}

type ledgerTx struct {
	tx pgx.Tx
}

func (t *ledgerTx) LockCampaign(ctx context.Context, id uuid.UUID) (*domain.CampaignState, error) {
	query := `
        SELECT` + campaignColumns + `,
            b.verified,
            o.wallet_balance::text
        FROM campaigns c
        JOIN businesses b ON b.id = c.business_id
        JOIN organizations o ON o.id = c.organization_id
        WHERE c.id = $1
        FOR UPDATE OF c`
	var (
		st      domain.CampaignState
		balance string
	)
	err := scanCampaign(t.tx.QueryRow(ctx, query, id), &st.Campaign, &st.BusinessVerified, &balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock campaign: %w", err)
	}
	if err = parseMoney(moneyField{"wallet_balance", balance, &st.WalletBalance}); err != nil {
		return nil, err
	}
	return &st, nil
}

func (t *ledgerTx) WalletBalance(ctx context.Context, orgID uuid.UUID) (decimal.Decimal, error) {
	var balance string
	if err := t.tx.QueryRow(ctx, `SELECT wallet_balance::text FROM organizations WHERE id = $1`, orgID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("read wallet: %w", err)
	}
	var v decimal.Decimal
	err := parseMoney(moneyField{"wallet_balance", balance, &v})
	return v, err
}

func (t *ledgerTx) InsertVisitorMarker(ctx context.Context, m domain.VisitorMarker) (bool, error) {
	var id uuid.UUID
	err := t.tx.QueryRow(ctx, `INSERT INTO unique_visitor_markers
    (id, organization_id, metric_key, period_start, period_end, created_at)
VALUES ($1,$2,$3,$4,$5,now())
ON CONFLICT (organization_id, metric_key, period_start, period_end) DO NOTHING
RETURNING id`, uuid.New(), m.OrganizationID, m.MetricKey, m.PeriodStart, m.PeriodEnd).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("insert visitor marker: %w", err)
	}
	return true, nil
}

func (t *ledgerTx) IncrementImpressions(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	var n int64
	err := t.tx.QueryRow(ctx, `UPDATE campaigns SET impressions = impressions + 1 WHERE id = $1 RETURNING impressions`, campaignID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("increment impressions: %w", err)
	}
	return n, nil
}

func (t *ledgerTx) DebitWallet(ctx context.Context, orgID uuid.UUID, amount decimal.Decimal) (bool, error) {
	tag, err := t.tx.Exec(ctx, `UPDATE organizations
SET wallet_balance = wallet_balance - $1::numeric, updated_at = now()
WHERE id = $2 AND wallet_balance >= $1::numeric`, amount.String(), orgID)
	if err != nil {
		return false, fmt.Errorf("debit wallet: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (t *ledgerTx) RecordClick(ctx context.Context, campaignID uuid.UUID, amount decimal.Decimal, status domain.CampaignStatus) (decimal.Decimal, int64, error) {
	var (
		spentText string
		clicks    int64
	)
	err := t.tx.QueryRow(ctx, `UPDATE campaigns
SET clicks = clicks + 1, spent_amount = spent_amount + $1::numeric, status = $2, updated_at = now()
WHERE id = $3
RETURNING spent_amount::text, clicks`, amount.String(), string(status), campaignID).Scan(&spentText, &clicks)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("record click: %w", err)
	}
	var spent decimal.Decimal
	if err = parseMoney(moneyField{"spent_amount", spentText, &spent}); err != nil {
		return decimal.Zero, 0, err
	}
	return spent, clicks, nil
}

func (t *ledgerTx) SetCampaignStatus(ctx context.Context, campaignID uuid.UUID, status domain.CampaignStatus) error {
	if _, err := t.tx.Exec(ctx, `UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2`, string(status), campaignID); err != nil {
		return fmt.Errorf("set campaign status: %w", err)
	}
	return nil
}

func (t *ledgerTx) AppendEvent(ctx context.Context, ev *domain.InteractionEvent) error {
	var cost *string
	if ev.CostAmount != nil {
		s := ev.CostAmount.String()
		cost = &s
	}
	_, err := t.tx.Exec(ctx, `INSERT INTO interaction_events
    (id, campaign_id, organization_id, event_type, visitor_hash, cost_amount, placement_key, occurred_at)
VALUES ($1,$2,$3,$4,$5,$6::numeric,$7,$8)`,
		ev.ID, ev.CampaignID, ev.OrganizationID, string(ev.EventType), ev.VisitorHash, cost, ev.PlacementKey, ev.OccurredAt)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}
