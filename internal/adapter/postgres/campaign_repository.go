package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adledger/internal/core/domain"
	"adledger/internal/core/port"
)

// campaignColumns is the select list understood by scanCampaign. Money
// columns are read as text and parsed into decimals.
const campaignColumns = `
            c.id,
            c.organization_id,
            c.business_id,
            c.name,
            c.status,
            c.starts_at,
            c.ends_at,
            c.daily_budget::text,
            c.total_budget::text,
            c.bid_amount::text,
            c.spent_amount::text,
            c.impressions,
            c.clicks,
            c.target_province_id,
            c.target_category_id,
            c.created_by,
            c.created_at,
            c.updated_at`

// CampaignRepository implements port.CampaignRepository,
// port.PlacementRepository and port.StatsRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

var (
	_ port.CampaignRepository  = (*CampaignRepository)(nil)
	_ port.PlacementRepository = (*CampaignRepository)(nil)
	_ port.StatsRepository     = (*CampaignRepository)(nil)
)

// scanCampaign scans campaignColumns followed by extra destinations.
func scanCampaign(row pgx.Row, c *domain.Campaign, extra ...any) error {
	var daily, total, bid, spent string
	dest := []any{
		&c.ID,
		&c.OrganizationID,
		&c.BusinessID,
		&c.Name,
		&c.Status,
		&c.StartsAt,
		&c.EndsAt,
		&daily,
		&total,
		&bid,
		&spent,
		&c.Impressions,
		&c.Clicks,
		&c.Targeting.ProvinceID,
		&c.Targeting.CategoryID,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return err
	}
	return parseMoney(
		moneyField{"daily_budget", daily, &c.DailyBudget},
		moneyField{"total_budget", total, &c.TotalBudget},
		moneyField{"bid_amount", bid, &c.BidAmount},
		moneyField{"spent_amount", spent, &c.SpentAmount},
	)
}

type moneyField struct {
	name string
	text string
	dst  *decimal.Decimal
}

func parseMoney(fields ...moneyField) error {
	for _, f := range fields {
		v, err := decimal.NewFromString(f.text)
		if err != nil {
			return fmt.Errorf("parse %s: %w", f.name, err)
		}
		*f.dst = v
	}
	return nil
}

// GetBusiness returns a business by id.
func (r *CampaignRepository) GetBusiness(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	var (
		b   domain.Business
		rep string
	)
	err := r.pool.QueryRow(ctx, `SELECT id, organization_id, name, verified, reputation_score::text FROM businesses WHERE id = $1`, id).
		Scan(&b.ID, &b.OrganizationID, &b.Name, &b.Verified, &rep)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err = parseMoney(moneyField{"reputation_score", rep, &b.ReputationScore}); err != nil {
		return nil, err
	}
	return &b, nil
}

// ProvinceExists reports whether the province id resolves.
func (r *CampaignRepository) ProvinceExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM provinces WHERE id = $1)`, id)
}

// CategoryExists reports whether the category id resolves.
func (r *CampaignRepository) CategoryExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id)
}

func (r *CampaignRepository) exists(ctx context.Context, query string, id int64) (bool, error) {
	var ok bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// CreateCampaign inserts a campaign row.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, organization_id, business_id, name, status, starts_at, ends_at, daily_budget, total_budget,
     bid_amount, spent_amount, impressions, clicks, target_province_id, target_category_id,
     created_by, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8::numeric,$9::numeric,$10::numeric,$11::numeric,$12,$13,$14,$15,$16,$17,$18)`,
		c.ID, c.OrganizationID, c.BusinessID, c.Name, string(c.Status), c.StartsAt, c.EndsAt,
		c.DailyBudget.String(), c.TotalBudget.String(), c.BidAmount.String(), c.SpentAmount.String(),
		c.Impressions, c.Clicks, c.Targeting.ProvinceID, c.Targeting.CategoryID,
		c.CreatedBy, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "campaign")
	}
	return nil
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var c domain.Campaign
	err := scanCampaign(r.pool.QueryRow(ctx, `SELECT`+campaignColumns+` FROM campaigns c WHERE c.id = $1`, id), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns one page of an organization's campaigns.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, orgID uuid.UUID, filter domain.CampaignFilter, page domain.Page) (*domain.CampaignPage, error) {
	var (
		where = []string{"c.organization_id = $1"}
		args  = []any{orgID}
	)
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where = append(where, fmt.Sprintf("c.status = $%d", len(args)))
	}
	if filter.BusinessID != nil {
		args = append(args, *filter.BusinessID)
		where = append(where, fmt.Sprintf("c.business_id = $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns c WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT%s FROM campaigns c WHERE %s ORDER BY c.created_at DESC, c.id LIMIT $%d OFFSET $%d`,
		campaignColumns, cond, len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, query, append(args, page.Limit, page.Offset)...)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := scanCampaign(row, &c)
		return c, err
	})
	if err != nil {
		return nil, err
	}
	return &domain.CampaignPage{Items: items, Total: total, Limit: page.Limit, Offset: page.Offset}, nil
}

// ListPlacementCandidates returns campaigns matching the selection
// predicate, best first.
func (r *CampaignRepository) ListPlacementCandidates(ctx context.Context, pc domain.PlacementContext, now time.Time, fetch int) ([]domain.PlacementCandidate, error) {
	query := `
        SELECT` + campaignColumns + `,
            b.name,
            b.reputation_score::text
        FROM campaigns c
        JOIN businesses b ON b.id = c.business_id
        JOIN organizations o ON o.id = c.organization_id
        WHERE c.status = 'ACTIVE'
          AND c.starts_at <= $1 AND c.ends_at > $1
          AND b.verified
          AND o.wallet_balance > 0
          AND (c.target_province_id IS NULL OR c.target_province_id = $2)
          AND (c.target_category_id IS NULL OR c.target_category_id = $3)
        ORDER BY c.bid_amount DESC, b.reputation_score DESC, c.updated_at DESC
        LIMIT $4`
	rows, err := r.pool.Query(ctx, query, now, pc.ProvinceID, pc.CategoryID, fetch)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PlacementCandidate, error) {
		var (
			cand domain.PlacementCandidate
			rep  string
		)
		if err := scanCampaign(row, &cand.Campaign, &cand.BusinessName, &rep); err != nil {
			return cand, err
		}
		err := parseMoney(moneyField{"reputation_score", rep, &cand.ReputationScore})
		return cand, err
	})
}

// GetStats returns aggregated interaction events in [From, To).
func (r *CampaignRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []any{req.From, req.To}
	where := ""
	if req.OrganizationID != nil {
		args = append(args, *req.OrganizationID)
		where += fmt.Sprintf(" AND organization_id = $%d", len(args))
	}
	if req.CampaignID != nil {
		args = append(args, *req.CampaignID)
		where += fmt.Sprintf(" AND campaign_id = $%d", len(args))
	}
	query := fmt.Sprintf(`SELECT
    count(*) FILTER (WHERE event_type = 'IMPRESSION'),
    count(*) FILTER (WHERE event_type = 'CLICK'),
    COALESCE(sum(cost_amount), 0)::text
FROM interaction_events WHERE occurred_at >= $1 AND occurred_at < $2%s`, where)
	var (
		resp port.StatsResp
		cost string
	)
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&resp.Impressions, &resp.Clicks, &cost); err != nil {
		return nil, err
	}
	if err := parseMoney(moneyField{"cost", cost, &resp.Cost}); err != nil {
		return nil, err
	}
	return &resp, nil
}
