package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adledger/internal/core/domain"
)

// Dataset is a set of demo rows. It is loaded into PostgreSQL by Seed and
// into the in-memory store by main.
type Dataset struct {
	Provinces     map[int64]string
	Categories    map[int64]string
	Organizations []domain.Organization
	Businesses    []domain.Business
	Campaigns     []domain.Campaign
}

func seedID(kind string, n int) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("adledger:%s:%d", kind, n)))
}

// DemoData builds a deterministic dataset: 3 organizations with funded
// wallets, 2 businesses each (one unverified) and 4 campaigns per
// verified business around now.
func DemoData(now time.Time) Dataset {
	r := rand.New(rand.NewSource(42))
	ds := Dataset{
		Provinces:  map[int64]string{1: "Yerevan", 2: "Shirak", 3: "Lori"},
		Categories: map[int64]string{10: "restaurants", 20: "hotels", 30: "services"},
	}
	start := now.UTC().AddDate(0, 0, -1)
	end := now.UTC().AddDate(0, 1, 0)

	for i := 1; i <= 3; i++ {
		org := domain.Organization{
			ID:            seedID("org", i),
			Name:          fmt.Sprintf("Organization %d", i),
			WalletBalance: decimal.NewFromInt(int64(200 * i)),
		}
		ds.Organizations = append(ds.Organizations, org)

		for j := 1; j <= 2; j++ {
			n := (i-1)*2 + j
			biz := domain.Business{
				ID:              seedID("business", n),
				OrganizationID:  org.ID,
				Name:            fmt.Sprintf("Business %d", n),
				Verified:        j == 1,
				ReputationScore: decimal.NewFromInt(int64(50 + r.Intn(51))),
			}
			ds.Businesses = append(ds.Businesses, biz)
			if !biz.Verified {
				continue
			}
			for k := 1; k <= 4; k++ {
				cn := (n-1)*4 + k
				bid := decimal.New(int64(50+r.Intn(450)), -2) // 0.50 .. 4.99
				c := domain.Campaign{
					ID:             seedID("campaign", cn),
					OrganizationID: org.ID,
					BusinessID:     biz.ID,
					Name:           fmt.Sprintf("Campaign %d", cn),
					Status:         domain.StatusActive,
					StartsAt:       start,
					EndsAt:         end,
					DailyBudget:    decimal.NewFromInt(50),
					TotalBudget:    decimal.NewFromInt(500),
					BidAmount:      bid,
					SpentAmount:    decimal.Zero,
					CreatedBy:      seedID("user", i),
					CreatedAt:      now.UTC(),
					UpdatedAt:      now.UTC(),
				}
				if k%2 == 0 {
					p := int64(1 + r.Intn(3))
					c.Targeting.ProvinceID = &p
				}
				if k == 3 {
					cat := int64(10 * (1 + r.Intn(3)))
					c.Targeting.CategoryID = &cat
				}
				ds.Campaigns = append(ds.Campaigns, c)
			}
		}
	}
	return ds
}

// Seed inserts ds into the database. Existing rows are left untouched, so
// seeding twice is harmless.
func Seed(ctx context.Context, db *pgxpool.Pool, ds Dataset) error {
	for id, name := range ds.Provinces {
		if _, err := db.Exec(ctx, `INSERT INTO provinces (id, name) VALUES ($1,$2) ON CONFLICT DO NOTHING`, id, name); err != nil {
			return err
		}
	}
	for id, name := range ds.Categories {
		if _, err := db.Exec(ctx, `INSERT INTO categories (id, name) VALUES ($1,$2) ON CONFLICT DO NOTHING`, id, name); err != nil {
			return err
		}
	}
	for _, o := range ds.Organizations {
		_, err := db.Exec(ctx, `INSERT INTO organizations (id, name, wallet_balance)
VALUES ($1,$2,$3::numeric) ON CONFLICT DO NOTHING`, o.ID, o.Name, o.WalletBalance.String())
		if err != nil {
			return err
		}
	}
	for _, b := range ds.Businesses {
		_, err := db.Exec(ctx, `INSERT INTO businesses (id, organization_id, name, verified, reputation_score)
VALUES ($1,$2,$3,$4,$5::numeric) ON CONFLICT DO NOTHING`, b.ID, b.OrganizationID, b.Name, b.Verified, b.ReputationScore.String())
		if err != nil {
			return err
		}
	}
	for _, c := range ds.Campaigns {
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, organization_id, business_id, name, status, starts_at, ends_at, daily_budget, total_budget,
     bid_amount, spent_amount, target_province_id, target_category_id, created_by, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8::numeric,$9::numeric,$10::numeric,$11::numeric,$12,$13,$14,$15,$16)
ON CONFLICT DO NOTHING`,
			c.ID, c.OrganizationID, c.BusinessID, c.Name, string(c.Status), c.StartsAt, c.EndsAt,
			c.DailyBudget.String(), c.TotalBudget.String(), c.BidAmount.String(), c.SpentAmount.String(),
			c.Targeting.ProvinceID, c.Targeting.CategoryID, c.CreatedBy, c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}
