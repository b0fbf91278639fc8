package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/singleflight"

	"adledger/internal/core/domain"
	"adledger/internal/core/port"
)

// overFetch is how many candidates are read per requested slot. The extra
// rows absorb campaigns whose budget ran out after the ordering snapshot.
const overFetch = 3

// rankTimeout bounds a shared ranking flight, which outlives the caller
// that started it.
const rankTimeout = 5 * time.Second

// PlacementUseCase ranks active campaigns into placement slots. It only
// reads, and tolerates data as stale as the cache TTL: a lost budget race
// is corrected by the ledger at click time.
type PlacementUseCase struct {
	repo         port.PlacementRepository
	cache        port.PlacementCache
	metrics      port.LedgerMetrics
	logger       *slog.Logger
	now          func() time.Time
	group        singleflight.Group
	defaultLimit int
	maxLimit     int
}

// NewPlacementUseCase creates the auction. cache and metrics may be nil.
func NewPlacementUseCase(repo port.PlacementRepository, cache port.PlacementCache, metrics port.LedgerMetrics, logger *slog.Logger, defaultLimit, maxLimit int) *PlacementUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultLimit <= 0 {
		defaultLimit = 5
	}
	if maxLimit < defaultLimit {
		maxLimit = defaultLimit
	}
	return &PlacementUseCase{
		repo:         repo,
		cache:        cache,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// GetPlacements returns at most pc.Limit ranked placements for the request
// context. Positions are numbered from 1 in the returned order.
func (u *PlacementUseCase) GetPlacements(ctx context.Context, pc domain.PlacementContext) ([]domain.RankedPlacement, error) {
	pc.Limit = u.limit(pc.Limit)
	key := placementKey(pc)

	if u.cache != nil {
		cached, ok, err := u.cache.Get(ctx, key)
		if err != nil {
			u.logger.Warn("placement cache get failed", slog.String("key", key), slog.Any("error", err))
		} else if ok {
			u.observe(len(cached))
			return cached, nil
		}
	}

	v, err, _ := u.group.Do(key, func() (any, error) {
		// every waiter on key shares this flight
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rankTimeout)
		defer cancel()

		placements, err := u.rank(flightCtx, pc)
		if err != nil {
			return nil, err
		}
		if u.cache != nil {
			if err = u.cache.Set(flightCtx, key, placements); err != nil {
				u.logger.Warn("placement cache set failed", slog.String("key", key), slog.Any("error", err))
			}
		}
		return placements, nil
	})
	if err != nil {
		return nil, storageErr("get placements", err)
	}
	placements := slices.Clone(v.([]domain.RankedPlacement))
	u.observe(len(placements))
	return placements, nil
}

// rank over-fetches candidates, drops exhausted budgets and scores the rest.
func (u *PlacementUseCase) rank(ctx context.Context, pc domain.PlacementContext) ([]domain.RankedPlacement, error) {
	candidates, err := u.repo.ListPlacementCandidates(ctx, pc, u.now().UTC(), pc.Limit*overFetch)
	if err != nil {
		return nil, err
	}
	placements := make([]domain.RankedPlacement, 0, pc.Limit)
	for _, cand := range candidates {
		if len(placements) == pc.Limit {
			break
		}
		c := cand.Campaign
		if c.BudgetExhausted() {
			continue
		}
		placements = append(placements, domain.RankedPlacement{
			Position:        len(placements) + 1,
			CampaignID:      c.ID,
			BusinessID:      c.BusinessID,
			BusinessName:    cand.BusinessName,
			CampaignName:    c.Name,
			BidAmount:       c.BidAmount,
			ReputationScore: cand.ReputationScore,
			AdScore:         domain.AdScore(c.BidAmount, cand.ReputationScore),
			UpdatedAt:       c.UpdatedAt,
		})
	}
	return placements, nil
}

func (u *PlacementUseCase) limit(requested int) int {
	switch {
	case requested <= 0:
		return u.defaultLimit
	case requested > u.maxLimit:
		return u.maxLimit
	}
	return requested
}

func (u *PlacementUseCase) observe(served int) {
	if u.metrics != nil {
		u.metrics.ObservePlacements(served)
	}
}

func placementKey(pc domain.PlacementContext) string {
	return fmt.Sprintf("placements:p=%s:c=%s:n=%d", refKey(pc.ProvinceID), refKey(pc.CategoryID), pc.Limit)
}

func refKey(id *int64) string {
	if id == nil {
		return "*"
	}
	return fmt.Sprint(*id)
}
