package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adledger/internal/core/domain"
	"adledger/internal/core/port"
)

// LedgerUseCase records impressions and clicks. Every call runs as one
// unit of work on the store; a click debits the organization wallet,
// books the spend on the campaign and appends the event atomically.
type LedgerUseCase struct {
	store     port.LedgerStore
	stats     port.StatsRepository
	publisher port.EventPublisher
	metrics   port.LedgerMetrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewLedgerUseCase creates the ledger. publisher and metrics may be nil.
func NewLedgerUseCase(store port.LedgerStore, stats port.StatsRepository, publisher port.EventPublisher, metrics port.LedgerMetrics, logger *slog.Logger) *LedgerUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerUseCase{
		store:     store,
		stats:     stats,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// TrackImpression counts an impression of a placement.
func (u *LedgerUseCase) TrackImpression(ctx context.Context, campaignID uuid.UUID, visitorID, placementKey *string) (domain.TrackResult, error) {
	return u.TrackInteraction(ctx, domain.TrackRequest{
		CampaignID:   campaignID,
		EventType:    domain.EventImpression,
		VisitorID:    visitorID,
		PlacementKey: placementKey,
	})
}

// TrackClick counts a click and charges the campaign's bid.
func (u *LedgerUseCase) TrackClick(ctx context.Context, campaignID uuid.UUID, visitorID, placementKey *string) (domain.TrackResult, error) {
	return u.TrackInteraction(ctx, domain.TrackRequest{
		CampaignID:   campaignID,
		EventType:    domain.EventClick,
		VisitorID:    visitorID,
		PlacementKey: placementKey,
	})
}

// statusChange is an automatic transition made by a unit of work. It is
// logged once the unit commits.
type statusChange struct {
	to     domain.CampaignStatus
	reason domain.Reason
}

// TrackInteraction runs the tracking algorithm for req. Expected rejections
// (ineligible campaign, duplicate visitor, insufficient wallet, exhausted
// budget) come back as an untracked result with a nil error.
func (u *LedgerUseCase) TrackInteraction(ctx context.Context, req domain.TrackRequest) (domain.TrackResult, error) {
	if !req.EventType.Valid() {
		return domain.TrackResult{}, &domain.ValidationError{Field: "event_type", Reason: "unknown event type " + string(req.EventType)}
	}
	start := time.Now()
	now := u.now().UTC()

	var (
		result domain.TrackResult
		event  *domain.InteractionEvent
		change *statusChange
	)
	err := u.store.WithinTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		st, err := tx.LockCampaign(ctx, req.CampaignID)
		if err != nil {
			return err
		}
		if st == nil {
			return &domain.NotFoundError{Resource: "campaign", ID: req.CampaignID.String()}
		}
		if !st.Eligible(now) {
			result = domain.Rejected(domain.ReasonCampaignNotEligible)
			return nil
		}

		var visitorHash *string
		if req.VisitorID != nil {
			if hash, ok := domain.HashVisitor(*req.VisitorID); ok {
				marker := domain.NewVisitorMarker(st.OrganizationID, req.EventType, st.ID, hash, now)
				inserted, err := tx.InsertVisitorMarker(ctx, marker)
				if err != nil {
					return err
				}
				if !inserted {
					result = domain.Rejected(domain.ReasonDuplicatedVisitorEvent)
					return nil
				}
				visitorHash = &hash
			}
		}

		ev := &domain.InteractionEvent{
			ID:             uuid.New(),
			CampaignID:     st.ID,
			OrganizationID: st.OrganizationID,
			EventType:      req.EventType,
			VisitorHash:    visitorHash,
			PlacementKey:   req.PlacementKey,
			OccurredAt:     now,
		}

		if req.EventType == domain.EventImpression {
			impressions, err := tx.IncrementImpressions(ctx, st.ID)
			if err != nil {
				return err
			}
			if err = tx.AppendEvent(ctx, ev); err != nil {
				return err
			}
			result = domain.TrackResult{Tracked: true, EventID: &ev.ID, Impressions: &impressions}
			event = ev
			return nil
		}

		result, change, err = u.charge(ctx, tx, st, ev)
		if err != nil {
			return err
		}
		if result.Tracked {
			event = ev
		}
		return nil
	})
	if err != nil {
		u.observe(req.EventType, "error", start)
		err = storageErr("track interaction", err)
		var se *domain.StorageError
		if errors.As(err, &se) {
			u.logger.Error("track interaction failed",
				slog.String("campaign_id", req.CampaignID.String()),
				slog.String("event_type", string(req.EventType)),
				slog.Any("error", err))
		}
		return domain.TrackResult{}, err
	}

	if change != nil {
		u.logger.Info("campaign status changed by ledger",
			slog.String("campaign_id", req.CampaignID.String()),
			slog.String("status", string(change.to)),
			slog.String("reason", string(change.reason)))
	}
	if event != nil {
		u.publish(ctx, *event)
	}
	u.observe(req.EventType, result.Outcome(), start)
	return result, nil
}

// charge performs the billing branch of a click. The wallet is debited with
// a conditional update; a lost race pauses the campaign instead of retrying.
func (u *LedgerUseCase) charge(ctx context.Context, tx port.LedgerTx, st *domain.CampaignState, ev *domain.InteractionEvent) (domain.TrackResult, *statusChange, error) {
	bid := st.BidAmount

	balance, err := tx.WalletBalance(ctx, st.OrganizationID)
	if err != nil {
		return domain.TrackResult{}, nil, err
	}
	if balance.LessThan(bid) {
		return u.reject(ctx, tx, st.ID, domain.StatusPaused, domain.ReasonWalletInsufficientFunds)
	}

	nextSpent := st.SpentAmount.Add(bid)
	if nextSpent.GreaterThan(st.TotalBudget) {
		return u.reject(ctx, tx, st.ID, domain.StatusEnded, domain.ReasonBudgetExhausted)
	}

	debited, err := tx.DebitWallet(ctx, st.OrganizationID, bid)
	if err != nil {
		return domain.TrackResult{}, nil, err
	}
	if !debited {
		return u.reject(ctx, tx, st.ID, domain.StatusPaused, domain.ReasonWalletInsufficientFunds)
	}

	status := st.Status
	var change *statusChange
	if nextSpent.GreaterThanOrEqual(st.TotalBudget) {
		status = domain.StatusEnded
		change = &statusChange{to: domain.StatusEnded, reason: domain.ReasonBudgetExhausted}
	}
	spent, clicks, err := tx.RecordClick(ctx, st.ID, bid, status)
	if err != nil {
		return domain.TrackResult{}, nil, err
	}
	ev.CostAmount = &bid
	if err = tx.AppendEvent(ctx, ev); err != nil {
		return domain.TrackResult{}, nil, err
	}

	remaining := st.TotalBudget.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return domain.TrackResult{
		Tracked:         true,
		EventID:         &ev.ID,
		ChargedAmount:   &bid,
		SpentAmount:     &spent,
		RemainingBudget: &remaining,
		Clicks:          &clicks,
	}, change, nil
}

func (u *LedgerUseCase) reject(ctx context.Context, tx port.LedgerTx, campaignID uuid.UUID, status domain.CampaignStatus, reason domain.Reason) (domain.TrackResult, *statusChange, error) {
	if err := tx.SetCampaignStatus(ctx, campaignID, status); err != nil {
		return domain.TrackResult{}, nil, err
	}
	return domain.Rejected(reason), &statusChange{to: status, reason: reason}, nil
}

func (u *LedgerUseCase) publish(ctx context.Context, ev domain.InteractionEvent) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, ev); err != nil {
		u.logger.Warn("publish interaction event failed",
			slog.String("event_id", ev.ID.String()),
			slog.Any("error", err))
	}
}

func (u *LedgerUseCase) observe(eventType domain.EventType, outcome string, start time.Time) {
	if u.metrics == nil {
		return
	}
	u.metrics.ObserveTrack(eventType, outcome, time.Since(start))
}

// GetStats returns aggregated stats for campaigns in a period. Callers
// other than global admins only see their own organization's events.
func (u *LedgerUseCase) GetStats(ctx context.Context, actor domain.Actor, req port.StatsReq) (*port.StatsResp, error) {
	if !actor.IsAdmin() {
		if actor.OrganizationID == uuid.Nil {
			return nil, &domain.PermissionError{Action: "read stats"}
		}
		req.OrganizationID = &actor.OrganizationID
	}
	if !req.To.After(req.From) {
		return nil, &domain.ValidationError{Field: "to", Reason: "must be after from"}
	}
	resp, err := u.stats.GetStats(ctx, req)
	if err != nil {
		return nil, storageErr("get stats", err)
	}
	return resp, nil
}
