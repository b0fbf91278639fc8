package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adledger/internal/core/domain"
	"adledger/internal/core/port"
)

// CampaignUseCase validates and persists campaigns and performs explicit
// status changes.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	store  port.LedgerStore
	logger *slog.Logger
	now    func() time.Time
}

// NewCampaignUseCase creates the campaign manager. Status updates run as
// units of work on store so they serialize with the ledger.
func NewCampaignUseCase(repo port.CampaignRepository, store port.LedgerStore, logger *slog.Logger) *CampaignUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignUseCase{repo: repo, store: store, logger: logger, now: time.Now}
}

// CreateCampaign validates in and creates a campaign owned by orgID. The
// business must belong to orgID and be verified; targeting references must
// resolve.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, orgID uuid.UUID, actor domain.Actor, in domain.NewCampaign) (*domain.Campaign, error) {
	if err := domain.AuthorizeCampaignManagement(actor, orgID); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	biz, err := u.repo.GetBusiness(ctx, in.BusinessID)
	if err != nil {
		return nil, storageErr("get business", err)
	}
	if biz == nil || biz.OrganizationID != orgID {
		return nil, &domain.NotFoundError{Resource: "business", ID: in.BusinessID.String()}
	}
	if !biz.Verified {
		return nil, &domain.ValidationError{Field: "business_id", Reason: "business is not verified"}
	}
	if err = u.checkTargeting(ctx, in.Targeting); err != nil {
		return nil, err
	}

	now := u.now().UTC()
	status := in.Status
	if status == "" {
		status = domain.StatusDraft
	}
	c := &domain.Campaign{
		ID:             uuid.New(),
		OrganizationID: orgID,
		BusinessID:     biz.ID,
		Name:           strings.TrimSpace(in.Name),
		Status:         status,
		StartsAt:       in.StartsAt.UTC(),
		EndsAt:         in.EndsAt.UTC(),
		DailyBudget:    in.DailyBudget,
		TotalBudget:    in.TotalBudget,
		BidAmount:      in.BidAmount,
		SpentAmount:    decimal.Zero,
		Targeting:      in.Targeting,
		CreatedBy:      actor.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if status == domain.StatusActive {
		if err = domain.CheckActivation(c, biz.Verified, now); err != nil {
			return nil, err
		}
	}
	if err = u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, storageErr("create campaign", err)
	}
	u.logger.Info("campaign created",
		slog.String("campaign_id", c.ID.String()),
		slog.String("organization_id", orgID.String()),
		slog.String("status", string(c.Status)))
	return c, nil
}

func (u *CampaignUseCase) checkTargeting(ctx context.Context, t domain.Targeting) error {
	if t.ProvinceID != nil {
		ok, err := u.repo.ProvinceExists(ctx, *t.ProvinceID)
		if err != nil {
			return storageErr("get province", err)
		}
		if !ok {
			return &domain.NotFoundError{Resource: "province", ID: strconv.FormatInt(*t.ProvinceID, 10)}
		}
	}
	if t.CategoryID != nil {
		ok, err := u.repo.CategoryExists(ctx, *t.CategoryID)
		if err != nil {
			return storageErr("get category", err)
		}
		if !ok {
			return &domain.NotFoundError{Resource: "category", ID: strconv.FormatInt(*t.CategoryID, 10)}
		}
	}
	return nil
}

// UpdateStatus applies an explicit status change. Moving into ACTIVE
// re-validates the activation preconditions against the locked row, so a
// campaign ended by the ledger stays ended until its budget or schedule
// has been corrected.
func (u *CampaignUseCase) UpdateStatus(ctx context.Context, campaignID uuid.UUID, actor domain.Actor, status domain.CampaignStatus) (*domain.Campaign, error) {
	now := u.now().UTC()
	var updated domain.Campaign
	err := u.store.WithinTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		st, err := tx.LockCampaign(ctx, campaignID)
		if err != nil {
			return err
		}
		if st == nil || (!actor.IsAdmin() && st.OrganizationID != actor.OrganizationID) {
			return &domain.NotFoundError{Resource: "campaign", ID: campaignID.String()}
		}
		if err = domain.AuthorizeCampaignManagement(actor, st.OrganizationID); err != nil {
			return err
		}
		updated = st.Campaign
		if st.Status == status {
			return nil
		}
		if err = domain.ValidateTransition(st, status, now); err != nil {
			return err
		}
		if err = tx.SetCampaignStatus(ctx, campaignID, status); err != nil {
			return err
		}
		updated.Status = status
		updated.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, storageErr("update campaign status", err)
	}
	u.logger.Info("campaign status updated",
		slog.String("campaign_id", campaignID.String()),
		slog.String("status", string(updated.Status)))
	return &updated, nil
}

// GetCampaign returns a campaign of the actor's organization.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, campaignID uuid.UUID, actor domain.Actor) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, storageErr("get campaign", err)
	}
	if c == nil || (!actor.IsAdmin() && c.OrganizationID != actor.OrganizationID) {
		return nil, &domain.NotFoundError{Resource: "campaign", ID: campaignID.String()}
	}
	return c, nil
}

// ListCampaigns returns a filtered page of an organization's campaigns.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, orgID uuid.UUID, actor domain.Actor, filter domain.CampaignFilter, page domain.Page) (*domain.CampaignPage, error) {
	if !actor.IsAdmin() && actor.OrganizationID != orgID {
		return nil, &domain.PermissionError{Action: "list campaigns"}
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, &domain.ValidationError{Field: "status", Reason: "unknown status " + string(*filter.Status)}
	}
	res, err := u.repo.ListCampaigns(ctx, orgID, filter, page.Normalize())
	if err != nil {
		return nil, storageErr("list campaigns", err)
	}
	return res, nil
}
