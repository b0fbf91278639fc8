// Package memory is an in-process campaign store. It gives the same
// atomicity guarantees as the PostgreSQL adapter by running every unit of
// work under one exclusive lock and undoing its writes when the unit fails.
package memory

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adledger/internal/core/domain"
	"adledger/internal/core/port"
)

type markerKey struct {
	org    uuid.UUID
	metric string
	start  int64
	end    int64
}

// Store implements the ledger, campaign, placement and stats ports.
type Store struct {
	mu         sync.RWMutex
	orgs       map[uuid.UUID]*domain.Organization
	businesses map[uuid.UUID]*domain.Business
	provinces  map[int64]string
	categories map[int64]string
	campaigns  map[uuid.UUID]*domain.Campaign
	markers    map[markerKey]struct{}
	events     []domain.InteractionEvent
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		orgs:       make(map[uuid.UUID]*domain.Organization),
		businesses: make(map[uuid.UUID]*domain.Business),
		provinces:  make(map[int64]string),
		categories: make(map[int64]string),
		campaigns:  make(map[uuid.UUID]*domain.Campaign),
		markers:    make(map[markerKey]struct{}),
	}
}

var (
	_ port.LedgerStore         = (*Store)(nil)
	_ port.CampaignRepository  = (*Store)(nil)
	_ port.PlacementRepository = (*Store)(nil)
	_ port.StatsRepository     = (*Store)(nil)
)

// AddOrganization stores or replaces an organization.
func (s *Store) AddOrganization(o domain.Organization) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orgs[o.ID] = &o
}

// AddBusiness stores or replaces a business.
func (s *Store) AddBusiness(b domain.Business) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.businesses[b.ID] = &b
}

// AddProvince registers a targeting province.
func (s *Store) AddProvince(id int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.provinces[id] = name
}

// AddCategory registers a targeting category.
func (s *Store) AddCategory(id int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[id] = name
}

// PutCampaign stores or replaces a campaign without validation.
func (s *Store) PutCampaign(c domain.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns[c.ID] = &c
}

// Organization returns a copy of an organization.
func (s *Store) Organization(id uuid.UUID) (domain.Organization, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orgs[id]
	if !ok {
		return domain.Organization{}, false
	}
	return *o, true
}

// Campaign returns a copy of a campaign.
func (s *Store) Campaign(id uuid.UUID) (domain.Campaign, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return domain.Campaign{}, false
	}
	return *c, true
}

// Events returns a copy of the event log.
func (s *Store) Events() []domain.InteractionEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.InteractionEvent(nil), s.events...)
}

// WithinTx runs fn holding the store exclusively. Writes are undone in
// reverse order when fn fails.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx port.LedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{s: s}
	if err := fn(ctx, tx); err != nil {
		for i := len(tx.undo) - 1; i >= 0; i-- {
			tx.undo[i]()
		}
		return err
	}
	return nil
}

type memTx struct {
	s    *Store
	undo []func()
}

func (t *memTx) campaign(id uuid.UUID) (*domain.Campaign, error) {
	c, ok := t.s.campaigns[id]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "campaign", ID: id.String()}
	}
	return c, nil
}

func (t *memTx) snapshotCampaign(c *domain.Campaign) {
	prev := *c
	t.undo = append(t.undo, func() { *c = prev })
}

func (t *memTx) LockCampaign(_ context.Context, id uuid.UUID) (*domain.CampaignState, error) {
	c, ok := t.s.campaigns[id]
	if !ok {
		return nil, nil
	}
	st := &domain.CampaignState{Campaign: *c}
	if b, ok := t.s.businesses[c.BusinessID]; ok {
		st.BusinessVerified = b.Verified
	}
	if o, ok := t.s.orgs[c.OrganizationID]; ok {
		st.WalletBalance = o.WalletBalance
	}
	return st, nil
}

func (t *memTx) WalletBalance(_ context.Context, orgID uuid.UUID) (decimal.Decimal, error) {
	o, ok := t.s.orgs[orgID]
	if !ok {
		return decimal.Zero, &domain.NotFoundError{Resource: "organization", ID: orgID.String()}
	}
	return o.WalletBalance, nil
}

func (t *memTx) InsertVisitorMarker(_ context.Context, m domain.VisitorMarker) (bool, error) {
	key := markerKey{
		org:    m.OrganizationID,
		metric: m.MetricKey,
		start:  m.PeriodStart.UnixNano(),
		end:    m.PeriodEnd.UnixNano(),
	}
	if _, exists := t.s.markers[key]; exists {
		return false, nil
	}
	t.s.markers[key] = struct{}{}
	t.undo = append(t.undo, func() { delete(t.s.markers, key) })
	return true, nil
}

func (t *memTx) IncrementImpressions(_ context.Context, campaignID uuid.UUID) (int64, error) {
	c, err := t.campaign(campaignID)
	if err != nil {
		return 0, err
	}
	t.snapshotCampaign(c)
	c.Impressions++
	return c.Impressions, nil
}

func (t *memTx) DebitWallet(_ context.Context, orgID uuid.UUID, amount decimal.Decimal) (bool, error) {
	o, ok := t.s.orgs[orgID]
	if !ok || o.WalletBalance.LessThan(amount) {
		return false, nil
	}
	prev := o.WalletBalance
	o.WalletBalance = o.WalletBalance.Sub(amount)
	t.undo = append(t.undo, func() { o.WalletBalance = prev })
	return true, nil
}

func (t *memTx) RecordClick(_ context.Context, campaignID uuid.UUID, amount decimal.Decimal, status domain.CampaignStatus) (decimal.Decimal, int64, error) {
	c, err := t.campaign(campaignID)
	if err != nil {
		return decimal.Zero, 0, err
	}
	next := c.SpentAmount.Add(amount)
	if next.GreaterThan(c.TotalBudget) {
		// mirrors campaigns_spent_within_total
		return decimal.Zero, 0, &domain.ValidationError{Field: "spent_amount", Reason: "exceeds total_budget"}
	}
	t.snapshotCampaign(c)
	c.Clicks++
	c.SpentAmount = next
	c.Status = status
	c.UpdatedAt = time.Now().UTC()
	return c.SpentAmount, c.Clicks, nil
}

func (t *memTx) SetCampaignStatus(_ context.Context, campaignID uuid.UUID, status domain.CampaignStatus) error {
	c, err := t.campaign(campaignID)
	if err != nil {
		return err
	}
	t.snapshotCampaign(c)
	c.Status = status
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (t *memTx) AppendEvent(_ context.Context, ev *domain.InteractionEvent) error {
	n := len(t.s.events)
	t.s.events = append(t.s.events, *ev)
	t.undo = append(t.undo, func() { t.s.events = t.s.events[:n] })
	return nil
}

// GetBusiness returns a business by id.
func (s *Store) GetBusiness(_ context.Context, id uuid.UUID) (*domain.Business, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.businesses[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

// ProvinceExists reports whether the province id resolves.
func (s *Store) ProvinceExists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.provinces[id]
	return ok, nil
}

// CategoryExists reports whether the category id resolves.
func (s *Store) CategoryExists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.categories[id]
	return ok, nil
}

// CreateCampaign inserts a campaign.
func (s *Store) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.campaigns[c.ID]; ok {
		return &domain.ValidationError{Field: "id", Reason: "campaign already exists"}
	}
	cp := *c
	s.campaigns[c.ID] = &cp
	return nil
}

// GetCampaign returns a campaign by id.
func (s *Store) GetCampaign(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, ok := s.Campaign(id)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// ListCampaigns returns one page of an organization's campaigns, newest first.
func (s *Store) ListCampaigns(_ context.Context, orgID uuid.UUID, filter domain.CampaignFilter, page domain.Page) (*domain.CampaignPage, error) {
	s.mu.RLock()
	matched := make([]domain.Campaign, 0)
	for _, c := range s.campaigns {
		if c.OrganizationID != orgID {
			continue
		}
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		if filter.BusinessID != nil && c.BusinessID != *filter.BusinessID {
			continue
		}
		matched = append(matched, *c)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return bytes.Compare(matched[i].ID[:], matched[j].ID[:]) < 0
	})

	res := &domain.CampaignPage{Items: []domain.Campaign{}, Total: int64(len(matched)), Limit: page.Limit, Offset: page.Offset}
	if page.Offset < len(matched) {
		end := min(page.Offset+page.Limit, len(matched))
		res.Items = matched[page.Offset:end]
	}
	return res, nil
}

// ListPlacementCandidates applies the selection predicate and ordering of
// the auction query.
func (s *Store) ListPlacementCandidates(_ context.Context, pc domain.PlacementContext, now time.Time, fetch int) ([]domain.PlacementCandidate, error) {
	s.mu.RLock()
	candidates := make([]domain.PlacementCandidate, 0)
	for _, c := range s.campaigns {
		if c.Status != domain.StatusActive || now.Before(c.StartsAt) || !now.Before(c.EndsAt) {
			continue
		}
		b, ok := s.businesses[c.BusinessID]
		if !ok || !b.Verified {
			continue
		}
		o, ok := s.orgs[c.OrganizationID]
		if !ok || !o.WalletBalance.IsPositive() {
			continue
		}
		if !c.Targeting.Matches(pc.ProvinceID, pc.CategoryID) {
			continue
		}
		candidates = append(candidates, domain.PlacementCandidate{
			Campaign:        *c,
			BusinessName:    b.Name,
			ReputationScore: b.ReputationScore,
		})
	}
	s.mu.RUnlock()

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if cmp := a.Campaign.BidAmount.Cmp(b.Campaign.BidAmount); cmp != 0 {
			return cmp > 0
		}
		if cmp := a.ReputationScore.Cmp(b.ReputationScore); cmp != 0 {
			return cmp > 0
		}
		return a.Campaign.UpdatedAt.After(b.Campaign.UpdatedAt)
	})
	if len(candidates) > fetch {
		candidates = candidates[:fetch]
	}
	return candidates, nil
}

// GetStats aggregates events in [From, To).
func (s *Store) GetStats(_ context.Context, req port.StatsReq) (*port.StatsResp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resp := &port.StatsResp{Cost: decimal.Zero}
	for _, ev := range s.events {
		if ev.OccurredAt.Before(req.From) || !ev.OccurredAt.Before(req.To) {
			continue
		}
		if req.OrganizationID != nil && ev.OrganizationID != *req.OrganizationID {
			continue
		}
		if req.CampaignID != nil && ev.CampaignID != *req.CampaignID {
			continue
		}
		switch ev.EventType {
		case domain.EventImpression:
			resp.Impressions++
		case domain.EventClick:
			resp.Clicks++
		}
		if ev.CostAmount != nil {
			resp.Cost = resp.Cost.Add(*ev.CostAmount)
		}
	}
	return resp, nil
}
