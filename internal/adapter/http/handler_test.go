package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
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

type testHandler struct {
	campaigns  *mocks.MockCampaignUseCase
	placements *mocks.MockPlacementUseCase
	ledger     *mocks.MockLedgerUseCase
	router     http.Handler
}

func newTestHandler(t *testing.T) *testHandler {
	th := &testHandler{
		campaigns:  mocks.NewMockCampaignUseCase(t),
		placements: mocks.NewMockPlacementUseCase(t),
		ledger:     mocks.NewMockLedgerUseCase(t),
	}
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "adledger_up 1\n")
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	th.router = NewHandler(th.campaigns, th.placements, th.ledger, metrics, logger).Router()
	return th
}

func (th *testHandler) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	th.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestTrackClick(t *testing.T) {
	th := newTestHandler(t)
	id := uuid.New()
	charged := decimal.RequireFromString("10")
	clicks := int64(1)

	th.ledger.EXPECT().
		TrackClick(mock.Anything, id, mock.MatchedBy(func(v *string) bool { return v != nil && *v == "visitor-1" }), (*string)(nil)).
		Return(domain.TrackResult{Tracked: true, ChargedAmount: &charged, Clicks: &clicks}, nil)

	rec := th.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/clicks", `{"visitor_id":"visitor-1"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["tracked"])
	assert.Equal(t, "10", body["charged_amount"])
	assert.NotContains(t, body, "reason")
}

func TestTrackImpression_EmptyBodyAndRejection(t *testing.T) {
	th := newTestHandler(t)
	id := uuid.New()

	th.ledger.EXPECT().
		TrackImpression(mock.Anything, id, (*string)(nil), (*string)(nil)).
		Return(domain.Rejected(domain.ReasonCampaignNotEligible), nil)

	rec := th.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/impressions", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["tracked"])
	assert.Equal(t, "CAMPAIGN_NOT_ELIGIBLE", body["reason"])
}

func TestTrack_Errors(t *testing.T) {
	th := newTestHandler(t)
	missing, broken := uuid.New(), uuid.New()

	th.ledger.EXPECT().
		TrackClick(mock.Anything, missing, mock.Anything, mock.Anything).
		Return(domain.TrackResult{}, &domain.NotFoundError{Resource: "campaign", ID: missing.String()})
	th.ledger.EXPECT().
		TrackClick(mock.Anything, broken, mock.Anything, mock.Anything).
		Return(domain.TrackResult{}, &domain.StorageError{Op: "track interaction", Err: errors.New("conn reset")})

	tests := []struct {
		name   string
		target string
		body   string
		want   int
	}{
		{"bad id", "/api/v1/campaigns/nope/clicks", "", http.StatusBadRequest},
		{"bad json", "/api/v1/campaigns/" + missing.String() + "/clicks", "{", http.StatusBadRequest},
		{"not found", "/api/v1/campaigns/" + missing.String() + "/clicks", "", http.StatusNotFound},
		{"storage", "/api/v1/campaigns/" + broken.String() + "/clicks", "", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := th.do(http.MethodPost, tt.target, tt.body, nil)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCreateCampaign(t *testing.T) {
	th := newTestHandler(t)
	orgID, userID, bizID := uuid.New(), uuid.New(), uuid.New()
	headers := map[string]string{
		headerUserID:  userID.String(),
		headerOrgID:   orgID.String(),
		headerOrgRole: string(domain.OrgRoleManager),
	}
	target := "/api/v1/organizations/" + orgID.String() + "/campaigns"
	body := `{"business_id":"` + bizID.String() + `","name":"Spring","starts_at":"2026-03-01T00:00:00Z",` +
		`"ends_at":"2026-04-01T00:00:00Z","daily_budget":"20","total_budget":"100","bid_amount":"0.50"}`

	th.campaigns.EXPECT().
		CreateCampaign(mock.Anything, orgID,
			domain.Actor{UserID: userID, OrganizationID: orgID, OrgRole: domain.OrgRoleManager},
			mock.MatchedBy(func(in domain.NewCampaign) bool {
				return in.BusinessID == bizID && in.BidAmount.Equal(decimal.RequireFromString("0.5"))
			})).
		Return(&domain.Campaign{ID: uuid.New(), Name: "Spring", Status: domain.StatusDraft}, nil)

	rec := th.do(http.MethodPost, target, body, headers)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "DRAFT", decodeBody(t, rec)["status"])

	rec = th.do(http.MethodPost, target, body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateStatus_Forbidden(t *testing.T) {
	th := newTestHandler(t)
	id, userID := uuid.New(), uuid.New()

	th.campaigns.EXPECT().
		UpdateStatus(mock.Anything, id, mock.Anything, domain.StatusPaused).
		Return(nil, &domain.PermissionError{Action: "manage campaigns"})

	rec := th.do(http.MethodPatch, "/api/v1/campaigns/"+id.String()+"/status", `{"status":"PAUSED"}`,
		map[string]string{headerUserID: userID.String(), headerOrgRole: string(domain.OrgRoleStaff)})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListCampaigns_Query(t *testing.T) {
	th := newTestHandler(t)
	orgID, userID := uuid.New(), uuid.New()

	th.campaigns.EXPECT().
		ListCampaigns(mock.Anything, orgID, mock.Anything,
			mock.MatchedBy(func(f domain.CampaignFilter) bool {
				return f.Status != nil && *f.Status == domain.StatusActive && f.BusinessID == nil
			}),
			domain.Page{Limit: 5, Offset: 10}).
		Return(&domain.CampaignPage{Items: []domain.Campaign{}, Total: 0, Limit: 5, Offset: 10}, nil)

	headers := map[string]string{headerUserID: userID.String(), headerOrgID: orgID.String()}
	base := "/api/v1/organizations/" + orgID.String() + "/campaigns"

	rec := th.do(http.MethodGet, base+"?status=ACTIVE&limit=5&offset=10", "", headers)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(5), decodeBody(t, rec)["limit"])

	rec = th.do(http.MethodGet, base+"?limit=many", "", headers)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlacements(t *testing.T) {
	th := newTestHandler(t)
	campaignID := uuid.New()

	th.placements.EXPECT().
		GetPlacements(mock.Anything, mock.MatchedBy(func(pc domain.PlacementContext) bool {
			return pc.ProvinceID != nil && *pc.ProvinceID == 1 && pc.CategoryID == nil && pc.Limit == 3
		})).
		Return([]domain.RankedPlacement{{Position: 1, CampaignID: campaignID}}, nil)

	rec := th.do(http.MethodGet, "/api/v1/placements?province_id=1&limit=3", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	placements, ok := decodeBody(t, rec)["placements"].([]any)
	require.True(t, ok)
	require.Len(t, placements, 1)
	assert.Equal(t, campaignID.String(), placements[0].(map[string]any)["campaign_id"])

	rec = th.do(http.MethodGet, "/api/v1/placements?category_id=x", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsOverview(t *testing.T) {
	th := newTestHandler(t)
	userID, orgID := uuid.New(), uuid.New()
	headers := map[string]string{headerUserID: userID.String(), headerOrgID: orgID.String()}

	th.ledger.EXPECT().
		GetStats(mock.Anything,
			mock.MatchedBy(func(a domain.Actor) bool { return a.UserID == userID && a.OrganizationID == orgID }),
			mock.MatchedBy(func(req port.StatsReq) bool {
				return req.From.Equal(req.To.Add(-2*time.Hour)) && req.CampaignID == nil
			})).
		Return(&port.StatsResp{Impressions: 4, Clicks: 2, Cost: decimal.RequireFromString("1.50")}, nil)

	rec := th.do(http.MethodGet, "/api/v1/stats/overview?from=2026-03-14T10:00:00Z&to=2026-03-14T12:00:00Z", "", headers)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["clicks"])

	rec = th.do(http.MethodGet, "/api/v1/stats/overview?from=yesterday", "", headers)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = th.do(http.MethodGet, "/api/v1/stats/overview?organization_id=nope", "", headers)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsOverview_RequiresIdentity(t *testing.T) {
	th := newTestHandler(t)
	rec := th.do(http.MethodGet, "/api/v1/stats/overview", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMetricsMounted(t *testing.T) {
	th := newTestHandler(t)
	rec := th.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "adledger_up")
}
