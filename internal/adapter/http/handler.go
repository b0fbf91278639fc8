package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adledger/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it decodes requests, calls the use cases and maps their results and
// errors to JSON responses and status codes.
type Handler struct {
	campaigns  port.CampaignUseCase
	placements port.PlacementUseCase
	ledger     port.LedgerUseCase
	logger     *slog.Logger
	router     chi.Router
}

// NewHandler creates a handler with all routes configured. metrics, when
// not nil, is mounted at /metrics.
func NewHandler(campaigns port.CampaignUseCase, placements port.PlacementUseCase, ledger port.LedgerUseCase, metrics http.Handler, logger *slog.Logger) *Handler {
	h := &Handler{campaigns: campaigns, placements: placements, ledger: ledger, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/placements", h.handlePlacements)

		r.Route("/organizations/{orgID}/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
		})
		r.Route("/campaigns/{campaignID}", func(r chi.Router) {
			r.Get("/", h.handleGetCampaign)
			r.Patch("/status", h.handleUpdateStatus)
			r.Post("/impressions", h.handleTrackImpression)
			r.Post("/clicks", h.handleTrackClick)
		})

		r.Get("/stats/overview", h.handleStatsOverview)
	})
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
