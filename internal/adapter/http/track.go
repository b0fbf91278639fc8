package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"adledger/internal/core/domain"
)

type trackRequest struct {
	VisitorID    *string `json:"visitor_id"`
	PlacementKey *string `json:"placement_key"`
}

type trackFunc func(ctx context.Context, campaignID uuid.UUID, visitorID, placementKey *string) (domain.TrackResult, error)

// handleTrackImpression records an impression. Untracked outcomes are
// normal 200 responses carrying a reason.
func (h *Handler) handleTrackImpression(w http.ResponseWriter, r *http.Request) {
	h.handleTrack(w, r, "track impression", h.ledger.TrackImpression)
}

// handleTrackClick records a click and charges the campaign.
func (h *Handler) handleTrackClick(w http.ResponseWriter, r *http.Request) {
	h.handleTrack(w, r, "track click", h.ledger.TrackClick)
}

func (h *Handler) handleTrack(w http.ResponseWriter, r *http.Request, op string, track trackFunc) {
	id, ok := uuidParam(r, "campaignID")
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	res, err := track(r.Context(), id, req.VisitorID, req.PlacementKey)
	if err != nil {
		h.writeError(w, op, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
