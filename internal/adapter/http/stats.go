package httpadapter

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"adledger/internal/core/port"
)

// handleStatsOverview returns aggregated statistics for the caller's
// organization over a specified period. It accepts optional `from`, `to`
// (RFC3339 timestamps) and `campaign_id` query parameters; global admins may
// also narrow by `organization_id`. If no period is provided, it defaults to
// the last 24 hours. Invalid parameters result in HTTP 400.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.writeError(w, "stats", err)
		return
	}

	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.From = time.Now().Add(-24 * time.Hour)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.To = time.Now()
	}

	if cid := q.Get("campaign_id"); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			http.Error(w, "invalid campaign_id", http.StatusBadRequest)
			return
		}
		req.CampaignID = &id
	}

	if oid := q.Get("organization_id"); oid != "" {
		id, err := uuid.Parse(oid)
		if err != nil {
			http.Error(w, "invalid organization_id", http.StatusBadRequest)
			return
		}
		req.OrganizationID = &id
	}

	stats, err := h.ledger.GetStats(r.Context(), actor, req)
	if err != nil {
		h.writeError(w, "stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
