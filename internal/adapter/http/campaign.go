package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"adledger/internal/core/domain"
)

// handleCreateCampaign creates a campaign in the organization given by the
// {orgID} path parameter. It responds 201 with the campaign.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.writeError(w, "create campaign", err)
		return
	}
	orgID, ok := uuidParam(r, "orgID")
	if !ok {
		http.Error(w, "invalid organization id", http.StatusBadRequest)
		return
	}
	var in domain.NewCampaign
	if err = json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.campaigns.CreateCampaign(r.Context(), orgID, actor, in)
	if err != nil {
		h.writeError(w, "create campaign", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

// handleListCampaigns lists an organization's campaigns. Optional query
// parameters: status, business_id, limit, offset.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.writeError(w, "list campaigns", err)
		return
	}
	orgID, ok := uuidParam(r, "orgID")
	if !ok {
		http.Error(w, "invalid organization id", http.StatusBadRequest)
		return
	}

	var (
		q      = r.URL.Query()
		filter domain.CampaignFilter
		page   domain.Page
	)
	if s := q.Get("status"); s != "" {
		status := domain.CampaignStatus(s)
		filter.Status = &status
	}
	if s := q.Get("business_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid business_id", http.StatusBadRequest)
			return
		}
		filter.BusinessID = &id
	}
	if s := q.Get("limit"); s != "" {
		if page.Limit, err = strconv.Atoi(s); err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}
	if s := q.Get("offset"); s != "" {
		if page.Offset, err = strconv.Atoi(s); err != nil {
			http.Error(w, "invalid offset", http.StatusBadRequest)
			return
		}
	}

	res, err := h.campaigns.ListCampaigns(r.Context(), orgID, actor, filter, page)
	if err != nil {
		h.writeError(w, "list campaigns", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// handleGetCampaign returns one campaign of the caller's organization.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.writeError(w, "get campaign", err)
		return
	}
	id, ok := uuidParam(r, "campaignID")
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	c, err := h.campaigns.GetCampaign(r.Context(), id, actor)
	if err != nil {
		h.writeError(w, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

type statusRequest struct {
	Status domain.CampaignStatus `json:"status"`
}

// handleUpdateStatus applies an explicit status change.
func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.writeError(w, "update status", err)
		return
	}
	id, ok := uuidParam(r, "campaignID")
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req statusRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.campaigns.UpdateStatus(r.Context(), id, actor, req.Status)
	if err != nil {
		h.writeError(w, "update status", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}
