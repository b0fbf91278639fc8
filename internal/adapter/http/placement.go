package httpadapter

import (
	"net/http"
	"strconv"

	"adledger/internal/core/domain"
)

// handlePlacements returns ranked placements. Optional query parameters:
// province_id, category_id and limit. An empty list is a normal 200.
func (h *Handler) handlePlacements(w http.ResponseWriter, r *http.Request) {
	var (
		q   = r.URL.Query()
		pc  domain.PlacementContext
		err error
	)
	if pc.ProvinceID, err = optionalInt64(q.Get("province_id")); err != nil {
		http.Error(w, "invalid province_id", http.StatusBadRequest)
		return
	}
	if pc.CategoryID, err = optionalInt64(q.Get("category_id")); err != nil {
		http.Error(w, "invalid category_id", http.StatusBadRequest)
		return
	}
	if s := q.Get("limit"); s != "" {
		if pc.Limit, err = strconv.Atoi(s); err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}

	placements, err := h.placements.GetPlacements(r.Context(), pc)
	if err != nil {
		h.writeError(w, "get placements", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"placements": placements})
}
