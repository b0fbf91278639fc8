package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adledger/internal/core/domain"
)

// Identity headers set by the gateway after authentication and
// organization resolution.
const (
	headerUserID     = "X-User-ID"
	headerOrgID      = "X-Organization-ID"
	headerOrgRole    = "X-Org-Role"
	headerGlobalRole = "X-Global-Role"
)

var errUnauthenticated = errors.New("missing or invalid identity headers")

// actorFromRequest builds the caller identity from gateway headers.
func actorFromRequest(r *http.Request) (domain.Actor, error) {
	userID, err := uuid.Parse(r.Header.Get(headerUserID))
	if err != nil {
		return domain.Actor{}, errUnauthenticated
	}
	actor := domain.Actor{
		UserID:     userID,
		GlobalRole: domain.GlobalRole(r.Header.Get(headerGlobalRole)),
		OrgRole:    domain.OrgRole(r.Header.Get(headerOrgRole)),
	}
	if raw := r.Header.Get(headerOrgID); raw != "" {
		if actor.OrganizationID, err = uuid.Parse(raw); err != nil {
			return domain.Actor{}, errUnauthenticated
		}
	}
	return actor, nil
}

func uuidParam(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}

func optionalInt64(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors to status codes. Storage and unexpected
// errors are logged and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	var (
		ve *domain.ValidationError
		pe *domain.PermissionError
		ne *domain.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		http.Error(w, ve.Error(), http.StatusBadRequest)
	case errors.As(err, &pe):
		http.Error(w, pe.Error(), http.StatusForbidden)
	case errors.As(err, &ne):
		http.Error(w, ne.Error(), http.StatusNotFound)
	case errors.Is(err, errUnauthenticated):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
