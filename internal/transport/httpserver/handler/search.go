package handler

import (
	"errors"
	"net/http"
	"strings"

	searchdomain "github.com/playershyan/iSafe-sub001/internal/domain/search"
)

// SearchUnified serves GET /api/search?type=name|nic&q=... . A datastore
// outage comes back as search_failed, never as an empty 200, so the UI can
// tell "system down" apart from "no results".
func (h *Handlers) SearchUnified(w http.ResponseWriter, r *http.Request) {
	searchType := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("type")))
	query := r.URL.Query().Get("q")

	var (
		results []searchdomain.UnifiedResult
		err     error
	)
	switch searchType {
	case "name":
		results, err = h.Search.SearchByName(r.Context(), query)
	case "nic":
		results, err = h.Search.SearchByNIC(r.Context(), query)
	default:
		writeError(w, http.StatusBadRequest, "invalid_request", "type must be 'name' or 'nic'")
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, searchdomain.ErrInvalidQuery):
			h.log.BusinessError("search: invalid query", err, "type", searchType)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, searchdomain.ErrSearchUnavailable):
			h.log.InternalError("search: datastore unavailable", err, "type", searchType)
			writeError(w, http.StatusServiceUnavailable, "search_failed", "search is temporarily unavailable")
		default:
			h.log.InternalError("search: query failed", err, "type", searchType)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toUnifiedResultResponses(results))
}
