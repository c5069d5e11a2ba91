package handler

import (
	"errors"
	"net/http"

	matchingdomain "github.com/playershyan/iSafe-sub001/internal/domain/matching"
	missingdomain "github.com/playershyan/iSafe-sub001/internal/domain/missing"
	persondomain "github.com/playershyan/iSafe-sub001/internal/domain/person"
)

type confirmMatchRequest struct {
	PersonID        string `json:"person_id"`
	MissingReportID string `json:"missing_report_id"`
	Confidence      int    `json:"confidence"`
}

func (h *Handlers) ConfirmMatch(w http.ResponseWriter, r *http.Request) {
	var req confirmMatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Recorder.Confirm(r.Context(), req.PersonID, req.MissingReportID, req.Confidence)
	if err != nil {
		switch {
		case errors.Is(err, matchingdomain.ErrInvalidInput):
			h.log.BusinessError("matches.confirm: invalid input", err)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, persondomain.ErrPersonNotFound):
			h.log.BusinessError("matches.confirm: person not found", err, "person_id", req.PersonID)
			writeError(w, http.StatusNotFound, "person_not_found", "person not found")
		case errors.Is(err, missingdomain.ErrReportNotFound):
			h.log.BusinessError("matches.confirm: report not found", err, "report_id", req.MissingReportID)
			writeError(w, http.StatusNotFound, "report_not_found", "report not found")
		case errors.Is(err, matchingdomain.ErrMatchAlreadyConfirmed):
			h.log.BusinessError("matches.confirm: duplicate confirmation", err,
				"person_id", req.PersonID, "report_id", req.MissingReportID)
			writeError(w, http.StatusConflict, "match_already_confirmed", "match already confirmed for this pair")
		default:
			h.log.InternalError("matches.confirm: confirm failed", err,
				"person_id", req.PersonID, "report_id", req.MissingReportID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toMatchResponse(result))
}
