package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	missingdomain "github.com/playershyan/iSafe-sub001/internal/domain/missing"
	persondomain "github.com/playershyan/iSafe-sub001/internal/domain/person"
	shelterdomain "github.com/playershyan/iSafe-sub001/internal/domain/shelter"
	"github.com/playershyan/iSafe-sub001/internal/transport/httpserver/middleware"
)

type fileReportRequest struct {
	FullName         string `json:"full_name"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	NIC              string `json:"nic"`
	PhotoURL         string `json:"photo_url"`
	LastSeenLocation string `json:"last_seen_location"`
	LastSeenDistrict string `json:"last_seen_district"`
	LastSeenDate     string `json:"last_seen_date"`
	Clothing         string `json:"clothing"`
	ReporterName     string `json:"reporter_name"`
	ReporterPhone    string `json:"reporter_phone"`
}

func (h *Handlers) FileReport(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.ClientIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "missing_client_id", "X-Client-ID header is required")
		return
	}

	var req fileReportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	var lastSeen *time.Time
	if strings.TrimSpace(req.LastSeenDate) != "" {
		parsed, err := time.Parse("2006-01-02", strings.TrimSpace(req.LastSeenDate))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "last_seen_date must be YYYY-MM-DD")
			return
		}
		lastSeen = &parsed
	}

	result, err := h.Reports.File(r.Context(), clientID, missingdomain.FileInput{
		FullName:         req.FullName,
		Age:              req.Age,
		Gender:           persondomain.Gender(strings.ToUpper(strings.TrimSpace(req.Gender))),
		NIC:              req.NIC,
		PhotoURL:         req.PhotoURL,
		LastSeenLocation: req.LastSeenLocation,
		LastSeenDistrict: shelterdomain.District(strings.ToUpper(strings.TrimSpace(req.LastSeenDistrict))),
		LastSeenDate:     lastSeen,
		Clothing:         req.Clothing,
		ReporterName:     req.ReporterName,
		ReporterPhone:    req.ReporterPhone,
	})
	if err != nil {
		switch {
		case errors.Is(err, missingdomain.ErrInvalidInput):
			h.log.BusinessError("reports.file: invalid input", err)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, missingdomain.ErrPosterCodeGenerationFail):
			h.log.InternalError("reports.file: poster code generation exhausted", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		default:
			h.log.InternalError("reports.file: create failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toReportResponse(result))
}

func (h *Handlers) GetReportByPosterCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "poster_code")

	result, err := h.Reports.GetByPosterCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, missingdomain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, missingdomain.ErrReportNotFound):
			h.log.BusinessError("reports.get: not found", err, "poster_code", code)
			writeError(w, http.StatusNotFound, "report_not_found", "report not found")
		default:
			h.log.InternalError("reports.get: lookup failed", err, "poster_code", code)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(result))
}

func (h *Handlers) ListMyReports(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.ClientIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "missing_client_id", "X-Client-ID header is required")
		return
	}

	reports, err := h.Reports.ListByReporter(r.Context(), clientID)
	if err != nil {
		h.log.InternalError("reports.list_mine: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	result := make([]reportResponse, 0, len(reports))
	for i := range reports {
		result = append(result, toReportResponse(&reports[i]))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) MarkReportFound(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.ClientIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "missing_client_id", "X-Client-ID header is required")
		return
	}

	id := chi.URLParam(r, "id")
	result, err := h.Reports.MarkFound(r.Context(), clientID, id)
	if err != nil {
		switch {
		case errors.Is(err, missingdomain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, missingdomain.ErrReportNotFound):
			h.log.BusinessError("reports.mark_found: not found", err, "report_id", id)
			writeError(w, http.StatusNotFound, "report_not_found", "report not found")
		case errors.Is(err, missingdomain.ErrNotReporter):
			h.log.BusinessError("reports.mark_found: client mismatch", err, "report_id", id)
			writeError(w, http.StatusForbidden, "not_reporter", "only the reporter can close this report")
		case errors.Is(err, missingdomain.ErrAlreadyFound):
			h.log.BusinessError("reports.mark_found: already found", err, "report_id", id)
			writeError(w, http.StatusConflict, "already_found", "report already marked found")
		default:
			h.log.InternalError("reports.mark_found: update failed", err, "report_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(result))
}
