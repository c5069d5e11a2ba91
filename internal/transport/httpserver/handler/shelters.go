package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	shelterdomain "github.com/playershyan/iSafe-sub001/internal/domain/shelter"
)

type createShelterRequest struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	District string `json:"district"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (h *Handlers) CreateShelter(w http.ResponseWriter, r *http.Request) {
	var req createShelterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Shelters.Create(r.Context(), shelterdomain.CreateInput{
		Name:     req.Name,
		Code:     req.Code,
		District: shelterdomain.District(strings.ToUpper(strings.TrimSpace(req.District))),
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, shelterdomain.ErrInvalidInput):
			h.log.BusinessError("shelters.create: invalid input", err)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, shelterdomain.ErrShelterCodeTaken):
			h.log.BusinessError("shelters.create: code taken", err, "code", req.Code)
			writeError(w, http.StatusConflict, "shelter_code_taken", "shelter code already taken")
		default:
			h.log.InternalError("shelters.create: create failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toShelterResponse(result))
}

func (h *Handlers) GetShelterByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	result, err := h.Shelters.GetByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, shelterdomain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, shelterdomain.ErrShelterNotFound):
			h.log.BusinessError("shelters.get: not found", err, "code", code)
			writeError(w, http.StatusNotFound, "shelter_not_found", "shelter not found")
		default:
			h.log.InternalError("shelters.get: lookup failed", err, "code", code)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toShelterResponse(result))
}

func (h *Handlers) ListShelters(w http.ResponseWriter, r *http.Request) {
	shelters, err := h.Shelters.List(r.Context())
	if err != nil {
		h.log.InternalError("shelters.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	result := make([]shelterResponse, 0, len(shelters))
	for i := range shelters {
		result = append(result, toShelterResponse(&shelters[i]))
	}
	writeJSON(w, http.StatusOK, result)
}
