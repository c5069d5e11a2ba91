package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	matchingdomain "github.com/playershyan/iSafe-sub001/internal/domain/matching"
	persondomain "github.com/playershyan/iSafe-sub001/internal/domain/person"
)

type registerPersonRequest struct {
	FullName     string `json:"full_name"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"`
	NIC          string `json:"nic"`
	PhotoURL     string `json:"photo_url"`
	HealthStatus string `json:"health_status"`
	ShelterID    string `json:"shelter_id"`
}

type registerPersonResponse struct {
	Person           personResponse           `json:"person"`
	PotentialMatches []potentialMatchResponse `json:"potential_matches"`
}

// RegisterPerson writes the person record and then runs the candidate finder
// synchronously; the ranked suggestions go back to shelter staff for manual
// confirmation. Finder failures degrade to an empty suggestion list and never
// fail the registration.
func (h *Handlers) RegisterPerson(w http.ResponseWriter, r *http.Request) {
	var req registerPersonRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Persons.Register(r.Context(), persondomain.RegisterInput{
		FullName:     req.FullName,
		Age:          req.Age,
		Gender:       persondomain.Gender(strings.ToUpper(strings.TrimSpace(req.Gender))),
		NIC:          req.NIC,
		PhotoURL:     req.PhotoURL,
		HealthStatus: persondomain.HealthStatus(strings.ToUpper(strings.TrimSpace(req.HealthStatus))),
		ShelterID:    req.ShelterID,
	})
	if err != nil {
		switch {
		case errors.Is(err, persondomain.ErrInvalidInput):
			h.log.BusinessError("persons.register: invalid input", err)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, persondomain.ErrShelterUnknown):
			h.log.BusinessError("persons.register: shelter not found", err, "shelter_id", req.ShelterID)
			writeError(w, http.StatusNotFound, "shelter_not_found", "shelter not found")
		default:
			h.log.InternalError("persons.register: create failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	nic := ""
	if result.NIC != nil {
		nic = *result.NIC
	}
	matches, err := h.Finder.FindMatches(r.Context(), matchingdomain.Candidate{
		FullName: result.FullName,
		Age:      result.Age,
		Gender:   result.Gender,
		NIC:      nic,
	})
	if err != nil {
		// Registration already persisted; a finder validation error here
		// means a bug upstream, not a reason to fail the request.
		h.log.InternalError("persons.register: match finding rejected candidate", err, "person_id", result.ID)
		matches = nil
	}

	writeJSON(w, http.StatusCreated, registerPersonResponse{
		Person:           toPersonResponse(result),
		PotentialMatches: toPotentialMatchResponses(matches),
	})
}

func (h *Handlers) GetPerson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.Persons.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, persondomain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, persondomain.ErrPersonNotFound):
			h.log.BusinessError("persons.get: not found", err, "person_id", id)
			writeError(w, http.StatusNotFound, "person_not_found", "person not found")
		default:
			h.log.InternalError("persons.get: lookup failed", err, "person_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toPersonResponse(result))
}

func (h *Handlers) ListPersonsByShelter(w http.ResponseWriter, r *http.Request) {
	shelterID := chi.URLParam(r, "shelter_id")

	persons, err := h.Persons.ListByShelter(r.Context(), shelterID)
	if err != nil {
		if errors.Is(err, persondomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("persons.list: list failed", err, "shelter_id", shelterID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	result := make([]personResponse, 0, len(persons))
	for i := range persons {
		result = append(result, toPersonResponse(&persons[i]))
	}
	writeJSON(w, http.StatusOK, result)
}

type updateHealthRequest struct {
	HealthStatus string `json:"health_status"`
}

func (h *Handlers) UpdatePersonHealth(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateHealthRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	status := persondomain.HealthStatus(strings.ToUpper(strings.TrimSpace(req.HealthStatus)))
	if err := h.Persons.UpdateHealthStatus(r.Context(), id, status); err != nil {
		switch {
		case errors.Is(err, persondomain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, persondomain.ErrPersonNotFound):
			h.log.BusinessError("persons.update_health: not found", err, "person_id", id)
			writeError(w, http.StatusNotFound, "person_not_found", "person not found")
		default:
			h.log.InternalError("persons.update_health: update failed", err, "person_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
