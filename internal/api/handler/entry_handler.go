package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/neuroccm/sleepbetter/internal/api/validation"
	"github.com/neuroccm/sleepbetter/internal/domain"
	"github.com/neuroccm/sleepbetter/internal/service"
	"github.com/neuroccm/sleepbetter/pkg/problem"
)

type EntryHandler struct {
	service service.EntryService
}

func NewEntryHandler(service service.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// Log handles POST /v1/profiles/{profileId}/entries
// @Summary Log a night of sleep
// @Description Record sleep for a date. Either hours or a bedtime/waketime pair must be given. Logging the same date again overwrites the previous record.
// @Tags entries
// @Accept json
// @Produce json
// @Param profileId path string true "Profile UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.LogEntryRequest true "Night of sleep"
// @Success 201 {object} domain.EntryResponse "Entry recorded"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 422 {object} problem.Problem "Invalid field values"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId}/entries [post]
func (h *EntryHandler) Log(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	var req domain.LogEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.Log(r.Context(), profileID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Profile not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidEntry) {
			problem.BadRequest("Sleep hours must be between 0 and 24").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Either hours or a bedtime/waketime pair is required").Write(w)
			return
		}
		problem.InternalError("Failed to log sleep entry").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// List handles GET /v1/profiles/{profileId}/entries
// @Summary List sleep entries
// @Description Fetch paginated sleep history. Filter by date range. Results sorted by date descending (newest first).
// @Tags entries
// @Produce json
// @Param profileId path string true "Profile UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "Start of date range (inclusive)" format(date) example(2026-01-01)
// @Param to query string false "End of date range (inclusive)" format(date) example(2026-01-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.EntryListResponse "Sleep entries with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId}/entries [get]
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), profileID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Profile not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid pagination cursor").Write(w)
			return
		}
		problem.InternalError("Failed to list sleep entries").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Catchup handles GET /v1/profiles/{profileId}/entries/catchup
// @Summary List unlogged dates
// @Description Report interior calendar gaps in the logged history and the trailing dates from the last entry up to yesterday.
// @Tags entries
// @Produce json
// @Param profileId path string true "Profile UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.CatchupResponse "Missing and catch-up dates"
// @Failure 400 {object} problem.Problem "Invalid profile ID"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId}/entries/catchup [get]
func (h *EntryHandler) Catchup(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	response, err := h.service.Catchup(r.Context(), profileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Profile not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute catch-up dates").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseListFilter(r *http.Request) (domain.EntryFilter, []problem.FieldError) {
	var filter domain.EntryFilter
	var fieldErrors []problem.FieldError

	// Parse 'from' parameter
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateLayout, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			filter.From = &from
		}
	}

	// Parse 'to' parameter
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateLayout, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			filter.To = &to
		}
	}

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Parse 'cursor' parameter
	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
