package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/neuroccm/sleepbetter/internal/api/validation"
	"github.com/neuroccm/sleepbetter/internal/domain"
	"github.com/neuroccm/sleepbetter/internal/service"
	"github.com/neuroccm/sleepbetter/pkg/problem"
)

// @title SleepBetter API
// @version 1.0
// @description API for tracking sleep debt and planning recovery
// @BasePath /v1

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Create handles POST /v1/profiles
// @Summary Create a new sleep profile
// @Description Create a profile with sleep targets and wake time. When a birthdate is given and no explicit targets, age-band defaults are applied.
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body domain.CreateProfileRequest true "Profile creation request"
// @Success 201 {object} domain.ProfileResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles [post]
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	profile, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidWakeTime) {
			problem.BadRequest("Wake time must be between 04:00 and 10:00").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Target hours must not exceed optimal hours").Write(w)
			return
		}
		problem.InternalError("Failed to create profile").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(profile.ToResponse())
}

// Get handles GET /v1/profiles/{profileId}
// @Summary Get profile by ID
// @Description Get a profile's details by its UUID
// @Tags profiles
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Success 200 {object} domain.ProfileResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId} [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	profile, err := h.service.Get(r.Context(), profileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Profile not found").Write(w)
			return
		}
		problem.InternalError("Failed to get profile").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile.ToResponse())
}

// Update handles PATCH /v1/profiles/{profileId}
// @Summary Update a profile
// @Description Partially update profile targets, wake time or notes. Omitted fields are left unchanged.
// @Tags profiles
// @Accept json
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Param request body domain.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} domain.ProfileResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId} [patch]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	var req domain.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	profile, err := h.service.Update(r.Context(), profileID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Profile not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidWakeTime) {
			problem.BadRequest("Wake time must be between 04:00 and 10:00").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Target hours must not exceed optimal hours").Write(w)
			return
		}
		problem.InternalError("Failed to update profile").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile.ToResponse())
}
