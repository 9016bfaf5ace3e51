package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/neuroccm/sleepbetter/internal/domain"
	"github.com/neuroccm/sleepbetter/internal/repository"
)

// ProfileService manages sleeper profiles.
type ProfileService interface {
	Create(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error)
}

type profileService struct {
	repo repository.ProfileRepository
	cfg  domain.EngineConfig
}

// NewProfileService creates a new ProfileService.
func NewProfileService(repo repository.ProfileRepository, cfg domain.EngineConfig) ProfileService {
	return &profileService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *profileService) Create(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error) {
	profile := &domain.Profile{
		Name:         req.Name,
		TargetHours:  s.cfg.TargetHours,
		OptimalHours: s.cfg.OptimalHours,
		WakeTime:     s.cfg.WakeTime,
		Notes:        req.Notes,
	}

	if req.Birthdate != nil {
		b, err := time.ParseInLocation(domain.DateLayout, *req.Birthdate, time.UTC)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		profile.Birthdate = &b

		// Age-appropriate defaults apply only when the caller did not
		// choose targets explicitly.
		if req.TargetHours == nil && req.OptimalHours == nil {
			age := profile.Age(time.Now().UTC())
			if target, optimal, ok := domain.TargetsForAge(age); ok {
				profile.TargetHours = target
				profile.OptimalHours = optimal
			}
		}
	}

	if req.TargetHours != nil {
		profile.TargetHours = *req.TargetHours
	}
	if req.OptimalHours != nil {
		profile.OptimalHours = *req.OptimalHours
	}
	if req.WakeTime != nil {
		profile.WakeTime = *req.WakeTime
	}

	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *profileService) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *profileService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Birthdate != nil {
		b, err := time.ParseInLocation(domain.DateLayout, *req.Birthdate, time.UTC)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		profile.Birthdate = &b
	}
	if req.TargetHours != nil {
		profile.TargetHours = *req.TargetHours
	}
	if req.OptimalHours != nil {
		profile.OptimalHours = *req.OptimalHours
	}
	if req.WakeTime != nil {
		profile.WakeTime = *req.WakeTime
	}
	if req.Notes != nil {
		profile.Notes = *req.Notes
	}

	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// validateProfile enforces the profile invariants after all fields settle:
// the wake time stays inside the acceptable clock window and the baseline
// target never exceeds the recovery target.
func validateProfile(p *domain.Profile) error {
	if p.WakeTime < domain.WakeTimeMin || p.WakeTime > domain.WakeTimeMax {
		return domain.ErrInvalidWakeTime
	}
	if p.TargetHours > p.OptimalHours {
		return domain.ErrInvalidInput
	}
	return nil
}
