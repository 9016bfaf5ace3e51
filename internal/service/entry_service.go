package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/neuroccm/sleepbetter/internal/domain"
	"github.com/neuroccm/sleepbetter/internal/repository"
	"github.com/neuroccm/sleepbetter/pkg/clockhour"
	"github.com/neuroccm/sleepbetter/pkg/pagination"
)

// EntryService records and lists nightly sleep entries.
type EntryService interface {
	// Log records one night. Logging an already-logged date overwrites it.
	Log(ctx context.Context, profileID uuid.UUID, req *domain.LogEntryRequest) (*domain.SleepEntry, error)
	List(ctx context.Context, profileID uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error)
	// Catchup reports dates that still need logging.
	Catchup(ctx context.Context, profileID uuid.UUID) (*domain.CatchupResponse, error)
}

type entryService struct {
	repo        repository.EntryRepository
	profileRepo repository.ProfileRepository
}

// NewEntryService creates a new EntryService.
func NewEntryService(repo repository.EntryRepository, profileRepo repository.ProfileRepository) EntryService {
	return &entryService{
		repo:        repo,
		profileRepo: profileRepo,
	}
}

func (s *entryService) Log(ctx context.Context, profileID uuid.UUID, req *domain.LogEntryRequest) (*domain.SleepEntry, error) {
	exists, err := s.profileRepo.Exists(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	date, err := time.ParseInLocation(domain.DateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	hours, err := resolveHours(req)
	if err != nil {
		return nil, err
	}

	entry := &domain.SleepEntry{
		ProfileID: profileID,
		Date:      date,
		Hours:     hours,
		Bedtime:   req.Bedtime,
		Waketime:  req.Waketime,
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// resolveHours derives the night's duration. When both bedtime and waketime
// are present, hours is their wrap-aware difference; otherwise the explicit
// hours value is required.
func resolveHours(req *domain.LogEntryRequest) (float64, error) {
	var hours float64
	switch {
	case req.Bedtime != nil && req.Waketime != nil:
		hours = clockhour.Between(*req.Bedtime, *req.Waketime)
	case req.Hours != nil:
		hours = *req.Hours
	default:
		return 0, domain.ErrInvalidInput
	}

	if hours < 0 || hours > 24 {
		return 0, domain.ErrInvalidEntry
	}
	return hours, nil
}

func (s *entryService) List(ctx context.Context, profileID uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
	exists, err := s.profileRepo.Exists(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	entries, err := s.repo.List(ctx, profileID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(entries) > limit

	if hasMore {
		entries = entries[:limit]
	}

	response := &domain.EntryListResponse{
		Data: make([]domain.EntryResponse, len(entries)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, entry := range entries {
		response.Data[i] = entry.ToResponse()
	}

	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := &pagination.Cursor{
			ID:   last.ID,
			Date: last.Date,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *entryService) Catchup(ctx context.Context, profileID uuid.UUID) (*domain.CatchupResponse, error) {
	exists, err := s.profileRepo.Exists(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	entries, err := s.repo.ListChronological(ctx, profileID, domain.EntryFilter{})
	if err != nil {
		return nil, err
	}

	return &domain.CatchupResponse{
		MissingDates: missingDates(entries),
		CatchupDates: catchupDates(entries, dateOnly(time.Now().UTC())),
	}, nil
}
