package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/neuroccm/sleepbetter/internal/domain"
)

// MockEntryRepository is a mock implementation of EntryRepository
type MockEntryRepository struct {
	entries map[uuid.UUID]*domain.SleepEntry
	err     error
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[uuid.UUID]*domain.SleepEntry),
	}
}

func (m *MockEntryRepository) Upsert(ctx context.Context, entry *domain.SleepEntry) error {
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.entries {
		if existing.ProfileID == entry.ProfileID && existing.Date.Equal(entry.Date) {
			existing.Hours = entry.Hours
			existing.Bedtime = entry.Bedtime
			existing.Waketime = entry.Waketime
			existing.UpdatedAt = time.Now()
			*entry = *existing
			return nil
		}
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	stored := *entry
	m.entries[entry.ID] = &stored
	return nil
}

func (m *MockEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (m *MockEntryRepository) List(ctx context.Context, profileID uuid.UUID, filter domain.EntryFilter) ([]domain.SleepEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	result, err := m.ListChronological(ctx, profileID, filter)
	if err != nil {
		return nil, err
	}
	// Newest first for the listing endpoint
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (m *MockEntryRepository) ListChronological(ctx context.Context, profileID uuid.UUID, filter domain.EntryFilter) ([]domain.SleepEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SleepEntry
	for _, entry := range m.entries {
		if entry.ProfileID != profileID {
			continue
		}
		if filter.From != nil && entry.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && entry.Date.After(*filter.To) {
			continue
		}
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	profiles map[uuid.UUID]*domain.Profile
	err      error
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[uuid.UUID]*domain.Profile),
	}
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	m.profiles[profile.ID] = profile
	return nil
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	profile, ok := m.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.profiles[profile.ID] = profile
	return nil
}

func (m *MockProfileRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.profiles[id]
	return ok, nil
}

func (m *MockProfileRepository) SetError(err error) {
	m.err = err
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	output *domain.LLMInsightsOutput
	err    error
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return &domain.LLMInsightsOutput{Summary: "ok"}, nil
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

// mustDate parses a YYYY-MM-DD date for test fixtures.
func mustDate(s string) time.Time {
	t, err := time.ParseInLocation(domain.DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

// seedProfile installs a profile with product-default targets.
func seedProfile(repo *MockProfileRepository) *domain.Profile {
	profile := &domain.Profile{
		ID:           uuid.New(),
		Name:         "Alex",
		TargetHours:  7.0,
		OptimalHours: 8.0,
		WakeTime:     6.75,
	}
	repo.profiles[profile.ID] = profile
	return profile
}

// seedEntry installs an entry directly, bypassing Upsert.
func seedEntry(repo *MockEntryRepository, profileID uuid.UUID, date string, hours float64) *domain.SleepEntry {
	entry := &domain.SleepEntry{
		ID:        uuid.New(),
		ProfileID: profileID,
		Date:      mustDate(date),
		Hours:     hours,
	}
	repo.entries[entry.ID] = entry
	return entry
}
