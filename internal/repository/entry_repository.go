package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/neuroccm/sleepbetter/internal/domain"
	"github.com/neuroccm/sleepbetter/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EntryRepository interface {
	Upsert(ctx context.Context, entry *domain.SleepEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepEntry, error)
	List(ctx context.Context, profileID uuid.UUID, filter domain.EntryFilter) ([]domain.SleepEntry, error)
	ListChronological(ctx context.Context, profileID uuid.UUID, filter domain.EntryFilter) ([]domain.SleepEntry, error)
}

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

// Upsert inserts the entry, or overwrites the existing record for the same
// profile and date. Last write wins.
func (r *entryRepository) Upsert(ctx context.Context, entry *domain.SleepEntry) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"hours", "bedtime", "waketime", "updated_at"}),
		}).
		Create(entry).Error
}

func (r *entryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepEntry, error) {
	var entry domain.SleepEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// List returns entries newest first with cursor pagination, for the listing
// endpoint.
func (r *entryRepository) List(ctx context.Context, profileID uuid.UUID, filter domain.EntryFilter) ([]domain.SleepEntry, error) {
	query := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("date DESC")

	if filter.From != nil {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: records older than the cursor date, or the
			// same date with a smaller id
			query = query.Where(
				"(date < ?) OR (date = ? AND id < ?)",
				cursor.Date, cursor.Date, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var entries []domain.SleepEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

// ListChronological returns every matching entry oldest first, unpaginated.
// The debt and trend computations need the full ordered series.
func (r *entryRepository) ListChronological(ctx context.Context, profileID uuid.UUID, filter domain.EntryFilter) ([]domain.SleepEntry, error) {
	query := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("date ASC")

	if filter.From != nil {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", filter.To)
	}

	var entries []domain.SleepEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
