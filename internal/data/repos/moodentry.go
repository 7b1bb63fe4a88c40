package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/dailyfeels-backend/internal/domain"
	"github.com/yungbote/dailyfeels-backend/internal/platform/logger"
)

type MoodEntryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entries []*types.MoodEntry) ([]*types.MoodEntry, error)
	GetByDate(ctx context.Context, tx *gorm.DB, date string) (*types.MoodEntry, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.MoodEntry, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error
	ListRange(ctx context.Context, tx *gorm.DB, start, end string) ([]*types.MoodEntry, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error)
}

type moodEntryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMoodEntryRepo(db *gorm.DB, baseLog *logger.Logger) MoodEntryRepo {
	repoLog := baseLog.With("repo", "MoodEntryRepo")
	return &moodEntryRepo{db: db, log: repoLog}
}

func (r *moodEntryRepo) Create(ctx context.Context, tx *gorm.DB, entries []*types.MoodEntry) ([]*types.MoodEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(entries) == 0 {
		return []*types.MoodEntry{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *moodEntryRepo) GetByDate(ctx context.Context, tx *gorm.DB, date string) (*types.MoodEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out types.MoodEntry
	err := transaction.WithContext(ctx).
		Model(&types.MoodEntry{}).
		Where("date = ?", date).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *moodEntryRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.MoodEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out types.MoodEntry
	err := transaction.WithContext(ctx).
		Model(&types.MoodEntry{}).
		Where("id = ?", id).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *moodEntryRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.MoodEntry{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// ListRange returns entries ascending by date. Empty bounds leave that
// side open; start > end simply matches nothing.
func (r *moodEntryRepo) ListRange(ctx context.Context, tx *gorm.DB, start, end string) ([]*types.MoodEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Model(&types.MoodEntry{})
	if start != "" {
		q = q.Where("date >= ?", start)
	}
	if end != "" {
		q = q.Where("date <= ?", end)
	}
	var results []*types.MoodEntry
	if err := q.Order("date ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *moodEntryRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.MoodEntry{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
