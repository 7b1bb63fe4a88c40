package repos

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/dailyfeels-backend/internal/domain"
	"github.com/yungbote/dailyfeels-backend/internal/platform/logger"
)

type MoodConfigRepo interface {
	Get(ctx context.Context, tx *gorm.DB) (*types.MoodConfig, error)
	Replace(ctx context.Context, tx *gorm.DB, moods datatypes.JSON) (*types.MoodConfig, error)
}

type moodConfigRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMoodConfigRepo(db *gorm.DB, baseLog *logger.Logger) MoodConfigRepo {
	repoLog := baseLog.With("repo", "MoodConfigRepo")
	return &moodConfigRepo{db: db, log: repoLog}
}

func (r *moodConfigRepo) Get(ctx context.Context, tx *gorm.DB) (*types.MoodConfig, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out types.MoodConfig
	err := transaction.WithContext(ctx).
		Model(&types.MoodConfig{}).
		Where("key = ?", types.MoodConfigKey).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Replace swaps the singleton row wholesale (insert-or-update on key).
func (r *moodConfigRepo) Replace(ctx context.Context, tx *gorm.DB, moods datatypes.JSON) (*types.MoodConfig, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	row := &types.MoodConfig{
		Key:       types.MoodConfigKey,
		Moods:     moods,
		UpdatedAt: time.Now().UTC(),
	}
	if err := transaction.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"moods", "updated_at"}),
	}).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}
