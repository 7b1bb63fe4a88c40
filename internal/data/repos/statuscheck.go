package repos

import (
	"context"

	"gorm.io/gorm"

	types "github.com/yungbote/dailyfeels-backend/internal/domain"
	"github.com/yungbote/dailyfeels-backend/internal/platform/logger"
)

type StatusCheckRepo interface {
	Create(ctx context.Context, tx *gorm.DB, checks []*types.StatusCheck) ([]*types.StatusCheck, error)
	List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.StatusCheck, error)
}

type statusCheckRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStatusCheckRepo(db *gorm.DB, baseLog *logger.Logger) StatusCheckRepo {
	repoLog := baseLog.With("repo", "StatusCheckRepo")
	return &statusCheckRepo{db: db, log: repoLog}
}

func (r *statusCheckRepo) Create(ctx context.Context, tx *gorm.DB, checks []*types.StatusCheck) ([]*types.StatusCheck, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(checks) == 0 {
		return []*types.StatusCheck{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&checks).Error; err != nil {
		return nil, err
	}
	return checks, nil
}

func (r *statusCheckRepo) List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.StatusCheck, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if limit <= 0 {
		limit = 1000
	}
	var results []*types.StatusCheck
	if err := transaction.WithContext(ctx).
		Order("timestamp ASC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
