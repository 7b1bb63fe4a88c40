package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/dailyfeels-backend/internal/data/repos"
	types "github.com/yungbote/dailyfeels-backend/internal/domain"
	"github.com/yungbote/dailyfeels-backend/internal/platform/apierr"
	"github.com/yungbote/dailyfeels-backend/internal/platform/logger"
)

type MoodConfigService interface {
	Defaults() []types.MoodDefinition
	Get(ctx context.Context) ([]types.MoodDefinition, error)
	// Set replaces the palette wholesale. Mood values referenced by
	// historical entries may disappear; consumers fall back to display
	// defaults for those.
	Set(ctx context.Context, defs []types.MoodDefinition) ([]types.MoodDefinition, error)
}

type moodConfigService struct {
	db         *gorm.DB
	log        *logger.Logger
	configRepo repos.MoodConfigRepo
}

func NewMoodConfigService(db *gorm.DB, log *logger.Logger, configRepo repos.MoodConfigRepo) MoodConfigService {
	serviceLog := log.With("service", "MoodConfigService")
	return &moodConfigService{db: db, log: serviceLog, configRepo: configRepo}
}

func (s *moodConfigService) Defaults() []types.MoodDefinition {
	return types.DefaultMoods()
}

func (s *moodConfigService) Get(ctx context.Context) ([]types.MoodDefinition, error) {
	row, err := s.configRepo.Get(ctx, nil)
	if err != nil {
		s.log.Warn("Mood config fetch failed", "error", err)
		return nil, apierr.Unavailable("storage_unavailable", err)
	}
	if row == nil || len(row.Moods) == 0 {
		return types.DefaultMoods(), nil
	}
	var defs []types.MoodDefinition
	if err := json.Unmarshal(row.Moods, &defs); err != nil {
		s.log.Warn("Stored mood config is unreadable, serving defaults", "error", err)
		return types.DefaultMoods(), nil
	}
	if len(defs) == 0 {
		return types.DefaultMoods(), nil
	}
	return defs, nil
}

func (s *moodConfigService) Set(ctx context.Context, defs []types.MoodDefinition) ([]types.MoodDefinition, error) {
	if len(defs) == 0 {
		return nil, apierr.Validation("empty_config", fmt.Errorf("at least one mood is required"))
	}
	for i, d := range defs {
		if strings.TrimSpace(d.Value) == "" {
			return nil, apierr.Validation("missing_value", fmt.Errorf("moods[%d].value is required", i))
		}
		if strings.TrimSpace(d.Emoji) == "" {
			return nil, apierr.Validation("missing_emoji", fmt.Errorf("moods[%d].emoji is required", i))
		}
		if strings.TrimSpace(d.Label) == "" {
			return nil, apierr.Validation("missing_label", fmt.Errorf("moods[%d].label is required", i))
		}
	}

	raw, err := json.Marshal(defs)
	if err != nil {
		return nil, apierr.Validation("invalid_config", err)
	}
	if _, err := s.configRepo.Replace(ctx, nil, datatypes.JSON(raw)); err != nil {
		s.log.Warn("Mood config replace failed", "error", err)
		return nil, apierr.Unavailable("storage_unavailable", err)
	}
	s.log.Info("Mood config replaced", "moods", len(defs))
	return defs, nil
}
