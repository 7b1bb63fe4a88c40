package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/dailyfeels-backend/internal/data/repos"
	"github.com/yungbote/dailyfeels-backend/internal/platform/logger"
)

type Repos struct {
	MoodEntry   repos.MoodEntryRepo
	MoodConfig  repos.MoodConfigRepo
	StatusCheck repos.StatusCheckRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		MoodEntry:   repos.NewMoodEntryRepo(db, log),
		MoodConfig:  repos.NewMoodConfigRepo(db, log),
		StatusCheck: repos.NewStatusCheckRepo(db, log),
	}
}
