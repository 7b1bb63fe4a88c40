package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/dailyfeels-backend/internal/platform/logger"
	"github.com/yungbote/dailyfeels-backend/internal/services"
)

type Services struct {
	Entry      services.EntryService
	MoodConfig services.MoodConfigService
	Report     services.ReportService
	Status     services.StatusService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	entryService := services.NewEntryService(db, log, reposet.MoodEntry)
	moodConfigService := services.NewMoodConfigService(db, log, reposet.MoodConfig)
	reportService := services.NewReportService(log, entryService, moodConfigService)
	statusService := services.NewStatusService(log, reposet.StatusCheck)
	return Services{
		Entry:      entryService,
		MoodConfig: moodConfigService,
		Report:     reportService,
		Status:     statusService,
	}
}
