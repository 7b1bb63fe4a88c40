package app

import (
	httpH "github.com/yungbote/dailyfeels-backend/internal/http/handlers"
	"github.com/yungbote/dailyfeels-backend/internal/platform/logger"
)

type Handlers struct {
	Entry      *httpH.EntryHandler
	MoodConfig *httpH.MoodConfigHandler
	Export     *httpH.ExportHandler
	Status     *httpH.StatusHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	return Handlers{
		Entry:      httpH.NewEntryHandler(log, serviceset.Entry),
		MoodConfig: httpH.NewMoodConfigHandler(log, serviceset.MoodConfig),
		Export:     httpH.NewExportHandler(log, serviceset.Report),
		Status:     httpH.NewStatusHandler(log, serviceset.Status),
	}
}
