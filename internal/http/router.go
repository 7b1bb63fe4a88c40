package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/dailyfeels-backend/internal/http/handlers"
	httpMW "github.com/yungbote/dailyfeels-backend/internal/http/middleware"
	"github.com/yungbote/dailyfeels-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	CORSOrigins []string
	Tracing     bool

	EntryHandler      *httpH.EntryHandler
	MoodConfigHandler *httpH.MoodConfigHandler
	ExportHandler     *httpH.ExportHandler
	StatusHandler     *httpH.StatusHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Tracing {
		r.Use(otelgin.Middleware("dailyfeels-backend"))
	}
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	r.GET("/healthcheck", httpH.HealthCheck)

	api := r.Group("/api")
	{
		api.GET("/", httpH.Root)

		// Status checks
		if cfg.StatusHandler != nil {
			api.POST("/status", cfg.StatusHandler.CreateStatusCheck)
			api.GET("/status", cfg.StatusHandler.ListStatusChecks)
		}

		// Mood palette
		if cfg.MoodConfigHandler != nil {
			api.GET("/moods/defaults", cfg.MoodConfigHandler.GetDefaults)
			api.GET("/moods/config", cfg.MoodConfigHandler.GetConfig)
			api.POST("/moods/config", cfg.MoodConfigHandler.SetConfig)
		}

		// Entries
		if cfg.EntryHandler != nil {
			api.POST("/entries", cfg.EntryHandler.UpsertEntry)
			api.GET("/entries", cfg.EntryHandler.ListEntries)
			api.DELETE("/entries/:id", cfg.EntryHandler.DeleteEntry)
		}

		// Report export
		if cfg.ExportHandler != nil {
			api.GET("/export/pdf", cfg.ExportHandler.ExportPDF)
		}
	}

	return r
}
