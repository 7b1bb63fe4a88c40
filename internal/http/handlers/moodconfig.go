package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/dailyfeels-backend/internal/domain"
	"github.com/yungbote/dailyfeels-backend/internal/http/response"
	"github.com/yungbote/dailyfeels-backend/internal/platform/logger"
	"github.com/yungbote/dailyfeels-backend/internal/services"
)

type MoodConfigHandler struct {
	log           *logger.Logger
	configService services.MoodConfigService
}

func NewMoodConfigHandler(log *logger.Logger, configService services.MoodConfigService) *MoodConfigHandler {
	return &MoodConfigHandler{
		log:           log.With("handler", "MoodConfigHandler"),
		configService: configService,
	}
}

type moodConfigPayload struct {
	Moods []types.MoodDefinition `json:"moods"`
}

// GET /api/moods/defaults
func (h *MoodConfigHandler) GetDefaults(c *gin.Context) {
	response.RespondOK(c, h.configService.Defaults())
}

// GET /api/moods/config
func (h *MoodConfigHandler) GetConfig(c *gin.Context) {
	moods, err := h.configService.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "get_config_failed")
		return
	}
	response.RespondOK(c, moodConfigPayload{Moods: moods})
}

// POST /api/moods/config
func (h *MoodConfigHandler) SetConfig(c *gin.Context) {
	var req moodConfigPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	moods, err := h.configService.Set(c.Request.Context(), req.Moods)
	if err != nil {
		respondServiceError(c, err, "set_config_failed")
		return
	}
	response.RespondOK(c, moodConfigPayload{Moods: moods})
}
