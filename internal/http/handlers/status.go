package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/dailyfeels-backend/internal/http/response"
	"github.com/yungbote/dailyfeels-backend/internal/platform/logger"
	"github.com/yungbote/dailyfeels-backend/internal/services"
)

type StatusHandler struct {
	log           *logger.Logger
	statusService services.StatusService
}

func NewStatusHandler(log *logger.Logger, statusService services.StatusService) *StatusHandler {
	return &StatusHandler{
		log:           log.With("handler", "StatusHandler"),
		statusService: statusService,
	}
}

type createStatusRequest struct {
	ClientName string `json:"client_name"`
}

// POST /api/status
func (h *StatusHandler) CreateStatusCheck(c *gin.Context) {
	var req createStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	check, err := h.statusService.Create(c.Request.Context(), req.ClientName)
	if err != nil {
		respondServiceError(c, err, "create_status_failed")
		return
	}
	response.RespondOK(c, check)
}

// GET /api/status
func (h *StatusHandler) ListStatusChecks(c *gin.Context) {
	checks, err := h.statusService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "list_status_failed")
		return
	}
	response.RespondOK(c, checks)
}
