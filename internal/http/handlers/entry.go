package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/dailyfeels-backend/internal/http/response"
	"github.com/yungbote/dailyfeels-backend/internal/platform/apierr"
	"github.com/yungbote/dailyfeels-backend/internal/platform/logger"
	"github.com/yungbote/dailyfeels-backend/internal/services"
)

type EntryHandler struct {
	log          *logger.Logger
	entryService services.EntryService
}

func NewEntryHandler(log *logger.Logger, entryService services.EntryService) *EntryHandler {
	return &EntryHandler{
		log:          log.With("handler", "EntryHandler"),
		entryService: entryService,
	}
}

type upsertEntryRequest struct {
	Date      string  `json:"date"`
	MoodValue string  `json:"mood_value"`
	Emoji     string  `json:"emoji"`
	Note      *string `json:"note"`
}

// POST /api/entries
func (h *EntryHandler) UpsertEntry(c *gin.Context) {
	var req upsertEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	entry, err := h.entryService.Upsert(c.Request.Context(), services.UpsertEntryInput{
		Date:      req.Date,
		MoodValue: req.MoodValue,
		Emoji:     req.Emoji,
		Note:      req.Note,
	})
	if err != nil {
		respondServiceError(c, err, "upsert_entry_failed")
		return
	}
	response.RespondOK(c, entry)
}

// GET /api/entries?start=&end=
func (h *EntryHandler) ListEntries(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	entries, err := h.entryService.List(c.Request.Context(), start, end)
	if err != nil {
		respondServiceError(c, err, "list_entries_failed")
		return
	}
	response.RespondOK(c, entries)
}

// DELETE /api/entries/:id
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	if err := h.entryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "delete_entry_failed")
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func respondServiceError(c *gin.Context, err error, fallbackCode string) {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		response.RespondError(c, ae.Status, ae.Code, ae.Err)
		return
	}
	response.RespondError(c, http.StatusInternalServerError, fallbackCode, err)
}
