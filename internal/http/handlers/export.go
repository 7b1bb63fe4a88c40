package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/dailyfeels-backend/internal/platform/logger"
	"github.com/yungbote/dailyfeels-backend/internal/services"
)

type ExportHandler struct {
	log           *logger.Logger
	reportService services.ReportService
}

func NewExportHandler(log *logger.Logger, reportService services.ReportService) *ExportHandler {
	return &ExportHandler{
		log:           log.With("handler", "ExportHandler"),
		reportService: reportService,
	}
}

// GET /api/export/pdf?start=&end=
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")

	pdfBytes, filename, err := h.reportService.ExportPDF(c.Request.Context(), start, end)
	if err != nil {
		respondServiceError(c, err, "export_pdf_failed")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
