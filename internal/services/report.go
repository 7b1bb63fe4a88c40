package services

import (
	"bytes"
	"context"

	"github.com/yungbote/dailyfeels-backend/internal/platform/logger"
	"github.com/yungbote/dailyfeels-backend/internal/report"
)

type ReportService interface {
	// ExportPDF builds the mood report over [start, end] (either side
	// may be empty) and returns the PDF bytes with a suggested filename.
	ExportPDF(ctx context.Context, start, end string) ([]byte, string, error)
}

type reportService struct {
	log           *logger.Logger
	entryService  EntryService
	configService MoodConfigService
}

func NewReportService(log *logger.Logger, entryService EntryService, configService MoodConfigService) ReportService {
	serviceLog := log.With("service", "ReportService")
	return &reportService{log: serviceLog, entryService: entryService, configService: configService}
}

func (s *reportService) ExportPDF(ctx context.Context, start, end string) ([]byte, string, error) {
	entries, err := s.entryService.List(ctx, start, end)
	if err != nil {
		return nil, "", err
	}
	moods, err := s.configService.Get(ctx)
	if err != nil {
		return nil, "", err
	}

	doc := report.Build(entries, moods, start, end)
	var buf bytes.Buffer
	if err := doc.RenderPDF(&buf); err != nil {
		s.log.Error("PDF render failed", "error", err)
		return nil, "", err
	}
	s.log.Info("Report exported", "entries", len(entries), "filename", doc.Filename())
	return buf.Bytes(), doc.Filename(), nil
}
