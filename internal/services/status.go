package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/dailyfeels-backend/internal/data/repos"
	types "github.com/yungbote/dailyfeels-backend/internal/domain"
	"github.com/yungbote/dailyfeels-backend/internal/platform/apierr"
	"github.com/yungbote/dailyfeels-backend/internal/platform/logger"
)

const statusCheckListLimit = 1000

type StatusService interface {
	Create(ctx context.Context, clientName string) (*types.StatusCheck, error)
	List(ctx context.Context) ([]*types.StatusCheck, error)
}

type statusService struct {
	log        *logger.Logger
	statusRepo repos.StatusCheckRepo
}

func NewStatusService(log *logger.Logger, statusRepo repos.StatusCheckRepo) StatusService {
	serviceLog := log.With("service", "StatusService")
	return &statusService{log: serviceLog, statusRepo: statusRepo}
}

func (s *statusService) Create(ctx context.Context, clientName string) (*types.StatusCheck, error) {
	if strings.TrimSpace(clientName) == "" {
		return nil, apierr.Validation("missing_client_name", fmt.Errorf("client_name is required"))
	}
	check := &types.StatusCheck{
		ID:         uuid.New(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	created, err := s.statusRepo.Create(ctx, nil, []*types.StatusCheck{check})
	if err != nil {
		s.log.Warn("Status check create failed", "error", err)
		return nil, apierr.Unavailable("storage_unavailable", err)
	}
	return created[0], nil
}

func (s *statusService) List(ctx context.Context) ([]*types.StatusCheck, error) {
	checks, err := s.statusRepo.List(ctx, nil, statusCheckListLimit)
	if err != nil {
		s.log.Warn("Status check list failed", "error", err)
		return nil, apierr.Unavailable("storage_unavailable", err)
	}
	return checks, nil
}
