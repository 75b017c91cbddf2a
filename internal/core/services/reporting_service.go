package services

import (
	"context"

	portsrepo "github.com/doctrackph/doctrack-backend/internal/core/ports/repositories"
	portssvc "github.com/doctrackph/doctrack-backend/internal/core/ports/services"
	"github.com/doctrackph/doctrack-backend/internal/dto"
)

// reportingService computes the dashboard aggregates.
type reportingService struct {
	docRepo  portsrepo.DocumentRepository
	userRepo portsrepo.UserRepository
	logRepo  portsrepo.LogRepository
}

// NewReportingService creates the dashboard reporting service.
func NewReportingService(docRepo portsrepo.DocumentRepository, userRepo portsrepo.UserRepository, logRepo portsrepo.LogRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		docRepo:  docRepo,
		userRepo: userRepo,
		logRepo:  logRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) DashboardCounts(ctx context.Context) (*dto.DashboardCountsResponse, error) {
	incoming, err := s.docRepo.CountIncoming(ctx)
	if err != nil {
		return nil, err
	}
	outgoing, err := s.docRepo.CountOutgoing(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.logRepo.CountLogs(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardCountsResponse{
		Incoming: incoming,
		Outgoing: outgoing,
		Users:    users,
		Logs:     logs,
	}, nil
}
