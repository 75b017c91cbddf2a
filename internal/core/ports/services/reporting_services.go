package services

import (
	"context"

	"github.com/doctrackph/doctrack-backend/internal/dto"
)

// ReportingSvcFacade computes the dashboard aggregates.
type ReportingSvcFacade interface {
	DashboardCounts(ctx context.Context) (*dto.DashboardCountsResponse, error)
}
