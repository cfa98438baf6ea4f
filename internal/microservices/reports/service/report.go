package service

import (
	"context"
	"fmt"
	"time"

	"coffeeos/internal/domain"
	"coffeeos/internal/microservices/reports/repository"
)

type ReportServiceInterface interface {
	DailySummaries(ctx context.Context, branchID, from, to string) ([]domain.ShiftReport, error)
}

type ReportService struct {
	reports repository.ReportRepositoryInterface
}

func NewReportService(reports repository.ReportRepositoryInterface) ReportServiceInterface {
	return &ReportService{reports: reports}
}

func (s *ReportService) DailySummaries(ctx context.Context, branchID, from, to string) ([]domain.ShiftReport, error) {
	if branchID == "" {
		return nil, domain.ErrMissingContext
	}

	// Default to the last seven days when the caller gives no range.
	now := time.Now().UTC()
	if to == "" {
		to = now.Format("2006-01-02")
	}
	if from == "" {
		from = now.AddDate(0, 0, -6).Format("2006-01-02")
	}
	for _, d := range []string{from, to} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, fmt.Errorf("bad date %q: %w", d, domain.ErrInvalidState)
		}
	}

	return s.reports.DailySummaries(ctx, branchID, from, to)
}
