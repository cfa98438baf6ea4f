package service

import (
	"context"
	"encoding/json"
	"fmt"

	"coffeeos/internal/common/logger"
	"coffeeos/internal/domain"
	"coffeeos/internal/microservices/forecast/oracle"
	"coffeeos/internal/microservices/forecast/repository"
)

type ForecastServiceInterface interface {
	Forecast(ctx context.Context, branchID string, days int) (domain.ForecastResponse, error)
}

type ForecastService struct {
	sales  repository.SalesRepositoryInterface
	oracle oracle.Oracle
	lg     *logger.Logger

	// HistoryDays is how far back the historical series reaches.
	HistoryDays int
}

func NewForecastService(sales repository.SalesRepositoryInterface, o oracle.Oracle, lg *logger.Logger) ForecastServiceInterface {
	return &ForecastService{sales: sales, oracle: o, lg: lg, HistoryDays: 90}
}

func (s *ForecastService) Forecast(ctx context.Context, branchID string, days int) (domain.ForecastResponse, error) {
	if branchID == "" {
		return domain.ForecastResponse{}, domain.ErrMissingContext
	}
	if days <= 0 {
		return domain.ForecastResponse{}, fmt.Errorf("forecast days must be positive: %w", domain.ErrInvalidState)
	}

	history, err := s.sales.DailySales(ctx, branchID, s.HistoryDays)
	if err != nil {
		return domain.ForecastResponse{}, err
	}
	if len(history) == 0 {
		return domain.ForecastResponse{}, fmt.Errorf("no sales history to forecast from: %w", domain.ErrInvalidState)
	}

	encoded, err := json.Marshal(history)
	if err != nil {
		return domain.ForecastResponse{}, fmt.Errorf("encode history: %w", err)
	}

	resp, err := s.oracle.Forecast(ctx, oracle.Request{
		HistoricalSalesData: string(encoded),
		ForecastDays:        days,
	})
	if err != nil {
		return domain.ForecastResponse{}, err
	}

	predicted, err := Normalize(resp.PredictedSales)
	if err != nil {
		s.lg.Error("forecast_normalize_failed", err, map[string]any{"branch_id": branchID})
		return domain.ForecastResponse{}, err
	}

	s.lg.Info("forecast_produced", map[string]any{
		"branch_id": branchID, "history_days": len(history), "predicted_days": len(predicted),
	})
	return domain.ForecastResponse{
		Historical: history,
		Predicted:  predicted,
		Summary:    resp.Summary,
	}, nil
}
