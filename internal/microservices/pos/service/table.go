package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coffeeos/internal/common/events"
	"coffeeos/internal/common/logger"
	"coffeeos/internal/domain"
	"coffeeos/internal/microservices/pos/repository"
)

type TableServiceInterface interface {
	CreateTable(ctx context.Context, branchID, label string, capacity int) (domain.CafeTable, error)
	ListTables(ctx context.Context, branchID string) ([]domain.CafeTable, error)
	GetTable(ctx context.Context, branchID, tableID string) (domain.CafeTable, error)
	FinishCleaning(ctx context.Context, branchID, tableID string) (domain.CafeTable, error)
}

type TableService struct {
	tables repository.TableRepositoryInterface
	pub    events.Publisher
	lg     *logger.Logger
}

func NewTableService(tables repository.TableRepositoryInterface, pub events.Publisher, lg *logger.Logger) TableServiceInterface {
	return &TableService{tables: tables, pub: pub, lg: lg}
}

func (s *TableService) CreateTable(ctx context.Context, branchID, label string, capacity int) (domain.CafeTable, error) {
	if branchID == "" {
		return domain.CafeTable{}, domain.ErrMissingContext
	}
	if label == "" {
		return domain.CafeTable{}, fmt.Errorf("table label is required: %w", domain.ErrInvalidState)
	}
	if capacity <= 0 {
		capacity = 2
	}

	t := domain.CafeTable{
		ID:        uuid.NewString(),
		BranchID:  branchID,
		Label:     label,
		Capacity:  capacity,
		Status:    domain.TableAvailable,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.tables.CreateTable(ctx, &t); err != nil {
		return domain.CafeTable{}, err
	}
	return t, nil
}

func (s *TableService) ListTables(ctx context.Context, branchID string) ([]domain.CafeTable, error) {
	if branchID == "" {
		return nil, domain.ErrMissingContext
	}
	return s.tables.ListTables(ctx, branchID)
}

func (s *TableService) GetTable(ctx context.Context, branchID, tableID string) (domain.CafeTable, error) {
	if branchID == "" {
		return domain.CafeTable{}, domain.ErrMissingContext
	}
	return s.tables.GetTable(ctx, branchID, tableID)
}

// FinishCleaning is the housekeeping step after payment: cleaning -> available.
func (s *TableService) FinishCleaning(ctx context.Context, branchID, tableID string) (domain.CafeTable, error) {
	if branchID == "" {
		return domain.CafeTable{}, domain.ErrMissingContext
	}
	t, err := s.tables.FinishCleaning(ctx, branchID, tableID)
	if err != nil {
		return domain.CafeTable{}, err
	}
	if err := s.pub.Publish(ctx, branchID, domain.EventTableFreed, map[string]any{
		"table_id": t.ID,
		"label":    t.Label,
	}); err != nil {
		s.lg.Error("event_publish_failed", err, map[string]any{"kind": domain.EventTableFreed})
	}
	return t, nil
}
