package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coffeeos/internal/domain"
	"coffeeos/internal/microservices/pos/repository"
)

type MenuServiceInterface interface {
	ListCategories(ctx context.Context, branchID string) ([]domain.MenuCategory, error)
	CreateCategory(ctx context.Context, branchID, name string, sortOrder int) (domain.MenuCategory, error)
	ListItems(ctx context.Context, branchID string) ([]domain.MenuItem, error)
	CreateItem(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error)
	SetItemAvailability(ctx context.Context, branchID, itemID string, available bool) error
}

type MenuService struct {
	menu repository.MenuRepositoryInterface
}

func NewMenuService(menu repository.MenuRepositoryInterface) MenuServiceInterface {
	return &MenuService{menu: menu}
}

func (s *MenuService) ListCategories(ctx context.Context, branchID string) ([]domain.MenuCategory, error) {
	if branchID == "" {
		return nil, domain.ErrMissingContext
	}
	return s.menu.ListCategories(ctx, branchID)
}

func (s *MenuService) CreateCategory(ctx context.Context, branchID, name string, sortOrder int) (domain.MenuCategory, error) {
	if branchID == "" {
		return domain.MenuCategory{}, domain.ErrMissingContext
	}
	if name == "" {
		return domain.MenuCategory{}, fmt.Errorf("category name is required: %w", domain.ErrInvalidState)
	}
	c := domain.MenuCategory{ID: uuid.NewString(), BranchID: branchID, Name: name, SortOrder: sortOrder}
	if err := s.menu.CreateCategory(ctx, &c); err != nil {
		return domain.MenuCategory{}, err
	}
	return c, nil
}

func (s *MenuService) ListItems(ctx context.Context, branchID string) ([]domain.MenuItem, error) {
	if branchID == "" {
		return nil, domain.ErrMissingContext
	}
	return s.menu.ListItems(ctx, branchID)
}

func (s *MenuService) CreateItem(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	if item.BranchID == "" {
		return domain.MenuItem{}, domain.ErrMissingContext
	}
	if item.Name == "" {
		return domain.MenuItem{}, fmt.Errorf("item name is required: %w", domain.ErrInvalidState)
	}
	if item.Price < 0 {
		return domain.MenuItem{}, fmt.Errorf("item price cannot be negative: %w", domain.ErrInvalidState)
	}

	now := time.Now().UTC()
	item.ID = uuid.NewString()
	item.Available = true
	item.CreatedAt = now
	item.UpdatedAt = now
	for i := range item.Options {
		item.Options[i].ID = uuid.NewString()
		item.Options[i].ItemID = item.ID
	}

	if err := s.menu.CreateItem(ctx, &item); err != nil {
		return domain.MenuItem{}, err
	}
	return item, nil
}

func (s *MenuService) SetItemAvailability(ctx context.Context, branchID, itemID string, available bool) error {
	if branchID == "" {
		return domain.ErrMissingContext
	}
	return s.menu.SetItemAvailability(ctx, branchID, itemID, available)
}
