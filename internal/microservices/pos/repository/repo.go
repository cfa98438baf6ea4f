package repository

import (
	"context"
	"time"

	"coffeeos/internal/domain"
)

// OrderRepositoryInterface is the storage contract for the order lifecycle.
// Every *Tx method performs all of its writes inside one transaction; either
// all rows change or none do.
type OrderRepositoryInterface interface {
	// CreateOrderTx inserts the order with its line items and, for dine-in
	// orders, seizes the referenced table (available -> occupied) in the same
	// transaction. Returns domain.ErrInvalidState when the table is not
	// available or references another order.
	CreateOrderTx(ctx context.Context, order *domain.Order) error

	// MarkPaidTx performs the open -> paid transition: order paid with
	// paid_at set, attached table moved to cleaning with its order reference
	// cleared, one status-log row appended. Returns domain.ErrInvalidState
	// when the order is not open or the table does not reference it, and
	// domain.ErrCommitFailed when the store rejects the commit.
	MarkPaidTx(ctx context.Context, branchID, orderID, changedBy string, paidAt time.Time) (domain.Order, *domain.CafeTable, error)

	// UpdateStatusTx performs any other guarded transition. Cancelling a
	// dine-in order releases its table back to available.
	UpdateStatusTx(ctx context.Context, branchID, orderID string, to domain.OrderStatus, changedBy string) (domain.Order, *domain.CafeTable, error)

	GetOrder(ctx context.Context, branchID, orderID string) (domain.Order, error)
	ListOrders(ctx context.Context, branchID string, status domain.OrderStatus, limit int) ([]domain.Order, error)
	GetStatusLog(ctx context.Context, orderID string) ([]domain.StatusLogEntry, error)
}

type TableRepositoryInterface interface {
	CreateTable(ctx context.Context, t *domain.CafeTable) error
	GetTable(ctx context.Context, branchID, tableID string) (domain.CafeTable, error)
	ListTables(ctx context.Context, branchID string) ([]domain.CafeTable, error)

	// FinishCleaning is the housekeeping step that moves cleaning -> available.
	FinishCleaning(ctx context.Context, branchID, tableID string) (domain.CafeTable, error)
}

type MenuRepositoryInterface interface {
	ListCategories(ctx context.Context, branchID string) ([]domain.MenuCategory, error)
	CreateCategory(ctx context.Context, c *domain.MenuCategory) error
	ListItems(ctx context.Context, branchID string) ([]domain.MenuItem, error)
	GetItemsByID(ctx context.Context, branchID string, ids []string) (map[string]domain.MenuItem, error)
	CreateItem(ctx context.Context, item *domain.MenuItem) error
	SetItemAvailability(ctx context.Context, branchID, itemID string, available bool) error
}

type DirectoryRepositoryInterface interface {
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
	ListBranches(ctx context.Context, tenantID string) ([]domain.Branch, error)
	GetBranch(ctx context.Context, branchID string) (domain.Branch, error)
}
