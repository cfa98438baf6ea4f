package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coffeeos/internal/domain"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) OrderRepositoryInterface {
	return &OrderRepository{pool: pool}
}

const orderColumns = `id::text, branch_id::text, order_number, status, order_type, table_id::text,
	created_by, subtotal, discount, tax, service_charge, total, paid_at, completed_at, created_at, updated_at`

const tableColumns = `id::text, branch_id::text, label, capacity, status, current_order_id::text, updated_at`

func (r *OrderRepository) CreateOrderTx(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Dine-in orders seize their table inside the same transaction, so a
	// created order and an occupied table appear together or not at all.
	if order.TableID != nil {
		if _, err := uuid.Parse(*order.TableID); err != nil {
			return fmt.Errorf("table %s: %w", *order.TableID, domain.ErrNotFound)
		}
		var status string
		var currentOrder *string
		err := tx.QueryRow(ctx, `
			SELECT status, current_order_id::text FROM cafe_tables
			WHERE id = $1::uuid AND branch_id = $2::uuid
			FOR UPDATE
		`, *order.TableID, order.BranchID).Scan(&status, &currentOrder)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("table %s: %w", *order.TableID, domain.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("lock table: %w", err)
		}
		if domain.TableStatus(status) != domain.TableAvailable || currentOrder != nil {
			return fmt.Errorf("table %s is %s: %w", *order.TableID, status, domain.ErrInvalidState)
		}
	}

	var seq int
	if err := tx.QueryRow(ctx, `
		SELECT COUNT(*) + 1 FROM orders
		WHERE branch_id = $1::uuid AND created_at::date = now()::date
	`, order.BranchID).Scan(&seq); err != nil {
		return fmt.Errorf("order sequence: %w", err)
	}
	order.OrderNumber = fmt.Sprintf("ORD-%s-%03d", order.CreatedAt.UTC().Format("20060102"), seq)

	_, err = tx.Exec(ctx, `
		INSERT INTO orders
			(id, branch_id, order_number, status, order_type, table_id, created_by,
			 subtotal, discount, tax, service_charge, total, created_at, updated_at)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6::uuid, $7, $8, $9, $10, $11, $12, $13, $13)
	`, order.ID, order.BranchID, order.OrderNumber, string(order.Status), string(order.Type),
		order.TableID, order.CreatedBy, order.Subtotal, order.Discount, order.Tax,
		order.ServiceCharge, order.Total, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range order.Items {
		opts, err := json.Marshal(item.Options)
		if err != nil {
			return fmt.Errorf("marshal options: %w", err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, menu_item_id, name, unit_price, quantity, options, subtotal)
			VALUES ($1::uuid, $2::uuid, $3::uuid, $4, $5, $6, $7, $8)
		`, item.ID, order.ID, item.MenuItemID, item.Name, item.UnitPrice, item.Quantity, opts, item.Subtotal)
		if err != nil {
			return fmt.Errorf("insert order item %s: %w", item.Name, err)
		}
	}

	if order.TableID != nil {
		_, err = tx.Exec(ctx, `
			UPDATE cafe_tables SET status = $3, current_order_id = $2::uuid, updated_at = $4
			WHERE id = $1::uuid
		`, *order.TableID, order.ID, string(domain.TableOccupied), order.CreatedAt)
		if err != nil {
			return fmt.Errorf("occupy table: %w", err)
		}
	}

	if err := appendStatusLog(ctx, tx, order.ID, order.Status, order.CreatedBy, order.CreatedAt); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCommitFailed, err)
	}
	return nil
}

func (r *OrderRepository) MarkPaidTx(ctx context.Context, branchID, orderID, changedBy string, paidAt time.Time) (domain.Order, *domain.CafeTable, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Order{}, nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Lock order first, then its table; every writer takes locks in this
	// order.
	var status string
	var tableID *string
	err = tx.QueryRow(ctx, `
		SELECT status, table_id::text FROM orders
		WHERE id = $1::uuid AND branch_id = $2::uuid
		FOR UPDATE
	`, orderID, branchID).Scan(&status, &tableID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, nil, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Order{}, nil, fmt.Errorf("lock order: %w", err)
	}

	if domain.OrderStatus(status) != domain.StatusOpen {
		return domain.Order{}, nil, fmt.Errorf("order %s is %s, not open: %w", orderID, status, domain.ErrInvalidState)
	}

	var table *domain.CafeTable
	if tableID != nil {
		var currentOrder *string
		err = tx.QueryRow(ctx, `
			SELECT current_order_id::text FROM cafe_tables WHERE id = $1::uuid FOR UPDATE
		`, *tableID).Scan(&currentOrder)
		if err != nil {
			return domain.Order{}, nil, fmt.Errorf("lock table: %w", err)
		}
		if currentOrder == nil || *currentOrder != orderID {
			return domain.Order{}, nil, fmt.Errorf("table %s does not reference order %s: %w", *tableID, orderID, domain.ErrInvalidState)
		}

		var t domain.CafeTable
		err = tx.QueryRow(ctx, `
			UPDATE cafe_tables SET status = $2, current_order_id = NULL, updated_at = $3
			WHERE id = $1::uuid
			RETURNING `+tableColumns+`
		`, *tableID, string(domain.TableCleaning), paidAt).Scan(
			&t.ID, &t.BranchID, &t.Label, &t.Capacity, &t.Status, &t.CurrentOrderID, &t.UpdatedAt)
		if err != nil {
			return domain.Order{}, nil, fmt.Errorf("release table: %w", err)
		}
		table = &t
	}

	var order domain.Order
	err = tx.QueryRow(ctx, `
		UPDATE orders SET status = $3, paid_at = $4, updated_at = $4
		WHERE id = $1::uuid AND branch_id = $2::uuid
		RETURNING `+orderColumns+`
	`, orderID, branchID, string(domain.StatusPaid), paidAt).Scan(scanOrderDest(&order)...)
	if err != nil {
		return domain.Order{}, nil, fmt.Errorf("mark paid: %w", err)
	}

	if err := appendStatusLog(ctx, tx, orderID, domain.StatusPaid, changedBy, paidAt); err != nil {
		return domain.Order{}, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Order{}, nil, fmt.Errorf("%w: %v", domain.ErrCommitFailed, err)
	}
	return order, table, nil
}

func (r *OrderRepository) UpdateStatusTx(ctx context.Context, branchID, orderID string, to domain.OrderStatus, changedBy string) (domain.Order, *domain.CafeTable, error) {
	// Payment has its own path with table side effects; it never goes
	// through the generic transition.
	if to == domain.StatusPaid {
		return domain.Order{}, nil, fmt.Errorf("use the payment operation to reach paid: %w", domain.ErrInvalidState)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Order{}, nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var status string
	var tableID *string
	err = tx.QueryRow(ctx, `
		SELECT status, table_id::text FROM orders
		WHERE id = $1::uuid AND branch_id = $2::uuid
		FOR UPDATE
	`, orderID, branchID).Scan(&status, &tableID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, nil, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Order{}, nil, fmt.Errorf("lock order: %w", err)
	}

	from := domain.OrderStatus(status)
	if !domain.CanTransition(from, to) {
		return domain.Order{}, nil, fmt.Errorf("transition %s -> %s: %w", from, to, domain.ErrInvalidState)
	}

	now := time.Now().UTC()

	// A cancelled dine-in order never dirtied the table, so it goes straight
	// back to available.
	var table *domain.CafeTable
	if to == domain.StatusCancelled && tableID != nil {
		var t domain.CafeTable
		err = tx.QueryRow(ctx, `
			UPDATE cafe_tables SET status = $2, current_order_id = NULL, updated_at = $3
			WHERE id = $1::uuid AND current_order_id = $4::uuid
			RETURNING `+tableColumns+`
		`, *tableID, string(domain.TableAvailable), now, orderID).Scan(
			&t.ID, &t.BranchID, &t.Label, &t.Capacity, &t.Status, &t.CurrentOrderID, &t.UpdatedAt)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, nil, fmt.Errorf("free table: %w", err)
		}
		if err == nil {
			table = &t
		}
	}

	var order domain.Order
	err = tx.QueryRow(ctx, `
		UPDATE orders SET status = $3,
			completed_at = CASE WHEN $3 = 'completed' THEN $4 ELSE completed_at END,
			updated_at = $4
		WHERE id = $1::uuid AND branch_id = $2::uuid
		RETURNING `+orderColumns+`
	`, orderID, branchID, string(to), now).Scan(scanOrderDest(&order)...)
	if err != nil {
		return domain.Order{}, nil, fmt.Errorf("update status: %w", err)
	}

	if err := appendStatusLog(ctx, tx, orderID, to, changedBy, now); err != nil {
		return domain.Order{}, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Order{}, nil, fmt.Errorf("%w: %v", domain.ErrCommitFailed, err)
	}
	return order, table, nil
}

func (r *OrderRepository) GetOrder(ctx context.Context, branchID, orderID string) (domain.Order, error) {
	var order domain.Order
	err := r.pool.QueryRow(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE id = $1::uuid AND branch_id = $2::uuid
	`, orderID, branchID).Scan(scanOrderDest(&order)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order: %w", err)
	}

	items, err := r.listItems(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = items
	return order, nil
}

func (r *OrderRepository) ListOrders(ctx context.Context, branchID string, status domain.OrderStatus, limit int) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE branch_id = $1::uuid`
	args := []any{branchID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, string(status))
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d`, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(scanOrderDest(&order)...); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, order)
	}
	return out, rows.Err()
}

func (r *OrderRepository) GetStatusLog(ctx context.Context, orderID string) ([]domain.StatusLogEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, order_id::text, status, changed_by, changed_at
		FROM order_status_log WHERE order_id = $1::uuid
		ORDER BY changed_at ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("status log: %w", err)
	}
	defer rows.Close()

	var out []domain.StatusLogEntry
	for rows.Next() {
		var e domain.StatusLogEntry
		var status string
		if err := rows.Scan(&e.ID, &e.OrderID, &status, &e.ChangedBy, &e.ChangedAt); err != nil {
			return nil, fmt.Errorf("scan log entry: %w", err)
		}
		e.Status = domain.OrderStatus(status)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *OrderRepository) listItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, order_id::text, menu_item_id::text, name, unit_price, quantity, options, subtotal
		FROM order_items WHERE order_id = $1::uuid
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var out []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		var opts []byte
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Name,
			&item.UnitPrice, &item.Quantity, &opts, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if len(opts) > 0 {
			if err := json.Unmarshal(opts, &item.Options); err != nil {
				return nil, fmt.Errorf("decode item options: %w", err)
			}
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func scanOrderDest(o *domain.Order) []any {
	return []any{
		&o.ID, &o.BranchID, &o.OrderNumber, &o.Status, &o.Type, &o.TableID,
		&o.CreatedBy, &o.Subtotal, &o.Discount, &o.Tax, &o.ServiceCharge, &o.Total,
		&o.PaidAt, &o.CompletedAt, &o.CreatedAt, &o.UpdatedAt,
	}
}

func appendStatusLog(ctx context.Context, tx pgx.Tx, orderID string, status domain.OrderStatus, changedBy string, at time.Time) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO order_status_log (order_id, status, changed_by, changed_at)
		VALUES ($1::uuid, $2, $3, $4)
	`, orderID, string(status), changedBy, at)
	if err != nil {
		return fmt.Errorf("append status log: %w", err)
	}
	return nil
}
