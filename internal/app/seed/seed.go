package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"coffeeos/internal/common/logger"
)

const tenantName = "Demo Coffee Co."

// Run populates a demo tenant with a branch, staff, menu, tables and two
// weeks of paid orders so reports and the forecast endpoint have history.
// Running it twice is a no-op.
func Run(ctx context.Context, pool *pgxpool.Pool, lg *logger.Logger) error {
	var existing string
	err := pool.QueryRow(ctx, `SELECT id::text FROM tenants WHERE name = $1`, tenantName).Scan(&existing)
	if err == nil {
		lg.Info("seed_skipped", map[string]any{"tenant_id": existing})
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check tenant: %w", err)
	}

	now := time.Now().UTC()
	tenantID := uuid.NewString()
	branchID := uuid.NewString()

	if _, err := pool.Exec(ctx, `
		INSERT INTO tenants (id, name, created_at) VALUES ($1::uuid, $2, $3)
	`, tenantID, tenantName, now); err != nil {
		return fmt.Errorf("seed tenant: %w", err)
	}
	if _, err := pool.Exec(ctx, `
		INSERT INTO branches (id, tenant_id, name, address, timezone, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6)
	`, branchID, tenantID, "Riverside", "12 Quay Street", "UTC", now); err != nil {
		return fmt.Errorf("seed branch: %w", err)
	}

	users := []struct{ username, password, name, role string }{
		{"admin", "admin123", "Branch Admin", "admin"},
		{"cashier1", "cashier123", "Front Counter", "cashier"},
		{"waiter1", "waiter123", "Floor Staff", "waiter"},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		if _, err := pool.Exec(ctx, `
			INSERT INTO users (id, branch_id, username, password_hash, display_name, role, created_at)
			VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6, $7)
		`, uuid.NewString(), branchID, u.username, string(hash), u.name, u.role, now); err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
	}

	categoryID := uuid.NewString()
	if _, err := pool.Exec(ctx, `
		INSERT INTO menu_categories (id, branch_id, name, sort_order)
		VALUES ($1::uuid, $2::uuid, $3, $4)
	`, categoryID, branchID, "Coffee", 1); err != nil {
		return fmt.Errorf("seed category: %w", err)
	}

	type seedItem struct {
		name  string
		price float64
		opts  map[string]float64
	}
	items := []seedItem{
		{"Espresso", 2.50, nil},
		{"Americano", 3.00, map[string]float64{"Extra shot": 0.80}},
		{"Flat White", 3.80, map[string]float64{"Oat milk": 0.50, "Extra shot": 0.80}},
		{"Latte", 4.00, map[string]float64{"Oat milk": 0.50, "Vanilla syrup": 0.40}},
		{"Cappuccino", 3.90, map[string]float64{"Oat milk": 0.50}},
		{"Mocha", 4.40, nil},
		{"Croissant", 2.80, nil},
		{"Banana Bread", 3.20, nil},
	}
	itemPrices := make([]float64, 0, len(items))
	for _, it := range items {
		itemID := uuid.NewString()
		if _, err := pool.Exec(ctx, `
			INSERT INTO menu_items (id, branch_id, category_id, name, price, available, created_at, updated_at)
			VALUES ($1::uuid, $2::uuid, $3::uuid, $4, $5, TRUE, $6, $6)
		`, itemID, branchID, categoryID, it.name, it.price, now); err != nil {
			return fmt.Errorf("seed item %s: %w", it.name, err)
		}
		for name, delta := range it.opts {
			if _, err := pool.Exec(ctx, `
				INSERT INTO menu_item_options (id, item_id, name, price_delta)
				VALUES ($1::uuid, $2::uuid, $3, $4)
			`, uuid.NewString(), itemID, name, delta); err != nil {
				return fmt.Errorf("seed option %s: %w", name, err)
			}
		}
		itemPrices = append(itemPrices, it.price)
	}

	for i := 1; i <= 8; i++ {
		if _, err := pool.Exec(ctx, `
			INSERT INTO cafe_tables (id, branch_id, label, capacity, status, updated_at)
			VALUES ($1::uuid, $2::uuid, $3, $4, 'available', $5)
		`, uuid.NewString(), branchID, fmt.Sprintf("T%d", i), 2+rand.Intn(4), now); err != nil {
			return fmt.Errorf("seed table: %w", err)
		}
	}

	// Two weeks of paid history, a handful of orders per day.
	for day := 14; day >= 1; day-- {
		date := now.AddDate(0, 0, -day)
		orders := 4 + rand.Intn(5)
		for n := 1; n <= orders; n++ {
			subtotal := 0.0
			lines := 1 + rand.Intn(3)
			for l := 0; l < lines; l++ {
				qty := 1 + rand.Intn(2)
				subtotal += float64(qty) * itemPrices[rand.Intn(len(itemPrices))]
			}
			tax := subtotal * 0.08
			total := subtotal + tax
			paidAt := date.Add(time.Duration(8+rand.Intn(10)) * time.Hour)

			if _, err := pool.Exec(ctx, `
				INSERT INTO orders
					(id, branch_id, order_number, status, order_type, created_by,
					 subtotal, discount, tax, service_charge, total, paid_at, created_at, updated_at)
				VALUES ($1::uuid, $2::uuid, $3, 'paid', $4, 'seed',
					 $5, 0, $6, 0, $7, $8, $8, $8)
			`, uuid.NewString(), branchID,
				fmt.Sprintf("ORD-%s-%03d", date.Format("20060102"), n),
				[]string{"dine-in", "takeout", "delivery"}[rand.Intn(3)],
				subtotal, tax, total, paidAt); err != nil {
				return fmt.Errorf("seed order: %w", err)
			}
		}
	}

	lg.Info("seed_finished", map[string]any{"tenant_id": tenantID, "branch_id": branchID})
	return nil
}
