package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"coffeeos/internal/connections/database"
)

// testPool connects to the database named by TEST_DATABASE_URL; without it
// the test is skipped (unit runs need no Postgres).
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, database.ApplySchema(context.Background(), pool))
	return pool
}

func seedBranch(t *testing.T, pool *pgxpool.Pool) string {
	t.Helper()
	ctx := context.Background()
	tenantID := uuid.NewString()
	branchID := uuid.NewString()
	_, err := pool.Exec(ctx, `INSERT INTO tenants (id, name) VALUES ($1::uuid, $2)`, tenantID, "Report Test "+tenantID[:8])
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO branches (id, tenant_id, name) VALUES ($1::uuid, $2::uuid, 'test')`, branchID, tenantID)
	require.NoError(t, err)
	return branchID
}

func insertClosedOrder(t *testing.T, pool *pgxpool.Pool, branchID, number, status, orderType string, total float64, paidAt, completedAt *time.Time) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO orders (id, branch_id, order_number, status, order_type, subtotal, total, paid_at, completed_at)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6, $6, $7, $8)
	`, uuid.NewString(), branchID, number, status, orderType, total, paidAt, completedAt)
	require.NoError(t, err)
}

func TestDailySummariesIncludeCompletedOrders(t *testing.T) {
	pool := testPool(t)
	branchID := seedBranch(t, pool)
	repo := NewReportRepository(pool)

	day := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	insertClosedOrder(t, pool, branchID, "ORD-20250820-001", "paid", "dine-in", 20, &day, nil)
	// Closed without a payment step: completed_at only, paid_at NULL.
	insertClosedOrder(t, pool, branchID, "ORD-20250820-002", "completed", "takeout", 10, nil, &day)
	// Still open, must not count.
	insertClosedOrder(t, pool, branchID, "ORD-20250820-003", "open", "dine-in", 99, nil, nil)

	reports, err := repo.DailySummaries(context.Background(), branchID, "2025-08-20", "2025-08-20")
	require.NoError(t, err)
	require.Len(t, reports, 1)

	rep := reports[0]
	require.Equal(t, "2025-08-20", rep.Date)
	require.Equal(t, 2, rep.OrderCount)
	require.Equal(t, 30.0, rep.Net)
	require.Equal(t, 20.0, rep.ByOrderType["dine-in"])
	require.Equal(t, 10.0, rep.ByOrderType["takeout"])
}
