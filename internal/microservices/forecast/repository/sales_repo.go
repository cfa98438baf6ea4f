package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"coffeeos/internal/domain"
)

type SalesRepositoryInterface interface {
	// DailySales returns one row per calendar day with the summed totals of
	// paid and completed orders, oldest first.
	DailySales(ctx context.Context, branchID string, days int) ([]domain.HistoricalSale, error)
}

type SalesRepository struct {
	pool *pgxpool.Pool
}

func NewSalesRepository(pool *pgxpool.Pool) SalesRepositoryInterface {
	return &SalesRepository{pool: pool}
}

func (r *SalesRepository) DailySales(ctx context.Context, branchID string, days int) ([]domain.HistoricalSale, error) {
	// Orders closed without a payment step carry completed_at only, so the
	// revenue day is whichever of the two timestamps the order got.
	rows, err := r.pool.Query(ctx, `
		SELECT to_char(COALESCE(paid_at, completed_at)::date, 'YYYY-MM-DD') AS day, SUM(total)::float8
		FROM orders
		WHERE branch_id = $1::uuid
		  AND status IN ('paid', 'completed')
		  AND COALESCE(paid_at, completed_at) >= now() - make_interval(days => $2)
		GROUP BY day
		ORDER BY day ASC
	`, branchID, days)
	if err != nil {
		return nil, fmt.Errorf("daily sales: %w", err)
	}
	defer rows.Close()

	var out []domain.HistoricalSale
	for rows.Next() {
		var h domain.HistoricalSale
		if err := rows.Scan(&h.Date, &h.Sales); err != nil {
			return nil, fmt.Errorf("scan daily sales: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
