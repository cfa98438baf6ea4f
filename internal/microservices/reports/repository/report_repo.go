package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"coffeeos/internal/domain"
)

type ReportRepositoryInterface interface {
	// DailySummaries aggregates paid and completed orders per calendar day
	// over the closed date range [from, to] (YYYY-MM-DD), newest first.
	DailySummaries(ctx context.Context, branchID, from, to string) ([]domain.ShiftReport, error)
}

type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) ReportRepositoryInterface {
	return &ReportRepository{pool: pool}
}

func (r *ReportRepository) DailySummaries(ctx context.Context, branchID, from, to string) ([]domain.ShiftReport, error) {
	// COALESCE: completed orders closed without a payment step carry
	// completed_at only.
	rows, err := r.pool.Query(ctx, `
		SELECT to_char(COALESCE(paid_at, completed_at)::date, 'YYYY-MM-DD') AS day,
		       COUNT(*),
		       SUM(subtotal)::float8,
		       SUM(discount)::float8,
		       SUM(tax)::float8,
		       SUM(service_charge)::float8,
		       SUM(total)::float8
		FROM orders
		WHERE branch_id = $1::uuid
		  AND status IN ('paid', 'completed')
		  AND COALESCE(paid_at, completed_at)::date BETWEEN $2::date AND $3::date
		GROUP BY day
		ORDER BY day DESC
	`, branchID, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily summaries: %w", err)
	}
	defer rows.Close()

	var out []domain.ShiftReport
	index := make(map[string]int)
	for rows.Next() {
		var rep domain.ShiftReport
		if err := rows.Scan(&rep.Date, &rep.OrderCount, &rep.Gross, &rep.Discount,
			&rep.Tax, &rep.ServiceCharge, &rep.Net); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		rep.ByOrderType = make(map[string]float64)
		index[rep.Date] = len(out)
		out = append(out, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	typeRows, err := r.pool.Query(ctx, `
		SELECT to_char(COALESCE(paid_at, completed_at)::date, 'YYYY-MM-DD') AS day, order_type, SUM(total)::float8
		FROM orders
		WHERE branch_id = $1::uuid
		  AND status IN ('paid', 'completed')
		  AND COALESCE(paid_at, completed_at)::date BETWEEN $2::date AND $3::date
		GROUP BY day, order_type
	`, branchID, from, to)
	if err != nil {
		return nil, fmt.Errorf("per-type totals: %w", err)
	}
	defer typeRows.Close()

	for typeRows.Next() {
		var day, orderType string
		var total float64
		if err := typeRows.Scan(&day, &orderType, &total); err != nil {
			return nil, fmt.Errorf("scan per-type total: %w", err)
		}
		if i, ok := index[day]; ok {
			out[i].ByOrderType[orderType] = total
		}
	}
	return out, typeRows.Err()
}
