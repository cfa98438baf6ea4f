package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coffeeos/internal/domain"
)

type TableRepository struct {
	pool *pgxpool.Pool
}

func NewTableRepository(pool *pgxpool.Pool) TableRepositoryInterface {
	return &TableRepository{pool: pool}
}

func (r *TableRepository) CreateTable(ctx context.Context, t *domain.CafeTable) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO cafe_tables (id, branch_id, label, capacity, status, updated_at)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6)
	`, t.ID, t.BranchID, t.Label, t.Capacity, string(t.Status), t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert table: %w", err)
	}
	return nil
}

func (r *TableRepository) GetTable(ctx context.Context, branchID, tableID string) (domain.CafeTable, error) {
	var t domain.CafeTable
	err := r.pool.QueryRow(ctx, `
		SELECT `+tableColumns+` FROM cafe_tables
		WHERE id = $1::uuid AND branch_id = $2::uuid
	`, tableID, branchID).Scan(&t.ID, &t.BranchID, &t.Label, &t.Capacity, &t.Status, &t.CurrentOrderID, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CafeTable{}, fmt.Errorf("table %s: %w", tableID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.CafeTable{}, fmt.Errorf("get table: %w", err)
	}
	return t, nil
}

func (r *TableRepository) ListTables(ctx context.Context, branchID string) ([]domain.CafeTable, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+tableColumns+` FROM cafe_tables
		WHERE branch_id = $1::uuid
		ORDER BY label ASC
	`, branchID)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var out []domain.CafeTable
	for rows.Next() {
		var t domain.CafeTable
		if err := rows.Scan(&t.ID, &t.BranchID, &t.Label, &t.Capacity, &t.Status, &t.CurrentOrderID, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TableRepository) FinishCleaning(ctx context.Context, branchID, tableID string) (domain.CafeTable, error) {
	var t domain.CafeTable
	err := r.pool.QueryRow(ctx, `
		UPDATE cafe_tables SET status = $3, updated_at = $4
		WHERE id = $1::uuid AND branch_id = $2::uuid AND status = $5
		RETURNING `+tableColumns+`
	`, tableID, branchID, string(domain.TableAvailable), time.Now().UTC(), string(domain.TableCleaning)).Scan(
		&t.ID, &t.BranchID, &t.Label, &t.Capacity, &t.Status, &t.CurrentOrderID, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CafeTable{}, fmt.Errorf("table %s is not in cleaning: %w", tableID, domain.ErrInvalidState)
	}
	if err != nil {
		return domain.CafeTable{}, fmt.Errorf("finish cleaning: %w", err)
	}
	return t, nil
}
