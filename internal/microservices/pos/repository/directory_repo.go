package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coffeeos/internal/domain"
)

type DirectoryRepository struct {
	pool *pgxpool.Pool
}

func NewDirectoryRepository(pool *pgxpool.Pool) DirectoryRepositoryInterface {
	return &DirectoryRepository{pool: pool}
}

func (r *DirectoryRepository) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, created_at FROM tenants ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var out []domain.Tenant
	for rows.Next() {
		var t domain.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *DirectoryRepository) ListBranches(ctx context.Context, tenantID string) ([]domain.Branch, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, tenant_id::text, name, address, timezone, created_at
		FROM branches WHERE tenant_id = $1::uuid
		ORDER BY name ASC
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	var out []domain.Branch
	for rows.Next() {
		var b domain.Branch
		if err := rows.Scan(&b.ID, &b.TenantID, &b.Name, &b.Address, &b.Timezone, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *DirectoryRepository) GetBranch(ctx context.Context, branchID string) (domain.Branch, error) {
	var b domain.Branch
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, tenant_id::text, name, address, timezone, created_at
		FROM branches WHERE id = $1::uuid
	`, branchID).Scan(&b.ID, &b.TenantID, &b.Name, &b.Address, &b.Timezone, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Branch{}, fmt.Errorf("branch %s: %w", branchID, domain.ErrMissingContext)
	}
	if err != nil {
		return domain.Branch{}, fmt.Errorf("get branch: %w", err)
	}
	return b, nil
}
