package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coffeeos/internal/domain"
)

type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, branchID, username string) (domain.User, error)
	ListUsers(ctx context.Context, branchID string) ([]domain.User, error)
}

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) CreateUser(ctx context.Context, u *domain.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, branch_id, username, password_hash, display_name, role, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6, $7)
	`, u.ID, u.BranchID, u.Username, u.PasswordHash, u.DisplayName, u.Role, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, branchID, username string) (domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, branch_id::text, username, password_hash, display_name, role, created_at
		FROM users WHERE branch_id = $1::uuid AND username = $2
	`, branchID, username).Scan(&u.ID, &u.BranchID, &u.Username, &u.PasswordHash, &u.DisplayName, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) ListUsers(ctx context.Context, branchID string) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, branch_id::text, username, password_hash, display_name, role, created_at
		FROM users WHERE branch_id = $1::uuid
		ORDER BY username ASC
	`, branchID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.BranchID, &u.Username, &u.PasswordHash, &u.DisplayName, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
