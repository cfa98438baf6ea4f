package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"coffeeos/internal/domain"
)

type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) MenuRepositoryInterface {
	return &MenuRepository{pool: pool}
}

func (r *MenuRepository) ListCategories(ctx context.Context, branchID string) ([]domain.MenuCategory, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, branch_id::text, name, sort_order
		FROM menu_categories WHERE branch_id = $1::uuid
		ORDER BY sort_order ASC, name ASC
	`, branchID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []domain.MenuCategory
	for rows.Next() {
		var c domain.MenuCategory
		if err := rows.Scan(&c.ID, &c.BranchID, &c.Name, &c.SortOrder); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *MenuRepository) CreateCategory(ctx context.Context, c *domain.MenuCategory) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO menu_categories (id, branch_id, name, sort_order)
		VALUES ($1::uuid, $2::uuid, $3, $4)
	`, c.ID, c.BranchID, c.Name, c.SortOrder)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *MenuRepository) ListItems(ctx context.Context, branchID string) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, branch_id::text, COALESCE(category_id::text, ''), name, description,
		       price, available, created_at, updated_at
		FROM menu_items WHERE branch_id = $1::uuid
		ORDER BY name ASC
	`, branchID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var out []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.BranchID, &item.CategoryID, &item.Name,
			&item.Description, &item.Price, &item.Available, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachOptions(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MenuRepository) GetItemsByID(ctx context.Context, branchID string, ids []string) (map[string]domain.MenuItem, error) {
	// Request bodies can carry arbitrary item ids; anything that cannot be a
	// uuid cannot be a stored item, so it is simply absent from the result
	// rather than a failed array cast.
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return map[string]domain.MenuItem{}, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id::text, branch_id::text, COALESCE(category_id::text, ''), name, description,
		       price, available, created_at, updated_at
		FROM menu_items WHERE branch_id = $1::uuid AND id = ANY($2::uuid[])
	`, branchID, valid)
	if err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0, len(ids))
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.BranchID, &item.CategoryID, &item.Name,
			&item.Description, &item.Price, &item.Available, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachOptions(ctx, items); err != nil {
		return nil, err
	}

	out := make(map[string]domain.MenuItem, len(items))
	for _, item := range items {
		out[item.ID] = item
	}
	return out, nil
}

func (r *MenuRepository) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var categoryID any
	if item.CategoryID != "" {
		categoryID = item.CategoryID
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO menu_items (id, branch_id, category_id, name, description, price, available, created_at, updated_at)
		VALUES ($1::uuid, $2::uuid, $3::uuid, $4, $5, $6, $7, $8, $8)
	`, item.ID, item.BranchID, categoryID, item.Name, item.Description, item.Price, item.Available, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	for _, opt := range item.Options {
		_, err = tx.Exec(ctx, `
			INSERT INTO menu_item_options (id, item_id, name, price_delta)
			VALUES ($1::uuid, $2::uuid, $3, $4)
		`, opt.ID, item.ID, opt.Name, opt.PriceDelta)
		if err != nil {
			return fmt.Errorf("insert option %s: %w", opt.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCommitFailed, err)
	}
	return nil
}

func (r *MenuRepository) SetItemAvailability(ctx context.Context, branchID, itemID string, available bool) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE menu_items SET available = $3, updated_at = now()
		WHERE id = $1::uuid AND branch_id = $2::uuid
	`, itemID, branchID, available)
	if err != nil {
		return fmt.Errorf("set availability: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}

func (r *MenuRepository) attachOptions(ctx context.Context, items []domain.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]string, 0, len(items))
	index := make(map[string]int, len(items))
	for i, item := range items {
		ids = append(ids, item.ID)
		index[item.ID] = i
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id::text, item_id::text, name, price_delta
		FROM menu_item_options WHERE item_id = ANY($1::uuid[])
		ORDER BY name ASC
	`, ids)
	if err != nil {
		return fmt.Errorf("list options: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var opt domain.MenuItemOption
		if err := rows.Scan(&opt.ID, &opt.ItemID, &opt.Name, &opt.PriceDelta); err != nil {
			return fmt.Errorf("scan option: %w", err)
		}
		if i, ok := index[opt.ItemID]; ok {
			items[i].Options = append(items[i].Options, opt)
		}
	}
	return rows.Err()
}
