package postgres

import (
	"context"

	"github.com/dinesight/dinesight/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuCategoryRepository struct {
	pool *pgxpool.Pool
}

func NewMenuCategoryRepository(pool *pgxpool.Pool) *MenuCategoryRepository {
	return &MenuCategoryRepository{pool: pool}
}

func (r *MenuCategoryRepository) BulkCreate(ctx context.Context, categories []*models.MenuCategory) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, category := range categories {
		query := `
            INSERT INTO menu_categories (id, restaurant_id, name, description, display_order)
            VALUES ($1, $2, $3, $4, $5)
        `
		_, err = tx.Exec(ctx, query,
			category.ID,
			category.RestaurantID,
			category.Name,
			category.Description,
			category.DisplayOrder,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *MenuCategoryRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM menu_categories").Scan(&count)
	return count, err
}

func (r *MenuCategoryRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE menu_categories CASCADE")
	return err
}

type MenuItemRepository struct {
	pool *pgxpool.Pool
}

func NewMenuItemRepository(pool *pgxpool.Pool) *MenuItemRepository {
	return &MenuItemRepository{pool: pool}
}

func (r *MenuItemRepository) BulkCreate(ctx context.Context, items []*models.MenuItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, item := range items {
		query := `
            INSERT INTO menu_items (
                id, restaurant_id, category_id, name, description, price, cost,
                is_veg, spice_level, taste_tags, pricing_status, trend, is_available
            ) VALUES (
                $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
            )
        `
		_, err = tx.Exec(ctx, query,
			item.ID,
			item.RestaurantID,
			item.CategoryID,
			item.Name,
			item.Description,
			item.Price,
			item.Cost,
			item.IsVeg,
			item.SpiceLevel,
			item.TasteTags,
			item.PricingStatus,
			item.Trend,
			item.IsAvailable,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *MenuItemRepository) GetByRestaurantID(ctx context.Context, restaurantID string) ([]*models.MenuItem, error) {
	query := `
        SELECT
            id, restaurant_id, category_id, name, description, price, cost,
            is_veg, spice_level, taste_tags, pricing_status, trend, is_available
        FROM menu_items
        WHERE restaurant_id = $1
    `
	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.MenuItem
	for rows.Next() {
		item := &models.MenuItem{}
		err := rows.Scan(
			&item.ID,
			&item.RestaurantID,
			&item.CategoryID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Cost,
			&item.IsVeg,
			&item.SpiceLevel,
			&item.TasteTags,
			&item.PricingStatus,
			&item.Trend,
			&item.IsAvailable,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *MenuItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count)
	return count, err
}

func (r *MenuItemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE menu_items CASCADE")
	return err
}
