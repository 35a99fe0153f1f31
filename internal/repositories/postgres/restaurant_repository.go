package postgres

import (
	"context"
	"encoding/json"

	"github.com/dinesight/dinesight/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

func (r *RestaurantRepository) BulkCreate(ctx context.Context, restaurants []*models.Restaurant) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, restaurant := range restaurants {
		hours, err := json.Marshal(restaurant.OperatingHours)
		if err != nil {
			return err
		}
		handles, err := json.Marshal(restaurant.SocialHandles)
		if err != nil {
			return err
		}

		query := `
            INSERT INTO restaurants (
                id, name, slug_name, cuisine, description, price_band, phone,
                email, website, address_line, city, latitude, longitude,
                operating_hours, social_handles, tags, amenities, avg_rating,
                total_reviews, monthly_orders, is_active, created_at
            ) VALUES (
                $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
                $14, $15, $16, $17, $18, $19, $20, $21, $22
            )
        `

		_, err = tx.Exec(ctx, query,
			restaurant.ID,
			restaurant.Name,
			restaurant.SlugName,
			restaurant.Cuisine,
			restaurant.Description,
			restaurant.PriceBand,
			restaurant.Phone,
			restaurant.Email,
			restaurant.Website,
			restaurant.AddressLine,
			restaurant.City,
			restaurant.Latitude,
			restaurant.Longitude,
			hours,
			handles,
			restaurant.Tags,
			restaurant.Amenities,
			restaurant.AvgRating,
			restaurant.TotalReviews,
			restaurant.MonthlyOrders,
			restaurant.IsActive,
			restaurant.CreatedAt,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *RestaurantRepository) GetAll(ctx context.Context) ([]*models.Restaurant, error) {
	query := `
        SELECT
            id, name, slug_name, cuisine, description, price_band, phone,
            email, website, address_line, city, latitude, longitude,
            operating_hours, social_handles, tags, amenities, avg_rating,
            total_reviews, monthly_orders, is_active, created_at
        FROM restaurants
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*models.Restaurant
	for rows.Next() {
		var hours, handles []byte
		restaurant := &models.Restaurant{}
		err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.SlugName,
			&restaurant.Cuisine,
			&restaurant.Description,
			&restaurant.PriceBand,
			&restaurant.Phone,
			&restaurant.Email,
			&restaurant.Website,
			&restaurant.AddressLine,
			&restaurant.City,
			&restaurant.Latitude,
			&restaurant.Longitude,
			&hours,
			&handles,
			&restaurant.Tags,
			&restaurant.Amenities,
			&restaurant.AvgRating,
			&restaurant.TotalReviews,
			&restaurant.MonthlyOrders,
			&restaurant.IsActive,
			&restaurant.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(hours, &restaurant.OperatingHours); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(handles, &restaurant.SocialHandles); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, rows.Err()
}

func (r *RestaurantRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM restaurants").Scan(&count)
	return count, err
}

func (r *RestaurantRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE restaurants CASCADE")
	return err
}
