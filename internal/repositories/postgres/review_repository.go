package postgres

import (
	"context"

	"github.com/dinesight/dinesight/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) BulkCreate(ctx context.Context, reviews []*models.Review) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, review := range reviews {
		query := `
            INSERT INTO reviews (
                id, restaurant_id, customer_id, rating, sentiment, content,
                response, is_fake, created_at
            ) VALUES (
                $1, $2, $3, $4, $5, $6, $7, $8, $9
            )
        `
		_, err = tx.Exec(ctx, query,
			review.ID,
			review.RestaurantID,
			review.CustomerID,
			review.Rating,
			review.Sentiment,
			review.Content,
			review.Response,
			review.IsFake,
			review.CreatedAt,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *ReviewRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM reviews").Scan(&count)
	return count, err
}

func (r *ReviewRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE reviews CASCADE")
	return err
}
