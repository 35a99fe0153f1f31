package postgres

import (
	"context"

	"github.com/dinesight/dinesight/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) BulkCreate(ctx context.Context, customers []*models.Customer) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, customer := range customers {
		query := `
            INSERT INTO customers (
                id, restaurant_id, name, email, phone, persona, age, avg_spend,
                visit_frequency, preferred_channel, churn_risk, joined_at
            ) VALUES (
                $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
            )
        `
		_, err = tx.Exec(ctx, query,
			customer.ID,
			customer.RestaurantID,
			customer.Name,
			customer.Email,
			customer.Phone,
			customer.Persona,
			customer.Age,
			customer.AvgSpend,
			customer.VisitFrequency,
			customer.PreferredChannel,
			customer.ChurnRisk,
			customer.JoinedAt,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&count)
	return count, err
}

func (r *CustomerRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE customers CASCADE")
	return err
}
