package postgres

import (
	"context"
	"fmt"

	"github.com/dinesight/dinesight/internal/models"
	"github.com/dinesight/dinesight/internal/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewStore connects a pgx pool and wires every repository into a bundle the
// generator can write through.
func NewStore(ctx context.Context, config *models.DatabaseConfig) (*repositories.Store, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode,
	)

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return &repositories.Store{
		Restaurants:  NewRestaurantRepository(pool),
		Categories:   NewMenuCategoryRepository(pool),
		MenuItems:    NewMenuItemRepository(pool),
		Customers:    NewCustomerRepository(pool),
		Reviews:      NewReviewRepository(pool),
		Campaigns:    NewCampaignRepository(pool),
		Integrations: NewIntegrationRepository(pool),
		MediaAssets:  NewMediaAssetRepository(pool),
	}, nil
}
