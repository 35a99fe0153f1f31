package repositories

import (
	"context"

	"github.com/dinesight/dinesight/internal/models"
)

type RestaurantRepository interface {
	BulkCreate(ctx context.Context, restaurants []*models.Restaurant) error
	GetAll(ctx context.Context) ([]*models.Restaurant, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type MenuCategoryRepository interface {
	BulkCreate(ctx context.Context, categories []*models.MenuCategory) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type MenuItemRepository interface {
	BulkCreate(ctx context.Context, items []*models.MenuItem) error
	GetByRestaurantID(ctx context.Context, restaurantID string) ([]*models.MenuItem, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type CustomerRepository interface {
	BulkCreate(ctx context.Context, customers []*models.Customer) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type ReviewRepository interface {
	BulkCreate(ctx context.Context, reviews []*models.Review) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type CampaignRepository interface {
	BulkCreate(ctx context.Context, campaigns []*models.MarketingCampaign) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type IntegrationRepository interface {
	BulkCreate(ctx context.Context, integrations []*models.PlatformIntegration) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type MediaAssetRepository interface {
	BulkCreate(ctx context.Context, assets []*models.MediaAsset) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

// Store bundles the per-entity repositories the generator writes through.
// Injecting the bundle keeps the generator testable without a live database.
type Store struct {
	Restaurants  RestaurantRepository
	Categories   MenuCategoryRepository
	MenuItems    MenuItemRepository
	Customers    CustomerRepository
	Reviews      ReviewRepository
	Campaigns    CampaignRepository
	Integrations IntegrationRepository
	MediaAssets  MediaAssetRepository
}
