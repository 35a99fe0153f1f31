// Package memory implements the repository ports over in-process slices. It
// backs tests and the default seed run when no database is configured.
package memory

import (
	"context"
	"sync"

	"github.com/dinesight/dinesight/internal/models"
	"github.com/dinesight/dinesight/internal/repositories"
)

type table[T any] struct {
	mu   sync.RWMutex
	rows []T
}

func (t *table[T]) bulkCreate(rows []T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, rows...)
	return nil
}

func (t *table[T]) count() (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows), nil
}

func (t *table[T]) deleteAll() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = nil
	return nil
}

func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

type RestaurantRepository struct{ table[*models.Restaurant] }

func (r *RestaurantRepository) BulkCreate(_ context.Context, rows []*models.Restaurant) error {
	return r.bulkCreate(rows)
}
func (r *RestaurantRepository) GetAll(_ context.Context) ([]*models.Restaurant, error) {
	return r.all(), nil
}
func (r *RestaurantRepository) Count(_ context.Context) (int, error) { return r.count() }
func (r *RestaurantRepository) DeleteAll(_ context.Context) error    { return r.deleteAll() }

type MenuCategoryRepository struct{ table[*models.MenuCategory] }

func (r *MenuCategoryRepository) BulkCreate(_ context.Context, rows []*models.MenuCategory) error {
	return r.bulkCreate(rows)
}
func (r *MenuCategoryRepository) Count(_ context.Context) (int, error) { return r.count() }
func (r *MenuCategoryRepository) DeleteAll(_ context.Context) error    { return r.deleteAll() }
func (r *MenuCategoryRepository) All() []*models.MenuCategory          { return r.all() }

type MenuItemRepository struct{ table[*models.MenuItem] }

func (r *MenuItemRepository) BulkCreate(_ context.Context, rows []*models.MenuItem) error {
	return r.bulkCreate(rows)
}
func (r *MenuItemRepository) GetByRestaurantID(_ context.Context, restaurantID string) ([]*models.MenuItem, error) {
	var items []*models.MenuItem
	for _, item := range r.all() {
		if item.RestaurantID == restaurantID {
			items = append(items, item)
		}
	}
	return items, nil
}
func (r *MenuItemRepository) Count(_ context.Context) (int, error) { return r.count() }
func (r *MenuItemRepository) DeleteAll(_ context.Context) error    { return r.deleteAll() }
func (r *MenuItemRepository) All() []*models.MenuItem              { return r.all() }

type CustomerRepository struct{ table[*models.Customer] }

func (r *CustomerRepository) BulkCreate(_ context.Context, rows []*models.Customer) error {
	return r.bulkCreate(rows)
}
func (r *CustomerRepository) Count(_ context.Context) (int, error) { return r.count() }
func (r *CustomerRepository) DeleteAll(_ context.Context) error    { return r.deleteAll() }
func (r *CustomerRepository) All() []*models.Customer              { return r.all() }

type ReviewRepository struct{ table[*models.Review] }

func (r *ReviewRepository) BulkCreate(_ context.Context, rows []*models.Review) error {
	return r.bulkCreate(rows)
}
func (r *ReviewRepository) Count(_ context.Context) (int, error) { return r.count() }
func (r *ReviewRepository) DeleteAll(_ context.Context) error    { return r.deleteAll() }
func (r *ReviewRepository) All() []*models.Review                { return r.all() }

type CampaignRepository struct{ table[*models.MarketingCampaign] }

func (r *CampaignRepository) BulkCreate(_ context.Context, rows []*models.MarketingCampaign) error {
	return r.bulkCreate(rows)
}
func (r *CampaignRepository) Count(_ context.Context) (int, error) { return r.count() }
func (r *CampaignRepository) DeleteAll(_ context.Context) error    { return r.deleteAll() }
func (r *CampaignRepository) All() []*models.MarketingCampaign     { return r.all() }

type IntegrationRepository struct{ table[*models.PlatformIntegration] }

func (r *IntegrationRepository) BulkCreate(_ context.Context, rows []*models.PlatformIntegration) error {
	return r.bulkCreate(rows)
}
func (r *IntegrationRepository) Count(_ context.Context) (int, error) { return r.count() }
func (r *IntegrationRepository) DeleteAll(_ context.Context) error    { return r.deleteAll() }
func (r *IntegrationRepository) All() []*models.PlatformIntegration   { return r.all() }

type MediaAssetRepository struct{ table[*models.MediaAsset] }

func (r *MediaAssetRepository) BulkCreate(_ context.Context, rows []*models.MediaAsset) error {
	return r.bulkCreate(rows)
}
func (r *MediaAssetRepository) Count(_ context.Context) (int, error) { return r.count() }
func (r *MediaAssetRepository) DeleteAll(_ context.Context) error    { return r.deleteAll() }
func (r *MediaAssetRepository) All() []*models.MediaAsset            { return r.all() }

// NewStore returns an in-memory repository bundle.
func NewStore() *repositories.Store {
	return &repositories.Store{
		Restaurants:  &RestaurantRepository{},
		Categories:   &MenuCategoryRepository{},
		MenuItems:    &MenuItemRepository{},
		Customers:    &CustomerRepository{},
		Reviews:      &ReviewRepository{},
		Campaigns:    &CampaignRepository{},
		Integrations: &IntegrationRepository{},
		MediaAssets:  &MediaAssetRepository{},
	}
}
