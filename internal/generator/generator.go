// Package generator expands the static archetype catalog into a consistent
// synthetic dataset: restaurants, menus, customers, reviews, campaigns,
// platform integrations and media, written through the repository ports.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/dinesight/dinesight/internal/catalog"
	"github.com/dinesight/dinesight/internal/factories"
	"github.com/dinesight/dinesight/internal/models"
	"github.com/dinesight/dinesight/internal/repositories"
	"github.com/dinesight/dinesight/internal/rng"
	"github.com/schollz/progressbar/v3"
)

type Generator struct {
	store    *repositories.Store
	rng      *rng.Rand
	output   OutputDestination // optional entity event stream
	exporter *ParquetExporter  // optional dataset export
	progress bool
}

type Option func(*Generator)

func WithOutput(output OutputDestination) Option {
	return func(g *Generator) { g.output = output }
}

func WithParquetExport(exporter *ParquetExporter) Option {
	return func(g *Generator) { g.exporter = exporter }
}

func WithProgress() Option {
	return func(g *Generator) { g.progress = true }
}

func New(store *repositories.Store, seed int64, opts ...Option) *Generator {
	factories.SeedFaker(seed)
	g := &Generator{
		store: store,
		rng:   rng.New(seed),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateAll wipes every mock table and regenerates the full dataset.
// Restaurant templates are selected positionally; asking for more restaurants
// than the catalog holds caps at the catalog size, and restaurantCount <= 0
// yields a zero-filled summary. Any insert failure aborts the whole run;
// the wipe in step one makes a rerun safe.
func (g *Generator) GenerateAll(ctx context.Context, restaurantCount int, includeMedia bool) (*models.GenerationSummary, error) {
	start := time.Now()
	summary := &models.GenerationSummary{}

	if err := g.wipe(ctx); err != nil {
		return nil, fmt.Errorf("wiping previous mock data: %w", err)
	}

	if restaurantCount > len(catalog.RestaurantArchetypes) {
		restaurantCount = len(catalog.RestaurantArchetypes)
	}
	if restaurantCount <= 0 {
		summary.GenerationTimeMs = time.Since(start).Milliseconds()
		return summary, nil
	}

	restaurantFactory := &factories.RestaurantFactory{}
	menuFactory := &factories.MenuFactory{}
	customerFactory := &factories.CustomerFactory{}
	reviewFactory := &factories.ReviewFactory{}
	campaignFactory := &factories.CampaignFactory{}
	integrationFactory := &factories.IntegrationFactory{}
	mediaFactory := &factories.MediaFactory{}

	var bar *progressbar.ProgressBar
	if g.progress {
		bar = progressbar.Default(int64(restaurantCount), "seeding restaurants")
	}

	var dataset exportDataset

	for i := 0; i < restaurantCount; i++ {
		restaurant := restaurantFactory.CreateRestaurant(catalog.RestaurantArchetypes[i], g.rng)
		if err := g.store.Restaurants.BulkCreate(ctx, []*models.Restaurant{restaurant}); err != nil {
			return nil, fmt.Errorf("inserting restaurant %q: %w", restaurant.Name, err)
		}
		if err := g.emit("restaurants", restaurant); err != nil {
			return nil, err
		}
		summary.Restaurants++
		dataset.restaurants = append(dataset.restaurants, restaurant)

		categories, items := menuFactory.CreateMenu(restaurant, g.rng)
		if err := g.store.Categories.BulkCreate(ctx, ptrs(categories)); err != nil {
			return nil, fmt.Errorf("inserting menu categories for %q: %w", restaurant.Name, err)
		}
		if err := g.store.MenuItems.BulkCreate(ctx, ptrs(items)); err != nil {
			return nil, fmt.Errorf("inserting menu items for %q: %w", restaurant.Name, err)
		}
		for idx := range items {
			if err := g.emit("menu_items", &items[idx]); err != nil {
				return nil, err
			}
			dataset.menuItems = append(dataset.menuItems, &items[idx])
		}
		summary.TotalMenuItems += len(items)

		customers := customerFactory.CreateCustomers(restaurant, g.rng)
		if err := g.store.Customers.BulkCreate(ctx, customers); err != nil {
			return nil, fmt.Errorf("inserting customers for %q: %w", restaurant.Name, err)
		}
		for _, customer := range customers {
			if err := g.emit("customers", customer); err != nil {
				return nil, err
			}
		}
		summary.TotalCustomers += len(customers)
		dataset.customers = append(dataset.customers, customers...)

		reviews := reviewFactory.CreateReviews(restaurant, customers, g.rng)
		if err := g.store.Reviews.BulkCreate(ctx, reviews); err != nil {
			return nil, fmt.Errorf("inserting reviews for %q: %w", restaurant.Name, err)
		}
		for _, review := range reviews {
			if err := g.emit("reviews", review); err != nil {
				return nil, err
			}
		}
		summary.TotalReviews += len(reviews)
		dataset.reviews = append(dataset.reviews, reviews...)

		campaigns := campaignFactory.CreateCampaigns(restaurant)
		if err := g.store.Campaigns.BulkCreate(ctx, campaigns); err != nil {
			return nil, fmt.Errorf("inserting campaigns for %q: %w", restaurant.Name, err)
		}
		for _, campaign := range campaigns {
			if err := g.emit("campaigns", campaign); err != nil {
				return nil, err
			}
		}
		summary.TotalCampaigns += len(campaigns)

		integrations := integrationFactory.CreateIntegrations(restaurant, g.rng)
		if err := g.store.Integrations.BulkCreate(ctx, integrations); err != nil {
			return nil, fmt.Errorf("inserting integrations for %q: %w", restaurant.Name, err)
		}
		for _, integration := range integrations {
			if err := g.emit("integrations", integration); err != nil {
				return nil, err
			}
		}
		summary.TotalIntegrations += len(integrations)

		if includeMedia {
			assets := mediaFactory.CreateMediaAssets(restaurant, g.rng)
			if err := g.store.MediaAssets.BulkCreate(ctx, assets); err != nil {
				return nil, fmt.Errorf("inserting media assets for %q: %w", restaurant.Name, err)
			}
			for _, asset := range assets {
				if err := g.emit("media_assets", asset); err != nil {
					return nil, err
				}
			}
			summary.TotalMediaAssets += len(assets)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if g.exporter != nil {
		if err := g.exporter.Export(&dataset); err != nil {
			return nil, fmt.Errorf("exporting parquet datasets: %w", err)
		}
	}

	summary.GenerationTimeMs = time.Since(start).Milliseconds()
	log.Printf("seeded %d restaurants, %d menu items, %d customers, %d reviews in %dms",
		summary.Restaurants, summary.TotalMenuItems, summary.TotalCustomers, summary.TotalReviews, summary.GenerationTimeMs)
	return summary, nil
}

// wipe clears every mock table, children before parents.
func (g *Generator) wipe(ctx context.Context) error {
	steps := []func(context.Context) error{
		g.store.MediaAssets.DeleteAll,
		g.store.Integrations.DeleteAll,
		g.store.Campaigns.DeleteAll,
		g.store.Reviews.DeleteAll,
		g.store.Customers.DeleteAll,
		g.store.MenuItems.DeleteAll,
		g.store.Categories.DeleteAll,
		g.store.Restaurants.DeleteAll,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) emit(topic string, entity any) error {
	if g.output == nil {
		return nil
	}
	msg, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("serializing %s event: %w", topic, err)
	}
	if err := g.output.WriteMessage(topic, msg); err != nil {
		return fmt.Errorf("writing %s event: %w", topic, err)
	}
	return nil
}

func ptrs[T any](rows []T) []*T {
	out := make([]*T, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}
