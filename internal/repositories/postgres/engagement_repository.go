package postgres

import (
	"context"

	"github.com/dinesight/dinesight/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func (r *CampaignRepository) BulkCreate(ctx context.Context, campaigns []*models.MarketingCampaign) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, campaign := range campaigns {
		query := `
            INSERT INTO marketing_campaigns (
                id, restaurant_id, name, kind, status, budget, spend,
                impressions, clicks, conversions, start_date, end_date
            ) VALUES (
                $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
            )
        `
		_, err = tx.Exec(ctx, query,
			campaign.ID,
			campaign.RestaurantID,
			campaign.Name,
			campaign.Kind,
			campaign.Status,
			campaign.Budget,
			campaign.Spend,
			campaign.Impressions,
			campaign.Clicks,
			campaign.Conversions,
			campaign.StartDate,
			campaign.EndDate,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *CampaignRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM marketing_campaigns").Scan(&count)
	return count, err
}

func (r *CampaignRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE marketing_campaigns CASCADE")
	return err
}

type IntegrationRepository struct {
	pool *pgxpool.Pool
}

func NewIntegrationRepository(pool *pgxpool.Pool) *IntegrationRepository {
	return &IntegrationRepository{pool: pool}
}

func (r *IntegrationRepository) BulkCreate(ctx context.Context, integrations []*models.PlatformIntegration) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, integration := range integrations {
		query := `
            INSERT INTO platform_integrations (
                id, restaurant_id, platform, status, rating, review_count,
                listing_url, last_synced_at
            ) VALUES (
                $1, $2, $3, $4, $5, $6, $7, $8
            )
        `
		_, err = tx.Exec(ctx, query,
			integration.ID,
			integration.RestaurantID,
			integration.Platform,
			integration.Status,
			integration.Rating,
			integration.ReviewCount,
			integration.ListingURL,
			integration.LastSyncedAt,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *IntegrationRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM platform_integrations").Scan(&count)
	return count, err
}

func (r *IntegrationRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE platform_integrations CASCADE")
	return err
}

type MediaAssetRepository struct {
	pool *pgxpool.Pool
}

func NewMediaAssetRepository(pool *pgxpool.Pool) *MediaAssetRepository {
	return &MediaAssetRepository{pool: pool}
}

func (r *MediaAssetRepository) BulkCreate(ctx context.Context, assets []*models.MediaAsset) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, asset := range assets {
		query := `
            INSERT INTO media_assets (id, restaurant_id, kind, url, caption)
            VALUES ($1, $2, $3, $4, $5)
        `
		_, err = tx.Exec(ctx, query,
			asset.ID,
			asset.RestaurantID,
			asset.Kind,
			asset.URL,
			asset.Caption,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *MediaAssetRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM media_assets").Scan(&count)
	return count, err
}

func (r *MediaAssetRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE media_assets CASCADE")
	return err
}
