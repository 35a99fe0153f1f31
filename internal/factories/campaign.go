package factories

import (
	"time"

	"github.com/dinesight/dinesight/internal/models"
	"github.com/lucsky/cuid"
)

type CampaignFactory struct{}

// CreateCampaigns returns the two canonical campaigns every mock restaurant
// carries: a completed Grand Opening promo and an active Weekend Family
// seasonal promo, both with fixed-shape metrics.
func (cf *CampaignFactory) CreateCampaigns(restaurant *models.Restaurant) []*models.MarketingCampaign {
	now := time.Now().UTC()

	return []*models.MarketingCampaign{
		{
			ID:           cuid.New(),
			RestaurantID: restaurant.ID,
			Name:         "Grand Opening",
			Kind:         "promo",
			Status:       models.CampaignStatusCompleted,
			Budget:       500,
			Spend:        487.50,
			Impressions:  42000,
			Clicks:       1850,
			Conversions:  240,
			StartDate:    now.AddDate(0, -3, 0),
			EndDate:      now.AddDate(0, -2, -15),
		},
		{
			ID:           cuid.New(),
			RestaurantID: restaurant.ID,
			Name:         "Weekend Family Feast",
			Kind:         "seasonal",
			Status:       models.CampaignStatusActive,
			Budget:       300,
			Spend:        112.00,
			Impressions:  15600,
			Clicks:       720,
			Conversions:  95,
			StartDate:    now.AddDate(0, 0, -10),
			EndDate:      now.AddDate(0, 1, 0),
		},
	}
}
