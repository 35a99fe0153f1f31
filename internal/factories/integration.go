package factories

import (
	"fmt"
	"time"

	"github.com/dinesight/dinesight/internal/models"
	"github.com/dinesight/dinesight/internal/rng"
	"github.com/lucsky/cuid"
)

type IntegrationFactory struct{}

var platforms = []string{"google", "zomato", "swiggy"}

// CreateIntegrations returns the three fixed platform listings. Each platform
// rating is jittered from the restaurant's average rating and its review
// count is a fraction of the restaurant's total.
func (f *IntegrationFactory) CreateIntegrations(restaurant *models.Restaurant, r *rng.Rand) []*models.PlatformIntegration {
	integrations := make([]*models.PlatformIntegration, 0, len(platforms))
	now := time.Now().UTC()

	for _, platform := range platforms {
		rating := restaurant.AvgRating + r.FloatBetween(-0.3, 0.3)
		if rating < 1.0 {
			rating = 1.0
		}
		if rating > 5.0 {
			rating = 5.0
		}

		integrations = append(integrations, &models.PlatformIntegration{
			ID:           cuid.New(),
			RestaurantID: restaurant.ID,
			Platform:     platform,
			Status:       models.IntegrationStatusConnected,
			Rating:       rating,
			ReviewCount:  int(float64(restaurant.TotalReviews) * r.FloatBetween(0.2, 0.6)),
			ListingURL:   fmt.Sprintf("https://%s.com/%s", platform, restaurant.SlugName),
			LastSyncedAt: now.Add(-time.Duration(r.IntBetween(1, 48)) * time.Hour),
		})
	}

	return integrations
}
