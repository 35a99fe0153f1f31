package factories

import (
	"fmt"

	"github.com/dinesight/dinesight/internal/models"
	"github.com/dinesight/dinesight/internal/rng"
	"github.com/lucsky/cuid"
)

type MediaFactory struct{}

// CreateMediaAssets generates a small gallery for a restaurant when the seed
// run asks for media.
func (mf *MediaFactory) CreateMediaAssets(restaurant *models.Restaurant, r *rng.Rand) []*models.MediaAsset {
	count := r.IntBetween(4, 8)
	assets := make([]*models.MediaAsset, 0, count)

	for i := 0; i < count; i++ {
		assets = append(assets, &models.MediaAsset{
			ID:           cuid.New(),
			RestaurantID: restaurant.ID,
			Kind:         "photo",
			URL:          fmt.Sprintf("https://cdn.dinesight.in/gallery/%s/%d.jpg", restaurant.SlugName, i+1),
			Caption:      fmt.Sprintf("%s gallery photo %d", restaurant.Name, i+1),
		})
	}

	return assets
}
