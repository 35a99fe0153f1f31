package factories

import (
	"github.com/dinesight/dinesight/internal/catalog"
	"github.com/dinesight/dinesight/internal/models"
	"github.com/dinesight/dinesight/internal/rng"
	"github.com/lucsky/cuid"
)

type MenuFactory struct{}

// CreateMenu expands the cuisine's template into categories and items for one
// restaurant. A missing cuisine template yields an empty menu, not an error.
func (mf *MenuFactory) CreateMenu(restaurant *models.Restaurant, r *rng.Rand) ([]models.MenuCategory, []models.MenuItem) {
	templates, ok := catalog.MenuTemplates[restaurant.Cuisine]
	if !ok {
		return nil, nil
	}

	var categories []models.MenuCategory
	var items []models.MenuItem

	for order, catTmpl := range templates {
		category := models.MenuCategory{
			ID:           cuid.New(),
			RestaurantID: restaurant.ID,
			Name:         catTmpl.Name,
			Description:  catTmpl.Description,
			DisplayOrder: order,
		}
		categories = append(categories, category)

		for _, itemTmpl := range catTmpl.Items {
			items = append(items, models.MenuItem{
				ID:            cuid.New(),
				RestaurantID:  restaurant.ID,
				CategoryID:    category.ID,
				Name:          itemTmpl.Name,
				Description:   itemTmpl.Description,
				Price:         itemTmpl.Price,
				Cost:          itemTmpl.Price * 0.3,
				IsVeg:         itemTmpl.IsVeg,
				SpiceLevel:    spiceLevelFromTags(itemTmpl.TasteTags),
				TasteTags:     itemTmpl.TasteTags,
				PricingStatus: r.PricingStatus(),
				Trend:         r.Trend(),
				IsAvailable:   true,
			})
		}
	}

	return categories, items
}

// spiceLevelFromTags maps taste tags to a spice level: spicy beats mild,
// anything else lands on medium.
func spiceLevelFromTags(tags []string) string {
	for _, tag := range tags {
		if tag == "spicy" {
			return models.SpiceLevelHot
		}
	}
	for _, tag := range tags {
		if tag == "mild" {
			return models.SpiceLevelMild
		}
	}
	return models.SpiceLevelMedium
}
