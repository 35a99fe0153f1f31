package factories

import (
	"strings"
	"time"

	"github.com/dinesight/dinesight/internal/catalog"
	"github.com/dinesight/dinesight/internal/models"
	"github.com/dinesight/dinesight/internal/rng"
	"github.com/lucsky/cuid"
)

type ReviewFactory struct{}

// CreateReviews generates 50-200 reviews for a restaurant. Each review is
// instantiated from one of the five fixed templates with the rating jittered
// ±1 and clamped to [1,5], the content customised to the restaurant, a 60%
// chance of a sentiment-keyed owner response and a 5% chance of being
// flagged fake.
func (rf *ReviewFactory) CreateReviews(restaurant *models.Restaurant, customers []*models.Customer, r *rng.Rand) []*models.Review {
	if len(customers) == 0 {
		return nil
	}

	count := r.IntBetween(50, 200)
	reviews := make([]*models.Review, 0, count)
	now := time.Now().UTC()

	for i := 0; i < count; i++ {
		tmpl := rng.Choice(r, catalog.ReviewTemplates)

		rating := tmpl.Rating + r.IntBetween(-1, 1)
		if rating < 1 {
			rating = 1
		}
		if rating > 5 {
			rating = 5
		}

		review := &models.Review{
			ID:           cuid.New(),
			RestaurantID: restaurant.ID,
			CustomerID:   rng.Choice(r, customers).ID,
			Rating:       rating,
			Sentiment:    tmpl.Sentiment,
			Content:      renderReview(tmpl.Content, restaurant),
			IsFake:       r.Bool(0.05),
			CreatedAt:    now.AddDate(0, 0, -r.IntBetween(0, 180)),
		}

		if r.Bool(0.60) {
			review.Response = rng.Choice(r, catalog.ReplyPools[tmpl.Sentiment])
		}

		reviews = append(reviews, review)
	}

	return reviews
}

func renderReview(template string, restaurant *models.Restaurant) string {
	content := strings.ReplaceAll(template, "{restaurant}", restaurant.Name)
	return strings.ReplaceAll(content, "{cuisine}", cuisineLabel(restaurant.Cuisine))
}

func cuisineLabel(cuisine string) string {
	return strings.ReplaceAll(cuisine, "_", " ")
}
