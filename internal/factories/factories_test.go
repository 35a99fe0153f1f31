package factories

import (
	"strings"
	"testing"

	"github.com/dinesight/dinesight/internal/catalog"
	"github.com/dinesight/dinesight/internal/models"
	"github.com/dinesight/dinesight/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRestaurant(t *testing.T, r *rng.Rand) *models.Restaurant {
	t.Helper()
	rf := &RestaurantFactory{}
	return rf.CreateRestaurant(catalog.RestaurantArchetypes[0], r)
}

func TestCreateRestaurantBounds(t *testing.T) {
	r := rng.New(42)
	rf := &RestaurantFactory{}

	for i := 0; i < 20; i++ {
		tmpl := catalog.RestaurantArchetypes[i%len(catalog.RestaurantArchetypes)]
		rest := rf.CreateRestaurant(tmpl, r)

		assert.NotEmpty(t, rest.ID)
		assert.Equal(t, tmpl.Tags, rest.Tags)
		assert.GreaterOrEqual(t, rest.Latitude, 8.0)
		assert.LessOrEqual(t, rest.Latitude, 37.0)
		assert.GreaterOrEqual(t, rest.Longitude, 68.0)
		assert.LessOrEqual(t, rest.Longitude, 97.0)
		assert.GreaterOrEqual(t, rest.AvgRating, 3.5)
		assert.LessOrEqual(t, rest.AvgRating, 4.8)
		assert.GreaterOrEqual(t, rest.TotalReviews, 50)
		assert.LessOrEqual(t, rest.TotalReviews, 300)
		assert.GreaterOrEqual(t, len(rest.Amenities), 4)
		assert.LessOrEqual(t, len(rest.Amenities), 8)
		assert.True(t, rest.IsActive)
	}
}

func TestCreateRestaurantOperatingHours(t *testing.T) {
	r := rng.New(1)
	rest := testRestaurant(t, r)

	require.Len(t, rest.OperatingHours, 7)
	for day, hours := range rest.OperatingHours {
		assert.Equal(t, "11:00", hours.Open)
		if day == "friday" || day == "saturday" {
			assert.Equal(t, "23:30", hours.Close, day)
		} else {
			assert.Equal(t, "22:30", hours.Close, day)
		}
	}
}

func TestCreateRestaurantSlugsAreUnique(t *testing.T) {
	r := rng.New(1)
	rf := &RestaurantFactory{}

	a := rf.CreateRestaurant(catalog.RestaurantArchetypes[0], r)
	b := rf.CreateRestaurant(catalog.RestaurantArchetypes[0], r)

	assert.NotEqual(t, a.SlugName, b.SlugName)
	assert.True(t, strings.HasPrefix(b.SlugName, a.SlugName))
}

func TestCreateMenu(t *testing.T) {
	r := rng.New(42)
	rest := testRestaurant(t, r)

	mf := &MenuFactory{}
	categories, items := mf.CreateMenu(rest, r)

	require.NotEmpty(t, categories)
	require.NotEmpty(t, items)

	categoryIDs := make(map[string]bool)
	for order, category := range categories {
		assert.Equal(t, rest.ID, category.RestaurantID)
		assert.Equal(t, order, category.DisplayOrder)
		categoryIDs[category.ID] = true
	}

	for _, item := range items {
		assert.Equal(t, rest.ID, item.RestaurantID)
		assert.True(t, categoryIDs[item.CategoryID], "item %s points at unknown category", item.Name)
		assert.InDelta(t, item.Price*0.3, item.Cost, 0.0001)
		assert.Contains(t, []string{models.PricingStatusOptimal, models.PricingStatusUnderpriced, models.PricingStatusOverpriced}, item.PricingStatus)
		assert.Contains(t, []string{models.TrendIncreasing, models.TrendStable, models.TrendDeclining}, item.Trend)
		assert.True(t, item.IsAvailable)
	}
}

func TestCreateMenuUnknownCuisine(t *testing.T) {
	r := rng.New(42)
	rest := testRestaurant(t, r)
	rest.Cuisine = "martian"

	mf := &MenuFactory{}
	categories, items := mf.CreateMenu(rest, r)
	assert.Empty(t, categories)
	assert.Empty(t, items)
}

func TestSpiceLevelFromTags(t *testing.T) {
	assert.Equal(t, models.SpiceLevelHot, spiceLevelFromTags([]string{"tangy", "spicy"}))
	assert.Equal(t, models.SpiceLevelHot, spiceLevelFromTags([]string{"spicy", "mild"})) // spicy wins
	assert.Equal(t, models.SpiceLevelMild, spiceLevelFromTags([]string{"mild", "sweet"}))
	assert.Equal(t, models.SpiceLevelMedium, spiceLevelFromTags([]string{"savory"}))
	assert.Equal(t, models.SpiceLevelMedium, spiceLevelFromTags(nil))
}

func TestCreateCustomers(t *testing.T) {
	r := rng.New(42)
	rest := testRestaurant(t, r)

	cf := &CustomerFactory{}
	customers := cf.CreateCustomers(rest, r)

	require.GreaterOrEqual(t, len(customers), 100)
	require.LessOrEqual(t, len(customers), 300)

	personas := make(map[string]bool)
	for _, c := range customers {
		assert.Equal(t, rest.ID, c.RestaurantID)
		assert.GreaterOrEqual(t, c.Age, 18)
		assert.Contains(t, []string{models.ChurnRiskLow, models.ChurnRiskMedium, models.ChurnRiskHigh}, c.ChurnRisk)
		assert.True(t, c.JoinedAt.Before(rest.CreatedAt) || c.JoinedAt.Equal(rest.CreatedAt))
		personas[c.Persona] = true
	}
	// with 100+ draws every persona shows up
	assert.Len(t, personas, len(catalog.CustomerPersonas))
}

func TestChurnRiskBuckets(t *testing.T) {
	assert.Equal(t, models.ChurnRiskLow, churnRisk(3.0))
	assert.Equal(t, models.ChurnRiskMedium, churnRisk(2.99))
	assert.Equal(t, models.ChurnRiskMedium, churnRisk(1.0))
	assert.Equal(t, models.ChurnRiskHigh, churnRisk(0.99))
}

func TestCreateReviews(t *testing.T) {
	r := rng.New(42)
	rest := testRestaurant(t, r)
	cf := &CustomerFactory{}
	customers := cf.CreateCustomers(rest, r)

	rf := &ReviewFactory{}
	reviews := rf.CreateReviews(rest, customers, r)

	require.GreaterOrEqual(t, len(reviews), 50)
	require.LessOrEqual(t, len(reviews), 200)

	knownCustomers := make(map[string]bool, len(customers))
	for _, c := range customers {
		knownCustomers[c.ID] = true
	}

	responded, fakes := 0, 0
	for _, review := range reviews {
		assert.Equal(t, rest.ID, review.RestaurantID)
		assert.True(t, knownCustomers[review.CustomerID])
		assert.GreaterOrEqual(t, review.Rating, 1)
		assert.LessOrEqual(t, review.Rating, 5)
		assert.NotContains(t, review.Content, "{restaurant}")
		assert.NotContains(t, review.Content, "{cuisine}")
		if review.Response != "" {
			responded++
		}
		if review.IsFake {
			fakes++
		}
	}
	// 60% response rate and 5% fake rate, loosely
	assert.Greater(t, responded, len(reviews)/3)
	assert.Less(t, fakes, len(reviews)/4)
}

func TestCreateReviewsWithoutCustomers(t *testing.T) {
	r := rng.New(42)
	rest := testRestaurant(t, r)

	rf := &ReviewFactory{}
	assert.Nil(t, rf.CreateReviews(rest, nil, r))
}

func TestCreateCampaigns(t *testing.T) {
	r := rng.New(42)
	rest := testRestaurant(t, r)

	cf := &CampaignFactory{}
	campaigns := cf.CreateCampaigns(rest)

	require.Len(t, campaigns, 2)
	assert.Equal(t, "Grand Opening", campaigns[0].Name)
	assert.Equal(t, models.CampaignStatusCompleted, campaigns[0].Status)
	assert.Equal(t, "Weekend Family Feast", campaigns[1].Name)
	assert.Equal(t, models.CampaignStatusActive, campaigns[1].Status)
	for _, c := range campaigns {
		assert.Equal(t, rest.ID, c.RestaurantID)
		assert.True(t, c.StartDate.Before(c.EndDate))
		assert.LessOrEqual(t, c.Spend, c.Budget)
	}
}

func TestCreateIntegrations(t *testing.T) {
	r := rng.New(42)
	rest := testRestaurant(t, r)

	f := &IntegrationFactory{}
	integrations := f.CreateIntegrations(rest, r)

	require.Len(t, integrations, 3)
	seen := make(map[string]bool)
	for _, in := range integrations {
		assert.Equal(t, rest.ID, in.RestaurantID)
		assert.Equal(t, models.IntegrationStatusConnected, in.Status)
		assert.GreaterOrEqual(t, in.Rating, 1.0)
		assert.LessOrEqual(t, in.Rating, 5.0)
		assert.InDelta(t, rest.AvgRating, in.Rating, 0.3)
		assert.GreaterOrEqual(t, in.ReviewCount, int(float64(rest.TotalReviews)*0.2)-1)
		assert.LessOrEqual(t, in.ReviewCount, int(float64(rest.TotalReviews)*0.6)+1)
		seen[in.Platform] = true
	}
	assert.Equal(t, map[string]bool{"google": true, "zomato": true, "swiggy": true}, seen)
}

func TestCreateMediaAssets(t *testing.T) {
	r := rng.New(42)
	rest := testRestaurant(t, r)

	mf := &MediaFactory{}
	assets := mf.CreateMediaAssets(rest, r)

	require.GreaterOrEqual(t, len(assets), 4)
	require.LessOrEqual(t, len(assets), 8)
	for _, asset := range assets {
		assert.Equal(t, rest.ID, asset.RestaurantID)
		assert.Equal(t, "photo", asset.Kind)
		assert.Contains(t, asset.URL, rest.SlugName)
	}
}
