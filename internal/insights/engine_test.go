package insights

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/dinesight/dinesight/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullContextData builds an oversized input that trips every analyzer:
// many items with benchmarks far off their price, many slow sellers, thin
// categories, and full seasonal, competitor and trends context.
func fullContextData(itemCount int) *models.MenuInsightData {
	items := make([]models.MenuItemSnapshot, itemCount)
	sales := make(map[string]models.ItemSales, itemCount)
	benchmarks := make(map[string]float64, itemCount)
	for i := range items {
		id := fmt.Sprintf("item-%d", i)
		name := fmt.Sprintf("Dish %d", i)
		items[i] = models.MenuItemSnapshot{ID: id, Name: name, Price: 16.00}
		sales[id] = models.ItemSales{TotalSales: 5, Revenue: 80}
		benchmarks[name] = 22.00
	}

	return &models.MenuInsightData{
		RestaurantID: "rest-1",
		Menu: models.MenuSnapshot{Categories: []models.MenuCategorySnapshot{
			{Name: "Mains", Items: items},
			{Name: "Sides", Items: items[:1]},
		}},
		SalesData: sales,
		SeasonalData: &models.SeasonalData{
			CurrentSeason:     "winter",
			UpcomingFestivals: []string{"Diwali", "Holi", "Eid"},
		},
		CompetitorData: &models.CompetitorData{
			Benchmarks:      benchmarks,
			PopularCuisines: []string{"Sushi", "Biryani", "Momos", "Tacos"},
		},
		TrendsData: &models.TrendsData{
			FoodTrends:         []string{"korean fried chicken", "millet bowls"},
			TrendingCategories: []string{"Desserts", "Beverages"},
		},
	}
}

func TestEngineCapsMergedOutput(t *testing.T) {
	engine := NewDefaultEngine()
	insights := engine.GenerateComprehensiveInsights(context.Background(), fullContextData(50))

	require.LessOrEqual(t, len(insights), 11)

	counts := map[string]int{}
	for _, in := range insights {
		counts[in.Type]++
	}
	assert.LessOrEqual(t, counts[models.InsightTypePricing], 4)
	assert.LessOrEqual(t, counts[models.InsightTypeMenuOptimization], 4)
	assert.LessOrEqual(t, counts[models.InsightTypePromotion], 3)
}

func TestEngineSortsByImpactThenPriority(t *testing.T) {
	engine := NewDefaultEngine()
	insights := engine.GenerateComprehensiveInsights(context.Background(), fullContextData(10))
	require.NotEmpty(t, insights)

	assert.True(t, sort.SliceIsSorted(insights, func(i, j int) bool {
		ri, rj := impactRank(insights[i].Impact), impactRank(insights[j].Impact)
		if ri != rj {
			return ri > rj
		}
		return insights[i].Priority > insights[j].Priority
	}))
	// with benchmarks $6 over price, high-impact pricing insights must lead
	assert.Equal(t, models.ImpactHigh, insights[0].Impact)
}

func TestImpactRankOrdering(t *testing.T) {
	assert.Greater(t, impactRank(models.ImpactHigh), impactRank(models.ImpactMedium))
	assert.Greater(t, impactRank(models.ImpactMedium), impactRank(models.ImpactLow))
	assert.Equal(t, impactRank("unknown"), impactRank(models.ImpactLow))
}

func TestEngineStableSortPreservesInsertionOrderWithinRank(t *testing.T) {
	merged := []models.Insight{
		{ID: "low-9", Impact: models.ImpactLow, Priority: 9},
		{ID: "high-1", Impact: models.ImpactHigh, Priority: 1},
		{ID: "med-9", Impact: models.ImpactMedium, Priority: 9},
		{ID: "high-5", Impact: models.ImpactHigh, Priority: 5},
	}
	sort.SliceStable(merged, func(i, j int) bool {
		ri, rj := impactRank(merged[i].Impact), impactRank(merged[j].Impact)
		if ri != rj {
			return ri > rj
		}
		return merged[i].Priority > merged[j].Priority
	})

	ids := []string{merged[0].ID, merged[1].ID, merged[2].ID, merged[3].ID}
	assert.Equal(t, []string{"high-5", "high-1", "med-9", "low-9"}, ids)
}

func TestEngineEmptyInputStillRanksGapFallback(t *testing.T) {
	engine := NewDefaultEngine()
	insights := engine.GenerateComprehensiveInsights(context.Background(), &models.MenuInsightData{})

	// only the generic menu-gap suggestion survives an empty context
	require.Len(t, insights, 1)
	assert.Equal(t, "menu-gap-generic", insights[0].ID)
}
