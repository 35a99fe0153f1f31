package insights

import (
	"fmt"
	"testing"

	"github.com/dinesight/dinesight/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuWith(categories ...models.MenuCategorySnapshot) models.MenuSnapshot {
	return models.MenuSnapshot{Categories: categories}
}

func itemsNamed(prefix string, n int) []models.MenuItemSnapshot {
	items := make([]models.MenuItemSnapshot, n)
	for i := range items {
		items[i] = models.MenuItemSnapshot{
			ID:    fmt.Sprintf("%s-%d", prefix, i),
			Name:  fmt.Sprintf("%s item %d", prefix, i),
			Price: 9.99,
		}
	}
	return items
}

func TestRemovalThresholdBoundaries(t *testing.T) {
	a := &MenuOptimizationAnalyzer{}

	build := func(totalSales int, revenue float64) *models.MenuInsightData {
		return &models.MenuInsightData{
			Menu: menuWith(models.MenuCategorySnapshot{
				Name:  "Mains",
				Items: []models.MenuItemSnapshot{{ID: "m-1", Name: "Slow Mover", Price: 11.00}},
			}),
			SalesData: map[string]models.ItemSales{
				"m-1": {TotalSales: totalSales, Revenue: revenue},
			},
			TrendsData: &models.TrendsData{}, // suppress the generic gap fallback
		}
	}

	t.Run("both strictly under thresholds flags removal", func(t *testing.T) {
		insights := a.removalInsights(build(9, 99.00))
		require.Len(t, insights, 1)
		assert.Equal(t, "menu-removal-m-1", insights[0].ID)
		assert.Equal(t, 6, insights[0].Priority)
		assert.Equal(t, 0.75, insights[0].Confidence)
		// saving proxy: -(11.00 * 0.3 * 10)
		assert.InDelta(t, -33.0, insights[0].EstimatedRevenue, 0.001)
	})

	t.Run("sales at threshold is kept", func(t *testing.T) {
		assert.Empty(t, a.removalInsights(build(10, 99.00)))
	})

	t.Run("revenue at threshold is kept", func(t *testing.T) {
		assert.Empty(t, a.removalInsights(build(9, 100.00)))
	})
}

func TestRemovalCapsAtThreeWorstPerformers(t *testing.T) {
	a := &MenuOptimizationAnalyzer{}

	items := itemsNamed("slow", 5)
	sales := map[string]models.ItemSales{
		"slow-0": {TotalSales: 5, Revenue: 50},
		"slow-1": {TotalSales: 2, Revenue: 20},
		"slow-2": {TotalSales: 8, Revenue: 80},
		"slow-3": {TotalSales: 1, Revenue: 10},
		"slow-4": {TotalSales: 4, Revenue: 40},
	}
	data := &models.MenuInsightData{
		Menu:      menuWith(models.MenuCategorySnapshot{Name: "Mains", Items: items}),
		SalesData: sales,
	}

	insights := a.removalInsights(data)
	require.Len(t, insights, 3)
	// lowest revenue first
	assert.Equal(t, "menu-removal-slow-3", insights[0].ID)
	assert.Equal(t, "menu-removal-slow-1", insights[1].ID)
	assert.Equal(t, "menu-removal-slow-4", insights[2].ID)
}

func TestRemovalNeedsSalesData(t *testing.T) {
	a := &MenuOptimizationAnalyzer{}
	data := &models.MenuInsightData{
		Menu: menuWith(models.MenuCategorySnapshot{Name: "Mains", Items: itemsNamed("m", 3)}),
	}
	assert.Empty(t, a.removalInsights(data))
}

func TestGapInsightsFromMarketData(t *testing.T) {
	a := &MenuOptimizationAnalyzer{}
	data := &models.MenuInsightData{
		Menu: menuWith(
			models.MenuCategorySnapshot{Name: "Desserts", Items: itemsNamed("d", 2)},
		),
		TrendsData:     &models.TrendsData{TrendingCategories: []string{"Desserts", "Sushi"}},
		CompetitorData: &models.CompetitorData{PopularCuisines: []string{"sushi", "Biryani"}},
	}

	insights := a.gapInsights(data)
	require.Len(t, insights, 2) // Desserts exists, sushi deduped case-insensitively
	assert.Equal(t, "menu-gap-sushi", insights[0].ID)
	assert.Equal(t, "menu-gap-biryani", insights[1].ID)
	for _, in := range insights {
		assert.Equal(t, models.ImpactMedium, in.Impact)
		assert.Equal(t, 7, in.Priority)
		assert.Equal(t, 0.65, in.Confidence)
		assert.Equal(t, 400.0, in.EstimatedRevenue)
	}
}

func TestGapFallbackOnlyWithoutAnyMarketData(t *testing.T) {
	a := &MenuOptimizationAnalyzer{}

	t.Run("no market data yields the generic suggestion", func(t *testing.T) {
		data := &models.MenuInsightData{Menu: menuWith()}
		insights := a.gapInsights(data)
		require.Len(t, insights, 1)
		assert.Equal(t, "menu-gap-generic", insights[0].ID)
		assert.Equal(t, models.ImpactLow, insights[0].Impact)
		assert.Equal(t, 4, insights[0].Priority)
	})

	t.Run("empty trends data suppresses the fallback", func(t *testing.T) {
		data := &models.MenuInsightData{Menu: menuWith(), TrendsData: &models.TrendsData{}}
		assert.Empty(t, a.gapInsights(data))
	})
}

func TestBalanceFlagsThinCategories(t *testing.T) {
	a := &MenuOptimizationAnalyzer{}
	data := &models.MenuInsightData{
		Menu: menuWith(
			models.MenuCategorySnapshot{Name: "Mains", Items: itemsNamed("m", 8)},
			models.MenuCategorySnapshot{Name: "Desserts", Items: itemsNamed("d", 2)},
			models.MenuCategorySnapshot{Name: "Beverages", Items: itemsNamed("b", 5)},
		),
	}
	// mean = 5, threshold = 2.5: only Desserts (2) is under it

	insights := a.balanceInsights(data)
	require.Len(t, insights, 1)
	assert.Equal(t, "menu-balance-desserts", insights[0].ID)
	assert.Equal(t, 5, insights[0].Priority)
	assert.Equal(t, 0.7, insights[0].Confidence)
	assert.Equal(t, 200.0, insights[0].EstimatedRevenue)
}

func TestBalanceEmptyMenu(t *testing.T) {
	a := &MenuOptimizationAnalyzer{}
	assert.Empty(t, a.balanceInsights(&models.MenuInsightData{Menu: menuWith()}))
}
