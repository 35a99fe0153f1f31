package insights

import (
	"context"
	"fmt"
	"testing"

	"github.com/dinesight/dinesight/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAdvisor returns a canned response regardless of item or context.
type stubAdvisor struct {
	text string
	err  error
}

func (s stubAdvisor) SuggestPrice(context.Context, models.MenuItemSnapshot, *models.MenuInsightData) (string, error) {
	return s.text, s.err
}

func singleItemData(price float64, sales *models.ItemSales) *models.MenuInsightData {
	data := &models.MenuInsightData{
		RestaurantID: "rest-1",
		Menu: models.MenuSnapshot{
			Categories: []models.MenuCategorySnapshot{
				{Name: "Mains", Items: []models.MenuItemSnapshot{{ID: "item-1", Name: "Butter Chicken", Price: price}}},
			},
		},
	}
	if sales != nil {
		data.SalesData = map[string]models.ItemSales{"item-1": *sales}
	}
	return data
}

func TestPricingNoiseThreshold(t *testing.T) {
	sales := &models.ItemSales{TotalSales: 40, Revenue: 480}

	t.Run("delta at threshold is suppressed", func(t *testing.T) {
		a := NewPricingAnalyzer(stubAdvisor{text: "Raise to $12.50"}, &DollarFigureParser{})
		insights := a.Analyze(context.Background(), singleItemData(12.00, sales))
		assert.Empty(t, insights)
	})

	t.Run("delta just over threshold emits one insight", func(t *testing.T) {
		a := NewPricingAnalyzer(stubAdvisor{text: "Raise to $12.51"}, &DollarFigureParser{})
		insights := a.Analyze(context.Background(), singleItemData(12.00, sales))
		require.Len(t, insights, 1)
		assert.Equal(t, "Price Increase", insights[0].Category)
		assert.Equal(t, models.ImpactMedium, insights[0].Impact)
		assert.Equal(t, 8, insights[0].Priority)
	})
}

func TestPricingDecrease(t *testing.T) {
	sales := &models.ItemSales{TotalSales: 12, Revenue: 180}
	a := NewPricingAnalyzer(stubAdvisor{text: "Drop to $9.00 to regain volume"}, &DollarFigureParser{})

	insights := a.Analyze(context.Background(), singleItemData(12.00, sales))
	require.Len(t, insights, 1)
	assert.Equal(t, "Price Decrease", insights[0].Category)
	assert.Equal(t, 6, insights[0].Priority)
	assert.Equal(t, models.ImpactHigh, insights[0].Impact) // |delta| 3.00 > 2.00
	assert.InDelta(t, 150.0, insights[0].EstimatedRevenue, 0.001)
}

func TestPricingRequiresSalesData(t *testing.T) {
	a := NewPricingAnalyzer(stubAdvisor{text: "Raise to $20.00"}, &DollarFigureParser{})
	insights := a.Analyze(context.Background(), singleItemData(12.00, nil))
	assert.Empty(t, insights)
}

func TestPricingSkipsUnparsableAdvice(t *testing.T) {
	sales := &models.ItemSales{TotalSales: 40, Revenue: 480}

	for _, text := range []string{"", "hold steady for now"} {
		a := NewPricingAnalyzer(stubAdvisor{text: text}, &DollarFigureParser{})
		insights := a.Analyze(context.Background(), singleItemData(12.00, sales))
		assert.Empty(t, insights, "advice %q should yield no insight", text)
	}
}

func TestPricingSkipsAdvisorError(t *testing.T) {
	sales := &models.ItemSales{TotalSales: 40, Revenue: 480}
	a := NewPricingAnalyzer(stubAdvisor{err: fmt.Errorf("upstream unavailable")}, &DollarFigureParser{})
	insights := a.Analyze(context.Background(), singleItemData(12.00, sales))
	assert.Empty(t, insights)
}

func TestBenchmarkAdvisorEndToEnd(t *testing.T) {
	data := &models.MenuInsightData{
		RestaurantID: "rest-1",
		Menu: models.MenuSnapshot{
			Categories: []models.MenuCategorySnapshot{
				{Name: "Sides", Items: []models.MenuItemSnapshot{{ID: "wings-1", Name: "Chicken Wings", Price: 12.99}}},
			},
		},
		SalesData: map[string]models.ItemSales{
			"wings-1": {TotalSales: 23, Revenue: 298.77},
		},
		CompetitorData: &models.CompetitorData{
			Benchmarks: map[string]float64{"Chicken Wings": 16.00},
		},
	}

	a := NewPricingAnalyzer(&BenchmarkAdvisor{}, &DollarFigureParser{})
	insights := a.Analyze(context.Background(), data)

	require.Len(t, insights, 1)
	got := insights[0]
	assert.Equal(t, "pricing-wings-1", got.ID)
	assert.Equal(t, "Price Increase", got.Category)
	assert.Equal(t, models.ImpactHigh, got.Impact) // delta 3.01 > 2.00
	assert.Equal(t, 8, got.Priority)
	assert.InDelta(t, 150.5, got.EstimatedRevenue, 0.01)
	assert.Equal(t, 0.8, got.Confidence)

	require.NotNil(t, got.Data.SupportingData)
	assert.Equal(t, 16.00, got.Data.SupportingData.RecommendedPrice)
	assert.Equal(t, 23, got.Data.SupportingData.TotalSales)

	require.Len(t, got.CTA.Actions, 1)
	assert.Equal(t, models.ActionPriceUpdate, got.CTA.Actions[0].Type)
	assert.False(t, got.CTA.Actions[0].AutoApplicable)
}

func TestBenchmarkAdvisorStaysQuietWithoutBenchmark(t *testing.T) {
	data := singleItemData(12.00, &models.ItemSales{TotalSales: 40, Revenue: 480})
	data.CompetitorData = &models.CompetitorData{Benchmarks: map[string]float64{"Some Other Dish": 20.00}}

	a := NewPricingAnalyzer(&BenchmarkAdvisor{}, &DollarFigureParser{})
	assert.Empty(t, a.Analyze(context.Background(), data))
}
