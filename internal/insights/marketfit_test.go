package insights

import (
	"testing"

	"github.com/dinesight/dinesight/internal/catalog"
	"github.com/dinesight/dinesight/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMarketFitComponents(t *testing.T) {
	segments := []models.MarketSegment{
		{WillingnessToPay: 6, AdoptionReadiness: 8},
		{WillingnessToPay: 8, AdoptionReadiness: 6},
	}
	competitors := []models.MarketCompetitor{
		{CompetitivePressure: 4, ThreatLevel: 2},
	}
	trends := []models.MarketTrend{
		{RelevanceScore: 9},
		{RelevanceScore: 7},
	}

	report := CalculateMarketFit(segments, competitors, trends)

	assert.InDelta(t, 70.0, report.Components.WillingnessToPay, 0.001)
	assert.InDelta(t, 70.0, report.Components.AdoptionReadiness, 0.001)
	assert.InDelta(t, 60.0, report.Components.CompetitivePressure, 0.001) // 100 - 4*10
	assert.InDelta(t, 80.0, report.Components.ThreatLevel, 0.001)         // 100 - 2*10
	assert.InDelta(t, 80.0, report.Components.TrendRelevance, 0.001)

	// .25*70 + .25*70 + .20*60 + .15*80 + .15*80
	assert.InDelta(t, 71.0, report.Score, 0.001)
	assert.Equal(t, "Strong", report.Category)
}

func TestCalculateMarketFitEmptyInputs(t *testing.T) {
	report := CalculateMarketFit(nil, nil, nil)
	assert.Zero(t, report.Score)
	assert.Equal(t, "Needs Repositioning", report.Category)
}

func TestFitCategoryBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "Excellent"},
		{85, "Excellent"},
		{84.999, "Strong"},
		{70, "Strong"},
		{69.999, "Good"},
		{50, "Good"},
		{49.999, "Needs Repositioning"},
		{0, "Needs Repositioning"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FitCategory(tt.score), "score %v", tt.score)
	}
}

func TestDefaultMarketFitUsesCatalog(t *testing.T) {
	report := DefaultMarketFit()
	want := CalculateMarketFit(catalog.MarketSegments, catalog.MarketCompetitors, catalog.MarketTrends)
	assert.Equal(t, want, report)
	assert.Greater(t, report.Score, 0.0)
	assert.NotEmpty(t, report.Category)
}

func TestCalculateROI(t *testing.T) {
	tier := models.PricingTier{
		Name:                  "growth",
		MonthlyCost:           149,
		RevenueLiftPct:        0.06,
		RetentionLiftPct:      0.02,
		OperationalSavingsPct: 0.01,
		MarketingSavingsPct:   0.02,
	}

	est := CalculateROI(10000, tier)

	assert.InDelta(t, 600.0, est.RevenueGain, 0.001)
	assert.InDelta(t, 200.0, est.RetentionGain, 0.001)
	assert.InDelta(t, 100.0, est.OperationalSavings, 0.001)
	assert.InDelta(t, 200.0, est.MarketingSavings, 0.001)
	assert.InDelta(t, 1100.0, est.TotalBenefit, 0.001)
	assert.InDelta(t, 951.0, est.NetBenefit, 0.001)
	assert.InDelta(t, 638.255, est.ROI, 0.01)

	require.NotEqual(t, "N/A", est.PaybackDisplay)
	assert.InDelta(t, 149.0/951.0, est.PaybackPeriodMonths, 0.001)
}

func TestCalculateROIPaybackSentinel(t *testing.T) {
	tier := catalog.PricingTiers["starter"]

	t.Run("zero revenue never pays back", func(t *testing.T) {
		est := CalculateROI(0, tier)
		assert.Equal(t, "N/A", est.PaybackDisplay)
		assert.Zero(t, est.PaybackPeriodMonths)
		assert.Negative(t, est.NetBenefit)
	})

	t.Run("benefit below cost is not a payback", func(t *testing.T) {
		// starter: 5.5% combined lift, cost 49; $800/month lands just under
		est := CalculateROI(800, tier)
		assert.InDelta(t, -5.0, est.NetBenefit, 0.001)
		assert.Equal(t, "N/A", est.PaybackDisplay)
	})
}
