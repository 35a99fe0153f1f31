package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryArchetypeCuisineHasAMenuTemplate(t *testing.T) {
	for _, archetype := range RestaurantArchetypes {
		templates, ok := MenuTemplates[archetype.Cuisine]
		require.True(t, ok, "no menu template for cuisine %q", archetype.Cuisine)
		assert.NotEmpty(t, templates, archetype.Cuisine)
		for _, category := range templates {
			assert.NotEmpty(t, category.Items, "%s/%s has no items", archetype.Cuisine, category.Name)
			for _, item := range category.Items {
				assert.Greater(t, item.Price, 0.0, "%s has no price", item.Name)
			}
		}
	}
}

func TestReviewTemplatesCoverEverySentiment(t *testing.T) {
	sentiments := make(map[string]bool)
	for _, tmpl := range ReviewTemplates {
		assert.GreaterOrEqual(t, tmpl.Rating, 1)
		assert.LessOrEqual(t, tmpl.Rating, 5)
		sentiments[tmpl.Sentiment] = true
		_, ok := ReplyPools[tmpl.Sentiment]
		assert.True(t, ok, "no reply pool for sentiment %q", tmpl.Sentiment)
	}
	assert.Len(t, sentiments, 3)
}

func TestPricingTiersAreOrdered(t *testing.T) {
	starter, growth, scale := PricingTiers["starter"], PricingTiers["growth"], PricingTiers["scale"]
	assert.Less(t, starter.MonthlyCost, growth.MonthlyCost)
	assert.Less(t, growth.MonthlyCost, scale.MonthlyCost)
	assert.Less(t, starter.RevenueLiftPct, growth.RevenueLiftPct)
	assert.Less(t, growth.RevenueLiftPct, scale.RevenueLiftPct)
}

func TestMarketCatalogScales(t *testing.T) {
	for _, s := range MarketSegments {
		assert.GreaterOrEqual(t, s.WillingnessToPay, 1.0)
		assert.LessOrEqual(t, s.WillingnessToPay, 10.0)
		assert.GreaterOrEqual(t, s.AdoptionReadiness, 1.0)
		assert.LessOrEqual(t, s.AdoptionReadiness, 10.0)
	}
	for _, c := range MarketCompetitors {
		assert.GreaterOrEqual(t, c.CompetitivePressure, 1.0)
		assert.LessOrEqual(t, c.CompetitivePressure, 10.0)
	}
	for _, tr := range MarketTrends {
		assert.GreaterOrEqual(t, tr.RelevanceScore, 1.0)
		assert.LessOrEqual(t, tr.RelevanceScore, 10.0)
	}
}
