package insights

import (
	"context"
	"fmt"
	"math"

	"github.com/dinesight/dinesight/internal/models"
)

// Price deltas at or below the noise threshold are suppressed; deltas above
// the impact threshold are surfaced as high impact. The per-item monthly
// order volume proxy scales the delta into an estimated revenue figure.
const (
	priceNoiseThreshold  = 0.50
	priceImpactThreshold = 2.00
	monthlyVolumeProxy   = 50
)

// PricingAdvisor is the text-generation collaborator consulted per item. An
// empty response means the advisor has nothing to say about the item.
type PricingAdvisor interface {
	SuggestPrice(ctx context.Context, item models.MenuItemSnapshot, data *models.MenuInsightData) (string, error)
}

// BenchmarkAdvisor recommends matching the competitor benchmark price when
// one is known for the item.
type BenchmarkAdvisor struct{}

func (BenchmarkAdvisor) SuggestPrice(_ context.Context, item models.MenuItemSnapshot, data *models.MenuInsightData) (string, error) {
	if data.CompetitorData == nil {
		return "", nil
	}
	benchmark, ok := data.CompetitorData.Benchmarks[item.Name]
	if !ok {
		return "", nil
	}
	return fmt.Sprintf(
		"Comparable %s listings in the area average $%.2f. Moving toward the local benchmark is recommended given current demand.",
		item.Name, benchmark,
	), nil
}

// PricingAnalyzer decides, per menu item, whether its price should change.
// It produces at most one insight per item and never recommends a price of
// zero or below.
type PricingAnalyzer struct {
	advisor PricingAdvisor
	parser  SuggestionParser
}

func NewPricingAnalyzer(advisor PricingAdvisor, parser SuggestionParser) *PricingAnalyzer {
	return &PricingAnalyzer{advisor: advisor, parser: parser}
}

func (a *PricingAnalyzer) Analyze(ctx context.Context, data *models.MenuInsightData) []models.Insight {
	var insights []models.Insight
	for _, category := range data.Menu.Categories {
		for _, item := range category.Items {
			if insight := a.analyzeItem(ctx, item, data); insight != nil {
				insights = append(insights, *insight)
			}
		}
	}
	return insights
}

func (a *PricingAnalyzer) analyzeItem(ctx context.Context, item models.MenuItemSnapshot, data *models.MenuInsightData) *models.Insight {
	sales, ok := data.SalesData[item.ID]
	if !ok {
		// no sales context: degrade to no recommendation rather than
		// fabricating confidence
		return nil
	}

	text, err := a.advisor.SuggestPrice(ctx, item, data)
	if err != nil || text == "" {
		return nil
	}
	suggestion, ok := a.parser.Parse(text)
	if !ok {
		return nil
	}

	recommended := suggestion.Price
	if recommended <= 0 {
		return nil
	}

	delta := recommended - item.Price
	if math.Abs(delta) <= priceNoiseThreshold {
		return nil
	}

	category := "Price Increase"
	priority := 8
	if delta < 0 {
		category = "Price Decrease"
		priority = 6
	}

	impact := models.ImpactMedium
	if math.Abs(delta) > priceImpactThreshold {
		impact = models.ImpactHigh
	}

	return &models.Insight{
		ID:               "pricing-" + item.ID,
		Type:             models.InsightTypePricing,
		Category:         category,
		Title:            fmt.Sprintf("Reprice %s to $%.2f", item.Name, recommended),
		Description:      fmt.Sprintf("%s currently sells at $%.2f; market context supports $%.2f.", item.Name, item.Price, recommended),
		Impact:           impact,
		Confidence:       suggestion.Confidence,
		Priority:         priority,
		EstimatedRevenue: math.Abs(delta) * monthlyVolumeProxy,
		Implementation: models.Implementation{
			Difficulty: models.DifficultyEasy,
			Timeframe:  "1 day",
			Cost:       0,
			Steps: []string{
				"Review the suggested price against current food costs",
				fmt.Sprintf("Update %s to $%.2f across menus and platform listings", item.Name, recommended),
				"Monitor order volume for two weeks",
			},
		},
		Data: models.InsightData{
			CurrentValue:     fmt.Sprintf("$%.2f", item.Price),
			RecommendedValue: fmt.Sprintf("$%.2f", recommended),
			Reasoning: []string{
				suggestion.Reasoning,
				fmt.Sprintf("%d orders and $%.2f revenue in the trailing period", sales.TotalSales, sales.Revenue),
			},
			SupportingData: &models.SupportingData{
				ItemID:           item.ID,
				ItemName:         item.Name,
				CurrentPrice:     item.Price,
				RecommendedPrice: recommended,
				TotalSales:       sales.TotalSales,
				Revenue:          sales.Revenue,
			},
		},
		CTA: models.CallToAction{
			Primary:   "Update price",
			Secondary: "See calculation",
			Actions: []models.Action{
				{
					ID:          "pricing-action-" + item.ID,
					Type:        models.ActionPriceUpdate,
					Label:       "Apply new price",
					Description: fmt.Sprintf("Set %s to $%.2f", item.Name, recommended),
					Data: models.ActionData{
						ItemID:       item.ID,
						ItemName:     item.Name,
						CurrentPrice: item.Price,
						NewPrice:     recommended,
					},
					AutoApplicable: false, // mutates pricing state
				},
			},
		},
	}
}
