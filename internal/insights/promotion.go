package insights

import (
	"fmt"
	"strings"

	"github.com/dinesight/dinesight/internal/models"
)

const (
	highMarginPriceFloor = 15.00
	maxMarginInsights    = 3
	maxSeasonalInsights  = 2
	maxTrendsReferenced  = 3
)

// PromotionAnalyzer runs four independent promotion analyzers, each gated on
// the data it needs: seasonal, margin, combo and trend.
type PromotionAnalyzer struct{}

func (a *PromotionAnalyzer) Analyze(data *models.MenuInsightData) []models.Insight {
	var insights []models.Insight
	insights = append(insights, a.seasonalInsights(data)...)
	insights = append(insights, a.marginInsights(data)...)
	insights = append(insights, a.comboInsights(data)...)
	insights = append(insights, a.trendInsights(data)...)
	return insights
}

func (a *PromotionAnalyzer) seasonalInsights(data *models.MenuInsightData) []models.Insight {
	if data.SeasonalData == nil {
		return nil
	}

	occasions := data.SeasonalData.UpcomingFestivals
	if len(occasions) == 0 {
		occasions = []string{data.SeasonalData.CurrentSeason}
	}
	if len(occasions) > maxSeasonalInsights {
		occasions = occasions[:maxSeasonalInsights]
	}

	var insights []models.Insight
	for _, occasion := range occasions {
		insights = append(insights, models.Insight{
			ID:               "promo-seasonal-" + slugify(occasion),
			Type:             models.InsightTypePromotion,
			Category:         "Seasonal Promotion",
			Title:            fmt.Sprintf("Run a %s promotion", occasion),
			Description:      fmt.Sprintf("A limited %s offer captures occasion-driven demand.", occasion),
			Impact:           models.ImpactMedium,
			Confidence:       0.75,
			Priority:         7,
			EstimatedRevenue: 350,
			Implementation: models.Implementation{
				Difficulty: models.DifficultyEasy,
				Timeframe:  "1 week",
				Cost:       75,
				Steps: []string{
					fmt.Sprintf("Pick 2-3 dishes that fit the %s occasion", occasion),
					"Bundle them with a modest discount",
					"Schedule posts across connected platforms",
				},
			},
			Data: models.InsightData{
				CurrentValue: data.SeasonalData.CurrentSeason,
				Reasoning:    []string{fmt.Sprintf("%s is coming up within the planning window", occasion)},
			},
			CTA: models.CallToAction{
				Primary: "Create promotion",
				Actions: []models.Action{
					{
						ID:             "promo-seasonal-action-" + slugify(occasion),
						Type:           models.ActionCreatePromotion,
						Label:          "Draft offer",
						Description:    fmt.Sprintf("Draft a %s offer", occasion),
						Data:           models.ActionData{PromotionName: occasion},
						AutoApplicable: false,
					},
				},
			},
		})
	}
	return insights
}

// marginInsights promotes up to three items priced above the high-margin
// floor, one insight per item.
func (a *PromotionAnalyzer) marginInsights(data *models.MenuInsightData) []models.Insight {
	var insights []models.Insight
	for _, category := range data.Menu.Categories {
		for _, item := range category.Items {
			if item.Price <= highMarginPriceFloor {
				continue
			}
			insights = append(insights, models.Insight{
				ID:               "promo-margin-" + item.ID,
				Type:             models.InsightTypePromotion,
				Category:         "High-Margin Push",
				Title:            fmt.Sprintf("Feature %s", item.Name),
				Description:      fmt.Sprintf("%s carries a healthy margin at $%.2f; featuring it lifts ticket size.", item.Name, item.Price),
				Impact:           models.ImpactHigh,
				Confidence:       0.8,
				Priority:         8,
				EstimatedRevenue: 300,
				Implementation: models.Implementation{
					Difficulty: models.DifficultyEasy,
					Timeframe:  "3 days",
					Cost:       25,
					Steps: []string{
						fmt.Sprintf("Move %s to the top of its category", item.Name),
						"Add a chef's-pick badge on platform listings",
					},
				},
				Data: models.InsightData{
					CurrentValue: fmt.Sprintf("$%.2f", item.Price),
					Reasoning:    []string{"price above the high-margin floor used as a margin proxy"},
					SupportingData: &models.SupportingData{
						ItemID:       item.ID,
						ItemName:     item.Name,
						CurrentPrice: item.Price,
					},
				},
				CTA: models.CallToAction{
					Primary: "Feature item",
					Actions: []models.Action{
						{
							ID:             "promo-margin-action-" + item.ID,
							Type:           models.ActionGenerateContent,
							Label:          "Generate feature post",
							Description:    fmt.Sprintf("Generate social content featuring %s", item.Name),
							Data:           models.ActionData{ItemID: item.ID, ItemName: item.Name},
							AutoApplicable: true, // content generation only
						},
					},
				},
			})
			if len(insights) == maxMarginInsights {
				return insights
			}
		}
	}
	return insights
}

// comboInsights emits exactly one fixed combo recommendation whenever any
// sales data is present, regardless of its volume.
func (a *PromotionAnalyzer) comboInsights(data *models.MenuInsightData) []models.Insight {
	if len(data.SalesData) == 0 {
		return nil
	}
	return []models.Insight{{
		ID:               "promo-combo",
		Type:             models.InsightTypePromotion,
		Category:         "Combo Deal",
		Title:            "Create Value Combo Meals",
		Description:      "Bundling frequently co-ordered items into combos raises average order value.",
		Impact:           models.ImpactHigh,
		Confidence:       0.85,
		Priority:         9,
		EstimatedRevenue: 500,
		Implementation: models.Implementation{
			Difficulty: models.DifficultyMedium,
			Timeframe:  "2 weeks",
			Cost:       150,
			Steps: []string{
				"Identify the three most co-ordered item pairs",
				"Price each combo 10-15% under the à la carte total",
				"Launch with a two-week platform banner",
			},
		},
		Data: models.InsightData{
			CurrentValue: fmt.Sprintf("%d items with sales history", len(data.SalesData)),
			Reasoning:    []string{"sales history available to identify co-ordered items"},
		},
		CTA: models.CallToAction{
			Primary: "Build combos",
			Actions: []models.Action{
				{
					ID:             "promo-combo-action",
					Type:           models.ActionCreatePromotion,
					Label:          "Draft combo menu",
					Description:    "Draft value combo meals from co-order history",
					Data:           models.ActionData{PromotionName: "Value Combo Meals"},
					AutoApplicable: false,
				},
			},
		},
	}}
}

// trendInsights emits exactly one marketing recommendation referencing up to
// the first three food trends.
func (a *PromotionAnalyzer) trendInsights(data *models.MenuInsightData) []models.Insight {
	if data.TrendsData == nil || len(data.TrendsData.FoodTrends) == 0 {
		return nil
	}

	trends := data.TrendsData.FoodTrends
	if len(trends) > maxTrendsReferenced {
		trends = trends[:maxTrendsReferenced]
	}

	return []models.Insight{{
		ID:               "promo-trend",
		Type:             models.InsightTypePromotion,
		Category:         "Trend Marketing",
		Title:            "Ride current food trends",
		Description:      fmt.Sprintf("Lean marketing into what's trending now: %s.", strings.Join(trends, ", ")),
		Impact:           models.ImpactMedium,
		Confidence:       0.7,
		Priority:         6,
		EstimatedRevenue: 250,
		Implementation: models.Implementation{
			Difficulty: models.DifficultyEasy,
			Timeframe:  "1 week",
			Cost:       50,
			Steps: []string{
				"Map existing dishes onto the trending themes",
				"Schedule a themed content series",
			},
		},
		Data: models.InsightData{
			CurrentValue: fmt.Sprintf("%d active trends", len(data.TrendsData.FoodTrends)),
			Reasoning:    []string{"food trends data available for campaign targeting"},
			SupportingData: &models.SupportingData{
				Trends: trends,
			},
		},
		CTA: models.CallToAction{
			Primary: "Schedule campaign",
			Actions: []models.Action{
				{
					ID:             "promo-trend-action",
					Type:           models.ActionScheduleCampaign,
					Label:          "Schedule trend series",
					Description:    "Schedule a content series around current trends",
					Data:           models.ActionData{PromotionName: "Trend Series"},
					AutoApplicable: false,
				},
			},
		},
	}}
}
