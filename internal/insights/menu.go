package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dinesight/dinesight/internal/models"
)

const (
	removalSalesThreshold   = 10
	removalRevenueThreshold = 100.0
	maxRemovalInsights      = 3
	balanceRatio            = 0.5
)

// MenuOptimizationAnalyzer composes three sub-analyzers: menu gap analysis,
// low-performer removal and category balance. Ordering across the combined
// output is left to the aggregator.
type MenuOptimizationAnalyzer struct{}

func (a *MenuOptimizationAnalyzer) Analyze(data *models.MenuInsightData) []models.Insight {
	var insights []models.Insight
	insights = append(insights, a.gapInsights(data)...)
	insights = append(insights, a.removalInsights(data)...)
	insights = append(insights, a.balanceInsights(data)...)
	return insights
}

// gapInsights flags trending or locally popular categories missing from the
// menu. Without any market context it falls back to a single generic
// trending-item suggestion so the surface never goes empty.
func (a *MenuOptimizationAnalyzer) gapInsights(data *models.MenuInsightData) []models.Insight {
	existing := make(map[string]bool)
	for _, category := range data.Menu.Categories {
		existing[strings.ToLower(category.Name)] = true
	}

	if data.TrendsData == nil && data.CompetitorData == nil {
		return []models.Insight{genericTrendingSuggestion(data)}
	}

	var candidates []string
	if data.TrendsData != nil {
		candidates = append(candidates, data.TrendsData.TrendingCategories...)
	}
	if data.CompetitorData != nil {
		candidates = append(candidates, data.CompetitorData.PopularCuisines...)
	}

	seen := make(map[string]bool)
	var insights []models.Insight
	for _, candidate := range candidates {
		key := strings.ToLower(candidate)
		if existing[key] || seen[key] {
			continue
		}
		seen[key] = true
		insights = append(insights, models.Insight{
			ID:               "menu-gap-" + slugify(candidate),
			Type:             models.InsightTypeMenuOptimization,
			Category:         "Menu Addition",
			Title:            fmt.Sprintf("Add a %s section", candidate),
			Description:      fmt.Sprintf("%s is in demand locally but absent from your menu.", candidate),
			Impact:           models.ImpactMedium,
			Confidence:       0.65,
			Priority:         7,
			EstimatedRevenue: 400,
			Implementation: models.Implementation{
				Difficulty: models.DifficultyMedium,
				Timeframe:  "2-4 weeks",
				Cost:       250,
				Steps: []string{
					fmt.Sprintf("Shortlist 3-4 %s dishes that fit the kitchen", candidate),
					"Run a two-week trial as specials",
					"Promote the new section on connected platforms",
				},
			},
			Data: models.InsightData{
				CurrentValue:     "not on menu",
				RecommendedValue: candidate,
				Reasoning:        []string{fmt.Sprintf("%s appears in market demand data but not in any menu category", candidate)},
			},
			CTA: models.CallToAction{
				Primary: "Plan new section",
				Actions: []models.Action{
					{
						ID:             "menu-gap-action-" + slugify(candidate),
						Type:           models.ActionAddItem,
						Label:          "Draft menu section",
						Description:    fmt.Sprintf("Create a draft %s category", candidate),
						Data:           models.ActionData{CategoryName: candidate},
						AutoApplicable: false,
					},
				},
			},
		})
	}
	return insights
}

func genericTrendingSuggestion(data *models.MenuInsightData) models.Insight {
	return models.Insight{
		ID:               "menu-gap-generic",
		Type:             models.InsightTypeMenuOptimization,
		Category:         "Menu Addition",
		Title:            "Try a limited-time trending item",
		Description:      "No market data is connected yet; a rotating trending special keeps the menu fresh while data accrues.",
		Impact:           models.ImpactLow,
		Confidence:       0.5,
		Priority:         4,
		EstimatedRevenue: 150,
		Implementation: models.Implementation{
			Difficulty: models.DifficultyEasy,
			Timeframe:  "1 week",
			Cost:       50,
			Steps: []string{
				"Pick one trending dish compatible with current inventory",
				"Run it as a weekly special",
			},
		},
		Data: models.InsightData{
			CurrentValue: fmt.Sprintf("%d categories on menu", len(data.Menu.Categories)),
			Reasoning:    []string{"no competitor or trends data available; generic fallback suggestion"},
		},
		CTA: models.CallToAction{
			Primary: "Browse trending dishes",
			Actions: []models.Action{
				{
					ID:             "menu-gap-generic-action",
					Type:           models.ActionGenerateContent,
					Label:          "Generate special ideas",
					Description:    "Generate a shortlist of trending specials",
					AutoApplicable: true, // read-only content generation
				},
			},
		},
	}
}

// removalInsights flags at most the three lowest-performing items meeting
// BOTH totalSales < 10 AND revenue < 100. Both comparisons are strict.
func (a *MenuOptimizationAnalyzer) removalInsights(data *models.MenuInsightData) []models.Insight {
	if len(data.SalesData) == 0 {
		return nil
	}

	type candidate struct {
		item  models.MenuItemSnapshot
		sales models.ItemSales
	}
	var candidates []candidate
	for _, category := range data.Menu.Categories {
		for _, item := range category.Items {
			sales, ok := data.SalesData[item.ID]
			if !ok {
				continue
			}
			if sales.TotalSales < removalSalesThreshold && sales.Revenue < removalRevenueThreshold {
				candidates = append(candidates, candidate{item: item, sales: sales})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].sales.Revenue != candidates[j].sales.Revenue {
			return candidates[i].sales.Revenue < candidates[j].sales.Revenue
		}
		return candidates[i].sales.TotalSales < candidates[j].sales.TotalSales
	})
	if len(candidates) > maxRemovalInsights {
		candidates = candidates[:maxRemovalInsights]
	}

	var insights []models.Insight
	for _, c := range candidates {
		// monthly waste proxy: the 30% cost share times a nominal ten
		// preps per month; negative because this is a saving
		saving := -(c.item.Price * 0.3 * 10)
		insights = append(insights, models.Insight{
			ID:               "menu-removal-" + c.item.ID,
			Type:             models.InsightTypeMenuOptimization,
			Category:         "Item Removal",
			Title:            fmt.Sprintf("Retire %s", c.item.Name),
			Description:      fmt.Sprintf("%s sold %d times for $%.2f, below the viability floor.", c.item.Name, c.sales.TotalSales, c.sales.Revenue),
			Impact:           models.ImpactMedium,
			Confidence:       0.75,
			Priority:         6,
			EstimatedRevenue: saving,
			Implementation: models.Implementation{
				Difficulty: models.DifficultyEasy,
				Timeframe:  "1 week",
				Cost:       0,
				Steps: []string{
					"Confirm no pending orders reference the item",
					fmt.Sprintf("Remove %s from menus and platform listings", c.item.Name),
					"Reallocate prep capacity to better sellers",
				},
			},
			Data: models.InsightData{
				CurrentValue: fmt.Sprintf("%d sales, $%.2f revenue", c.sales.TotalSales, c.sales.Revenue),
				Reasoning:    []string{"sales and revenue both under the removal thresholds"},
				SupportingData: &models.SupportingData{
					ItemID:     c.item.ID,
					ItemName:   c.item.Name,
					TotalSales: c.sales.TotalSales,
					Revenue:    c.sales.Revenue,
				},
			},
			CTA: models.CallToAction{
				Primary: "Remove item",
				Actions: []models.Action{
					{
						ID:             "menu-removal-action-" + c.item.ID,
						Type:           models.ActionRemoveItem,
						Label:          "Remove from menu",
						Description:    fmt.Sprintf("Delist %s", c.item.Name),
						Data:           models.ActionData{ItemID: c.item.ID, ItemName: c.item.Name},
						AutoApplicable: false,
					},
				},
			},
		})
	}
	return insights
}

// balanceInsights flags categories stocking fewer than half the mean item
// count across categories.
func (a *MenuOptimizationAnalyzer) balanceInsights(data *models.MenuInsightData) []models.Insight {
	categories := data.Menu.Categories
	if len(categories) == 0 {
		return nil
	}

	total := 0
	for _, category := range categories {
		total += len(category.Items)
	}
	mean := float64(total) / float64(len(categories))

	var insights []models.Insight
	for _, category := range categories {
		count := len(category.Items)
		if float64(count) >= balanceRatio*mean {
			continue
		}
		insights = append(insights, models.Insight{
			ID:               "menu-balance-" + slugify(category.Name),
			Type:             models.InsightTypeMenuOptimization,
			Category:         "Category Expansion",
			Title:            fmt.Sprintf("Expand the %s category", category.Name),
			Description:      fmt.Sprintf("%s holds %d items against a menu average of %.1f.", category.Name, count, mean),
			Impact:           models.ImpactMedium,
			Confidence:       0.7,
			Priority:         5,
			EstimatedRevenue: 200,
			Implementation: models.Implementation{
				Difficulty: models.DifficultyMedium,
				Timeframe:  "2 weeks",
				Cost:       100,
				Steps: []string{
					fmt.Sprintf("Draft 2-3 additions for %s", category.Name),
					"Price them against category peers",
				},
			},
			Data: models.InsightData{
				CurrentValue:     fmt.Sprintf("%d items", count),
				RecommendedValue: fmt.Sprintf("%.0f items", mean),
				Reasoning:        []string{"category item count is under half the menu-wide mean"},
				SupportingData: &models.SupportingData{
					CategoryName:      category.Name,
					CategoryItemCount: count,
					MeanItemCount:     mean,
				},
			},
			CTA: models.CallToAction{
				Primary: "Plan additions",
				Actions: []models.Action{
					{
						ID:             "menu-balance-action-" + slugify(category.Name),
						Type:           models.ActionAddItem,
						Label:          "Add items",
						Description:    fmt.Sprintf("Draft additions for %s", category.Name),
						Data:           models.ActionData{CategoryName: category.Name},
						AutoApplicable: false,
					},
				},
			},
		})
	}
	return insights
}

func slugify(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
}
