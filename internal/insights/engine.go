package insights

import (
	"context"
	"sort"
	"sync"

	"github.com/dinesight/dinesight/internal/models"
)

const (
	maxPricingInsights   = 4
	maxMenuInsights      = 4
	maxPromotionInsights = 3
)

// Engine fans the input out to the three analyzer families and merges their
// results into a single ranked list.
type Engine struct {
	pricing   *PricingAnalyzer
	menu      *MenuOptimizationAnalyzer
	promotion *PromotionAnalyzer
}

func NewEngine(advisor PricingAdvisor, parser SuggestionParser) *Engine {
	return &Engine{
		pricing:   NewPricingAnalyzer(advisor, parser),
		menu:      &MenuOptimizationAnalyzer{},
		promotion: &PromotionAnalyzer{},
	}
}

// NewDefaultEngine wires the benchmark-backed advisor and dollar-figure
// parser, the stock configuration for offline analysis.
func NewDefaultEngine() *Engine {
	return NewEngine(&BenchmarkAdvisor{}, &DollarFigureParser{})
}

// GenerateComprehensiveInsights runs all three analyzer families and returns
// at most 11 insights (4 pricing, 4 menu, 3 promotion), ordered by impact
// then priority. Analyzers run concurrently; each writes only its own slot.
func (e *Engine) GenerateComprehensiveInsights(ctx context.Context, data *models.MenuInsightData) []models.Insight {
	var (
		wg        sync.WaitGroup
		pricing   []models.Insight
		menu      []models.Insight
		promotion []models.Insight
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		pricing = e.pricing.Analyze(ctx, data)
	}()
	go func() {
		defer wg.Done()
		menu = e.menu.Analyze(data)
	}()
	go func() {
		defer wg.Done()
		promotion = e.promotion.Analyze(data)
	}()
	wg.Wait()

	merged := make([]models.Insight, 0, maxPricingInsights+maxMenuInsights+maxPromotionInsights)
	merged = append(merged, capInsights(pricing, maxPricingInsights)...)
	merged = append(merged, capInsights(menu, maxMenuInsights)...)
	merged = append(merged, capInsights(promotion, maxPromotionInsights)...)

	sort.SliceStable(merged, func(i, j int) bool {
		ri, rj := impactRank(merged[i].Impact), impactRank(merged[j].Impact)
		if ri != rj {
			return ri > rj
		}
		return merged[i].Priority > merged[j].Priority
	})
	return merged
}

func capInsights(insights []models.Insight, limit int) []models.Insight {
	if len(insights) > limit {
		return insights[:limit]
	}
	return insights
}

func impactRank(impact string) int {
	switch impact {
	case models.ImpactHigh:
		return 3
	case models.ImpactMedium:
		return 2
	default:
		return 1
	}
}
