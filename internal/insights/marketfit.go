package insights

import (
	"fmt"

	"github.com/dinesight/dinesight/internal/catalog"
	"github.com/dinesight/dinesight/internal/models"
)

// Market-fit component weights. They sum to 1.0 so the composite score stays
// on the same 0-100 scale as the components.
const (
	weightWillingnessToPay    = 0.25
	weightAdoptionReadiness   = 0.25
	weightCompetitivePressure = 0.20
	weightThreatLevel         = 0.15
	weightTrendRelevance      = 0.15
)

// CalculateMarketFit scores product-market fit from segment, competitor and
// trend inputs. Native 1-10 ratings are normalized to 0-100; competitive
// pressure and threat level are inverted so that higher component values
// always mean a better fit. Empty inputs contribute a zero component rather
// than an error.
func CalculateMarketFit(segments []models.MarketSegment, competitors []models.MarketCompetitor, trends []models.MarketTrend) models.MarketFitReport {
	var components models.MarketFitComponents

	if len(segments) > 0 {
		var wtp, adoption float64
		for _, s := range segments {
			wtp += s.WillingnessToPay
			adoption += s.AdoptionReadiness
		}
		n := float64(len(segments))
		components.WillingnessToPay = wtp / n * 10
		components.AdoptionReadiness = adoption / n * 10
	}

	if len(competitors) > 0 {
		var pressure, threat float64
		for _, c := range competitors {
			pressure += c.CompetitivePressure
			threat += c.ThreatLevel
		}
		n := float64(len(competitors))
		components.CompetitivePressure = 100 - pressure/n*10
		components.ThreatLevel = 100 - threat/n*10
	}

	if len(trends) > 0 {
		var relevance float64
		for _, t := range trends {
			relevance += t.RelevanceScore
		}
		components.TrendRelevance = relevance / float64(len(trends)) * 10
	}

	score := components.WillingnessToPay*weightWillingnessToPay +
		components.AdoptionReadiness*weightAdoptionReadiness +
		components.CompetitivePressure*weightCompetitivePressure +
		components.ThreatLevel*weightThreatLevel +
		components.TrendRelevance*weightTrendRelevance

	return models.MarketFitReport{
		Score:      score,
		Category:   FitCategory(score),
		Components: components,
	}
}

// FitCategory maps a 0-100 market-fit score to its label.
func FitCategory(score float64) string {
	switch {
	case score >= 85:
		return "Excellent"
	case score >= 70:
		return "Strong"
	case score >= 50:
		return "Good"
	default:
		return "Needs Repositioning"
	}
}

// DefaultMarketFit scores the built-in analytics catalog.
func DefaultMarketFit() models.MarketFitReport {
	return CalculateMarketFit(catalog.MarketSegments, catalog.MarketCompetitors, catalog.MarketTrends)
}

// CalculateROI projects monthly benefit for a subscription tier against the
// caller's current monthly revenue. Payback is reported as "N/A" when the
// tier does not pay for itself.
func CalculateROI(monthlyRevenue float64, tier models.PricingTier) models.ROIEstimate {
	est := models.ROIEstimate{
		RevenueGain:        monthlyRevenue * tier.RevenueLiftPct,
		RetentionGain:      monthlyRevenue * tier.RetentionLiftPct,
		OperationalSavings: monthlyRevenue * tier.OperationalSavingsPct,
		MarketingSavings:   monthlyRevenue * tier.MarketingSavingsPct,
		Cost:               tier.MonthlyCost,
	}
	est.TotalBenefit = est.RevenueGain + est.RetentionGain + est.OperationalSavings + est.MarketingSavings
	est.NetBenefit = est.TotalBenefit - est.Cost

	if tier.MonthlyCost > 0 {
		est.ROI = est.NetBenefit / tier.MonthlyCost * 100
	}

	if est.NetBenefit > 0 {
		est.PaybackPeriodMonths = tier.MonthlyCost / est.NetBenefit
		est.PaybackDisplay = fmt.Sprintf("%.1f months", est.PaybackPeriodMonths)
	} else {
		est.PaybackDisplay = "N/A"
	}
	return est
}
