package catalog

import "github.com/dinesight/dinesight/internal/models"

// Static analytics reference set consumed by the market-fit score. All
// ratings use a 1-10 scale.
var MarketSegments = []models.MarketSegment{
	{Name: "Independent quick-service restaurants", Description: "Single-location QSRs with thin margins and high platform dependence", WillingnessToPay: 6.5, AdoptionReadiness: 7.5},
	{Name: "Casual dining groups", Description: "2-10 location operators with an owner-led marketing function", WillingnessToPay: 8.0, AdoptionReadiness: 7.0},
	{Name: "Cloud kitchens", Description: "Delivery-only brands living and dying by listing quality", WillingnessToPay: 7.5, AdoptionReadiness: 9.0},
	{Name: "Fine dining", Description: "Reservation-driven rooms with established agencies", WillingnessToPay: 8.5, AdoptionReadiness: 4.5},
}

var MarketCompetitors = []models.MarketCompetitor{
	{Name: "Generic social schedulers", CompetitivePressure: 6.0, ThreatLevel: 4.5},
	{Name: "Agency retainers", CompetitivePressure: 5.0, ThreatLevel: 5.5},
	{Name: "Platform-native promo tools", CompetitivePressure: 7.5, ThreatLevel: 7.0},
	{Name: "DIY spreadsheets", CompetitivePressure: 3.5, ThreatLevel: 2.5},
}

var MarketTrends = []models.MarketTrend{
	{Name: "AI-generated marketing content", Direction: "increasing", RelevanceScore: 9.5},
	{Name: "First-party ordering channels", Direction: "increasing", RelevanceScore: 8.0},
	{Name: "Hyperlocal delivery aggregation", Direction: "stable", RelevanceScore: 7.0},
	{Name: "Review-driven discovery", Direction: "increasing", RelevanceScore: 8.5},
	{Name: "Print and radio spend", Direction: "declining", RelevanceScore: 2.5},
}

// PricingTiers feed the ROI calculator. Percentages apply to the caller's
// monthly revenue.
var PricingTiers = map[string]models.PricingTier{
	"starter": {Name: "starter", MonthlyCost: 49, RevenueLiftPct: 0.03, RetentionLiftPct: 0.01, OperationalSavingsPct: 0.005, MarketingSavingsPct: 0.01},
	"growth":  {Name: "growth", MonthlyCost: 149, RevenueLiftPct: 0.06, RetentionLiftPct: 0.02, OperationalSavingsPct: 0.01, MarketingSavingsPct: 0.02},
	"scale":   {Name: "scale", MonthlyCost: 399, RevenueLiftPct: 0.10, RetentionLiftPct: 0.03, OperationalSavingsPct: 0.02, MarketingSavingsPct: 0.03},
}
