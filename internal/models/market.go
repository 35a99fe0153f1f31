package models

// Static analytics catalog entries. All scores use a native 1-10 scale and
// feed the weighted market-fit formula.
type MarketSegment struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	WillingnessToPay  float64 `json:"willingness_to_pay"`
	AdoptionReadiness float64 `json:"adoption_readiness"`
}

type MarketCompetitor struct {
	Name                string  `json:"name"`
	CompetitivePressure float64 `json:"competitive_pressure"`
	ThreatLevel         float64 `json:"threat_level"`
}

type MarketTrend struct {
	Name           string  `json:"name"`
	Direction      string  `json:"direction"`
	RelevanceScore float64 `json:"relevance_score"`
}

type MarketFitComponents struct {
	WillingnessToPay    float64 `json:"willingness_to_pay"`
	AdoptionReadiness   float64 `json:"adoption_readiness"`
	CompetitivePressure float64 `json:"competitive_pressure"` // inverted: higher is better
	ThreatLevel         float64 `json:"threat_level"`         // inverted: higher is better
	TrendRelevance      float64 `json:"trend_relevance"`
}

type MarketFitReport struct {
	Score      float64             `json:"score"` // 0-100
	Category   string              `json:"category"`
	Components MarketFitComponents `json:"components"`
}

type PricingTier struct {
	Name                  string  `json:"name"`
	MonthlyCost           float64 `json:"monthly_cost"`
	RevenueLiftPct        float64 `json:"revenue_lift_pct"`
	RetentionLiftPct      float64 `json:"retention_lift_pct"`
	OperationalSavingsPct float64 `json:"operational_savings_pct"`
	MarketingSavingsPct   float64 `json:"marketing_savings_pct"`
}

type ROIEstimate struct {
	RevenueGain         float64 `json:"revenue_gain"`
	RetentionGain       float64 `json:"retention_gain"`
	OperationalSavings  float64 `json:"operational_savings"`
	MarketingSavings    float64 `json:"marketing_savings"`
	TotalBenefit        float64 `json:"total_benefit"`
	Cost                float64 `json:"cost"`
	NetBenefit          float64 `json:"net_benefit"`
	ROI                 float64 `json:"roi"` // percent
	PaybackPeriodMonths float64 `json:"payback_period_months"`
	PaybackDisplay      string  `json:"payback_display"` // "N/A" when net benefit is not positive
}
