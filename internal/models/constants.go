package models

const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"

	InsightTypePricing          = "pricing"
	InsightTypeMenuOptimization = "menu-optimization"
	InsightTypePromotion        = "promotion"

	ActionPriceUpdate      = "price-update"
	ActionAddItem          = "add-item"
	ActionRemoveItem       = "remove-item"
	ActionCreatePromotion  = "create-promotion"
	ActionGenerateContent  = "generate-content"
	ActionScheduleCampaign = "schedule-campaign"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	PricingStatusOptimal     = "optimal"
	PricingStatusUnderpriced = "underpriced"
	PricingStatusOverpriced  = "overpriced"

	TrendIncreasing = "increasing"
	TrendStable     = "stable"
	TrendDeclining  = "declining"

	SpiceLevelMild   = "mild"
	SpiceLevelMedium = "medium"
	SpiceLevelHot    = "hot"

	ChurnRiskLow    = "low"
	ChurnRiskMedium = "medium"
	ChurnRiskHigh   = "high"

	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"

	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"

	IntegrationStatusConnected = "connected"
)
