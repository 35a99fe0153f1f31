package models

import "time"

// Insight is a single actionable recommendation produced by the insight
// engine. Insights are read-only advice: analyzers never mutate the menu or
// sales data they inspect.
type Insight struct {
	ID               string         `json:"id"`
	Type             string         `json:"type"` // pricing, menu-optimization, promotion
	Category         string         `json:"category"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Impact           string         `json:"impact"`
	Confidence       float64        `json:"confidence"`
	Priority         int            `json:"priority"`
	EstimatedRevenue float64        `json:"estimated_revenue"` // negative values are cost savings
	Implementation   Implementation `json:"implementation"`
	Data             InsightData    `json:"data"`
	CTA              CallToAction   `json:"cta"`
}

type Implementation struct {
	Difficulty string   `json:"difficulty"`
	Timeframe  string   `json:"timeframe"`
	Cost       float64  `json:"cost"`
	Steps      []string `json:"steps"`
}

// InsightData carries the evidence behind a recommendation. CurrentValue and
// RecommendedValue are display strings; SupportingData holds the typed
// numeric context for the insight's type.
type InsightData struct {
	CurrentValue     string          `json:"current_value"`
	RecommendedValue string          `json:"recommended_value,omitempty"`
	Reasoning        []string        `json:"reasoning"`
	SupportingData   *SupportingData `json:"supporting_data,omitempty"`
}

type SupportingData struct {
	ItemID            string   `json:"item_id,omitempty"`
	ItemName          string   `json:"item_name,omitempty"`
	CurrentPrice      float64  `json:"current_price,omitempty"`
	RecommendedPrice  float64  `json:"recommended_price,omitempty"`
	TotalSales        int      `json:"total_sales,omitempty"`
	Revenue           float64  `json:"revenue,omitempty"`
	CategoryName      string   `json:"category_name,omitempty"`
	CategoryItemCount int      `json:"category_item_count,omitempty"`
	MeanItemCount     float64  `json:"mean_item_count,omitempty"`
	Trends            []string `json:"trends,omitempty"`
}

type CallToAction struct {
	Primary   string   `json:"primary"`
	Secondary string   `json:"secondary,omitempty"`
	Actions   []Action `json:"actions"`
}

// Action describes an operation the UI may offer alongside an insight.
// AutoApplicable actions are safe to run without confirmation; actions that
// mutate menu or pricing state must carry AutoApplicable=false.
type Action struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	Label          string     `json:"label"`
	Description    string     `json:"description"`
	Data           ActionData `json:"data"`
	AutoApplicable bool       `json:"auto_applicable"`
}

type ActionData struct {
	ItemID        string  `json:"item_id,omitempty"`
	ItemName      string  `json:"item_name,omitempty"`
	CurrentPrice  float64 `json:"current_price,omitempty"`
	NewPrice      float64 `json:"new_price,omitempty"`
	CategoryName  string  `json:"category_name,omitempty"`
	PromotionName string  `json:"promotion_name,omitempty"`
}

// MenuInsightData is the full input context for the insight engine. Every
// field beyond the menu itself is optional; analyzers that lack the context
// they need return no insights instead of failing.
type MenuInsightData struct {
	RestaurantID    string               `json:"restaurant_id"`
	Menu            MenuSnapshot         `json:"menu"`
	SalesData       map[string]ItemSales `json:"sales_data,omitempty"` // keyed by menu item ID
	CustomerProfile *CustomerProfile     `json:"customer_profile,omitempty"`
	LocationData    *LocationData        `json:"location_data,omitempty"`
	SeasonalData    *SeasonalData        `json:"seasonal_data,omitempty"`
	CompetitorData  *CompetitorData      `json:"competitor_data,omitempty"`
	TrendsData      *TrendsData          `json:"trends_data,omitempty"`
}

type MenuSnapshot struct {
	Categories []MenuCategorySnapshot `json:"categories"`
}

type MenuCategorySnapshot struct {
	Name  string             `json:"name"`
	Items []MenuItemSnapshot `json:"items"`
}

type MenuItemSnapshot struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ItemSales struct {
	TotalSales        int       `json:"total_sales"`
	Revenue           float64   `json:"revenue"`
	OrderFrequency    float64   `json:"order_frequency"`
	AvgOrderValue     float64   `json:"avg_order_value"`
	PeakHours         []int     `json:"peak_hours,omitempty"`
	SeasonalVariation float64   `json:"seasonal_variation"`
	Rating            float64   `json:"rating"`
	LastOrderDate     time.Time `json:"last_order_date"`
}

type CustomerProfile struct {
	AgeGroups        map[string]float64 `json:"age_groups,omitempty"`
	OrderingPatterns []string           `json:"ordering_patterns,omitempty"`
	Preferences      []string           `json:"preferences,omitempty"`
}

type LocationData struct {
	City        string `json:"city"`
	Area        string `json:"area,omitempty"`
	FootTraffic string `json:"foot_traffic,omitempty"`
}

type SeasonalData struct {
	CurrentSeason     string   `json:"current_season"`
	UpcomingFestivals []string `json:"upcoming_festivals,omitempty"`
}

type CompetitorData struct {
	AvgPrice        float64            `json:"avg_price,omitempty"`
	Benchmarks      map[string]float64 `json:"benchmarks,omitempty"` // item name -> market price
	PopularCuisines []string           `json:"popular_cuisines,omitempty"`
}

type TrendsData struct {
	FoodTrends         []string `json:"food_trends,omitempty"`
	TrendingCategories []string `json:"trending_categories,omitempty"`
}
