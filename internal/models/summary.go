package models

// GenerationSummary reports what a full seed run inserted. The counts must
// match the rows actually written: no silent drops.
type GenerationSummary struct {
	Restaurants       int   `json:"restaurants"`
	TotalMenuItems    int   `json:"total_menu_items"`
	TotalCustomers    int   `json:"total_customers"`
	TotalReviews      int   `json:"total_reviews"`
	TotalCampaigns    int   `json:"total_campaigns"`
	TotalIntegrations int   `json:"total_integrations"`
	TotalMediaAssets  int   `json:"total_media_assets"`
	GenerationTimeMs  int64 `json:"generation_time_ms"`
}
