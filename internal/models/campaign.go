package models

import "time"

type MarketingCampaign struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Kind         string    `json:"kind"` // promo, seasonal
	Status       string    `json:"status"`
	Budget       float64   `json:"budget"`
	Spend        float64   `json:"spend"`
	Impressions  int       `json:"impressions"`
	Clicks       int       `json:"clicks"`
	Conversions  int       `json:"conversions"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

type PlatformIntegration struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Platform     string    `json:"platform"` // google, zomato, swiggy
	Status       string    `json:"status"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"review_count"`
	ListingURL   string    `json:"listing_url"`
	LastSyncedAt time.Time `json:"last_synced_at"`
}
