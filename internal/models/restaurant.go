package models

import "time"

type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

type Restaurant struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	SlugName       string              `json:"slug_name"`
	Cuisine        string              `json:"cuisine"`
	Description    string              `json:"description"`
	PriceBand      string              `json:"price_band"`
	Phone          string              `json:"phone"`
	Email          string              `json:"email"`
	Website        string              `json:"website"`
	AddressLine    string              `json:"address_line"`
	City           string              `json:"city"`
	Latitude       float64             `json:"latitude"`
	Longitude      float64             `json:"longitude"`
	OperatingHours map[string]DayHours `json:"operating_hours"`
	SocialHandles  map[string]string   `json:"social_handles"`
	Tags           []string            `json:"tags"`
	Amenities      []string            `json:"amenities"`
	AvgRating      float64             `json:"avg_rating"`
	TotalReviews   int                 `json:"total_reviews"`
	MonthlyOrders  int                 `json:"monthly_orders"`
	IsActive       bool                `json:"is_active"`
	CreatedAt      time.Time           `json:"created_at"`
}

type MenuCategory struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

type MenuItem struct {
	ID            string   `json:"id"`
	RestaurantID  string   `json:"restaurant_id"`
	CategoryID    string   `json:"category_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Cost          float64  `json:"cost"`
	IsVeg         bool     `json:"is_veg"`
	SpiceLevel    string   `json:"spice_level"`
	TasteTags     []string `json:"taste_tags"`
	PricingStatus string   `json:"pricing_status"`
	Trend         string   `json:"trend"`
	IsAvailable   bool     `json:"is_available"`
}

type MediaAsset struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Kind         string `json:"kind"`
	URL          string `json:"url"`
	Caption      string `json:"caption"`
}
