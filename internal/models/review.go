package models

import "time"

type Review struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	CustomerID   string    `json:"customer_id"`
	Rating       int       `json:"rating"`
	Sentiment    string    `json:"sentiment"`
	Content      string    `json:"content"`
	Response     string    `json:"response,omitempty"`
	IsFake       bool      `json:"is_fake"`
	CreatedAt    time.Time `json:"created_at"`
}
