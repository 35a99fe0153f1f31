package models

import "time"

type Customer struct {
	ID               string    `json:"id"`
	RestaurantID     string    `json:"restaurant_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Persona          string    `json:"persona"`
	Age              int       `json:"age"`
	AvgSpend         float64   `json:"avg_spend"`
	VisitFrequency   float64   `json:"visit_frequency"` // visits per month
	PreferredChannel string    `json:"preferred_channel"`
	ChurnRisk        string    `json:"churn_risk"`
	JoinedAt         time.Time `json:"joined_at"`
}
