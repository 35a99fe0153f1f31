package factories

import (
	"github.com/dinesight/dinesight/internal/catalog"
	"github.com/dinesight/dinesight/internal/models"
	"github.com/dinesight/dinesight/internal/rng"
	"github.com/lucsky/cuid"
)

type CustomerFactory struct{}

// CreateCustomers generates 100-300 customers for a restaurant, each drawn
// from the fixed persona set with jittered age, spend and visit frequency.
func (cf *CustomerFactory) CreateCustomers(restaurant *models.Restaurant, r *rng.Rand) []*models.Customer {
	count := r.IntBetween(100, 300)
	customers := make([]*models.Customer, 0, count)

	for i := 0; i < count; i++ {
		persona := rng.Choice(r, catalog.CustomerPersonas)

		age := persona.BaseAge + r.IntBetween(-6, 6)
		if age < 18 {
			age = 18
		}
		spend := persona.BaseSpend * r.FloatBetween(0.8, 1.2)
		frequency := persona.BaseFrequency * r.FloatBetween(0.7, 1.3)

		customers = append(customers, &models.Customer{
			ID:               cuid.New(),
			RestaurantID:     restaurant.ID,
			Name:             fake.Person().Name(),
			Email:            fake.Internet().Email(),
			Phone:            fake.Phone().Number(),
			Persona:          persona.Name,
			Age:              age,
			AvgSpend:         spend,
			VisitFrequency:   frequency,
			PreferredChannel: persona.PreferredChannel,
			ChurnRisk:        churnRisk(frequency),
			JoinedAt:         fake.Time().TimeBetween(restaurant.CreatedAt.AddDate(-1, 0, 0), restaurant.CreatedAt),
		})
	}

	return customers
}

// churnRisk derives from monthly visit frequency: >=3 low, >=1 medium,
// otherwise high.
func churnRisk(frequency float64) string {
	switch {
	case frequency >= 3:
		return models.ChurnRiskLow
	case frequency >= 1:
		return models.ChurnRiskMedium
	default:
		return models.ChurnRiskHigh
	}
}
