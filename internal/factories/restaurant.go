package factories

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/dinesight/dinesight/internal/catalog"
	"github.com/dinesight/dinesight/internal/models"
	"github.com/dinesight/dinesight/internal/rng"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var fake = faker.New()

// SeedFaker rebinds the package faker to a deterministic source so contact
// fields (names, emails, phones, join dates) repeat across runs with the
// same seed. Call before generating; not safe alongside in-flight factories.
func SeedFaker(seed int64) {
	fake = faker.NewWithSeed(rand.NewSource(seed))
}

type RestaurantFactory struct {
	slugCache sync.Map // to track used slugs
}

// CreateRestaurant instantiates one restaurant from an archetype template.
// Geocoordinates are bounded to India: latitude [8,37], longitude [68,97].
func (rf *RestaurantFactory) CreateRestaurant(tmpl catalog.RestaurantArchetype, r *rng.Rand) *models.Restaurant {
	slug := rf.createUniqueSlug(tmpl.Name)

	return &models.Restaurant{
		ID:             cuid.New(),
		Name:           tmpl.Name,
		SlugName:       slug,
		Cuisine:        tmpl.Cuisine,
		Description:    tmpl.Description,
		PriceBand:      tmpl.PriceBand,
		Phone:          fake.Phone().Number(),
		Email:          fmt.Sprintf("hello@%s.in", slug),
		Website:        fmt.Sprintf("https://%s.in", slug),
		AddressLine:    fake.Address().StreetAddress(),
		City:           tmpl.City,
		Latitude:       r.FloatBetween(8.0, 37.0),
		Longitude:      r.FloatBetween(68.0, 97.0),
		OperatingHours: defaultOperatingHours(),
		SocialHandles: map[string]string{
			"instagram": "@" + strings.ReplaceAll(slug, "-", ""),
			"facebook":  slug,
			"twitter":   "@" + strings.ReplaceAll(slug, "-", "_"),
		},
		Tags:          tmpl.Tags,
		Amenities:     rng.Subset(r, catalog.AmenityCatalog, r.IntBetween(4, 8)),
		AvgRating:     r.FloatBetween(3.5, 4.8),
		TotalReviews:  r.IntBetween(50, 300),
		MonthlyOrders: r.IntBetween(400, 2500),
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
	}
}

// defaultOperatingHours builds the 7-day map: every day opens at 11:00 and
// closes at 22:30, except Friday and Saturday which stay open until 23:30.
func defaultOperatingHours() map[string]models.DayHours {
	hours := make(map[string]models.DayHours, 7)
	days := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	for _, day := range days {
		closeAt := "22:30"
		if day == "friday" || day == "saturday" {
			closeAt = "23:30"
		}
		hours[day] = models.DayHours{Open: "11:00", Close: closeAt}
	}
	return hours
}

func (rf *RestaurantFactory) createUniqueSlug(name string) string {
	base := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	base = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, base)

	slug := base
	counter := 1

	for {
		if _, exists := rf.slugCache.LoadOrStore(slug, true); !exists {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
		counter++
	}
}
