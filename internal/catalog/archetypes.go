// Package catalog holds the static template data the mock universe generator
// expands: restaurant archetypes, per-cuisine menus, customer personas,
// review templates and the market analytics reference set.
package catalog

type RestaurantArchetype struct {
	Name        string
	Cuisine     string
	Description string
	PriceBand   string
	City        string
	Tags        []string
}

// RestaurantArchetypes are instantiated positionally: restaurant i is built
// from template i, and requests beyond the catalog size are capped.
var RestaurantArchetypes = []RestaurantArchetype{
	{
		Name:        "Spice Symphony",
		Cuisine:     "north_indian",
		Description: "Slow-cooked North Indian classics with a tandoor-first kitchen and generous thalis.",
		PriceBand:   "₹₹",
		City:        "Delhi",
		Tags:        []string{"family", "tandoor", "thali"},
	},
	{
		Name:        "Dosa Junction",
		Cuisine:     "south_indian",
		Description: "Crisp dosas, fluffy idlis and filter coffee served from dawn until late.",
		PriceBand:   "₹",
		City:        "Bengaluru",
		Tags:        []string{"breakfast", "vegetarian", "quick"},
	},
	{
		Name:        "Dragon Wok",
		Cuisine:     "chinese",
		Description: "Indo-Chinese wok staples with house-made sauces and street-style plating.",
		PriceBand:   "₹₹",
		City:        "Mumbai",
		Tags:        []string{"wok", "street", "late-night"},
	},
	{
		Name:        "Bella Napoli",
		Cuisine:     "italian",
		Description: "Wood-fired pizzas and fresh pasta in a trattoria setting.",
		PriceBand:   "₹₹₹",
		City:        "Pune",
		Tags:        []string{"pizza", "date-night", "wine"},
	},
	{
		Name:        "Burger Barn",
		Cuisine:     "american",
		Description: "Smashed patties, loaded fries and thick shakes, built for delivery.",
		PriceBand:   "₹₹",
		City:        "Hyderabad",
		Tags:        []string{"burgers", "delivery", "casual"},
	},
	{
		Name:        "Sakura House",
		Cuisine:     "japanese",
		Description: "Sushi, ramen and izakaya small plates with a compact seasonal menu.",
		PriceBand:   "₹₹₹",
		City:        "Gurugram",
		Tags:        []string{"sushi", "premium", "minimal"},
	},
}

// AmenityCatalog is the fixed pool each restaurant draws a 4-8 element
// unique subset from.
var AmenityCatalog = []string{
	"wifi",
	"parking",
	"outdoor_seating",
	"air_conditioning",
	"live_music",
	"wheelchair_access",
	"private_dining",
	"bar",
	"kids_play_area",
	"pet_friendly",
	"valet",
	"rooftop",
}
