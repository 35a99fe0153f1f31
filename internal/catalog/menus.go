package catalog

type MenuItemTemplate struct {
	Name        string
	Description string
	Price       float64
	IsVeg       bool
	TasteTags   []string
}

type MenuCategoryTemplate struct {
	Name        string
	Description string
	Items       []MenuItemTemplate
}

// MenuTemplates maps a cuisine to its category layout. Every generated menu
// item is a copy of one of these rows with derived cost, spice level,
// pricing status and trend.
var MenuTemplates = map[string][]MenuCategoryTemplate{
	"north_indian": {
		{
			Name:        "Starters",
			Description: "Tandoor and tawa starters",
			Items: []MenuItemTemplate{
				{Name: "Paneer Tikka", Description: "Char-grilled cottage cheese with mint chutney", Price: 11.50, IsVeg: true, TasteTags: []string{"smoky", "spicy"}},
				{Name: "Chicken Malai Kebab", Description: "Cream-marinated kebabs finished in the tandoor", Price: 13.00, IsVeg: false, TasteTags: []string{"rich", "mild"}},
				{Name: "Samosa Chaat", Description: "Crushed samosas under yoghurt and tamarind", Price: 7.50, IsVeg: true, TasteTags: []string{"tangy", "spicy"}},
				{Name: "Amritsari Fish", Description: "Ajwain-battered river fish, fried crisp", Price: 12.00, IsVeg: false, TasteTags: []string{"crispy", "spicy"}},
			},
		},
		{
			Name:        "Mains",
			Description: "Curries and gravies",
			Items: []MenuItemTemplate{
				{Name: "Butter Chicken", Description: "Tomato-butter gravy with charred chicken", Price: 16.50, IsVeg: false, TasteTags: []string{"rich", "mild"}},
				{Name: "Dal Makhani", Description: "Black lentils simmered overnight", Price: 12.50, IsVeg: true, TasteTags: []string{"creamy", "mild"}},
				{Name: "Rogan Josh", Description: "Kashmiri lamb curry with whole spices", Price: 18.00, IsVeg: false, TasteTags: []string{"spicy", "aromatic"}},
				{Name: "Palak Paneer", Description: "Spinach purée with pan-seared paneer", Price: 13.00, IsVeg: true, TasteTags: []string{"earthy", "mild"}},
				{Name: "Chole Bhature", Description: "Spiced chickpeas with fried bread", Price: 10.50, IsVeg: true, TasteTags: []string{"spicy", "hearty"}},
			},
		},
		{
			Name:        "Breads & Rice",
			Description: "From the tandoor and the dum pot",
			Items: []MenuItemTemplate{
				{Name: "Garlic Naan", Description: "Butter-brushed tandoor bread", Price: 4.50, IsVeg: true, TasteTags: []string{"buttery"}},
				{Name: "Chicken Biryani", Description: "Dum-cooked basmati with saffron", Price: 15.50, IsVeg: false, TasteTags: []string{"aromatic", "spicy"}},
				{Name: "Jeera Rice", Description: "Cumin-tempered basmati", Price: 6.00, IsVeg: true, TasteTags: []string{"mild"}},
			},
		},
	},
	"south_indian": {
		{
			Name:        "Dosas",
			Description: "Fermented rice crepes",
			Items: []MenuItemTemplate{
				{Name: "Masala Dosa", Description: "Potato-filled crepe with sambar and chutneys", Price: 8.00, IsVeg: true, TasteTags: []string{"crispy", "mild"}},
				{Name: "Mysore Masala Dosa", Description: "Red chutney smeared, extra crisp", Price: 9.00, IsVeg: true, TasteTags: []string{"spicy", "crispy"}},
				{Name: "Ghee Roast Dosa", Description: "Paper-thin and ghee-laced", Price: 9.50, IsVeg: true, TasteTags: []string{"buttery", "crispy"}},
				{Name: "Cheese Dosa", Description: "A molten crowd-pleaser", Price: 10.00, IsVeg: true, TasteTags: []string{"cheesy", "mild"}},
			},
		},
		{
			Name:        "Tiffin",
			Description: "Steamed and snack plates",
			Items: []MenuItemTemplate{
				{Name: "Idli Sambar", Description: "Steamed rice cakes in lentil broth", Price: 6.00, IsVeg: true, TasteTags: []string{"soft", "mild"}},
				{Name: "Medu Vada", Description: "Crisp lentil doughnuts", Price: 6.50, IsVeg: true, TasteTags: []string{"crispy", "mild"}},
				{Name: "Pongal", Description: "Pepper-ghee rice and moong dal", Price: 7.00, IsVeg: true, TasteTags: []string{"peppery", "hearty"}},
			},
		},
		{
			Name:        "Beverages",
			Description: "To finish",
			Items: []MenuItemTemplate{
				{Name: "Filter Coffee", Description: "Frothing metal-tumbler coffee", Price: 3.00, IsVeg: true, TasteTags: []string{"strong"}},
				{Name: "Buttermilk", Description: "Churned and spiced", Price: 2.50, IsVeg: true, TasteTags: []string{"tangy", "mild"}},
			},
		},
	},
	"chinese": {
		{
			Name:        "Appetizers",
			Description: "Wok-tossed starters",
			Items: []MenuItemTemplate{
				{Name: "Chilli Chicken", Description: "Crisp chicken tossed with peppers", Price: 12.00, IsVeg: false, TasteTags: []string{"spicy", "crispy"}},
				{Name: "Veg Spring Rolls", Description: "Hand-rolled and fried", Price: 7.00, IsVeg: true, TasteTags: []string{"crispy", "mild"}},
				{Name: "Honey Chilli Potato", Description: "Sticky-sweet fried potato fingers", Price: 8.00, IsVeg: true, TasteTags: []string{"sweet", "spicy"}},
				{Name: "Chicken Momos", Description: "Steamed dumplings with fiery chutney", Price: 8.50, IsVeg: false, TasteTags: []string{"spicy", "steamed"}},
			},
		},
		{
			Name:        "Mains",
			Description: "Rice, noodles and gravies",
			Items: []MenuItemTemplate{
				{Name: "Hakka Noodles", Description: "Smoky wok noodles with vegetables", Price: 10.50, IsVeg: true, TasteTags: []string{"savoury", "mild"}},
				{Name: "Schezwan Fried Rice", Description: "Fiery chilli-garlic fried rice", Price: 11.00, IsVeg: true, TasteTags: []string{"spicy"}},
				{Name: "Kung Pao Chicken", Description: "Peanuts, dried chillies and glaze", Price: 14.50, IsVeg: false, TasteTags: []string{"spicy", "nutty"}},
				{Name: "Sweet & Sour Pork", Description: "Pineapple-laced classic", Price: 15.00, IsVeg: false, TasteTags: []string{"sweet", "tangy"}},
			},
		},
		{
			Name:        "Soups",
			Description: "Starters in a bowl",
			Items: []MenuItemTemplate{
				{Name: "Hot & Sour Soup", Description: "Peppery vegetable broth", Price: 6.50, IsVeg: true, TasteTags: []string{"spicy", "tangy"}},
				{Name: "Sweet Corn Soup", Description: "Comfort in a bowl", Price: 6.00, IsVeg: true, TasteTags: []string{"sweet", "mild"}},
			},
		},
	},
	"italian": {
		{
			Name:        "Pizzas",
			Description: "Wood-fired, 12 inch",
			Items: []MenuItemTemplate{
				{Name: "Margherita", Description: "San Marzano tomato, fior di latte, basil", Price: 13.00, IsVeg: true, TasteTags: []string{"classic", "mild"}},
				{Name: "Pepperoni", Description: "Cup-and-char pepperoni, chilli honey", Price: 16.00, IsVeg: false, TasteTags: []string{"spicy", "smoky"}},
				{Name: "Quattro Formaggi", Description: "Four-cheese white pie", Price: 17.00, IsVeg: true, TasteTags: []string{"cheesy", "rich"}},
				{Name: "Funghi", Description: "Roast mushroom, thyme, taleggio", Price: 15.50, IsVeg: true, TasteTags: []string{"earthy", "mild"}},
			},
		},
		{
			Name:        "Pasta",
			Description: "Fresh daily",
			Items: []MenuItemTemplate{
				{Name: "Spaghetti Carbonara", Description: "Guanciale, pecorino, egg yolk", Price: 15.00, IsVeg: false, TasteTags: []string{"rich", "savoury"}},
				{Name: "Penne Arrabbiata", Description: "Garlic, chilli, tomato", Price: 12.50, IsVeg: true, TasteTags: []string{"spicy", "tangy"}},
				{Name: "Lasagna al Forno", Description: "Slow ragù between fresh sheets", Price: 16.50, IsVeg: false, TasteTags: []string{"rich", "hearty"}},
			},
		},
		{
			Name:        "Dolci",
			Description: "Desserts",
			Items: []MenuItemTemplate{
				{Name: "Tiramisu", Description: "Espresso-soaked savoiardi", Price: 8.00, IsVeg: true, TasteTags: []string{"sweet", "creamy"}},
				{Name: "Panna Cotta", Description: "Vanilla bean, berry coulis", Price: 7.50, IsVeg: true, TasteTags: []string{"sweet", "mild"}},
			},
		},
	},
	"american": {
		{
			Name:        "Burgers",
			Description: "Smashed double patties",
			Items: []MenuItemTemplate{
				{Name: "Classic Cheeseburger", Description: "American cheese, pickles, house sauce", Price: 11.00, IsVeg: false, TasteTags: []string{"savoury", "mild"}},
				{Name: "BBQ Bacon Burger", Description: "Smoked bacon, crispy onions, bbq glaze", Price: 13.50, IsVeg: false, TasteTags: []string{"smoky", "sweet"}},
				{Name: "Spicy Fried Chicken Burger", Description: "Buttermilk-fried thigh, hot oil drizzle", Price: 12.50, IsVeg: false, TasteTags: []string{"spicy", "crispy"}},
				{Name: "Garden Veggie Burger", Description: "House-made patty, avocado smash", Price: 10.50, IsVeg: true, TasteTags: []string{"fresh", "mild"}},
			},
		},
		{
			Name:        "Sides",
			Description: "For the table",
			Items: []MenuItemTemplate{
				{Name: "Chicken Wings", Description: "Buffalo-tossed with blue cheese dip", Price: 12.99, IsVeg: false, TasteTags: []string{"spicy", "tangy"}},
				{Name: "Loaded Fries", Description: "Cheese sauce, jalapeños, scallions", Price: 8.00, IsVeg: true, TasteTags: []string{"cheesy", "spicy"}},
				{Name: "Onion Rings", Description: "Beer-battered, stacked high", Price: 6.50, IsVeg: true, TasteTags: []string{"crispy", "mild"}},
			},
		},
		{
			Name:        "Shakes",
			Description: "Hand-spun",
			Items: []MenuItemTemplate{
				{Name: "Chocolate Shake", Description: "Double chocolate, malted", Price: 6.00, IsVeg: true, TasteTags: []string{"sweet", "mild"}},
				{Name: "Salted Caramel Shake", Description: "Caramel ribbons, sea salt", Price: 6.50, IsVeg: true, TasteTags: []string{"sweet", "salty"}},
			},
		},
	},
	"japanese": {
		{
			Name:        "Sushi",
			Description: "Nigiri and rolls",
			Items: []MenuItemTemplate{
				{Name: "Salmon Nigiri", Description: "Two pieces, fresh wasabi", Price: 9.00, IsVeg: false, TasteTags: []string{"fresh", "mild"}},
				{Name: "Spicy Tuna Roll", Description: "Eight pieces, togarashi mayo", Price: 14.00, IsVeg: false, TasteTags: []string{"spicy", "fresh"}},
				{Name: "Avocado Maki", Description: "Eight pieces, sesame", Price: 10.00, IsVeg: true, TasteTags: []string{"fresh", "mild"}},
			},
		},
		{
			Name:        "Ramen",
			Description: "18-hour broths",
			Items: []MenuItemTemplate{
				{Name: "Tonkotsu Ramen", Description: "Pork bone broth, chashu, ajitama", Price: 17.00, IsVeg: false, TasteTags: []string{"rich", "savoury"}},
				{Name: "Spicy Miso Ramen", Description: "Chilli-miso tare, corn butter", Price: 16.50, IsVeg: true, TasteTags: []string{"spicy", "rich"}},
			},
		},
		{
			Name:        "Izakaya",
			Description: "Small plates",
			Items: []MenuItemTemplate{
				{Name: "Chicken Karaage", Description: "Twice-fried, yuzu kosho mayo", Price: 11.00, IsVeg: false, TasteTags: []string{"crispy", "mild"}},
				{Name: "Edamame", Description: "Flaky salt, charred lemon", Price: 5.50, IsVeg: true, TasteTags: []string{"fresh", "mild"}},
				{Name: "Gyoza", Description: "Pan-seared pork dumplings", Price: 8.50, IsVeg: false, TasteTags: []string{"savoury", "mild"}},
			},
		},
	},
}
