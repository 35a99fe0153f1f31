package catalog

type ReviewTemplate struct {
	Rating    int
	Sentiment string
	Content   string // {restaurant} and {cuisine} are substituted at generation time
}

// ReviewTemplates are the five fixed rating/sentiment shapes every generated
// review is instantiated from. Ratings are jittered ±1 and clamped to [1,5].
var ReviewTemplates = []ReviewTemplate{
	{
		Rating:    5,
		Sentiment: "positive",
		Content:   "Absolutely loved {restaurant}! Easily the best {cuisine} food in the area, and the staff made us feel at home.",
	},
	{
		Rating:    4,
		Sentiment: "positive",
		Content:   "{restaurant} delivers solid {cuisine} cooking. Portions were generous and everything arrived hot.",
	},
	{
		Rating:    3,
		Sentiment: "neutral",
		Content:   "Decent visit to {restaurant}. The {cuisine} dishes were fine but nothing stood out, and service was a little slow.",
	},
	{
		Rating:    2,
		Sentiment: "negative",
		Content:   "Disappointed with {restaurant}. The {cuisine} food was lukewarm and we waited far too long for the bill.",
	},
	{
		Rating:    1,
		Sentiment: "negative",
		Content:   "Would not return to {restaurant}. Wrong order, cold {cuisine} food and nobody seemed to care.",
	},
}

// ReplyPools key auto-generated owner responses by review sentiment.
var ReplyPools = map[string][]string{
	"positive": {
		"Thank you so much for the kind words! We can't wait to host you again.",
		"This made our team's day, see you at your next visit!",
		"Thrilled you enjoyed it! Your support means everything to a small kitchen.",
	},
	"neutral": {
		"Thanks for the honest feedback. We're working on our pace during rush hours.",
		"Appreciate you taking the time to review us, we'd love another chance to impress you.",
	},
	"negative": {
		"We're really sorry about your experience. Please reach out so we can make this right.",
		"This falls short of our standards. We've shared it with the kitchen team and would love to win you back.",
		"Apologies for the trouble with your order, your next meal is on us.",
	},
}
