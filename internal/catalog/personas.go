package catalog

type CustomerPersona struct {
	Name             string
	BaseAge          int
	BaseSpend        float64 // average ticket size
	BaseFrequency    float64 // visits per month
	PreferredChannel string
}

// CustomerPersonas is the fixed persona set generated customers jitter from.
var CustomerPersonas = []CustomerPersona{
	{Name: "Student Snacker", BaseAge: 21, BaseSpend: 9.50, BaseFrequency: 2.5, PreferredChannel: "instagram"},
	{Name: "Corporate Regular", BaseAge: 32, BaseSpend: 18.00, BaseFrequency: 4.0, PreferredChannel: "email"},
	{Name: "Family Organizer", BaseAge: 41, BaseSpend: 46.00, BaseFrequency: 1.5, PreferredChannel: "whatsapp"},
	{Name: "Foodie Explorer", BaseAge: 27, BaseSpend: 28.00, BaseFrequency: 3.0, PreferredChannel: "instagram"},
	{Name: "Weekend Visitor", BaseAge: 55, BaseSpend: 22.00, BaseFrequency: 0.8, PreferredChannel: "sms"},
}
