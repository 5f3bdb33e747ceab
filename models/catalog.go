package models

// FallbackSalons is the bundled catalog used when the discovery provider
// returns nothing. Centered around downtown NYC.
var FallbackSalons = []Salon{
	{
		ID:          "1",
		Name:        "Glow & Style Studio",
		Image:       "https://images.unsplash.com/photo-1560066984-138dadb4c035?auto=format&fit=crop&w=800&q=80",
		Rating:      4.8,
		ReviewCount: 124,
		IsOpen:      true,
		Address:     "123 Fashion Ave, Downtown",
		Description: "Experience premium styling and relaxation at Glow & Style. We specialize in modern cuts and color treatments.",
		Hours:       "Mon-Sat: 9:00 AM - 8:00 PM",
		Latitude:    40.7128,
		Longitude:   -74.0060,
		Services: []Service{
			{ID: "s1", Name: "Haircut & Blowdry", Price: 320, Duration: "45m"},
			{ID: "s2", Name: "Full Hair Color", Price: 4500, Duration: "2h"},
			{ID: "s3", Name: "Manicure", Price: 600, Duration: "30m"},
		},
	},
	{
		ID:          "2",
		Name:        "Urban Oasis Spa",
		Image:       "https://images.unsplash.com/photo-1540555700478-4be289fbecef?auto=format&fit=crop&w=800&q=80",
		Rating:      4.5,
		ReviewCount: 89,
		IsOpen:      true,
		Address:     "45 Wellness Way, Uptown",
		Description: "A sanctuary for your beauty needs. Organic products and serene atmosphere.",
		Hours:       "Mon-Sun: 10:00 AM - 9:00 PM",
		Latitude:    40.7282,
		Longitude:   -73.9942,
		Services: []Service{
			{ID: "s4", Name: "Facial Treatment", Price: 2500, Duration: "1h"},
			{ID: "s5", Name: "Deep Tissue Massage", Price: 3000, Duration: "1h"},
			{ID: "s6", Name: "Pedicure", Price: 800, Duration: "45m"},
		},
	},
	{
		ID:          "3",
		Name:        "The Barber Collective",
		Image:       "https://images.unsplash.com/photo-1503951914875-befbb7135952?auto=format&fit=crop&w=800&q=80",
		Rating:      4.9,
		ReviewCount: 210,
		IsOpen:      false,
		Address:     "88 Gentlemans Row",
		Description: "Classic cuts for the modern man. Hot towel shaves and beard trims available.",
		Hours:       "Tue-Sat: 8:00 AM - 6:00 PM",
		Latitude:    40.7589,
		Longitude:   -73.9851,
		Services: []Service{
			{ID: "s7", Name: "Classic Haircut", Price: 250, Duration: "30m"},
			{ID: "s8", Name: "Beard Trim", Price: 250, Duration: "20m"},
			{ID: "s9", Name: "Hot Towel Shave", Price: 500, Duration: "45m"},
		},
	},
	{
		ID:          "4",
		Name:        "Luxe Locks Lounge",
		Image:       "https://images.unsplash.com/photo-1522337660859-02fbefca4702?auto=format&fit=crop&w=800&q=80",
		Rating:      4.2,
		ReviewCount: 56,
		IsOpen:      true,
		Address:     "500 Shiny St, Westside",
		Description: "Where luxury meets affordability. Walk-ins welcome.",
		Hours:       "Mon-Fri: 9:00 AM - 7:00 PM",
		Latitude:    40.7549,
		Longitude:   -73.9940,
		Services: []Service{
			{ID: "s10", Name: "Blowout", Price: 220, Duration: "45m"},
			{ID: "s11", Name: "Keratin Treatment", Price: 8000, Duration: "3h"},
		},
	},
	{
		ID:          "5",
		Name:        "Zen Beauty Bar",
		Image:       "https://images.unsplash.com/photo-1595476108010-b4d1f102b1b1?auto=format&fit=crop&w=800&q=80",
		Rating:      4.7,
		ReviewCount: 142,
		IsOpen:      true,
		Address:     "77 Peace Blvd",
		Description: "Holistic beauty services for mind and body.",
		Hours:       "Wed-Sun: 10:00 AM - 6:00 PM",
		Latitude:    40.7410,
		Longitude:   -73.9990,
		Services: []Service{
			{ID: "s12", Name: "Gel Manicure", Price: 1200, Duration: "50m"},
			{ID: "s13", Name: "Aromatherapy Facial", Price: 3500, Duration: "1h 15m"},
		},
	},
}

// FallbackImages is a small curated rotation substituted for discovery
// results that arrive without an image URL.
var FallbackImages = []string{
	"https://images.unsplash.com/photo-1560066984-138dadb4c035?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1521590832169-7dad1a175f6c?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1562322140-8baeececf3df?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1595476108010-b4d1f102b1b1?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1633681926022-84c23e8cb2d6?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1522337660859-02fbefca4702?auto=format&fit=crop&w=800&q=80",
}

// TimeSlots lists the bookable slot labels grouped by part of day.
var TimeSlots = map[string][]string{
	"Morning":   {"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM"},
	"Afternoon": {"12:00 PM", "12:30 PM", "01:00 PM", "01:30 PM", "02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM"},
	"Evening":   {"04:00 PM", "04:30 PM", "05:00 PM", "05:30 PM", "06:00 PM", "06:30 PM", "07:00 PM"},
}
