package jobs

// Locations lists the filterable job locations.
var Locations = []string{
	"Mumbai, Maharashtra",
	"Delhi, NCR",
	"Bangalore, Karnataka",
	"Chennai, Tamil Nadu",
	"Hyderabad, Telangana",
	"Pune, Maharashtra",
}

// JobTypes lists the filterable employment types.
var JobTypes = []string{"Full-time", "Part-time", "Contract", "Daily Wage"}

// Categories lists the filterable work categories.
var Categories = []string{
	"Construction",
	"Plumbing",
	"Domestic Help",
	"Security",
	"Gardening",
	"Delivery",
	"Electrical",
	"Driving",
	"Cleaning",
	"Factory Work",
}

// Fixtures returns the built-in demo listings.
func Fixtures() []Job {
	return []Job{
		{
			ID:          "1",
			Title:       "Construction Helper",
			Company:     "ABC Builders",
			Location:    "Mumbai, Maharashtra",
			Distance:    "2.5 km",
			Salary:      "₹600 per day",
			PostedTime:  "2 hours ago",
			Type:        "Daily Wage",
			Category:    "Construction",
			Skills:      []string{"Physical Labor", "Lifting", "Basic Construction"},
			Description: "We need helpers for a construction site. Daily wage basis with possibility of extension.",
			Duration:    "15 days",
			ApplyBy:     "2023-05-15",
		},
		{
			ID:          "2",
			Title:       "Plumber",
			Company:     "City Plumbing Services",
			Location:    "Delhi, NCR",
			Distance:    "4.1 km",
			Salary:      "₹800 per day",
			PostedTime:  "1 day ago",
			Type:        "Contract",
			Category:    "Plumbing",
			Skills:      []string{"Pipe Fitting", "Repairs", "Water Systems"},
			Description: "Experienced plumber needed for residential repairs and installations.",
			Duration:    "3 months",
			ApplyBy:     "2023-05-20",
		},
		{
			ID:          "3",
			Title:       "Domestic Helper",
			Company:     "Private Household",
			Location:    "Bangalore, Karnataka",
			Distance:    "3.0 km",
			Salary:      "₹15,000 per month",
			PostedTime:  "3 days ago",
			Type:        "Full-time",
			Category:    "Domestic Help",
			Skills:      []string{"Cleaning", "Cooking", "Household Work"},
			Description: "Full-time domestic helper for a family home.",
			Duration:    "Permanent",
			ApplyBy:     "2023-05-25",
		},
		{
			ID:          "4",
			Title:       "Security Guard",
			Company:     "SecureLife Agency",
			Location:    "Chennai, Tamil Nadu",
			Distance:    "1.8 km",
			Salary:      "₹16,000 per month",
			PostedTime:  "5 hours ago",
			Type:        "Full-time",
			Category:    "Security",
			Skills:      []string{"Vigilance", "Night Shifts", "Reporting"},
			Description: "Security guard for a residential complex, rotating shifts.",
			Duration:    "Permanent",
			ApplyBy:     "2023-05-18",
		},
		{
			ID:          "5",
			Title:       "Gardener",
			Company:     "Green Spaces",
			Location:    "Hyderabad, Telangana",
			Distance:    "5.2 km",
			Salary:      "₹500 per day",
			PostedTime:  "1 week ago",
			Type:        "Part-time",
			Category:    "Gardening",
			Skills:      []string{"Planting", "Pruning", "Lawn Care"},
			Description: "Part-time gardener for an office campus.",
			Duration:    "6 months",
			ApplyBy:     "2023-05-30",
		},
		{
			ID:          "6",
			Title:       "Delivery Person",
			Company:     "Swift Deliveries",
			Location:    "Pune, Maharashtra",
			Distance:    "2.2 km",
			Salary:      "₹18,000 - ₹22,000 per month",
			PostedTime:  "2 days ago",
			Type:        "Full-time",
			Category:    "Delivery",
			Skills:      []string{"Two-wheeler License", "Navigation", "Time Management"},
			Description: "Delivery person for local package routes, vehicle provided.",
			Duration:    "Permanent",
			ApplyBy:     "2023-05-22",
		},
	}
}
