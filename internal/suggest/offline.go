package suggest

import (
	"strings"
	"time"

	"tripkit/internal/dates"
	"tripkit/internal/models"
)

// Offline content is keyed by case-insensitive substring match on the
// destination. Specific destinations get curated lists; anything else
// gets generic templates interpolating the destination name.

func offlineDaySuggestions(destination string) Suggestions {
	key := strings.ToLower(destination)
	switch {
	case strings.Contains(key, "charleston"):
		return Suggestions{
			models.CategoryPlace: {
				"Rainbow Row & historic downtown walk",
				"Waterfront Park & Pineapple Fountain",
			},
			models.CategoryRestaurant: {
				"Husk (modern Southern)",
				"Fleet Landing Restaurant & Bar (waterfront seafood)",
			},
			models.CategoryHotel: {
				"The Dewberry Charleston",
				"Emeline",
			},
		}
	case strings.Contains(key, "tokyo"):
		return Suggestions{
			models.CategoryPlace: {
				"Senso-ji Temple in Asakusa",
				"Meiji Shrine & Harajuku walk",
				"Shibuya Crossing evening stroll",
			},
			models.CategoryRestaurant: {
				"Ichiran Ramen (solo ramen booths)",
				"Gyukatsu Motomura (beef cutlet)",
			},
			models.CategoryHotel: {
				"Hotel Niwa Tokyo",
				"Shinjuku Granbell Hotel",
			},
		}
	default:
		return Suggestions{
			models.CategoryPlace: {
				"Old town or historic center in " + destination,
				"City park or viewpoint in " + destination,
			},
			models.CategoryRestaurant: {
				"Highly rated casual restaurant near your stay in " + destination,
				"Bakery or cafe popular with locals in " + destination,
			},
			models.CategoryHotel: {
				"Mid-range hotel close to transit in " + destination,
				"Guesthouse or small inn with good reviews in " + destination,
			},
		}
	}
}

func offlineForecast(dayDates []string) []DailySummary {
	out := make([]DailySummary, 0, len(dayDates))
	for _, date := range dayDates {
		out = append(out, DailySummary{
			Date:    date,
			Summary: "Forecast placeholder (connect to real API later)",
		})
	}
	return out
}

func offlineFoodieHighlights(destination string) Highlights {
	key := strings.ToLower(destination)
	switch {
	case strings.Contains(key, "charleston"):
		return Highlights{
			DishesToTry: []string{"Shrimp & grits", "She-crab soup", "Fried green tomatoes"},
			HiddenGems:  []string{"Local shrimp shack away from the main tourist strip"},
			GroceryList: []string{"Fresh shrimp", "Grits", "Butter", "Garlic"},
		}
	case strings.Contains(key, "tokyo"):
		return Highlights{
			DishesToTry: []string{"Tsukemen ramen", "Tonkatsu", "Matcha dessert"},
			HiddenGems:  []string{"Standing sushi bar near a train station", "Tiny ramen shop with 10 seats"},
			GroceryList: []string{"Rice", "Soy sauce", "Miso paste", "Seasonal vegetables"},
		}
	default:
		return Highlights{
			DishesToTry: []string{"One hearty local dish in " + destination},
			HiddenGems:  []string{"Ask a local barista or waiter where they eat on their day off."},
			GroceryList: []string{"3 seasonal vegetables", "Local cheese or protein", "Bread or rice"},
		}
	}
}

// Recipe is a low-effort meal a traveler can cook where they stay.
type Recipe struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// LocalRecipe picks a simple destination-flavored recipe. Fully
// offline; external lookups never feed this.
func LocalRecipe(destination string) Recipe {
	key := strings.ToLower(destination)
	switch {
	case strings.Contains(key, "charleston"):
		return Recipe{
			Title:       "Ultra-Simple Shrimp & Grits",
			Description: "A one-pan, low-stress version of a Charleston classic you can cook in most Airbnbs.",
			Ingredients: []string{
				"Frozen or fresh peeled shrimp",
				"Quick-cooking grits",
				"Butter or olive oil",
				"Garlic (fresh or pre-minced)",
				"Salt and pepper",
			},
			Steps: []string{
				"Cook grits according to the package in a small pot with water and a spoonful of butter.",
				"While grits cook, heat a pan with a little butter or oil and gently cook garlic for 30-60 seconds.",
				"Add shrimp to the pan, season with salt and pepper, and cook until pink on both sides.",
				"Spoon grits into a bowl and top with the garlic shrimp and pan juices.",
			},
		}
	case strings.Contains(key, "tokyo"):
		return Recipe{
			Title:       "Lazy Tokyo Rice Bowl",
			Description: "A 10-15 minute rice bowl using simple ingredients from a Japanese convenience store or small market.",
			Ingredients: []string{
				"Cooked rice (microwaveable pack is fine)",
				"Soy sauce",
				"Green onions or any soft vegetable",
				"Egg (or tofu if you prefer)",
			},
			Steps: []string{
				"Heat the rice according to the package and place it in a bowl.",
				"Gently fry an egg sunny-side-up (or warm cubed tofu) in a little oil.",
				"Slice green onions or soft vegetables into small pieces.",
				"Top the rice with the egg or tofu, sprinkle over the vegetables, and drizzle soy sauce to taste.",
			},
		}
	default:
		return Recipe{
			Title:       "One-Pan Local Veggie Toast",
			Description: "A flexible, low-skill meal you can make almost anywhere with just a pan and toaster.",
			Ingredients: []string{
				"Good bread or rolls",
				"Local cheese or spread",
				"2-3 local vegetables (tomato, peppers, greens, etc.)",
				"Olive oil or butter",
				"Salt and pepper",
			},
			Steps: []string{
				"Toast the bread or warm it in a pan until lightly crisp.",
				"Slice the vegetables into bite-sized pieces.",
				"Gently saute the vegetables in a little oil or butter until just soft; season with salt and pepper.",
				"Spread cheese on the warm bread and pile the cooked vegetables on top.",
			},
		}
	}
}

// DayText is style-templated narrative text for one itinerary day.
type DayText struct {
	MorningTitle         string
	MorningDescription   string
	AfternoonTitle       string
	AfternoonDescription string
	EveningTitle         string
	EveningDescription   string
}

// ItineraryDayText builds the generated-itinerary narrative for a
// destination and travel style. Every day of a trip gets the same
// template; callers fill only empty slots so manual edits survive.
func ItineraryDayText(destination, style string) DayText {
	key := strings.ToLower(style)
	var morning, afternoon, evening string
	switch {
	case strings.Contains(key, "food"):
		morning = "Start your day at a local cafe in " + destination + "."
		afternoon = "Take a walking food tour and sample street food in " + destination + "."
		evening = "Dinner at a neighborhood restaurant known for regional specialties in " + destination + "."
	case strings.Contains(key, "budget"):
		morning = "Explore a free park, garden, or public space in " + destination + "."
		afternoon = "Visit a low-cost museum or market and people-watch in " + destination + "."
		evening = "Find a casual, affordable spot for dinner and stroll the city center in " + destination + "."
	case strings.Contains(key, "family"):
		morning = "Family-friendly attraction or playground in " + destination + "."
		afternoon = "Interactive museum, zoo, or aquarium suited for kids in " + destination + "."
		evening = "Relaxed dinner and early evening walk through a safe, lively area in " + destination + "."
	case strings.Contains(key, "luxury"):
		morning = "Slow breakfast at a high-end cafe or in-hotel dining in " + destination + "."
		afternoon = "Spa treatment or private guided tour around " + destination + "."
		evening = "Tasting-menu dinner or rooftop bar experience in " + destination + "."
	default:
		morning = "Walk through a central neighborhood in " + destination + "."
		afternoon = "Visit one landmark or museum that interests you in " + destination + "."
		evening = "Try a recommended local restaurant and explore nearby streets in " + destination + "."
	}
	return DayText{
		MorningTitle:         "Morning",
		MorningDescription:   morning,
		AfternoonTitle:       "Afternoon",
		AfternoonDescription: afternoon,
		EveningTitle:         "Evening",
		EveningDescription:   evening,
	}
}

// PackingList builds the suggested packing list for a trip, grouped by
// category: always the essentials, then season extras by start month,
// style extras, and destination extras.
func PackingList(destination, style, startDate string) map[string][]string {
	dest := strings.ToLower(destination)
	styleKey := strings.ToLower(style)

	items := map[string][]string{
		"Essentials": {"Passport / ID", "Phone + charger", "Wallet + cards", "Medications"},
	}

	if strings.Contains(dest, "seattle") || strings.Contains(dest, "rain") {
		items["Weather"] = append(items["Weather"], "Light raincoat or waterproof jacket")
	}

	if first, err := dates.Parse(startDate); err == nil {
		switch first.Month() {
		case time.December, time.January, time.February:
			items["Clothing"] = append(items["Clothing"], "Warm layers and a hat")
		case time.June, time.July, time.August:
			items["Clothing"] = append(items["Clothing"], "Lightweight clothing and sunscreen")
		}
	}

	if strings.Contains(styleKey, "food") {
		items["Foodie Tools"] = append(items["Foodie Tools"],
			"Reusable tote bag for markets", "Small notebook for food notes")
	}

	if strings.Contains(dest, "beach") || strings.Contains(dest, "island") {
		items["Activities"] = append(items["Activities"], "Swimsuit", "Flip-flops", "Beach towel")
	}

	return items
}
