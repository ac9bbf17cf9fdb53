// Package suggest resolves place/restaurant/hotel suggestions, weather
// forecasts, foodie highlights, recipes, and packing lists for a
// destination. Live lookups run only when the matching API credential
// was supplied at construction; every lookup failure falls back to
// deterministic offline content and never reaches the caller.
package suggest

import (
	"strings"

	"tripkit/internal/logger"
	"tripkit/internal/models"
)

// Config carries the credentials gating live lookups. Empty values are
// a first-class offline mode, not an error state.
type Config struct {
	PlacesAPIKey  string
	WeatherAPIKey string
}

// Place is one live places result.
type Place struct {
	Name    string
	Address string
}

// PlacesAPI is the external places text-search collaborator. Failures
// are returned explicitly; the resolver decides the fallback.
type PlacesAPI interface {
	TextSearch(query, placeType string, limit int) ([]Place, error)
}

// WeatherAPI is the external forecast collaborator. It returns one
// summary per date it can forecast.
type WeatherAPI interface {
	Forecast(destination string) (map[string]string, error)
}

// DailySummary is one day of a trip forecast.
type DailySummary struct {
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

// Suggestions holds suggestion names per checklist category.
type Suggestions map[models.ItemCategory][]string

// Resolver prefers live lookups when configured and falls back to
// offline content keyed by destination substring otherwise.
type Resolver struct {
	places  PlacesAPI
	weather WeatherAPI
}

// New builds a Resolver with live clients for each configured
// credential. Unconfigured lookups stay offline.
func New(cfg Config) *Resolver {
	r := &Resolver{}
	if cfg.PlacesAPIKey != "" {
		r.places = NewGooglePlacesClient(cfg.PlacesAPIKey)
	}
	if cfg.WeatherAPIKey != "" {
		r.weather = NewOpenWeatherClient(cfg.WeatherAPIKey)
	}
	return r
}

// NewWithLookups builds a Resolver around explicit collaborators, for
// callers that construct their own clients (and for tests).
func NewWithLookups(places PlacesAPI, weather WeatherAPI) *Resolver {
	return &Resolver{places: places, weather: weather}
}

// UsingLivePlaces reports whether place lookups go to the live API.
func (r *Resolver) UsingLivePlaces() bool { return r.places != nil }

// UsingLiveWeather reports whether forecasts come from the live API.
func (r *Resolver) UsingLiveWeather() bool { return r.weather != nil }

// DaySuggestions returns place/restaurant/hotel suggestions for a
// destination, phrased by travel style on the live path.
func (r *Resolver) DaySuggestions(destination, style string) Suggestions {
	if r.places == nil {
		return offlineDaySuggestions(destination)
	}
	live, err := r.liveDaySuggestions(destination, style)
	if err != nil {
		logger.Get().Debugw("places lookup failed, using offline suggestions",
			"destination", destination, "error", err.Error())
		return offlineDaySuggestions(destination)
	}
	return live
}

// liveDaySuggestions issues one text search per category. Any empty
// category is filled from the offline set, matching the degraded-but-
// usable behavior of the offline path.
func (r *Resolver) liveDaySuggestions(destination, style string) (Suggestions, error) {
	style = strings.ToLower(style)

	places, err := r.searchNames("tourist attractions in "+destination, "tourist_attraction")
	if err != nil {
		return nil, err
	}

	restaurantPhrase := "restaurants"
	switch {
	case strings.Contains(style, "budget"):
		restaurantPhrase = "cheap eats"
	case strings.Contains(style, "luxury"):
		restaurantPhrase = "fine dining restaurants"
	case strings.Contains(style, "family"):
		restaurantPhrase = "family friendly restaurants"
	case strings.Contains(style, "food"):
		restaurantPhrase = "best local food"
	}
	restaurants, err := r.searchNames(restaurantPhrase+" in "+destination, "restaurant")
	if err != nil {
		return nil, err
	}

	hotelPhrase := "hotels"
	switch {
	case strings.Contains(style, "budget"):
		hotelPhrase = "budget hotels"
	case strings.Contains(style, "luxury"):
		hotelPhrase = "luxury hotels"
	}
	hotels, err := r.searchNames(hotelPhrase+" in "+destination, "lodging")
	if err != nil {
		return nil, err
	}

	out := Suggestions{
		models.CategoryPlace:      places,
		models.CategoryRestaurant: restaurants,
		models.CategoryHotel:      hotels,
	}
	offline := offlineDaySuggestions(destination)
	for category, names := range out {
		if len(names) == 0 {
			out[category] = offline[category]
		}
	}
	return out, nil
}

func (r *Resolver) searchNames(query, placeType string) ([]string, error) {
	results, err := r.places.TextSearch(query, placeType, 5)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(results))
	for _, p := range results {
		if p.Name == "" {
			continue
		}
		if p.Address != "" {
			names = append(names, p.Name+" ("+p.Address+")")
		} else {
			names = append(names, p.Name)
		}
	}
	return names, nil
}

// WeatherForecast returns one summary per trip day, covering at most
// the first seven days. Dates the live forecast cannot cover read
// "Forecast unavailable"; with no live lookup every day carries the
// offline placeholder.
func (r *Resolver) WeatherForecast(destination string, dayDates []string) []DailySummary {
	if len(dayDates) > 7 {
		dayDates = dayDates[:7]
	}
	if r.weather == nil {
		return offlineForecast(dayDates)
	}
	summaries, err := r.weather.Forecast(destination)
	if err != nil {
		logger.Get().Debugw("weather lookup failed, using offline forecast",
			"destination", destination, "error", err.Error())
		return offlineForecast(dayDates)
	}
	out := make([]DailySummary, 0, len(dayDates))
	for _, date := range dayDates {
		summary, ok := summaries[date]
		if !ok {
			summary = "Forecast unavailable"
		}
		out = append(out, DailySummary{Date: date, Summary: summary})
	}
	return out
}

// Highlights is the foodie-twist content for one destination.
type Highlights struct {
	DishesToTry []string `json:"dishes_to_try"`
	HiddenGems  []string `json:"hidden_gems"`
	GroceryList []string `json:"grocery_list"`
}

// FoodieHighlights surfaces dishes and hidden gems for a destination.
// The live path reuses the places suggestions; any failure or gap keeps
// the offline content.
func (r *Resolver) FoodieHighlights(destination, style string) Highlights {
	highlights := offlineFoodieHighlights(destination)
	if r.places == nil {
		return highlights
	}

	live, err := r.liveDaySuggestions(destination, style)
	if err != nil {
		logger.Get().Debugw("places lookup failed, using offline highlights",
			"destination", destination, "error", err.Error())
		return highlights
	}

	// Entries are "Name (Address)"; trim to just the name.
	trimName := func(entry string) string {
		name, _, _ := strings.Cut(entry, "(")
		return strings.TrimSpace(name)
	}
	var dishes []string
	for _, entry := range live[models.CategoryRestaurant] {
		if name := trimName(entry); name != "" && !contains(dishes, name) {
			dishes = append(dishes, name)
		}
	}
	var hidden []string
	for _, entry := range live[models.CategoryPlace] {
		if name := trimName(entry); name != "" && !contains(hidden, name) {
			hidden = append(hidden, name)
		}
	}

	if len(dishes) > 0 {
		highlights.DishesToTry = dishes
	}
	if len(hidden) > 0 {
		highlights.HiddenGems = hidden
	}
	if len(highlights.GroceryList) == 0 {
		highlights.GroceryList = []string{
			"Fresh fruit or local snacks",
			"Bottled water or drinks",
			"Breakfast basics for the room",
		}
	}
	return highlights
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
