package suggest

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tripkit/internal/dates"
)

const (
	openWeatherGeoURL      = "https://api.openweathermap.org/geo/1.0/direct"
	openWeatherForecastURL = "https://api.openweathermap.org/data/2.5/forecast"
)

// OpenWeatherClient implements WeatherAPI with two OpenWeather calls:
// geocode the destination, then aggregate the 5-day/3-hour forecast
// into one summary per date.
type OpenWeatherClient struct {
	apiKey      string
	geoURL      string
	forecastURL string
	client      *http.Client
}

// NewOpenWeatherClient builds a client with the default endpoints and
// lookup timeout.
func NewOpenWeatherClient(apiKey string) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:      apiKey,
		geoURL:      openWeatherGeoURL,
		forecastURL: openWeatherForecastURL,
		client:      &http.Client{Timeout: lookupTimeout},
	}
}

type geoResult struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// Forecast returns per-date summaries like "Light rain  14 / 9°C" for
// the dates the 5-day forecast covers.
func (c *OpenWeatherClient) Forecast(destination string) (map[string]string, error) {
	lat, lon, err := c.geocode(destination)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("units", "metric")
	params.Set("appid", c.apiKey)

	resp, err := c.client.Get(c.forecastURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast API returned status %d", resp.StatusCode)
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	type bucket struct {
		temps        []float64
		descriptions []string
	}
	byDate := make(map[string]*bucket)
	for _, entry := range body.List {
		if entry.Dt == 0 {
			continue
		}
		date := dates.Format(time.Unix(entry.Dt, 0).UTC())
		b, ok := byDate[date]
		if !ok {
			b = &bucket{}
			byDate[date] = b
		}
		b.temps = append(b.temps, entry.Main.Temp)
		if len(entry.Weather) > 0 && entry.Weather[0].Description != "" {
			desc := entry.Weather[0].Description
			b.descriptions = append(b.descriptions, strings.ToUpper(desc[:1])+desc[1:])
		}
	}

	summaries := make(map[string]string, len(byDate))
	for date, b := range byDate {
		var parts []string
		if len(b.descriptions) > 0 {
			parts = append(parts, b.descriptions[0])
		}
		if len(b.temps) > 0 {
			min, max := b.temps[0], b.temps[0]
			for _, t := range b.temps[1:] {
				min = math.Min(min, t)
				max = math.Max(max, t)
			}
			parts = append(parts, fmt.Sprintf("%.0f / %.0f°C", max, min))
		}
		if len(parts) == 0 {
			summaries[date] = "Forecast unavailable"
			continue
		}
		summaries[date] = strings.Join(parts, "  ")
	}
	return summaries, nil
}

func (c *OpenWeatherClient) geocode(destination string) (lat, lon float64, err error) {
	params := url.Values{}
	params.Set("q", destination)
	params.Set("limit", "1")
	params.Set("appid", c.apiKey)

	resp, err := c.client.Get(c.geoURL + "?" + params.Encode())
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocoding API returned status %d", resp.StatusCode)
	}

	var results []geoResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocoding result for %q", destination)
	}
	return results[0].Lat, results[0].Lon, nil
}
