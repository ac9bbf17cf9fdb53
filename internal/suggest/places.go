package suggest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const placesBaseURL = "https://maps.googleapis.com/maps/api/place/textsearch/json"

// lookupTimeout bounds every external call; a slow API degrades to
// offline content instead of stalling the request.
const lookupTimeout = 8 * time.Second

// GooglePlacesClient implements PlacesAPI against the Google Places
// Text Search endpoint.
type GooglePlacesClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewGooglePlacesClient builds a client with the default endpoint and
// lookup timeout.
func NewGooglePlacesClient(apiKey string) *GooglePlacesClient {
	return &GooglePlacesClient{
		apiKey:  apiKey,
		baseURL: placesBaseURL,
		client:  &http.Client{Timeout: lookupTimeout},
	}
}

type placesResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
		Vicinity         string `json:"vicinity"`
	} `json:"results"`
}

// TextSearch runs one text search, optionally filtered by place type,
// returning at most limit results.
func (c *GooglePlacesClient) TextSearch(query, placeType string, limit int) ([]Place, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("key", c.apiKey)
	if placeType != "" {
		params.Set("type", placeType)
	}

	resp, err := c.client.Get(c.baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places API returned status %d", resp.StatusCode)
	}

	var body placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status != "OK" && body.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places API status %q", body.Status)
	}

	results := body.Results
	if len(results) > limit {
		results = results[:limit]
	}
	places := make([]Place, 0, len(results))
	for _, r := range results {
		address := r.FormattedAddress
		if address == "" {
			address = r.Vicinity
		}
		places = append(places, Place{Name: r.Name, Address: address})
	}
	return places, nil
}
