package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

// geocodeTimeout bounds the primary provider. The API answers fast or not
// at all (mixed-content style hangs have been observed), so abort quickly
// and let the fallback chain take over.
const geocodeTimeout = 3 * time.Second

// GeocodeClient talks to the PositionStack reverse-geocoding API.
type GeocodeClient struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
}

func NewGeocodeClient() *GeocodeClient {
	baseURL := os.Getenv("POSITIONSTACK_URL")
	if baseURL == "" {
		baseURL = "http://api.positionstack.com/v1"
	}

	return &GeocodeClient{
		baseURL:    baseURL,
		accessKey:  os.Getenv("POSITIONSTACK_KEY"),
		httpClient: &http.Client{},
	}
}

type geocodeResult struct {
	Type       string `json:"type"`
	Locality   string `json:"locality"`
	City       string `json:"city"`
	Name       string `json:"name"`
	Region     string `json:"region"`
	RegionCode string `json:"region_code"`
	Label      string `json:"label"`
}

type geocodeResponse struct {
	Data []geocodeResult `json:"data"`
}

// Reverse resolves coordinates into a place name. It prefers a result
// classified as a locality, city or neighbourhood over the raw first
// result so full street addresses are not surfaced.
func (g *GeocodeClient) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, geocodeTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/reverse?access_key=%s&query=%f,%f", g.baseURL, g.accessKey, lat, lng)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("positionstack: status %s", resp.Status)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if len(body.Data) == 0 {
		return "", errors.New("positionstack: no results")
	}

	best := body.Data[0]
	for _, d := range body.Data {
		switch d.Type {
		case "locality", "city", "neighbourhood":
			best = d
		default:
			continue
		}
		break
	}

	city := best.Locality
	if city == "" {
		city = best.City
	}
	if city == "" {
		city = best.Name
	}
	region := best.RegionCode
	if region == "" {
		region = best.Region
	}

	switch {
	case city != "" && region != "":
		return fmt.Sprintf("%s, %s", city, region), nil
	case city != "":
		return city, nil
	case best.Label != "":
		return best.Label, nil
	}
	return "", errors.New("positionstack: result has no usable name")
}
