package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"glowbook-backend/models"
	"glowbook-backend/utils"

	"github.com/sirupsen/logrus"
)

// DiscoveryService finds salons near a coordinate via the maps-grounded
// model, falling back to the bundled catalog. It never returns an error to
// callers; every failure path degrades to usable data.
type DiscoveryService struct {
	ai  *GeminiClient
	log *logrus.Logger
}

func NewDiscoveryService(ai *GeminiClient, log *logrus.Logger) *DiscoveryService {
	return &DiscoveryService{ai: ai, log: log}
}

// discoveredSalon is the fixed shape requested from the provider.
type discoveredSalon struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	Description string  `json:"description"`
	IsOpen      bool    `json:"isOpen"`
	ImageURL    string  `json:"imageUrl"`
}

// FindNearbySalons returns salons ordered nearest first. Provider results
// are enriched so booking can proceed; on failure or an empty result the
// fallback catalog is returned sorted by distance from the query point.
func (s *DiscoveryService) FindNearbySalons(ctx context.Context, lat, lng float64) []models.Salon {
	raw, err := s.fetchFromProvider(ctx, lat, lng)
	if err != nil || len(raw) == 0 {
		s.log.WithFields(logrus.Fields{"error": fmt.Sprint(err)}).
			Warn("salon discovery unavailable, using fallback catalog")
		return s.FallbackCatalog(lat, lng)
	}
	return enrichSalons(raw, lat, lng)
}

// FallbackCatalog returns the bundled salons with computed distances,
// nearest first.
func (s *DiscoveryService) FallbackCatalog(lat, lng float64) []models.Salon {
	type entry struct {
		salon models.Salon
		km    float64
	}

	entries := make([]entry, len(models.FallbackSalons))
	for i, salon := range models.FallbackSalons {
		km := utils.Distance(lat, lng, salon.Latitude, salon.Longitude)
		salon.Distance = fmt.Sprintf("%.1f km", km)
		entries[i] = entry{salon: salon, km: km}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].km < entries[j].km
	})

	salons := make([]models.Salon, len(entries))
	for i, e := range entries {
		salons[i] = e.salon
	}
	return salons
}

func (s *DiscoveryService) fetchFromProvider(ctx context.Context, lat, lng float64) ([]discoveredSalon, error) {
	prompt := fmt.Sprintf(`Find 6 top-rated hair salons and spas physically located closest to coordinates %v, %v.

Return the results as a strictly formatted JSON array in a markdown code block.
Each object must have these exact fields:
- id: string (use a unique random string)
- name: string (The name of the place)
- address: string (The address)
- rating: number (The rating, e.g. 4.5)
- reviewCount: number (approximate number of reviews)
- description: string (A short, inviting description of the place, max 2 sentences)
- isOpen: boolean (assume true)
- imageUrl: string (A URL to a public image of the salon if available, otherwise return null)

Do not include services in the JSON. Sort the list by distance from the provided coordinates.`, lat, lng)

	text, err := s.ai.GenerateContent(ctx, prompt, lat, lng)
	if err != nil {
		return nil, err
	}

	payload, ok := ExtractJSONArray(text)
	if !ok {
		return nil, errors.New("discovery: no JSON array in response")
	}

	var salons []discoveredSalon
	if err := json.Unmarshal([]byte(payload), &salons); err != nil {
		return nil, err
	}
	return salons, nil
}

// enrichSalons fills in what the provider cannot supply: images, hours,
// bookable services and approximate coordinates near the user. Prices and
// coordinates use unseeded randomness, so two fetches for the same location
// can differ; preserved as observed behavior.
func enrichSalons(raw []discoveredSalon, userLat, userLng float64) []models.Salon {
	salons := make([]models.Salon, 0, len(raw))
	for i, r := range raw {
		image := r.ImageURL
		if image == "" {
			image = models.FallbackImages[i%len(models.FallbackImages)]
		}

		salons = append(salons, models.Salon{
			ID:          r.ID,
			Name:        r.Name,
			Image:       image,
			Rating:      r.Rating,
			ReviewCount: r.ReviewCount,
			Distance:    "Nearby",
			IsOpen:      true,
			Address:     r.Address,
			Description: r.Description,
			Hours:       "Mon-Sat: 9:00 AM - 8:00 PM",
			Services: []models.Service{
				{ID: fmt.Sprintf("s%d_1", i), Name: "Haircut & Style", Price: float64(200 + rand.Intn(151)), Duration: "45m"},
				{ID: fmt.Sprintf("s%d_2", i), Name: "Color Treatment", Price: float64(2500 + rand.Intn(3000)), Duration: "2h"},
				{ID: fmt.Sprintf("s%d_3", i), Name: "Manicure", Price: 600, Duration: "30m"},
			},
			Latitude:  userLat + (rand.Float64()*0.01 - 0.005),
			Longitude: userLng + (rand.Float64()*0.01 - 0.005),
		})
	}
	return salons
}
