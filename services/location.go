package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// LocationProvider resolves coordinates into a displayable place name.
type LocationProvider interface {
	Name() string
	Resolve(ctx context.Context, lat, lng float64) (string, error)
}

// LocationResolver walks an ordered provider chain until one succeeds:
// reverse geocoding, then a maps-grounded model, then plain coordinate
// formatting. The final provider cannot fail, so resolution always yields
// a non-empty string. Results are cached by callers, not here.
type LocationResolver struct {
	providers []LocationProvider
	log       *logrus.Logger
}

func NewLocationResolver(geocode *GeocodeClient, ai *GeminiClient, log *logrus.Logger) *LocationResolver {
	return &LocationResolver{
		providers: []LocationProvider{
			&geocodeProvider{client: geocode},
			&aiLocationProvider{client: ai},
			coordinateProvider{},
		},
		log: log,
	}
}

// ResolveLocationName never fails; provider errors are absorbed and logged.
func (r *LocationResolver) ResolveLocationName(ctx context.Context, lat, lng float64) string {
	for _, p := range r.providers {
		name, err := p.Resolve(ctx, lat, lng)
		if err == nil && name != "" {
			return name
		}
		r.log.WithFields(logrus.Fields{
			"provider": p.Name(),
			"error":    fmt.Sprint(err),
		}).Warn("location provider failed, trying next")
	}
	// Unreachable: the coordinate provider always succeeds.
	return fmt.Sprintf("%.4f, %.4f", lat, lng)
}

type geocodeProvider struct {
	client *GeocodeClient
}

func (p *geocodeProvider) Name() string { return "positionstack" }

func (p *geocodeProvider) Resolve(ctx context.Context, lat, lng float64) (string, error) {
	return p.client.Reverse(ctx, lat, lng)
}

type aiLocationProvider struct {
	client *GeminiClient
}

func (p *aiLocationProvider) Name() string { return "gemini" }

func (p *aiLocationProvider) Resolve(ctx context.Context, lat, lng float64) (string, error) {
	prompt := fmt.Sprintf(`Identify the city and state/province for these coordinates: %v, %v.
Return ONLY the location name in "City, State" format (e.g. "Brooklyn, New York").
Do not include street numbers or zip codes.`, lat, lng)

	text, err := p.client.GenerateContent(ctx, prompt, lat, lng)
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(text)
	if name == "" {
		return "", errors.New("gemini: empty location name")
	}
	return name, nil
}

type coordinateProvider struct{}

func (coordinateProvider) Name() string { return "coordinates" }

func (coordinateProvider) Resolve(_ context.Context, lat, lng float64) (string, error) {
	return fmt.Sprintf("%.4f, %.4f", lat, lng), nil
}
