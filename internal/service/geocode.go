package service

import (
	"context"
	"fmt"
	"strings"

	"aura_display/internal/models"
)

// GeocodeSource resolves a place name to candidate coordinates.
type GeocodeSource interface {
	Search(ctx context.Context, name string) ([]models.GeoResult, error)
}

type GeocodeService struct {
	source  GeocodeSource
	network NetworkMonitor
}

func NewGeocodeService(source GeocodeSource, network NetworkMonitor) *GeocodeService {
	return &GeocodeService{source: source, network: network}
}

// Search returns up to 15 candidates for query.
func (s *GeocodeService) Search(ctx context.Context, query string) ([]models.GeoResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty location query", ErrConfigInvalid)
	}
	if err := ensureNetwork(ctx, s.network, nil); err != nil {
		return nil, err
	}
	results, err := s.source.Search(ctx, query)
	if err != nil {
		return nil, classifyFetchError(err)
	}
	if results == nil {
		results = []models.GeoResult{}
	}
	return results, nil
}

// LocationFromResult formats coordinates with six decimals and labels the
// place as "name, admin1".
func LocationFromResult(r models.GeoResult) (models.Location, error) {
	if strings.TrimSpace(r.Name) == "" {
		return models.Location{}, fmt.Errorf("%w: geocoding result without name", ErrConfigInvalid)
	}
	if r.Latitude < -90 || r.Latitude > 90 || r.Longitude < -180 || r.Longitude > 180 {
		return models.Location{}, fmt.Errorf("%w: coordinates out of range", ErrConfigInvalid)
	}
	return models.Location{
		Latitude:  fmt.Sprintf("%.6f", r.Latitude),
		Longitude: fmt.Sprintf("%.6f", r.Longitude),
		Name:      r.Label(),
	}, nil
}
