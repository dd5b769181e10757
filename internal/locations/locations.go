// Package locations is the add-by-search boundary: it talks to the search
// collaborator, applies the duplicate-location policy, and turns a chosen
// candidate into a saved Location.
package locations

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/tempestweather/tempest-core/internal/store"
	"github.com/tempestweather/tempest-core/internal/types"
)

// ErrDuplicateLocation rejects a candidate within proximity tolerance of an
// already-saved location. Surfaced as a blocking inline error; the location
// is not added.
var ErrDuplicateLocation = errors.New("this location already exists")

// Coordinate proximity tolerance for duplicate detection, in degrees on
// each axis independently.
const duplicateTolerance = 0.01

// Queries shorter than this return no results without calling the search
// collaborator.
const minQueryLength = 2

// Candidate is one ranked result from the search collaborator.
type Candidate struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Country     string  `json:"country,omitempty"`
	CountryCode string  `json:"country_code,omitempty"`
	Admin1      string  `json:"admin1,omitempty"`
	Timezone    string  `json:"timezone"`
}

// Searcher is the location search collaborator.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Candidate, error)
}

// Service coordinates search and the add policy against the store.
type Service struct {
	store    *store.Store
	searcher Searcher
}

// NewService creates a Service.
func NewService(st *store.Store, searcher Searcher) *Service {
	return &Service{store: st, searcher: searcher}
}

// Search returns ranked candidates for the query. Queries under two
// characters return empty without a collaborator call.
func (s *Service) Search(ctx context.Context, query string) ([]Candidate, error) {
	if len(query) < minQueryLength {
		return nil, nil
	}
	results, err := s.searcher.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("location search failed: %w", err)
	}
	return results, nil
}

// Add applies the duplicate policy to the chosen candidate and, if it
// passes, appends a new Location to the store and returns it.
func (s *Service) Add(candidate Candidate) (types.Location, error) {
	for _, existing := range s.store.Locations() {
		if math.Abs(existing.Latitude-candidate.Latitude) < duplicateTolerance &&
			math.Abs(existing.Longitude-candidate.Longitude) < duplicateTolerance {
			return types.Location{}, ErrDuplicateLocation
		}
	}

	loc := types.Location{
		ID:             uuid.NewString(),
		Latitude:       candidate.Latitude,
		Longitude:      candidate.Longitude,
		Timezone:       candidate.Timezone,
		City:           candidate.Name,
		Province:       candidate.Admin1,
		Country:        candidate.Country,
		CountryCode:    candidate.CountryCode,
		ForecastSource: s.store.Settings().DefaultForecastSource,
	}

	s.store.AddLocation(loc)
	return loc, nil
}
