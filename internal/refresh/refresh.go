// Package refresh fetches forecasts for the saved locations, on the
// interval from settings and on demand.
package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/tempestweather/tempest-core/internal/log"
	"github.com/tempestweather/tempest-core/internal/store"
	"github.com/tempestweather/tempest-core/internal/types"
)

const fetchTimeout = 30 * time.Second

// Fetcher is the forecast-provider collaborator.
type Fetcher interface {
	Fetch(ctx context.Context, latitude, longitude float64, timezone string) (*types.WeatherSnapshot, error)
}

// Service refreshes forecasts for every saved location.
type Service struct {
	store     *store.Store
	fetcher   Fetcher
	scheduler *gocron.Scheduler
}

// NewService creates a Service.
func NewService(st *store.Store, fetcher Fetcher) *Service {
	return &Service{
		store:     st,
		fetcher:   fetcher,
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

// Start schedules periodic refreshes at the settings' interval and begins
// running them in the background.
func (s *Service) Start() error {
	minutes := s.store.Settings().RefreshIntervalMinutes
	if minutes <= 0 {
		minutes = 60
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		s.RefreshAll(context.Background())
	})
	if err != nil {
		return fmt.Errorf("could not schedule refresh job: %w", err)
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop cancels future scheduled refreshes.
func (s *Service) Stop() {
	s.scheduler.Stop()
}

// RefreshAll fetches a fresh forecast for every saved location. It serves
// both the scheduled job and manual refresh commands; a failed fetch sets
// the store's user-visible error and the rest of the list still refreshes.
// There is no automatic retry.
func (s *Service) RefreshAll(ctx context.Context) {
	locs := s.store.Locations()
	if len(locs) == 0 {
		return
	}

	s.store.SetLoading(true)
	s.store.SetError("")
	defer s.store.SetLoading(false)

	for _, loc := range locs {
		if err := s.RefreshLocation(ctx, loc); err != nil {
			log.Warnf("refresh: %s: %v", loc.City, err)
			s.store.SetError(fmt.Sprintf("Failed to refresh weather for %s", loc.City))
		}
	}
}

// RefreshLocation fetches and installs a forecast for one location.
func (s *Service) RefreshLocation(ctx context.Context, loc types.Location) error {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	snapshot, err := s.fetcher.Fetch(ctx, loc.Latitude, loc.Longitude, loc.Timezone)
	if err != nil {
		return fmt.Errorf("forecast fetch failed: %w", err)
	}

	s.store.UpdateLocationWeather(loc.ID, snapshot)
	return nil
}
