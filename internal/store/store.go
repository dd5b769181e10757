// Package store owns the authoritative application state. Every mutation
// flows through the Store's command API, executes synchronously under one
// lock, and dispatches its durable-save and widget-projection side effects
// as detached background tasks that never surface failures to the caller.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/tempestweather/tempest-core/internal/log"
	"github.com/tempestweather/tempest-core/internal/persistence"
	"github.com/tempestweather/tempest-core/internal/types"
)

// Saver persists the durable subset of state.
type Saver interface {
	Save(ctx context.Context, snap persistence.Snapshot) error
}

// Projector pushes a display payload for one location to the external
// shared surface.
type Projector interface {
	Update(ctx context.Context, loc types.Location, settings types.AppSettings) error
}

// Store is the single owner of application state. All exported methods are
// safe for concurrent use; mutations are atomic with respect to each other.
type Store struct {
	mu           sync.Mutex
	locations    []types.Location
	currentIndex int
	settings     types.AppSettings
	isLoading    bool
	errMsg       string
	lastRefresh  time.Time

	saver     Saver
	projector Projector
	now       func() time.Time

	bg sync.WaitGroup
}

// New creates a Store with default settings and no locations.
func New(saver Saver, projector Projector) *Store {
	return &Store{
		locations: []types.Location{},
		settings:  types.DefaultSettings(),
		saver:     saver,
		projector: projector,
		now:       time.Now,
	}
}

// Hydrate seeds the store from a persisted snapshot. It is meant to run
// once at startup, before commands are accepted, and schedules no side
// effects.
func (s *Store) Hydrate(snap persistence.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.locations = append([]types.Location{}, snap.Locations...)
	s.currentIndex = snap.CurrentLocationIndex
	s.settings = snap.Settings
}

// Wait blocks until all in-flight background side effects have finished.
// Used at shutdown and in tests; callers of mutation commands never wait.
func (s *Store) Wait() {
	s.bg.Wait()
}

// SetLocations replaces the whole location sequence. The selection index is
// not reclamped here: callers replacing the list are expected to set the
// index themselves.
func (s *Store) SetLocations(locations []types.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.locations = append([]types.Location{}, locations...)
	s.scheduleSave()
}

// AddLocation appends a location. Identity checks are the caller's policy;
// the add-by-search boundary applies coordinate dedup before calling this.
func (s *Store) AddLocation(loc types.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.locations = append(s.locations, loc)
	s.scheduleSave()
}

// RemoveLocation filters out the location with the given id and clamps the
// selection index into the shrunk list. The clamp is positional: removing
// an entry before the current index can silently shift which location is
// selected.
func (s *Store) RemoveLocation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.locations[:0:0]
	for _, loc := range s.locations {
		if loc.ID != id {
			kept = append(kept, loc)
		}
	}
	s.locations = kept

	max := len(s.locations) - 1
	if max < 0 {
		max = 0
	}
	if s.currentIndex > max {
		s.currentIndex = max
	}
	s.scheduleSave()
}

// UpdateLocation shallow-merges the patch into the location with the given
// id. Unknown ids are ignored.
func (s *Store) UpdateLocation(id string, patch types.LocationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.locations {
		if s.locations[i].ID == id {
			patch.Apply(&s.locations[i])
			break
		}
	}
	s.scheduleSave()
}

// ReorderLocations moves the element at fromIndex to toIndex, keeping the
// relative order of everything else. Out-of-range indexes are ignored.
func (s *Store) ReorderLocations(fromIndex, toIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.locations)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return
	}

	moved := s.locations[fromIndex]
	s.locations = append(s.locations[:fromIndex], s.locations[fromIndex+1:]...)
	s.locations = append(s.locations, types.Location{})
	copy(s.locations[toIndex+1:], s.locations[toIndex:])
	s.locations[toIndex] = moved
	s.scheduleSave()
}

// SetCurrentIndex selects a location by position. If the newly selected
// location already has weather, the widget projection is refreshed.
func (s *Store) SetCurrentIndex(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentIndex = index
	if loc, ok := s.currentLocked(); ok && loc.Weather != nil {
		s.scheduleProjection(loc, s.settings)
	}
	s.scheduleSave()
}

// UpdateLocationWeather replaces the weather snapshot on the matching
// location wholesale and bumps the last-refresh timestamp. If the location
// is the current selection, the widget projection is refreshed.
func (s *Store) UpdateLocationWeather(locationID string, weather *types.WeatherSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.locations {
		if s.locations[i].ID == locationID {
			s.locations[i].Weather = weather
			break
		}
	}
	s.lastRefresh = s.now()

	if loc, ok := s.currentLocked(); ok && loc.ID == locationID {
		s.scheduleProjection(loc, s.settings)
	}
	s.scheduleSave()
}

// UpdateSettings merges the patch into the settings. If the current
// selection has weather, the widget projection is refreshed with the new
// settings so unit-label changes propagate immediately.
func (s *Store) UpdateSettings(patch types.SettingsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patch.Apply(&s.settings)
	if loc, ok := s.currentLocked(); ok && loc.Weather != nil {
		s.scheduleProjection(loc, s.settings)
	}
	s.scheduleSave()
}

// ResetSettings restores the compiled defaults.
func (s *Store) ResetSettings() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = types.DefaultSettings()
	s.scheduleSave()
}

// SetLoading sets the loading flag.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isLoading = loading
	s.scheduleSave()
}

// SetError sets the user-visible error string. An empty string clears it.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errMsg = msg
	s.scheduleSave()
}

// SetLastRefresh sets the last-refresh timestamp.
func (s *Store) SetLastRefresh(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRefresh = t
	s.scheduleSave()
}

// CurrentLocation returns the selected location, or false when the list is
// empty or the index is out of range.
func (s *Store) CurrentLocation() (types.Location, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

// Locations returns a copy of the location sequence in display order.
func (s *Store) Locations() []types.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.Location{}, s.locations...)
}

// CurrentIndex returns the selection index.
func (s *Store) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentIndex
}

// Settings returns the current settings.
func (s *Store) Settings() types.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// IsLoading reports the loading flag.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// Error returns the user-visible error string; empty means none.
func (s *Store) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// LastRefresh returns the last-refresh timestamp; the zero time means no
// refresh has happened this session.
func (s *Store) LastRefresh() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRefresh
}

func (s *Store) currentLocked() (types.Location, bool) {
	if s.currentIndex < 0 || s.currentIndex >= len(s.locations) {
		return types.Location{}, false
	}
	return s.locations[s.currentIndex], true
}

// scheduleSave dispatches a durable save of the filtered state subset.
// Called with the lock held on every mutation; the snapshot is taken
// synchronously so the background task sees the state as of this mutation.
func (s *Store) scheduleSave() {
	if s.saver == nil {
		return
	}
	snap := persistence.Snapshot{
		Locations:            append([]types.Location{}, s.locations...),
		Settings:             s.settings,
		CurrentLocationIndex: s.currentIndex,
	}
	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		if err := s.saver.Save(context.Background(), snap); err != nil {
			log.Warnf("store: dropped state save: %v", err)
		}
	}()
}

// scheduleProjection dispatches a widget write for the given location and
// settings. Failures are logged and dropped. Writes scheduled in quick
// succession race; the slot holds whichever lands last.
func (s *Store) scheduleProjection(loc types.Location, settings types.AppSettings) {
	if s.projector == nil {
		return
	}
	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		if err := s.projector.Update(context.Background(), loc, settings); err != nil {
			log.Warnf("store: dropped widget projection: %v", err)
		}
	}()
}
