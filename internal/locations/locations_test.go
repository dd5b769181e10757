package locations

import (
	"context"
	"errors"
	"testing"

	"github.com/tempestweather/tempest-core/internal/store"
	"github.com/tempestweather/tempest-core/internal/types"
)

type fakeSearcher struct {
	results []Candidate
	err     error
	queries []string
}

func (f *fakeSearcher) Search(_ context.Context, query string) ([]Candidate, error) {
	f.queries = append(f.queries, query)
	return f.results, f.err
}

func newService(searcher *fakeSearcher) (*Service, *store.Store) {
	st := store.New(nil, nil)
	return NewService(st, searcher), st
}

func TestSearchShortQueryReturnsEmptyWithoutCall(t *testing.T) {
	searcher := &fakeSearcher{results: []Candidate{{Name: "Rome"}}}
	svc, _ := newService(searcher)

	for _, query := range []string{"", "r"} {
		got, err := svc.Search(context.Background(), query)
		if err != nil {
			t.Fatalf("query %q: unexpected error: %v", query, err)
		}
		if len(got) != 0 {
			t.Errorf("query %q: expected empty result", query)
		}
	}
	if len(searcher.queries) != 0 {
		t.Errorf("collaborator called for short queries: %v", searcher.queries)
	}
}

func TestSearchDelegates(t *testing.T) {
	searcher := &fakeSearcher{results: []Candidate{{Name: "Rome"}, {Name: "Romeoville"}}}
	svc, _ := newService(searcher)

	got, err := svc.Search(context.Background(), "ro")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "Rome" {
		t.Errorf("ranked order not preserved: %v", got)
	}
}

func TestSearchFailureSurfaces(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("timeout")}
	svc, _ := newService(searcher)

	if _, err := svc.Search(context.Background(), "rome"); err == nil {
		t.Fatal("expected network failure to surface")
	}
}

func TestAddDuplicatePolicy(t *testing.T) {
	existing := types.Location{ID: "x", City: "Rome", Latitude: 41.9, Longitude: 12.5}

	tests := []struct {
		name      string
		candidate Candidate
		wantErr   bool
	}{
		{
			name:      "within tolerance on both axes rejected",
			candidate: Candidate{Name: "Roma", Latitude: 41.905, Longitude: 12.495},
			wantErr:   true,
		},
		{
			name:      "offset beyond tolerance accepted",
			candidate: Candidate{Name: "Nearby", Latitude: 41.92, Longitude: 12.52},
			wantErr:   false,
		},
		{
			name:      "close latitude but distant longitude accepted",
			candidate: Candidate{Name: "EastTown", Latitude: 41.9, Longitude: 13.5},
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st := newService(&fakeSearcher{})
			st.SetLocations([]types.Location{existing})

			_, err := svc.Add(tt.candidate)
			st.Wait()

			if tt.wantErr {
				if !errors.Is(err, ErrDuplicateLocation) {
					t.Fatalf("expected ErrDuplicateLocation, got %v", err)
				}
				if len(st.Locations()) != 1 {
					t.Error("rejected candidate must not be added")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(st.Locations()) != 2 {
				t.Error("accepted candidate not appended")
			}
		})
	}
}

func TestAddBuildsLocation(t *testing.T) {
	svc, st := newService(&fakeSearcher{})

	loc, err := svc.Add(Candidate{
		ID:          42,
		Name:        "Vancouver",
		Latitude:    49.28,
		Longitude:   -123.12,
		Country:     "Canada",
		CountryCode: "CA",
		Admin1:      "British Columbia",
		Timezone:    "America/Vancouver",
	})
	st.Wait()
	if err != nil {
		t.Fatal(err)
	}

	if loc.ID == "" {
		t.Error("expected a minted stable id")
	}
	if loc.City != "Vancouver" || loc.Province != "British Columbia" || loc.CountryCode != "CA" {
		t.Errorf("candidate fields not mapped: %+v", loc)
	}
	if loc.IsCurrentPosition {
		t.Error("searched locations are never the current position")
	}
	if loc.ForecastSource != st.Settings().DefaultForecastSource {
		t.Errorf("forecast source should come from settings, got %q", loc.ForecastSource)
	}
	if loc.Weather != nil {
		t.Error("new locations start without weather")
	}

	saved := st.Locations()
	if len(saved) != 1 || saved[0].ID != loc.ID {
		t.Error("location not stored")
	}
}

func TestAddedIDsAreUnique(t *testing.T) {
	svc, st := newService(&fakeSearcher{})

	a, _ := svc.Add(Candidate{Name: "A", Latitude: 10, Longitude: 10, Timezone: "UTC"})
	b, _ := svc.Add(Candidate{Name: "B", Latitude: 20, Longitude: 20, Timezone: "UTC"})
	st.Wait()

	if a.ID == b.ID {
		t.Error("ids must be unique across adds")
	}
}
