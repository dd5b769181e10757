// Package persistence loads and saves the durable subset of app state as a
// single JSON record in key-value storage.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tempestweather/tempest-core/internal/log"
	"github.com/tempestweather/tempest-core/internal/storage"
	"github.com/tempestweather/tempest-core/internal/types"
)

// StorageKey is the fixed key the app state record lives under.
const StorageKey = "tempest-weather-storage"

// Snapshot is the durable subset of store state. Weather, loading, error
// and last-refresh are session-only and never appear here.
type Snapshot struct {
	Locations            []types.Location  `json:"locations"`
	Settings             types.AppSettings `json:"settings"`
	CurrentLocationIndex int               `json:"currentLocationIndex"`
}

// Adapter persists Snapshots to a KV store.
type Adapter struct {
	kv storage.KV
}

// NewAdapter creates an Adapter over kv.
func NewAdapter(kv storage.KV) *Adapter {
	return &Adapter{kv: kv}
}

// Load reads the durable record. A missing or malformed record is not an
// error: the caller gets an empty default snapshot either way. Settings are
// merged over compiled defaults so the result is always fully populated.
func (a *Adapter) Load(ctx context.Context) Snapshot {
	def := Snapshot{
		Locations:            []types.Location{},
		Settings:             types.DefaultSettings(),
		CurrentLocationIndex: 0,
	}

	raw, err := a.kv.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Warnf("persistence: load failed, starting from defaults: %v", err)
		}
		return def
	}

	snap := def
	if err := json.Unmarshal(raw, &snap); err != nil {
		log.Warnf("persistence: malformed state record, starting from defaults: %v", err)
		return def
	}
	if snap.Locations == nil {
		snap.Locations = []types.Location{}
	}
	return snap
}

// Save serializes the snapshot and writes it under the fixed key. Weather
// is stripped from every location before serialization.
func (a *Adapter) Save(ctx context.Context, snap Snapshot) error {
	stripped := make([]types.Location, len(snap.Locations))
	for i, loc := range snap.Locations {
		loc.Weather = nil
		stripped[i] = loc
	}
	snap.Locations = stripped

	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize state record: %w", err)
	}
	if err := a.kv.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("failed to write state record: %w", err)
	}
	return nil
}
