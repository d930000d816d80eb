// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package cache

import (
	"testing"
	"time"

	"github.com/resonantlabs/trackrec/internal/engine"
)

func TestKeyFormat(t *testing.T) {
	got := Key("stage3_v1_myna", "myna", 42, 20)
	want := "rec:stage3_v1_myna:myna:seed:42:k:20"
	if got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
}

func TestKeyChangesWithEngineVersionOrModel(t *testing.T) {
	base := Key("v1", "myna", 1, 10)
	if Key("v2", "myna", 1, 10) == base {
		t.Error("changing engine version did not change the key")
	}
	if Key("v1", "cnn", 1, 10) == base {
		t.Error("changing audio model did not change the key")
	}
}

func TestStoreSetGetRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	entry := Entry{
		Method: "hybrid",
		Seed:   engine.SeedInfo{ID: 1, Name: "Song", DisplayArtist: "Artist"},
		Items:  []engine.Item{{Rank: 1, ID: 2, Name: "Other", Score: 0.9}},
	}
	key := Key("v1", "myna", 1, 5)
	store.Set(key, entry, time.Minute)

	got, ok := store.Get(key)
	if !ok {
		t.Fatal("Get() ok = false, want true after Set")
	}
	if got.Method != entry.Method || got.Seed.ID != entry.Seed.ID || len(got.Items) != len(entry.Items) {
		t.Errorf("Get() = %+v, want %+v", got, entry)
	}
}

func TestStoreGetMissOnUnknownKey(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	if _, ok := store.Get("rec:nope"); ok {
		t.Error("Get() ok = true for unknown key, want false")
	}
}

func TestNilStoreIsAlwaysMissAndNoop(t *testing.T) {
	var store *Store
	if _, ok := store.Get("anything"); ok {
		t.Error("nil store Get() returned a hit")
	}
	store.Set("anything", Entry{}, time.Minute) // must not panic
	if store.Ping() {
		t.Error("nil store Ping() = true, want false")
	}
	if err := store.Close(); err != nil {
		t.Errorf("nil store Close() error = %v", err)
	}
}

func TestPingReportsLiveness(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	if !store.Ping() {
		t.Error("Ping() = false on a freshly opened store, want true")
	}
}
