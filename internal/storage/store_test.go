package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 500, 200, 400} {
		if _, err := store.SaveScore("lander", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("lander_endless", 900); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("lander", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 200 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	endless, err := store.TopScores("lander_endless", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("lander")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("lander", 1100)
	store.SaveScore("lander", 2100)
	store.SaveScore("lander", 300)

	high, err = store.HighScore("lander")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 2100 {
		t.Errorf("Expected high score of 2100, got %d", high)
	}
}

func TestStoreFlights(t *testing.T) {
	store := openTestStore(t)

	flights := []core.FlightRecord{
		{Level: 1, Status: "crashed-terrain", Fuel: 40, Ticks: 300},
		{Level: 1, Status: "crashed-pad-speed", Fuel: 35.5, SpeedCrash: true, CrashSpeed: 31.2, CrashLimit: 20, Ticks: 280},
		{Level: 1, Status: "landed", Fuel: 62.5, Ticks: 410},
		{Level: 2, Status: "landed", Fuel: 12.25, Ticks: 500},
	}
	for _, f := range flights {
		if _, err := store.SaveFlight("lander", f); err != nil {
			t.Fatalf("SaveFlight() failed: %v", err)
		}
	}

	recent, err := store.RecentFlights("lander", 10)
	if err != nil {
		t.Fatalf("RecentFlights() failed: %v", err)
	}
	if len(recent) != 4 {
		t.Fatalf("Expected 4 flights, got %d", len(recent))
	}
	if recent[0].Level != 2 || recent[0].Status != "landed" {
		t.Errorf("Expected newest flight first, got %+v", recent[0])
	}

	speed := recent[2]
	if !speed.SpeedCrash || speed.CrashSpeed != 31.2 || speed.CrashLimit != 20 {
		t.Errorf("Speed crash diagnostics not round-tripped: %+v", speed)
	}
	if recent[3].SpeedCrash {
		t.Errorf("Terrain crash should have no speed diagnostics: %+v", recent[3])
	}

	stats, err := store.GetFlightStats("lander")
	if err != nil {
		t.Fatalf("GetFlightStats() failed: %v", err)
	}
	if stats.Flights != 4 || stats.Landings != 2 || stats.BestFuel != 62.5 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.ByStatus["crashed-terrain"] != 1 || stats.ByStatus["crashed-pad-speed"] != 1 {
		t.Errorf("Unexpected status counts: %v", stats.ByStatus)
	}
	if stats.TotalTicks != 1490 {
		t.Errorf("Expected 1490 ticks, got %d", stats.TotalTicks)
	}
	if stats.LandingRate() != 0.5 {
		t.Errorf("Expected landing rate 0.5, got %g", stats.LandingRate())
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("lander", 100)
	store.SaveScore("lander_endless", 300)
	store.SaveFlight("lander", core.FlightRecord{Level: 1, Status: "landed", Fuel: 10})

	if err := store.ClearScores("lander"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("lander", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	flights, _ := store.RecentFlights("lander", 10)
	if len(flights) != 0 {
		t.Errorf("Expected 0 flights after clear, got %d", len(flights))
	}

	endless, _ := store.TopScores("lander_endless", 10)
	if len(endless) != 1 {
		t.Error("Endless scores should not be affected by clearing lander")
	}
}

func TestEmptyFlightStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetFlightStats("lander")
	if err != nil {
		t.Fatalf("GetFlightStats() failed: %v", err)
	}
	if stats.Flights != 0 || stats.LandingRate() != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}
}
