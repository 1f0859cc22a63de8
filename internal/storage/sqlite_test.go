package storage

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopEpisodes(t *testing.T) {
	store := testStore(t)

	episodes := []EpisodeResult{
		{EpisodeID: "ep-1", EnvID: "agario-grid-v0", Difficulty: "normal", Steps: 100, TotalReward: 12.5, Terminated: false},
		{EpisodeID: "ep-2", EnvID: "agario-grid-v0", Difficulty: "normal", Steps: 40, TotalReward: 30, Terminated: true},
		{EpisodeID: "ep-3", EnvID: "agario-grid-v0", Difficulty: "trivial", Steps: 200, TotalReward: 5, Terminated: false},
		{EpisodeID: "ep-4", EnvID: "agario-ram-v0", Difficulty: "normal", Steps: 10, TotalReward: 99, Terminated: true},
	}
	for _, e := range episodes {
		if _, err := store.SaveEpisode(e); err != nil {
			t.Fatalf("SaveEpisode(%s) failed: %v", e.EpisodeID, err)
		}
	}

	top, err := store.TopEpisodes("agario-grid-v0", 10)
	if err != nil {
		t.Fatalf("TopEpisodes failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopEpisodes returned %d rows, want 3", len(top))
	}
	if top[0].EpisodeID != "ep-2" || top[1].EpisodeID != "ep-1" || top[2].EpisodeID != "ep-3" {
		t.Errorf("wrong order: %s, %s, %s", top[0].EpisodeID, top[1].EpisodeID, top[2].EpisodeID)
	}
	if !top[0].Terminated {
		t.Error("terminated flag lost on round trip")
	}
}

func TestTopEpisodesLimit(t *testing.T) {
	store := testStore(t)

	for i := 0; i < 5; i++ {
		_, err := store.SaveEpisode(EpisodeResult{
			EpisodeID: string(rune('a' + i)), EnvID: "agario-grid-v0",
			Difficulty: "normal", Steps: i, TotalReward: float64(i),
		})
		if err != nil {
			t.Fatalf("SaveEpisode failed: %v", err)
		}
	}

	top, err := store.TopEpisodes("agario-grid-v0", 2)
	if err != nil {
		t.Fatalf("TopEpisodes failed: %v", err)
	}
	if len(top) != 2 {
		t.Errorf("got %d rows, want 2", len(top))
	}
}

func TestStats(t *testing.T) {
	store := testStore(t)

	store.SaveEpisode(EpisodeResult{EpisodeID: "s1", EnvID: "agario-grid-v0", Difficulty: "normal", Steps: 10, TotalReward: 4})
	store.SaveEpisode(EpisodeResult{EpisodeID: "s2", EnvID: "agario-grid-v0", Difficulty: "normal", Steps: 30, TotalReward: 8})

	stats, err := store.Stats("agario-grid-v0")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Episodes != 2 {
		t.Errorf("Episodes = %d, want 2", stats.Episodes)
	}
	if stats.BestReward != 8 {
		t.Errorf("BestReward = %v, want 8", stats.BestReward)
	}
	if stats.AvgReward != 6 {
		t.Errorf("AvgReward = %v, want 6", stats.AvgReward)
	}
	if stats.AvgSteps != 20 {
		t.Errorf("AvgSteps = %v, want 20", stats.AvgSteps)
	}
}

func TestStatsEmptyEnv(t *testing.T) {
	store := testStore(t)

	stats, err := store.Stats("agario-full-v0")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Episodes != 0 || stats.BestReward != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}
}

func TestClearEpisodes(t *testing.T) {
	store := testStore(t)

	store.SaveEpisode(EpisodeResult{EpisodeID: "c1", EnvID: "agario-grid-v0", Difficulty: "normal", Steps: 1, TotalReward: 1})
	store.SaveEpisode(EpisodeResult{EpisodeID: "c2", EnvID: "agario-ram-v0", Difficulty: "normal", Steps: 1, TotalReward: 1})

	if err := store.ClearEpisodes("agario-grid-v0"); err != nil {
		t.Fatalf("ClearEpisodes failed: %v", err)
	}

	grid, _ := store.TopEpisodes("agario-grid-v0", 10)
	if len(grid) != 0 {
		t.Errorf("grid episodes remain after clear: %d", len(grid))
	}
	ram, _ := store.TopEpisodes("agario-ram-v0", 10)
	if len(ram) != 1 {
		t.Errorf("other env affected by clear: %d rows", len(ram))
	}
}
