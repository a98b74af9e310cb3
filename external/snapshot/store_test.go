package snapshot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/riskibarqy/league-reference/internal/platform/logging"
	"github.com/riskibarqy/league-reference/internal/usecase"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"seasons.json": {Data: []byte(`[{"id":"s1","number":1,"name":"Season 1","startsAt":"2021-03-01T16:00:00Z"}]`)},
		"s1/roster.json": {Data: []byte(`{
			"teams":[{"id":"t1","fullName":"Harbor Crabs","nickname":"Crabs","location":"Harbor","shorthand":"HBC"}],
			"divisions":[{"id":"d1","name":"Harbor","teams":["t1"]}],
			"players":[{"id":"p1","name":"Ada Flint","teamId":"t1","position":"batter"}]
		}`)},
		"s1/games.json":        {Data: []byte(`[{"id":"g1","day":0,"homeTeam":"t1","awayTeam":"t2","gameStart":true}]`)},
		"s1/player-stats.json": {Data: []byte(`{"batting":[{"playerId":"p1","teamId":"t1","atBats":4,"hits":2}],"pitching":[]}`)},
		"s2/games.json":        {Data: []byte(`{not json`)},
	}
}

func TestStore_ReadsSeasonDocuments(t *testing.T) {
	store := NewStoreFS(testFS(), logging.NewNop())
	ctx := context.Background()

	seasons, err := store.FetchSeasons(ctx)
	if err != nil {
		t.Fatalf("fetch seasons: %v", err)
	}
	if len(seasons) != 1 || seasons[0].Number != 1 {
		t.Fatalf("unexpected seasons: %+v", seasons)
	}

	roster, err := store.FetchRoster(ctx, "s1")
	if err != nil {
		t.Fatalf("fetch roster: %v", err)
	}
	if len(roster.Teams) != 1 || roster.Teams[0].Abbreviation != "HBC" {
		t.Fatalf("unexpected teams: %+v", roster.Teams)
	}
	if len(roster.Divisions) != 1 || roster.Divisions[0].SeasonID != "s1" {
		t.Fatalf("unexpected divisions: %+v", roster.Divisions)
	}

	games, err := store.FetchGames(ctx, "s1")
	if err != nil {
		t.Fatalf("fetch games: %v", err)
	}
	if len(games) != 1 || !games[0].GameStart || games[0].SeasonID != "s1" {
		t.Fatalf("unexpected games: %+v", games)
	}

	stats, err := store.FetchPlayerStats(ctx, "s1")
	if err != nil {
		t.Fatalf("fetch player stats: %v", err)
	}
	if len(stats.Batting) != 1 || stats.Batting[0].Average() != 0.5 {
		t.Fatalf("unexpected batting: %+v", stats.Batting)
	}
}

func TestStore_MissingDocumentIsEmpty(t *testing.T) {
	store := NewStoreFS(testFS(), logging.NewNop())

	rows, err := store.FetchStandings(context.Background(), "s1")
	if err != nil {
		t.Fatalf("fetch standings: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no standings, got %+v", rows)
	}
}

func TestStore_Errors(t *testing.T) {
	store := NewStoreFS(testFS(), logging.NewNop())
	ctx := context.Background()

	if _, err := store.FetchGames(ctx, "s9"); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected not found for missing season, got %v", err)
	}
	for _, id := range []string{"", "../etc", "s1/../s2"} {
		if _, err := store.FetchGames(ctx, id); !errors.Is(err, usecase.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %q, got %v", id, err)
		}
	}
	if _, err := store.FetchGames(ctx, "s2"); err == nil {
		t.Fatalf("expected decode error")
	}

	empty := NewStoreFS(fstest.MapFS{}, logging.NewNop())
	if _, err := empty.FetchSeasons(ctx); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected not found for missing seasons.json, got %v", err)
	}
}

func TestNewStore_ReadsFromDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "seasons.json"), []byte(`[]`), 0o600); err != nil {
		t.Fatalf("write seasons: %v", err)
	}

	seasons, err := NewStore(root, nil).FetchSeasons(context.Background())
	if err != nil {
		t.Fatalf("fetch seasons: %v", err)
	}
	if len(seasons) != 0 {
		t.Fatalf("expected no seasons, got %+v", seasons)
	}
}
