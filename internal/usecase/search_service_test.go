package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/league-reference/internal/domain/player"
	"github.com/riskibarqy/league-reference/internal/domain/team"
	"github.com/riskibarqy/league-reference/internal/platform/cache"
)

func TestSearchService_Query_MemoisesIndex(t *testing.T) {
	t.Parallel()

	teams := &stubTeamRepo{teams: []team.Team{{ID: "crabs", Name: "Baltimore Crabs"}}}
	players := &stubPlayerRepo{items: []player.Player{{ID: "p1", Name: "Basilio Fig"}}}
	service := NewSearchService(teams, players, cache.NewStore(time.Minute), nil)
	ctx := context.Background()

	got, err := service.Query(ctx, "ba", 10)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 || got[0].ID != "crabs" || got[1].ID != "p1" {
		t.Fatalf("unexpected results %+v", got)
	}

	if _, err := service.Query(ctx, "fig", 10); err != nil {
		t.Fatalf("second query: %v", err)
	}
	if players.calls != 1 {
		t.Fatalf("expected index to be built once, built %d times", players.calls)
	}

	players.Upsert(ctx, []player.Player{{ID: "p2", Name: "Baldwin Breadwinner"}})
	service.Invalidate(ctx)

	got, err = service.Query(ctx, "ba", 0)
	if err != nil {
		t.Fatalf("query after invalidate: %v", err)
	}
	if len(got) != 3 || players.calls != 2 {
		t.Fatalf("expected rebuilt index, results=%d builds=%d", len(got), players.calls)
	}
}

func TestSearchService_Query_BlankAndInvalid(t *testing.T) {
	t.Parallel()

	players := &stubPlayerRepo{}
	service := NewSearchService(&stubTeamRepo{}, players, nil, nil)

	got, err := service.Query(context.Background(), "   ", 5)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result for blank query, got %+v err=%v", got, err)
	}
	if players.calls != 0 {
		t.Fatalf("blank query must not build the index")
	}
	if _, err := service.Query(context.Background(), "x", -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
