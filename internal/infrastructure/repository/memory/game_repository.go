package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/league-reference/internal/domain/game"
)

type GameRepository struct {
	mu       sync.RWMutex
	bySeason map[string][]game.Game
}

func NewGameRepository(games []game.Game) *GameRepository {
	r := &GameRepository{bySeason: make(map[string][]game.Game)}
	for _, g := range games {
		r.bySeason[g.SeasonID] = append(r.bySeason[g.SeasonID], g)
	}
	for seasonID := range r.bySeason {
		sortGames(r.bySeason[seasonID])
	}
	return r
}

func (r *GameRepository) ListBySeason(_ context.Context, seasonID string) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.bySeason[seasonID]), nil
}

func (r *GameRepository) ReplaceBySeason(_ context.Context, seasonID string, games []game.Game) error {
	items := make([]game.Game, 0, len(games))
	for _, g := range games {
		g.SeasonID = seasonID
		items = append(items, g)
	}
	sortGames(items)

	r.mu.Lock()
	r.bySeason[seasonID] = items
	r.mu.Unlock()
	return nil
}

func sortGames(games []game.Game) {
	slices.SortStableFunc(games, func(a, b game.Game) int {
		return cmp.Compare(a.Day, b.Day)
	})
}
