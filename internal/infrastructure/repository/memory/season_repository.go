package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/league-reference/internal/domain/season"
)

type SeasonRepository struct {
	mu    sync.RWMutex
	items map[string]season.Season
}

func NewSeasonRepository(seasons []season.Season) *SeasonRepository {
	items := make(map[string]season.Season, len(seasons))
	for _, s := range seasons {
		items[s.ID] = s
	}
	return &SeasonRepository{items: items}
}

// List returns seasons ordered by Number.
func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Season, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b season.Season) int {
		if c := cmp.Compare(a.Number, b.Number); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *SeasonRepository) GetByID(_ context.Context, seasonID string) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[seasonID]
	if !ok {
		return season.Season{}, false, nil
	}
	return s, true, nil
}

func (r *SeasonRepository) Upsert(_ context.Context, seasons []season.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range seasons {
		r.items[s.ID] = s
	}
	return nil
}
