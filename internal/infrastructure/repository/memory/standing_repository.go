package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/riskibarqy/league-reference/internal/domain/standing"
)

type StandingRepository struct {
	mu       sync.RWMutex
	bySeason map[string][]standing.Standing
}

func NewStandingRepository(rows []standing.Standing) *StandingRepository {
	r := &StandingRepository{bySeason: make(map[string][]standing.Standing)}
	for _, row := range rows {
		r.bySeason[row.SeasonID] = append(r.bySeason[row.SeasonID], cloneStanding(row))
	}
	return r
}

func (r *StandingRepository) ListBySeason(_ context.Context, seasonID string) ([]standing.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.bySeason[seasonID]
	out := make([]standing.Standing, 0, len(items))
	for _, row := range items {
		out = append(out, cloneStanding(row))
	}
	return out, nil
}

func (r *StandingRepository) ListByDivision(_ context.Context, seasonID, divisionID string) ([]standing.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]standing.Standing, 0)
	for _, row := range r.bySeason[seasonID] {
		if row.DivisionID == divisionID {
			out = append(out, cloneStanding(row))
		}
	}
	return out, nil
}

func (r *StandingRepository) ReplaceBySeason(_ context.Context, seasonID string, rows []standing.Standing) error {
	items := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		row.SeasonID = seasonID
		items = append(items, cloneStanding(row))
	}

	r.mu.Lock()
	r.bySeason[seasonID] = items
	r.mu.Unlock()
	return nil
}

func cloneStanding(s standing.Standing) standing.Standing {
	s.Splits = maps.Clone(s.Splits)
	return s
}
