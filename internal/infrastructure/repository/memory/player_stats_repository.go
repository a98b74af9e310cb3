package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/riskibarqy/league-reference/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	mu       sync.RWMutex
	batting  map[string][]playerstats.BattingLine
	pitching map[string][]playerstats.PitchingLine
}

func NewPlayerStatsRepository(batting []playerstats.BattingLine, pitching []playerstats.PitchingLine) *PlayerStatsRepository {
	r := &PlayerStatsRepository{
		batting:  make(map[string][]playerstats.BattingLine),
		pitching: make(map[string][]playerstats.PitchingLine),
	}
	for _, line := range batting {
		r.batting[line.SeasonID] = append(r.batting[line.SeasonID], line)
	}
	for _, line := range pitching {
		r.pitching[line.SeasonID] = append(r.pitching[line.SeasonID], line)
	}
	return r
}

func (r *PlayerStatsRepository) ListBattingByPlayer(_ context.Context, playerID string) ([]playerstats.BattingLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerstats.BattingLine, 0)
	for _, seasonID := range slices.Sorted(maps.Keys(r.batting)) {
		for _, line := range r.batting[seasonID] {
			if line.PlayerID == playerID {
				out = append(out, line)
			}
		}
	}
	return out, nil
}

func (r *PlayerStatsRepository) ListPitchingByPlayer(_ context.Context, playerID string) ([]playerstats.PitchingLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerstats.PitchingLine, 0)
	for _, seasonID := range slices.Sorted(maps.Keys(r.pitching)) {
		for _, line := range r.pitching[seasonID] {
			if line.PlayerID == playerID {
				out = append(out, line)
			}
		}
	}
	return out, nil
}

// ReplaceBySeason swaps every line of the season at once.
func (r *PlayerStatsRepository) ReplaceBySeason(_ context.Context, seasonID string, batting []playerstats.BattingLine, pitching []playerstats.PitchingLine) error {
	b := make([]playerstats.BattingLine, 0, len(batting))
	for _, line := range batting {
		line.SeasonID = seasonID
		b = append(b, line)
	}
	p := make([]playerstats.PitchingLine, 0, len(pitching))
	for _, line := range pitching {
		line.SeasonID = seasonID
		p = append(p, line)
	}

	r.mu.Lock()
	r.batting[seasonID] = b
	r.pitching[seasonID] = p
	r.mu.Unlock()
	return nil
}
