package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/league-reference/internal/domain/team"
)

type TeamRepository struct {
	mu        sync.RWMutex
	teams     map[string]team.Team
	orders    []string
	divisions map[string][]team.Division
}

func NewTeamRepository(teams []team.Team, divisions []team.Division) *TeamRepository {
	r := &TeamRepository{
		teams:     make(map[string]team.Team, len(teams)),
		orders:    make([]string, 0, len(teams)),
		divisions: make(map[string][]team.Division),
	}
	r.upsertLocked(teams)
	for _, d := range divisions {
		r.divisions[d.SeasonID] = append(r.divisions[d.SeasonID], cloneDivision(d))
	}
	return r
}

func (r *TeamRepository) ListTeams(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.teams[id])
	}
	return out, nil
}

func (r *TeamRepository) GetTeamByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.teams[teamID]
	return t, ok, nil
}

func (r *TeamRepository) UpsertTeams(_ context.Context, teams []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.upsertLocked(teams)
	return nil
}

func (r *TeamRepository) ListDivisions(_ context.Context, seasonID string) ([]team.Division, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.divisions[seasonID]
	out := make([]team.Division, 0, len(items))
	for _, d := range items {
		out = append(out, cloneDivision(d))
	}
	return out, nil
}

func (r *TeamRepository) GetDivision(_ context.Context, seasonID, divisionID string) (team.Division, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.divisions[seasonID] {
		if d.ID == divisionID {
			return cloneDivision(d), true, nil
		}
	}
	return team.Division{}, false, nil
}

func (r *TeamRepository) ReplaceDivisions(_ context.Context, seasonID string, divisions []team.Division) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]team.Division, 0, len(divisions))
	for _, d := range divisions {
		d.SeasonID = seasonID
		items = append(items, cloneDivision(d))
	}
	r.divisions[seasonID] = items
	return nil
}

func (r *TeamRepository) upsertLocked(teams []team.Team) {
	for _, t := range teams {
		if _, exists := r.teams[t.ID]; !exists {
			r.orders = append(r.orders, t.ID)
		}
		r.teams[t.ID] = t
	}
}

func cloneDivision(d team.Division) team.Division {
	d.TeamIDs = slices.Clone(d.TeamIDs)
	return d
}
