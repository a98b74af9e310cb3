package usecase

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/league-reference/internal/domain/game"
	"github.com/riskibarqy/league-reference/internal/domain/player"
	"github.com/riskibarqy/league-reference/internal/domain/playerstats"
	"github.com/riskibarqy/league-reference/internal/domain/season"
	"github.com/riskibarqy/league-reference/internal/domain/standing"
	"github.com/riskibarqy/league-reference/internal/domain/team"
)

type stubSeasonRepo struct {
	mu    sync.Mutex
	items []season.Season
	err   error
}

func (r *stubSeasonRepo) List(context.Context) ([]season.Season, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.items), r.err
}

func (r *stubSeasonRepo) GetByID(_ context.Context, seasonID string) (season.Season, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.ID == seasonID {
			return item, true, nil
		}
	}
	return season.Season{}, false, r.err
}

func (r *stubSeasonRepo) Upsert(_ context.Context, seasons []season.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, seasons...)
	return nil
}

type stubTeamRepo struct {
	mu        sync.Mutex
	teams     []team.Team
	divisions map[string][]team.Division
}

func (r *stubTeamRepo) ListTeams(context.Context) ([]team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.teams), nil
}

func (r *stubTeamRepo) GetTeamByID(_ context.Context, teamID string) (team.Team, bool, error) {
	for _, t := range r.teams {
		if t.ID == teamID {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *stubTeamRepo) UpsertTeams(_ context.Context, teams []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams = append(r.teams, teams...)
	return nil
}

func (r *stubTeamRepo) ListDivisions(_ context.Context, seasonID string) ([]team.Division, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.divisions[seasonID]), nil
}

func (r *stubTeamRepo) GetDivision(_ context.Context, seasonID, divisionID string) (team.Division, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.divisions[seasonID] {
		if d.ID == divisionID {
			return d, true, nil
		}
	}
	return team.Division{}, false, nil
}

func (r *stubTeamRepo) ReplaceDivisions(_ context.Context, seasonID string, divisions []team.Division) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.divisions == nil {
		r.divisions = make(map[string][]team.Division)
	}
	r.divisions[seasonID] = divisions
	return nil
}

type stubPlayerRepo struct {
	mu    sync.Mutex
	items []player.Player
	calls int
}

func (r *stubPlayerRepo) List(context.Context) ([]player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return slices.Clone(r.items), nil
}

func (r *stubPlayerRepo) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	for _, p := range r.items {
		if p.ID == playerID {
			return p, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *stubPlayerRepo) Upsert(_ context.Context, players []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, players...)
	return nil
}

type stubGameRepo struct {
	mu     sync.Mutex
	games  map[string][]game.Game
	writes int
}

func (r *stubGameRepo) ListBySeason(_ context.Context, seasonID string) ([]game.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.games[seasonID]), nil
}

func (r *stubGameRepo) ReplaceBySeason(_ context.Context, seasonID string, games []game.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.games == nil {
		r.games = make(map[string][]game.Game)
	}
	r.games[seasonID] = games
	r.writes++
	return nil
}

type stubStandingRepo struct {
	mu   sync.Mutex
	rows map[string][]standing.Standing
}

func (r *stubStandingRepo) ListBySeason(_ context.Context, seasonID string) ([]standing.Standing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.rows[seasonID]), nil
}

func (r *stubStandingRepo) ListByDivision(_ context.Context, seasonID, divisionID string) ([]standing.Standing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]standing.Standing, 0)
	for _, row := range r.rows[seasonID] {
		if row.DivisionID == divisionID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubStandingRepo) ReplaceBySeason(_ context.Context, seasonID string, rows []standing.Standing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rows == nil {
		r.rows = make(map[string][]standing.Standing)
	}
	r.rows[seasonID] = rows
	return nil
}

type stubStatsRepo struct {
	mu       sync.Mutex
	batting  []playerstats.BattingLine
	pitching []playerstats.PitchingLine
}

func (r *stubStatsRepo) ListBattingByPlayer(_ context.Context, playerID string) ([]playerstats.BattingLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]playerstats.BattingLine, 0)
	for _, line := range r.batting {
		if line.PlayerID == playerID {
			out = append(out, line)
		}
	}
	return out, nil
}

func (r *stubStatsRepo) ListPitchingByPlayer(_ context.Context, playerID string) ([]playerstats.PitchingLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]playerstats.PitchingLine, 0)
	for _, line := range r.pitching {
		if line.PlayerID == playerID {
			out = append(out, line)
		}
	}
	return out, nil
}

func (r *stubStatsRepo) ReplaceBySeason(_ context.Context, _ string, batting []playerstats.BattingLine, pitching []playerstats.PitchingLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batting = append(r.batting, batting...)
	r.pitching = append(r.pitching, pitching...)
	return nil
}
