package usecase

import (
	"context"

	"github.com/riskibarqy/league-reference/internal/domain/game"
	"github.com/riskibarqy/league-reference/internal/domain/player"
	"github.com/riskibarqy/league-reference/internal/domain/playerstats"
	"github.com/riskibarqy/league-reference/internal/domain/season"
	"github.com/riskibarqy/league-reference/internal/domain/standing"
	"github.com/riskibarqy/league-reference/internal/domain/team"
)

// ReferenceProvider is a source of league reference data: the remote API or a snapshot directory.
type ReferenceProvider interface {
	FetchSeasons(ctx context.Context) ([]season.Season, error)
	FetchRoster(ctx context.Context, seasonID string) (ExternalRoster, error)
	FetchGames(ctx context.Context, seasonID string) ([]game.Game, error)
	FetchStandings(ctx context.Context, seasonID string) ([]standing.Standing, error)
	FetchPlayerStats(ctx context.Context, seasonID string) (ExternalPlayerStats, error)
}

// ExternalRoster is the team and division layout of one season.
type ExternalRoster struct {
	Teams     []team.Team
	Divisions []team.Division
	Players   []player.Player
}

type ExternalPlayerStats struct {
	Batting  []playerstats.BattingLine
	Pitching []playerstats.PitchingLine
}
