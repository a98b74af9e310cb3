package cache

import (
	"context"
	"slices"

	"github.com/riskibarqy/league-reference/internal/domain/game"
	"github.com/riskibarqy/league-reference/internal/domain/player"
	"github.com/riskibarqy/league-reference/internal/domain/playerstats"
	"github.com/riskibarqy/league-reference/internal/domain/season"
	"github.com/riskibarqy/league-reference/internal/domain/standing"
	"github.com/riskibarqy/league-reference/internal/domain/team"
	basecache "github.com/riskibarqy/league-reference/internal/platform/cache"
)

// found pairs a lookup result with its existence flag so misses are cached too.
type found[T any] struct {
	value  T
	exists bool
}

func loadSlice[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	items, err := basecache.Load(ctx, store, key, func(ctx context.Context) ([]T, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return slices.Clone(items), nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

func loadOne[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	v, err := basecache.Load(ctx, store, key, func(ctx context.Context) (found[T], error) {
		item, exists, err := load(ctx)
		if err != nil {
			return found[T]{}, err
		}
		return found[T]{value: item, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return v.value, v.exists, nil
}

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	return loadSlice(ctx, r.cache, "season:list", r.next.List)
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	return loadOne(ctx, r.cache, "season:id:"+seasonID, func(ctx context.Context) (season.Season, bool, error) {
		return r.next.GetByID(ctx, seasonID)
	})
}

func (r *SeasonRepository) Upsert(ctx context.Context, seasons []season.Season) error {
	if err := r.next.Upsert(ctx, seasons); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "season:")
	return nil
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListTeams(ctx context.Context) ([]team.Team, error) {
	return loadSlice(ctx, r.cache, "team:list", r.next.ListTeams)
}

func (r *TeamRepository) GetTeamByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	return loadOne(ctx, r.cache, "team:id:"+teamID, func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetTeamByID(ctx, teamID)
	})
}

func (r *TeamRepository) UpsertTeams(ctx context.Context, teams []team.Team) error {
	if err := r.next.UpsertTeams(ctx, teams); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "team:")
	return nil
}

func (r *TeamRepository) ListDivisions(ctx context.Context, seasonID string) ([]team.Division, error) {
	return loadSlice(ctx, r.cache, divisionSeasonPrefix(seasonID)+"list", func(ctx context.Context) ([]team.Division, error) {
		return r.next.ListDivisions(ctx, seasonID)
	})
}

func (r *TeamRepository) GetDivision(ctx context.Context, seasonID, divisionID string) (team.Division, bool, error) {
	return loadOne(ctx, r.cache, divisionSeasonPrefix(seasonID)+"id:"+divisionID, func(ctx context.Context) (team.Division, bool, error) {
		return r.next.GetDivision(ctx, seasonID, divisionID)
	})
}

func (r *TeamRepository) ReplaceDivisions(ctx context.Context, seasonID string, divisions []team.Division) error {
	if err := r.next.ReplaceDivisions(ctx, seasonID, divisions); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, divisionSeasonPrefix(seasonID))
	return nil
}

func divisionSeasonPrefix(seasonID string) string {
	return "division:season:" + seasonID + ":"
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return loadSlice(ctx, r.cache, "player:list", r.next.List)
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	return loadOne(ctx, r.cache, "player:id:"+playerID, func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetByID(ctx, playerID)
	})
}

func (r *PlayerRepository) Upsert(ctx context.Context, players []player.Player) error {
	if err := r.next.Upsert(ctx, players); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "player:")
	return nil
}

type GameRepository struct {
	next  game.Repository
	cache *basecache.Store
}

func NewGameRepository(next game.Repository, cache *basecache.Store) *GameRepository {
	return &GameRepository{next: next, cache: cache}
}

func (r *GameRepository) ListBySeason(ctx context.Context, seasonID string) ([]game.Game, error) {
	return loadSlice(ctx, r.cache, "game:season:"+seasonID, func(ctx context.Context) ([]game.Game, error) {
		return r.next.ListBySeason(ctx, seasonID)
	})
}

func (r *GameRepository) ReplaceBySeason(ctx context.Context, seasonID string, games []game.Game) error {
	if err := r.next.ReplaceBySeason(ctx, seasonID, games); err != nil {
		return err
	}
	r.cache.Delete(ctx, "game:season:"+seasonID)
	return nil
}

type StandingRepository struct {
	next  standing.Repository
	cache *basecache.Store
}

func NewStandingRepository(next standing.Repository, cache *basecache.Store) *StandingRepository {
	return &StandingRepository{next: next, cache: cache}
}

func (r *StandingRepository) ListBySeason(ctx context.Context, seasonID string) ([]standing.Standing, error) {
	return loadSlice(ctx, r.cache, standingSeasonPrefix(seasonID)+"all", func(ctx context.Context) ([]standing.Standing, error) {
		return r.next.ListBySeason(ctx, seasonID)
	})
}

func (r *StandingRepository) ListByDivision(ctx context.Context, seasonID, divisionID string) ([]standing.Standing, error) {
	return loadSlice(ctx, r.cache, standingSeasonPrefix(seasonID)+"division:"+divisionID, func(ctx context.Context) ([]standing.Standing, error) {
		return r.next.ListByDivision(ctx, seasonID, divisionID)
	})
}

func (r *StandingRepository) ReplaceBySeason(ctx context.Context, seasonID string, standings []standing.Standing) error {
	if err := r.next.ReplaceBySeason(ctx, seasonID, standings); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, standingSeasonPrefix(seasonID))
	return nil
}

func standingSeasonPrefix(seasonID string) string {
	return "standing:season:" + seasonID + ":"
}

type PlayerStatsRepository struct {
	next  playerstats.Repository
	cache *basecache.Store
}

func NewPlayerStatsRepository(next playerstats.Repository, cache *basecache.Store) *PlayerStatsRepository {
	return &PlayerStatsRepository{next: next, cache: cache}
}

func (r *PlayerStatsRepository) ListBattingByPlayer(ctx context.Context, playerID string) ([]playerstats.BattingLine, error) {
	return loadSlice(ctx, r.cache, "player-stats:batting:"+playerID, func(ctx context.Context) ([]playerstats.BattingLine, error) {
		return r.next.ListBattingByPlayer(ctx, playerID)
	})
}

func (r *PlayerStatsRepository) ListPitchingByPlayer(ctx context.Context, playerID string) ([]playerstats.PitchingLine, error) {
	return loadSlice(ctx, r.cache, "player-stats:pitching:"+playerID, func(ctx context.Context) ([]playerstats.PitchingLine, error) {
		return r.next.ListPitchingByPlayer(ctx, playerID)
	})
}

// ReplaceBySeason drops every cached career since lines are keyed by player, not season.
func (r *PlayerStatsRepository) ReplaceBySeason(ctx context.Context, seasonID string, batting []playerstats.BattingLine, pitching []playerstats.PitchingLine) error {
	if err := r.next.ReplaceBySeason(ctx, seasonID, batting, pitching); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "player-stats:")
	return nil
}
