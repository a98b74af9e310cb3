package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-reference/internal/domain/game"
	qb "github.com/riskibarqy/league-reference/internal/platform/querybuilder"
)

// gameInsertBatchSize keeps one insert under the postgres bind parameter limit.
const gameInsertBatchSize = 500

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) ListBySeason(ctx context.Context, seasonID string) ([]game.Game, error) {
	query, args, err := listGamesBySeasonQuery(seasonID)
	if err != nil {
		return nil, fmt.Errorf("build list games query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list games season=%s: %w", seasonID, err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, game.Game{
			ID:           row.PublicID,
			SeasonID:     row.SeasonID,
			Day:          row.Day,
			HomeTeamID:   row.HomeTeamID,
			AwayTeamID:   row.AwayTeamID,
			HomeScore:    row.HomeScore,
			AwayScore:    row.AwayScore,
			GameComplete: row.GameComplete,
			GameStart:    row.GameStart,
			Weather:      row.Weather,
			Innings:      row.Innings,
		})
	}
	return out, nil
}

// listGamesBySeasonQuery orders games of one day by insertion id, which follows the order
// ReplaceBySeason received them in.
func listGamesBySeasonQuery(seasonID string) (string, []any, error) {
	return qb.Select("*").From("games").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("day", "id").
		ToSQL()
}

func (r *GameRepository) ReplaceBySeason(ctx context.Context, seasonID string, games []game.Game) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace games: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("games").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear games query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear games season=%s: %w", seasonID, err)
	}

	for start := 0; start < len(games); start += gameInsertBatchSize {
		end := min(start+gameInsertBatchSize, len(games))
		models := make([]gameInsertModel, 0, end-start)
		for _, g := range games[start:end] {
			models = append(models, gameInsertModel{
				PublicID:     g.ID,
				SeasonID:     seasonID,
				Day:          g.Day,
				HomeTeamID:   g.HomeTeamID,
				AwayTeamID:   g.AwayTeamID,
				HomeScore:    g.HomeScore,
				AwayScore:    g.AwayScore,
				GameComplete: g.GameComplete,
				GameStart:    g.GameStart,
				Weather:      g.Weather,
				Innings:      g.Innings,
			})
		}

		query, args, err := qb.InsertModels("games", models, `ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    season_public_id = EXCLUDED.season_public_id,
    day = EXCLUDED.day,
    home_team_public_id = EXCLUDED.home_team_public_id,
    away_team_public_id = EXCLUDED.away_team_public_id,
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    game_complete = EXCLUDED.game_complete,
    game_start = EXCLUDED.game_start,
    weather = EXCLUDED.weather,
    innings = EXCLUDED.innings,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build insert games query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert games season=%s batch=%d: %w", seasonID, start/gameInsertBatchSize, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace games tx: %w", err)
	}
	return nil
}
