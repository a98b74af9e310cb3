package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-reference/internal/domain/playerstats"
	"github.com/riskibarqy/league-reference/internal/domain/statline"
	qb "github.com/riskibarqy/league-reference/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) ListBattingByPlayer(ctx context.Context, playerID string) ([]playerstats.BattingLine, error) {
	query, args, err := qb.Select("*").From("batting_lines").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("season_public_id", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list batting lines query: %w", err)
	}

	var rows []battingLineTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list batting lines player=%s: %w", playerID, err)
	}

	out := make([]playerstats.BattingLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstats.BattingLine{
			PlayerID: row.PlayerID,
			SeasonID: row.SeasonID,
			TeamID:   row.TeamID,
			Batting: statline.Batting{
				PlateAppearances: row.PlateAppearances,
				AtBats:           row.AtBats,
				Hits:             row.Hits,
				Doubles:          row.Doubles,
				Triples:          row.Triples,
				HomeRuns:         row.HomeRuns,
				Walks:            row.Walks,
				HitByPitch:       row.HitByPitch,
				SacrificeFlies:   row.SacrificeFlies,
				Strikeouts:       row.Strikeouts,
				Runs:             row.Runs,
				RunsBattedIn:     row.RunsBattedIn,
				StolenBases:      row.StolenBases,
			},
		})
	}
	return out, nil
}

func (r *PlayerStatsRepository) ListPitchingByPlayer(ctx context.Context, playerID string) ([]playerstats.PitchingLine, error) {
	query, args, err := qb.Select("*").From("pitching_lines").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("season_public_id", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list pitching lines query: %w", err)
	}

	var rows []pitchingLineTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list pitching lines player=%s: %w", playerID, err)
	}

	out := make([]playerstats.PitchingLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstats.PitchingLine{
			PlayerID: row.PlayerID,
			SeasonID: row.SeasonID,
			TeamID:   row.TeamID,
			Pitching: statline.Pitching{
				Games:           row.Games,
				Wins:            row.Wins,
				Losses:          row.Losses,
				Outs:            row.Outs,
				RunsAllowed:     row.RunsAllowed,
				EarnedRuns:      row.EarnedRuns,
				HitsAllowed:     row.HitsAllowed,
				Walks:           row.Walks,
				Strikeouts:      row.Strikeouts,
				HomeRunsAllowed: row.HomeRunsAllowed,
			},
		})
	}
	return out, nil
}

func (r *PlayerStatsRepository) ReplaceBySeason(ctx context.Context, seasonID string, batting []playerstats.BattingLine, pitching []playerstats.PitchingLine) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace player stats: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"batting_lines", "pitching_lines"} {
		clearQuery, clearArgs, err := qb.Update(table).
			SetExpr("deleted_at", "NOW()").
			Where(
				qb.Eq("season_public_id", seasonID),
				qb.IsNull("deleted_at"),
			).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build clear %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
			return fmt.Errorf("clear %s season=%s: %w", table, seasonID, err)
		}
	}

	if len(batting) > 0 {
		models := make([]battingLineInsertModel, 0, len(batting))
		for _, line := range batting {
			models = append(models, battingLineInsertModel{
				PlayerID:         line.PlayerID,
				SeasonID:         seasonID,
				TeamID:           line.TeamID,
				PlateAppearances: line.PlateAppearances,
				AtBats:           line.AtBats,
				Hits:             line.Hits,
				Doubles:          line.Doubles,
				Triples:          line.Triples,
				HomeRuns:         line.HomeRuns,
				Walks:            line.Walks,
				HitByPitch:       line.HitByPitch,
				SacrificeFlies:   line.SacrificeFlies,
				Strikeouts:       line.Strikeouts,
				Runs:             line.Runs,
				RunsBattedIn:     line.RunsBattedIn,
				StolenBases:      line.StolenBases,
			})
		}
		query, args, err := qb.InsertModels("batting_lines", models, `ON CONFLICT (player_public_id, season_public_id, team_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    plate_appearances = EXCLUDED.plate_appearances,
    at_bats = EXCLUDED.at_bats,
    hits = EXCLUDED.hits,
    doubles = EXCLUDED.doubles,
    triples = EXCLUDED.triples,
    home_runs = EXCLUDED.home_runs,
    walks = EXCLUDED.walks,
    hit_by_pitch = EXCLUDED.hit_by_pitch,
    sacrifice_flies = EXCLUDED.sacrifice_flies,
    strikeouts = EXCLUDED.strikeouts,
    runs = EXCLUDED.runs,
    runs_batted_in = EXCLUDED.runs_batted_in,
    stolen_bases = EXCLUDED.stolen_bases,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build insert batting lines query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert batting lines season=%s: %w", seasonID, err)
		}
	}

	if len(pitching) > 0 {
		models := make([]pitchingLineInsertModel, 0, len(pitching))
		for _, line := range pitching {
			models = append(models, pitchingLineInsertModel{
				PlayerID:        line.PlayerID,
				SeasonID:        seasonID,
				TeamID:          line.TeamID,
				Games:           line.Games,
				Wins:            line.Wins,
				Losses:          line.Losses,
				Outs:            line.Outs,
				RunsAllowed:     line.RunsAllowed,
				EarnedRuns:      line.EarnedRuns,
				HitsAllowed:     line.HitsAllowed,
				Walks:           line.Walks,
				Strikeouts:      line.Strikeouts,
				HomeRunsAllowed: line.HomeRunsAllowed,
			})
		}
		query, args, err := qb.InsertModels("pitching_lines", models, `ON CONFLICT (player_public_id, season_public_id, team_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    games = EXCLUDED.games,
    wins = EXCLUDED.wins,
    losses = EXCLUDED.losses,
    outs = EXCLUDED.outs,
    runs_allowed = EXCLUDED.runs_allowed,
    earned_runs = EXCLUDED.earned_runs,
    hits_allowed = EXCLUDED.hits_allowed,
    walks = EXCLUDED.walks,
    strikeouts = EXCLUDED.strikeouts,
    home_runs_allowed = EXCLUDED.home_runs_allowed,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build insert pitching lines query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert pitching lines season=%s: %w", seasonID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace player stats tx: %w", err)
	}
	return nil
}
