package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-reference/internal/domain/standing"
	qb "github.com/riskibarqy/league-reference/internal/platform/querybuilder"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ListBySeason(ctx context.Context, seasonID string) ([]standing.Standing, error) {
	query, args, err := qb.Select("*").From("standings").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("division_public_id", "team_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list standings query: %w", err)
	}

	return r.selectStandings(ctx, query, args)
}

func (r *StandingRepository) ListByDivision(ctx context.Context, seasonID, divisionID string) ([]standing.Standing, error) {
	query, args, err := qb.Select("*").From("standings").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.Eq("division_public_id", divisionID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("team_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list division standings query: %w", err)
	}

	return r.selectStandings(ctx, query, args)
}

func (r *StandingRepository) selectStandings(ctx context.Context, query string, args []any) ([]standing.Standing, error) {
	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		item, err := standingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *StandingRepository) ReplaceBySeason(ctx context.Context, seasonID string, standings []standing.Standing) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace standings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("standings").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear standings query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear standings season=%s: %w", seasonID, err)
	}

	for _, item := range standings {
		insertModel, err := standingInsertModelFrom(seasonID, item)
		if err != nil {
			return err
		}
		query, args, err := qb.InsertModel("standings", insertModel, `ON CONFLICT (season_public_id, team_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    division_public_id = EXCLUDED.division_public_id,
    wins = EXCLUDED.wins,
    losses = EXCLUDED.losses,
    runs_scored = EXCLUDED.runs_scored,
    runs_allowed = EXCLUDED.runs_allowed,
    streak_type = EXCLUDED.streak_type,
    streak_number = EXCLUDED.streak_number,
    splits = EXCLUDED.splits,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build upsert standing query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert standing season=%s team=%s: %w", seasonID, item.TeamID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace standings tx: %w", err)
	}
	return nil
}

func standingInsertModelFrom(seasonID string, item standing.Standing) (standingInsertModel, error) {
	splits, err := encodeSplits(item.Splits)
	if err != nil {
		return standingInsertModel{}, fmt.Errorf("encode splits team=%s: %w", item.TeamID, err)
	}

	return standingInsertModel{
		SeasonID:     seasonID,
		DivisionID:   item.DivisionID,
		TeamID:       item.TeamID,
		Wins:         item.Wins,
		Losses:       item.Losses,
		RunsScored:   item.RunsScored,
		RunsAllowed:  item.RunsAllowed,
		StreakType:   optionalString(item.Streak.Type),
		StreakNumber: item.Streak.Number,
		Splits:       splits,
	}, nil
}

func standingFromRow(row standingTableModel) (standing.Standing, error) {
	splits, err := decodeSplits(row.Splits)
	if err != nil {
		return standing.Standing{}, fmt.Errorf("decode splits season=%s team=%s: %w", row.SeasonID, row.TeamID, err)
	}

	out := standing.Standing{
		SeasonID:    row.SeasonID,
		DivisionID:  row.DivisionID,
		TeamID:      row.TeamID,
		Wins:        row.Wins,
		Losses:      row.Losses,
		RunsScored:  row.RunsScored,
		RunsAllowed: row.RunsAllowed,
		Streak: standing.Streak{
			Type: strings.TrimSpace(row.StreakType.String),
		},
		Splits: splits,
	}
	if row.StreakNumber.Valid {
		out.Streak.Number = standing.IntPtr(int(row.StreakNumber.Int64))
	}
	return out, nil
}

func encodeSplits(splits map[string]standing.WinLoss) (string, error) {
	records := make(map[string]splitRecord, len(splits))
	for key, wl := range splits {
		records[key] = splitRecord{Wins: wl.Wins, Losses: wl.Losses}
	}
	return sonic.ConfigStd.MarshalToString(records)
}

func decodeSplits(raw string) (map[string]standing.WinLoss, error) {
	out := make(map[string]standing.WinLoss)
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return out, nil
	}

	var records map[string]splitRecord
	if err := sonic.UnmarshalString(raw, &records); err != nil {
		return nil, err
	}
	for key, rec := range records {
		out[key] = standing.WinLoss{Wins: rec.Wins, Losses: rec.Losses}
	}
	return out, nil
}
