package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-reference/internal/domain/season"
	qb "github.com/riskibarqy/league-reference/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(qb.IsNull("deleted_at")).
		OrderBy("number", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}
	return out, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(
			qb.Eq("public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season id=%s: %w", seasonID, err)
	}

	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) Upsert(ctx context.Context, seasons []season.Season) error {
	if len(seasons) == 0 {
		return nil
	}

	models := make([]seasonInsertModel, 0, len(seasons))
	for _, s := range seasons {
		models = append(models, seasonInsertModel{
			PublicID: s.ID,
			Number:   s.Number,
			Name:     s.Name,
			StartsAt: s.StartsAt.UTC(),
		})
	}

	query, args, err := qb.InsertModels("seasons", models, `ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    number = EXCLUDED.number,
    name = EXCLUDED.name,
    starts_at = EXCLUDED.starts_at,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert seasons query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert seasons: %w", err)
	}
	return nil
}

func seasonFromRow(row seasonTableModel) season.Season {
	return season.Season{
		ID:       row.PublicID,
		Number:   row.Number,
		Name:     row.Name,
		StartsAt: row.StartsAt.UTC(),
	}
}
