package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-reference/internal/domain/player"
	qb "github.com/riskibarqy/league-reference/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player id=%s: %w", playerID, err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, players []player.Player) error {
	if len(players) == 0 {
		return nil
	}

	models := make([]playerInsertModel, 0, len(players))
	for _, p := range players {
		models = append(models, playerInsertModel{
			PublicID: p.ID,
			TeamID:   optionalString(p.TeamID),
			Name:     p.Name,
			Position: p.Position,
		})
	}

	query, args, err := qb.InsertModels("players", models, `ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    team_public_id = EXCLUDED.team_public_id,
    name = EXCLUDED.name,
    position = EXCLUDED.position,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert players query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert players: %w", err)
	}
	return nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:       row.PublicID,
		TeamID:   strings.TrimSpace(row.TeamID.String),
		Name:     row.Name,
		Position: row.Position,
	}
}
