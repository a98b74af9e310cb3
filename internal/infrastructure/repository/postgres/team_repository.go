package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/league-reference/internal/domain/team"
	qb "github.com/riskibarqy/league-reference/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListTeams(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) GetTeamByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team id=%s: %w", teamID, err)
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) UpsertTeams(ctx context.Context, teams []team.Team) error {
	if len(teams) == 0 {
		return nil
	}

	models := make([]teamInsertModel, 0, len(teams))
	for _, t := range teams {
		models = append(models, teamInsertModel{
			PublicID:     t.ID,
			Name:         t.Name,
			Nickname:     t.Nickname,
			Location:     t.Location,
			Abbreviation: t.Abbreviation,
		})
	}

	query, args, err := qb.InsertModels("teams", models, `ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    nickname = EXCLUDED.nickname,
    location = EXCLUDED.location,
    abbreviation = EXCLUDED.abbreviation,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert teams query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert teams: %w", err)
	}
	return nil
}

func (r *TeamRepository) ListDivisions(ctx context.Context, seasonID string) ([]team.Division, error) {
	query, args, err := qb.Select("*").From("divisions").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list divisions query: %w", err)
	}

	var rows []divisionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list divisions season=%s: %w", seasonID, err)
	}

	out := make([]team.Division, 0, len(rows))
	for _, row := range rows {
		out = append(out, divisionFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) GetDivision(ctx context.Context, seasonID, divisionID string) (team.Division, bool, error) {
	query, args, err := qb.Select("*").From("divisions").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.Eq("public_id", divisionID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Division{}, false, fmt.Errorf("build get division query: %w", err)
	}

	var row divisionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Division{}, false, nil
		}
		return team.Division{}, false, fmt.Errorf("get division season=%s id=%s: %w", seasonID, divisionID, err)
	}

	return divisionFromRow(row), true, nil
}

func (r *TeamRepository) ReplaceDivisions(ctx context.Context, seasonID string, divisions []team.Division) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace divisions: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("divisions").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear divisions query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear divisions season=%s: %w", seasonID, err)
	}

	if len(divisions) > 0 {
		models := make([]divisionInsertModel, 0, len(divisions))
		for _, d := range divisions {
			models = append(models, divisionInsertModel{
				PublicID:      d.ID,
				SeasonID:      seasonID,
				Name:          d.Name,
				TeamPublicIDs: pq.StringArray(append([]string{}, d.TeamIDs...)),
			})
		}

		query, args, err := qb.InsertModels("divisions", models, `ON CONFLICT (season_public_id, public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    team_public_ids = EXCLUDED.team_public_ids,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build insert divisions query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert divisions season=%s: %w", seasonID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace divisions tx: %w", err)
	}
	return nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:           row.PublicID,
		Name:         row.Name,
		Nickname:     row.Nickname,
		Location:     row.Location,
		Abbreviation: row.Abbreviation,
	}
}

func divisionFromRow(row divisionTableModel) team.Division {
	return team.Division{
		ID:       row.PublicID,
		SeasonID: row.SeasonID,
		Name:     row.Name,
		TeamIDs:  append([]string{}, row.TeamPublicIDs...),
	}
}
