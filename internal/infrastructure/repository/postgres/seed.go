package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/league-reference/internal/domain/game"
	"github.com/riskibarqy/league-reference/internal/domain/playerstats"
	"github.com/riskibarqy/league-reference/internal/domain/standing"
	"github.com/riskibarqy/league-reference/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the built-in fixture league into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM seasons WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count seasons for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, s := range memory.SeedSeasons() {
		if err := execNamed(ctx, tx, `
INSERT INTO seasons (public_id, number, name, starts_at)
VALUES (:public_id, :number, :name, :starts_at)
ON CONFLICT (public_id) WHERE deleted_at IS NULL DO NOTHING`, map[string]any{
			"public_id": s.ID,
			"number":    s.Number,
			"name":      s.Name,
			"starts_at": s.StartsAt.UTC(),
		}); err != nil {
			return fmt.Errorf("seed season %s: %w", s.ID, err)
		}
	}

	for _, t := range memory.SeedTeams() {
		if err := execNamed(ctx, tx, `
INSERT INTO teams (public_id, name, nickname, location, abbreviation)
VALUES (:public_id, :name, :nickname, :location, :abbreviation)
ON CONFLICT (public_id) WHERE deleted_at IS NULL DO NOTHING`, map[string]any{
			"public_id":    t.ID,
			"name":         t.Name,
			"nickname":     t.Nickname,
			"location":     t.Location,
			"abbreviation": t.Abbreviation,
		}); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
	}

	for _, d := range memory.SeedDivisions() {
		if err := execNamed(ctx, tx, `
INSERT INTO divisions (public_id, season_public_id, name, team_public_ids)
VALUES (:public_id, :season_public_id, :name, :team_public_ids)
ON CONFLICT (season_public_id, public_id) WHERE deleted_at IS NULL DO NOTHING`, map[string]any{
			"public_id":        d.ID,
			"season_public_id": d.SeasonID,
			"name":             d.Name,
			"team_public_ids":  pq.StringArray(d.TeamIDs),
		}); err != nil {
			return fmt.Errorf("seed division %s/%s: %w", d.SeasonID, d.ID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		if err := execNamed(ctx, tx, `
INSERT INTO players (public_id, team_public_id, name, position)
VALUES (:public_id, :team_public_id, :name, :position)
ON CONFLICT (public_id) WHERE deleted_at IS NULL DO NOTHING`, map[string]any{
			"public_id":      p.ID,
			"team_public_id": optionalString(p.TeamID),
			"name":           p.Name,
			"position":       p.Position,
		}); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return seedSeasonData(ctx, db)
}

// seedSeasonData writes per-season tables through the repositories so batching and
// JSONB encoding stay in one place.
func seedSeasonData(ctx context.Context, db *sqlx.DB) error {
	games := make(map[string][]game.Game)
	for _, g := range memory.SeedGames() {
		games[g.SeasonID] = append(games[g.SeasonID], g)
	}
	standings := make(map[string][]standing.Standing)
	for _, s := range memory.SeedStandings() {
		standings[s.SeasonID] = append(standings[s.SeasonID], s)
	}
	batting := make(map[string][]playerstats.BattingLine)
	for _, line := range memory.SeedBattingLines() {
		batting[line.SeasonID] = append(batting[line.SeasonID], line)
	}
	pitching := make(map[string][]playerstats.PitchingLine)
	for _, line := range memory.SeedPitchingLines() {
		pitching[line.SeasonID] = append(pitching[line.SeasonID], line)
	}

	gameRepo := NewGameRepository(db)
	standingRepo := NewStandingRepository(db)
	statsRepo := NewPlayerStatsRepository(db)
	for _, s := range memory.SeedSeasons() {
		if err := gameRepo.ReplaceBySeason(ctx, s.ID, games[s.ID]); err != nil {
			return fmt.Errorf("seed games season=%s: %w", s.ID, err)
		}
		if err := standingRepo.ReplaceBySeason(ctx, s.ID, standings[s.ID]); err != nil {
			return fmt.Errorf("seed standings season=%s: %w", s.ID, err)
		}
		if err := statsRepo.ReplaceBySeason(ctx, s.ID, batting[s.ID], pitching[s.ID]); err != nil {
			return fmt.Errorf("seed player stats season=%s: %w", s.ID, err)
		}
	}
	return nil
}

func execNamed(ctx context.Context, tx *sqlx.Tx, query string, arg map[string]any) error {
	sqlQuery, args, err := sqlx.Named(query, arg)
	if err != nil {
		return fmt.Errorf("bind named query: %w", err)
	}
	sqlQuery = tx.Rebind(sqlQuery)
	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		return err
	}
	return nil
}
