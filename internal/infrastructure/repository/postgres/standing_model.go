package postgres

import (
	"database/sql"
	"time"
)

type standingTableModel struct {
	ID           int64          `db:"id"`
	SeasonID     string         `db:"season_public_id"`
	DivisionID   string         `db:"division_public_id"`
	TeamID       string         `db:"team_public_id"`
	Wins         int            `db:"wins"`
	Losses       int            `db:"losses"`
	RunsScored   int            `db:"runs_scored"`
	RunsAllowed  int            `db:"runs_allowed"`
	StreakType   sql.NullString `db:"streak_type"`
	StreakNumber sql.NullInt64  `db:"streak_number"`
	Splits       string         `db:"splits"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DeletedAt    *time.Time     `db:"deleted_at"`
}

type standingInsertModel struct {
	SeasonID     string  `db:"season_public_id"`
	DivisionID   string  `db:"division_public_id"`
	TeamID       string  `db:"team_public_id"`
	Wins         int     `db:"wins"`
	Losses       int     `db:"losses"`
	RunsScored   int     `db:"runs_scored"`
	RunsAllowed  int     `db:"runs_allowed"`
	StreakType   *string `db:"streak_type"`
	StreakNumber *int    `db:"streak_number"`
	Splits       string  `db:"splits"`
}

// splitRecord is the JSONB shape of one split. Missing sides stay null.
type splitRecord struct {
	Wins   *int `json:"wins"`
	Losses *int `json:"losses"`
}
