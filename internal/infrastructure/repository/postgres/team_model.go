package postgres

import (
	"time"

	"github.com/lib/pq"
)

type teamTableModel struct {
	ID           int64      `db:"id"`
	PublicID     string     `db:"public_id"`
	Name         string     `db:"name"`
	Nickname     string     `db:"nickname"`
	Location     string     `db:"location"`
	Abbreviation string     `db:"abbreviation"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type teamInsertModel struct {
	PublicID     string `db:"public_id"`
	Name         string `db:"name"`
	Nickname     string `db:"nickname"`
	Location     string `db:"location"`
	Abbreviation string `db:"abbreviation"`
}

type divisionTableModel struct {
	ID            int64          `db:"id"`
	PublicID      string         `db:"public_id"`
	SeasonID      string         `db:"season_public_id"`
	Name          string         `db:"name"`
	TeamPublicIDs pq.StringArray `db:"team_public_ids"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	DeletedAt     *time.Time     `db:"deleted_at"`
}

type divisionInsertModel struct {
	PublicID      string         `db:"public_id"`
	SeasonID      string         `db:"season_public_id"`
	Name          string         `db:"name"`
	TeamPublicIDs pq.StringArray `db:"team_public_ids"`
}
