package postgres

import "time"

type gameTableModel struct {
	ID           int64      `db:"id"`
	PublicID     string     `db:"public_id"`
	SeasonID     string     `db:"season_public_id"`
	Day          int        `db:"day"`
	HomeTeamID   string     `db:"home_team_public_id"`
	AwayTeamID   string     `db:"away_team_public_id"`
	HomeScore    int        `db:"home_score"`
	AwayScore    int        `db:"away_score"`
	GameComplete bool       `db:"game_complete"`
	GameStart    bool       `db:"game_start"`
	Weather      int        `db:"weather"`
	Innings      int        `db:"innings"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type gameInsertModel struct {
	PublicID     string `db:"public_id"`
	SeasonID     string `db:"season_public_id"`
	Day          int    `db:"day"`
	HomeTeamID   string `db:"home_team_public_id"`
	AwayTeamID   string `db:"away_team_public_id"`
	HomeScore    int    `db:"home_score"`
	AwayScore    int    `db:"away_score"`
	GameComplete bool   `db:"game_complete"`
	GameStart    bool   `db:"game_start"`
	Weather      int    `db:"weather"`
	Innings      int    `db:"innings"`
}
