package postgres

import "time"

type battingLineTableModel struct {
	ID               int64      `db:"id"`
	PlayerID         string     `db:"player_public_id"`
	SeasonID         string     `db:"season_public_id"`
	TeamID           string     `db:"team_public_id"`
	PlateAppearances int        `db:"plate_appearances"`
	AtBats           int        `db:"at_bats"`
	Hits             int        `db:"hits"`
	Doubles          int        `db:"doubles"`
	Triples          int        `db:"triples"`
	HomeRuns         int        `db:"home_runs"`
	Walks            int        `db:"walks"`
	HitByPitch       int        `db:"hit_by_pitch"`
	SacrificeFlies   int        `db:"sacrifice_flies"`
	Strikeouts       int        `db:"strikeouts"`
	Runs             int        `db:"runs"`
	RunsBattedIn     int        `db:"runs_batted_in"`
	StolenBases      int        `db:"stolen_bases"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
	DeletedAt        *time.Time `db:"deleted_at"`
}

type battingLineInsertModel struct {
	PlayerID         string `db:"player_public_id"`
	SeasonID         string `db:"season_public_id"`
	TeamID           string `db:"team_public_id"`
	PlateAppearances int    `db:"plate_appearances"`
	AtBats           int    `db:"at_bats"`
	Hits             int    `db:"hits"`
	Doubles          int    `db:"doubles"`
	Triples          int    `db:"triples"`
	HomeRuns         int    `db:"home_runs"`
	Walks            int    `db:"walks"`
	HitByPitch       int    `db:"hit_by_pitch"`
	SacrificeFlies   int    `db:"sacrifice_flies"`
	Strikeouts       int    `db:"strikeouts"`
	Runs             int    `db:"runs"`
	RunsBattedIn     int    `db:"runs_batted_in"`
	StolenBases      int    `db:"stolen_bases"`
}

type pitchingLineTableModel struct {
	ID              int64      `db:"id"`
	PlayerID        string     `db:"player_public_id"`
	SeasonID        string     `db:"season_public_id"`
	TeamID          string     `db:"team_public_id"`
	Games           int        `db:"games"`
	Wins            int        `db:"wins"`
	Losses          int        `db:"losses"`
	Outs            int        `db:"outs"`
	RunsAllowed     int        `db:"runs_allowed"`
	EarnedRuns      int        `db:"earned_runs"`
	HitsAllowed     int        `db:"hits_allowed"`
	Walks           int        `db:"walks"`
	Strikeouts      int        `db:"strikeouts"`
	HomeRunsAllowed int        `db:"home_runs_allowed"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

type pitchingLineInsertModel struct {
	PlayerID        string `db:"player_public_id"`
	SeasonID        string `db:"season_public_id"`
	TeamID          string `db:"team_public_id"`
	Games           int    `db:"games"`
	Wins            int    `db:"wins"`
	Losses          int    `db:"losses"`
	Outs            int    `db:"outs"`
	RunsAllowed     int    `db:"runs_allowed"`
	EarnedRuns      int    `db:"earned_runs"`
	HitsAllowed     int    `db:"hits_allowed"`
	Walks           int    `db:"walks"`
	Strikeouts      int    `db:"strikeouts"`
	HomeRunsAllowed int    `db:"home_runs_allowed"`
}
