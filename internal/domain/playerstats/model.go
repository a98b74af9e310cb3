package playerstats

import "github.com/riskibarqy/league-reference/internal/domain/statline"

// BattingLine is one player's batting for one season and team.
type BattingLine struct {
	PlayerID string
	SeasonID string
	TeamID   string
	statline.Batting
}

// PitchingLine is one player's pitching for one season and team.
type PitchingLine struct {
	PlayerID string
	SeasonID string
	TeamID   string
	statline.Pitching
}
