package standing

import (
	"strconv"
	"strings"
)

const (
	StreakWins   = "wins"
	StreakLosses = "losses"
)

// Named splits tracked for every team. Per-division splits use DivisionSplitKey.
const (
	SplitHome         = "home"
	SplitAway         = "away"
	SplitExtraInnings = "extraInnings"
	SplitWinners      = "winners"
	SplitOneRun       = "oneRun"

	divisionSplitPrefix = "division:"
)

// WinLoss is one split record. A nil side means the source omitted it.
type WinLoss struct {
	Wins   *int
	Losses *int
}

// Streak is a team's current run of consecutive results.
type Streak struct {
	Type   string
	Number *int
}

func (s Streak) wellFormed() bool {
	return s.Number != nil && (s.Type == StreakWins || s.Type == StreakLosses)
}

// Code renders the streak as W3 / L2, or "-" when unknown.
func (s Streak) Code() string {
	if !s.wellFormed() {
		return "-"
	}
	prefix := "W"
	if s.Type == StreakLosses {
		prefix = "L"
	}
	return prefix + strconv.Itoa(*s.Number)
}

// Standing is one team's row in a division table for a season.
type Standing struct {
	SeasonID    string
	DivisionID  string
	TeamID      string
	Wins        int
	Losses      int
	RunsScored  int
	RunsAllowed int
	Streak      Streak
	Splits      map[string]WinLoss
}

func (s Standing) GamesPlayed() int {
	return s.Wins + s.Losses
}

func (s Standing) RunDifferential() int {
	return s.RunsScored - s.RunsAllowed
}

// WinPct is wins/(wins+losses); NaN before the first game.
func (s Standing) WinPct() float64 {
	return winPct(s.Wins, s.Losses)
}

func DivisionSplitKey(divisionID string) string {
	return divisionSplitPrefix + divisionID
}

// IsSplitKey reports whether key names a split that rows may carry.
func IsSplitKey(key string) bool {
	switch key {
	case SplitHome, SplitAway, SplitExtraInnings, SplitWinners, SplitOneRun:
		return true
	}
	id, ok := strings.CutPrefix(key, divisionSplitPrefix)
	return ok && strings.TrimSpace(id) != ""
}

func IntPtr(v int) *int {
	return &v
}

func winPct(wins, losses int) float64 {
	return float64(wins) / float64(wins+losses)
}
