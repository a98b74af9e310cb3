package standing

import (
	"cmp"
	"slices"

	"github.com/riskibarqy/league-reference/internal/domain/game"
)

// Tally derives standings from completed games. divisionOf maps team id to division id; games
// of teams outside divisionOf are ignored. Rows come back ordered by division, then team.
//
// Splits produced: home, away, oneRun, extraInnings (games reporting more than nine innings),
// winners (against teams finishing above .500) and one division:<id> split per opposing division.
func Tally(seasonID string, divisionOf map[string]string, games []game.Game) []Standing {
	rows := make(map[string]*Standing, len(divisionOf))
	for teamID, divisionID := range divisionOf {
		rows[teamID] = &Standing{
			SeasonID:   seasonID,
			DivisionID: divisionID,
			TeamID:     teamID,
			Splits:     make(map[string]WinLoss),
		}
	}

	ordered := slices.Clone(games)
	slices.SortStableFunc(ordered, func(a, b game.Game) int { return cmp.Compare(a.Day, b.Day) })

	type result struct {
		team, opponent string
		won            bool
	}
	var results []result

	for _, g := range ordered {
		home, away := rows[g.HomeTeamID], rows[g.AwayTeamID]
		winner := g.WinnerTeamID()
		if home == nil || away == nil || winner == "" {
			continue
		}

		oneRun := abs(g.HomeScore-g.AwayScore) == 1
		extras := g.WentToExtras()
		for _, side := range []struct {
			row      *Standing
			opponent *Standing
			scored   int
			allowed  int
			split    string
		}{
			{row: home, opponent: away, scored: g.HomeScore, allowed: g.AwayScore, split: SplitHome},
			{row: away, opponent: home, scored: g.AwayScore, allowed: g.HomeScore, split: SplitAway},
		} {
			won := winner == side.row.TeamID
			side.row.RunsScored += side.scored
			side.row.RunsAllowed += side.allowed
			if won {
				side.row.Wins++
			} else {
				side.row.Losses++
			}
			side.row.Streak = extendStreak(side.row.Streak, won)
			addSplit(side.row, side.split, won)
			addSplit(side.row, DivisionSplitKey(side.opponent.DivisionID), won)
			if oneRun {
				addSplit(side.row, SplitOneRun, won)
			}
			if extras {
				addSplit(side.row, SplitExtraInnings, won)
			}
			results = append(results, result{team: side.row.TeamID, opponent: side.opponent.TeamID, won: won})
		}
	}

	for _, r := range results {
		opponent := rows[r.opponent]
		if opponent.Wins > opponent.Losses {
			addSplit(rows[r.team], SplitWinners, r.won)
		}
	}

	out := make([]Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	slices.SortFunc(out, func(a, b Standing) int {
		if c := cmp.Compare(a.DivisionID, b.DivisionID); c != 0 {
			return c
		}
		return cmp.Compare(a.TeamID, b.TeamID)
	})
	return out
}

func extendStreak(current Streak, won bool) Streak {
	kind := StreakLosses
	if won {
		kind = StreakWins
	}
	if current.Type == kind && current.Number != nil {
		return Streak{Type: kind, Number: IntPtr(*current.Number + 1)}
	}
	return Streak{Type: kind, Number: IntPtr(1)}
}

func addSplit(row *Standing, key string, won bool) {
	wl := row.Splits[key]
	wins, losses := 0, 0
	if wl.Wins != nil {
		wins = *wl.Wins
	}
	if wl.Losses != nil {
		losses = *wl.Losses
	}
	if won {
		wins++
	} else {
		losses++
	}
	row.Splits[key] = WinLoss{Wins: IntPtr(wins), Losses: IntPtr(losses)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
