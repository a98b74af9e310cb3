package standing

import (
	"fmt"

	"github.com/riskibarqy/league-reference/internal/domain/stattable"
)

// Footer columns.
const (
	ColumnWins            = "wins"
	ColumnLosses          = "losses"
	ColumnRunsScored      = "runsScored"
	ColumnRunsAllowed     = "runsAllowed"
	ColumnRunDifferential = "runDifferential"
	ColumnGamesPlayed     = "gamesPlayed"
	ColumnWinPct          = "winPct"
)

func columnValue(column string) (func(Standing) float64, error) {
	switch column {
	case ColumnWins:
		return func(s Standing) float64 { return float64(s.Wins) }, nil
	case ColumnLosses:
		return func(s Standing) float64 { return float64(s.Losses) }, nil
	case ColumnRunsScored:
		return func(s Standing) float64 { return float64(s.RunsScored) }, nil
	case ColumnRunsAllowed:
		return func(s Standing) float64 { return float64(s.RunsAllowed) }, nil
	case ColumnRunDifferential:
		return func(s Standing) float64 { return float64(s.RunDifferential()) }, nil
	case ColumnGamesPlayed:
		return func(s Standing) float64 { return float64(s.GamesPlayed()) }, nil
	case ColumnWinPct:
		return Standing.WinPct, nil
	default:
		return nil, fmt.Errorf("unknown standings column %q", column)
	}
}

// SumColumn totals column over rows. Empty rows sum to 0.
func SumColumn(rows []Standing, column string) (float64, error) {
	value, err := columnValue(column)
	if err != nil {
		return 0, err
	}
	return stattable.SumColumn(rows, value), nil
}

// AverageColumn is the mean of column over rows. Empty rows yield NaN.
func AverageColumn(rows []Standing, column string) (float64, error) {
	value, err := columnValue(column)
	if err != nil {
		return 0, err
	}
	return stattable.AverageColumn(rows, value), nil
}

// Total is the footer row of a standings table.
type Total struct {
	Wins            int
	Losses          int
	RunsScored      int
	RunsAllowed     int
	RunDifferential int
	GamesPlayed     int
	WinPct          float64
}

// Totals sums the counting columns. WinPct is recomputed from the summed record.
func Totals(rows []Standing) Total {
	sum := func(value func(Standing) int) int { return stattable.SumColumn(rows, value) }

	t := Total{
		Wins:        sum(func(s Standing) int { return s.Wins }),
		Losses:      sum(func(s Standing) int { return s.Losses }),
		RunsScored:  sum(func(s Standing) int { return s.RunsScored }),
		RunsAllowed: sum(func(s Standing) int { return s.RunsAllowed }),
	}
	t.RunDifferential = t.RunsScored - t.RunsAllowed
	t.GamesPlayed = t.Wins + t.Losses
	t.WinPct = winPct(t.Wins, t.Losses)
	return t
}
