package standing

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Comparators order rows by ascending quality: -1 means a ranks below b. Pass them straight to
// slices.SortStableFunc for worst-first order, or swap the arguments for best-first.

// CompareWinLossSplit orders rows by their win percentage in splitKey. Rows without the split
// rank below rows with it. A 0-0 split ranks above every numeric percentage.
func CompareWinLossSplit(a, b Standing, splitKey string) int {
	aSplit, aOK := split(a, splitKey)
	bSplit, bOK := split(b, splitKey)

	switch {
	case !aOK && !bOK:
		return 0
	case !aOK:
		return -1
	case !bOK:
		return 1
	}

	return comparePct(aSplit.pct(), bSplit.pct())
}

// CompareStreak ranks malformed streaks lowest, then every losing streak, then every winning
// streak. Longer winning streaks and shorter losing streaks rank higher.
func CompareStreak(a, b Standing) int {
	if c := cmp.Compare(streakClass(a.Streak), streakClass(b.Streak)); c != 0 {
		return c
	}

	switch streakClass(a.Streak) {
	case classWins:
		return cmp.Compare(*a.Streak.Number, *b.Streak.Number)
	case classLosses:
		return cmp.Compare(*b.Streak.Number, *a.Streak.Number)
	default:
		return 0
	}
}

// CompareRecord orders rows by overall win percentage, then by total wins.
func CompareRecord(a, b Standing) int {
	if c := comparePct(a.WinPct(), b.WinPct()); c != 0 {
		return c
	}
	return cmp.Compare(a.Wins, b.Wins)
}

func CompareRunDifferential(a, b Standing) int {
	return cmp.Compare(a.RunDifferential(), b.RunDifferential())
}

const (
	SortRecord          = "record"
	SortStreak          = "streak"
	SortRunDifferential = "runDifferential"
)

// Comparator resolves a sort key to its comparator. Empty selects SortRecord.
func Comparator(key string) (func(a, b Standing) int, error) {
	switch key {
	case "", SortRecord:
		return CompareRecord, nil
	case SortStreak:
		return CompareStreak, nil
	case SortRunDifferential:
		return CompareRunDifferential, nil
	}
	if IsSplitKey(key) {
		return func(a, b Standing) int { return CompareWinLossSplit(a, b, key) }, nil
	}
	return nil, fmt.Errorf("unknown standings sort key %q", key)
}

// Sort returns a sorted copy of rows. Equal rows keep their input order.
func Sort(rows []Standing, key string, descending bool) ([]Standing, error) {
	compare, err := Comparator(key)
	if err != nil {
		return nil, err
	}

	out := slices.Clone(rows)
	if descending {
		slices.SortStableFunc(out, func(a, b Standing) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(out, compare)
	}
	return out, nil
}

type resolvedSplit struct {
	wins   int
	losses int
}

func (s resolvedSplit) pct() float64 {
	return winPct(s.wins, s.losses)
}

// SplitPct is the win percentage of splitKey as the comparators see it: a missing side counts
// as zero. ok is false when the row carries no record for the split.
func (s Standing) SplitPct(splitKey string) (pct float64, ok bool) {
	resolved, ok := split(s, splitKey)
	if !ok {
		return 0, false
	}
	return resolved.pct(), true
}

func split(s Standing, key string) (resolvedSplit, bool) {
	wl, ok := s.Splits[key]
	if !ok || (wl.Wins == nil && wl.Losses == nil) {
		return resolvedSplit{}, false
	}

	var out resolvedSplit
	if wl.Wins != nil {
		out.wins = *wl.Wins
	}
	if wl.Losses != nil {
		out.losses = *wl.Losses
	}
	return out, true
}

// comparePct is a total order over percentages with NaN above every number.
func comparePct(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	return cmp.Compare(a, b)
}

const (
	classMalformed = iota
	classLosses
	classWins
)

func streakClass(s Streak) int {
	if !s.wellFormed() {
		return classMalformed
	}
	if s.Type == StreakWins {
		return classWins
	}
	return classLosses
}
