// Package statline holds per-player counting stats and the rate stats derived from them.
//
// Rate stats of a multi-row table are always computed on the summed line. Averaging per-row
// rates weights a one-inning season the same as a full one.
package statline

import "github.com/riskibarqy/league-reference/internal/domain/stattable"

// Batting holds counting stats for one hitter over one span of games.
type Batting struct {
	PlateAppearances int
	AtBats           int
	Hits             int
	Doubles          int
	Triples          int
	HomeRuns         int
	Walks            int
	HitByPitch       int
	SacrificeFlies   int
	Strikeouts       int
	Runs             int
	RunsBattedIn     int
	StolenBases      int
}

func (b Batting) Singles() int {
	return b.Hits - b.Doubles - b.Triples - b.HomeRuns
}

func (b Batting) TotalBases() int {
	return b.Hits + b.Doubles + 2*b.Triples + 3*b.HomeRuns
}

func (b Batting) Average() float64 {
	return ratio(b.Hits, b.AtBats)
}

func (b Batting) OnBasePercentage() float64 {
	return ratio(b.Hits+b.Walks+b.HitByPitch, b.AtBats+b.Walks+b.HitByPitch+b.SacrificeFlies)
}

func (b Batting) Slugging() float64 {
	return ratio(b.TotalBases(), b.AtBats)
}

func (b Batting) OnBasePlusSlugging() float64 {
	return b.OnBasePercentage() + b.Slugging()
}

// Pitching holds counting stats for one pitcher. Innings are tracked as outs recorded.
type Pitching struct {
	Games           int
	Wins            int
	Losses          int
	Outs            int
	RunsAllowed     int
	EarnedRuns      int
	HitsAllowed     int
	Walks           int
	Strikeouts      int
	HomeRunsAllowed int
}

func (p Pitching) Innings() float64 {
	return float64(p.Outs) / 3
}

// ERA is runs allowed per nine innings.
func (p Pitching) ERA() float64 {
	return 9 * float64(p.RunsAllowed) / p.Innings()
}

func (p Pitching) WHIP() float64 {
	return float64(p.Walks+p.HitsAllowed) / p.Innings()
}

func (p Pitching) StrikeoutsPerNine() float64 {
	return 9 * float64(p.Strikeouts) / p.Innings()
}

func (p Pitching) WalksPerNine() float64 {
	return 9 * float64(p.Walks) / p.Innings()
}

func (p Pitching) HomeRunsPerNine() float64 {
	return 9 * float64(p.HomeRunsAllowed) / p.Innings()
}

// SumBatting adds every counting column of lines.
func SumBatting(lines []Batting) Batting {
	sum := func(value func(Batting) int) int { return stattable.SumColumn(lines, value) }
	return Batting{
		PlateAppearances: sum(func(b Batting) int { return b.PlateAppearances }),
		AtBats:           sum(func(b Batting) int { return b.AtBats }),
		Hits:             sum(func(b Batting) int { return b.Hits }),
		Doubles:          sum(func(b Batting) int { return b.Doubles }),
		Triples:          sum(func(b Batting) int { return b.Triples }),
		HomeRuns:         sum(func(b Batting) int { return b.HomeRuns }),
		Walks:            sum(func(b Batting) int { return b.Walks }),
		HitByPitch:       sum(func(b Batting) int { return b.HitByPitch }),
		SacrificeFlies:   sum(func(b Batting) int { return b.SacrificeFlies }),
		Strikeouts:       sum(func(b Batting) int { return b.Strikeouts }),
		Runs:             sum(func(b Batting) int { return b.Runs }),
		RunsBattedIn:     sum(func(b Batting) int { return b.RunsBattedIn }),
		StolenBases:      sum(func(b Batting) int { return b.StolenBases }),
	}
}

// SumPitching adds every counting column of lines.
func SumPitching(lines []Pitching) Pitching {
	sum := func(value func(Pitching) int) int { return stattable.SumColumn(lines, value) }
	return Pitching{
		Games:           sum(func(p Pitching) int { return p.Games }),
		Wins:            sum(func(p Pitching) int { return p.Wins }),
		Losses:          sum(func(p Pitching) int { return p.Losses }),
		Outs:            sum(func(p Pitching) int { return p.Outs }),
		RunsAllowed:     sum(func(p Pitching) int { return p.RunsAllowed }),
		EarnedRuns:      sum(func(p Pitching) int { return p.EarnedRuns }),
		HitsAllowed:     sum(func(p Pitching) int { return p.HitsAllowed }),
		Walks:           sum(func(p Pitching) int { return p.Walks }),
		Strikeouts:      sum(func(p Pitching) int { return p.Strikeouts }),
		HomeRunsAllowed: sum(func(p Pitching) int { return p.HomeRunsAllowed }),
	}
}

func ratio(num, den int) float64 {
	return float64(num) / float64(den)
}
