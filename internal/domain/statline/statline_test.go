package statline

import (
	"math"
	"testing"

	"github.com/riskibarqy/league-reference/internal/domain/stattable"
)

func TestCareerERA_RecomputedFromSums(t *testing.T) {
	t.Parallel()

	seasons := []Pitching{
		{Outs: 27, RunsAllowed: 1},
		{Outs: 3, RunsAllowed: 9},
	}

	career := SumPitching(seasons).ERA()
	naive := stattable.AverageColumn(seasons, Pitching.ERA)

	if !approx(career, 9.0) {
		t.Fatalf("expected career ERA 9.0, got %v", career)
	}
	if !approx(naive, 41.0) {
		t.Fatalf("expected naive mean 41.0, got %v", naive)
	}
}

func TestPitchingRates(t *testing.T) {
	t.Parallel()

	p := Pitching{Outs: 54, RunsAllowed: 4, HitsAllowed: 15, Walks: 3, Strikeouts: 18, HomeRunsAllowed: 2}

	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{name: "innings", got: p.Innings(), want: 18},
		{name: "era", got: p.ERA(), want: 2},
		{name: "whip", got: p.WHIP(), want: 1},
		{name: "k9", got: p.StrikeoutsPerNine(), want: 9},
		{name: "bb9", got: p.WalksPerNine(), want: 1.5},
		{name: "hr9", got: p.HomeRunsPerNine(), want: 1},
	}
	for _, tc := range cases {
		if !approx(tc.got, tc.want) {
			t.Fatalf("%s: want %v got %v", tc.name, tc.want, tc.got)
		}
	}
}

func TestPitchingRates_NoInnings(t *testing.T) {
	t.Parallel()

	if era := (Pitching{RunsAllowed: 2}).ERA(); !math.IsInf(era, 1) {
		t.Fatalf("expected +Inf ERA with no outs, got %v", era)
	}
	if era := (Pitching{}).ERA(); !math.IsNaN(era) {
		t.Fatalf("expected NaN ERA for empty line, got %v", era)
	}
}

func TestBattingRates(t *testing.T) {
	t.Parallel()

	b := Batting{AtBats: 10, Hits: 4, Doubles: 1, HomeRuns: 1, Walks: 1, HitByPitch: 0, SacrificeFlies: 1}

	if !approx(b.Average(), 0.4) {
		t.Fatalf("unexpected AVG %v", b.Average())
	}
	if !approx(b.OnBasePercentage(), 5.0/12.0) {
		t.Fatalf("unexpected OBP %v", b.OnBasePercentage())
	}
	if b.TotalBases() != 8 || b.Singles() != 2 {
		t.Fatalf("unexpected bases: tb=%d singles=%d", b.TotalBases(), b.Singles())
	}
	if !approx(b.Slugging(), 0.8) {
		t.Fatalf("unexpected SLG %v", b.Slugging())
	}
	if !approx(b.OnBasePlusSlugging(), 5.0/12.0+0.8) {
		t.Fatalf("unexpected OPS %v", b.OnBasePlusSlugging())
	}
}

func TestSumBatting(t *testing.T) {
	t.Parallel()

	got := SumBatting([]Batting{
		{AtBats: 3, Hits: 1, HomeRuns: 1, StolenBases: 2},
		{AtBats: 4, Hits: 3, Doubles: 1, RunsBattedIn: 2},
	})
	want := Batting{AtBats: 7, Hits: 4, Doubles: 1, HomeRuns: 1, RunsBattedIn: 2, StolenBases: 2}
	if got != want {
		t.Fatalf("unexpected sum: want %+v got %+v", want, got)
	}
	if !approx(got.Average(), 4.0/7.0) {
		t.Fatalf("unexpected summed AVG %v", got.Average())
	}
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}
