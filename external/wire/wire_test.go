package wire

import (
	"testing"

	"github.com/riskibarqy/league-reference/internal/domain/standing"
)

func TestToSeasons_RejectsBadStart(t *testing.T) {
	if _, err := ToSeasons([]Season{{ID: "s1", StartsAt: "yesterday"}}); err == nil {
		t.Fatalf("expected startsAt parse error")
	}

	got, err := ToSeasons([]Season{{ID: " ", StartsAt: "bad"}, {ID: "s2", StartsAt: "2021-03-08T16:00:00+02:00"}})
	if err != nil {
		t.Fatalf("to seasons: %v", err)
	}
	if len(got) != 1 || got[0].StartsAt.Hour() != 14 {
		t.Fatalf("expected one UTC season, got %+v", got)
	}
}

func TestToStandings_MapsStreakAndSplits(t *testing.T) {
	three := 3
	rows := ToStandings("s1", []Standing{
		{TeamID: ""},
		{
			TeamID:     "t1",
			DivisionID: "d1",
			Streak:     &Streak{Type: standing.StreakLosses, Number: &three},
			Splits:     map[string]WinLoss{"oneRun": {Losses: &three}},
		},
		{TeamID: "t2"},
	})

	if len(rows) != 2 {
		t.Fatalf("expected rows without blank team ids, got %d", len(rows))
	}
	if rows[0].Streak.Code() != "L3" || rows[0].SeasonID != "s1" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if split := rows[0].Splits["oneRun"]; split.Wins != nil || split.Losses == nil {
		t.Fatalf("unexpected oneRun split: %+v", split)
	}
	if rows[1].Streak.Code() != "-" || rows[1].Splits == nil {
		t.Fatalf("expected unknown streak and empty splits, got %+v", rows[1])
	}
}

func TestDecode(t *testing.T) {
	var games []Game
	if err := Decode([]byte(`[{"id":"g1","day":98,"gameComplete":true}]`), &games); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(games) != 1 || games[0].Day != 98 || !games[0].GameComplete {
		t.Fatalf("unexpected games: %+v", games)
	}
	if err := Decode([]byte(`{`), &games); err == nil {
		t.Fatalf("expected decode error")
	}
}
