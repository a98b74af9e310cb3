package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/league-reference/internal/domain/schedule"
	"github.com/riskibarqy/league-reference/internal/domain/standing"
)

func TestSeedGames_CoverPostseasonBoundary(t *testing.T) {
	t.Parallel()

	repo := NewGameRepository(SeedGames())
	games, err := repo.ListBySeason(context.Background(), SeasonIDFirst)
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != SeedSeasonDays*3 {
		t.Fatalf("expected %d games, got %d", SeedSeasonDays*3, len(games))
	}
	for i := 1; i < len(games); i++ {
		if games[i].Day < games[i-1].Day {
			t.Fatalf("games not ordered by day at %d", i)
		}
	}

	seasons := SeedSeasons()
	buckets := schedule.Bucketize(seasons[0].StartsAt, games)
	last := buckets[len(buckets)-1]
	if last.Hours[0].Hour != schedule.PostseasonStartHour {
		t.Fatalf("expected postseason bucket to start at %d, got %d", schedule.PostseasonStartHour, last.Hours[0].Hour)
	}
}

func TestSeedStandings_MatchCompletedGames(t *testing.T) {
	t.Parallel()

	repo := NewStandingRepository(SeedStandings())
	rows, err := repo.ListBySeason(context.Background(), SeasonIDSecond)
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	if len(rows) != len(SeedTeams()) {
		t.Fatalf("expected a row per team, got %d", len(rows))
	}

	wins, losses := 0, 0
	for _, row := range rows {
		wins += row.Wins
		losses += row.Losses
		if row.GamesPlayed() != seedPlayedDays {
			t.Fatalf("expected %d games for %s, got %d", seedPlayedDays, row.TeamID, row.GamesPlayed())
		}
	}
	if wins != losses {
		t.Fatalf("wins and losses must balance, got %d/%d", wins, losses)
	}

	harbor, _ := repo.ListByDivision(context.Background(), SeasonIDSecond, DivisionIDHarbor)
	if len(harbor) != 3 {
		t.Fatalf("expected 3 harbor rows, got %d", len(harbor))
	}
}

func TestRotation_EveryTeamPlaysOncePerDay(t *testing.T) {
	t.Parallel()

	for day := 0; day < 10; day++ {
		seen := map[int]bool{}
		for _, pair := range rotation(6, day) {
			if pair[0] == pair[1] || seen[pair[0]] || seen[pair[1]] {
				t.Fatalf("day %d has invalid pairing %v", day, rotation(6, day))
			}
			seen[pair[0]], seen[pair[1]] = true, true
		}
	}
}

func TestSeedStandings_CarryExtraInningsSplit(t *testing.T) {
	t.Parallel()

	repo := NewStandingRepository(SeedStandings())
	rows, err := repo.ListBySeason(context.Background(), SeasonIDFirst)
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}

	games := 0
	for _, row := range rows {
		if extras, ok := row.Splits[standing.SplitExtraInnings]; ok && extras.Wins != nil && extras.Losses != nil {
			games += *extras.Wins + *extras.Losses
		}
	}
	if games == 0 {
		t.Fatalf("expected seeded extra-inning games to show up in standings")
	}
}
