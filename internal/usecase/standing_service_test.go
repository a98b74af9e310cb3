package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/league-reference/internal/domain/season"
	"github.com/riskibarqy/league-reference/internal/domain/standing"
	"github.com/riskibarqy/league-reference/internal/domain/team"
	standingmock "github.com/riskibarqy/league-reference/internal/mocks/domain/standing"
	teammock "github.com/riskibarqy/league-reference/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func newStandingFixture() (*stubSeasonRepo, *stubTeamRepo, *stubStandingRepo) {
	seasons := &stubSeasonRepo{items: []season.Season{{ID: "s1", Number: 1, StartsAt: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)}}}
	teams := &stubTeamRepo{divisions: map[string][]team.Division{
		"s1": {
			{ID: "mild-low", SeasonID: "s1", Name: "Mild Low"},
			{ID: "wild-high", SeasonID: "s1", Name: "Wild High"},
		},
	}}
	rows := &stubStandingRepo{rows: map[string][]standing.Standing{
		"s1": {
			{SeasonID: "s1", DivisionID: "mild-low", TeamID: "crabs", Wins: 8, Losses: 2, RunsScored: 40, RunsAllowed: 20,
				Splits: map[string]standing.WinLoss{standing.SplitHome: {Wins: standing.IntPtr(3), Losses: standing.IntPtr(2)}}},
			{SeasonID: "s1", DivisionID: "mild-low", TeamID: "tigers", Wins: 5, Losses: 5, RunsScored: 30, RunsAllowed: 31,
				Splits: map[string]standing.WinLoss{standing.SplitHome: {Wins: standing.IntPtr(5), Losses: standing.IntPtr(0)}}},
			{SeasonID: "s1", DivisionID: "mild-low", TeamID: "pies", Wins: 2, Losses: 8, RunsScored: 10, RunsAllowed: 29},
			{SeasonID: "s1", DivisionID: "wild-high", TeamID: "moist", Wins: 6, Losses: 4},
		},
	}}
	return seasons, teams, rows
}

func TestStandingService_ListByDivision_SortsAndTotals(t *testing.T) {
	t.Parallel()

	seasons, teams, rows := newStandingFixture()
	service := NewStandingService(seasons, teams, rows, 2)

	table, err := service.ListByDivision(context.Background(), "s1", "mild-low", "", true)
	if err != nil {
		t.Fatalf("list by division: %v", err)
	}
	if got := teamOrder(table.Rows); got != "crabs,tigers,pies" {
		t.Fatalf("unexpected default order %s", got)
	}
	if table.Totals.Wins != 15 || table.Totals.Losses != 15 || table.Totals.RunDifferential != 0 {
		t.Fatalf("unexpected totals %+v", table.Totals)
	}
	if table.Division.Name != "Mild Low" {
		t.Fatalf("unexpected division %+v", table.Division)
	}

	table, err = service.ListByDivision(context.Background(), "s1", "mild-low", standing.SplitHome, true)
	if err != nil {
		t.Fatalf("list by division home split: %v", err)
	}
	if got := teamOrder(table.Rows); got != "tigers,crabs,pies" {
		t.Fatalf("unexpected home split order %s", got)
	}
}

func TestStandingService_ListByDivision_Errors(t *testing.T) {
	t.Parallel()

	seasons, teams, rows := newStandingFixture()
	service := NewStandingService(seasons, teams, rows, 0)
	ctx := context.Background()

	cases := []struct {
		name                          string
		seasonID, divisionID, sortKey string
		want                          error
	}{
		{name: "unknown sort key", seasonID: "s1", divisionID: "mild-low", sortKey: "points", want: ErrInvalidInput},
		{name: "blank division", seasonID: "s1", divisionID: " ", want: ErrInvalidInput},
		{name: "unknown season", seasonID: "s9", divisionID: "mild-low", want: ErrNotFound},
		{name: "unknown division", seasonID: "s1", divisionID: "chaos", want: ErrNotFound},
	}
	for _, tc := range cases {
		_, err := service.ListByDivision(ctx, tc.seasonID, tc.divisionID, tc.sortKey, false)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestStandingService_ListBySeason_KeepsDivisionOrder(t *testing.T) {
	t.Parallel()

	seasons, teams, rows := newStandingFixture()
	service := NewStandingService(seasons, teams, rows, 4)

	tables, err := service.ListBySeason(context.Background(), "s1", standing.SortStreak, true)
	if err != nil {
		t.Fatalf("list by season: %v", err)
	}
	if len(tables) != 2 || tables[0].Division.ID != "mild-low" || tables[1].Division.ID != "wild-high" {
		t.Fatalf("unexpected tables %+v", tables)
	}
	if len(tables[0].Rows) != 3 || len(tables[1].Rows) != 1 {
		t.Fatalf("unexpected row counts %d/%d", len(tables[0].Rows), len(tables[1].Rows))
	}
}

func TestStandingService_ListBySeason_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	seasons, teams, _ := newStandingFixture()
	standingRepo := standingmock.NewRepository(t)
	service := NewStandingService(seasons, teams, standingRepo, 1)
	boom := errors.New("replica lag")

	standingRepo.
		On("ListByDivision", mock.Anything, "s1", "mild-low").
		Return(nil, boom).
		Once()
	standingRepo.
		On("ListByDivision", mock.Anything, "s1", "wild-high").
		Return([]standing.Standing{}, nil).
		Maybe()

	_, err := service.ListBySeason(context.Background(), "s1", "", false)
	if !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func teamOrder(rows []standing.Standing) string {
	out := ""
	for i, row := range rows {
		if i > 0 {
			out += ","
		}
		out += row.TeamID
	}
	return out
}

func TestStandingService_ListByDivision_UnknownDivisionUsingMockery(t *testing.T) {
	t.Parallel()

	seasons, _, _ := newStandingFixture()
	teamRepo := teammock.NewRepository(t)
	service := NewStandingService(seasons, teamRepo, standingmock.NewRepository(t), 1)

	teamRepo.
		On("GetDivision", mock.Anything, "s1", "ghost").
		Return(team.Division{}, false, nil).
		Once()

	_, err := service.ListByDivision(context.Background(), "s1", "ghost", "", true)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStandingService_ListByDivision_RejectsUnknownSortBeforeLookup(t *testing.T) {
	t.Parallel()

	seasons, _, _ := newStandingFixture()
	service := NewStandingService(seasons, teammock.NewRepository(t), standingmock.NewRepository(t), 1)

	_, err := service.ListByDivision(context.Background(), "s1", "mild-low", "shoe_size", true)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
