package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/riskibarqy/league-reference/internal/domain/game"
	"github.com/riskibarqy/league-reference/internal/domain/schedule"
	"github.com/riskibarqy/league-reference/internal/domain/season"
)

// Schedule is a season's games laid out on the calendar.
type Schedule struct {
	Season       season.Season
	Days         []schedule.DayBucket
	TotalGames   int
	VisibleGames int
}

type ScheduleService struct {
	seasonRepo season.Repository
	gameRepo   game.Repository
}

func NewScheduleService(seasonRepo season.Repository, gameRepo game.Repository) *ScheduleService {
	return &ScheduleService{
		seasonRepo: seasonRepo,
		gameRepo:   gameRepo,
	}
}

func (s *ScheduleService) GetSchedule(ctx context.Context, seasonID string) (Schedule, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.GetSchedule")
	defer span.End()

	item, err := requireSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return Schedule{}, err
	}

	games, err := s.gameRepo.ListBySeason(ctx, item.ID)
	if err != nil {
		return Schedule{}, fmt.Errorf("list games by season: %w", err)
	}
	byDay := func(a, b game.Game) int { return cmp.Compare(a.Day, b.Day) }
	if !slices.IsSortedFunc(games, byDay) {
		games = slices.Clone(games)
		slices.SortStableFunc(games, byDay)
	}

	days := schedule.Bucketize(item.StartsAt, games)
	return Schedule{
		Season:       item,
		Days:         days,
		TotalGames:   len(games),
		VisibleGames: schedule.VisibleCount(days),
	}, nil
}
