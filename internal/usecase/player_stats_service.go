package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/league-reference/internal/domain/player"
	"github.com/riskibarqy/league-reference/internal/domain/playerstats"
	"github.com/riskibarqy/league-reference/internal/domain/season"
	"github.com/riskibarqy/league-reference/internal/domain/statline"
)

type BattingCareer struct {
	Seasons []playerstats.BattingLine
	Career  statline.Batting
}

type PitchingCareer struct {
	Seasons []playerstats.PitchingLine
	Career  statline.Pitching
}

// PlayerCareer is a player's per-season lines with footers summed from the counting stats.
type PlayerCareer struct {
	Player   player.Player
	Batting  BattingCareer
	Pitching PitchingCareer
}

type PlayerStatsService struct {
	seasonRepo season.Repository
	playerRepo player.Repository
	statsRepo  playerstats.Repository
}

func NewPlayerStatsService(seasonRepo season.Repository, playerRepo player.Repository, statsRepo playerstats.Repository) *PlayerStatsService {
	return &PlayerStatsService{
		seasonRepo: seasonRepo,
		playerRepo: playerRepo,
		statsRepo:  statsRepo,
	}
}

func (s *PlayerStatsService) GetCareer(ctx context.Context, playerID string) (PlayerCareer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.GetCareer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerCareer{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return PlayerCareer{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return PlayerCareer{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	batting, err := s.statsRepo.ListBattingByPlayer(ctx, playerID)
	if err != nil {
		return PlayerCareer{}, fmt.Errorf("list batting lines: %w", err)
	}
	pitching, err := s.statsRepo.ListPitchingByPlayer(ctx, playerID)
	if err != nil {
		return PlayerCareer{}, fmt.Errorf("list pitching lines: %w", err)
	}

	order, err := s.seasonOrder(ctx)
	if err != nil {
		return PlayerCareer{}, err
	}
	batting = slices.Clone(batting)
	slices.SortStableFunc(batting, func(a, b playerstats.BattingLine) int {
		return compareSeasons(order, a.SeasonID, b.SeasonID)
	})
	pitching = slices.Clone(pitching)
	slices.SortStableFunc(pitching, func(a, b playerstats.PitchingLine) int {
		return compareSeasons(order, a.SeasonID, b.SeasonID)
	})

	battingLines := make([]statline.Batting, 0, len(batting))
	for _, line := range batting {
		battingLines = append(battingLines, line.Batting)
	}
	pitchingLines := make([]statline.Pitching, 0, len(pitching))
	for _, line := range pitching {
		pitchingLines = append(pitchingLines, line.Pitching)
	}

	return PlayerCareer{
		Player:   item,
		Batting:  BattingCareer{Seasons: batting, Career: statline.SumBatting(battingLines)},
		Pitching: PitchingCareer{Seasons: pitching, Career: statline.SumPitching(pitchingLines)},
	}, nil
}

func (s *PlayerStatsService) seasonOrder(ctx context.Context) (map[string]int, error) {
	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	order := make(map[string]int, len(seasons))
	for _, item := range seasons {
		order[item.ID] = item.Number
	}
	return order, nil
}

// compareSeasons orders by season number; unknown seasons go last, by id.
func compareSeasons(order map[string]int, a, b string) int {
	an, aOK := order[a]
	bn, bOK := order[b]
	switch {
	case aOK && bOK:
		if c := cmp.Compare(an, bn); c != 0 {
			return c
		}
	case aOK:
		return -1
	case bOK:
		return 1
	}
	return cmp.Compare(a, b)
}
