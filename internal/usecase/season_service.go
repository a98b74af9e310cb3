package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-reference/internal/domain/season"
)

type SeasonService struct {
	seasonRepo season.Repository
}

func NewSeasonService(seasonRepo season.Repository) *SeasonService {
	return &SeasonService{seasonRepo: seasonRepo}
}

func (s *SeasonService) List(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.List")
	defer span.End()

	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return items, nil
}

func (s *SeasonService) Get(ctx context.Context, seasonID string) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Get")
	defer span.End()

	return requireSeason(ctx, s.seasonRepo, seasonID)
}

func requireSeason(ctx context.Context, repo season.Repository, seasonID string) (season.Season, error) {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return season.Season{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}
	return item, nil
}
