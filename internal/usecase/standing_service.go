package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-reference/internal/domain/season"
	"github.com/riskibarqy/league-reference/internal/domain/standing"
	"github.com/riskibarqy/league-reference/internal/domain/team"
	"github.com/sourcegraph/conc/pool"
)

const defaultStandingConcurrency = 4

// StandingTable is one division's sorted rows plus its footer.
type StandingTable struct {
	Division team.Division
	Rows     []standing.Standing
	Totals   standing.Total
}

type StandingService struct {
	seasonRepo   season.Repository
	teamRepo     team.Repository
	standingRepo standing.Repository
	concurrency  int
}

func NewStandingService(seasonRepo season.Repository, teamRepo team.Repository, standingRepo standing.Repository, concurrency int) *StandingService {
	if concurrency <= 0 {
		concurrency = defaultStandingConcurrency
	}
	return &StandingService{
		seasonRepo:   seasonRepo,
		teamRepo:     teamRepo,
		standingRepo: standingRepo,
		concurrency:  concurrency,
	}
}

func (s *StandingService) ListByDivision(ctx context.Context, seasonID, divisionID, sortKey string, descending bool) (StandingTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListByDivision")
	defer span.End()

	if _, err := standing.Comparator(sortKey); err != nil {
		return StandingTable{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	item, err := requireSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return StandingTable{}, err
	}

	divisionID = strings.TrimSpace(divisionID)
	if divisionID == "" {
		return StandingTable{}, fmt.Errorf("%w: division id is required", ErrInvalidInput)
	}
	division, exists, err := s.teamRepo.GetDivision(ctx, item.ID, divisionID)
	if err != nil {
		return StandingTable{}, fmt.Errorf("get division: %w", err)
	}
	if !exists {
		return StandingTable{}, fmt.Errorf("%w: season=%s division=%s", ErrNotFound, item.ID, divisionID)
	}

	return s.buildTable(ctx, division, sortKey, descending)
}

// ListBySeason builds every division table of the season concurrently, in division order.
func (s *StandingService) ListBySeason(ctx context.Context, seasonID, sortKey string, descending bool) ([]StandingTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListBySeason")
	defer span.End()

	if _, err := standing.Comparator(sortKey); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	item, err := requireSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return nil, err
	}

	divisions, err := s.teamRepo.ListDivisions(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}

	tables := make([]StandingTable, len(divisions))
	p := pool.New().WithContext(ctx).WithMaxGoroutines(s.concurrency).WithCancelOnError()
	for i, division := range divisions {
		p.Go(func(ctx context.Context) error {
			table, err := s.buildTable(ctx, division, sortKey, descending)
			if err != nil {
				return err
			}
			tables[i] = table
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}

	return tables, nil
}

func (s *StandingService) buildTable(ctx context.Context, division team.Division, sortKey string, descending bool) (StandingTable, error) {
	rows, err := s.standingRepo.ListByDivision(ctx, division.SeasonID, division.ID)
	if err != nil {
		return StandingTable{}, fmt.Errorf("list standings division=%s: %w", division.ID, err)
	}

	sorted, err := standing.Sort(rows, sortKey, descending)
	if err != nil {
		return StandingTable{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return StandingTable{
		Division: division,
		Rows:     sorted,
		Totals:   standing.Totals(sorted),
	}, nil
}
