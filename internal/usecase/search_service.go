package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-reference/internal/domain/player"
	"github.com/riskibarqy/league-reference/internal/domain/search"
	"github.com/riskibarqy/league-reference/internal/domain/team"
	"github.com/riskibarqy/league-reference/internal/platform/cache"
	"github.com/riskibarqy/league-reference/internal/platform/logging"
)

const searchIndexCacheKey = "search:index"

type SearchService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	cache      *cache.Store
	logger     *logging.Logger
}

// NewSearchService memoises the index in store. A nil store rebuilds it on every query.
func NewSearchService(teamRepo team.Repository, playerRepo player.Repository, store *cache.Store, logger *logging.Logger) *SearchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SearchService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		cache:      store,
		logger:     logger,
	}
}

func (s *SearchService) Query(ctx context.Context, q string, limit int) ([]search.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SearchService.Query")
	defer span.End()

	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	}
	if strings.TrimSpace(q) == "" {
		return []search.Result{}, nil
	}

	idx, err := cache.Load(ctx, s.cache, searchIndexCacheKey, s.buildIndex)
	if err != nil {
		return nil, err
	}
	return idx.Query(q, limit), nil
}

// Invalidate drops the memoised index so the next query sees fresh names.
func (s *SearchService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(ctx, searchIndexCacheKey)
}

func (s *SearchService) buildIndex(ctx context.Context) (*search.Index, error) {
	teams, err := s.teamRepo.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	teamEntries := make([]search.Entry, 0, len(teams))
	for _, t := range teams {
		teamEntries = append(teamEntries, search.Entry{ID: t.ID, Name: t.Name})
	}
	playerEntries := make([]search.Entry, 0, len(players))
	for _, p := range players {
		playerEntries = append(playerEntries, search.Entry{ID: p.ID, Name: p.Name})
	}

	idx := search.NewIndex(teamEntries, playerEntries)
	s.logger.DebugContext(ctx, "search index built", "teams", len(teamEntries), "players", len(playerEntries), "entries", idx.Len())
	return idx, nil
}
