// Package snapshot serves league reference data from JSON files laid out as
// {root}/seasons.json and {root}/{seasonID}/{kind}.json.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/riskibarqy/league-reference/external/wire"
	"github.com/riskibarqy/league-reference/internal/domain/game"
	"github.com/riskibarqy/league-reference/internal/domain/season"
	"github.com/riskibarqy/league-reference/internal/domain/standing"
	"github.com/riskibarqy/league-reference/internal/platform/logging"
	"github.com/riskibarqy/league-reference/internal/usecase"
)

const seasonsFile = "seasons.json"

type Store struct {
	fsys   fs.FS
	logger *logging.Logger
}

func NewStore(root string, logger *logging.Logger) *Store {
	return NewStoreFS(os.DirFS(root), logger)
}

// NewStoreFS reads snapshots from any filesystem, e.g. an embed.FS or fstest.MapFS.
func NewStoreFS(fsys fs.FS, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{fsys: fsys, logger: logger}
}

func (s *Store) FetchSeasons(ctx context.Context) ([]season.Season, error) {
	var payload []wire.Season
	found, err := s.read(ctx, seasonsFile, &payload)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: snapshot %s is missing", usecase.ErrNotFound, seasonsFile)
	}

	seasons, err := wire.ToSeasons(payload)
	if err != nil {
		return nil, fmt.Errorf("map snapshot seasons: %w", err)
	}
	return seasons, nil
}

func (s *Store) FetchRoster(ctx context.Context, seasonID string) (usecase.ExternalRoster, error) {
	var payload wire.Roster
	if err := s.readSeasonDoc(ctx, seasonID, wire.KindRoster, &payload); err != nil {
		return usecase.ExternalRoster{}, err
	}
	return payload.ToDomain(seasonID), nil
}

func (s *Store) FetchGames(ctx context.Context, seasonID string) ([]game.Game, error) {
	var payload []wire.Game
	if err := s.readSeasonDoc(ctx, seasonID, wire.KindGames, &payload); err != nil {
		return nil, err
	}
	return wire.ToGames(seasonID, payload), nil
}

func (s *Store) FetchStandings(ctx context.Context, seasonID string) ([]standing.Standing, error) {
	var payload []wire.Standing
	if err := s.readSeasonDoc(ctx, seasonID, wire.KindStandings, &payload); err != nil {
		return nil, err
	}
	return wire.ToStandings(seasonID, payload), nil
}

func (s *Store) FetchPlayerStats(ctx context.Context, seasonID string) (usecase.ExternalPlayerStats, error) {
	var payload wire.PlayerStats
	if err := s.readSeasonDoc(ctx, seasonID, wire.KindPlayerStats, &payload); err != nil {
		return usecase.ExternalPlayerStats{}, err
	}
	return payload.ToDomain(seasonID), nil
}

// readSeasonDoc treats a missing season directory as not found and a missing document inside
// an existing directory as empty.
func (s *Store) readSeasonDoc(ctx context.Context, seasonID, kind string, target any) error {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" || !fs.ValidPath(seasonID) || strings.Contains(seasonID, "/") {
		return fmt.Errorf("%w: invalid snapshot season id %q", usecase.ErrInvalidInput, seasonID)
	}

	info, err := fs.Stat(s.fsys, seasonID)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: snapshot season %s is missing", usecase.ErrNotFound, seasonID)
	}

	found, err := s.read(ctx, seasonID+"/"+kind+".json", target)
	if err != nil {
		return err
	}
	if !found {
		s.logger.DebugContext(ctx, "snapshot document missing, treating as empty", "season_id", seasonID, "kind", kind)
	}
	return nil
}

func (s *Store) read(ctx context.Context, name string, target any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	raw, err := fs.ReadFile(s.fsys, filepath.ToSlash(name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read snapshot %s: %w", name, err)
	}
	if err := wire.Decode(raw, target); err != nil {
		return false, fmt.Errorf("snapshot %s: %w", name, err)
	}
	return true, nil
}
