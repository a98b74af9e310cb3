package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-reference/internal/domain/game"
	"github.com/riskibarqy/league-reference/internal/domain/player"
	"github.com/riskibarqy/league-reference/internal/domain/playerstats"
	"github.com/riskibarqy/league-reference/internal/domain/season"
	"github.com/riskibarqy/league-reference/internal/domain/standing"
	"github.com/riskibarqy/league-reference/internal/domain/team"
	"github.com/riskibarqy/league-reference/internal/platform/logging"
)

type SyncConfig struct {
	Enabled           bool
	DefaultMaxWorkers int
	TaskTimeout       time.Duration
}

type SyncInput struct {
	SeasonIDs  []string
	Kinds      []string
	MaxWorkers int
	// DryRun fetches and maps provider data but skips every repository write.
	DryRun bool
}

type SyncResult struct {
	SeasonCount  int              `json:"season_count"`
	TaskCount    int              `json:"task_count"`
	SuccessCount int              `json:"success_count"`
	FailedCount  int              `json:"failed_count"`
	SkippedCount int              `json:"skipped_count"`
	WorkerCount  int              `json:"worker_count"`
	DryRun       bool             `json:"dry_run"`
	Kinds        []string         `json:"kinds"`
	Tasks        []SyncTaskResult `json:"tasks"`
}

type SyncTaskResult struct {
	SeasonID   string `json:"season_id"`
	Kind       string `json:"kind"`
	Status     string `json:"status"`
	Records    int    `json:"records"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

const (
	syncStatusSuccess = "success"
	syncStatusFailed  = "failed"
	syncStatusSkipped = "skipped"

	SyncKindRoster      = "roster"
	SyncKindGames       = "games"
	SyncKindStandings   = "standings"
	SyncKindPlayerStats = "player_stats"

	maxSyncWorkers = 16
)

var allSyncKinds = []string{SyncKindRoster, SyncKindGames, SyncKindStandings, SyncKindPlayerStats}

type syncTask struct {
	seasonID string
	kind     string
}

// SyncService copies provider data into the repositories, one task per season and kind.
type SyncService struct {
	provider     ReferenceProvider
	seasonRepo   season.Repository
	teamRepo     team.Repository
	playerRepo   player.Repository
	gameRepo     game.Repository
	standingRepo standing.Repository
	statsRepo    playerstats.Repository
	cfg          SyncConfig
	logger       *logging.Logger

	onSynced []func(context.Context)
	running  atomic.Bool
}

func NewSyncService(
	provider ReferenceProvider,
	seasonRepo season.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	gameRepo game.Repository,
	standingRepo standing.Repository,
	statsRepo playerstats.Repository,
	cfg SyncConfig,
	logger *logging.Logger,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SyncService{
		provider:     provider,
		seasonRepo:   seasonRepo,
		teamRepo:     teamRepo,
		playerRepo:   playerRepo,
		gameRepo:     gameRepo,
		standingRepo: standingRepo,
		statsRepo:    statsRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

// OnSynced registers fn to run after a sync that wrote at least one record.
func (s *SyncService) OnSynced(fn func(context.Context)) {
	if fn != nil {
		s.onSynced = append(s.onSynced, fn)
	}
}

func (s *SyncService) Sync(ctx context.Context, input SyncInput) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.Sync")
	defer span.End()

	if !s.cfg.Enabled {
		return SyncResult{}, fmt.Errorf("%w: reference sync is disabled (SYNC_ENABLED=false)", ErrDependencyUnavailable)
	}
	if s.provider == nil {
		return SyncResult{}, fmt.Errorf("%w: reference provider is not configured", ErrDependencyUnavailable)
	}

	kinds, err := normalizeSyncKinds(input.Kinds)
	if err != nil {
		return SyncResult{}, err
	}

	if !input.DryRun {
		if !s.running.CompareAndSwap(false, true) {
			return SyncResult{}, ErrSyncInProgress
		}
		defer s.running.Store(false)
	}

	seasons, err := s.provider.FetchSeasons(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: fetch seasons: %v", ErrDependencyUnavailable, err)
	}
	targets, err := resolveSyncTargets(seasons, input.SeasonIDs)
	if err != nil {
		return SyncResult{}, err
	}
	if !input.DryRun && len(targets) > 0 {
		if err := s.seasonRepo.Upsert(ctx, targets); err != nil {
			return SyncResult{}, fmt.Errorf("upsert seasons: %w", err)
		}
	}

	tasks := make([]syncTask, 0, len(targets)*len(kinds))
	for _, target := range targets {
		for _, kind := range kinds {
			tasks = append(tasks, syncTask{seasonID: target.ID, kind: kind})
		}
	}

	workerCount := s.normalizeWorkerCount(input.MaxWorkers, len(tasks))
	result := SyncResult{
		SeasonCount: len(targets),
		TaskCount:   len(tasks),
		WorkerCount: workerCount,
		DryRun:      input.DryRun,
		Kinds:       kinds,
		Tasks:       make([]SyncTaskResult, 0, len(tasks)),
	}
	if len(tasks) == 0 {
		return result, nil
	}

	results := make(chan SyncTaskResult, len(tasks))
	var successCount, failedCount, skippedCount, written atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return SyncResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, task := range tasks {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			records, status, message := s.runTask(ctx, task, input.DryRun)
			switch status {
			case syncStatusSuccess:
				successCount.Add(1)
				if !input.DryRun {
					written.Add(int32(records))
				}
			case syncStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "sync task failed", "season_id", task.seasonID, "kind", task.kind, "error", message)
			}

			results <- SyncTaskResult{
				SeasonID:   task.seasonID,
				Kind:       task.kind,
				Status:     status,
				Records:    records,
				DurationMs: time.Since(start).Milliseconds(),
				Message:    message,
			}
		}); err != nil {
			workers.Done()
			return SyncResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	slices.SortStableFunc(result.Tasks, func(a, b SyncTaskResult) int {
		if c := cmp.Compare(a.SeasonID, b.SeasonID); c != 0 {
			return c
		}
		return cmp.Compare(slices.Index(allSyncKinds, a.Kind), slices.Index(allSyncKinds, b.Kind))
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())

	if written.Load() > 0 {
		for _, fn := range s.onSynced {
			fn(ctx)
		}
	}

	s.logger.InfoContext(ctx, "reference sync finished",
		"seasons", result.SeasonCount,
		"tasks", result.TaskCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"skipped", result.SkippedCount,
		"dry_run", input.DryRun,
	)
	return result, nil
}

func (s *SyncService) runTask(ctx context.Context, task syncTask, dryRun bool) (int, string, string) {
	if s.cfg.TaskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.TaskTimeout)
		defer cancel()
	}

	var (
		count int
		err   error
	)
	switch task.kind {
	case SyncKindRoster:
		count, err = s.syncRoster(ctx, task.seasonID, dryRun)
	case SyncKindGames:
		count, err = s.syncGames(ctx, task.seasonID, dryRun)
	case SyncKindStandings:
		count, err = s.syncStandings(ctx, task.seasonID, dryRun)
	case SyncKindPlayerStats:
		count, err = s.syncPlayerStats(ctx, task.seasonID, dryRun)
	default:
		return 0, syncStatusSkipped, "unsupported sync kind"
	}

	if err != nil {
		return 0, syncStatusFailed, err.Error()
	}
	if count == 0 {
		return 0, syncStatusSkipped, "provider returned no " + strings.ReplaceAll(task.kind, "_", " ")
	}
	return count, syncStatusSuccess, ""
}

func (s *SyncService) syncRoster(ctx context.Context, seasonID string, dryRun bool) (int, error) {
	roster, err := s.provider.FetchRoster(ctx, seasonID)
	if err != nil {
		return 0, fmt.Errorf("fetch roster season=%s: %w", seasonID, err)
	}

	divisions := make([]team.Division, 0, len(roster.Divisions))
	for _, d := range roster.Divisions {
		d.SeasonID = seasonID
		if err := d.Validate(); err != nil {
			return 0, fmt.Errorf("invalid division season=%s: %w", seasonID, err)
		}
		divisions = append(divisions, d)
	}
	for _, t := range roster.Teams {
		if err := t.Validate(); err != nil {
			return 0, fmt.Errorf("invalid team season=%s: %w", seasonID, err)
		}
	}
	for _, p := range roster.Players {
		if err := p.Validate(); err != nil {
			return 0, fmt.Errorf("invalid player season=%s: %w", seasonID, err)
		}
	}

	if !dryRun {
		if len(roster.Teams) > 0 {
			if err := s.teamRepo.UpsertTeams(ctx, roster.Teams); err != nil {
				return 0, fmt.Errorf("upsert teams season=%s: %w", seasonID, err)
			}
		}
		if len(divisions) > 0 {
			if err := s.teamRepo.ReplaceDivisions(ctx, seasonID, divisions); err != nil {
				return 0, fmt.Errorf("replace divisions season=%s: %w", seasonID, err)
			}
		}
		if len(roster.Players) > 0 {
			if err := s.playerRepo.Upsert(ctx, roster.Players); err != nil {
				return 0, fmt.Errorf("upsert players season=%s: %w", seasonID, err)
			}
		}
	}

	return len(roster.Teams) + len(divisions) + len(roster.Players), nil
}

func (s *SyncService) syncGames(ctx context.Context, seasonID string, dryRun bool) (int, error) {
	games, err := s.provider.FetchGames(ctx, seasonID)
	if err != nil {
		return 0, fmt.Errorf("fetch games season=%s: %w", seasonID, err)
	}
	if len(games) == 0 {
		return 0, nil
	}

	for i := range games {
		games[i].SeasonID = seasonID
	}
	slices.SortStableFunc(games, func(a, b game.Game) int {
		return cmp.Compare(a.Day, b.Day)
	})

	if !dryRun {
		if err := s.gameRepo.ReplaceBySeason(ctx, seasonID, games); err != nil {
			return 0, fmt.Errorf("replace games season=%s: %w", seasonID, err)
		}
	}
	return len(games), nil
}

func (s *SyncService) syncStandings(ctx context.Context, seasonID string, dryRun bool) (int, error) {
	rows, err := s.provider.FetchStandings(ctx, seasonID)
	if err != nil {
		return 0, fmt.Errorf("fetch standings season=%s: %w", seasonID, err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	for i := range rows {
		rows[i].SeasonID = seasonID
		if strings.TrimSpace(rows[i].TeamID) == "" || strings.TrimSpace(rows[i].DivisionID) == "" {
			return 0, fmt.Errorf("standing row %d season=%s is missing team or division", i, seasonID)
		}
	}

	if !dryRun {
		if err := s.standingRepo.ReplaceBySeason(ctx, seasonID, rows); err != nil {
			return 0, fmt.Errorf("replace standings season=%s: %w", seasonID, err)
		}
	}
	return len(rows), nil
}

func (s *SyncService) syncPlayerStats(ctx context.Context, seasonID string, dryRun bool) (int, error) {
	stats, err := s.provider.FetchPlayerStats(ctx, seasonID)
	if err != nil {
		return 0, fmt.Errorf("fetch player stats season=%s: %w", seasonID, err)
	}
	count := len(stats.Batting) + len(stats.Pitching)
	if count == 0 {
		return 0, nil
	}

	for i := range stats.Batting {
		stats.Batting[i].SeasonID = seasonID
	}
	for i := range stats.Pitching {
		stats.Pitching[i].SeasonID = seasonID
	}

	if !dryRun {
		if err := s.statsRepo.ReplaceBySeason(ctx, seasonID, stats.Batting, stats.Pitching); err != nil {
			return 0, fmt.Errorf("replace player stats season=%s: %w", seasonID, err)
		}
	}
	return count, nil
}

func (s *SyncService) normalizeWorkerCount(requested, taskCount int) int {
	workers := requested
	if workers <= 0 {
		workers = s.cfg.DefaultMaxWorkers
	}
	if workers <= 0 {
		workers = 4
	}
	if workers > maxSyncWorkers {
		workers = maxSyncWorkers
	}
	if taskCount > 0 && workers > taskCount {
		workers = taskCount
	}
	return workers
}

func normalizeSyncKinds(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return slices.Clone(allSyncKinds), nil
	}

	seen := make(map[string]struct{}, len(raw))
	for _, item := range raw {
		kind := strings.ToLower(strings.TrimSpace(item))
		if kind == "" {
			continue
		}
		if !slices.Contains(allSyncKinds, kind) {
			return nil, fmt.Errorf("%w: unsupported sync kind %q", ErrInvalidInput, item)
		}
		seen[kind] = struct{}{}
	}
	if len(seen) == 0 {
		return slices.Clone(allSyncKinds), nil
	}

	kinds := make([]string, 0, len(seen))
	for _, kind := range allSyncKinds {
		if _, ok := seen[kind]; ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds, nil
}

// resolveSyncTargets keeps the requested seasons, or every provider season when none are requested.
func resolveSyncTargets(available []season.Season, requested []string) ([]season.Season, error) {
	valid := make([]season.Season, 0, len(available))
	for _, item := range available {
		if err := item.Validate(); err != nil {
			continue
		}
		valid = append(valid, item)
	}
	slices.SortStableFunc(valid, func(a, b season.Season) int { return cmp.Compare(a.ID, b.ID) })

	wanted := make(map[string]struct{}, len(requested))
	for _, id := range requested {
		if id = strings.TrimSpace(id); id != "" {
			wanted[id] = struct{}{}
		}
	}
	if len(wanted) == 0 {
		return valid, nil
	}

	targets := make([]season.Season, 0, len(wanted))
	for _, item := range valid {
		if _, ok := wanted[item.ID]; ok {
			targets = append(targets, item)
			delete(wanted, item.ID)
		}
	}
	if len(wanted) > 0 {
		missing := make([]string, 0, len(wanted))
		for id := range wanted {
			missing = append(missing, id)
		}
		slices.Sort(missing)
		return nil, fmt.Errorf("%w: provider has no season %s", ErrNotFound, strings.Join(missing, ","))
	}
	return targets, nil
}
