package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-reference/internal/domain/game"
	"github.com/riskibarqy/league-reference/internal/domain/season"
	"github.com/riskibarqy/league-reference/internal/domain/standing"
	"github.com/riskibarqy/league-reference/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-reference/internal/platform/cache"
	"github.com/riskibarqy/league-reference/internal/platform/logging"
	"github.com/riskibarqy/league-reference/internal/usecase"
)

const testJobToken = "job-secret"

type envelope struct {
	APIVersion string         `json:"apiVersion"`
	Data       any            `json:"data"`
	Error      map[string]any `json:"error"`
}

type seedProvider struct{}

func (seedProvider) FetchSeasons(context.Context) ([]season.Season, error) {
	return memory.SeedSeasons(), nil
}

func (seedProvider) FetchRoster(context.Context, string) (usecase.ExternalRoster, error) {
	return usecase.ExternalRoster{}, nil
}

func (seedProvider) FetchGames(context.Context, string) ([]game.Game, error) {
	return nil, nil
}

func (seedProvider) FetchStandings(context.Context, string) ([]standing.Standing, error) {
	return nil, nil
}

func (seedProvider) FetchPlayerStats(context.Context, string) (usecase.ExternalPlayerStats, error) {
	return usecase.ExternalPlayerStats{}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	seasonRepo := memory.NewSeasonRepository(memory.SeedSeasons())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams(), memory.SeedDivisions())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	gameRepo := memory.NewGameRepository(memory.SeedGames())
	standingRepo := memory.NewStandingRepository(memory.SeedStandings())
	statsRepo := memory.NewPlayerStatsRepository(memory.SeedBattingLines(), memory.SeedPitchingLines())

	searchService := usecase.NewSearchService(teamRepo, playerRepo, cache.NewStore(time.Minute), logger)
	syncService := usecase.NewSyncService(seedProvider{}, seasonRepo, teamRepo, playerRepo, gameRepo, standingRepo, statsRepo,
		usecase.SyncConfig{Enabled: true, DefaultMaxWorkers: 2}, logger)
	syncService.OnSynced(searchService.Invalidate)

	handler := NewHandler(
		usecase.NewSeasonService(seasonRepo),
		usecase.NewScheduleService(seasonRepo, gameRepo),
		usecase.NewStandingService(seasonRepo, teamRepo, standingRepo, 2),
		usecase.NewPlayerStatsService(seasonRepo, playerRepo, statsRepo),
		searchService,
		syncService,
		logger,
	)
	return NewRouter(handler, logger, []string{"*"}, testJobToken)
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, headers map[string]string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out envelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal %s %s: %v (body=%s)", method, target, err, rec.Body.String())
	}
	return rec.Code, out
}

func TestRouter_Healthz(t *testing.T) {
	status, body := doRequest(t, newTestRouter(t), http.MethodGet, "/healthz", "", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	data, _ := body.Data.(map[string]any)
	if data["status"] != "ok" {
		t.Fatalf("unexpected health payload: %+v", body.Data)
	}
}

func TestRouter_ListAndGetSeason(t *testing.T) {
	router := newTestRouter(t)

	status, body := doRequest(t, router, http.MethodGet, "/v1/seasons", "", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	items, _ := body.Data.([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 seasons, got %d", len(items))
	}

	status, body = doRequest(t, router, http.MethodGet, "/v1/seasons/"+memory.SeasonIDSecond, "", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	item, _ := body.Data.(map[string]any)
	if item["starts_at"] != "2021-03-08T16:00:00Z" {
		t.Fatalf("unexpected starts_at: %v", item["starts_at"])
	}

	status, body = doRequest(t, router, http.MethodGet, "/v1/seasons/missing", "", nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if body.Error["status"] != "NOT_FOUND" {
		t.Fatalf("unexpected error body: %+v", body.Error)
	}
}

func TestRouter_ScheduleHidesScoresOfInvisibleGames(t *testing.T) {
	status, body := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/seasons/"+memory.SeasonIDSecond+"/schedule", "", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	data, _ := body.Data.(map[string]any)
	total, _ := data["total_games"].(float64)
	visible, _ := data["visible_games"].(float64)
	if total == 0 || visible == 0 || visible >= total {
		t.Fatalf("expected partially visible schedule, total=%v visible=%v", total, visible)
	}

	days, _ := data["days"].([]any)
	lastDay, _ := days[len(days)-1].(map[string]any)
	hours, _ := lastDay["hours"].([]any)
	lastHour, _ := hours[len(hours)-1].(map[string]any)
	games, _ := lastHour["games"].([]any)
	g, _ := games[0].(map[string]any)
	if g["visible_on_site"] != false {
		t.Fatalf("expected last game hidden, got %+v", g)
	}
	if _, ok := g["home_score"]; ok {
		t.Fatalf("hidden game must not expose score: %+v", g)
	}
}

func TestRouter_DivisionStandings(t *testing.T) {
	router := newTestRouter(t)

	status, body := doRequest(t, router, http.MethodGet,
		"/v1/seasons/"+memory.SeasonIDFirst+"/divisions/"+memory.DivisionIDHarbor+"/standings?sort=runDifferential&order=asc", "", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%+v)", status, body.Error)
	}
	table, _ := body.Data.(map[string]any)
	rows, _ := table["rows"].([]any)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	var previous float64
	for i, raw := range rows {
		row, _ := raw.(map[string]any)
		diff, _ := row["run_differential"].(float64)
		if i > 0 && diff < previous {
			t.Fatalf("rows not ascending by run differential: %+v", rows)
		}
		previous = diff
	}

	status, _ = doRequest(t, router, http.MethodGet,
		"/v1/seasons/"+memory.SeasonIDFirst+"/divisions/"+memory.DivisionIDHarbor+"/standings?order=sideways", "", nil)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad order, got %d", status)
	}

	status, _ = doRequest(t, router, http.MethodGet,
		"/v1/seasons/"+memory.SeasonIDFirst+"/divisions/"+memory.DivisionIDHarbor+"/standings?sort=no_such_column", "", nil)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad sort key, got %d", status)
	}
}

func TestRouter_SeasonStandings(t *testing.T) {
	status, body := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/seasons/"+memory.SeasonIDFirst+"/standings", "", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	tables, _ := body.Data.([]any)
	if len(tables) != 2 {
		t.Fatalf("expected 2 division tables, got %d", len(tables))
	}
}

func TestRouter_PlayerStats(t *testing.T) {
	router := newTestRouter(t)

	status, body := doRequest(t, router, http.MethodGet, "/v1/players/p-otto-vance/stats", "", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	data, _ := body.Data.(map[string]any)
	batting, _ := data["batting"].(map[string]any)
	seasons, _ := batting["seasons"].([]any)
	if len(seasons) != 2 {
		t.Fatalf("expected 2 batting seasons, got %d", len(seasons))
	}
	career, _ := batting["career"].(map[string]any)
	if career["hits"] != float64(182) {
		t.Fatalf("expected summed career hits 182, got %v", career["hits"])
	}

	pitching, _ := data["pitching"].(map[string]any)
	pitchingCareer, _ := pitching["career"].(map[string]any)
	if pitchingCareer["era"] != nil {
		t.Fatalf("expected null era without innings, got %v", pitchingCareer["era"])
	}

	status, _ = doRequest(t, router, http.MethodGet, "/v1/players/nobody/stats", "", nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}

func TestRouter_Search(t *testing.T) {
	router := newTestRouter(t)

	status, body := doRequest(t, router, http.MethodGet, "/v1/search?q=gul", "", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	items, _ := body.Data.([]any)
	if len(items) == 0 {
		t.Fatalf("expected results for gul")
	}
	first, _ := items[0].(map[string]any)
	if first["id"] != "harbor-gulls" || first["kind"] != "team" {
		t.Fatalf("unexpected first result: %+v", first)
	}

	status, _ = doRequest(t, router, http.MethodGet, "/v1/search?q=gul&limit=abc", "", nil)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric limit, got %d", status)
	}
	status, _ = doRequest(t, router, http.MethodGet, "/v1/search?q=gul&limit=500", "", nil)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized limit, got %d", status)
	}
}

func TestRouter_SyncJobRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	status, _ := doRequest(t, router, http.MethodPost, "/v1/internal/jobs/sync", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}

	status, _ = doRequest(t, router, http.MethodPost, "/v1/internal/jobs/sync", "", map[string]string{internalJobTokenHeader: "wrong"})
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d", status)
	}
}

func TestRouter_SyncJobDryRun(t *testing.T) {
	router := newTestRouter(t)
	headers := map[string]string{internalJobTokenHeader: testJobToken}

	status, body := doRequest(t, router, http.MethodPost, "/v1/internal/jobs/sync",
		`{"season_ids":["season-1"],"kinds":["games"],"dry_run":true}`, headers)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%+v)", status, body.Error)
	}
	data, _ := body.Data.(map[string]any)
	if data["task_count"] != float64(1) || data["dry_run"] != true {
		t.Fatalf("unexpected sync result: %+v", data)
	}

	status, _ = doRequest(t, router, http.MethodPost, "/v1/internal/jobs/sync", `{"unknown":1}`, headers)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", status)
	}

	status, _ = doRequest(t, router, http.MethodPost, "/v1/internal/jobs/sync", `{"max_workers":99}`, headers)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for max_workers out of range, got %d", status)
	}
}

func TestRouter_UnconfiguredJobToken(t *testing.T) {
	handler := NewHandler(nil, nil, nil, nil, nil, nil, logging.NewNop())
	router := NewRouter(handler, logging.NewNop(), nil, "")

	status, body := doRequest(t, router, http.MethodPost, "/v1/internal/jobs/sync", "", map[string]string{internalJobTokenHeader: "x"})
	if status != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d (%+v)", status, body.Error)
	}
}
