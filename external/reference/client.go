package reference

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-reference/external/wire"
	"github.com/riskibarqy/league-reference/internal/domain/game"
	"github.com/riskibarqy/league-reference/internal/domain/season"
	"github.com/riskibarqy/league-reference/internal/domain/standing"
	"github.com/riskibarqy/league-reference/internal/platform/logging"
	"github.com/riskibarqy/league-reference/internal/platform/resilience"
	"github.com/riskibarqy/league-reference/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/singleflight"
)

const (
	defaultTimeout      = 20 * time.Second
	defaultRetryBackoff = time.Second
	maxResponseBytes    = 8 << 20
)

var (
	errTransient = crerr.New("reference provider transient failure")
	errNotFound  = crerr.New("reference resource not found")
)

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads league reference data from the remote REST API.
type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	token          string
	timeout        time.Duration
	maxRetries     int
	retryBackoff   time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         singleflight.Group

	flightMu   sync.Mutex
	flightCtxs map[string]*sharedFlight
}

// sharedFlight is the context a deduplicated request runs under. It outlives any single
// caller and is cancelled once every caller waiting on it has gone.
type sharedFlight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                     "league-reference",
			MaxResponseBodySize:      maxResponseBytes,
			NoDefaultUserAgentHeader: true,
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	breaker := resilience.NewCircuitBreaker(breakerCfg)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("reference provider circuit breaker state changed", "from", from, "to", to)
	})

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		maxRetries:     max(cfg.MaxRetries, 0),
		retryBackoff:   backoff,
		logger:         logger,
		breaker:        breaker,
		circuitEnabled: breakerCfg.Enabled,
		flightCtxs:     make(map[string]*sharedFlight),
	}
}

func (c *Client) FetchSeasons(ctx context.Context) ([]season.Season, error) {
	var payload []wire.Season
	if err := c.doJSON(ctx, "/seasons", &payload); err != nil {
		return nil, fmt.Errorf("fetch seasons: %w", err)
	}

	seasons, err := wire.ToSeasons(payload)
	if err != nil {
		return nil, fmt.Errorf("map seasons: %w", err)
	}
	return seasons, nil
}

func (c *Client) FetchRoster(ctx context.Context, seasonID string) (usecase.ExternalRoster, error) {
	var payload wire.Roster
	if err := c.doJSON(ctx, seasonPath(seasonID, "teams"), &payload); err != nil {
		return usecase.ExternalRoster{}, fmt.Errorf("fetch roster season=%s: %w", seasonID, err)
	}
	return payload.ToDomain(seasonID), nil
}

func (c *Client) FetchGames(ctx context.Context, seasonID string) ([]game.Game, error) {
	var payload []wire.Game
	if err := c.doJSON(ctx, seasonPath(seasonID, "games"), &payload); err != nil {
		return nil, fmt.Errorf("fetch games season=%s: %w", seasonID, err)
	}
	return wire.ToGames(seasonID, payload), nil
}

func (c *Client) FetchStandings(ctx context.Context, seasonID string) ([]standing.Standing, error) {
	var payload []wire.Standing
	if err := c.doJSON(ctx, seasonPath(seasonID, "standings"), &payload); err != nil {
		return nil, fmt.Errorf("fetch standings season=%s: %w", seasonID, err)
	}
	return wire.ToStandings(seasonID, payload), nil
}

func (c *Client) FetchPlayerStats(ctx context.Context, seasonID string) (usecase.ExternalPlayerStats, error) {
	var payload wire.PlayerStats
	if err := c.doJSON(ctx, seasonPath(seasonID, "player-stats"), &payload); err != nil {
		return usecase.ExternalPlayerStats{}, fmt.Errorf("fetch player stats season=%s: %w", seasonID, err)
	}
	return payload.ToDomain(seasonID), nil
}

func seasonPath(seasonID, resource string) string {
	return "/seasons/" + url.PathEscape(seasonID) + "/" + resource
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	fullURL := c.buildURL(path)

	flightCtx, leave := c.joinFlight(ctx, fullURL)
	defer leave()

	ch := c.flight.DoChan(fullURL, func() (any, error) {
		if !c.circuitEnabled {
			return c.executeRequest(flightCtx, fullURL)
		}

		var raw []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			raw, reqErr = c.executeRequest(flightCtx, fullURL)
			return reqErr
		}, isTransient)
		return raw, execErr
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return mapProviderError(ctx, c.logger, res.Err)
	}

	raw, ok := res.Val.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	return wire.Decode(raw, target)
}

// joinFlight hands out the shared context for key. It keeps the first caller's values but not
// its cancellation; leave cancels it after the last waiter returns.
func (c *Client) joinFlight(ctx context.Context, key string) (context.Context, func()) {
	c.flightMu.Lock()
	defer c.flightMu.Unlock()

	shared, ok := c.flightCtxs[key]
	if !ok {
		flightCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		shared = &sharedFlight{ctx: flightCtx, cancel: cancel}
		c.flightCtxs[key] = shared
	}
	shared.waiters++

	return shared.ctx, func() {
		c.flightMu.Lock()
		defer c.flightMu.Unlock()

		shared.waiters--
		if shared.waiters > 0 {
			return
		}
		shared.cancel()
		if c.flightCtxs[key] == shared {
			delete(c.flightCtxs, key)
			c.flight.Forget(key)
		}
	}
}

func (c *Client) buildURL(path string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	_, _ = buf.WriteString(path)
	return buf.String()
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, status, err := c.send(fullURL)
		switch {
		case err != nil:
			lastErr = crerr.Mark(crerr.Wrap(err, "send request"), errTransient)
		case status >= 200 && status < 300:
			return raw, nil
		case status == fasthttp.StatusNotFound:
			return nil, crerr.Mark(crerr.Newf("provider status=%d", status), errNotFound)
		case isRetryableStatus(status):
			lastErr = crerr.Mark(crerr.Newf("provider status=%d body=%s", status, abbreviateBody(raw)), errTransient)
		default:
			return nil, crerr.Newf("provider status=%d body=%s", status, abbreviateBody(raw))
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(resilience.Backoff(c.retryBackoff, attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "reference provider request failed", "url", fullURL, "attempts", c.maxRetries+1, "error", lastErr)
	return nil, lastErr
}

func (c *Client) send(fullURL string) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if c.token != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+c.token)
	}

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, 0, err
	}
	return append([]byte(nil), resp.Body()...), resp.StatusCode(), nil
}

func mapProviderError(ctx context.Context, logger *logging.Logger, err error) error {
	switch {
	case crerr.Is(err, resilience.ErrCircuitOpen):
		logger.WarnContext(ctx, "reference provider circuit breaker rejected request")
		return fmt.Errorf("%w: reference provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	case crerr.Is(err, errNotFound):
		return fmt.Errorf("%w: %v", usecase.ErrNotFound, err)
	case isTransient(err):
		return fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
	default:
		return err
	}
}

func isTransient(err error) bool {
	return crerr.Is(err, errTransient)
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "..."
}
