package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-reference/internal/platform/logging"
	"github.com/riskibarqy/league-reference/internal/usecase"
)

type Handler struct {
	seasonService      *usecase.SeasonService
	scheduleService    *usecase.ScheduleService
	standingService    *usecase.StandingService
	playerStatsService *usecase.PlayerStatsService
	searchService      *usecase.SearchService
	syncService        *usecase.SyncService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	seasonService *usecase.SeasonService,
	scheduleService *usecase.ScheduleService,
	standingService *usecase.StandingService,
	playerStatsService *usecase.PlayerStatsService,
	searchService *usecase.SearchService,
	syncService *usecase.SyncService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		seasonService:      seasonService,
		scheduleService:    scheduleService,
		standingService:    standingService,
		playerStatsService: playerStatsService,
		searchService:      searchService,
		syncService:        syncService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
