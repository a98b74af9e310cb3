package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-reference/internal/platform/logging"
)

func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	corsAllowedOrigins []string,
	internalJobToken string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handler.Healthz)

	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/{seasonID}", handler.GetSeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/schedule", handler.GetSchedule)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/standings", handler.ListSeasonStandings)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/divisions/{divisionID}/standings", handler.ListDivisionStandings)
	mux.HandleFunc("GET /v1/players/{playerID}/stats", handler.GetPlayerStats)
	mux.HandleFunc("GET /v1/search", handler.Search)

	mux.Handle("POST /v1/internal/jobs/sync", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncJob)))

	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
