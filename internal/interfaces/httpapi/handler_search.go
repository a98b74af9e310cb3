package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/league-reference/internal/usecase"
)

const defaultSearchLimit = 10

type searchQuery struct {
	Q     string `validate:"max=100"`
	Limit int    `validate:"min=1,max=50"`
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Search")
	defer span.End()

	query := searchQuery{
		Q:     strings.TrimSpace(r.URL.Query().Get("q")),
		Limit: defaultSearchLimit,
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput))
			return
		}
		query.Limit = limit
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	results, err := h.searchService.Query(ctx, query.Q, query.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "search failed", "query", query.Q, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]searchResultDTO, 0, len(results))
	for _, result := range results {
		items = append(items, searchResultDTO{
			ID:   result.ID,
			Name: result.Name,
			Kind: string(result.Kind),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
