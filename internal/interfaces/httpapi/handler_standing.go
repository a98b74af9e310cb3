package httpapi

import (
	"net/http"
	"strings"
)

type standingsQuery struct {
	Sort  string `validate:"omitempty,max=64"`
	Order string `validate:"omitempty,oneof=asc desc"`
}

func (h *Handler) parseStandingsQuery(r *http.Request) (standingsQuery, error) {
	query := standingsQuery{
		Sort:  strings.TrimSpace(r.URL.Query().Get("sort")),
		Order: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("order"))),
	}
	if err := h.validateRequest(r.Context(), query); err != nil {
		return standingsQuery{}, err
	}
	return query, nil
}

// descending is the default order: best team first.
func (q standingsQuery) descending() bool {
	return q.Order != "asc"
}

func (h *Handler) ListSeasonStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonStandings")
	defer span.End()

	query, err := h.parseStandingsQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	seasonID := r.PathValue("seasonID")
	tables, err := h.standingService.ListBySeason(ctx, seasonID, query.Sort, query.descending())
	if err != nil {
		h.logger.WarnContext(ctx, "list season standings failed", "season_id", seasonID, "sort", query.Sort, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingTableDTO, 0, len(tables))
	for _, table := range tables {
		items = append(items, standingTableToDTO(table))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListDivisionStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisionStandings")
	defer span.End()

	query, err := h.parseStandingsQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	seasonID := r.PathValue("seasonID")
	divisionID := r.PathValue("divisionID")
	table, err := h.standingService.ListByDivision(ctx, seasonID, divisionID, query.Sort, query.descending())
	if err != nil {
		h.logger.WarnContext(ctx, "list division standings failed",
			"season_id", seasonID,
			"division_id", divisionID,
			"sort", query.Sort,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingTableToDTO(table))
}
