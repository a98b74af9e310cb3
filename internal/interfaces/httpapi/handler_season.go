package httpapi

import (
	"net/http"
)

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.seasonService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonDTO, 0, len(seasons))
	for _, s := range seasons {
		items = append(items, seasonToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	item, err := h.seasonService.Get(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSchedule")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	result, err := h.scheduleService.GetSchedule(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get schedule failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scheduleToDTO(result))
}
