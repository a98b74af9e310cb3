package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-reference/internal/usecase"
)

const maxJobRequestBytes = 64 << 10

type internalJobSyncRequest struct {
	SeasonIDs  []string `json:"season_ids" validate:"omitempty,max=64,dive,required,max=64"`
	Kinds      []string `json:"kinds" validate:"omitempty,max=4,dive,required"`
	MaxWorkers int      `json:"max_workers" validate:"min=0,max=16"`
	DryRun     bool     `json:"dry_run"`
}

func (h *Handler) RunSyncJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncJob")
	defer span.End()

	if h.syncService == nil {
		writeError(ctx, w, fmt.Errorf("%w: sync service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	req, err := decodeInternalJobSyncRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.syncService.Sync(ctx, usecase.SyncInput{
		SeasonIDs:  req.SeasonIDs,
		Kinds:      req.Kinds,
		MaxWorkers: req.MaxWorkers,
		DryRun:     req.DryRun,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "run sync job failed", "season_ids", req.SeasonIDs, "kinds", req.Kinds, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func decodeInternalJobSyncRequest(r *http.Request) (internalJobSyncRequest, error) {
	decoder := sonic.ConfigStd.NewDecoder(io.LimitReader(r.Body, maxJobRequestBytes))
	decoder.DisallowUnknownFields()

	var req internalJobSyncRequest
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return internalJobSyncRequest{}, nil
		}
		return internalJobSyncRequest{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return req, nil
}
