package httpapi

import (
	"io"
	"net/http"

	"github.com/pitchconnect/standings-engine/internal/usecase"
)

type recomputeJobRequest struct {
	CompetitionID string `json:"competitionId"`
	MaxWorkers    int    `json:"maxWorkers" validate:"min=0,max=64"`
	DryRun        bool   `json:"dryRun"`
}

func (h *Handler) RunRecomputeStandingsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecomputeStandingsJob")
	defer span.End()

	var req recomputeJobRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := decodeJSONBody(r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
	} else if r.Body != nil {
		_, _ = io.Copy(io.Discard, r.Body)
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.recomputeService.Run(ctx, usecase.RecomputeInput{
		CompetitionID: req.CompetitionID,
		MaxWorkers:    req.MaxWorkers,
		DryRun:        req.DryRun,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "recompute standings job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
