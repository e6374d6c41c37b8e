package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/cricket-pool/internal/usecase"
)

func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRankings")
	defer span.End()

	ranked, err := h.scoringService.Rankings(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "rankings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankingsToDTO(ranked))
}

func (h *Handler) SetPlayerPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetPlayerPoints")
	defer span.End()

	playerName := strings.TrimSpace(r.PathValue("playerName"))
	var req setPointsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.scoringService.SetPoints(ctx, playerName, req.Points); err != nil {
		h.logger.WarnContext(ctx, "set points failed", "player", playerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerPointsDTO{
		Player: playerName,
		Points: req.Points,
	})
}
