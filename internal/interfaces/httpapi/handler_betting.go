package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/cricket-pool/internal/usecase"
)

func (h *Handler) GetStake(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStake")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("userID"))
	matchName := strings.TrimSpace(r.PathValue("matchName"))
	amount, err := h.bettingService.GetStake(ctx, userID, matchName)
	if err != nil {
		h.logger.WarnContext(ctx, "get stake failed", "user_id", userID, "match", matchName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stakeDTO{
		Match:  matchName,
		Amount: amount,
	})
}

func (h *Handler) PutStake(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PutStake")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("userID"))
	matchName := strings.TrimSpace(r.PathValue("matchName"))
	var req setStakeRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.bettingService.SetStake(ctx, userID, matchName, req.Amount); err != nil {
		h.logger.WarnContext(ctx, "set stake failed", "user_id", userID, "match", matchName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stakeDTO{
		Match:  matchName,
		Amount: req.Amount,
	})
}
