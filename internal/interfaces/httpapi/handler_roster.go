package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/cricket-pool/internal/usecase"
)

func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoster")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("userID"))
	matchName := strings.TrimSpace(r.PathValue("matchName"))
	picks, err := h.rosterService.Get(ctx, userID, matchName)
	if err != nil {
		h.logger.WarnContext(ctx, "get roster failed", "user_id", userID, "match", matchName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterDTO{
		Match:   matchName,
		Players: rosterPicksToDTO(picks),
	})
}

func (h *Handler) AddRosterPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddRosterPlayer")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("userID"))
	matchName := strings.TrimSpace(r.PathValue("matchName"))
	var req addRosterPlayerRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	pick, err := h.rosterService.AddPlayer(ctx, userID, matchName, req.Player)
	if err != nil {
		h.logger.WarnContext(ctx, "add roster player failed", "user_id", userID, "match", matchName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, rosterPickDTO{
		Slot:   pick.Slot + 1,
		Player: pick.Player,
		Role:   string(pick.Role),
	})
}

func (h *Handler) RemoveRosterPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveRosterPlayer")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("userID"))
	matchName := strings.TrimSpace(r.PathValue("matchName"))
	playerName := strings.TrimSpace(r.PathValue("playerName"))
	remaining, err := h.rosterService.RemovePlayer(ctx, userID, matchName, playerName)
	if err != nil {
		h.logger.WarnContext(ctx, "remove roster player failed", "user_id", userID, "match", matchName, "player", playerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterDTO{
		Match:   matchName,
		Players: rosterPicksToDTO(remaining),
	})
}

func (h *Handler) ClearRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearRoster")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("userID"))
	matchName := strings.TrimSpace(r.PathValue("matchName"))
	if err := h.rosterService.Clear(ctx, userID, matchName); err != nil {
		h.logger.WarnContext(ctx, "clear roster failed", "user_id", userID, "match", matchName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nil)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProfile")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("userID"))
	rosters, err := h.rosterService.ListByUser(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "list rosters failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}
	stakes, err := h.bettingService.ListByUser(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "list stakes failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	profile := profileDTO{
		UserID:  userID,
		Rosters: make([]rosterDTO, 0, len(rosters)),
		Stakes:  make([]stakeDTO, 0, len(stakes)),
	}
	for _, item := range rosters {
		profile.Rosters = append(profile.Rosters, rosterToDTO(item))
	}
	for _, item := range stakes {
		profile.Stakes = append(profile.Stakes, stakeToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, profile)
}
