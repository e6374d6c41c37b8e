package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/cricket-pool/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.catalogService.ListMatches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matches)
}

func (h *Handler) ListMatchTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchTeams")
	defer span.End()

	matchName := strings.TrimSpace(r.PathValue("matchName"))
	teams, err := h.catalogService.ListTeams(ctx, matchName)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "match", matchName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	matchName := strings.TrimSpace(r.PathValue("matchName"))
	teamName := strings.TrimSpace(r.PathValue("teamName"))
	players, err := h.catalogService.ListTeamPlayers(ctx, matchName, teamName)
	if err != nil {
		h.logger.WarnContext(ctx, "list team players failed", "match", matchName, "team", teamName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, players)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
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

	if err := h.catalogService.CreateMatch(ctx, req.Name); err != nil {
		h.logger.WarnContext(ctx, "create match failed", "match", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]string{"match": strings.TrimSpace(req.Name)})
}

func (h *Handler) AddMatchTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddMatchTeam")
	defer span.End()

	matchName := strings.TrimSpace(r.PathValue("matchName"))
	var req addTeamRequest
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

	if err := h.catalogService.AddTeam(ctx, matchName, req.Name); err != nil {
		h.logger.WarnContext(ctx, "add team failed", "match", matchName, "team", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]string{
		"match": matchName,
		"team":  strings.TrimSpace(req.Name),
	})
}

func (h *Handler) AddTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddTeamPlayers")
	defer span.End()

	matchName := strings.TrimSpace(r.PathValue("matchName"))
	teamName := strings.TrimSpace(r.PathValue("teamName"))
	var req addTeamPlayersRequest
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

	added, err := h.catalogService.AddPlayers(ctx, matchName, teamName, req.Players)
	if err != nil {
		h.logger.WarnContext(ctx, "add players failed", "match", matchName, "team", teamName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, added)
}
