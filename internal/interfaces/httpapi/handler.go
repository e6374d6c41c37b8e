package httpapi

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/cricket-pool/internal/domain/betting"
	"github.com/riskibarqy/cricket-pool/internal/domain/roster"
	"github.com/riskibarqy/cricket-pool/internal/domain/scoring"
	"github.com/riskibarqy/cricket-pool/internal/platform/logging"
	"github.com/riskibarqy/cricket-pool/internal/usecase"
)

type Handler struct {
	catalogService     *usecase.CatalogService
	rosterService      *usecase.RosterService
	bettingService     *usecase.BettingService
	scoringService     *usecase.ScoringService
	lockService        *usecase.LockService
	maintenanceService *usecase.MaintenanceService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	catalogService *usecase.CatalogService,
	rosterService *usecase.RosterService,
	bettingService *usecase.BettingService,
	scoringService *usecase.ScoringService,
	lockService *usecase.LockService,
	maintenanceService *usecase.MaintenanceService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		catalogService:     catalogService,
		rosterService:      rosterService,
		bettingService:     bettingService,
		scoringService:     scoringService,
		lockService:        lockService,
		maintenanceService: maintenanceService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type createMatchRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type addTeamRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type addTeamPlayersRequest struct {
	Players []string `json:"players" validate:"required,min=1,dive,max=200"`
}

type addRosterPlayerRequest struct {
	Player string `json:"player" validate:"required,max=200"`
}

type setStakeRequest struct {
	Amount int64 `json:"amount" validate:"required"`
}

type setPointsRequest struct {
	Points int `json:"points"`
}

type matchLockDTO struct {
	Match  string `json:"match"`
	Locked bool   `json:"locked"`
}

type rosterPickDTO struct {
	Slot   int    `json:"slot"`
	Player string `json:"player"`
	Role   string `json:"role"`
}

type rosterDTO struct {
	Match   string          `json:"match"`
	Players []rosterPickDTO `json:"players"`
}

type stakeDTO struct {
	Match  string `json:"match"`
	Amount int64  `json:"amount"`
}

type playerPointsDTO struct {
	Player string `json:"player"`
	Points int    `json:"points"`
}

type rankingDTO struct {
	Rank   int    `json:"rank"`
	UserID string `json:"userId"`
	Score  int    `json:"score"`
}

type profileDTO struct {
	UserID  string      `json:"userId"`
	Rosters []rosterDTO `json:"rosters"`
	Stakes  []stakeDTO  `json:"stakes"`
}

func rosterPicksToDTO(picks []usecase.RosterPick) []rosterPickDTO {
	out := make([]rosterPickDTO, 0, len(picks))
	for _, pick := range picks {
		out = append(out, rosterPickDTO{
			// Slots are zero-based internally; rendered 1-based as players
			// read them ("captain is pick #1").
			Slot:   pick.Slot + 1,
			Player: pick.Player,
			Role:   string(pick.Role),
		})
	}
	return out
}

func rosterToDTO(item roster.Roster) rosterDTO {
	picks := make([]rosterPickDTO, 0, len(item.Players))
	for slot, player := range item.Players {
		picks = append(picks, rosterPickDTO{
			Slot:   slot + 1,
			Player: player,
			Role:   string(roster.RoleForSlot(slot)),
		})
	}
	return rosterDTO{
		Match:   item.MatchName,
		Players: picks,
	}
}

func stakeToDTO(item betting.Stake) stakeDTO {
	return stakeDTO{
		Match:  item.MatchName,
		Amount: item.Amount,
	}
}

func rankingsToDTO(ranked []scoring.UserScore) []rankingDTO {
	out := make([]rankingDTO, 0, len(ranked))
	for i, item := range ranked {
		out = append(out, rankingDTO{
			Rank:   i + 1,
			UserID: item.UserID,
			// Scores accumulate as floats; the board shows them truncated
			// toward zero.
			Score: int(math.Trunc(item.Score)),
		})
	}
	return out
}
