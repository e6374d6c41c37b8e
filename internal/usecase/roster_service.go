package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/cricket-pool/internal/domain/roster"
)

// RosterPick is one roster slot with its derived role.
type RosterPick struct {
	Slot   int
	Player string
	Role   roster.Role
}

// RosterService manages per (user, match) picks. Lock and invariant
// enforcement happens inside the repository, atomically with the mutation.
type RosterService struct {
	rosterRepo roster.Repository
}

func NewRosterService(rosterRepo roster.Repository) *RosterService {
	return &RosterService{rosterRepo: rosterRepo}
}

func (s *RosterService) Get(ctx context.Context, userID, matchName string) ([]RosterPick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Get")
	defer span.End()

	userID, matchName, err := normalizeRosterKey(userID, matchName)
	if err != nil {
		return nil, err
	}

	item, exists, err := s.rosterRepo.Get(ctx, userID, matchName)
	if err != nil {
		return nil, fmt.Errorf("get roster: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: roster for user %s in match %s", ErrNotFound, userID, matchName)
	}
	return picksFromPlayers(item.Players), nil
}

func (s *RosterService) ListByUser(ctx context.Context, userID string) ([]roster.Roster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListByUser")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	items, err := s.rosterRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list rosters: %w", err)
	}
	return items, nil
}

// AddPlayer appends the pick and reports the slot it landed in along with
// the role that slot carries.
func (s *RosterService) AddPlayer(ctx context.Context, userID, matchName, player string) (RosterPick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.AddPlayer")
	defer span.End()

	userID, matchName, err := normalizeRosterKey(userID, matchName)
	if err != nil {
		return RosterPick{}, err
	}
	player = strings.TrimSpace(player)
	if player == "" {
		return RosterPick{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	slot, err := s.rosterRepo.AddPlayer(ctx, userID, matchName, player)
	if err != nil {
		return RosterPick{}, fmt.Errorf("add roster player: %w", err)
	}
	return RosterPick{Slot: slot, Player: player, Role: roster.RoleForSlot(slot)}, nil
}

// RemovePlayer drops the pick; later picks shift down a slot and their
// roles are re-derived from the new positions.
func (s *RosterService) RemovePlayer(ctx context.Context, userID, matchName, player string) ([]RosterPick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.RemovePlayer")
	defer span.End()

	userID, matchName, err := normalizeRosterKey(userID, matchName)
	if err != nil {
		return nil, err
	}
	player = strings.TrimSpace(player)
	if player == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	remaining, err := s.rosterRepo.RemovePlayer(ctx, userID, matchName, player)
	if err != nil {
		return nil, fmt.Errorf("remove roster player: %w", err)
	}
	return picksFromPlayers(remaining), nil
}

func (s *RosterService) Clear(ctx context.Context, userID, matchName string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Clear")
	defer span.End()

	userID, matchName, err := normalizeRosterKey(userID, matchName)
	if err != nil {
		return err
	}

	if err := s.rosterRepo.Clear(ctx, userID, matchName); err != nil {
		return fmt.Errorf("clear roster: %w", err)
	}
	return nil
}

func normalizeRosterKey(userID, matchName string) (string, string, error) {
	userID = strings.TrimSpace(userID)
	matchName = strings.TrimSpace(matchName)
	if userID == "" || matchName == "" {
		return "", "", fmt.Errorf("%w: user id and match name are required", ErrInvalidInput)
	}
	return userID, matchName, nil
}

func picksFromPlayers(players []string) []RosterPick {
	out := make([]RosterPick, 0, len(players))
	for slot, player := range players {
		out = append(out, RosterPick{
			Slot:   slot,
			Player: player,
			Role:   roster.RoleForSlot(slot),
		})
	}
	return out
}
