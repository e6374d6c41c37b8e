package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/cricket-pool/internal/domain/betting"
)

// BettingService records stakes against matches. Amounts are whole units;
// re-staking overwrites the previous amount silently.
type BettingService struct {
	bettingRepo betting.Repository
}

func NewBettingService(bettingRepo betting.Repository) *BettingService {
	return &BettingService{bettingRepo: bettingRepo}
}

func (s *BettingService) SetStake(ctx context.Context, userID, matchName string, amount int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.BettingService.SetStake")
	defer span.End()

	userID = strings.TrimSpace(userID)
	matchName = strings.TrimSpace(matchName)
	if userID == "" || matchName == "" {
		return fmt.Errorf("%w: user id and match name are required", ErrInvalidInput)
	}

	if err := s.bettingRepo.Set(ctx, userID, matchName, amount); err != nil {
		return fmt.Errorf("set stake: %w", err)
	}
	return nil
}

func (s *BettingService) GetStake(ctx context.Context, userID, matchName string) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BettingService.GetStake")
	defer span.End()

	userID = strings.TrimSpace(userID)
	matchName = strings.TrimSpace(matchName)
	if userID == "" || matchName == "" {
		return 0, fmt.Errorf("%w: user id and match name are required", ErrInvalidInput)
	}

	amount, exists, err := s.bettingRepo.Get(ctx, userID, matchName)
	if err != nil {
		return 0, fmt.Errorf("get stake: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: stake for user %s in match %s", ErrNotFound, userID, matchName)
	}
	return amount, nil
}

func (s *BettingService) ListByUser(ctx context.Context, userID string) ([]betting.Stake, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BettingService.ListByUser")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	stakes, err := s.bettingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list stakes: %w", err)
	}
	return stakes, nil
}
