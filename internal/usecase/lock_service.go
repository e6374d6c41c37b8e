package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/cricket-pool/internal/domain/matchlock"
)

// LockService flips matches into their locked phase. There is no unlock.
type LockService struct {
	locks matchlock.Registry
}

func NewLockService(locks matchlock.Registry) *LockService {
	return &LockService{locks: locks}
}

func (s *LockService) LockMatch(ctx context.Context, matchName string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LockService.LockMatch")
	defer span.End()

	matchName = strings.TrimSpace(matchName)
	if matchName == "" {
		return fmt.Errorf("%w: match name is required", ErrInvalidInput)
	}

	if err := s.locks.Lock(ctx, matchName); err != nil {
		return fmt.Errorf("lock match: %w", err)
	}
	return nil
}

func (s *LockService) IsLocked(ctx context.Context, matchName string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LockService.IsLocked")
	defer span.End()

	matchName = strings.TrimSpace(matchName)
	if matchName == "" {
		return false, fmt.Errorf("%w: match name is required", ErrInvalidInput)
	}

	locked, err := s.locks.IsLocked(ctx, matchName)
	if err != nil {
		return false, fmt.Errorf("check match lock: %w", err)
	}
	return locked, nil
}
