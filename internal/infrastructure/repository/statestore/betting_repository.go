package statestore

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/cricket-pool/internal/domain/betting"
	"github.com/riskibarqy/cricket-pool/internal/domain/contest"
	"github.com/riskibarqy/cricket-pool/internal/domain/matchlock"
	"github.com/riskibarqy/cricket-pool/internal/domain/state"
)

type BettingRepository struct {
	store *Store
}

func NewBettingRepository(store *Store) *BettingRepository {
	return &BettingRepository{store: store}
}

func (r *BettingRepository) Get(_ context.Context, userID, matchName string) (int64, bool, error) {
	var (
		amount int64
		found  bool
	)
	r.store.view(func(doc *state.State) {
		stakes, exists := doc.Amounts[userID]
		if !exists {
			return
		}
		amount, found = stakes[matchName]
	})
	return amount, found, nil
}

func (r *BettingRepository) Set(ctx context.Context, userID, matchName string, amount int64) error {
	return r.store.mutate(ctx, func(doc *state.State) error {
		if _, exists := doc.Matches[matchName]; !exists {
			return fmt.Errorf("%w: %s", contest.ErrMatchNotFound, matchName)
		}
		if r.store.lockedLocked(matchName) {
			return fmt.Errorf("%w: %s", matchlock.ErrLocked, matchName)
		}
		// Amount is checked last so a missing or locked match reports its
		// own failure even when the stake is also bad.
		if amount <= 0 {
			return fmt.Errorf("%w: got %d", betting.ErrInvalidAmount, amount)
		}

		stakes, exists := doc.Amounts[userID]
		if !exists {
			stakes = make(map[string]int64)
			doc.Amounts[userID] = stakes
		}
		stakes[matchName] = amount
		return nil
	})
}

func (r *BettingRepository) ListByUser(_ context.Context, userID string) ([]betting.Stake, error) {
	var out []betting.Stake
	r.store.view(func(doc *state.State) {
		stakes, exists := doc.Amounts[userID]
		if !exists {
			return
		}
		matchNames := make([]string, 0, len(stakes))
		for matchName := range stakes {
			matchNames = append(matchNames, matchName)
		}
		sort.Strings(matchNames)

		out = make([]betting.Stake, 0, len(matchNames))
		for _, matchName := range matchNames {
			out = append(out, betting.Stake{
				UserID:    userID,
				MatchName: matchName,
				Amount:    stakes[matchName],
			})
		}
	})
	return out, nil
}
