package betting

import "context"

// Repository is the stake ledger. Set fails with contest.ErrMatchNotFound
// for unknown matches and matchlock.ErrLocked once the match is locked, and
// persists the full pool document before returning.
type Repository interface {
	Get(ctx context.Context, userID, matchName string) (int64, bool, error)
	// Set records the stake, silently replacing any previous one.
	Set(ctx context.Context, userID, matchName string, amount int64) error
	ListByUser(ctx context.Context, userID string) ([]Stake, error)
}
