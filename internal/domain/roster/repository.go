package roster

import "context"

// Repository stores per (user, match) rosters. Mutations fail with
// matchlock.ErrLocked once the match is locked, and persist the full pool
// document before returning.
type Repository interface {
	Get(ctx context.Context, userID, matchName string) (Roster, bool, error)
	// ListByUser returns the user's rosters across all matches.
	ListByUser(ctx context.Context, userID string) ([]Roster, error)
	// AddPlayer appends the player and returns the zero-based slot it
	// landed in.
	AddPlayer(ctx context.Context, userID, matchName, player string) (int, error)
	// RemovePlayer drops the player and returns the remaining picks, which
	// shift down to fill the gap.
	RemovePlayer(ctx context.Context, userID, matchName, player string) ([]string, error)
	// Clear removes the (user, match) entry entirely. Clearing an absent
	// roster is a no-op.
	Clear(ctx context.Context, userID, matchName string) error
}
