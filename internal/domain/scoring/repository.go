package scoring

import "context"

// Repository is the global per-player points table, keyed by exact player
// name. Writes persist the full pool document before returning.
type Repository interface {
	SetPoints(ctx context.Context, player string, points int) error
	GetPoints(ctx context.Context, player string) (int, bool, error)
	// Snapshot copies the whole table for a scoring pass.
	Snapshot(ctx context.Context) (map[string]int, error)
	// PoolSnapshot copies users, rosters and points in a single read, so a
	// rankings pass never blends state from different mutations.
	PoolSnapshot(ctx context.Context) (PoolSnapshot, error)
}
