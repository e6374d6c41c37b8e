package matchlock

import (
	"context"
	"errors"
)

// ErrLocked rejects roster and stake mutations once a match has started.
var ErrLocked = errors.New("match is locked")

// Registry tracks one-way match locks. Locking is idempotent, accepts names
// that are not in the catalog, and has no inverse. Lock state lives for the
// process, not in the persisted document.
type Registry interface {
	Lock(ctx context.Context, matchName string) error
	IsLocked(ctx context.Context, matchName string) (bool, error)
}
