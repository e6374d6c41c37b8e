package statestore

import "context"

// LockRegistry shares the store mutex so lock checks inside roster and
// stake mutations are atomic with the mutation itself.
type LockRegistry struct {
	store *Store
}

func NewLockRegistry(store *Store) *LockRegistry {
	return &LockRegistry{store: store}
}

// Lock is one-way and idempotent. It accepts names outside the catalog;
// the lock simply never matches a roster. A save still runs so the
// mutation discipline stays uniform.
func (r *LockRegistry) Lock(ctx context.Context, matchName string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.locks[matchName] = struct{}{}
	return s.persistLocked(ctx)
}

func (r *LockRegistry) IsLocked(_ context.Context, matchName string) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lockedLocked(matchName), nil
}
