package statestore

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/cricket-pool/internal/domain/state"
	"github.com/riskibarqy/cricket-pool/internal/infrastructure/persistence"
	"github.com/riskibarqy/cricket-pool/internal/platform/logging"
)

// Store owns the in-memory pool document and the match lock table behind a
// single RWMutex. Every mutation runs under the write lock as
// validate-apply-save: the gateway persists the full document before the
// lock is released, so saves serialize and always reflect a consistent
// state. A failed save keeps the in-memory change and surfaces the error;
// the next successful save persists everything.
type Store struct {
	mu      sync.RWMutex
	data    *state.State
	locks   map[string]struct{}
	version atomic.Uint64
	gateway persistence.Gateway
	logger  *logging.Logger
}

// New loads the last snapshot through the gateway. A missing or unreadable
// snapshot is absorbed: the store starts from the empty document and the
// problem is logged, never fatal.
func New(ctx context.Context, gateway persistence.Gateway, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}

	s := &Store{
		locks:   make(map[string]struct{}),
		gateway: gateway,
		logger:  logger,
	}

	doc, err := gateway.Load(ctx)
	switch {
	case err == nil:
		doc.Normalize()
		s.data = doc
		logger.InfoContext(ctx, "state snapshot loaded",
			"matches", len(doc.Matches),
			"users", doc.UserTeams.Len(),
		)
	case errors.Is(err, persistence.ErrNoSnapshot):
		s.data = state.New()
		logger.InfoContext(ctx, "no state snapshot, starting empty")
	default:
		s.data = state.New()
		logger.WarnContext(ctx, "state snapshot unreadable, starting empty", "error", err)
	}

	return s
}

// Version increments on every mutation. Read-side caches key on it.
func (s *Store) Version() uint64 {
	return s.version.Load()
}

// Snapshot serializes the current document under the read lock.
func (s *Store) Snapshot(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sonic.Marshal(s.data)
}

// Reset clears all four tables back to the empty document. Match locks
// survive, matching the original admin behavior.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = state.New()
	return s.persistLocked(ctx)
}

// Close performs the teardown save so the snapshot matches memory even if
// the last mutation's save failed.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.gateway.Save(ctx, s.data); err != nil {
		return err
	}
	return nil
}

func (s *Store) view(fn func(doc *state.State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(s.data)
}

func (s *Store) mutate(ctx context.Context, fn func(doc *state.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.data); err != nil {
		return err
	}
	return s.persistLocked(ctx)
}

func (s *Store) persistLocked(ctx context.Context) error {
	s.version.Add(1)
	if err := s.gateway.Save(ctx, s.data); err != nil {
		s.logger.ErrorContext(ctx, "state save failed, in-memory change retained", "error", err)
		return err
	}
	return nil
}

func (s *Store) lockedLocked(matchName string) bool {
	_, ok := s.locks[matchName]
	return ok
}
