package statestore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/cricket-pool/internal/domain/matchlock"
	"github.com/riskibarqy/cricket-pool/internal/domain/roster"
	"github.com/riskibarqy/cricket-pool/internal/domain/state"
	"github.com/riskibarqy/cricket-pool/internal/infrastructure/persistence"
	"github.com/riskibarqy/cricket-pool/internal/platform/logging"
)

// stubGateway keeps the last saved document in memory and can be flipped
// into a failing mode to exercise save-failure semantics.
type stubGateway struct {
	mu       sync.Mutex
	saved    *state.State
	saves    int
	failSave bool
}

func (g *stubGateway) Load(context.Context) (*state.State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.saved == nil {
		return nil, crerr.Mark(errors.New("empty stub"), persistence.ErrNoSnapshot)
	}
	return g.saved, nil
}

func (g *stubGateway) Save(_ context.Context, doc *state.State) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failSave {
		return crerr.Mark(errors.New("disk full"), persistence.ErrSaveFailed)
	}
	g.saves++
	g.saved = doc
	return nil
}

func newTestStore(t *testing.T) (*Store, *stubGateway) {
	t.Helper()
	gw := &stubGateway{}
	return New(t.Context(), gw, logging.NewNop()), gw
}

func TestStore_MutationPersistsBeforeReturning(t *testing.T) {
	store, gw := newTestStore(t)
	contests := NewContestRepository(store)

	if err := contests.CreateMatch(t.Context(), "IND vs AUS"); err != nil {
		t.Fatalf("create match: %v", err)
	}
	if gw.saves != 1 {
		t.Fatalf("expected one save, got %d", gw.saves)
	}
	if store.Version() != 1 {
		t.Fatalf("expected version 1, got %d", store.Version())
	}
}

func TestStore_SaveFailureKeepsInMemoryChange(t *testing.T) {
	store, gw := newTestStore(t)
	contests := NewContestRepository(store)
	gw.failSave = true

	err := contests.CreateMatch(t.Context(), "IND vs AUS")
	if !errors.Is(err, persistence.ErrSaveFailed) {
		t.Fatalf("expected ErrSaveFailed, got %v", err)
	}

	// The mutation survived and the next successful save carries it.
	matches, err := contests.ListMatches(t.Context())
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected retained match, got %v (err=%v)", matches, err)
	}

	gw.failSave = false
	if err := contests.AddTeam(t.Context(), "IND vs AUS", "India"); err != nil {
		t.Fatalf("add team after recovery: %v", err)
	}
	if gw.saved == nil {
		t.Fatal("expected a persisted document")
	}
	if _, ok := gw.saved.Matches["IND vs AUS"]; !ok {
		t.Fatal("recovered save must include the earlier mutation")
	}
}

func TestRosterRepository_CapHoldsUnderConcurrency(t *testing.T) {
	store, _ := newTestStore(t)
	rosters := NewRosterRepository(store)

	const attempts = 25
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := rosters.AddPlayer(t.Context(), "alice", "IND vs AUS", fmt.Sprintf("player-%02d", i))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	full := 0
	for err := range errs {
		if err == nil {
			continue
		}
		if !errors.Is(err, roster.ErrFull) {
			t.Fatalf("unexpected error: %v", err)
		}
		full++
	}
	if full != attempts-roster.MaxPlayers {
		t.Fatalf("expected %d rejections, got %d", attempts-roster.MaxPlayers, full)
	}

	got, exists, err := rosters.Get(t.Context(), "alice", "IND vs AUS")
	if err != nil || !exists {
		t.Fatalf("get roster: exists=%t err=%v", exists, err)
	}
	if len(got.Players) != roster.MaxPlayers {
		t.Fatalf("expected %d players, got %d", roster.MaxPlayers, len(got.Players))
	}
}

func TestRosterRepository_DuplicateRejected(t *testing.T) {
	store, _ := newTestStore(t)
	rosters := NewRosterRepository(store)

	if _, err := rosters.AddPlayer(t.Context(), "alice", "m", "Kohli"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	_, err := rosters.AddPlayer(t.Context(), "alice", "m", "Kohli")
	if !errors.Is(err, roster.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestLockRegistry_BlocksRosterAndStakeWrites(t *testing.T) {
	store, _ := newTestStore(t)
	contests := NewContestRepository(store)
	rosters := NewRosterRepository(store)
	stakes := NewBettingRepository(store)
	locks := NewLockRegistry(store)

	if err := contests.CreateMatch(t.Context(), "IND vs AUS"); err != nil {
		t.Fatalf("create match: %v", err)
	}
	if _, err := rosters.AddPlayer(t.Context(), "alice", "IND vs AUS", "Kohli"); err != nil {
		t.Fatalf("add before lock: %v", err)
	}
	if err := locks.Lock(t.Context(), "IND vs AUS"); err != nil {
		t.Fatalf("lock: %v", err)
	}

	if _, err := rosters.AddPlayer(t.Context(), "alice", "IND vs AUS", "Rohit"); !errors.Is(err, matchlock.ErrLocked) {
		t.Fatalf("add: expected ErrLocked, got %v", err)
	}
	if _, err := rosters.RemovePlayer(t.Context(), "alice", "IND vs AUS", "Kohli"); !errors.Is(err, matchlock.ErrLocked) {
		t.Fatalf("remove: expected ErrLocked, got %v", err)
	}
	if err := rosters.Clear(t.Context(), "alice", "IND vs AUS"); !errors.Is(err, matchlock.ErrLocked) {
		t.Fatalf("clear: expected ErrLocked, got %v", err)
	}
	if err := stakes.Set(t.Context(), "alice", "IND vs AUS", 100); !errors.Is(err, matchlock.ErrLocked) {
		t.Fatalf("stake: expected ErrLocked, got %v", err)
	}

	// Reads still work and locking twice stays fine.
	if locked, _ := locks.IsLocked(t.Context(), "IND vs AUS"); !locked {
		t.Fatal("match should report locked")
	}
	if err := locks.Lock(t.Context(), "IND vs AUS"); err != nil {
		t.Fatalf("idempotent lock: %v", err)
	}
}

func TestStore_ResetClearsTablesButKeepsLocks(t *testing.T) {
	store, _ := newTestStore(t)
	contests := NewContestRepository(store)
	locks := NewLockRegistry(store)

	if err := contests.CreateMatch(t.Context(), "m"); err != nil {
		t.Fatalf("create match: %v", err)
	}
	if err := locks.Lock(t.Context(), "m"); err != nil {
		t.Fatalf("lock: %v", err)
	}
	if err := store.Reset(t.Context()); err != nil {
		t.Fatalf("reset: %v", err)
	}

	matches, _ := contests.ListMatches(t.Context())
	if len(matches) != 0 {
		t.Fatalf("expected empty catalog, got %v", matches)
	}
	if locked, _ := locks.IsLocked(t.Context(), "m"); !locked {
		t.Fatal("locks must survive a reset")
	}
}

func TestScoringRepository_PoolSnapshotDetachesFromMutations(t *testing.T) {
	store, _ := newTestStore(t)
	rosters := NewRosterRepository(store)
	scores := NewScoringRepository(store)

	if _, err := rosters.AddPlayer(t.Context(), "alice", "m", "Kohli"); err != nil {
		t.Fatalf("add player: %v", err)
	}
	if err := scores.SetPoints(t.Context(), "Kohli", 10); err != nil {
		t.Fatalf("set points: %v", err)
	}

	snap, err := scores.PoolSnapshot(t.Context())
	if err != nil {
		t.Fatalf("pool snapshot: %v", err)
	}

	// Mutations landing after the snapshot must not leak into it.
	if _, err := rosters.AddPlayer(t.Context(), "alice", "m", "Rohit"); err != nil {
		t.Fatalf("add player after snapshot: %v", err)
	}
	if _, err := rosters.AddPlayer(t.Context(), "bob", "m", "Gill"); err != nil {
		t.Fatalf("add second user: %v", err)
	}
	if err := scores.SetPoints(t.Context(), "Kohli", 99); err != nil {
		t.Fatalf("set points after snapshot: %v", err)
	}

	if len(snap.Users) != 1 || snap.Users[0] != "alice" {
		t.Fatalf("unexpected users: %v", snap.Users)
	}
	if len(snap.Rosters["alice"]) != 1 || len(snap.Rosters["alice"][0]) != 1 {
		t.Fatalf("unexpected rosters: %v", snap.Rosters["alice"])
	}
	if snap.Rosters["alice"][0][0] != "Kohli" {
		t.Fatalf("unexpected pick: %v", snap.Rosters["alice"][0])
	}
	if snap.Points["Kohli"] != 10 {
		t.Fatalf("points = %d, want the pre-mutation 10", snap.Points["Kohli"])
	}
}

func TestStore_CloseFlushesAfterFailedSave(t *testing.T) {
	store, gw := newTestStore(t)
	contests := NewContestRepository(store)

	gw.failSave = true
	if err := contests.CreateMatch(t.Context(), "m"); !errors.Is(err, persistence.ErrSaveFailed) {
		t.Fatalf("expected ErrSaveFailed, got %v", err)
	}

	gw.failSave = false
	if err := store.Close(t.Context()); err != nil {
		t.Fatalf("close: %v", err)
	}
	if gw.saved == nil {
		t.Fatal("close must persist the document")
	}
	if _, ok := gw.saved.Matches["m"]; !ok {
		t.Fatal("teardown save must include the unsaved mutation")
	}
}
