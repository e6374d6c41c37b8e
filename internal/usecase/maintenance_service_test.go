package usecase

import (
	"errors"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/cricket-pool/internal/domain/matchlock"
	"github.com/riskibarqy/cricket-pool/internal/domain/state"
	"github.com/riskibarqy/cricket-pool/internal/infrastructure/repository/statestore"
)

func TestMaintenanceService_ResetAll_ClearsTablesKeepsLocks(t *testing.T) {
	store := newTestStore(t)
	catalog := NewCatalogService(statestore.NewContestRepository(store))
	rosters := NewRosterService(statestore.NewRosterRepository(store))
	locks := NewLockService(statestore.NewLockRegistry(store))
	svc := NewMaintenanceService(store)

	if err := catalog.CreateMatch(t.Context(), "ind-vs-aus"); err != nil {
		t.Fatalf("create match failed: %v", err)
	}
	if _, err := rosters.AddPlayer(t.Context(), "alice", "ind-vs-aus", "Virat Kohli"); err != nil {
		t.Fatalf("add pick failed: %v", err)
	}
	if err := locks.LockMatch(t.Context(), "ind-vs-aus"); err != nil {
		t.Fatalf("lock match failed: %v", err)
	}

	if err := svc.ResetAll(t.Context()); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	matches, err := catalog.ListMatches(t.Context())
	if err != nil {
		t.Fatalf("list matches failed: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected empty catalog after reset, got %d matches", len(matches))
	}
	if _, err := rosters.Get(t.Context(), "alice", "ind-vs-aus"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after reset, got %v", err)
	}

	locked, err := locks.IsLocked(t.Context(), "ind-vs-aus")
	if err != nil {
		t.Fatalf("is locked failed: %v", err)
	}
	if !locked {
		t.Fatal("reset must not release match locks")
	}
}

func TestMaintenanceService_ResetAll_LocksStillEnforced(t *testing.T) {
	store := newTestStore(t)
	rosters := NewRosterService(statestore.NewRosterRepository(store))
	locks := NewLockService(statestore.NewLockRegistry(store))
	svc := NewMaintenanceService(store)

	if err := locks.LockMatch(t.Context(), "ind-vs-aus"); err != nil {
		t.Fatalf("lock match failed: %v", err)
	}
	if err := svc.ResetAll(t.Context()); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	_, err := rosters.AddPlayer(t.Context(), "alice", "ind-vs-aus", "Virat Kohli")
	if !errors.Is(err, matchlock.ErrLocked) {
		t.Fatalf("expected ErrLocked after reset, got %v", err)
	}
}

func TestMaintenanceService_ExportSnapshot(t *testing.T) {
	store := newTestStore(t)
	catalog := NewCatalogService(statestore.NewContestRepository(store))
	svc := NewMaintenanceService(store)

	if err := catalog.CreateMatch(t.Context(), "ind-vs-aus"); err != nil {
		t.Fatalf("create match failed: %v", err)
	}

	payload, err := svc.ExportSnapshot(t.Context())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var doc state.State
	if err := sonic.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("exported snapshot is not valid state JSON: %v", err)
	}
	if _, ok := doc.Matches["ind-vs-aus"]; !ok {
		t.Fatal("exported snapshot missing created match")
	}
}
