package usecase

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/cricket-pool/internal/domain/contest"
	"github.com/riskibarqy/cricket-pool/internal/infrastructure/persistence/file"
	"github.com/riskibarqy/cricket-pool/internal/infrastructure/repository/statestore"
	"github.com/riskibarqy/cricket-pool/internal/platform/logging"
)

func newTestStore(t *testing.T) *statestore.Store {
	t.Helper()

	gateway := file.NewStore(filepath.Join(t.TempDir(), "state.json"))
	return statestore.New(t.Context(), gateway, logging.NewNop())
}

func TestCatalogService_CreateMatch_RejectsDuplicate(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(statestore.NewContestRepository(store))

	if err := svc.CreateMatch(t.Context(), "ind-vs-aus"); err != nil {
		t.Fatalf("create match failed: %v", err)
	}
	err := svc.CreateMatch(t.Context(), "ind-vs-aus")
	if !errors.Is(err, contest.ErrMatchExists) {
		t.Fatalf("expected ErrMatchExists, got %v", err)
	}
}

func TestCatalogService_CreateMatch_RequiresName(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(statestore.NewContestRepository(store))

	err := svc.CreateMatch(t.Context(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCatalogService_AddPlayers_CleansAnnouncementList(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(statestore.NewContestRepository(store))

	if err := svc.CreateMatch(t.Context(), "ind-vs-aus"); err != nil {
		t.Fatalf("create match failed: %v", err)
	}
	if err := svc.AddTeam(t.Context(), "ind-vs-aus", "india"); err != nil {
		t.Fatalf("add team failed: %v", err)
	}

	added, err := svc.AddPlayers(t.Context(), "ind-vs-aus", "india", []string{
		"Virat Kohli (c)", " Rohit Sharma ", "", " (),",
	})
	if err != nil {
		t.Fatalf("add players failed: %v", err)
	}
	want := []string{"Virat Kohli (c", "Rohit Sharma"}
	if len(added) != len(want) {
		t.Fatalf("unexpected added count: %d", len(added))
	}
	for i := range want {
		if added[i] != want[i] {
			t.Fatalf("added[%d] = %q, want %q", i, added[i], want[i])
		}
	}

	players, err := svc.ListTeamPlayers(t.Context(), "ind-vs-aus", "india")
	if err != nil {
		t.Fatalf("list team players failed: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("unexpected team player count: %d", len(players))
	}

	pool, err := svc.ListMatchPlayers(t.Context(), "ind-vs-aus")
	if err != nil {
		t.Fatalf("list match players failed: %v", err)
	}
	if len(pool) != 2 {
		t.Fatalf("unexpected match pool size: %d", len(pool))
	}
}

func TestCatalogService_AddPlayers_RejectsEmptyList(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(statestore.NewContestRepository(store))

	if err := svc.CreateMatch(t.Context(), "ind-vs-aus"); err != nil {
		t.Fatalf("create match failed: %v", err)
	}
	if err := svc.AddTeam(t.Context(), "ind-vs-aus", "india"); err != nil {
		t.Fatalf("add team failed: %v", err)
	}

	_, err := svc.AddPlayers(t.Context(), "ind-vs-aus", "india", []string{" (),", ""})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCatalogService_AddTeam_ResetsExistingPlayers(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(statestore.NewContestRepository(store))

	if err := svc.CreateMatch(t.Context(), "ind-vs-aus"); err != nil {
		t.Fatalf("create match failed: %v", err)
	}
	if err := svc.AddTeam(t.Context(), "ind-vs-aus", "india"); err != nil {
		t.Fatalf("add team failed: %v", err)
	}
	if _, err := svc.AddPlayers(t.Context(), "ind-vs-aus", "india", []string{"Virat Kohli"}); err != nil {
		t.Fatalf("add players failed: %v", err)
	}

	if err := svc.AddTeam(t.Context(), "ind-vs-aus", "india"); err != nil {
		t.Fatalf("re-add team failed: %v", err)
	}
	players, err := svc.ListTeamPlayers(t.Context(), "ind-vs-aus", "india")
	if err != nil {
		t.Fatalf("list team players failed: %v", err)
	}
	if len(players) != 0 {
		t.Fatalf("expected empty roster after team reset, got %d players", len(players))
	}
}

func TestCatalogService_ListTeams_MissingMatch(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(statestore.NewContestRepository(store))

	_, err := svc.ListTeams(t.Context(), "nope")
	if !errors.Is(err, contest.ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestCatalogService_ListTeamPlayers_MissingTeam(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(statestore.NewContestRepository(store))

	if err := svc.CreateMatch(t.Context(), "ind-vs-aus"); err != nil {
		t.Fatalf("create match failed: %v", err)
	}

	_, err := svc.ListTeamPlayers(t.Context(), "ind-vs-aus", "england")
	if !errors.Is(err, contest.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestCatalogService_ListMatches_Sorted(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(statestore.NewContestRepository(store))

	for _, name := range []string{"wi-vs-nz", "aus-vs-eng", "ind-vs-aus"} {
		if err := svc.CreateMatch(t.Context(), name); err != nil {
			t.Fatalf("create match %s failed: %v", name, err)
		}
	}

	matches, err := svc.ListMatches(t.Context())
	if err != nil {
		t.Fatalf("list matches failed: %v", err)
	}
	want := []string{"aus-vs-eng", "ind-vs-aus", "wi-vs-nz"}
	if len(matches) != len(want) {
		t.Fatalf("unexpected match count: %d", len(matches))
	}
	for i := range want {
		if matches[i] != want[i] {
			t.Fatalf("matches[%d] = %q, want %q", i, matches[i], want[i])
		}
	}
}
