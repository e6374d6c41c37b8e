package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-pool/internal/domain/state"
	"github.com/riskibarqy/cricket-pool/internal/infrastructure/persistence"
)

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match_data.json")
	store := NewStore(path)
	ctx := context.Background()

	doc := state.New()
	doc.Matches["IND vs AUS"] = &state.TeamSheet{
		Teams:   map[string][]string{"India": {"Kohli", "Bumrah"}},
		Players: []string{"Kohli", "Bumrah"},
	}
	doc.UserTeams.Set("alice", "IND vs AUS", []string{"Kohli"})
	doc.Points["Kohli"] = 87
	doc.Amounts["alice"] = map[string]int64{"IND vs AUS": 500}

	require.NoError(t, store.Save(ctx, doc))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Kohli", "Bumrah"}, loaded.Matches["IND vs AUS"].Players)
	require.Equal(t, []string{"alice"}, loaded.UserTeams.Users())
	require.Equal(t, 87, loaded.Points["Kohli"])
	require.Equal(t, int64(500), loaded.Amounts["alice"]["IND vs AUS"])
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, persistence.ErrNoSnapshot)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"matches": [truncated`), 0o644))

	_, err := NewStore(path).Load(context.Background())
	require.ErrorIs(t, err, persistence.ErrLoadFailed)
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "match_data.json"))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Save(ctx, state.New()))
	}

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	require.Empty(t, leftovers)
}

func TestStore_LoadSurvivesInterruptedSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "match_data.json")
	store := NewStore(path)
	ctx := context.Background()

	committed := state.New()
	committed.Points["Kohli"] = 87
	require.NoError(t, store.Save(ctx, committed))

	// A crash between temp-file write and rename leaves a truncated temp
	// artifact next to the snapshot. It must not shadow the committed file.
	truncated := []byte(`{"matches": {}, "user_te`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "match_data.json.1234.tmp"), truncated, 0o644))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 87, loaded.Points["Kohli"])
}

func TestStore_SaveOverwritesPreviousSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match_data.json")
	store := NewStore(path)
	ctx := context.Background()

	first := state.New()
	first.Points["Kohli"] = 10
	require.NoError(t, store.Save(ctx, first))

	second := state.New()
	second.Points["Kohli"] = 99
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 99, loaded.Points["Kohli"])
}
