package statestore

import (
	"context"
	"sort"

	"github.com/riskibarqy/cricket-pool/internal/domain/scoring"
	"github.com/riskibarqy/cricket-pool/internal/domain/state"
)

type ScoringRepository struct {
	store *Store
}

func NewScoringRepository(store *Store) *ScoringRepository {
	return &ScoringRepository{store: store}
}

func (r *ScoringRepository) SetPoints(ctx context.Context, player string, points int) error {
	return r.store.mutate(ctx, func(doc *state.State) error {
		doc.Points[player] = points
		return nil
	})
}

func (r *ScoringRepository) GetPoints(_ context.Context, player string) (int, bool, error) {
	var (
		points int
		found  bool
	)
	r.store.view(func(doc *state.State) {
		points, found = doc.Points[player]
	})
	return points, found, nil
}

func (r *ScoringRepository) Snapshot(_ context.Context) (map[string]int, error) {
	var out map[string]int
	r.store.view(func(doc *state.State) {
		out = make(map[string]int, len(doc.Points))
		for player, points := range doc.Points {
			out[player] = points
		}
	})
	return out, nil
}

// PoolSnapshot copies users, rosters and points under one read lock. The
// copies detach from the live document, so concurrent mutations cannot leak
// into a rankings pass once the snapshot is taken.
func (r *ScoringRepository) PoolSnapshot(_ context.Context) (scoring.PoolSnapshot, error) {
	var snap scoring.PoolSnapshot
	r.store.view(func(doc *state.State) {
		snap.Users = doc.UserTeams.Users()

		snap.Rosters = make(map[string][][]string, len(snap.Users))
		for _, userID := range snap.Users {
			rosters, exists := doc.UserTeams.ByUser(userID)
			if !exists {
				continue
			}
			matchNames := make([]string, 0, len(rosters))
			for matchName := range rosters {
				matchNames = append(matchNames, matchName)
			}
			sort.Strings(matchNames)

			copied := make([][]string, 0, len(matchNames))
			for _, matchName := range matchNames {
				copied = append(copied, append([]string(nil), rosters[matchName]...))
			}
			snap.Rosters[userID] = copied
		}

		snap.Points = make(map[string]int, len(doc.Points))
		for player, points := range doc.Points {
			snap.Points[player] = points
		}
	})
	return snap, nil
}
