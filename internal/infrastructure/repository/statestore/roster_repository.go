package statestore

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/cricket-pool/internal/domain/matchlock"
	"github.com/riskibarqy/cricket-pool/internal/domain/roster"
	"github.com/riskibarqy/cricket-pool/internal/domain/state"
)

type RosterRepository struct {
	store *Store
}

func NewRosterRepository(store *Store) *RosterRepository {
	return &RosterRepository{store: store}
}

func (r *RosterRepository) Get(_ context.Context, userID, matchName string) (roster.Roster, bool, error) {
	var (
		out   roster.Roster
		found bool
	)
	r.store.view(func(doc *state.State) {
		players, exists := doc.UserTeams.Roster(userID, matchName)
		if !exists {
			return
		}
		found = true
		out = roster.Roster{
			UserID:    userID,
			MatchName: matchName,
			Players:   append([]string(nil), players...),
		}
	})
	return out, found, nil
}

func (r *RosterRepository) ListByUser(_ context.Context, userID string) ([]roster.Roster, error) {
	var out []roster.Roster
	r.store.view(func(doc *state.State) {
		rosters, exists := doc.UserTeams.ByUser(userID)
		if !exists {
			return
		}
		matchNames := make([]string, 0, len(rosters))
		for matchName := range rosters {
			matchNames = append(matchNames, matchName)
		}
		sort.Strings(matchNames)

		out = make([]roster.Roster, 0, len(matchNames))
		for _, matchName := range matchNames {
			out = append(out, roster.Roster{
				UserID:    userID,
				MatchName: matchName,
				Players:   append([]string(nil), rosters[matchName]...),
			})
		}
	})
	return out, nil
}

func (r *RosterRepository) AddPlayer(ctx context.Context, userID, matchName, player string) (int, error) {
	slot := -1
	err := r.store.mutate(ctx, func(doc *state.State) error {
		if r.store.lockedLocked(matchName) {
			return fmt.Errorf("%w: %s", matchlock.ErrLocked, matchName)
		}

		players, _ := doc.UserTeams.Roster(userID, matchName)
		if len(players) >= roster.MaxPlayers {
			return fmt.Errorf("%w: %s already has %d players", roster.ErrFull, matchName, roster.MaxPlayers)
		}
		for _, existing := range players {
			if existing == player {
				return fmt.Errorf("%w: %s", roster.ErrDuplicate, player)
			}
		}

		slot = len(players)
		doc.UserTeams.Set(userID, matchName, append(players, player))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return slot, nil
}

func (r *RosterRepository) RemovePlayer(ctx context.Context, userID, matchName, player string) ([]string, error) {
	var remaining []string
	err := r.store.mutate(ctx, func(doc *state.State) error {
		if r.store.lockedLocked(matchName) {
			return fmt.Errorf("%w: %s", matchlock.ErrLocked, matchName)
		}

		players, exists := doc.UserTeams.Roster(userID, matchName)
		if !exists {
			return fmt.Errorf("%w: %s", roster.ErrPlayerNotFound, player)
		}

		kept := make([]string, 0, len(players))
		removed := false
		for _, existing := range players {
			if existing == player {
				removed = true
				continue
			}
			kept = append(kept, existing)
		}
		if !removed {
			return fmt.Errorf("%w: %s", roster.ErrPlayerNotFound, player)
		}

		doc.UserTeams.Set(userID, matchName, kept)
		remaining = append([]string(nil), kept...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return remaining, nil
}

func (r *RosterRepository) Clear(ctx context.Context, userID, matchName string) error {
	return r.store.mutate(ctx, func(doc *state.State) error {
		if r.store.lockedLocked(matchName) {
			return fmt.Errorf("%w: %s", matchlock.ErrLocked, matchName)
		}
		doc.UserTeams.Delete(userID, matchName)
		return nil
	})
}
