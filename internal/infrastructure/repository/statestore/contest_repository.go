package statestore

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/cricket-pool/internal/domain/contest"
	"github.com/riskibarqy/cricket-pool/internal/domain/state"
)

type ContestRepository struct {
	store *Store
}

func NewContestRepository(store *Store) *ContestRepository {
	return &ContestRepository{store: store}
}

func (r *ContestRepository) CreateMatch(ctx context.Context, name string) error {
	return r.store.mutate(ctx, func(doc *state.State) error {
		if _, exists := doc.Matches[name]; exists {
			return fmt.Errorf("%w: %s", contest.ErrMatchExists, name)
		}
		doc.Matches[name] = &state.TeamSheet{
			Teams:   make(map[string][]string),
			Players: []string{},
		}
		return nil
	})
}

func (r *ContestRepository) AddTeam(ctx context.Context, matchName, teamName string) error {
	return r.store.mutate(ctx, func(doc *state.State) error {
		sheet, exists := doc.Matches[matchName]
		if !exists {
			return fmt.Errorf("%w: %s", contest.ErrMatchNotFound, matchName)
		}
		// Re-adding a team resets its list. Destructive, but part of the
		// catalog contract.
		sheet.Teams[teamName] = []string{}
		return nil
	})
}

func (r *ContestRepository) AppendPlayers(ctx context.Context, matchName, teamName string, names []string) error {
	return r.store.mutate(ctx, func(doc *state.State) error {
		sheet, exists := doc.Matches[matchName]
		if !exists {
			return fmt.Errorf("%w: %s", contest.ErrMatchNotFound, matchName)
		}
		teamPlayers, exists := sheet.Teams[teamName]
		if !exists {
			return fmt.Errorf("%w: %s in match %s", contest.ErrTeamNotFound, teamName, matchName)
		}

		sheet.Teams[teamName] = append(teamPlayers, names...)
		sheet.Players = append(sheet.Players, names...)
		return nil
	})
}

func (r *ContestRepository) GetMatch(_ context.Context, name string) (contest.Match, bool, error) {
	var (
		out   contest.Match
		found bool
	)
	r.store.view(func(doc *state.State) {
		sheet, exists := doc.Matches[name]
		if !exists {
			return
		}
		found = true
		out = contest.Match{
			Name:    name,
			Teams:   cloneTeams(sheet.Teams),
			Players: append([]string(nil), sheet.Players...),
		}
	})
	return out, found, nil
}

func (r *ContestRepository) ListMatches(_ context.Context) ([]string, error) {
	var names []string
	r.store.view(func(doc *state.State) {
		names = make([]string, 0, len(doc.Matches))
		for name := range doc.Matches {
			names = append(names, name)
		}
	})
	sort.Strings(names)
	return names, nil
}

func cloneTeams(teams map[string][]string) map[string][]string {
	out := make(map[string][]string, len(teams))
	for name, players := range teams {
		out[name] = append([]string(nil), players...)
	}
	return out
}
