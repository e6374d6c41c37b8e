package contest

import "context"

// Repository is the match catalog. Mutations persist the full pool document
// before returning.
type Repository interface {
	CreateMatch(ctx context.Context, name string) error
	// AddTeam registers the team, resetting its player list to empty when it
	// already exists.
	AddTeam(ctx context.Context, matchName, teamName string) error
	// AppendPlayers adds the names to both the team list and the match's
	// flat player pool.
	AppendPlayers(ctx context.Context, matchName, teamName string, names []string) error
	GetMatch(ctx context.Context, name string) (Match, bool, error)
	ListMatches(ctx context.Context) ([]string, error)
}
