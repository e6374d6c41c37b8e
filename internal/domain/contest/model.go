package contest

import (
	"errors"
	"strings"
)

var (
	ErrMatchExists   = errors.New("match already exists")
	ErrMatchNotFound = errors.New("match not found")
	ErrTeamNotFound  = errors.New("team not found")
)

// Match is the catalog view of one fixture: team rosters plus the flat pool
// of every player announced for it.
type Match struct {
	Name    string
	Teams   map[string][]string
	Players []string
}

// playerNameCutset covers the junk that rides along when announcement lists
// are pasted in: wrapping parens, trailing commas, padding.
const playerNameCutset = " (),"

// CleanPlayerName strips padding and stray punctuation from a single pasted
// player name.
func CleanPlayerName(raw string) string {
	return strings.Trim(raw, playerNameCutset)
}

// SplitPlayerList expands a comma-separated announcement into cleaned player
// names, skipping entries that clean down to nothing.
func SplitPlayerList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		name := CleanPlayerName(part)
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}
