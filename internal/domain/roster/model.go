package roster

import "errors"

// MaxPlayers is the playing-XI cap per (user, match) roster.
const MaxPlayers = 11

var (
	ErrFull           = errors.New("roster is full")
	ErrDuplicate      = errors.New("player already picked")
	ErrPlayerNotFound = errors.New("player not in roster")
)

// Role is derived from a pick's slot, never stored. Removing an earlier pick
// shifts later picks down a slot, and their roles move with them.
type Role string

const (
	RoleCaptain     Role = "captain"
	RoleViceCaptain Role = "vice_captain"
	RoleRegular     Role = "regular"
)

// RoleForSlot maps a zero-based slot to its role.
func RoleForSlot(slot int) Role {
	switch slot {
	case 0:
		return RoleCaptain
	case 1:
		return RoleViceCaptain
	default:
		return RoleRegular
	}
}

// Roster is one user's ordered picks for a match.
type Roster struct {
	UserID    string
	MatchName string
	Players   []string
}
