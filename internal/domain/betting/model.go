package betting

import "errors"

// ErrInvalidAmount rejects zero and negative stakes. Amounts are whole
// units only.
var ErrInvalidAmount = errors.New("stake amount must be a positive integer")

// Stake is one user's wager on one match. Re-staking overwrites.
type Stake struct {
	UserID    string
	MatchName string
	Amount    int64
}
