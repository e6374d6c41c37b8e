package scoring

// Slot weights applied to a pick's published points. Index 0 is the
// captain, index 1 the vice-captain.
const (
	WeightCaptain     = 2.0
	WeightViceCaptain = 1.5
	WeightRegular     = 1.0
)

// WeightForSlot maps a zero-based roster slot to its score multiplier.
func WeightForSlot(slot int) float64 {
	switch slot {
	case 0:
		return WeightCaptain
	case 1:
		return WeightViceCaptain
	default:
		return WeightRegular
	}
}

// UserScore is one rankings row. Score accumulates as a float; truncation
// toward zero happens only at presentation time.
type UserScore struct {
	UserID string
	Score  float64
}

// PoolSnapshot is the rankings input captured in one consistent read: every
// user in first-appearance order, their rosters as ordered player lists, and
// the points table. All of it is copied out, so a snapshot never observes a
// mutation that lands after it was taken.
type PoolSnapshot struct {
	Users   []string
	Rosters map[string][][]string
	Points  map[string]int
}
