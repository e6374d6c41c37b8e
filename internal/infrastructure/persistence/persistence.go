package persistence

import (
	"context"
	"errors"

	"github.com/riskibarqy/cricket-pool/internal/domain/state"
)

var (
	// ErrNoSnapshot means no document has ever been saved. Callers start
	// from the canonical empty state.
	ErrNoSnapshot = errors.New("no state snapshot")
	// ErrLoadFailed marks snapshots that exist but cannot be decoded.
	ErrLoadFailed = errors.New("state load failed")
	// ErrSaveFailed marks persistence failures on write. The in-memory
	// mutation that triggered the save is retained by the caller.
	ErrSaveFailed = errors.New("state save failed")
)

// Gateway persists the full pool document. Save replaces the previous
// snapshot atomically: a reader never observes a partially written document.
type Gateway interface {
	Load(ctx context.Context) (*state.State, error)
	Save(ctx context.Context, doc *state.State) error
}
