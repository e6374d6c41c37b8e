package postgres

import (
	"context"
	"database/sql"
	"errors"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/cricket-pool/internal/domain/state"
	"github.com/riskibarqy/cricket-pool/internal/infrastructure/persistence"
)

const (
	selectSnapshotQuery = `SELECT payload FROM state_snapshots WHERE id = 1`
	upsertSnapshotQuery = `INSERT INTO state_snapshots (id, payload, updated_at)
VALUES (1, $1, now())
ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`
)

// Store keeps the pool document as a single JSONB row. The upsert replaces
// the payload in one statement, so readers see the old or the new snapshot,
// never a mix.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Load(ctx context.Context) (*state.State, error) {
	var payload []byte
	if err := s.db.GetContext(ctx, &payload, selectSnapshotQuery); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, crerr.Mark(crerr.Wrap(err, "select state snapshot"), persistence.ErrNoSnapshot)
		}
		return nil, crerr.Mark(crerr.Wrap(err, "select state snapshot"), persistence.ErrLoadFailed)
	}

	var doc state.State
	if err := sonic.Unmarshal(payload, &doc); err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "decode state snapshot"), persistence.ErrLoadFailed)
	}
	doc.Normalize()

	return &doc, nil
}

func (s *Store) Save(ctx context.Context, doc *state.State) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(doc); err != nil {
		return crerr.Mark(crerr.Wrap(err, "encode state"), persistence.ErrSaveFailed)
	}

	if _, err := s.db.ExecContext(ctx, upsertSnapshotQuery, buf.B); err != nil {
		return crerr.Mark(crerr.Wrap(err, "upsert state snapshot"), persistence.ErrSaveFailed)
	}

	return nil
}
