package file

import (
	"context"
	"os"
	"path/filepath"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/cricket-pool/internal/domain/state"
	"github.com/riskibarqy/cricket-pool/internal/infrastructure/persistence"
)

// Store persists the pool document as a single JSON file. Saves serialize
// into a pooled buffer, write a temp file next to the target, fsync, and
// rename over it, so a crash mid-save leaves the previous snapshot intact.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load(_ context.Context) (*state.State, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, crerr.Mark(crerr.Wrapf(err, "read %s", s.path), persistence.ErrNoSnapshot)
		}
		return nil, crerr.Mark(crerr.Wrapf(err, "read %s", s.path), persistence.ErrLoadFailed)
	}

	var doc state.State
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "decode %s", s.path), persistence.ErrLoadFailed)
	}
	doc.Normalize()

	return &doc, nil
}

func (s *Store) Save(_ context.Context, doc *state.State) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(doc); err != nil {
		return crerr.Mark(crerr.Wrap(err, "encode state"), persistence.ErrSaveFailed)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return crerr.Mark(crerr.Wrapf(err, "create %s", dir), persistence.ErrSaveFailed)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return crerr.Mark(crerr.Wrap(err, "create temp snapshot"), persistence.ErrSaveFailed)
	}
	tmpName := tmp.Name()

	if err := writeAndClose(tmp, buf.B); err != nil {
		_ = os.Remove(tmpName)
		return crerr.Mark(crerr.Wrapf(err, "write %s", tmpName), persistence.ErrSaveFailed)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return crerr.Mark(crerr.Wrapf(err, "replace %s", s.path), persistence.ErrSaveFailed)
	}

	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
