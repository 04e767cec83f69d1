package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/inovacc/stitchr/internal/counter"
	"github.com/inovacc/stitchr/internal/model"
)

// Store is a persistence backend for the counter record.
type Store interface {
	counter.Persistence
	Ping() error
	Close() error
	Name() string
}

// BackendError wraps a failure to open a backend
type BackendError struct {
	Backend string
	Path    string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("open %s store at %s: %v", e.Backend, e.Path, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// DefaultFileName returns the file used by backend inside the application directory.
func DefaultFileName(backend string) string {
	switch backend {
	case model.BackendSQLite:
		return "stitchr.db"
	case model.BackendFile:
		return "stitchr.json"
	}

	return "stitchr.bolt"
}

// Open opens the configured backend. An empty cfg.Path resolves to the
// backend's default file in dir.
func Open(cfg model.StorageConfig, dir string) (Store, error) {
	path := cfg.Path
	if path == "" {
		path = filepath.Join(dir, DefaultFileName(cfg.Backend))
	}

	var (
		s   Store
		err error
	)

	switch cfg.Backend {
	case model.BackendBolt, "":
		s, err = NewBolt(path)
	case model.BackendSQLite:
		s, err = NewSQLite(path)
	case model.BackendFile:
		s, err = NewFile(path)
	default:
		return nil, &BackendError{Backend: cfg.Backend, Path: path, Err: errors.New("unknown backend")}
	}

	if err != nil {
		return nil, &BackendError{Backend: cfg.Backend, Path: path, Err: err}
	}

	slog.Debug("store opened", "backend", s.Name(), "path", path)

	return s, nil
}

// storedState mirrors model.CounterState with optional fields: a missing
// field counts as 0, a field of the wrong type makes the record unusable.
type storedState struct {
	Left  *int `json:"left"`
	Right *int `json:"right"`
}

func (s storedState) state() (model.CounterState, bool) {
	var st model.CounterState

	if s.Left != nil {
		st.Left = *s.Left
	}

	if s.Right != nil {
		st.Right = *s.Right
	}

	return st, st.Valid()
}

// decodeState parses a persisted record. Absent or malformed data, including
// out-of-range digits, reports false.
func decodeState(data []byte) (model.CounterState, bool) {
	if len(data) == 0 {
		return model.CounterState{}, false
	}

	var raw storedState
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Debug("discarding malformed counter record", "error", err)
		return model.CounterState{}, false
	}

	st, ok := raw.state()
	if !ok {
		slog.Debug("discarding out of range counter record", "left", st.Left, "right", st.Right)
		return model.CounterState{}, false
	}

	return st, true
}

func encodeState(st model.CounterState) ([]byte, error) {
	return json.Marshal(st)
}
