package store

import (
	"log/slog"

	"github.com/inovacc/stitchr/internal/application"
	"github.com/inovacc/stitchr/internal/model"
	"github.com/inovacc/stitchr/internal/store/sqlite"
)

// SQLiteWrapper adapts the sqlite key-value store to Store.
type SQLiteWrapper struct {
	store *sqlite.Store
}

// NewSQLite opens or creates the SQLite database at path.
func NewSQLite(path string) (*SQLiteWrapper, error) {
	s, err := sqlite.New(path)
	if err != nil {
		return nil, err
	}

	return &SQLiteWrapper{store: s}, nil
}

// Name implements Store.
func (w *SQLiteWrapper) Name() string { return model.BackendSQLite }

// Ping implements Store.
func (w *SQLiteWrapper) Ping() error {
	return w.store.Ping()
}

// Close implements Store.
func (w *SQLiteWrapper) Close() error {
	return w.store.Close()
}

// Load implements counter.Persistence.
func (w *SQLiteWrapper) Load() (model.CounterState, bool) {
	data, err := w.store.Get(application.StorageKey)
	if err != nil {
		slog.Warn("failed to read counter record", "backend", model.BackendSQLite, "error", err)
		return model.CounterState{}, false
	}

	return decodeState(data)
}

// Save implements counter.Persistence.
func (w *SQLiteWrapper) Save(state model.CounterState) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}

	return w.store.Put(application.StorageKey, data)
}
