package store

import (
	"errors"
	"log/slog"
	"os"

	"github.com/inovacc/stitchr/internal/encoding"
	"github.com/inovacc/stitchr/internal/model"
)

// File stores the counter record as a small JSON document. Handy when the
// record should be readable or synced by other tools.
type File struct {
	path string
}

// NewFile returns a File store at path. The file is created on first save.
func NewFile(path string) (*File, error) {
	if err := encoding.EnsureParentDir(path); err != nil {
		return nil, err
	}

	return &File{path: path}, nil
}

// Name implements Store.
func (f *File) Name() string { return model.BackendFile }

// Ping implements Store. The file itself may not exist yet.
func (f *File) Ping() error {
	info, err := os.Stat(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err != nil {
		return err
	}

	if info.IsDir() {
		return errors.New("store path is a directory")
	}

	return nil
}

// Close implements Store.
func (f *File) Close() error { return nil }

// Load implements counter.Persistence.
func (f *File) Load() (model.CounterState, bool) {
	raw, err := encoding.LoadJSON[storedState](f.path)
	if err != nil {
		slog.Debug("discarding unreadable counter file", "path", f.path, "error", err)
		return model.CounterState{}, false
	}

	if raw == nil {
		return model.CounterState{}, false
	}

	return raw.state()
}

// Save implements counter.Persistence.
func (f *File) Save(state model.CounterState) error {
	return encoding.SaveJSON(f.path, state)
}
