package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/inovacc/stitchr/internal/application"
	"github.com/inovacc/stitchr/internal/core"
	"github.com/inovacc/stitchr/internal/counter"
	"github.com/inovacc/stitchr/internal/encoding"
	"github.com/inovacc/stitchr/internal/gesture"
	"github.com/inovacc/stitchr/internal/model"
	"github.com/inovacc/stitchr/internal/store"
)

// session is an open backend with a loaded counter on top of it.
type session struct {
	backend store.Store
	ctrl    *core.Controller
}

func openSession() (*session, error) {
	dir, err := application.EnsureApplicationDirectory()
	if err != nil {
		return nil, err
	}

	backend, err := store.Open(cfg.Storage, dir)
	if err != nil {
		return nil, err
	}

	if err := backend.Ping(); err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("%s store is not usable: %w", backend.Name(), err)
	}

	c := counter.New(backend, counter.WithLogger(slog.Default().With("component", "counter")))
	c.Load()

	classifier := gesture.New(gesture.FromModel(cfg.Gesture))

	return &session{
		backend: backend,
		ctrl:    core.NewController(c, classifier),
	}, nil
}

func (s *session) Close() {
	if err := s.backend.Close(); err != nil {
		slog.Warn("failed to close store", "backend", s.backend.Name(), "error", err)
	}
}

func (s *session) State() model.CounterState {
	return s.ctrl.Store().State()
}

// printState writes the counter either as a short human line or as JSON.
func printState(w io.Writer, st model.CounterState, asJSON bool) error {
	if asJSON {
		data, err := encoding.ToJSON(st)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(data))

		return err
	}

	_, err := fmt.Fprintf(w, "rows %d  stitches %d\n", st.Left, st.Right)

	return err
}

// digitArg resolves an optional digit argument. No argument means both digits.
func digitArg(args []string) (model.Digit, error) {
	if len(args) == 0 {
		return model.DigitNone, nil
	}

	return core.ParseDigit(args[0])
}
