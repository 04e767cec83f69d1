// Package counter owns the two tally digits and keeps them within 0..9.
//
// Every mutation is persisted synchronously through the [Persistence] port
// and then pushed to the [Display] port, so the next input event always
// observes a saved, rendered state.
package counter

import (
	"log/slog"

	"github.com/inovacc/stitchr/internal/model"
)

// Persistence loads and saves the counter record.
// Load reports false when no usable record exists.
type Persistence interface {
	Load() (model.CounterState, bool)
	Save(state model.CounterState) error
}

// Display re-renders a single digit.
type Display interface {
	RenderDigit(d model.Digit, value int)
}

// Store holds the counter state. It is not safe for concurrent use; input
// is serialized by the host event loop.
type Store struct {
	state   model.CounterState
	persist Persistence
	display Display
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithDisplay attaches the display notified after every mutation.
func WithDisplay(d Display) Option {
	return func(s *Store) {
		s.display = d
	}
}

// WithLogger overrides slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// New returns a Store at {0,0}. Call Load to restore the persisted record.
func New(p Persistence, opts ...Option) *Store {
	s := &Store{persist: p}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// SetDisplay replaces the display. Used when the view is built after the store.
func (s *Store) SetDisplay(d Display) {
	s.display = d
}

// State returns a snapshot of both digits.
func (s *Store) State() model.CounterState {
	return s.state
}

// Load restores the persisted record. A missing or malformed record leaves
// the state at {0,0}. The display is always refreshed.
func (s *Store) Load() {
	s.state = model.CounterState{}

	if s.persist != nil {
		if st, ok := s.persist.Load(); ok && st.Valid() {
			s.state = st
		}
	}

	s.logger.Debug("counter loaded", "left", s.state.Left, "right", s.state.Right)
	s.render()
}

// Increment adds one to the digit. The left digit wraps 9 to 0; the right
// digit wraps 9 to 0 and carries one into the left digit.
func (s *Store) Increment(d model.Digit) {
	switch d {
	case model.DigitLeft:
		s.state.Left = (s.state.Left + 1) % 10
	case model.DigitRight:
		s.state.Right++
		if s.state.Right > 9 {
			s.state.Right = 0
			s.state.Left = (s.state.Left + 1) % 10
		}
	default:
		return
	}

	s.commit("increment", d)
}

// Decrement subtracts one from the digit, stopping at 0. It never borrows
// from the left digit. The state is still saved and rendered at the floor.
func (s *Store) Decrement(d model.Digit) {
	switch d {
	case model.DigitLeft:
		if s.state.Left > 0 {
			s.state.Left--
		}
	case model.DigitRight:
		if s.state.Right > 0 {
			s.state.Right--
		}
	default:
		return
	}

	s.commit("decrement", d)
}

// ResetDigit sets the digit to 0.
func (s *Store) ResetDigit(d model.Digit) {
	switch d {
	case model.DigitLeft:
		s.state.Left = 0
	case model.DigitRight:
		s.state.Right = 0
	default:
		return
	}

	s.commit("reset", d)
}

// ResetAll sets both digits to 0.
func (s *Store) ResetAll() {
	s.state = model.CounterState{}
	s.commit("reset_all", model.DigitNone)
}

func (s *Store) commit(op string, d model.Digit) {
	if s.persist != nil {
		if err := s.persist.Save(s.state); err != nil {
			s.logger.Error("failed to save counter", "op", op, "digit", d.String(), "error", err)
		}
	}

	s.logger.Debug("counter updated", "op", op, "digit", d.String(), "left", s.state.Left, "right", s.state.Right)
	s.render()
}

func (s *Store) render() {
	if s.display == nil {
		return
	}

	s.display.RenderDigit(model.DigitLeft, s.state.Left)
	s.display.RenderDigit(model.DigitRight, s.state.Right)
}
