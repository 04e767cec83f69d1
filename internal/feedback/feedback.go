// Package feedback tracks the short visual pulse shown on the element a
// user just activated.
//
// A flash is purely cosmetic. It never touches counter state, and a clear
// message that arrives after a newer flash on the same target is ignored.
package feedback

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDuration is how long a flash stays visible.
const DefaultDuration = 100 * time.Millisecond

// Kind is the direction of the change being acknowledged.
type Kind int

const (
	Up Kind = iota
	Down
)

func (k Kind) String() string {
	if k == Down {
		return "down"
	}

	return "up"
}

// Target is a flashable element of the counter screen.
type Target int

const (
	NoTarget Target = iota
	LeftDigit
	RightDigit
	LeftDown
	RightDown
	ResetButton
)

func (t Target) String() string {
	switch t {
	case LeftDigit:
		return "left-digit"
	case RightDigit:
		return "right-digit"
	case LeftDown:
		return "left-down"
	case RightDown:
		return "right-down"
	case ResetButton:
		return "reset-all"
	}

	return "none"
}

// Flasher starts a flash on a target. The returned command, if any,
// delivers the matching ClearMsg.
type Flasher interface {
	Flash(target Target, kind Kind) tea.Cmd
}

// ClearMsg ends the flash started with generation Gen.
type ClearMsg struct {
	Target Target
	Gen    uint64
}

type flash struct {
	kind Kind
	gen  uint64
}

// Tracker is the Flasher used by the terminal UI. The zero value is ready
// to use and flashes for DefaultDuration.
type Tracker struct {
	// Duration is how long a flash stays visible; zero means DefaultDuration
	Duration time.Duration

	gen    uint64
	active map[Target]flash
}

// NewTracker returns a Tracker using DefaultDuration.
func NewTracker() *Tracker {
	return &Tracker{
		Duration: DefaultDuration,
		active:   make(map[Target]flash),
	}
}

// Flash marks target as flashing and schedules its clear. Flashing the same
// target again restarts the pulse. NoTarget is ignored.
func (t *Tracker) Flash(target Target, kind Kind) tea.Cmd {
	if target == NoTarget {
		return nil
	}

	if t.active == nil {
		t.active = make(map[Target]flash)
	}

	d := t.Duration
	if d <= 0 {
		d = DefaultDuration
	}

	t.gen++
	gen := t.gen
	t.active[target] = flash{kind: kind, gen: gen}

	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearMsg{Target: target, Gen: gen}
	})
}

// Clear removes the flash named by msg if it is still the current one.
// It reports whether anything changed.
func (t *Tracker) Clear(msg ClearMsg) bool {
	f, ok := t.active[msg.Target]
	if !ok || f.gen != msg.Gen {
		return false
	}

	delete(t.active, msg.Target)

	return true
}

// Active reports the flash currently shown on target.
func (t *Tracker) Active(target Target) (Kind, bool) {
	f, ok := t.active[target]
	return f.kind, ok
}
