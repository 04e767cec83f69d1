// Package input translates raw bubbletea messages into normalized gesture
// events.
//
// The adapter is chosen once at startup from the configured or detected
// device capability. [PointerAdapter] treats a mouse click as a discrete tap;
// [TouchAdapter] treats a press-drag-release over a digit as a touch gesture
// and never produces click taps, so a synthesized click cannot be counted
// twice.
package input

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/stitchr/internal/gesture"
	"github.com/inovacc/stitchr/internal/model"
)

// Mode is a resolved input capability.
type Mode string

const (
	Pointer Mode = model.InputModePointer
	Touch   Mode = model.InputModeTouch
)

// Area is a region of the counter screen.
type Area int

const (
	AreaNone Area = iota
	AreaDigit
	AreaDecrement
	AreaReset
)

// Hit is the result of hit-testing a screen cell.
type Hit struct {
	Area  Area
	Digit model.Digit
}

// HitTester maps a terminal cell to the element drawn there.
type HitTester interface {
	HitTest(x, y int) Hit
}

// Adapter turns a bubbletea message into at most one gesture event.
type Adapter interface {
	Translate(msg tea.Msg, hit HitTester) (gesture.Event, bool)
	Mode() Mode
}

// Detect resolves the configured mode. "auto" selects touch on Termux or
// when STITCHR_TOUCH=1, pointer otherwise. getenv defaults to os.Getenv.
func Detect(configured string, getenv func(string) string) Mode {
	if getenv == nil {
		getenv = os.Getenv
	}

	switch configured {
	case model.InputModePointer:
		return Pointer
	case model.InputModeTouch:
		return Touch
	}

	if getenv("TERMUX_VERSION") != "" || getenv("STITCHR_TOUCH") == "1" {
		return Touch
	}

	return Pointer
}

// New returns the adapter for mode. cellHeight converts terminal rows to
// pixels for the touch thresholds; non-positive values default to 16.
func New(mode Mode, cellHeight float64) Adapter {
	if mode == Touch {
		return NewTouchAdapter(cellHeight)
	}

	return &PointerAdapter{}
}

func keyEvent(msg tea.KeyMsg) gesture.Event {
	return gesture.Event{Kind: gesture.Key, Key: msg.String()}
}

func isLeftRelease(m tea.MouseMsg) bool {
	// X10 encoding cannot tell which button was released
	return m.Action == tea.MouseActionRelease &&
		(m.Button == tea.MouseButtonLeft || m.Button == tea.MouseButtonNone)
}

func isLeftPress(m tea.MouseMsg) bool {
	return m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft
}

// PointerAdapter handles mouse and keyboard terminals.
type PointerAdapter struct{}

// Mode implements Adapter.
func (a *PointerAdapter) Mode() Mode { return Pointer }

// Translate implements Adapter.
func (a *PointerAdapter) Translate(msg tea.Msg, hit HitTester) (gesture.Event, bool) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		return keyEvent(m), true

	case tea.MouseMsg:
		if !isLeftRelease(m) || hit == nil {
			return gesture.Event{}, false
		}

		h := hit.HitTest(m.X, m.Y)

		switch h.Area {
		case AreaDigit:
			return gesture.Event{Kind: gesture.Tap, Digit: h.Digit}, true
		case AreaDecrement:
			return gesture.Event{Kind: gesture.SecondaryPress, Digit: h.Digit}, true
		case AreaReset:
			return gesture.Event{Kind: gesture.ResetAll}, true
		}
	}

	return gesture.Event{}, false
}

// TouchAdapter handles touch terminals, where a drag on a digit is a swipe.
type TouchAdapter struct {
	cellHeight float64

	// digit under the press that started the current gesture, if any
	dragging model.Digit
	// control under the press when it did not start on a digit
	pressed Hit
}

// NewTouchAdapter returns a TouchAdapter.
func NewTouchAdapter(cellHeight float64) *TouchAdapter {
	if cellHeight <= 0 {
		cellHeight = model.DefaultConfig().Input.CellHeight
	}

	return &TouchAdapter{cellHeight: cellHeight}
}

// Mode implements Adapter.
func (a *TouchAdapter) Mode() Mode { return Touch }

// Translate implements Adapter.
func (a *TouchAdapter) Translate(msg tea.Msg, hit HitTester) (gesture.Event, bool) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		return keyEvent(m), true

	case tea.MouseMsg:
		if hit == nil {
			return gesture.Event{}, false
		}

		y := float64(m.Y) * a.cellHeight

		switch {
		case isLeftPress(m):
			h := hit.HitTest(m.X, m.Y)
			a.pressed = Hit{}
			a.dragging = model.DigitNone

			if h.Area == AreaDigit {
				a.dragging = h.Digit
				return gesture.Event{Kind: gesture.SwipeStart, Digit: h.Digit, Y: y}, true
			}

			a.pressed = h

			return gesture.Event{}, false

		case m.Action == tea.MouseActionMotion:
			if a.dragging == model.DigitNone {
				return gesture.Event{}, false
			}

			return gesture.Event{Kind: gesture.SwipeMove, Digit: a.dragging, Y: y}, true

		case isLeftRelease(m):
			if d := a.dragging; d != model.DigitNone {
				a.dragging = model.DigitNone
				return gesture.Event{Kind: gesture.SwipeEnd, Digit: d, Y: y}, true
			}

			pressed := a.pressed
			a.pressed = Hit{}

			// controls fire only when released over the element that was pressed
			if h := hit.HitTest(m.X, m.Y); h != pressed {
				return gesture.Event{}, false
			}

			switch pressed.Area {
			case AreaDecrement:
				return gesture.Event{Kind: gesture.SecondaryPress, Digit: pressed.Digit}, true
			case AreaReset:
				return gesture.Event{Kind: gesture.ResetAll}, true
			}
		}
	}

	return gesture.Event{}, false
}
