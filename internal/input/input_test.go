package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/stitchr/internal/gesture"
	"github.com/inovacc/stitchr/internal/model"
	"github.com/stretchr/testify/assert"
)

// gridHits lays out a tiny screen: row 0 holds both digits (left at x<5,
// right at x>=5), row 1 the decrement buttons, row 2 the reset button.
// Rows 3..9 extend the digits so drags stay on them.
type gridHits struct{}

func (gridHits) HitTest(x, y int) Hit {
	d := model.DigitLeft
	if x >= 5 {
		d = model.DigitRight
	}

	switch {
	case y == 1:
		return Hit{Area: AreaDecrement, Digit: d}
	case y == 2:
		return Hit{Area: AreaReset}
	case y == 0 || (y >= 3 && y <= 9):
		return Hit{Area: AreaDigit, Digit: d}
	}

	return Hit{}
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func release(x, y int) tea.MouseMsg {
	return mouse(x, y, tea.MouseActionRelease, tea.MouseButtonLeft)
}

func press(x, y int) tea.MouseMsg {
	return mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft)
}

func motion(x, y int) tea.MouseMsg {
	return mouse(x, y, tea.MouseActionMotion, tea.MouseButtonLeft)
}

func TestDetect(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}

	tests := []struct {
		name       string
		configured string
		vars       map[string]string
		want       Mode
	}{
		{"explicit pointer on termux", model.InputModePointer, map[string]string{"TERMUX_VERSION": "0.118"}, Pointer},
		{"explicit touch", model.InputModeTouch, nil, Touch},
		{"auto on termux", model.InputModeAuto, map[string]string{"TERMUX_VERSION": "0.118"}, Touch},
		{"auto with override", model.InputModeAuto, map[string]string{"STITCHR_TOUCH": "1"}, Touch},
		{"auto on desktop", model.InputModeAuto, nil, Pointer},
		{"unknown falls back to auto", "stylus", nil, Pointer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.configured, env(tt.vars)))
		})
	}
}

func TestNew(t *testing.T) {
	assert.Equal(t, Pointer, New(Pointer, 16).Mode())
	assert.Equal(t, Touch, New(Touch, 16).Mode())
	assert.IsType(t, &TouchAdapter{}, New(Touch, 0))
}

func TestPointerAdapter_Translate(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.Msg
		want   gesture.Event
		wantOK bool
	}{
		{"click on left digit", release(1, 0), gesture.Event{Kind: gesture.Tap, Digit: model.DigitLeft}, true},
		{"click on right digit", release(7, 0), gesture.Event{Kind: gesture.Tap, Digit: model.DigitRight}, true},
		{"click on right decrement", release(6, 1), gesture.Event{Kind: gesture.SecondaryPress, Digit: model.DigitRight}, true},
		{"click on reset", release(3, 2), gesture.Event{Kind: gesture.ResetAll}, true},
		{"x10 release", mouse(1, 0, tea.MouseActionRelease, tea.MouseButtonNone), gesture.Event{Kind: gesture.Tap, Digit: model.DigitLeft}, true},
		{"click on nothing", release(1, 20), gesture.Event{}, false},
		{"press only", press(1, 0), gesture.Event{}, false},
		{"right button", mouse(1, 0, tea.MouseActionRelease, tea.MouseButtonRight), gesture.Event{}, false},
		{"arrow key", tea.KeyMsg{Type: tea.KeyUp}, gesture.Event{Kind: gesture.Key, Key: "up"}, true},
		{"letter key", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'R'}}, gesture.Event{Kind: gesture.Key, Key: "R"}, true},
		{"window resize", tea.WindowSizeMsg{Width: 80, Height: 24}, gesture.Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &PointerAdapter{}

			got, ok := a.Translate(tt.msg, gridHits{})

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPointerAdapter_NilHitTester(t *testing.T) {
	a := &PointerAdapter{}

	_, ok := a.Translate(release(1, 0), nil)

	assert.False(t, ok)
}

func TestTouchAdapter_Drag(t *testing.T) {
	a := NewTouchAdapter(10)

	ev, ok := a.Translate(press(7, 6), gridHits{})
	assert.True(t, ok)
	assert.Equal(t, gesture.Event{Kind: gesture.SwipeStart, Digit: model.DigitRight, Y: 60}, ev)

	ev, ok = a.Translate(motion(7, 4), gridHits{})
	assert.True(t, ok)
	assert.Equal(t, gesture.Event{Kind: gesture.SwipeMove, Digit: model.DigitRight, Y: 40}, ev)

	// released off the digit: the gesture still belongs to the digit it started on
	ev, ok = a.Translate(release(7, 2), gridHits{})
	assert.True(t, ok)
	assert.Equal(t, gesture.Event{Kind: gesture.SwipeEnd, Digit: model.DigitRight, Y: 20}, ev)

	_, ok = a.Translate(motion(7, 3), gridHits{})
	assert.False(t, ok, "no move events once the gesture ended")
}

func TestTouchAdapter_SuppressesClicks(t *testing.T) {
	a := NewTouchAdapter(16)

	_, ok := a.Translate(release(1, 0), gridHits{})

	assert.False(t, ok, "a bare click never becomes a tap on touch devices")
}

func TestTouchAdapter_Controls(t *testing.T) {
	a := NewTouchAdapter(16)

	_, ok := a.Translate(press(1, 1), gridHits{})
	assert.False(t, ok)

	ev, ok := a.Translate(release(1, 1), gridHits{})
	assert.True(t, ok)
	assert.Equal(t, gesture.Event{Kind: gesture.SecondaryPress, Digit: model.DigitLeft}, ev)

	a.Translate(press(2, 2), gridHits{})
	ev, ok = a.Translate(release(8, 2), gridHits{})
	assert.True(t, ok)
	assert.Equal(t, gesture.Event{Kind: gesture.ResetAll}, ev)
}

func TestTouchAdapter_ControlReleasedElsewhere(t *testing.T) {
	a := NewTouchAdapter(16)

	a.Translate(press(1, 1), gridHits{})
	_, ok := a.Translate(release(7, 1), gridHits{})

	assert.False(t, ok, "release over the other digit's button does nothing")
}

func TestTouchAdapter_Keys(t *testing.T) {
	a := NewTouchAdapter(16)

	ev, ok := a.Translate(tea.KeyMsg{Type: tea.KeyLeft}, gridHits{})

	assert.True(t, ok)
	assert.Equal(t, gesture.Event{Kind: gesture.Key, Key: "left"}, ev)
}
