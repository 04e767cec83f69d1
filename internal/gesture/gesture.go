// Package gesture decides which counter action a normalized input event
// stands for.
//
// Two tiers of input share one state machine. Pointer input is already
// discrete (a click on a digit, a press of a decrement button); touch input
// arrives as a start/end pair that must be told apart as a swipe, a tap, or
// an ambiguous drag that is discarded. Both tiers use the same trailing
// double-tap window, kept in a single [TapRecord].
//
// Timing is compared against event timestamps only. No timers are
// scheduled; events without a timestamp are stamped from the injected clock.
package gesture

import (
	"math"
	"time"

	"github.com/inovacc/stitchr/internal/model"
)

// Kind is the shape of a normalized input event.
type Kind int

const (
	// Tap is a click directly on a digit display.
	Tap Kind = iota
	// SecondaryPress is an activation of a digit's decrement control.
	SecondaryPress
	// SwipeStart begins a touch gesture over a digit.
	SwipeStart
	// SwipeMove reports movement of an in-flight touch gesture.
	SwipeMove
	// SwipeEnd finishes a touch gesture.
	SwipeEnd
	// Key is a keyboard press; Event.Key holds its name.
	Key
	// ResetAll is an activation of the global reset control.
	ResetAll
)

func (k Kind) String() string {
	switch k {
	case Tap:
		return "tap"
	case SecondaryPress:
		return "secondary-press"
	case SwipeStart:
		return "swipe-start"
	case SwipeMove:
		return "swipe-move"
	case SwipeEnd:
		return "swipe-end"
	case Key:
		return "key"
	case ResetAll:
		return "reset-all"
	}

	return "unknown"
}

// Event is produced by an input adapter.
type Event struct {
	Kind  Kind
	Digit model.Digit
	// At is when the event happened. Zero means now.
	At time.Time
	// Y is the vertical position in pixels, increasing downwards.
	Y float64
	// Key is the key name for Kind == Key, e.g. "up" or "r".
	Key string
}

// ActionKind is the logical operation applied to the counter.
type ActionKind int

const (
	None ActionKind = iota
	Increment
	Decrement
	ResetDigit
	ResetAllDigits
)

func (a ActionKind) String() string {
	switch a {
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	case ResetDigit:
		return "reset-digit"
	case ResetAllDigits:
		return "reset-all"
	}

	return "none"
}

// Action is an operation on one digit, or on both for ResetAllDigits.
type Action struct {
	Kind  ActionKind
	Digit model.Digit
}

// Decision is the outcome of classifying one event.
type Decision struct {
	Action Action
	// PreventDefault asks the host to suppress its native handling
	// (scrolling for arrow keys and in-flight drags).
	PreventDefault bool
}

// TapRecord is the most recent completed tap, used for double-tap detection.
type TapRecord struct {
	Digit model.Digit
	At    time.Time
}

// TouchGesture is a touch sequence between start and end.
type TouchGesture struct {
	StartY    float64
	StartTime time.Time
	Digit     model.Digit
}

// Phase is the state of the touch state machine.
type Phase int

const (
	Idle Phase = iota
	Armed
)

func (p Phase) String() string {
	if p == Armed {
		return "armed"
	}

	return "idle"
}

// Config holds the disambiguation thresholds.
type Config struct {
	DoubleTapWindow  time.Duration
	SwipeMinDistance float64
	SwipeMaxDuration time.Duration
	TapMaxDistance   float64
}

// DefaultConfig returns the stock thresholds: 300ms double-tap window,
// swipes beyond 30px under 300ms, taps under 10px.
func DefaultConfig() Config {
	return FromModel(model.DefaultConfig().Gesture)
}

// FromModel converts the application gesture settings.
func FromModel(g model.GestureConfig) Config {
	return Config{
		DoubleTapWindow:  g.DoubleTapWindow,
		SwipeMinDistance: g.SwipeMinDistance,
		SwipeMaxDuration: g.SwipeMaxDuration,
		TapMaxDistance:   g.TapMaxDistance,
	}
}

// Classifier turns events into actions. It keeps the last tap and the
// in-flight touch gesture and is not safe for concurrent use.
type Classifier struct {
	cfg     Config
	now     func() time.Time
	last    TapRecord
	gesture *TouchGesture
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithClock sets the time source used for events without a timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *Classifier) {
		c.now = now
	}
}

// New returns an idle classifier.
func New(cfg Config, opts ...Option) *Classifier {
	c := &Classifier{cfg: cfg}

	for _, opt := range opts {
		opt(c)
	}

	if c.now == nil {
		c.now = time.Now
	}

	return c
}

// Phase reports whether a touch gesture is in flight.
func (c *Classifier) Phase() Phase {
	if c.gesture != nil {
		return Armed
	}

	return Idle
}

// LastTap returns the current double-tap record.
func (c *Classifier) LastTap() TapRecord {
	return c.last
}

// Reset drops the tap record and any in-flight gesture.
func (c *Classifier) Reset() {
	c.last = TapRecord{}
	c.gesture = nil
}

// Classify decides the action for ev.
func (c *Classifier) Classify(ev Event) Decision {
	if ev.At.IsZero() {
		ev.At = c.now()
	}

	switch ev.Kind {
	case Tap:
		if ev.Digit == model.DigitNone {
			return Decision{}
		}

		return Decision{Action: Action{Kind: Increment, Digit: ev.Digit}}

	case SecondaryPress:
		if ev.Digit == model.DigitNone {
			return Decision{}
		}

		return Decision{Action: c.windowed(ev.Digit, ev.At, Decrement)}

	case SwipeStart:
		if ev.Digit == model.DigitNone {
			c.gesture = nil
			return Decision{}
		}

		c.gesture = &TouchGesture{StartY: ev.Y, StartTime: ev.At, Digit: ev.Digit}

		return Decision{}

	case SwipeMove:
		return Decision{PreventDefault: c.gesture != nil}

	case SwipeEnd:
		return Decision{Action: c.endGesture(ev)}

	case ResetAll:
		return Decision{Action: Action{Kind: ResetAllDigits}}

	case Key:
		return classifyKey(ev.Key)
	}

	return Decision{}
}

// windowed applies the double-tap rule: a second activation of the same
// digit inside the window resets it, anything else performs single and
// records the tap.
func (c *Classifier) windowed(d model.Digit, at time.Time, single ActionKind) Action {
	if c.last.Digit == d && at.Sub(c.last.At) < c.cfg.DoubleTapWindow {
		c.last = TapRecord{}
		return Action{Kind: ResetDigit, Digit: d}
	}

	c.last = TapRecord{Digit: d, At: at}

	return Action{Kind: single, Digit: d}
}

func (c *Classifier) endGesture(ev Event) Action {
	g := c.gesture
	c.gesture = nil

	if g == nil {
		return Action{}
	}

	deltaY := g.StartY - ev.Y
	deltaTime := ev.At.Sub(g.StartTime)

	switch {
	case math.Abs(deltaY) > c.cfg.SwipeMinDistance && deltaTime < c.cfg.SwipeMaxDuration:
		if deltaY > 0 {
			return Action{Kind: Increment, Digit: g.Digit}
		}

		return Action{Kind: Decrement, Digit: g.Digit}

	case math.Abs(deltaY) < c.cfg.TapMaxDistance:
		return c.windowed(g.Digit, ev.At, Increment)
	}

	// between the tap and swipe bands, or too slow: ambiguous
	return Action{}
}

func classifyKey(key string) Decision {
	switch key {
	case "up", "ArrowUp":
		return Decision{Action: Action{Kind: Increment, Digit: model.DigitLeft}, PreventDefault: true}
	case "down", "ArrowDown":
		return Decision{Action: Action{Kind: Decrement, Digit: model.DigitLeft}, PreventDefault: true}
	case "right", "ArrowRight":
		return Decision{Action: Action{Kind: Increment, Digit: model.DigitRight}, PreventDefault: true}
	case "left", "ArrowLeft":
		return Decision{Action: Action{Kind: Decrement, Digit: model.DigitRight}, PreventDefault: true}
	case "r", "R":
		return Decision{Action: Action{Kind: ResetAllDigits}}
	}

	return Decision{}
}
