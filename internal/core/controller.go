package core

import (
	"log/slog"

	"github.com/inovacc/stitchr/internal/counter"
	"github.com/inovacc/stitchr/internal/feedback"
	"github.com/inovacc/stitchr/internal/gesture"
	"github.com/inovacc/stitchr/internal/model"
)

// Outcome describes what handling one event did.
type Outcome struct {
	Action         gesture.Action
	PreventDefault bool

	// FlashTarget is feedback.NoTarget when nothing should flash.
	FlashTarget feedback.Target
	FlashKind   feedback.Kind

	State model.CounterState
}

// Controller runs one input event through classification, the counter
// store and flash selection.
type Controller struct {
	store      *counter.Store
	classifier *gesture.Classifier
	logger     *slog.Logger
}

// NewController wires a classifier to a store.
func NewController(store *counter.Store, classifier *gesture.Classifier) *Controller {
	return &Controller{
		store:      store,
		classifier: classifier,
		logger:     slog.Default(),
	}
}

// Store returns the counter store.
func (c *Controller) Store() *counter.Store {
	return c.store
}

// Handle classifies ev and applies the resulting action. The state mutation
// and its persistence complete before Handle returns.
func (c *Controller) Handle(ev gesture.Event) Outcome {
	dec := c.classifier.Classify(ev)

	out := Outcome{
		Action:         dec.Action,
		PreventDefault: dec.PreventDefault,
	}

	if c.Apply(dec.Action) {
		out.FlashTarget, out.FlashKind = flashFor(ev, dec.Action)
		c.logger.Debug("input handled", "event", ev.Kind.String(), "action", dec.Action.Kind.String(), "digit", dec.Action.Digit.String())
	}

	out.State = c.store.State()

	return out
}

// Apply performs a single action on the store. Actions that need a digit
// but have none are ignored. It reports whether the store was touched.
func (c *Controller) Apply(a gesture.Action) bool {
	switch a.Kind {
	case gesture.Increment:
		if a.Digit == model.DigitNone {
			return false
		}

		c.store.Increment(a.Digit)
	case gesture.Decrement:
		if a.Digit == model.DigitNone {
			return false
		}

		c.store.Decrement(a.Digit)
	case gesture.ResetDigit:
		if a.Digit == model.DigitNone {
			return false
		}

		c.store.ResetDigit(a.Digit)
	case gesture.ResetAllDigits:
		c.store.ResetAll()
	default:
		return false
	}

	return true
}

// flashFor picks the element to pulse. Digit taps and swipes flash the
// digit, decrement presses and the reset control flash their button. Keys
// do not flash.
func flashFor(ev gesture.Event, a gesture.Action) (feedback.Target, feedback.Kind) {
	kind := feedback.Up
	if a.Kind != gesture.Increment {
		kind = feedback.Down
	}

	switch ev.Kind {
	case gesture.Tap, gesture.SwipeEnd:
		switch a.Digit {
		case model.DigitLeft:
			return feedback.LeftDigit, kind
		case model.DigitRight:
			return feedback.RightDigit, kind
		}
	case gesture.SecondaryPress:
		switch a.Digit {
		case model.DigitLeft:
			return feedback.LeftDown, feedback.Down
		case model.DigitRight:
			return feedback.RightDown, feedback.Down
		}
	case gesture.ResetAll:
		return feedback.ResetButton, feedback.Down
	}

	return feedback.NoTarget, kind
}
