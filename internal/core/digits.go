package core

import (
	"github.com/inovacc/stitchr/internal/gesture"
	"github.com/inovacc/stitchr/internal/model"
)

// ParseDigit resolves a digit name given on the command line.
func ParseDigit(name string) (model.Digit, error) {
	d, ok := model.ParseDigit(name)
	if !ok {
		return model.DigitNone, &UnknownDigitError{Name: name}
	}

	return d, nil
}

// IncrementDigit applies a single increment outside the interactive UI.
func (c *Controller) IncrementDigit(d model.Digit) model.CounterState {
	c.Apply(gesture.Action{Kind: gesture.Increment, Digit: d})
	return c.store.State()
}

// DecrementDigit applies a single decrement outside the interactive UI.
// There is no double-tap window here; each call decrements once.
func (c *Controller) DecrementDigit(d model.Digit) model.CounterState {
	c.Apply(gesture.Action{Kind: gesture.Decrement, Digit: d})
	return c.store.State()
}

// Reset zeroes one digit, or both when d is DigitNone.
func (c *Controller) Reset(d model.Digit) model.CounterState {
	if d == model.DigitNone {
		c.Apply(gesture.Action{Kind: gesture.ResetAllDigits})
	} else {
		c.Apply(gesture.Action{Kind: gesture.ResetDigit, Digit: d})
	}

	return c.store.State()
}
