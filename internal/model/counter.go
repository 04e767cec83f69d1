package model

import "strings"

// Digit names one of the two counters.
type Digit int

const (
	// DigitNone marks an input that hit no counter.
	DigitNone Digit = iota
	// DigitLeft is the row counter.
	DigitLeft
	// DigitRight is the stitch counter. It carries into DigitLeft on overflow.
	DigitRight
)

func (d Digit) String() string {
	switch d {
	case DigitLeft:
		return "left"
	case DigitRight:
		return "right"
	}

	return "none"
}

// ParseDigit converts a user supplied name into a Digit.
// Unknown names yield DigitNone and false.
func ParseDigit(s string) (Digit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l", "row", "rows":
		return DigitLeft, true
	case "right", "r", "stitch", "stitches":
		return DigitRight, true
	}

	return DigitNone, false
}

// CounterState holds the two digit values persisted between sessions.
type CounterState struct {
	// Left is the row digit, 0..9
	Left int `json:"left"`

	// Right is the stitch digit, 0..9
	Right int `json:"right"`
}

// Valid reports whether both digits are within 0..9.
func (s CounterState) Valid() bool {
	return s.Left >= 0 && s.Left <= 9 && s.Right >= 0 && s.Right <= 9
}

// Get returns the value of the named digit. DigitNone yields 0.
func (s CounterState) Get(d Digit) int {
	switch d {
	case DigitLeft:
		return s.Left
	case DigitRight:
		return s.Right
	}

	return 0
}
