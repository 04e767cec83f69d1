package cli

import (
	"github.com/inovacc/stitchr/internal/input"
	"github.com/inovacc/stitchr/internal/model"
)

// Screen geometry, in terminal cells. The view is drawn on the alternate
// screen starting at the top-left corner, so these offsets are absolute.
const (
	marginLeft = 2
	headerRows = 2 // title, labels
	digitGap   = 4
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// layout places the digit boxes and controls. It implements input.HitTester.
type layout struct {
	left, right         rect
	leftDown, rightDown rect
	reset               rect
}

func newLayout(boxW, boxH int) layout {
	left := rect{x: marginLeft, y: headerRows, w: boxW, h: boxH}
	right := rect{x: marginLeft + boxW + digitGap, y: headerRows, w: boxW, h: boxH}

	buttonsY := headerRows + boxH + 1
	resetY := buttonsY + 2

	return layout{
		left:      left,
		right:     right,
		leftDown:  rect{x: left.x, y: buttonsY, w: boxW, h: 1},
		rightDown: rect{x: right.x, y: buttonsY, w: boxW, h: 1},
		reset:     rect{x: marginLeft, y: resetY, w: 2*boxW + digitGap, h: 1},
	}
}

// HitTest implements input.HitTester.
func (l layout) HitTest(x, y int) input.Hit {
	switch {
	case l.left.contains(x, y):
		return input.Hit{Area: input.AreaDigit, Digit: model.DigitLeft}
	case l.right.contains(x, y):
		return input.Hit{Area: input.AreaDigit, Digit: model.DigitRight}
	case l.leftDown.contains(x, y):
		return input.Hit{Area: input.AreaDecrement, Digit: model.DigitLeft}
	case l.rightDown.contains(x, y):
		return input.Hit{Area: input.AreaDecrement, Digit: model.DigitRight}
	case l.reset.contains(x, y):
		return input.Hit{Area: input.AreaReset}
	}

	return input.Hit{}
}
