package gesture

import (
	"testing"
	"time"

	"github.com/inovacc/stitchr/internal/model"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestClassifier() (*Classifier, *fakeClock) {
	clk := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	return New(DefaultConfig(), WithClock(clk.Now)), clk
}

func act(k ActionKind, d model.Digit) Action {
	return Action{Kind: k, Digit: d}
}

func TestClassify_TapIncrements(t *testing.T) {
	c, _ := newTestClassifier()

	for _, d := range []model.Digit{model.DigitLeft, model.DigitRight} {
		got := c.Classify(Event{Kind: Tap, Digit: d})
		assert.Equal(t, act(Increment, d), got.Action)

		got = c.Classify(Event{Kind: Tap, Digit: d})
		assert.Equal(t, act(Increment, d), got.Action, "pointer taps have no double-tap rule")
	}
}

func TestClassify_MissingTargetIgnored(t *testing.T) {
	c, _ := newTestClassifier()

	for _, k := range []Kind{Tap, SecondaryPress, SwipeStart} {
		got := c.Classify(Event{Kind: k, Digit: model.DigitNone})
		assert.Equal(t, Decision{}, got, "kind %s", k)
	}

	assert.Equal(t, Idle, c.Phase())
}

func TestClassify_SecondaryPressDoubleTap(t *testing.T) {
	tests := []struct {
		name string
		gap  time.Duration
		want []Action
	}{
		{
			name: "within window resets",
			gap:  299 * time.Millisecond,
			want: []Action{act(Decrement, model.DigitRight), act(ResetDigit, model.DigitRight)},
		},
		{
			name: "at window boundary decrements twice",
			gap:  300 * time.Millisecond,
			want: []Action{act(Decrement, model.DigitRight), act(Decrement, model.DigitRight)},
		},
		{
			name: "well after window decrements twice",
			gap:  2 * time.Second,
			want: []Action{act(Decrement, model.DigitRight), act(Decrement, model.DigitRight)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clk := newTestClassifier()

			first := c.Classify(Event{Kind: SecondaryPress, Digit: model.DigitRight})
			clk.Advance(tt.gap)
			second := c.Classify(Event{Kind: SecondaryPress, Digit: model.DigitRight})

			assert.Equal(t, tt.want, []Action{first.Action, second.Action})
		})
	}
}

func TestClassify_DoubleTapClearsRecord(t *testing.T) {
	c, clk := newTestClassifier()

	c.Classify(Event{Kind: SecondaryPress, Digit: model.DigitLeft})
	clk.Advance(100 * time.Millisecond)
	got := c.Classify(Event{Kind: SecondaryPress, Digit: model.DigitLeft})
	assert.Equal(t, act(ResetDigit, model.DigitLeft), got.Action)
	assert.Equal(t, TapRecord{}, c.LastTap())

	// a third press right after the reset starts a new window
	clk.Advance(50 * time.Millisecond)
	got = c.Classify(Event{Kind: SecondaryPress, Digit: model.DigitLeft})
	assert.Equal(t, act(Decrement, model.DigitLeft), got.Action)
}

func TestClassify_OtherDigitSupersedesRecord(t *testing.T) {
	c, clk := newTestClassifier()

	c.Classify(Event{Kind: SecondaryPress, Digit: model.DigitLeft})
	clk.Advance(50 * time.Millisecond)
	got := c.Classify(Event{Kind: SecondaryPress, Digit: model.DigitRight})
	assert.Equal(t, act(Decrement, model.DigitRight), got.Action)

	clk.Advance(50 * time.Millisecond)
	got = c.Classify(Event{Kind: SecondaryPress, Digit: model.DigitLeft})
	assert.Equal(t, act(Decrement, model.DigitLeft), got.Action)
}

func TestClassify_ExplicitTimestampsWin(t *testing.T) {
	c, _ := newTestClassifier()
	base := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	c.Classify(Event{Kind: SecondaryPress, Digit: model.DigitLeft, At: base})
	got := c.Classify(Event{Kind: SecondaryPress, Digit: model.DigitLeft, At: base.Add(10 * time.Millisecond)})

	assert.Equal(t, act(ResetDigit, model.DigitLeft), got.Action)
}

func swipe(c *Classifier, clk *fakeClock, d model.Digit, deltaY float64, deltaTime time.Duration) Decision {
	const startY = 200

	c.Classify(Event{Kind: SwipeStart, Digit: d, Y: startY})
	clk.Advance(deltaTime)

	return c.Classify(Event{Kind: SwipeEnd, Digit: d, Y: startY - deltaY})
}

func TestClassify_Swipe(t *testing.T) {
	tests := []struct {
		name      string
		deltaY    float64
		deltaTime time.Duration
		want      Action
	}{
		{"swipe up increments", 40, 100 * time.Millisecond, act(Increment, model.DigitLeft)},
		{"swipe down decrements", -40, 100 * time.Millisecond, act(Decrement, model.DigitLeft)},
		{"small movement is a tap", 5, 50 * time.Millisecond, act(Increment, model.DigitLeft)},
		{"dead zone is discarded", 20, 100 * time.Millisecond, Action{}},
		{"exactly 30 is not a swipe", 30, 100 * time.Millisecond, Action{}},
		{"exactly 10 is not a tap", 10, 100 * time.Millisecond, Action{}},
		{"slow long drag is discarded", 40, 400 * time.Millisecond, Action{}},
		{"drag at duration limit is discarded", -60, 300 * time.Millisecond, Action{}},
		{"slow tap still taps", 2, 900 * time.Millisecond, act(Increment, model.DigitLeft)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clk := newTestClassifier()

			got := swipe(c, clk, model.DigitLeft, tt.deltaY, tt.deltaTime)

			assert.Equal(t, tt.want, got.Action)
			assert.Equal(t, Idle, c.Phase(), "gesture is consumed on end")
		})
	}
}

func TestClassify_TouchDoubleTapResets(t *testing.T) {
	c, clk := newTestClassifier()

	first := swipe(c, clk, model.DigitRight, 0, 40*time.Millisecond)
	clk.Advance(100 * time.Millisecond)
	second := swipe(c, clk, model.DigitRight, 3, 40*time.Millisecond)

	assert.Equal(t, act(Increment, model.DigitRight), first.Action)
	assert.Equal(t, act(ResetDigit, model.DigitRight), second.Action)
}

func TestClassify_TouchSlowSecondTapIncrements(t *testing.T) {
	c, clk := newTestClassifier()

	swipe(c, clk, model.DigitRight, 0, 40*time.Millisecond)
	clk.Advance(400 * time.Millisecond)
	second := swipe(c, clk, model.DigitRight, 0, 40*time.Millisecond)

	assert.Equal(t, act(Increment, model.DigitRight), second.Action)
}

func TestClassify_SwipeBypassesTapWindow(t *testing.T) {
	c, clk := newTestClassifier()

	swipe(c, clk, model.DigitLeft, 0, 20*time.Millisecond)
	before := c.LastTap()

	got := swipe(c, clk, model.DigitLeft, 50, 20*time.Millisecond)
	assert.Equal(t, act(Increment, model.DigitLeft), got.Action)
	assert.Equal(t, before, c.LastTap(), "swipes do not touch the tap record")
}

func TestClassify_SwipeEndWithoutStart(t *testing.T) {
	c, _ := newTestClassifier()

	got := c.Classify(Event{Kind: SwipeEnd, Digit: model.DigitLeft, Y: 10})

	assert.Equal(t, Decision{}, got)
}

func TestClassify_SwipeMovePreventsDefaultWhileArmed(t *testing.T) {
	c, _ := newTestClassifier()

	assert.False(t, c.Classify(Event{Kind: SwipeMove, Y: 5}).PreventDefault)

	c.Classify(Event{Kind: SwipeStart, Digit: model.DigitRight, Y: 100})
	assert.Equal(t, Armed, c.Phase())
	assert.True(t, c.Classify(Event{Kind: SwipeMove, Y: 90}).PreventDefault)
	assert.Equal(t, Armed, c.Phase(), "moves do not end the gesture")
}

func TestClassify_ResetAll(t *testing.T) {
	c, _ := newTestClassifier()

	got := c.Classify(Event{Kind: ResetAll})

	assert.Equal(t, Action{Kind: ResetAllDigits}, got.Action)
}

func TestClassify_Keys(t *testing.T) {
	tests := []struct {
		key     string
		want    Action
		prevent bool
	}{
		{"up", act(Increment, model.DigitLeft), true},
		{"ArrowUp", act(Increment, model.DigitLeft), true},
		{"down", act(Decrement, model.DigitLeft), true},
		{"right", act(Increment, model.DigitRight), true},
		{"left", act(Decrement, model.DigitRight), true},
		{"ArrowLeft", act(Decrement, model.DigitRight), true},
		{"r", Action{Kind: ResetAllDigits}, false},
		{"R", Action{Kind: ResetAllDigits}, false},
		{"x", Action{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c, _ := newTestClassifier()

			got := c.Classify(Event{Kind: Key, Key: tt.key})

			assert.Equal(t, tt.want, got.Action)
			assert.Equal(t, tt.prevent, got.PreventDefault)
		})
	}
}

func TestClassifier_Reset(t *testing.T) {
	c, _ := newTestClassifier()

	c.Classify(Event{Kind: SecondaryPress, Digit: model.DigitLeft})
	c.Classify(Event{Kind: SwipeStart, Digit: model.DigitLeft})
	c.Reset()

	assert.Equal(t, TapRecord{}, c.LastTap())
	assert.Equal(t, Idle, c.Phase())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "secondary-press", SecondaryPress.String())
	assert.Equal(t, "unknown", Kind(99).String())
	assert.Equal(t, "reset-all", ResetAllDigits.String())
	assert.Equal(t, "none", None.String())
}
