package stepper

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastButtonID int64

func nextButtonID() int {
	return int(atomic.AddInt64(&lastButtonID, 1))
}

// repeatTickMsg drives one firing of a held button's repeat timer. The
// generation stamp invalidates ticks scheduled before the last release.
type repeatTickMsg struct {
	id  int
	gen int
}

// RepeatButton applies a signed step to a bound value: once on a tap,
// repeatedly at an accelerating cadence while held.
type RepeatButton struct {
	id    int
	gen   int
	value *Binding
	step  float64
	glyph Glyph
	cfg   Config

	schedule  Schedule
	now       func() time.Time
	held      bool
	pressedAt time.Time
}

// NewRepeatButton binds a button to value. step is the signed increment
// this instance applies; cfg supplies the bounds and the disabled color.
func NewRepeatButton(value *Binding, step float64, glyph Glyph, cfg Config) RepeatButton {
	return RepeatButton{
		id:       nextButtonID(),
		value:    value,
		step:     step,
		glyph:    glyph,
		cfg:      cfg,
		schedule: DefaultSchedule(),
		now:      time.Now,
	}
}

// Tap applies exactly one clamped step.
func (b *RepeatButton) Tap() {
	b.apply()
}

// Press starts a press-and-hold: one step immediately, then repeats after
// the initial delay. The returned command schedules the first repeat
// firing.
func (b *RepeatButton) Press() tea.Cmd {
	b.gen++
	b.held = true
	b.pressedAt = b.now()
	b.apply()
	return b.tick(b.schedule.InitialDelay)
}

// Release stops the hold. Bumping the generation synchronously invalidates
// any firing already in flight; a tick delivered after release must not
// apply a step.
func (b *RepeatButton) Release() {
	if !b.held {
		return
	}
	b.held = false
	b.gen++
}

// Held reports whether a press-and-hold is in progress.
func (b *RepeatButton) Held() bool {
	return b.held
}

// Update consumes repeat timer firings addressed to this button. Stale
// firings (wrong generation, or delivered after release) are dropped.
func (b RepeatButton) Update(msg tea.Msg) (RepeatButton, tea.Cmd) {
	tick, ok := msg.(repeatTickMsg)
	if !ok || tick.id != b.id || tick.gen != b.gen || !b.held {
		return b, nil
	}
	b.apply()
	elapsed := b.now().Sub(b.pressedAt)
	return b, b.tick(b.schedule.IntervalFor(elapsed))
}

// apply performs one clamped step. At the bound it is a no-op; the timer
// keeps running until release.
func (b *RepeatButton) apply() {
	next := b.cfg.clamp(b.value.Get() + b.step)
	if next != b.value.Get() {
		b.value.Set(next)
	}
}

// AtBound reports whether the next step would be clamped to a no-op.
func (b RepeatButton) AtBound() bool {
	return b.cfg.clamp(b.value.Get()+b.step) == b.value.Get()
}

func (b RepeatButton) tick(d time.Duration) tea.Cmd {
	id, gen := b.id, b.gen
	return tea.Tick(d, func(time.Time) tea.Msg {
		return repeatTickMsg{id: id, gen: gen}
	})
}

// View renders the button glyph. At the bound the glyph takes the disabled
// color but the button remains tappable.
func (b RepeatButton) View() string {
	g := b.glyph
	if b.AtBound() {
		g.Color = b.cfg.DisabledColor
	}
	return glyphButton(g)
}
