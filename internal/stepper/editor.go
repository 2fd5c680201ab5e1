package stepper

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Mode is the editor's current state.
type Mode int

const (
	// Display shows the formatted value with the two step buttons.
	Display Mode = iota
	// Editing shows the text-entry surface with the decline/confirm
	// affordances in place of the step buttons.
	Editing
)

// Zone identifies the interactive region of a rendered editor under a
// pointer column.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneDecrement
	ZoneIncrement
	ZoneDecline
	ZoneConfirm
	ZoneValue
)

const buttonWidth = 3 // "[x]"

// Editor is a bounded numeric value editor: direct text entry validated
// against the configured bounds, plus two repeat buttons for stepping.
//
// The editor never propagates a validation failure to its owner. Failures
// surface through ActiveAlert and leave the bound value unchanged; the
// draft stays as typed so the user can correct it.
type Editor struct {
	cfg   Config
	value *Binding

	mode      Mode
	input     textinput.Model
	cancelled bool
	alert     *Alert

	dec RepeatButton
	inc RepeatButton
}

// New constructs an editor over a caller-owned binding, merging opts onto
// DefaultConfig. The configuration is validated and frozen here.
func New(value *Binding, opts ...Option) (Editor, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return Editor{}, err
	}
	return NewFromConfig(value, cfg)
}

// NewFromConfig constructs an editor from an already-assembled Config.
func NewFromConfig(value *Binding, cfg Config) (Editor, error) {
	if err := cfg.validate(); err != nil {
		return Editor{}, err
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 24
	ti.Width = 12
	return Editor{
		cfg:   cfg,
		value: value,
		input: ti,
		dec:   NewRepeatButton(value, -cfg.Increment, cfg.DecrementGlyph, cfg),
		inc:   NewRepeatButton(value, cfg.Increment, cfg.IncrementGlyph, cfg),
	}, nil
}

// Init implements tea.Model conventions; the editor schedules nothing
// until a button is pressed or an edit is opened.
func (e Editor) Init() tea.Cmd {
	return nil
}

// Mode returns the current state.
func (e Editor) Mode() Mode {
	return e.mode
}

// Value returns the current bound value.
func (e Editor) Value() float64 {
	return e.value.Get()
}

// Config returns the frozen configuration.
func (e Editor) Config() Config {
	return e.cfg
}

// ActiveAlert returns the outstanding validation alert, or nil.
func (e Editor) ActiveAlert() *Alert {
	return e.alert
}

// StartEditing opens the text-entry surface, seeding the draft with the
// formatted value, unit suffix stripped.
func (e Editor) StartEditing() (Editor, tea.Cmd) {
	if e.mode == Editing {
		return e, nil
	}
	e.mode = Editing
	e.cancelled = false
	e.input.SetValue(FormatDecimal(e.value.Get()))
	e.input.CursorEnd()
	cmd := e.input.Focus()
	return e, cmd
}

// Cancel discards the draft: the last confirmed value is restored, the
// cancelled flag is raised, and focus loss is forced so the subsequent
// blur closes the edit without validating.
func (e Editor) Cancel() Editor {
	if e.mode != Editing {
		return e
	}
	e.input.SetValue(FormatDecimal(e.value.Get()))
	e.cancelled = true
	return e.Blur()
}

// Blur is the focus-loss transition. A cancelled edit closes without
// validating; any other focus loss validates the draft.
func (e Editor) Blur() Editor {
	if e.mode != Editing {
		return e
	}
	if e.cancelled {
		e.cancelled = false
		e.closeFocus()
		return e
	}
	return e.Confirm()
}

// Confirm validates the draft regardless of focus state. On success the
// parsed value is written to the binding, the edit closes, and the
// committed value is re-formatted (so trailing formatting like trimmed
// zeros applies even when the numeric value did not change). On failure
// the edit stays open with the draft as typed and an alert raised.
func (e Editor) Confirm() Editor {
	if e.mode != Editing {
		return e
	}
	v, err := ParseDecimal(e.input.Value())
	if err == nil {
		err = e.cfg.checkRange(v)
	}
	if err != nil {
		e.alert = &Alert{
			Title:   e.cfg.Label,
			Message: alertMessage(err, e.cfg),
		}
		return e
	}
	e.value.Set(v)
	e.input.SetValue(FormatDecimal(v))
	e.closeFocus()
	return e
}

// alertMessage turns a validation error into the user-facing alert text.
// Range violations state the violated bound formatted with the unit; any
// other error reads as reported.
func alertMessage(err error, cfg Config) string {
	var rangeErr *RangeError
	if errors.As(err, &rangeErr) {
		if rangeErr.Direction == TooLarge {
			return fmt.Sprintf("Value must be at most %s.", cfg.formatWithUnit(rangeErr.Bound))
		}
		return fmt.Sprintf("Value must be at least %s.", cfg.formatWithUnit(rangeErr.Bound))
	}
	return err.Error() + "."
}

// closeFocus closes the text-entry surface and re-enters Display.
func (e *Editor) closeFocus() {
	e.input.Blur()
	e.mode = Display
}

// ReleaseButtons stops any press-and-hold in progress. Owners call this on
// pointer release and on teardown so no timer outlives the press.
func (e Editor) ReleaseButtons() Editor {
	e.dec.Release()
	e.inc.Release()
	return e
}

// Update handles keys, repeat timer firings, and text input messages.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	switch msg := msg.(type) {
	case repeatTickMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		e.dec, cmd = e.dec.Update(msg)
		cmds = append(cmds, cmd)
		e.inc, cmd = e.inc.Update(msg)
		cmds = append(cmds, cmd)
		return e, tea.Batch(cmds...)

	case tea.KeyMsg:
		if e.alert != nil {
			e.alert = nil
			return e, nil
		}
		switch e.mode {
		case Display:
			switch msg.String() {
			case "enter":
				return e.StartEditing()
			case "+", "=":
				e.inc.Tap()
				return e, nil
			case "-", "_":
				e.dec.Tap()
				return e, nil
			}
			return e, nil
		case Editing:
			switch msg.String() {
			case "esc":
				return e.Cancel(), nil
			case "enter":
				return e.Confirm(), nil
			}
		}
	}

	// Remaining messages (typed characters, cursor blink) belong to the
	// text-entry surface.
	if e.mode == Editing {
		var cmd tea.Cmd
		e.input, cmd = e.input.Update(msg)
		return e, cmd
	}
	return e, nil
}

// HandleMouse routes a pointer event at column x, relative to the editor's
// left edge, to the affordance under it. Releases are delivered regardless
// of position so a drag off the button still stops the hold.
func (e Editor) HandleMouse(x int, action tea.MouseAction) (Editor, tea.Cmd) {
	if action == tea.MouseActionRelease {
		return e.ReleaseButtons(), nil
	}
	if action != tea.MouseActionPress {
		return e, nil
	}
	if e.alert != nil {
		e.alert = nil
		return e, nil
	}
	switch e.ZoneAt(x) {
	case ZoneDecrement:
		cmd := e.dec.Press()
		return e, cmd
	case ZoneIncrement:
		cmd := e.inc.Press()
		return e, cmd
	case ZoneDecline:
		return e.Cancel(), nil
	case ZoneConfirm:
		return e.Confirm(), nil
	case ZoneValue:
		if e.mode == Display {
			return e.StartEditing()
		}
	}
	return e, nil
}

// ZoneAt maps a column within the rendered editor to an interactive
// region.
func (e Editor) ZoneAt(x int) Zone {
	if x < 0 {
		return ZoneNone
	}
	if x < buttonWidth {
		if e.mode == Editing {
			return ZoneDecline
		}
		return ZoneDecrement
	}
	midStart := buttonWidth + 1
	midWidth := e.middleWidth()
	rightStart := midStart + midWidth + 1
	if x < rightStart {
		if x >= midStart && x < midStart+midWidth {
			return ZoneValue
		}
		return ZoneNone
	}
	if x < rightStart+buttonWidth {
		if e.mode == Editing {
			return ZoneConfirm
		}
		return ZoneIncrement
	}
	return ZoneNone
}

func (e Editor) middleWidth() int {
	if e.mode == Editing {
		return lipgloss.Width(e.input.View())
	}
	return lipgloss.Width(e.displayText())
}

// View renders the editor row: step buttons around the formatted value in
// Display, decline/confirm around the text input while Editing. The
// displayed text is re-derived from the binding on every render, so
// external value changes reflect immediately in Display and never touch
// the draft while Editing.
func (e Editor) View() string {
	if e.mode == Editing {
		return glyphButton(e.cfg.DeclineGlyph) + " " + e.input.View() + " " + glyphButton(e.cfg.ConfirmGlyph)
	}
	return e.dec.View() + " " + e.displayText() + " " + e.inc.View()
}

func (e Editor) displayText() string {
	return valueStyle.Render(FormatDecimal(e.value.Get())) + unitStyle.Render(e.cfg.Unit)
}

// LabelView renders the configured label honoring its opacity.
func (e Editor) LabelView() string {
	return labelStyle(e.cfg.LabelOpacity).Render(e.cfg.Label)
}
