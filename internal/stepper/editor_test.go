package stepper

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testEditor(t *testing.T) (*Binding, Editor) {
	t.Helper()
	value := NewBinding(5)
	e, err := New(value,
		WithLabel("Weight"),
		WithUnit(" kg"),
		WithIncrement(1),
		WithRange(0, 10),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return value, e
}

func startEdit(t *testing.T, e Editor) Editor {
	t.Helper()
	e, cmd := e.StartEditing()
	if cmd == nil {
		t.Fatal("StartEditing() returned nil cmd, want focus cmd")
	}
	if e.Mode() != Editing {
		t.Fatalf("Mode() = %v after StartEditing, want Editing", e.Mode())
	}
	return e
}

func TestStartEditingSeedsDraftWithoutUnit(t *testing.T) {
	_, e := testEditor(t)

	e = startEdit(t, e)
	if got := e.input.Value(); got != "5" {
		t.Errorf("draft = %q, want %q (unit suffix stripped)", got, "5")
	}
}

func TestConfirmValidValueCommits(t *testing.T) {
	value, e := testEditor(t)

	e = startEdit(t, e)
	e.input.SetValue("7.5")
	e = e.Confirm()

	if got := value.Get(); got != 7.5 {
		t.Errorf("value after confirm = %v, want 7.5", got)
	}
	if e.Mode() != Display {
		t.Errorf("Mode() = %v after successful confirm, want Display", e.Mode())
	}
	if e.ActiveAlert() != nil {
		t.Errorf("ActiveAlert() = %v after successful confirm, want nil", e.ActiveAlert())
	}
}

func TestConfirmReformatsCommittedValue(t *testing.T) {
	value, e := testEditor(t)

	e = startEdit(t, e)
	e.input.SetValue("5.0")
	e = e.Confirm()

	if got := value.Get(); got != 5 {
		t.Errorf("value after confirm = %v, want 5", got)
	}
	if got := e.input.Value(); got != "5" {
		t.Errorf("draft after confirm = %q, want reformatted %q", got, "5")
	}
	if e.Mode() != Display {
		t.Errorf("Mode() = %v, want Display", e.Mode())
	}
}

func TestConfirmTooLarge(t *testing.T) {
	value, e := testEditor(t)

	e = startEdit(t, e)
	e.input.SetValue("12")
	e = e.Confirm()

	if got := value.Get(); got != 5 {
		t.Errorf("value after rejected confirm = %v, want 5", got)
	}
	alert := e.ActiveAlert()
	if alert == nil {
		t.Fatal("ActiveAlert() = nil, want too-large alert")
	}
	if alert.Title != "Weight" {
		t.Errorf("alert title = %q, want field label %q", alert.Title, "Weight")
	}
	if !strings.Contains(alert.Message, "10 kg") {
		t.Errorf("alert message = %q, want maximum bound with unit", alert.Message)
	}
	// The edit stays open with the draft as typed so the user can correct it.
	if e.Mode() != Editing {
		t.Errorf("Mode() = %v after rejected confirm, want Editing", e.Mode())
	}
	if got := e.input.Value(); got != "12" {
		t.Errorf("draft after rejected confirm = %q, want %q", got, "12")
	}
}

func TestConfirmTooSmall(t *testing.T) {
	value, e := testEditor(t)

	e = startEdit(t, e)
	e.input.SetValue("-3")
	e = e.Confirm()

	if got := value.Get(); got != 5 {
		t.Errorf("value after rejected confirm = %v, want 5", got)
	}
	alert := e.ActiveAlert()
	if alert == nil {
		t.Fatal("ActiveAlert() = nil, want too-small alert")
	}
	if !strings.Contains(alert.Message, "0 kg") {
		t.Errorf("alert message = %q, want minimum bound with unit", alert.Message)
	}
}

func TestConfirmUnparsableText(t *testing.T) {
	value, e := testEditor(t)

	e = startEdit(t, e)
	e.input.SetValue("abc")
	e = e.Confirm()

	if got := value.Get(); got != 5 {
		t.Errorf("value after format failure = %v, want 5", got)
	}
	alert := e.ActiveAlert()
	if alert == nil {
		t.Fatal("ActiveAlert() = nil, want format alert")
	}
	if alert.Title != "Weight" {
		t.Errorf("alert title = %q, want field label %q", alert.Title, "Weight")
	}
	if got := e.input.Value(); got != "abc" {
		t.Errorf("draft after format failure = %q, want %q (as typed)", got, "abc")
	}
	// The alert text is derived from the underlying FormatError.
	want := (&FormatError{Text: "abc"}).Error() + "."
	if alert.Message != want {
		t.Errorf("alert message = %q, want %q", alert.Message, want)
	}
}

func TestCancelDiscardsDraft(t *testing.T) {
	value, e := testEditor(t)

	e = startEdit(t, e)
	e.input.SetValue("7")
	e = e.Cancel()

	if got := value.Get(); got != 5 {
		t.Errorf("value after cancel = %v, want 5", got)
	}
	if e.Mode() != Display {
		t.Errorf("Mode() = %v after cancel, want Display", e.Mode())
	}
	if e.ActiveAlert() != nil {
		t.Errorf("ActiveAlert() = %v after cancel, want nil", e.ActiveAlert())
	}
	if got := e.input.Value(); got != "5" {
		t.Errorf("draft after cancel = %q, want restored %q", got, "5")
	}
}

func TestBlurValidatesUnlessCancelled(t *testing.T) {
	value, e := testEditor(t)

	// Focus loss with a valid draft commits it.
	e = startEdit(t, e)
	e.input.SetValue("8")
	e = e.Blur()
	if got := value.Get(); got != 8 {
		t.Errorf("value after blur = %v, want 8", got)
	}
	if e.Mode() != Display {
		t.Errorf("Mode() = %v after blur, want Display", e.Mode())
	}

	// The cancelled flag suppresses exactly one validation.
	e = startEdit(t, e)
	e.input.SetValue("3")
	e.cancelled = true
	e = e.Blur()
	if got := value.Get(); got != 8 {
		t.Errorf("value after cancelled blur = %v, want 8 (not validated)", got)
	}
	if e.cancelled {
		t.Error("cancelled flag still set after blur, want cleared")
	}
}

func TestEscapeKeyCancels(t *testing.T) {
	value, e := testEditor(t)

	e = startEdit(t, e)
	e.input.SetValue("9")
	e, _ = e.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if got := value.Get(); got != 5 {
		t.Errorf("value after esc = %v, want 5", got)
	}
	if e.Mode() != Display {
		t.Errorf("Mode() = %v after esc, want Display", e.Mode())
	}
}

func TestEnterKeyOpensAndConfirms(t *testing.T) {
	value, e := testEditor(t)

	e, _ = e.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if e.Mode() != Editing {
		t.Fatalf("Mode() = %v after enter in Display, want Editing", e.Mode())
	}

	e.input.SetValue("6")
	e, _ = e.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := value.Get(); got != 6 {
		t.Errorf("value after enter in Editing = %v, want 6", got)
	}
	if e.Mode() != Display {
		t.Errorf("Mode() = %v after confirm, want Display", e.Mode())
	}
}

func TestStepKeysTapButtons(t *testing.T) {
	value, e := testEditor(t)

	e, _ = e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	if got := value.Get(); got != 6 {
		t.Errorf("value after '+' = %v, want 6", got)
	}
	e, _ = e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	if got := value.Get(); got != 5 {
		t.Errorf("value after '-' = %v, want 5", got)
	}
}

func TestAnyKeyDismissesAlert(t *testing.T) {
	_, e := testEditor(t)

	e = startEdit(t, e)
	e.input.SetValue("99")
	e = e.Confirm()
	if e.ActiveAlert() == nil {
		t.Fatal("ActiveAlert() = nil, want alert")
	}

	e, _ = e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if e.ActiveAlert() != nil {
		t.Error("ActiveAlert() still set after key press, want dismissed")
	}
}

func TestNewAlertReplacesPrior(t *testing.T) {
	_, e := testEditor(t)

	e = startEdit(t, e)
	e.input.SetValue("99")
	e = e.Confirm()
	first := e.ActiveAlert()
	if first == nil {
		t.Fatal("ActiveAlert() = nil, want range alert")
	}

	e.input.SetValue("abc")
	e = e.Confirm()
	second := e.ActiveAlert()
	if second == nil {
		t.Fatal("ActiveAlert() = nil, want format alert")
	}
	if second == first {
		t.Error("second alert is the prior alert, want replacement")
	}
}

func TestExternalChangeIgnoredWhileEditing(t *testing.T) {
	value, e := testEditor(t)

	e = startEdit(t, e)
	value.Set(9)

	if got := e.input.Value(); got != "5" {
		t.Errorf("draft after external change = %q, want untouched %q", got, "5")
	}
	// Display mode re-derives its text from the binding on every render.
	e = e.Cancel()
	if got := e.Value(); got != 9 {
		t.Errorf("Value() after cancel = %v, want externally set 9", got)
	}
}

func TestZoneAtDisplayAndEditing(t *testing.T) {
	_, e := testEditor(t)

	if got := e.ZoneAt(0); got != ZoneDecrement {
		t.Errorf("ZoneAt(0) in Display = %v, want ZoneDecrement", got)
	}
	mid := e.middleWidth()
	if got := e.ZoneAt(buttonWidth + 1); got != ZoneValue {
		t.Errorf("ZoneAt(value region) = %v, want ZoneValue", got)
	}
	if got := e.ZoneAt(buttonWidth + 1 + mid + 1); got != ZoneIncrement {
		t.Errorf("ZoneAt(right button) = %v, want ZoneIncrement", got)
	}

	e = startEdit(t, e)
	if got := e.ZoneAt(0); got != ZoneDecline {
		t.Errorf("ZoneAt(0) in Editing = %v, want ZoneDecline", got)
	}
	mid = e.middleWidth()
	if got := e.ZoneAt(buttonWidth + 1 + mid + 1); got != ZoneConfirm {
		t.Errorf("ZoneAt(right button) in Editing = %v, want ZoneConfirm", got)
	}
}

func TestMousePressStepsAndReleaseStops(t *testing.T) {
	value, e := testEditor(t)

	mid := e.middleWidth()
	incX := buttonWidth + 1 + mid + 1
	e, cmd := e.HandleMouse(incX, tea.MouseActionPress)
	if cmd == nil {
		t.Fatal("HandleMouse(press) returned nil cmd, want repeat schedule")
	}
	if got := value.Get(); got != 6 {
		t.Errorf("value after mouse press = %v, want 6", got)
	}
	if !e.inc.Held() {
		t.Error("increment button not held after press")
	}

	e, _ = e.HandleMouse(0, tea.MouseActionRelease)
	if e.inc.Held() {
		t.Error("increment button still held after release")
	}
	if got := value.Get(); got != 6 {
		t.Errorf("value after release = %v, want 6 (no step on release)", got)
	}
}

func TestObserverNotifiedOnCommit(t *testing.T) {
	value, e := testEditor(t)

	var observed []float64
	value.OnChange(func(v float64) { observed = append(observed, v) })

	e = startEdit(t, e)
	e.input.SetValue("7")
	e = e.Confirm()

	if len(observed) != 1 || observed[0] != 7 {
		t.Errorf("observed writes = %v, want [7]", observed)
	}
}
