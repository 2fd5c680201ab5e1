package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stepfield/stepfield/internal/presets"
	"github.com/stepfield/stepfield/internal/stepper"
)

func testModel(t *testing.T) AppModel {
	t.Helper()
	m, err := NewAppModel(presets.NewRegistry())
	if err != nil {
		t.Fatalf("NewAppModel() error = %v", err)
	}
	return m
}

func update(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(AppModel)
	if !ok {
		t.Fatalf("Update() returned %T, want AppModel", updated)
	}
	return model
}

func TestNewAppModelBuildsRowPerPreset(t *testing.T) {
	reg := presets.NewRegistry()
	m := testModel(t)

	if len(m.rows) != len(reg.Fields) {
		t.Errorf("rows = %d, want %d (one per preset)", len(m.rows), len(reg.Fields))
	}
	for i := 1; i < len(m.rows); i++ {
		if m.rows[i-1].Name >= m.rows[i].Name {
			t.Errorf("rows not in preset-name order: %q before %q", m.rows[i-1].Name, m.rows[i].Name)
		}
	}
}

func TestNewAppModelRejectsEmptyRegistry(t *testing.T) {
	if _, err := NewAppModel(&presets.Registry{Version: 1}); err == nil {
		t.Error("NewAppModel(empty registry) error = nil, want error")
	}
}

func TestCursorNavigationWraps(t *testing.T) {
	m := testModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.cursor)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != len(m.rows)-1 {
		t.Errorf("cursor after wrap = %d, want %d", m.cursor, len(m.rows)-1)
	}
}

func TestStepKeyReachesActiveRow(t *testing.T) {
	m := testModel(t)

	before := m.rows[0].Editor.Value()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	after := m.rows[0].Editor.Value()

	step := m.rows[0].Editor.Config().Increment
	if after != before+step {
		t.Errorf("value after '+' = %v, want %v", after, before+step)
	}
}

func TestEnterOpensEditOnActiveRow(t *testing.T) {
	m := testModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.rows[0].Editor.Mode() != stepper.Editing {
		t.Errorf("row 0 mode = %v after enter, want Editing", m.rows[0].Editor.Mode())
	}
	// Navigation keys now belong to the edit, not the cursor.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 0 {
		t.Errorf("cursor = %d while editing, want 0 (unmoved)", m.cursor)
	}
}

func TestTabBlursEditAndAdvances(t *testing.T) {
	m := testModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	if m.rows[0].Editor.Mode() != stepper.Display {
		t.Errorf("row 0 mode after tab = %v, want Display (blur commits)", m.rows[0].Editor.Mode())
	}
	if m.cursor != 1 {
		t.Errorf("cursor after tab = %d, want 1", m.cursor)
	}
}

func TestMouseReleaseStopsAllHolds(t *testing.T) {
	m := testModel(t)

	// Press the increment affordance of the first row.
	x := m.rowOriginX() + incrementColumn(m.rows[0].Editor)
	m = update(t, m, tea.MouseMsg{
		X:      x,
		Y:      contentTop,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	before := m.rows[0].Editor.Value()
	m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease})
	if got := m.rows[0].Editor.Value(); got != before {
		t.Errorf("value changed on release: %v -> %v", before, got)
	}
}

func TestMousePressOnOtherRowClosesOpenEdit(t *testing.T) {
	m := testModel(t)

	// Open an edit on row 0, then press row 1's value zone.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.rows[0].Editor.Mode() != stepper.Editing {
		t.Fatalf("row 0 mode = %v after enter, want Editing", m.rows[0].Editor.Mode())
	}

	x := m.rowOriginX() + valueColumn(m.rows[1].Editor)
	m = update(t, m, tea.MouseMsg{
		X:      x,
		Y:      contentTop + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	// Focus is exclusive: the old edit is blurred (committing its
	// untouched draft) before the press reaches row 1.
	if m.rows[0].Editor.Mode() != stepper.Display {
		t.Errorf("row 0 mode = %v after press on row 1, want Display", m.rows[0].Editor.Mode())
	}
	if m.rows[1].Editor.Mode() != stepper.Editing {
		t.Errorf("row 1 mode = %v after value-zone press, want Editing", m.rows[1].Editor.Mode())
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d after press on row 1, want 1", m.cursor)
	}
}

func TestMousePressElsewhereKeepsFailedEditFocused(t *testing.T) {
	m := testModel(t)

	// Open an edit on row 0 and spoil the draft.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	x := m.rowOriginX() + valueColumn(m.rows[1].Editor)
	m = update(t, m, tea.MouseMsg{
		X:      x,
		Y:      contentTop + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	// The blur failed validation, so row 0 keeps focus with its alert
	// and the press never reaches row 1.
	if m.rows[0].Editor.ActiveAlert() == nil {
		t.Error("row 0 ActiveAlert() = nil, want format alert from failed blur")
	}
	if m.rows[1].Editor.Mode() != stepper.Display {
		t.Errorf("row 1 mode = %v, want Display (press swallowed)", m.rows[1].Editor.Mode())
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 (alerting row keeps focus)", m.cursor)
	}
}

func TestMousePressOutsideRowsIgnored(t *testing.T) {
	m := testModel(t)

	values := m.Values()
	m = update(t, m, tea.MouseMsg{
		X:      0,
		Y:      contentTop + len(m.rows) + 5,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	for name, v := range m.Values() {
		if v != values[name] {
			t.Errorf("value %q changed after out-of-bounds press: %v -> %v", name, values[name], v)
		}
	}
}

func TestViewContainsEveryRow(t *testing.T) {
	m := testModel(t)
	m.Width = 80
	m.Height = 24

	view := m.View()
	if view == "" {
		t.Fatal("View() returned empty string")
	}
	lines := 0
	for _, r := range view {
		if r == '\n' {
			lines++
		}
	}
	// Title, blank, one line per row, blank, help.
	if lines < len(m.rows)+3 {
		t.Errorf("View() has %d lines, want at least %d", lines, len(m.rows)+3)
	}
}

// incrementColumn and valueColumn find an affordance's column within an
// editor row by probing the zone map.
func incrementColumn(e stepper.Editor) int {
	return columnOf(e, stepper.ZoneIncrement)
}

func valueColumn(e stepper.Editor) int {
	return columnOf(e, stepper.ZoneValue)
}

func columnOf(e stepper.Editor, zone stepper.Zone) int {
	for x := 0; x < 64; x++ {
		if e.ZoneAt(x) == zone {
			return x
		}
	}
	return 0
}
