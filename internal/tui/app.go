package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/stepfield/stepfield/internal/logging"
	"github.com/stepfield/stepfield/internal/presets"
	"github.com/stepfield/stepfield/internal/stepper"
)

// appKeyMap defines key bindings for the playground
type appKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Edit      key.Binding
	Increment key.Binding
	Decrement key.Binding
	Next      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Increment, k.Decrement, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Edit, k.Next},
		{k.Increment, k.Decrement, k.Quit},
	}
}

func newAppKeyMap() appKeyMap {
	return appKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous field"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next field"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit"),
		),
		Increment: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "step up"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "step down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "commit & next"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Row binds one editor to its preset name.
type Row struct {
	Name   string
	Editor stepper.Editor
}

// AppModel hosts a column of editors, one per preset. The cursor selects
// the row that receives key input; mouse presses are routed to the row
// under the pointer.
type AppModel struct {
	rows   []Row
	cursor int

	// UI state
	Width  int
	Height int

	// Help
	Help help.Model
	Keys appKeyMap
}

// NewAppModel builds the playground from the given presets.
func NewAppModel(reg *presets.Registry) (AppModel, error) {
	var rows []Row
	for _, name := range reg.Names() {
		field := reg.Get(name)
		binding := stepper.NewBinding(field.Value)

		fieldName := name
		binding.OnChange(func(v float64) {
			logging.Debug("value changed",
				zap.String("field", fieldName),
				zap.Float64("value", v),
			)
		})

		editor, err := stepper.New(binding, field.Options()...)
		if err != nil {
			return AppModel{}, fmt.Errorf("preset %q: %w", name, err)
		}
		rows = append(rows, Row{Name: name, Editor: editor})
	}
	if len(rows) == 0 {
		return AppModel{}, fmt.Errorf("no presets to edit")
	}

	return AppModel{
		rows: rows,
		Help: help.New(),
		Keys: newAppKeyMap(),
	}, nil
}

// Init implements tea.Model
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages and routes them to the editors
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Repeat timer firings and textinput blink messages fan out to every
	// editor; each editor picks out what belongs to it.
	var cmds []tea.Cmd
	for i := range m.rows {
		var cmd tea.Cmd
		m.rows[i].Editor, cmd = m.rows[i].Editor.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// handleKey routes key input to the active row
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	row := &m.rows[m.cursor]

	// Tab is the explicit focus-loss path: the current edit is blurred
	// (validated, or silently closed if cancelled) before moving on.
	if key.Matches(msg, m.Keys.Next) {
		row.Editor = row.Editor.Blur()
		if row.Editor.Mode() == stepper.Display && row.Editor.ActiveAlert() == nil {
			m.cursor = (m.cursor + 1) % len(m.rows)
		}
		return m, nil
	}

	// An open edit or an active alert owns the keyboard.
	if row.Editor.Mode() == stepper.Editing || row.Editor.ActiveAlert() != nil {
		var cmd tea.Cmd
		row.Editor, cmd = row.Editor.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		logging.Info("quitting playground")
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Up):
		m.cursor--
		if m.cursor < 0 {
			m.cursor = len(m.rows) - 1
		}
		return m, nil

	case key.Matches(msg, m.Keys.Down):
		m.cursor++
		if m.cursor >= len(m.rows) {
			m.cursor = 0
		}
		return m, nil
	}

	var cmd tea.Cmd
	row.Editor, cmd = row.Editor.Update(msg)
	return m, cmd
}

// handleMouse routes pointer events to the row under the pointer
func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionRelease {
		// Releases stop every hold no matter where the pointer ended up.
		for i := range m.rows {
			m.rows[i].Editor = m.rows[i].Editor.ReleaseButtons()
		}
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	idx := msg.Y - contentTop
	if idx < 0 || idx >= len(m.rows) {
		return m, nil
	}

	// Focus is exclusive: a press on this row ends any edit left open on
	// another row first, same as the tab path. If that blur fails
	// validation the failed edit keeps focus with its alert showing and
	// the press is not delivered.
	for i := range m.rows {
		if i == idx {
			continue
		}
		m.rows[i].Editor = m.rows[i].Editor.Blur()
		if m.rows[i].Editor.Mode() == stepper.Editing || m.rows[i].Editor.ActiveAlert() != nil {
			m.cursor = i
			return m, nil
		}
	}
	m.cursor = idx

	var cmd tea.Cmd
	m.rows[idx].Editor, cmd = m.rows[idx].Editor.HandleMouse(msg.X-m.rowOriginX(), msg.Action)
	return m, cmd
}

// rowOriginX is the column where each editor starts: cursor marker plus
// the label column.
func (m AppModel) rowOriginX() int {
	return 2 + m.labelColWidth()
}

func (m AppModel) labelColWidth() int {
	w := 0
	for _, row := range m.rows {
		if lw := lipgloss.Width(row.Editor.LabelView()); lw > w {
			w = lw
		}
	}
	return w + 2
}

// View renders the playground
func (m AppModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(AppName))
	b.WriteString("\n\n")

	labelW := m.labelColWidth()
	for i, row := range m.rows {
		marker := "  "
		if i == m.cursor {
			marker = CursorStyle.Render("> ")
		}
		label := row.Editor.LabelView()
		pad := labelW - lipgloss.Width(label)
		if pad < 0 {
			pad = 0
		}
		b.WriteString(marker)
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(row.Editor.View())
		b.WriteString("\n")
	}

	for _, row := range m.rows {
		if alert := row.Editor.ActiveAlert(); alert != nil {
			b.WriteString("\n")
			b.WriteString(stepper.RenderAlert(alert, alertWidth(m.Width)))
			b.WriteString("\n")
			break
		}
	}

	b.WriteString("\n")
	b.WriteString(m.Help.View(m.Keys))
	return b.String()
}

// Values returns the current value of every row, keyed by preset name.
func (m AppModel) Values() map[string]float64 {
	values := make(map[string]float64, len(m.rows))
	for _, row := range m.rows {
		values[row.Name] = row.Editor.Value()
	}
	return values
}

// Run starts the playground over the given presets.
func Run(reg *presets.Registry) error {
	model, err := NewAppModel(reg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
