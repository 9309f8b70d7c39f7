package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/spanset/internal/labels"
	"github.com/manav03panchal/spanset/internal/model"
	"github.com/manav03panchal/spanset/internal/output"
	"github.com/manav03panchal/spanset/internal/timespan"
)

// Editor is the editing session driven by the form.
type Editor interface {
	Input(raw string) error
	SelectUnit(u timespan.Unit) error
	Reset() error
	Unit() timespan.Unit
	Value() int64
	Duration() int64
	Modified() bool
	Setting() *model.Setting
}

// EditorModel is the bubbletea model for editing one time-span setting.
type EditorModel struct {
	editor  Editor
	catalog *labels.Catalog
	input   textinput.Model

	// UI state
	width int
	err   error
	done  bool
}

// NewEditorModel creates a form bound to editor.
func NewEditorModel(editor Editor, catalog *labels.Catalog) *EditorModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 15
	ti.Width = 16
	ti.Placeholder = "0"
	ti.Focus()

	m := &EditorModel{
		editor:  editor,
		catalog: catalog,
		input:   ti,
	}
	m.syncInput()
	return m
}

// Init initializes the model.
func (m *EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input.
func (m *EditorModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "ctrl+c":
		m.done = true
		return m, tea.Quit

	case "tab", "right":
		m.selectUnit(nextUnit(m.editor.Unit(), 1))
		return m, nil

	case "shift+tab", "left":
		m.selectUnit(nextUnit(m.editor.Unit(), -1))
		return m, nil

	case "ctrl+r":
		m.err = m.editor.Reset()
		m.syncInput()
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		msg.Runes = digitsOnly(msg.Runes)
		if len(msg.Runes) == 0 {
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.err = m.editor.Input(m.input.Value())
		m.syncInput()
	}
	return m, cmd
}

func (m *EditorModel) selectUnit(u timespan.Unit) {
	m.err = m.editor.SelectUnit(u)
	m.syncInput()
}

// syncInput shows the sanitized value held by the session.
func (m *EditorModel) syncInput() {
	text := strconv.FormatInt(m.editor.Value(), 10)
	if m.input.Value() != text {
		m.input.SetValue(text)
		m.input.CursorEnd()
	}
}

// Done reports whether the user closed the form.
func (m *EditorModel) Done() bool {
	return m.done
}

// Err returns the last error reported by the session.
func (m *EditorModel) Err() error {
	return m.err
}

// View renders the form.
func (m *EditorModel) View() string {
	setting := m.editor.Setting()

	var sections []string
	sections = append(sections, LabelRow(setting.DisplayLabel(), m.catalog.T("reset"), m.editor.Modified()))
	sections = append(sections, StyleSubtitle.Render(setting.ID))
	sections = append(sections, "")
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center,
		"["+m.input.View()+"]", "  ", UnitSelect(m.catalog.Options(), m.editor.Unit())))
	sections = append(sections, StyleSubtitle.Render(fmt.Sprintf("= %s (default %s)",
		output.FormatMillis(m.editor.Duration()), output.FormatMillis(setting.PackageValue))))

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	sections = append(sections, HelpBar())

	box := StyleFormBox
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// Run starts the editor TUI and blocks until the user leaves it.
func Run(editor Editor, catalog *labels.Catalog) error {
	m := NewEditorModel(editor, catalog)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.Err()
}
