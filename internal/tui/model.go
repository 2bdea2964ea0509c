// Package tui provides an interactive terminal interface for browsing and
// editing the changelog, built on bubbletea.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/report"
)

// Model is the bubbletea model for the interactive changelog browser.
type Model struct {
	Entries       []changelog.Entry
	SelectedIndex int

	ShowAddForm     bool
	ShowEditForm    bool
	ShowConfirm     bool
	EditingID       string
	InputText       string
	InputTypeIndex  int
	InputFocus      int
	StatusMessage   string
	Err             error

	store       *changelog.Store
	reportPath  string
	reportTitle string
}

// NewModel loads the store at storePath and builds the initial model.
func NewModel(storePath, reportPath, reportTitle string) (*Model, error) {
	store, err := changelog.Open(storePath)
	if err != nil {
		return nil, fmt.Errorf("opening changelog store: %w", err)
	}

	return &Model{
		Entries:     changelog.SortedNewestFirst(store.List()),
		store:       store,
		reportPath:  reportPath,
		reportTitle: reportTitle,
	}, nil
}

// Run starts the interactive interface and blocks until the user quits.
func Run(storePath, reportPath, reportTitle string) error {
	m, err := NewModel(storePath, reportPath, reportTitle)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive interface: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	if m.ShowAddForm || m.ShowEditForm {
		return m.formView()
	}

	if m.ShowConfirm {
		return m.confirmView()
	}

	if len(m.Entries) == 0 {
		return m.emptyStateView()
	}

	return m.mainView()
}

// SelectedEntry returns the currently highlighted entry, or nil.
func (m *Model) SelectedEntry() *changelog.Entry {
	if m.SelectedIndex >= 0 && m.SelectedIndex < len(m.Entries) {
		return &m.Entries[m.SelectedIndex]
	}
	return nil
}

// refresh reloads the display list from the store, newest first, and clamps
// the selection.
func (m *Model) refresh() {
	m.Entries = changelog.SortedNewestFirst(m.store.List())
	if m.SelectedIndex >= len(m.Entries) {
		m.SelectedIndex = len(m.Entries) - 1
	}
	if m.SelectedIndex < 0 {
		m.SelectedIndex = 0
	}
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowAddForm || m.ShowEditForm {
		return m.handleFormInput(msg)
	}

	if m.ShowConfirm {
		return m.handleConfirmInput(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.SelectedIndex > 0 {
			m.SelectedIndex--
		}
	case "down", "j":
		if m.SelectedIndex < len(m.Entries)-1 {
			m.SelectedIndex++
		}
	case "n", "a":
		m.ShowAddForm = true
		m.InputText = ""
		m.InputTypeIndex = 0
		m.InputFocus = 0
		m.StatusMessage = ""
	case "e":
		if entry := m.SelectedEntry(); entry != nil {
			m.ShowEditForm = true
			m.EditingID = entry.ID
			m.InputText = entry.Description
			m.InputTypeIndex = typeIndex(entry.ChangeType)
			m.InputFocus = 0
			m.StatusMessage = ""
		}
	case "d":
		if m.SelectedEntry() != nil {
			m.ShowConfirm = true
			m.StatusMessage = ""
		}
	case "g":
		m.generateReport()
	}
	return m, nil
}

func (m *Model) handleConfirmInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		if entry := m.SelectedEntry(); entry != nil {
			if err := m.store.Remove(entry.ID); err != nil {
				m.Err = err
			} else {
				m.StatusMessage = fmt.Sprintf("Removed entry %s", entry.ID)
				m.refresh()
			}
		}
		m.ShowConfirm = false
	case "n", "N", "esc", "ctrl+c", "q":
		m.ShowConfirm = false
	}
	return m, nil
}

func (m *Model) handleFormInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.closeForm()
	case "tab", "shift+tab":
		m.InputFocus = 1 - m.InputFocus
	case "left":
		if m.InputFocus == 1 {
			m.InputTypeIndex = (m.InputTypeIndex + 2) % 3
		}
	case "right":
		if m.InputFocus == 1 {
			m.InputTypeIndex = (m.InputTypeIndex + 1) % 3
		}
	case " ":
		if m.InputFocus == 1 {
			m.InputTypeIndex = (m.InputTypeIndex + 1) % 3
		} else {
			m.InputText += " "
		}
	case "enter":
		m.submitForm()
	case "backspace":
		if m.InputFocus == 0 && len(m.InputText) > 0 {
			runes := []rune(m.InputText)
			m.InputText = string(runes[:len(runes)-1])
		}
	default:
		if m.InputFocus == 0 {
			runes := []rune(msg.String())
			if len(runes) == 1 {
				m.InputText += string(runes[0])
			}
		}
	}
	return m, nil
}

func (m *Model) submitForm() {
	changeType := changelog.ValidChangeTypes()[m.InputTypeIndex]

	var err error
	if m.ShowAddForm {
		_, err = m.store.Add(changeType, m.InputText)
	} else {
		_, err = m.store.Edit(m.EditingID, changelog.Update{
			ChangeType:  changeType,
			Description: m.InputText,
		})
	}

	if err != nil {
		m.Err = err
		return
	}

	m.Err = nil
	m.closeForm()
	m.refresh()
}

func (m *Model) closeForm() {
	m.ShowAddForm = false
	m.ShowEditForm = false
	m.EditingID = ""
	m.InputText = ""
	m.Err = nil
}

func (m *Model) generateReport() {
	if err := report.WriteFile(m.reportPath, m.store.List(), report.Options{Title: m.reportTitle}); err != nil {
		m.Err = err
		return
	}
	m.Err = nil
	m.StatusMessage = fmt.Sprintf("Report written to %s", m.reportPath)
}

// typeIndex maps a change type to its position in ValidChangeTypes.
func typeIndex(t changelog.ChangeType) int {
	for i, v := range changelog.ValidChangeTypes() {
		if v == t {
			return i
		}
	}
	return 0
}
