package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	dir := t.TempDir()
	m, err := NewModel(
		filepath.Join(dir, "changelog.yaml"),
		filepath.Join(dir, "changelog.html"),
		"Test Changelog",
	)
	require.NoError(t, err)
	return m
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(keyMsg(string(r)))
	}
}

func TestModel_EmptyState(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	assert.Empty(t, m.Entries)
	assert.Contains(t, m.View(), "No entries yet")
}

func TestModel_AddEntryFlow(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m.Update(keyMsg("n"))
	assert.True(t, m.ShowAddForm)

	typeText(m, "Added the parser")
	m.Update(keyMsg("enter"))

	assert.False(t, m.ShowAddForm)
	require.Len(t, m.Entries, 1)
	assert.Equal(t, "Added the parser", m.Entries[0].Description)
	assert.Equal(t, changelog.ChangeCreated, m.Entries[0].ChangeType)
}

func TestModel_AddWithTypeSelection(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m.Update(keyMsg("n"))
	typeText(m, "Tweaked the parser")
	m.Update(keyMsg("tab"))
	m.Update(keyMsg("right"))
	m.Update(keyMsg("enter"))

	require.Len(t, m.Entries, 1)
	assert.Equal(t, changelog.ChangeEdited, m.Entries[0].ChangeType)
}

func TestModel_AddBlankDescriptionKeepsFormOpen(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m.Update(keyMsg("n"))
	m.Update(keyMsg("enter"))

	assert.True(t, m.ShowAddForm)
	assert.Error(t, m.Err)
	assert.Empty(t, m.Entries)
}

func TestModel_EditEntryFlow(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m.Update(keyMsg("n"))
	typeText(m, "Original note")
	m.Update(keyMsg("enter"))
	require.Len(t, m.Entries, 1)
	originalID := m.Entries[0].ID

	m.Update(keyMsg("e"))
	assert.True(t, m.ShowEditForm)
	assert.Equal(t, "Original note", m.InputText)

	typeText(m, " updated")
	m.Update(keyMsg("enter"))

	require.Len(t, m.Entries, 1)
	assert.Equal(t, originalID, m.Entries[0].ID)
	assert.Equal(t, "Original note updated", m.Entries[0].Description)
}

func TestModel_DeleteRequiresConfirmation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m.Update(keyMsg("n"))
	typeText(m, "Doomed entry")
	m.Update(keyMsg("enter"))
	require.Len(t, m.Entries, 1)

	// Decline first
	m.Update(keyMsg("d"))
	assert.True(t, m.ShowConfirm)
	m.Update(keyMsg("esc"))
	assert.False(t, m.ShowConfirm)
	assert.Len(t, m.Entries, 1)

	// Confirm
	m.Update(keyMsg("d"))
	m.Update(keyMsg("y"))
	assert.Empty(t, m.Entries)
}

func TestModel_Navigation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	for _, desc := range []string{"first", "second", "third"} {
		m.Update(keyMsg("n"))
		typeText(m, desc)
		m.Update(keyMsg("enter"))
	}
	require.Len(t, m.Entries, 3)

	assert.Equal(t, 0, m.SelectedIndex)
	m.Update(keyMsg("j"))
	assert.Equal(t, 1, m.SelectedIndex)
	m.Update(keyMsg("j"))
	m.Update(keyMsg("j"))
	assert.Equal(t, 2, m.SelectedIndex)
	m.Update(keyMsg("k"))
	assert.Equal(t, 1, m.SelectedIndex)
}

func TestModel_GenerateReport(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.Update(keyMsg("n"))
	typeText(m, "Something happened")
	m.Update(keyMsg("enter"))

	m.Update(keyMsg("g"))
	assert.NoError(t, m.Err)
	assert.Contains(t, m.StatusMessage, "Report written to")
	assert.FileExists(t, m.reportPath)
}

func TestModel_QuitKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
