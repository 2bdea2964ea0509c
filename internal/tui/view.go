package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Align(lipgloss.Center)

	itemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	itemSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Background(lipgloss.Color("235")).
				Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 0)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))

	inputInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// Tag colors follow the HTML report palette (green/blue/red).
	tagStyles = map[changelog.ChangeType]lipgloss.Style{
		changelog.ChangeCreated: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		changelog.ChangeEdited:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		changelog.ChangeDeleted: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
)

func (m *Model) emptyStateView() string {
	return lipgloss.Place(
		80, 24,
		lipgloss.Center, lipgloss.Center,
		titleStyle.Render("chlog")+"\n\n"+
			inactiveStyle.Render("No entries yet. Press 'n' to record one."),
	)
}

func (m *Model) mainView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Width(80).Render("chlog"))
	sb.WriteString("\n\n")

	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.entryListView(),
		"  ",
		m.entryDetailView(),
	)
	sb.WriteString(boxes)
	sb.WriteString("\n")

	if m.StatusMessage != "" {
		sb.WriteString(statusStyle.Render(m.StatusMessage))
		sb.WriteString("\n")
	}
	if m.Err != nil {
		sb.WriteString(errorStyle.Render("Error: " + m.Err.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("Navigate: Up/Down | New: n | Edit: e | Delete: d | Report: g | Quit: q"))

	return sb.String()
}

func (m *Model) entryListView() string {
	var sb strings.Builder

	sb.WriteString("Entries\n\n")

	for i, e := range m.Entries {
		tag := tagStyles[e.ChangeType].Render(string(e.ChangeType))
		desc := truncate(e.Description, 20)
		line := fmt.Sprintf("%s %s", tag, desc)

		if i == m.SelectedIndex {
			sb.WriteString(itemSelectedStyle.Render(line))
		} else {
			sb.WriteString(itemStyle.Render(line))
		}
		sb.WriteString("\n")
	}

	return boxStyle.Width(34).Height(15).Render(sb.String())
}

func (m *Model) entryDetailView() string {
	e := m.SelectedEntry()
	if e == nil {
		return boxStyle.Width(42).Height(15).Render("Select an entry")
	}

	var sb strings.Builder
	sb.WriteString(tagStyles[e.ChangeType].Render(string(e.ChangeType)))
	sb.WriteString("\n\n")
	sb.WriteString(e.Description)
	sb.WriteString("\n\n")
	sb.WriteString(inactiveStyle.Render(fmt.Sprintf("ID: %s", e.ID)))
	sb.WriteString("\n")
	sb.WriteString(inactiveStyle.Render(e.Timestamp.Format(time.DateTime)))

	return boxStyle.Width(42).Height(15).Render(sb.String())
}

func (m *Model) formView() string {
	heading := "New Entry"
	if m.ShowEditForm {
		heading = "Edit Entry"
	}

	descMarker := "  "
	if m.InputFocus == 0 {
		descMarker = "→ "
	}
	descLabel := descMarker + "Description: "
	if m.InputFocus == 0 {
		descLabel = inputStyle.Render(descLabel)
	} else {
		descLabel = inputInactiveStyle.Render(descLabel)
	}

	descValue := m.InputText
	if m.InputFocus == 0 {
		descValue = inputStyle.Render(descValue + "█")
	}

	typeMarker := "  "
	if m.InputFocus == 1 {
		typeMarker = "→ "
	}
	typeLabel := typeMarker + "Type: "
	if m.InputFocus == 1 {
		typeLabel = inputStyle.Render(typeLabel)
	} else {
		typeLabel = inputInactiveStyle.Render(typeLabel)
	}

	var types []string
	for i, t := range changelog.ValidChangeTypes() {
		name := string(t)
		if i == m.InputTypeIndex {
			types = append(types, tagStyles[t].Render("["+name+"]"))
		} else {
			types = append(types, inactiveStyle.Render(" "+name+" "))
		}
	}

	errLine := ""
	if m.Err != nil {
		errLine = "\n\n" + errorStyle.Render(m.Err.Error())
	}

	form := fmt.Sprintf("%s%s\n\n%s%s%s\n\n%s",
		descLabel, descValue,
		typeLabel, strings.Join(types, " "),
		errLine,
		helpStyle.Render("Tab: Switch field | Left/Right: Change type | Enter: Save | Esc: Cancel"),
	)

	return lipgloss.Place(
		80, 24,
		lipgloss.Center, lipgloss.Center,
		titleStyle.Render(heading)+"\n\n"+boxStyle.Width(60).Render(form),
	)
}

func (m *Model) confirmView() string {
	e := m.SelectedEntry()
	if e == nil {
		return m.mainView()
	}

	prompt := fmt.Sprintf("Delete entry %s?\n\n%s\n\n%s",
		e.ID,
		truncate(e.Description, 50),
		helpStyle.Render("y: Delete | n/Esc: Cancel"),
	)

	return lipgloss.Place(
		80, 24,
		lipgloss.Center, lipgloss.Center,
		boxStyle.Width(56).Render(prompt),
	)
}

func truncate(s string, maxLen int) string {
	flat := strings.Join(strings.Fields(s), " ")
	if len(flat) <= maxLen {
		return flat
	}
	if maxLen <= 3 {
		return flat[:maxLen]
	}
	return flat[:maxLen-3] + "..."
}
