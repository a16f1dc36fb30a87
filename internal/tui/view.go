package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Vinillian/daily-tracker/internal/models"
)

var (
	barStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	periodStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	taskStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")).
			Bold(true)

	dirtyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))
)

func (m Model) View() string {
	var b strings.Builder

	title := "📅 " + m.dateKey
	if m.dirty {
		title += dirtyStyle.Render(" [modified]")
	}
	b.WriteString(barStyle.Render(title))
	b.WriteString("\n\n")

	row := 0
	for _, p := range models.Periods() {
		tasks := m.day.Tasks(p)
		b.WriteString(periodStyle.Render(fmt.Sprintf("%s %s", p.Icon(), p)))
		b.WriteString(metaStyle.Render(fmt.Sprintf("  (%d)", len(tasks))))
		b.WriteString("\n")

		for _, t := range tasks {
			marker := "  "
			style := taskStyle
			if row == m.cursor {
				marker = cursorStyle.Render("❯ ")
				style = cursorStyle
			} else if t.Status == models.StatusDone {
				style = doneStyle
			}

			line := fmt.Sprintf("%s %s", t.Status.Icon(), style.Render(t.Name))
			if t.Time != "" {
				line += metaStyle.Render("  " + t.Time)
			}
			line += metaStyle.Render("  " + t.Category)
			line += "  " + progressBar(t.Progress)

			b.WriteString(marker + line + "\n")
			row++
		}
		if len(tasks) == 0 {
			b.WriteString(metaStyle.Render("  (no tasks)") + "\n")
		}
		b.WriteString("\n")
	}

	if len(m.day.State.Values) > 0 {
		b.WriteString(periodStyle.Render("📊 Состояние") + "\n")
		for _, v := range m.day.State.Values {
			b.WriteString(fmt.Sprintf("  %s: %s\n", v.Category, v.Value))
		}
		b.WriteString("\n")
	}

	if len(m.day.Notes) > 0 {
		b.WriteString(periodStyle.Render("📝 Заметки") + "\n")
		for _, n := range m.day.Notes {
			b.WriteString(noteStyle.Render("  • "+n) + "\n")
		}
		b.WriteString("\n")
	}

	switch m.mode {
	case modeEditName:
		b.WriteString(promptStyle.Render("rename: ") + m.input.View() + "\n")
	case modeEditTime:
		b.WriteString(promptStyle.Render("time: ") + m.input.View() + "\n")
	case modeAddTask:
		b.WriteString(promptStyle.Render(fmt.Sprintf("add to %s: ", m.addPeriod)) + m.input.View() + "\n")
	case modeAddNote:
		b.WriteString(promptStyle.Render("note: ") + m.input.View() + "\n")
	default:
		if m.statusMsg != "" {
			b.WriteString(m.statusMsg + "\n")
		}
		b.WriteString(hintStyle.Render("space status · +/- progress · c category · e/t edit · a add · D delete · n note · s save · q quit"))
	}

	return b.String()
}

// progressBar renders a ten-cell bar plus the numeric value.
func progressBar(progress int) string {
	filled := progress / 10
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	return fmt.Sprintf("%s %3d%%", bar, progress)
}
