package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/timesynx/internal/clock"
	"github.com/javiermolinar/timesynx/internal/overlap"
	"github.com/javiermolinar/timesynx/internal/summary"
	"github.com/javiermolinar/timesynx/internal/tui/input"
	"github.com/javiermolinar/timesynx/internal/tzfmt"
)

const (
	defaultWidth   = 80
	maxSuggestions = 5
	normalHelp     = "j/k move · space toggle · b base · h/l scrub · p play · n live · a add · r replace · t at · s share · y copy · i invite · q quit"
	promptHelp     = "enter run · tab complete · esc cancel"
)

// View renders the TUI.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	sections := []string{
		m.renderHeader(),
		"",
		m.renderCards(),
		"",
		m.renderTimeline(),
		"",
		m.renderWindows(),
		"",
		m.renderFooter(width),
	}
	content := strings.Join(sections, "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "…")
	}
	return m.styles.ViewportStyle.Render(strings.Join(lines, "\n"))
}

// renderHeader renders the title, mode badge and overlap score.
func (m Model) renderHeader() string {
	s := m.summary
	title := m.styles.TitleStyle.Render("timesynx")
	if m.boardName != "" {
		title += m.styles.MutedStyle.Render(" · " + m.boardName)
	}

	var badge string
	switch m.timeMode() {
	case "playing":
		badge = m.styles.BadgePlayingStyle.Render("▶ " + m.player.String())
	case "frozen":
		badge = m.styles.BadgeFrozenStyle.Render("FROZEN")
	default:
		badge = m.styles.BadgeLiveStyle.Render("LIVE")
	}

	when := tzfmt.FormatDate(s.At, s.Base.Timezone).String() + " " +
		tzfmt.FormatClock(s.At, s.Base.Timezone, m.use24h).String()
	score := m.styles.Level(s.Level).Render(fmt.Sprintf("%d/%d in business hours", s.Working, s.Total))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		title, "  ", badge, "  ",
		m.styles.TextStyle.Render(when+" "+s.Base.Name), "  ", score)
}

// renderCards renders one row per card.
func (m Model) renderCards() string {
	if len(m.summary.Cards) == 0 {
		return m.styles.MutedStyle.Render("No cities. Press a to add one.")
	}

	header := fmt.Sprintf("   %-*s %-*s %-*s %-*s %s",
		cityColWidth, "City",
		clockColWidth, "Time",
		dateColWidth, "Date",
		offsetColWidth, "Offset",
		"Weather")
	rows := []string{m.styles.HeaderStyle.Render(header)}

	for i, c := range m.summary.Cards {
		rows = append(rows, m.renderCard(i, c))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderCard(i int, c summary.Card) string {
	cursor := " "
	if i == m.cursor {
		cursor = ">"
	}
	marker := " "
	if c.Selection.ID == m.summary.Base.ID {
		marker = m.styles.BaseMarkerStyle.Render("*")
	}

	status := m.styles.OffHoursStyle.Render("○")
	if c.Working {
		status = m.styles.WorkingStyle.Render("●")
	}
	if !c.Selection.Active {
		status = m.styles.MutedStyle.Render("-")
	}

	text := fmt.Sprintf("%-*s %-*s %-*s %-*s %s %d°C  ↑%s ↓%s",
		cityColWidth, ansi.Truncate(c.Selection.Name, cityColWidth, "…"),
		clockColWidth, c.Clock,
		dateColWidth, c.Date,
		offsetColWidth, c.Offset,
		c.Weather.Icon, c.Weather.TemperatureC,
		c.Sun.Sunrise, c.Sun.Sunset)

	style := m.styles.CardStyle
	switch {
	case i == m.cursor:
		style = m.styles.CardCursorStyle
	case !c.Selection.Active:
		style = m.styles.CardInactiveStyle
	}
	return cursor + marker + status + " " + style.Render(text)
}

// renderTimeline renders the overlap of every half hour on the reference day.
func (m Model) renderTimeline() string {
	s := m.summary
	if len(s.Timeline) == 0 {
		return ""
	}

	current := clock.Snap(s.Reference).Slot()
	var cells strings.Builder
	for i, slot := range s.Timeline {
		style := m.styles.Slot(overlap.LevelFor(slot.Overlap, s.Total))
		if i == current {
			style = m.styles.SlotCurrentStyle
		}
		cells.WriteString(style.Render(" "))
	}

	// Hour ruler with a label every six hours; each label spans twelve cells.
	var ruler strings.Builder
	for h := 0; h < 24; h += 6 {
		ruler.WriteString(fmt.Sprintf("%-12s", fmt.Sprintf("%02d", h)))
	}

	return m.styles.HeaderStyle.Render("Overlap ("+s.Base.Name+")") + "\n" +
		cells.String() + "\n" +
		m.styles.MutedStyle.Render(ruler.String())
}

// renderWindows lists the best meeting windows.
func (m Model) renderWindows() string {
	s := m.summary
	title := m.styles.HeaderStyle.Render("Best meeting windows")
	if len(s.Windows) == 0 {
		return title + "\n" + m.styles.MutedStyle.Render("No meeting window with enough overlap")
	}

	rows := []string{title}
	for i, w := range s.Windows {
		level := overlap.LevelFor(w.Overlap, s.Total)
		line := fmt.Sprintf("%d. %s  %s", i+1,
			m.styles.Level(level).Render(summary.WindowLabel(w)),
			m.styles.MutedStyle.Render(fmt.Sprintf("%d/%d cities, %dh", w.Overlap, s.Total, w.Len())))
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}

// renderFooter renders the prompt, suggestions, status and help.
func (m Model) renderFooter(width int) string {
	var parts []string

	if m.mode == ModePrompt {
		box := m.styles.PromptFocusedStyle.Width(max(10, width-2)).Render(m.prompt.View())
		parts = append(parts, box)
		if hint := m.renderSuggestions(); hint != "" {
			parts = append(parts, hint)
		}
	}

	parts = append(parts, m.styles.StatusStyle.Render(m.statusMsgOrDefault()))

	help := normalHelp
	if m.mode == ModePrompt {
		help = promptHelp
	}
	parts = append(parts, m.styles.HelpStyle.Render(help))
	return strings.Join(parts, "\n")
}

// renderSuggestions lists matching commands or cities for the prompt.
func (m Model) renderSuggestions() string {
	value := m.prompt.Value()
	var names []string
	if strings.HasPrefix(value, "/") && !strings.Contains(value, " ") {
		for _, c := range input.PromptMatchingCommands(value, input.Commands) {
			names = append(names, c.Name+" "+c.Description)
		}
	} else {
		for _, c := range input.CitySuggestions(value, maxSuggestions) {
			names = append(names, c.Name+" ("+c.Timezone+")")
		}
	}
	if len(names) > maxSuggestions {
		names = names[:maxSuggestions]
	}
	return m.styles.SuggestionStyle.Render(strings.Join(names, "  "))
}

// statusMsgOrDefault returns the status message or a space to preserve layout.
func (m Model) statusMsgOrDefault() string {
	if m.statusMsg == "" {
		return " "
	}
	return m.statusMsg
}
