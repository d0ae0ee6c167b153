package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timesynx/internal/overlap"
	"github.com/javiermolinar/timesynx/internal/tui/theme"
)

// Fixed column widths of the cards table.
const (
	cityColWidth   = 18
	clockColWidth  = 10
	dateColWidth   = 17
	offsetColWidth = 8
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Title and header
	TitleStyle  lipgloss.Style
	HeaderStyle lipgloss.Style

	// Time mode badges
	BadgeLiveStyle    lipgloss.Style
	BadgeFrozenStyle  lipgloss.Style
	BadgePlayingStyle lipgloss.Style

	// Card rows
	CardStyle         lipgloss.Style
	CardCursorStyle   lipgloss.Style
	CardInactiveStyle lipgloss.Style
	BaseMarkerStyle   lipgloss.Style
	WorkingStyle      lipgloss.Style
	OffHoursStyle     lipgloss.Style

	// Timeline cells, indexed by overlap level
	SlotStyles       [4]lipgloss.Style
	SlotCurrentStyle lipgloss.Style

	// Plain text
	TextStyle  lipgloss.Style
	MutedStyle lipgloss.Style

	// Prompt box
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	PromptCharStyle    lipgloss.Style
	SuggestionStyle    lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Viewport background
	ViewportStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	s := &Styles{palette: p}

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Background(p.Bg)

	s.HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.FgMuted).
		Background(p.Bg)

	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	s.BadgeLiveStyle = badge.
		Background(p.Level(overlap.LevelHigh)).
		Foreground(p.TextOnLevel(overlap.LevelHigh))
	s.BadgeFrozenStyle = badge.
		Background(p.Warning).
		Foreground(p.TextOnWarning)
	s.BadgePlayingStyle = badge.
		Background(p.Accent).
		Foreground(p.TextOnAccent)

	s.CardStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.Bg)

	// Cursor row: selection background keeps per-cell colors readable.
	s.CardCursorStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.BgSelection).
		Bold(true)

	s.CardInactiveStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.BaseMarkerStyle = lipgloss.NewStyle().
		Foreground(p.Base).
		Bold(true)

	s.WorkingStyle = lipgloss.NewStyle().
		Foreground(p.Level(overlap.LevelHigh))

	s.OffHoursStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted)

	for l := overlap.LevelNone; l <= overlap.LevelHigh; l++ {
		s.SlotStyles[l] = lipgloss.NewStyle().
			Background(p.LevelBg(l)).
			Foreground(p.TextOnLevel(l))
	}
	s.SlotCurrentStyle = lipgloss.NewStyle().
		Background(p.Warning).
		Foreground(p.TextOnWarning).
		Bold(true)

	s.TextStyle = lipgloss.NewStyle().Foreground(p.Fg)
	s.MutedStyle = lipgloss.NewStyle().Foreground(p.FgMuted)

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.FgMuted).
		BorderBackground(p.Bg).
		Background(p.BgHighlight).
		Foreground(p.Fg).
		Padding(0, 1)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		BorderBackground(p.Bg).
		Background(p.BgSelection).
		Foreground(p.Fg).
		Bold(true).
		Padding(0, 1)

	s.PromptCharStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	s.SuggestionStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg).
		Italic(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Background(p.Bg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.ViewportStyle = lipgloss.NewStyle().
		Background(p.Bg)

	return s
}

// Slot returns the timeline style for an overlap level.
func (s *Styles) Slot(l overlap.Level) lipgloss.Style {
	if l < overlap.LevelNone {
		l = overlap.LevelNone
	}
	if l > overlap.LevelHigh {
		l = overlap.LevelHigh
	}
	return s.SlotStyles[l]
}

// Level returns a foreground style in the level color.
func (s *Styles) Level(l overlap.Level) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.palette.Level(l)).Bold(true)
}
