package ui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/javiermolinar/timesynx/internal/overlap"
	"github.com/javiermolinar/timesynx/internal/summary"
	"github.com/javiermolinar/timesynx/internal/tzfmt"
)

// printHeader prints the moment on screen and the business-hours score.
func printHeader(w io.Writer, s *summary.Summary, use24h bool) {
	when := tzfmt.FormatDate(s.At, s.Base.Timezone).String() + " " +
		tzfmt.FormatClock(s.At, s.Base.Timezone, use24h).String()
	mode := formatLevel(overlap.LevelHigh, "live")
	if !s.Live {
		mode = formatFrozen("frozen")
	}
	score := fmt.Sprintf("%d/%d in business hours", s.Working, s.Total)

	fmt.Fprintf(w, "=== %s %s (%s) ===\n", formatHeader(when), s.Base.Name, mode)
	fmt.Fprintf(w, "%s %s\n\n", formatLevel(s.Level, score), formatMuted("["+s.Level.String()+"]"))
}

// printCards prints one row per card. Inactive cards are listed only when all is set.
func printCards(w io.Writer, s *summary.Summary, all bool) {
	for _, c := range s.Cards {
		if !c.Selection.Active && !all {
			continue
		}
		marker := " "
		if c.Selection.ID == s.Base.ID {
			marker = formatBase("*")
		}
		status := formatMuted("○ off hours")
		if c.Working {
			status = formatLevel(overlap.LevelHigh, "● working")
		}
		if !c.Selection.Active {
			status = formatMuted("- inactive")
		}
		fmt.Fprintf(w, " %s %-16s %-9s %-17s %-10s %s\n",
			marker, c.Selection.Name, c.Clock, c.Date, c.Offset, status)
	}
}

// printWindows prints the best windows in the base zone and for each active card.
func printWindows(w io.Writer, s *summary.Summary, use24h bool) {
	if len(s.Windows) == 0 {
		fmt.Fprintln(w, formatMuted("No meeting window with enough overlap"))
		return
	}
	fmt.Fprintln(w, formatHeader("Best meeting windows"))
	for i, win := range s.Windows {
		level := overlap.LevelFor(win.Overlap, s.Total)
		fmt.Fprintf(w, "%d. %s %s\n", i+1,
			formatLevel(level, summary.WindowLabel(win)+" "+s.Base.Name),
			formatMuted(fmt.Sprintf("(%d/%d cities, %dh)", win.Overlap, s.Total, win.Len())))
		for _, c := range s.Active() {
			fmt.Fprintf(w, "     %-16s %s\n", c.Selection.Name, s.LocalRange(win, c.Selection.Timezone, use24h))
		}
	}
}

// Timeline cell glyphs by overlap level, readable without color.
var slotGlyphs = [4]string{"░", "▒", "▓", "█"}

// TimelineBar renders one cell per slot, shaded by overlap level.
func TimelineBar(slots []overlap.Slot, total int) string {
	var b strings.Builder
	for _, slot := range slots {
		l := overlap.LevelFor(slot.Overlap, total)
		b.WriteString(formatLevel(l, slotGlyphs[l]))
	}
	return b.String()
}

// timelineRuler labels every sixth hour under a 48-cell bar.
func timelineRuler() string {
	var b strings.Builder
	for h := 0; h < 24; h += 6 {
		fmt.Fprintf(&b, "%-12s", fmt.Sprintf("%02d", h))
	}
	return b.String()
}

// formatUTCOffset renders fractional hours as "UTC+05:30".
func formatUTCOffset(hours float64) string {
	sign := "+"
	if hours < 0 {
		sign = "-"
	}
	minutes := int(math.Round(math.Abs(hours) * 60))
	return fmt.Sprintf("UTC%s%02d:%02d", sign, minutes/60, minutes%60)
}
