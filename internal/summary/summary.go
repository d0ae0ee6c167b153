// Package summary builds the comparison snapshot shared by the CLI and TUI.
package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/timesynx/internal/overlap"
	"github.com/javiermolinar/timesynx/internal/selection"
	"github.com/javiermolinar/timesynx/internal/share"
	"github.com/javiermolinar/timesynx/internal/tzfmt"
	"github.com/javiermolinar/timesynx/internal/weather"
)

// Card is one selection rendered at the summary instant.
type Card struct {
	Selection   selection.Selection
	Clock       tzfmt.Formatted
	Date        tzfmt.Formatted
	Offset      string  // relative to the base card
	OffsetHours float64 // from UTC
	Working     bool
	Weather     weather.Report
	Sun         weather.SunTimes
}

// Summary holds everything shown for a comparison at one instant.
type Summary struct {
	At        time.Time // instant on screen
	Live      bool
	Base      selection.Selection
	Reference time.Time // At in the base zone
	Cards     []Card    // every card in order, inactive ones included
	Working   int       // active cards in working hours at At
	Total     int       // active cards
	Level     overlap.Level
	Windows   []overlap.Window
	Timeline  []overlap.Slot
}

// Options configures Build.
type Options struct {
	Finder  overlap.Finder
	Use24h  bool
	Weather weather.Provider // nil uses weather.Mock
	Now     time.Time        // instant for a live state; zero means time.Now
}

// Build computes the summary for state.
func Build(state share.State, opts Options) *Summary {
	at := opts.Now
	if state.SelectedTime != nil {
		at = *state.SelectedTime
	} else if at.IsZero() {
		at = time.Now()
	}
	provider := opts.Weather
	if provider == nil {
		provider = weather.Mock{}
	}
	finder := opts.Finder
	if finder == (overlap.Finder{}) {
		finder = overlap.DefaultFinder
	}

	sel := state.Selections
	base, _ := sel.Base()
	baseZone := sel.BaseZone()

	ref := at
	if local, err := tzfmt.In(at, baseZone); err == nil {
		ref = local
	}

	zones := sel.ActiveZones()
	s := &Summary{
		At:        at,
		Live:      state.Live(),
		Base:      base,
		Reference: ref,
		Cards:     make([]Card, 0, len(sel)),
		Total:     len(zones),
		Windows:   finder.BestMeetingWindows(zones, ref),
		Timeline:  finder.Timeline(zones, ref),
	}

	for _, item := range sel {
		c := Card{
			Selection:   item,
			Clock:       tzfmt.FormatClock(at, item.Timezone, opts.Use24h),
			Date:        tzfmt.FormatDate(at, item.Timezone),
			Offset:      tzfmt.RelativeOffsetLabel(at, item.Timezone, baseZone),
			OffsetHours: tzfmt.OffsetHours(at, item.Timezone),
			Working:     finder.IsBusinessHours(at, item.Timezone),
			Weather:     provider.Current(item.City),
			Sun:         weather.Sun(at, item.Timezone),
		}
		if item.Active && c.Working {
			s.Working++
		}
		s.Cards = append(s.Cards, c)
	}
	s.Level = overlap.LevelFor(s.Working, s.Total)

	return s
}

// Active returns the cards of active selections.
func (s *Summary) Active() []Card {
	out := make([]Card, 0, s.Total)
	for _, c := range s.Cards {
		if c.Selection.Active {
			out = append(out, c)
		}
	}
	return out
}

// WindowLabel renders a window in the base zone, e.g. "9:00 AM - 11:00 AM".
func WindowLabel(w overlap.Window) string {
	return tzfmt.SlotLabel(w.Start%24, 0) + " - " + tzfmt.SlotLabel(w.End%24, 0)
}

// WindowStart returns the instant a window opens on the reference day.
func (s *Summary) WindowStart(w overlap.Window) time.Time {
	r := s.Reference
	return time.Date(r.Year(), r.Month(), r.Day(), w.Start, 0, 0, 0, r.Location())
}

// LocalRange renders a window in zone, e.g. "03:00 PM - 05:00 PM".
func (s *Summary) LocalRange(w overlap.Window, zone string, use24h bool) string {
	start := s.WindowStart(w)
	end := start.Add(time.Duration(w.Len()) * time.Hour)
	return tzfmt.FormatClock(start, zone, use24h).String() + " - " + tzfmt.FormatClock(end, zone, use24h).String()
}

// Text renders a plain-text digest suitable for pasting into chat.
func (s *Summary) Text(use24h bool) string {
	var b strings.Builder

	when := "now"
	if !s.Live {
		when = tzfmt.FormatDate(s.At, s.Base.Timezone).String() + " " + tzfmt.FormatClock(s.At, s.Base.Timezone, use24h).String()
	}
	fmt.Fprintf(&b, "Times %s (%d/%d in business hours)\n", when, s.Working, s.Total)
	for _, c := range s.Active() {
		marker := " "
		if c.Selection.ID == s.Base.ID {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %-14s %s  %s  %s\n", marker, c.Selection.Name, c.Clock, c.Date, c.Offset)
	}

	if len(s.Windows) == 0 {
		b.WriteString("No meeting window with enough overlap\n")
		return b.String()
	}
	b.WriteString("Best meeting windows:\n")
	for _, w := range s.Windows {
		fmt.Fprintf(&b, "  %s (%d cities)\n", WindowLabel(w), w.Overlap)
	}
	return b.String()
}
