// Package invite turns a meeting window into an iCalendar file.
package invite

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/emersion/go-ical"

	"github.com/javiermolinar/timesynx/internal/overlap"
	"github.com/javiermolinar/timesynx/internal/selection"
	"github.com/javiermolinar/timesynx/internal/tzfmt"
)

const productID = "-//timesynx//timesynx//EN"

// Event describes the meeting to export.
type Event struct {
	Summary    string
	Window     overlap.Window
	Day        time.Time // calendar day and location the window hours refer to
	Selections selection.Set
	URL        string // optional share link
}

// Start returns the window start on Day.
func (e Event) Start() time.Time {
	return time.Date(e.Day.Year(), e.Day.Month(), e.Day.Day(), e.Window.Start, 0, 0, 0, e.Day.Location())
}

// End returns the window end on Day.
func (e Event) End() time.Time {
	return e.Start().Add(time.Duration(e.Window.Len()) * time.Hour)
}

// UID is stable for a given day and window so re-exports update in place.
func (e Event) UID() string {
	return fmt.Sprintf("%s-%02d%02d@timesynx", e.Start().UTC().Format("20060102"), e.Window.Start, e.Window.End)
}

// Description lists each card's local time range.
func (e Event) Description() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d locations in business hours\n", e.Window.Overlap, len(e.Selections.Active()))
	start, end := e.Start(), e.End()
	for _, sel := range e.Selections.Active() {
		fmt.Fprintf(&b, "%s: %s - %s\n", sel.Name,
			tzfmt.FormatClock(start, sel.Timezone, false),
			tzfmt.FormatClock(end, sel.Timezone, false))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Build assembles a calendar holding one event.
func Build(e Event, stamp time.Time) (*ics.Calendar, error) {
	if e.Window.Len() <= 0 {
		return nil, fmt.Errorf("empty meeting window %d-%d", e.Window.Start, e.Window.End)
	}

	cal := ics.NewCalendar()
	cal.Props.SetText(ics.PropVersion, "2.0")
	cal.Props.SetText(ics.PropProductID, productID)

	comp := ics.NewComponent(ics.CompEvent)
	comp.Props.SetText(ics.PropUID, e.UID())
	comp.Props.SetDateTime(ics.PropDateTimeStamp, stamp.UTC())

	summary := e.Summary
	if summary == "" {
		summary = "Team meeting"
	}
	comp.Props.SetText(ics.PropSummary, summary)
	comp.Props.SetText(ics.PropDescription, e.Description())
	comp.Props.SetDateTime(ics.PropDateTimeStart, e.Start().UTC())
	comp.Props.SetDateTime(ics.PropDateTimeEnd, e.End().UTC())
	if e.URL != "" {
		comp.Props.SetText(ics.PropURL, e.URL)
	}

	cal.Children = append(cal.Children, comp)
	return cal, nil
}

// Write encodes the event to w.
func Write(w io.Writer, e Event, stamp time.Time) error {
	cal, err := Build(e, stamp)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := ics.NewEncoder(&buf).Encode(cal); err != nil {
		return fmt.Errorf("encode ICS: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// FileName is the download name for an export made on day.
func FileName(day time.Time) string {
	return "timesynx-" + day.Format("2006-01-02") + ".ics"
}
