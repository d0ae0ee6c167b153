package invite

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ics "github.com/emersion/go-ical"

	"github.com/javiermolinar/timesynx/internal/overlap"
	"github.com/javiermolinar/timesynx/internal/selection"
)

func testEvent() Event {
	return Event{
		Summary:    "Sync",
		Window:     overlap.Window{Start: 9, End: 11, Overlap: 2},
		Day:        time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Selections: selection.Defaults()[:2],
		URL:        "https://timesynx.app/?data=abc",
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	stamp := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	if err := Write(&buf, testEvent(), stamp); err != nil {
		t.Fatalf("Write: %v", err)
	}

	cal, err := ics.NewDecoder(&buf).Decode()
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	var events []*ics.Component
	for _, child := range cal.Children {
		if child.Name == ics.CompEvent {
			events = append(events, child)
		}
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]

	start, err := ev.Props.Get(ics.PropDateTimeStart).DateTime(time.UTC)
	if err != nil {
		t.Fatalf("DTSTART: %v", err)
	}
	if want := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
	end, err := ev.Props.Get(ics.PropDateTimeEnd).DateTime(time.UTC)
	if err != nil {
		t.Fatalf("DTEND: %v", err)
	}
	if want := time.Date(2025, 1, 15, 11, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Errorf("end = %v, want %v", end, want)
	}

	if p := ev.Props.Get(ics.PropSummary); p == nil || p.Value != "Sync" {
		t.Errorf("summary = %v", p)
	}
	if p := ev.Props.Get(ics.PropUID); p == nil || p.Value != "20250115-0911@timesynx" {
		t.Errorf("uid = %v", p)
	}
	desc, err := ev.Props.Get(ics.PropDescription).Text()
	if err != nil {
		t.Fatalf("description: %v", err)
	}
	for _, want := range []string{"2 of 2 locations", "New York: 04:00 AM - 06:00 AM", "London: 09:00 AM - 11:00 AM"} {
		if !strings.Contains(desc, want) {
			t.Errorf("description missing %q:\n%s", want, desc)
		}
	}
}

func TestBuild_EmptyWindow(t *testing.T) {
	e := testEvent()
	e.Window = overlap.Window{Start: 10, End: 10}
	if _, err := Build(e, time.Now()); err == nil {
		t.Error("expected error for empty window")
	}
}

func TestBuild_DefaultSummary(t *testing.T) {
	e := testEvent()
	e.Summary = ""
	cal, err := Build(e, time.Now())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p := cal.Children[0].Props.Get(ics.PropSummary); p == nil || p.Value != "Team meeting" {
		t.Errorf("summary = %v", p)
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(time.Date(2025, 7, 4, 15, 0, 0, 0, time.UTC)); got != "timesynx-2025-07-04.ics" {
		t.Errorf("got %q", got)
	}
}
