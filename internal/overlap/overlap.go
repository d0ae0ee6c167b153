// Package overlap finds when several timezones share business hours.
package overlap

import (
	"sort"
	"time"

	"github.com/javiermolinar/timesynx/internal/tzfmt"
)

// SlotsPerDay is the number of 30-minute slots on the interactive timeline.
const SlotsPerDay = 48

// Hours is a half-open range of local wall-clock hours [Start, End).
type Hours struct {
	Start int
	End   int
}

// BusinessHours is the 09:00-17:00 working day.
var BusinessHours = Hours{Start: 9, End: 17}

// Contains reports whether hour falls inside the range.
func (h Hours) Contains(hour int) bool {
	return hour >= h.Start && hour < h.End
}

// Window is a run of whole hours [Start, End) on one reference day.
// Overlap is the minimum number of zones in business hours across the run.
type Window struct {
	Start   int
	End     int
	Overlap int
}

// Len returns the window length in hours.
func (w Window) Len() int {
	return w.End - w.Start
}

// Slot is one 30-minute position on the timeline.
type Slot struct {
	Hour    int
	Minute  int
	Overlap int
}

// Index returns the slot position, 0..SlotsPerDay-1.
func (s Slot) Index() int {
	return s.Hour*2 + s.Minute/30
}

// Finder scores instants against a working-hours range.
type Finder struct {
	Hours      Hours
	MinOverlap int // hours with fewer zones in range are dropped
	Limit      int // max windows returned; <= 0 returns all
}

// DefaultFinder requires two zones in 09:00-17:00 and keeps the top three windows.
var DefaultFinder = Finder{Hours: BusinessHours, MinOverlap: 2, Limit: 3}

// IsBusinessHours reports whether the local hour in zone is in working hours.
// An unknown zone is never in working hours.
func (f Finder) IsBusinessHours(t time.Time, zone string) bool {
	local, err := tzfmt.In(t, zone)
	if err != nil {
		return false
	}
	return f.Hours.Contains(local.Hour())
}

// Count returns how many zones are in working hours at t.
func (f Finder) Count(zones []string, t time.Time) int {
	n := 0
	for _, zone := range zones {
		if f.IsBusinessHours(t, zone) {
			n++
		}
	}
	return n
}

// BestMeetingWindows scans the 24 whole hours of ref's calendar day, in
// ref's location, and returns the best runs of hours where at least
// MinOverlap zones are working. Runs are ordered by overlap, then length.
func (f Finder) BestMeetingWindows(zones []string, ref time.Time) []Window {
	var hours []Window
	for hour := range 24 {
		at := atHour(ref, hour, 0)
		n := f.Count(zones, at)
		if n >= f.MinOverlap {
			hours = append(hours, Window{Start: hour, End: hour + 1, Overlap: n})
		}
	}

	windows := merge(hours)
	sort.SliceStable(windows, func(i, j int) bool {
		if windows[i].Overlap != windows[j].Overlap {
			return windows[i].Overlap > windows[j].Overlap
		}
		return windows[i].Len() > windows[j].Len()
	})

	if f.Limit > 0 && len(windows) > f.Limit {
		windows = windows[:f.Limit]
	}
	return windows
}

// merge joins adjacent one-hour windows, keeping the minimum overlap.
func merge(hours []Window) []Window {
	if len(hours) == 0 {
		return []Window{}
	}
	out := make([]Window, 0, len(hours))
	cur := hours[0]
	for _, h := range hours[1:] {
		if h.Start == cur.End {
			cur.End = h.End
			cur.Overlap = min(cur.Overlap, h.Overlap)
			continue
		}
		out = append(out, cur)
		cur = h
	}
	return append(out, cur)
}

// Timeline scores every 30-minute slot of day independently.
func (f Finder) Timeline(zones []string, day time.Time) []Slot {
	slots := make([]Slot, 0, SlotsPerDay)
	for i := range SlotsPerDay {
		hour, minute := i/2, (i%2)*30
		slots = append(slots, Slot{
			Hour:    hour,
			Minute:  minute,
			Overlap: f.Count(zones, atHour(day, hour, minute)),
		})
	}
	return slots
}

// atHour returns ref's calendar day at hour:minute in ref's location.
func atHour(ref time.Time, hour, minute int) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location())
}

// IsBusinessHours reports whether zone is in 09:00-17:00 at t.
func IsBusinessHours(t time.Time, zone string) bool {
	return DefaultFinder.IsBusinessHours(t, zone)
}

// Count returns how many zones are in 09:00-17:00 at t.
func Count(zones []string, t time.Time) int {
	return DefaultFinder.Count(zones, t)
}

// BestMeetingWindows returns up to three windows with at least two zones working.
func BestMeetingWindows(zones []string, ref time.Time) []Window {
	return DefaultFinder.BestMeetingWindows(zones, ref)
}

// Timeline scores the 48 half-hour slots of day against 09:00-17:00.
func Timeline(zones []string, day time.Time) []Slot {
	return DefaultFinder.Timeline(zones, day)
}
