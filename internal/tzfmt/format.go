package tzfmt

import (
	"fmt"
	"time"
)

// Sentinel texts carried by invalid results.
const (
	InvalidClock = "Invalid Timezone"
	InvalidDate  = "Invalid Date"
	SameTime     = "Same time"
)

const (
	clock12Layout = "03:04 PM"
	clock24Layout = "15:04"
	dateLayout    = "Mon, Jan 2, 2006"
)

// Formatted is the outcome of rendering an instant in a zone. An invalid
// result still carries display text (one of the Invalid* sentinels) so
// callers can print it without branching.
type Formatted struct {
	Text  string
	valid bool
}

func ok(text string) Formatted { return Formatted{Text: text, valid: true} }

func invalid(text string) Formatted { return Formatted{Text: text} }

// Valid reports whether the zone resolved.
func (f Formatted) Valid() bool { return f.valid }

func (f Formatted) String() string { return f.Text }

// FormatClock renders hour and minute of t in the named zone.
func FormatClock(t time.Time, zone string, use24h bool) Formatted {
	local, err := In(t, zone)
	if err != nil {
		return invalid(InvalidClock)
	}
	if use24h {
		return ok(local.Format(clock24Layout))
	}
	return ok(local.Format(clock12Layout))
}

// FormatDate renders weekday, month, day and year of t in the named zone.
func FormatDate(t time.Time, zone string) Formatted {
	local, err := In(t, zone)
	if err != nil {
		return invalid(InvalidDate)
	}
	return ok(local.Format(dateLayout))
}

// offsetSeconds returns the zone's UTC offset at t.
func offsetSeconds(t time.Time, zone string) (int, error) {
	local, err := In(t, zone)
	if err != nil {
		return 0, err
	}
	_, off := local.Zone()
	return off, nil
}

// OffsetHours returns the zone's offset from UTC at t in hours. Zones on a
// half or quarter hour yield fractional values. An unknown zone yields 0.
func OffsetHours(t time.Time, zone string) float64 {
	off, err := offsetSeconds(t, zone)
	if err != nil {
		return 0
	}
	return float64(off) / 3600
}

// RelativeOffsetLabel describes how far zone is ahead of (or behind) base at
// t: "Same time", "+5h", "+5h 30m", "-8h". Unknown zones count as UTC.
func RelativeOffsetLabel(t time.Time, zone, base string) string {
	target, _ := offsetSeconds(t, zone)
	ref, _ := offsetSeconds(t, base)
	diff := (target - ref) / 60
	if diff == 0 {
		return SameTime
	}

	sign := "+"
	if diff < 0 {
		sign = "-"
		diff = -diff
	}
	hours, minutes := diff/60, diff%60
	if minutes == 0 {
		return fmt.Sprintf("%s%dh", sign, hours)
	}
	return fmt.Sprintf("%s%dh %dm", sign, hours, minutes)
}

// SlotLabel renders a wall-clock hour and minute as "9:00 AM".
func SlotLabel(hour, minute int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}
