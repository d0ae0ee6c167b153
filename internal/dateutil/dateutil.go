// Package dateutil parses the day and time expressions accepted on the command line.
package dateutil

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be today, tomorrow, yesterday, a weekday name or YYYY-MM-DD")
	ErrInvalidTimeFormat = errors.New("time must be HH:MM, H:MMam/pm or Ham/pm")
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDay parses a day expression relative to relativeTo:
//   - Empty string or "today": relativeTo's day
//   - "tomorrow", "yesterday"
//   - Weekday names: "monday" through "sunday" (next occurrence, always future)
//   - Absolute date: "2025-01-15" (YYYY-MM-DD)
//
// The result is midnight in relativeTo's location. Input is case-insensitive.
func ParseDay(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if targetDay, ok := weekdayMap[input]; ok {
		return nextWeekday(today, targetDay), nil
	}

	result, err := time.ParseInLocation("2006-01-02", input, relativeTo.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return result, nil
}

// ParseClock parses a wall-clock time: "14:30", "9:05", "2:30pm", "9am".
func ParseClock(s string) (hour, minute int, err error) {
	input := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))

	meridiem := ""
	if strings.HasSuffix(input, "am") || strings.HasSuffix(input, "pm") {
		meridiem = input[len(input)-2:]
		input = input[:len(input)-2]
	}

	hourPart, minutePart, hasMinutes := strings.Cut(input, ":")
	if !hasMinutes && meridiem == "" {
		return 0, 0, ErrInvalidTimeFormat
	}
	if hasMinutes && len(minutePart) != 2 {
		return 0, 0, ErrInvalidTimeFormat
	}
	if len(hourPart) == 0 || len(hourPart) > 2 {
		return 0, 0, ErrInvalidTimeFormat
	}

	hour, err = strconv.Atoi(hourPart)
	if err != nil {
		return 0, 0, ErrInvalidTimeFormat
	}
	if hasMinutes {
		minute, err = strconv.Atoi(minutePart)
		if err != nil || minute < 0 || minute > 59 {
			return 0, 0, ErrInvalidTimeFormat
		}
	}

	switch meridiem {
	case "":
		if hour < 0 || hour > 23 {
			return 0, 0, ErrInvalidTimeFormat
		}
	default:
		if hour < 1 || hour > 12 {
			return 0, 0, ErrInvalidTimeFormat
		}
		hour %= 12
		if meridiem == "pm" {
			hour += 12
		}
	}
	return hour, minute, nil
}

// ParseMoment parses a point in time in loc. Accepted forms:
//   - RFC 3339 ("2025-01-15T14:30:00Z"), which keeps its own offset
//   - "<day> <clock>", e.g. "2025-01-15 14:30", "tomorrow 9am", "friday 16:00"
//   - "<clock>" alone, on relativeTo's day in loc
//   - "<day>" alone, at midnight
//
// An empty string or "now" returns ok == false: the caller should stay live.
func ParseMoment(s string, loc *time.Location, relativeTo time.Time) (t time.Time, ok bool, err error) {
	input := strings.TrimSpace(s)
	if input == "" || strings.EqualFold(input, "now") {
		return time.Time{}, false, nil
	}

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t, true, nil
	}

	ref := relativeTo.In(loc)
	dayPart, clockPart, hasClock := strings.Cut(input, " ")
	if !hasClock && len(input) > 10 && input[10] == 'T' {
		dayPart, clockPart, hasClock = input[:10], input[11:], true
	}
	if !hasClock {
		if h, m, err := ParseClock(input); err == nil {
			return time.Date(ref.Year(), ref.Month(), ref.Day(), h, m, 0, 0, loc), true, nil
		}
		day, err := ParseDay(input, ref)
		if err != nil {
			return time.Time{}, false, err
		}
		return day, true, nil
	}

	day, err := ParseDay(dayPart, ref)
	if err != nil {
		return time.Time{}, false, err
	}
	h, m, err := ParseClock(clockPart)
	if err != nil {
		return time.Time{}, false, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc), true, nil
}

// nextWeekday returns the next occurrence of the given weekday after today.
// If today is the target weekday, returns one week from today.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	current := today.Weekday()
	daysUntil := int(target) - int(current)
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil)
}
