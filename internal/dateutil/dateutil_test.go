package dateutil

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"
)

func TestTruncateToDay(t *testing.T) {
	tokyo, _ := time.LoadLocation("Asia/Tokyo")
	in := time.Date(2025, 1, 15, 23, 59, 59, 999, tokyo)
	got := TruncateToDay(in)
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, tokyo)
	if !got.Equal(want) || got.Location() != tokyo {
		t.Errorf("TruncateToDay(%v) = %v, want %v", in, got, want)
	}
}

func TestParseDay(t *testing.T) {
	// Reference date: Friday, January 10, 2025
	friday := time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr error
	}{
		{name: "empty returns today", input: "", want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "today keyword", input: "today", want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "TODAY uppercase", input: "TODAY", want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "tomorrow", input: "tomorrow", want: time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)},
		{name: "yesterday", input: " Yesterday ", want: time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)},
		{name: "monday is next week", input: "monday", want: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)},
		{name: "friday on a friday is a week out", input: "friday", want: time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC)},
		{name: "saturday", input: "Saturday", want: time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)},
		{name: "absolute date", input: "2025-03-01", want: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "past absolute date is allowed", input: "2024-12-25", want: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)},
		{name: "wrong order", input: "01-15-2025", wantErr: ErrInvalidDateFormat},
		{name: "gibberish", input: "someday", wantErr: ErrInvalidDateFormat},
		{name: "impossible date", input: "2025-02-30", wantErr: ErrInvalidDateFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDay(tc.input, friday)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ParseDay(%q) error = %v, want %v", tc.input, err, tc.wantErr)
			}
			if tc.wantErr == nil && !got.Equal(tc.want) {
				t.Errorf("ParseDay(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseDay_KeepsLocation(t *testing.T) {
	ny, _ := time.LoadLocation("America/New_York")
	ref := time.Date(2025, 1, 10, 22, 0, 0, 0, ny)

	got, err := ParseDay("2025-06-01", ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Location() != ny {
		t.Errorf("location = %v, want %v", got.Location(), ny)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{"14:30", 14, 30, false},
		{"09:00", 9, 0, false},
		{"9:05", 9, 5, false},
		{"0:00", 0, 0, false},
		{"23:59", 23, 59, false},
		{"9am", 9, 0, false},
		{"9 AM", 9, 0, false},
		{"12am", 0, 0, false},
		{"12pm", 12, 0, false},
		{"2:30pm", 14, 30, false},
		{"11:45 PM", 23, 45, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"13pm", 0, 0, true},
		{"0am", 0, 0, true},
		{"930", 0, 0, true},
		{"9:5", 0, 0, true},
		{"", 0, 0, true},
		{"noon", 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			h, m, err := ParseClock(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidTimeFormat) {
					t.Errorf("ParseClock(%q) error = %v, want ErrInvalidTimeFormat", tc.input, err)
				}
				return
			}
			if h != tc.wantHour || m != tc.wantMinute {
				t.Errorf("ParseClock(%q) = %02d:%02d, want %02d:%02d", tc.input, h, m, tc.wantHour, tc.wantMinute)
			}
		})
	}
}

func TestParseMoment(t *testing.T) {
	tokyo, _ := time.LoadLocation("Asia/Tokyo")
	// 2025-01-10 20:00 UTC is already Saturday 05:00 in Tokyo.
	ref := time.Date(2025, 1, 10, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantOK  bool
		wantErr bool
	}{
		{name: "empty stays live", input: ""},
		{name: "now stays live", input: "NOW"},
		{name: "rfc3339", input: "2025-01-15T14:30:00Z", want: time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC), wantOK: true},
		{name: "clock uses local day", input: "09:30", want: time.Date(2025, 1, 11, 9, 30, 0, 0, tokyo), wantOK: true},
		{name: "date and clock", input: "2025-02-01 18:00", want: time.Date(2025, 2, 1, 18, 0, 0, 0, tokyo), wantOK: true},
		{name: "date T clock", input: "2025-02-01T18:00", want: time.Date(2025, 2, 1, 18, 0, 0, 0, tokyo), wantOK: true},
		{name: "tomorrow 9am", input: "tomorrow 9am", want: time.Date(2025, 1, 12, 9, 0, 0, 0, tokyo), wantOK: true},
		{name: "weekday alone", input: "tuesday", want: time.Date(2025, 1, 14, 0, 0, 0, 0, tokyo), wantOK: true},
		{name: "bad clock", input: "tomorrow 25:00", wantErr: true},
		{name: "bad day", input: "later 10:00", wantErr: true},
		{name: "gibberish", input: "whenever", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := ParseMoment(tc.input, tokyo, ref)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseMoment(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if ok != tc.wantOK {
				t.Fatalf("ParseMoment(%q) ok = %v, want %v", tc.input, ok, tc.wantOK)
			}
			if ok && !got.Equal(tc.want) {
				t.Errorf("ParseMoment(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
