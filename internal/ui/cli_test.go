package ui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/javiermolinar/timesynx/internal/config"
	"github.com/javiermolinar/timesynx/internal/share"
)

// 09:00 in New York, 14:00 in London, 23:00 in Tokyo.
var testNow = time.Date(2025, 1, 15, 14, 0, 0, 0, time.UTC)

const testZones = "--zones=America/New_York,Europe/London,Asia/Tokyo"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.DBPath = filepath.Join(t.TempDir(), "timesynx.db")
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	DisableColor()
	a := NewApp(nil, cfg)
	a.now = func() time.Time { return testNow }
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func run(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	a.root.SetOut(&buf)
	a.root.SetErr(&buf)
	a.root.SetArgs(args)
	err := a.Execute()
	return buf.String(), err
}

func mustRun(t *testing.T, cfg *config.Config, args ...string) string {
	t.Helper()
	out, err := run(t, newTestApp(t, cfg), args...)
	if err != nil {
		t.Fatalf("%v: error = %v\n%s", args, err, out)
	}
	return out
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestVersion(t *testing.T) {
	out := mustRun(t, testConfig(t), "version")
	assertContains(t, out, "timesynx dev (commit: none)")
}

func TestNow(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		wants []string
	}{
		{
			name:  "live default cards",
			args:  []string{"now"},
			wants: []string{"(live)", "2/4 in business hours", "New York", "Tokyo"},
		},
		{
			name:  "frozen zones",
			args:  []string{"now", testZones, "--at=2025-01-15 09:00"},
			wants: []string{"(frozen)", "2/3 in business hours", "09:00 AM", "02:00 PM", "11:00 PM", "+5h"},
		},
		{
			name:  "24h clock",
			args:  []string{"now", testZones, "--24h"},
			wants: []string{"14:00", "23:00"},
		},
		{
			name:  "inactive cards with all",
			args:  []string{"now", "--all"},
			wants: []string{"Paris", "- inactive"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustRun(t, testConfig(t), tt.args...)
			assertContains(t, out, tt.wants...)
		})
	}
}

func TestNowHidesInactiveCards(t *testing.T) {
	out := mustRun(t, testConfig(t), "now")
	if strings.Contains(out, "Paris") {
		t.Fatalf("inactive Paris listed without --all:\n%s", out)
	}
}

func TestStateFlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "conflicting sources", args: []string{"now", testZones, "--data=abc"}, want: ErrConflictingSources.Error()},
		{name: "bad zone", args: []string{"now", "--zones=Mars/Base"}, want: "invalid timezone"},
		{name: "bad at", args: []string{"now", "--at=someday 9am"}, want: "parsing --at"},
		{name: "missing board", args: []string{"now", "--board=nope"}, want: `board "nope" not found`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, newTestApp(t, testConfig(t)), tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestHomeTimezoneBecomesBase(t *testing.T) {
	cfg := testConfig(t)
	cfg.Display.HomeTimezone = "Europe/Madrid"
	a := newTestApp(t, cfg)

	sv, err := a.resolveState(t.Context())
	if err != nil {
		t.Fatalf("resolveState() error = %v", err)
	}
	base, _ := sv.Selections.Base()
	if base.Timezone != "Europe/Madrid" {
		t.Fatalf("base = %s, want Europe/Madrid", base.Timezone)
	}
}

func TestMeet(t *testing.T) {
	zones := "--zones=America/New_York,Europe/London"

	out := mustRun(t, testConfig(t), "meet", zones, "--at=2025-01-15")
	assertContains(t, out, "1. 9:00 AM - 12:00 PM New York", "(2/2 cities, 3h)", "02:00 PM - 05:00 PM")

	out = mustRun(t, testConfig(t), "meet", zones, "--min=3")
	assertContains(t, out, "No meeting window with enough overlap")

	if _, err := run(t, newTestApp(t, testConfig(t)), "meet", "--limit=0"); err == nil {
		t.Fatal("--limit=0 should fail")
	}
}

func TestTimeline(t *testing.T) {
	out := mustRun(t, testConfig(t), "timeline", testZones)
	lines := strings.Split(out, "\n")

	var bar string
	for _, line := range lines {
		if strings.ContainsAny(line, "░▒▓█") && !strings.Contains(line, "legend") {
			bar = line
			break
		}
	}
	if n := len([]rune(bar)); n != 48 {
		t.Fatalf("bar has %d cells, want 48:\n%s", n, out)
	}
	assertContains(t, out, "00          06          12          18")

	out = mustRun(t, testConfig(t), "timeline", testZones, "--verbose")
	assertContains(t, out, "9:00 AM  2/3", "12:00 AM  1/3")
}

func TestShareAndOpen(t *testing.T) {
	out := mustRun(t, testConfig(t), "share", testZones, "--at=2025-01-15 09:00")
	link := strings.TrimSpace(out)
	if !strings.HasPrefix(link, "https://timesynx.app?data=") {
		t.Fatalf("link = %q", link)
	}

	st, err := share.FromURL(link)
	if err != nil {
		t.Fatalf("FromURL() error = %v", err)
	}
	if len(st.Selections) != 3 || st.SelectedTime == nil || !st.SelectedTime.Equal(testNow) {
		t.Fatalf("state = %+v", st)
	}

	out = mustRun(t, testConfig(t), "open", link)
	assertContains(t, out, "(frozen)", "Tokyo", "Best meeting windows")
}

func TestMalformedLinksOpenDefaults(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "data not base64", args: []string{"now", "--data=not-base64!!"}},
		{name: "data bad escape", args: []string{"now", "--data=https://timesynx.app/?data=%%%bogus"}},
		{name: "data wrong structure", args: []string{"now", "--data=eyJ0aW1lem9uZXMiOjF9"}},
		{name: "open wrong structure", args: []string{"open", "https://timesynx.app/?data=eyJ0aW1lem9uZXMiOjF9"}},
		{name: "open not base64", args: []string{"open", "not-base64!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustRun(t, testConfig(t), tt.args...)
			assertContains(t, out, "(live)", "2/4 in business hours", "New York", "India")
			if strings.Contains(out, "decoding") {
				t.Errorf("decode error surfaced:\n%s", out)
			}
		})
	}
}

func TestShareRawAndCopy(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	out := mustRun(t, testConfig(t), "share", "--raw", "--copy")
	payload := strings.Split(out, "\n")[0]
	if strings.Contains(payload, "://") {
		t.Fatalf("raw payload = %q", payload)
	}
	if copied != payload {
		t.Fatalf("copied %q, want %q", copied, payload)
	}
	assertContains(t, out, "Share link copied to clipboard!")

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	if _, err := run(t, newTestApp(t, testConfig(t)), "share", "--copy"); err == nil {
		t.Fatal("share --copy should report clipboard failures")
	}
}

func TestZones(t *testing.T) {
	out := mustRun(t, testConfig(t), "zones", "--region=europe")
	assertContains(t, out, "=== Europe ===", "London", "UTC+00:00", "Europe/Berlin")
	if strings.Contains(out, "Tokyo") {
		t.Fatal("europe filter listed Tokyo")
	}

	out = mustRun(t, testConfig(t), "zones", "kolkata")
	assertContains(t, out, "Asia/Kolkata", "UTC+05:30")

	out = mustRun(t, testConfig(t), "zones", "--regions")
	assertContains(t, out, "North America", "Europe", "Asia")

	out = mustRun(t, testConfig(t), "zones", "atlantis")
	assertContains(t, out, "No cities match.")
}

func TestFormatUTCOffset(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "UTC+00:00"},
		{5.5, "UTC+05:30"},
		{-3.5, "UTC-03:30"},
		{5.75, "UTC+05:45"},
		{-10, "UTC-10:00"},
	}
	for _, tt := range tests {
		if got := formatUTCOffset(tt.hours); got != tt.want {
			t.Errorf("formatUTCOffset(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func TestWeather(t *testing.T) {
	out := mustRun(t, testConfig(t), "weather")
	assertContains(t, out, "New York", "22°C", "Partly Cloudy", "↑ 07:00 AM ↓ 05:00 PM")
}

func TestInvite(t *testing.T) {
	out := mustRun(t, testConfig(t), "invite", testZones, "--out=-", "--title=Sync")
	assertContains(t, out, "BEGIN:VCALENDAR", "BEGIN:VEVENT", "SUMMARY:Sync")

	path := filepath.Join(t.TempDir(), "invites", "sync.ics")
	out = mustRun(t, testConfig(t), "invite", testZones, "--out="+path)
	assertContains(t, out, "Wrote "+path)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("invite file: %v", err)
	}

	if _, err := run(t, newTestApp(t, testConfig(t)), "invite", testZones, "--window=9", "--out=-"); err == nil {
		t.Fatal("--window out of range should fail")
	}
	if _, err := run(t, newTestApp(t, testConfig(t)), "invite", "--zones=America/New_York,Asia/Tokyo", "--out=-"); err == nil {
		t.Fatal("zones without overlap should fail")
	}
}

func TestWatchPlay(t *testing.T) {
	out := mustRun(t, testConfig(t), "watch", testZones, "--at=2025-01-15 09:10",
		"--play", "--count=2", "--interval=5ms")

	if n := strings.Count(out, "in business hours"); n != 3 {
		t.Fatalf("rendered %d times, want 3:\n%s", n, out)
	}
	assertContains(t, out, "▶ 09:00", "▶ 09:30", "▶ 10:00", "10:00 AM")
}

func TestWatchRejectsBadInterval(t *testing.T) {
	if _, err := run(t, newTestApp(t, testConfig(t)), "watch", "--interval=0s"); err == nil {
		t.Fatal("zero interval should fail")
	}
}

func TestBoardLifecycle(t *testing.T) {
	cfg := testConfig(t)

	out := mustRun(t, cfg, "board", "save", "standup", testZones, "--at=2025-01-15 09:00")
	assertContains(t, out, `Saved board "standup" (3 cities)`)

	out = mustRun(t, cfg, "board", "list")
	assertContains(t, out, "standup", "3 cities", "2025-01-15 14:00 UTC")

	out = mustRun(t, cfg, "board", "show", "standup")
	assertContains(t, out, "Board standup", "(frozen)", "Tokyo")

	out = mustRun(t, cfg, "now", "--board=standup")
	assertContains(t, out, "2/3 in business hours")

	out = mustRun(t, cfg, "board", "rename", "standup", "daily")
	assertContains(t, out, `Renamed board "standup" to "daily"`)

	out = mustRun(t, cfg, "board", "delete", "daily")
	assertContains(t, out, `Deleted board "daily"`)

	out = mustRun(t, cfg, "board", "list")
	assertContains(t, out, "No saved boards.")

	if _, err := run(t, newTestApp(t, cfg), "board", "delete", "daily"); err == nil {
		t.Fatal("deleting a missing board should fail")
	}
	if _, err := run(t, newTestApp(t, cfg), "board", "save", "   "); err == nil {
		t.Fatal("empty board name should fail")
	}
}
