package selection

import (
	"errors"
	"slices"
	"testing"

	"github.com/javiermolinar/timesynx/internal/catalog"
)

func baseCount(s Set) int {
	n := 0
	for _, sel := range s {
		if sel.Base {
			n++
		}
	}
	return n
}

func ids(s Set) []string {
	out := make([]string, 0, len(s))
	for _, sel := range s {
		out = append(out, sel.ID)
	}
	return out
}

func TestDefaults(t *testing.T) {
	s := Defaults()
	if len(s) != 6 {
		t.Fatalf("got %d defaults, want 6", len(s))
	}
	if baseCount(s) != 1 {
		t.Errorf("expected exactly one base, got %d", baseCount(s))
	}
	base, ok := s.Base()
	if !ok || base.City != "New York" {
		t.Errorf("base = %+v", base)
	}
	want := []string{"America/New_York", "Europe/London", "Asia/Tokyo", "Asia/Kolkata"}
	if got := s.ActiveZones(); !slices.Equal(got, want) {
		t.Errorf("ActiveZones() = %v, want %v", got, want)
	}
	if s[3].Name != "India" || s[3].City != "New Delhi" {
		t.Errorf("fourth card = %+v", s[3])
	}
}

func TestBase_FallsBackToFirst(t *testing.T) {
	s := Set{{ID: "1", Timezone: "UTC"}, {ID: "2", Timezone: "Asia/Tokyo"}}
	base, ok := s.Base()
	if !ok || base.ID != "1" {
		t.Errorf("Base() = %+v, %v", base, ok)
	}
	if _, ok := Set(nil).Base(); ok {
		t.Error("expected no base for empty set")
	}
	if got := Set(nil).BaseZone(); got != "UTC" {
		t.Errorf("BaseZone() = %q", got)
	}
}

func TestSetBase(t *testing.T) {
	s, err := Defaults().SetBase("3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if baseCount(s) != 1 {
		t.Fatalf("expected one base, got %d", baseCount(s))
	}
	if b, _ := s.Base(); b.ID != "3" {
		t.Errorf("base = %s", b.ID)
	}
	if _, err := s.SetBase("99"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestToggle(t *testing.T) {
	orig := Defaults()
	s, err := orig.Toggle("5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s[4].Active {
		t.Error("expected Los Angeles to become active")
	}
	if orig[4].Active {
		t.Error("Toggle mutated the receiver")
	}
}

func TestReplace(t *testing.T) {
	berlin, _ := catalog.Lookup("Europe/Berlin")
	s, err := Defaults().Replace("2", berlin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := s[1]
	if got.Timezone != "Europe/Berlin" || got.City != "Berlin" || got.Name != "Berlin" || got.Country != "Germany" {
		t.Errorf("got %+v", got)
	}
	if !got.Active || got.ID != "2" {
		t.Errorf("flags not kept: %+v", got)
	}

	_, err = Defaults().Replace("2", catalog.City{Timezone: "Nope/Nope", Name: "x"})
	if !errors.Is(err, ErrInvalidZone) {
		t.Errorf("got %v, want ErrInvalidZone", err)
	}
}

func TestAddRemove(t *testing.T) {
	seoul, _ := catalog.Lookup("Asia/Seoul")
	s, err := Defaults().Add(seoul)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(s) != 7 || s[6].ID != "7" || !s[6].Active || s[6].Base {
		t.Errorf("added card = %+v", s[6])
	}

	s, err = s.Remove("1")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if baseCount(s) != 0 {
		t.Errorf("expected no explicit base after removing it")
	}
	if b, _ := s.Base(); b.ID != "2" {
		t.Errorf("fallback base = %s, want 2", b.ID)
	}
	if _, err := s.Remove("1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{name: "forward", from: 0, to: 2, want: []string{"2", "3", "1", "4", "5", "6"}},
		{name: "backward", from: 5, to: 0, want: []string{"6", "1", "2", "3", "4", "5"}},
		{name: "to end", from: 1, to: 5, want: []string{"1", "3", "4", "5", "6", "2"}},
		{name: "noop", from: 3, to: 3, want: []string{"1", "2", "3", "4", "5", "6"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Defaults().Move(tt.from, tt.to)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := ids(s); !slices.Equal(got, tt.want) {
				t.Errorf("Move() = %v, want %v", got, tt.want)
			}
		})
	}
	if _, err := Defaults().Move(0, 6); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got %v, want ErrOutOfRange", err)
	}
}

func TestNormalize(t *testing.T) {
	s := Set{
		{ID: "1", Timezone: "UTC"},
		{ID: "2", Timezone: "Asia/Tokyo", Base: true},
		{ID: "3", Timezone: "Europe/Paris", Base: true},
	}.Normalize()
	if baseCount(s) != 1 || !s[1].Base {
		t.Errorf("got %+v", s)
	}
}

func TestFromZones(t *testing.T) {
	s, err := FromZones([]string{"Asia/Kolkata", " Europe/Lisbon ", ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 2 {
		t.Fatalf("got %d cards", len(s))
	}
	if s[0].City != "New Delhi" || !s[0].Base || s[0].ID != "1" {
		t.Errorf("first = %+v", s[0])
	}
	if s[1].City != "Lisbon" || s[1].Country != "" || s[1].Base || s[1].ID != "2" {
		t.Errorf("second = %+v", s[1])
	}

	s, err = FromZones([]string{"America/Argentina/Buenos_Aires"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s[0].City != "Buenos Aires" {
		t.Errorf("city = %q", s[0].City)
	}

	if _, err := FromZones([]string{"UTC", "Bad/Zone"}); !errors.Is(err, ErrInvalidZone) {
		t.Errorf("got %v, want ErrInvalidZone", err)
	}
}

func TestRenumber(t *testing.T) {
	s := Set{{ID: "9"}, {ID: "4"}}.Renumber()
	if got := ids(s); !slices.Equal(got, []string{"1", "2"}) {
		t.Errorf("got %v", got)
	}
}

func TestWithHome(t *testing.T) {
	tests := []struct {
		name     string
		zone     string
		wantLen  int
		wantBase string
		wantErr  bool
	}{
		{name: "existing active card", zone: "Europe/London", wantLen: 6, wantBase: "London"},
		{name: "existing inactive card", zone: "Europe/Paris", wantLen: 6, wantBase: "Paris"},
		{name: "missing zone is prepended", zone: "Europe/Madrid", wantLen: 7, wantBase: "Madrid"},
		{name: "invalid zone", zone: "Mars/Olympus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Defaults().WithHome(tt.zone)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidZone) {
					t.Fatalf("err = %v, want ErrInvalidZone", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("WithHome() error = %v", err)
			}
			if len(s) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(s), tt.wantLen)
			}
			if baseCount(s) != 1 {
				t.Fatalf("base count = %d, want 1", baseCount(s))
			}
			base, _ := s.Base()
			if base.City != tt.wantBase || !base.Active {
				t.Fatalf("base = %+v, want active %s", base, tt.wantBase)
			}
		})
	}
}
