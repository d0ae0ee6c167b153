// Package clock tracks which instant is on screen and drives periodic ticks.
package clock

import "time"

// Mode says whether the displayed instant follows the wall clock.
type Mode int

const (
	ModeLive   Mode = iota // recomputed every tick
	ModeFrozen             // fixed until changed
)

func (m Mode) String() string {
	if m == ModeFrozen {
		return "frozen"
	}
	return "live"
}

// Session holds the current display instant. The zero value is live and
// reads time.Now.
type Session struct {
	mode   Mode
	frozen time.Time
	now    func() time.Time
}

// NewSession returns a live session reading now, or time.Now when nil.
func NewSession(now func() time.Time) *Session {
	return &Session{now: now}
}

func (s *Session) wall() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// IsLive reports whether the session follows the wall clock.
func (s *Session) IsLive() bool { return s.mode == ModeLive }

// Now returns the instant to display.
func (s *Session) Now() time.Time {
	if s.mode == ModeFrozen {
		return s.frozen
	}
	return s.wall()
}

// Freeze pins the session to t.
func (s *Session) Freeze(t time.Time) {
	s.mode = ModeFrozen
	s.frozen = t
}

// GoLive resumes following the wall clock.
func (s *Session) GoLive() {
	s.mode = ModeLive
	s.frozen = time.Time{}
}

// Selected returns the frozen instant, or nil when live.
func (s *Session) Selected() *time.Time {
	if s.mode != ModeFrozen {
		return nil
	}
	t := s.frozen
	return &t
}
