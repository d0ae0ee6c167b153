package clock

import (
	"fmt"
	"time"
)

// StepMinutes is how far one play tick advances.
const StepMinutes = 30

// Slots is the number of player positions in a day.
const Slots = 24 * 60 / StepMinutes

// Player is a wall-clock cursor on a 30-minute grid.
type Player struct {
	Hour   int
	Minute int // 0 or 30
}

// Snap returns the player position for t, flooring minutes to the grid.
func Snap(t time.Time) Player {
	return Player{Hour: t.Hour(), Minute: t.Minute() / StepMinutes * StepMinutes}
}

// FromSlot returns the position of slot i, wrapping outside 0..Slots-1.
func FromSlot(i int) Player {
	i = ((i % Slots) + Slots) % Slots
	return Player{Hour: i / 2, Minute: (i % 2) * StepMinutes}
}

// Slot returns the grid index, 0..Slots-1.
func (p Player) Slot() int {
	return p.Hour*2 + p.Minute/StepMinutes
}

// Step advances by 30 minutes; 23:30 wraps to 00:00.
func (p Player) Step() Player {
	next := p.Minute + StepMinutes
	if next >= 60 {
		return Player{Hour: (p.Hour + 1) % 24, Minute: 0}
	}
	return Player{Hour: p.Hour, Minute: next}
}

// On places the position on day's calendar date in day's location.
func (p Player) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), p.Hour, p.Minute, 0, 0, day.Location())
}

func (p Player) String() string {
	return fmt.Sprintf("%02d:%02d", p.Hour, p.Minute)
}
