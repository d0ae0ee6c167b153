// Package selection models the set of timezone cards a user compares.
package selection

import (
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/javiermolinar/timesynx/internal/catalog"
	"github.com/javiermolinar/timesynx/internal/tzfmt"
)

// Errors returned by Set mutations.
var (
	ErrNotFound    = errors.New("selection not found")
	ErrOutOfRange  = errors.New("position out of range")
	ErrInvalidZone = errors.New("invalid timezone")
)

// Selection is one timezone card.
type Selection struct {
	ID       string
	Timezone string
	City     string
	Country  string
	Name     string
	Active   bool // counted by the overlap engine
	Base     bool // reference for relative offsets
}

// Set is an ordered list of cards. At most one card is the base; when none
// is, the first card acts as base.
type Set []Selection

// Defaults returns the six cards shown on first visit.
func Defaults() Set {
	return Set{
		{ID: "1", Timezone: "America/New_York", City: "New York", Country: "USA", Name: "New York", Active: true, Base: true},
		{ID: "2", Timezone: "Europe/London", City: "London", Country: "UK", Name: "London", Active: true},
		{ID: "3", Timezone: "Asia/Tokyo", City: "Tokyo", Country: "Japan", Name: "Tokyo", Active: true},
		{ID: "4", Timezone: "Asia/Kolkata", City: "New Delhi", Country: "India", Name: "India", Active: true},
		{ID: "5", Timezone: "America/Los_Angeles", City: "Los Angeles", Country: "USA", Name: "Los Angeles"},
		{ID: "6", Timezone: "Europe/Paris", City: "Paris", Country: "France", Name: "Paris"},
	}
}

// FromZones builds an active set from zone identifiers. Known zones take
// their city from the catalog; others use the last path element.
// The first zone becomes the base.
func FromZones(zones []string) (Set, error) {
	s := make(Set, 0, len(zones))
	for _, zone := range zones {
		zone = strings.TrimSpace(zone)
		if zone == "" {
			continue
		}
		if !tzfmt.Valid(zone) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidZone, zone)
		}
		s = append(s, fromCity(cityFor(zone)))
	}
	if len(s) > 0 {
		s[0].Base = true
	}
	return s.Renumber(), nil
}

func cityFor(zone string) catalog.City {
	if c, ok := catalog.Lookup(zone); ok {
		return c
	}
	name := strings.ReplaceAll(path.Base(zone), "_", " ")
	return catalog.City{Timezone: zone, Name: name}
}

func fromCity(c catalog.City) Selection {
	return Selection{
		Timezone: c.Timezone,
		City:     c.Name,
		Country:  c.Country,
		Name:     c.Name,
		Active:   true,
	}
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	copy(out, s)
	return out
}

// Base returns the reference card.
func (s Set) Base() (Selection, bool) {
	if len(s) == 0 {
		return Selection{}, false
	}
	for _, sel := range s {
		if sel.Base {
			return sel, true
		}
	}
	return s[0], true
}

// BaseZone returns the base card's timezone, or "UTC" for an empty set.
func (s Set) BaseZone() string {
	if b, ok := s.Base(); ok {
		return b.Timezone
	}
	return "UTC"
}

// Active returns the cards taking part in overlap scoring.
func (s Set) Active() Set {
	var out Set
	for _, sel := range s {
		if sel.Active {
			out = append(out, sel)
		}
	}
	return out
}

// ActiveZones returns the timezones of active cards in order.
func (s Set) ActiveZones() []string {
	var out []string
	for _, sel := range s {
		if sel.Active {
			out = append(out, sel.Timezone)
		}
	}
	return out
}

// Index returns the position of the card with id, or -1.
func (s Set) Index(id string) int {
	for i, sel := range s {
		if sel.ID == id {
			return i
		}
	}
	return -1
}

func (s Set) lookup(id string) (int, error) {
	i := s.Index(id)
	if i < 0 {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return i, nil
}

// SetBase makes id the only base card.
func (s Set) SetBase(id string) (Set, error) {
	i, err := s.lookup(id)
	if err != nil {
		return s, err
	}
	out := s.Clone()
	for j := range out {
		out[j].Base = j == i
	}
	return out, nil
}

// Toggle flips whether id takes part in overlap scoring.
func (s Set) Toggle(id string) (Set, error) {
	i, err := s.lookup(id)
	if err != nil {
		return s, err
	}
	out := s.Clone()
	out[i].Active = !out[i].Active
	return out, nil
}

// Replace points card id at another city, keeping its flags.
func (s Set) Replace(id string, c catalog.City) (Set, error) {
	i, err := s.lookup(id)
	if err != nil {
		return s, err
	}
	if !tzfmt.Valid(c.Timezone) {
		return s, fmt.Errorf("%w: %q", ErrInvalidZone, c.Timezone)
	}
	out := s.Clone()
	out[i].Timezone = c.Timezone
	out[i].City = c.Name
	out[i].Country = c.Country
	out[i].Name = c.Name
	return out, nil
}

// Add appends an active card for c with the next free id.
func (s Set) Add(c catalog.City) (Set, error) {
	if !tzfmt.Valid(c.Timezone) {
		return s, fmt.Errorf("%w: %q", ErrInvalidZone, c.Timezone)
	}
	sel := fromCity(c)
	sel.ID = s.nextID()
	return append(s.Clone(), sel), nil
}

// Remove drops card id. Removing the base leaves the first card as base.
func (s Set) Remove(id string) (Set, error) {
	i, err := s.lookup(id)
	if err != nil {
		return s, err
	}
	out := make(Set, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...), nil
}

// Move reorders the card at from to position to.
func (s Set) Move(from, to int) (Set, error) {
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) {
		return s, fmt.Errorf("%w: %d -> %d (have %d)", ErrOutOfRange, from, to, len(s))
	}
	out := s.Clone()
	sel := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append(Set{sel}, out[to:]...)...)
	return out, nil
}

// WithHome makes the first card in zone the active base, prepending a
// card for zone when none exists.
func (s Set) WithHome(zone string) (Set, error) {
	if !tzfmt.Valid(zone) {
		return s, fmt.Errorf("%w: %q", ErrInvalidZone, zone)
	}
	for _, sel := range s {
		if sel.Timezone == zone {
			out, err := s.SetBase(sel.ID)
			if err != nil {
				return s, err
			}
			out[out.Index(sel.ID)].Active = true
			return out, nil
		}
	}
	home := fromCity(cityFor(zone))
	home.ID = s.nextID()
	out := make(Set, 0, len(s)+1)
	out = append(out, home)
	for _, sel := range s {
		sel.Base = false
		out = append(out, sel)
	}
	out[0].Base = true
	return out, nil
}

// Normalize keeps only the first base flag.
func (s Set) Normalize() Set {
	out := s.Clone()
	seen := false
	for i := range out {
		if out[i].Base {
			if seen {
				out[i].Base = false
			}
			seen = true
		}
	}
	return out
}

// Renumber assigns ids "1", "2", ... in order.
func (s Set) Renumber() Set {
	out := s.Clone()
	for i := range out {
		out[i].ID = strconv.Itoa(i + 1)
	}
	return out
}

func (s Set) nextID() string {
	highest := 0
	for _, sel := range s {
		if n, err := strconv.Atoi(sel.ID); err == nil && n > highest {
			highest = n
		}
	}
	return strconv.Itoa(highest + 1)
}
