// Package tzfmt renders instants in named IANA timezones and compares
// timezone offsets.
package tzfmt

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // zones must resolve without host zoneinfo

	"github.com/maypok86/otter/v2"
)

// ErrInvalidZone is returned for identifiers that are not IANA zone names.
var ErrInvalidZone = errors.New("invalid timezone identifier")

// locations caches parsed zones; LoadLocation re-reads tzdata on every call.
var locations = otter.Must(&otter.Options[string, *time.Location]{
	MaximumSize:     1024,
	InitialCapacity: 64,
})

// LoadLocation resolves an IANA identifier such as "Europe/London".
// Empty strings and "Local" are rejected: they name the host's zone,
// not a shareable one.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidZone, name)
	}
	if loc, ok := locations.GetIfPresent(name); ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidZone, name, err)
	}
	locations.Set(name, loc)
	return loc, nil
}

// Valid reports whether name resolves to a timezone.
func Valid(name string) bool {
	_, err := LoadLocation(name)
	return err == nil
}

// In converts t into the named zone.
func In(t time.Time, name string) (time.Time, error) {
	loc, err := LoadLocation(name)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}
