// Package share encodes a card set and an optional frozen instant into a
// compact string that travels in a URL query parameter.
package share

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/javiermolinar/timesynx/internal/selection"
)

// QueryParam is the URL parameter carrying an encoded payload.
const QueryParam = "data"

// isoLayout matches JavaScript's Date.toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// Decode errors.
var (
	ErrEmpty        = errors.New("empty payload")
	ErrEncoding     = errors.New("payload is not base64")
	ErrStructure    = errors.New("payload has an invalid structure")
	ErrSelectedTime = errors.New("payload has an invalid selected time")
)

// State is what a share link restores.
type State struct {
	Selections   selection.Set
	SelectedTime *time.Time // nil means live mode
}

// Live reports whether the state follows the wall clock.
func (s State) Live() bool {
	return s.SelectedTime == nil
}

// Default is the state used when nothing (or nothing valid) was shared.
func Default() State {
	return State{Selections: selection.Defaults()}
}

type payload struct {
	Timezones    *[]record `json:"timezones"`
	SelectedTime *string   `json:"selectedTime,omitempty"`
}

type record struct {
	TZ      string `json:"tz"`
	City    string `json:"city"`
	Country string `json:"country"`
	Name    string `json:"name"`
	Active  bool   `json:"active"`
	Base    bool   `json:"base"`
}

// Encode serializes the cards and optional instant. Card ids are not kept;
// only order and the transportable fields survive.
func Encode(sel selection.Set, selectedTime *time.Time) (string, error) {
	records := make([]record, 0, len(sel))
	for _, s := range sel {
		records = append(records, record{
			TZ:      s.Timezone,
			City:    s.City,
			Country: s.Country,
			Name:    s.Name,
			Active:  s.Active,
			Base:    s.Base,
		})
	}

	p := payload{Timezones: &records}
	if selectedTime != nil {
		iso := selectedTime.UTC().Format(isoLayout)
		p.SelectedTime = &iso
	}

	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshaling share payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// EncodeState is Encode for a State.
func EncodeState(s State) (string, error) {
	return Encode(s.Selections, s.SelectedTime)
}

// Parse is the strict inverse of Encode. Decoded cards get fresh ids
// "1", "2", ... in payload order; a payload naming several bases keeps the
// first.
func Parse(encoded string) (State, error) {
	raw, err := decodeBase64(encoded)
	if err != nil {
		return State{}, err
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrStructure, err)
	}
	if p.Timezones == nil {
		return State{}, fmt.Errorf("%w: missing timezones", ErrStructure)
	}

	sel := make(selection.Set, 0, len(*p.Timezones))
	for _, r := range *p.Timezones {
		sel = append(sel, selection.Selection{
			Timezone: r.TZ,
			City:     r.City,
			Country:  r.Country,
			Name:     r.Name,
			Active:   r.Active,
			Base:     r.Base,
		})
	}
	state := State{Selections: sel.Normalize().Renumber()}

	if p.SelectedTime != nil && *p.SelectedTime != "" {
		t, err := parseSelectedTime(*p.SelectedTime)
		if err != nil {
			return State{}, fmt.Errorf("%w: %v", ErrSelectedTime, err)
		}
		state.SelectedTime = &t
	}
	return state, nil
}

// parseSelectedTime reads an ISO timestamp. A bare date is midnight UTC.
func parseSelectedTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	if d, dateErr := time.Parse(time.DateOnly, s); dateErr == nil {
		return d, nil
	}
	return time.Time{}, err
}

// Decode is Parse that never fails: any malformed payload yields Default.
func Decode(encoded string) State {
	s, err := Parse(encoded)
	if err != nil {
		return Default()
	}
	return s
}

// decodeBase64 accepts standard and URL-safe alphabets, with or without
// padding. Spaces are read back as '+', which query parsing turns them into.
func decodeBase64(encoded string) ([]byte, error) {
	s := strings.TrimSpace(encoded)
	if s == "" {
		return nil, ErrEmpty
	}
	s = strings.ReplaceAll(s, " ", "+")
	s = strings.TrimRight(s, "=")

	for _, enc := range []*base64.Encoding{base64.RawStdEncoding, base64.RawURLEncoding} {
		if raw, err := enc.DecodeString(s); err == nil {
			return raw, nil
		}
	}
	return nil, ErrEncoding
}

// URL builds a share link for an encoded payload.
func URL(base, encoded string) string {
	base = strings.TrimRight(base, "?")
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + url.Values{QueryParam: {encoded}}.Encode()
}

// FromURL restores state from a share link or a bare payload. A link
// without the data parameter restores the default live state.
func FromURL(raw string) (State, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") && !strings.HasPrefix(raw, "?") {
		return Parse(raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return State{}, fmt.Errorf("parsing share link: %w", err)
	}
	encoded := u.Query().Get(QueryParam)
	if encoded == "" {
		return Default(), nil
	}
	return Parse(encoded)
}

// DecodeURL is FromURL that never fails: a link or payload that cannot be
// read restores Default.
func DecodeURL(raw string) State {
	s, err := FromURL(raw)
	if err != nil {
		return Default()
	}
	return s
}
