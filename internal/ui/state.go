package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timesynx/internal/dateutil"
	"github.com/javiermolinar/timesynx/internal/selection"
	"github.com/javiermolinar/timesynx/internal/share"
	"github.com/javiermolinar/timesynx/internal/tzfmt"
)

// ErrConflictingSources is returned when more than one state source is given.
var ErrConflictingSources = errors.New("only one of --data, --board and --zones may be set")

// stateFlags selects which comparison a command works on.
type stateFlags struct {
	data  string // share link or bare payload
	board string // saved board name
	zones string // comma-separated zone ids
	at    string // moment to freeze at, "now" for live
}

func (f *stateFlags) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&f.data, "data", "", "Share link or encoded payload to open")
	flags.StringVar(&f.board, "board", "", "Saved board to open")
	flags.StringVar(&f.zones, "zones", "", "Comma-separated IANA zones, first is the base")
	flags.StringVar(&f.at, "at", "", `Freeze time, e.g. "tomorrow 9am", "2025-01-15 14:30" or RFC3339`)
}

// stateView is a resolved comparison and the board it came from, if any.
type stateView struct {
	share.State
	Board string
}

// resolveState builds the comparison from --data, --board or --zones, falling
// back to the default cards, then applies --at.
func (a *App) resolveState(ctx context.Context) (stateView, error) {
	f := a.state

	sources := 0
	for _, v := range []string{f.data, f.board, f.zones} {
		if v != "" {
			sources++
		}
	}
	if sources > 1 {
		return stateView{}, ErrConflictingSources
	}

	var sv stateView
	switch {
	case f.data != "":
		sv.State = share.DecodeURL(f.data)

	case f.board != "":
		b, err := a.getBoard(ctx, f.board)
		if err != nil {
			return stateView{}, err
		}
		sv.State = b.State
		sv.Board = b.Name

	case f.zones != "":
		sel, err := selection.FromZones(strings.Split(f.zones, ","))
		if err != nil {
			return stateView{}, err
		}
		sv.State = share.State{Selections: sel}

	default:
		sv.State = share.Default()
		if home := a.config.Display.HomeTimezone; home != "" {
			sel, err := sv.Selections.WithHome(home)
			if err != nil {
				return stateView{}, fmt.Errorf("applying home_timezone: %w", err)
			}
			sv.Selections = sel
		}
	}

	if f.at != "" {
		at, err := a.parseAt(f.at, sv.Selections)
		if err != nil {
			return stateView{}, err
		}
		sv.SelectedTime = at
	}
	return sv, nil
}

// parseAt reads --at in the base card's zone. A nil result means live.
func (a *App) parseAt(value string, sel selection.Set) (*time.Time, error) {
	loc, err := tzfmt.LoadLocation(sel.BaseZone())
	if err != nil {
		return nil, err
	}
	t, ok, err := dateutil.ParseMoment(value, loc, a.now())
	if err != nil {
		return nil, fmt.Errorf("parsing --at: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &t, nil
}
