package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/javiermolinar/timesynx/internal/clock"
	"github.com/javiermolinar/timesynx/internal/tzfmt"
)

const clearScreen = "\033[H\033[2J"

func (a *App) watchCmd() *cobra.Command {
	var (
		interval time.Duration
		play     bool
		count    int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the comparison on screen and refresh it",
		Long: `Redraw the cards every interval until interrupted.

With --play, start from the frozen time (or now) and advance 30 minutes
per tick, wrapping at midnight, to see how the overlap moves through the
day.`,
		Example: `  timesynx watch
  timesynx watch --play --interval=500ms --zones=Europe/Berlin,Asia/Singapore`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if interval <= 0 {
				return fmt.Errorf("--interval must be positive")
			}
			sv, err := a.resolveState(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			clearFirst := false
			if f, ok := out.(*os.File); ok {
				clearFirst = term.IsTerminal(int(f.Fd()))
			}

			var player clock.Player
			var day time.Time
			if play {
				start := a.now()
				if sv.SelectedTime != nil {
					start = *sv.SelectedTime
				}
				day, err = tzfmt.In(start, sv.Selections.BaseZone())
				if err != nil {
					return err
				}
				player = clock.Snap(day)
				at := player.On(day)
				sv.SelectedTime = &at
			}

			render := func() {
				if clearFirst {
					fmt.Fprint(out, clearScreen)
				}
				a.renderWatch(out, sv, play, player)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			render()

			var tk clock.Ticker
			ticks := 0
			tk.Start(ctx, interval, func(time.Time) {
				if play {
					player = player.Step()
					at := player.On(day)
					sv.SelectedTime = &at
				}
				render()
				ticks++
				if count > 0 && ticks >= count {
					cancel()
				}
			})

			<-ctx.Done()
			tk.Stop()
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Second, "Time between refreshes")
	cmd.Flags().BoolVarP(&play, "play", "p", false, "Advance 30 minutes per tick")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Stop after this many refreshes (0 = until interrupted)")
	return cmd
}

func (a *App) renderWatch(w io.Writer, sv stateView, play bool, p clock.Player) {
	s := a.summarize(sv)
	printHeader(w, s, a.use24h)
	printCards(w, s, false)
	if play {
		fmt.Fprintf(w, "\n%s %s\n", formatFrozen("▶"), p)
	}
}
