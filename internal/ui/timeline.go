package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timesynx/internal/clock"
	"github.com/javiermolinar/timesynx/internal/overlap"
	"github.com/javiermolinar/timesynx/internal/tzfmt"
)

func (a *App) timelineCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show overlap for every half hour of the day",
		Long: `Print a 48-cell bar for the base city's day, one cell per 30 minutes,
shaded by how many active cities are inside business hours.

With --verbose, or on a terminal too narrow for the bar, print one line
per slot instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sv, err := a.resolveState(cmd.Context())
			if err != nil {
				return err
			}
			s := a.summarize(sv)
			out := cmd.OutOrStdout()
			printHeader(out, s, a.use24h)

			if !verbose && termWidth() >= len(s.Timeline) {
				current := clock.Snap(s.Reference).Slot()
				fmt.Fprintln(out, TimelineBar(s.Timeline, s.Total))
				fmt.Fprintln(out, strings.Repeat(" ", current)+formatFrozen("^"))
				fmt.Fprintln(out, formatMuted(timelineRuler()))
				fmt.Fprintf(out, "\n%s █ high  ▓ medium  ▒ low  ░ none\n", formatMuted("legend:"))
				return nil
			}

			for _, slot := range s.Timeline {
				l := overlap.LevelFor(slot.Overlap, s.Total)
				bar := strings.Repeat(slotGlyphs[overlap.LevelHigh], slot.Overlap)
				fmt.Fprintf(out, "%8s  %s %s\n",
					tzfmt.SlotLabel(slot.Hour, slot.Minute),
					formatLevel(l, fmt.Sprintf("%d/%d", slot.Overlap, s.Total)),
					formatLevel(l, bar))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "One line per 30-minute slot")
	return cmd
}
