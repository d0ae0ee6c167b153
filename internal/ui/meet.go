package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) meetCmd() *cobra.Command {
	var (
		limit      int
		minOverlap int
	)

	cmd := &cobra.Command{
		Use:   "meet",
		Short: "Suggest meeting windows",
		Long: `Scan the 24 hours of the base city's day and print the longest runs of
hours where the most active cities are inside business hours, with the
local time range for every city.`,
		Example: `  timesynx meet
  timesynx meet --zones=Europe/London,Asia/Tokyo,America/Chicago --min=3
  timesynx meet --at=2025-03-10 --limit=1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sv, err := a.resolveState(cmd.Context())
			if err != nil {
				return err
			}

			f := a.config.Finder()
			if cmd.Flags().Changed("limit") {
				if limit < 1 {
					return fmt.Errorf("--limit must be at least 1")
				}
				f.Limit = limit
			}
			if cmd.Flags().Changed("min") {
				if minOverlap < 1 {
					return fmt.Errorf("--min must be at least 1")
				}
				f.MinOverlap = minOverlap
			}

			s := a.summarizeWith(sv, f)
			out := cmd.OutOrStdout()
			printHeader(out, s, a.use24h)
			printWindows(out, s, a.use24h)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum windows to suggest (default from config)")
	cmd.Flags().IntVar(&minOverlap, "min", 0, "Cities that must overlap (default from config)")
	return cmd
}
