package ui

import (
	"github.com/spf13/cobra"
)

func (a *App) nowCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Show the time in every city",
		Long: `Print each card's clock, date and offset from the base city, and how
many active cities are inside business hours.

The base city is marked with *. Use --at to look at another moment.`,
		Example: `  timesynx now
  timesynx now --zones=Europe/Madrid,America/New_York --at="tomorrow 9am"
  timesynx now --board=standup --all`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sv, err := a.resolveState(cmd.Context())
			if err != nil {
				return err
			}
			s := a.summarize(sv)
			out := cmd.OutOrStdout()
			printHeader(out, s, a.use24h)
			printCards(out, s, all)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include inactive cards")
	return cmd
}
