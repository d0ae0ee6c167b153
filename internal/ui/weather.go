package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) weatherCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weather",
		Short: "Show conditions and sun times for the active cities",
		Long: `Print the sample conditions and the estimated sunrise and sunset for each
active card. Conditions are canned values, not a forecast.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sv, err := a.resolveState(cmd.Context())
			if err != nil {
				return err
			}
			s := a.summarize(sv)
			out := cmd.OutOrStdout()
			printHeader(out, s, a.use24h)
			for _, c := range s.Active() {
				r := c.Weather
				fmt.Fprintf(out, "  %-16s %s %3d°C %-14s %s  %s\n",
					c.Selection.Name, r.Icon, r.TemperatureC, r.Condition,
					formatMuted(fmt.Sprintf("humidity %d%% wind %d km/h", r.Humidity, r.WindSpeed)),
					fmt.Sprintf("↑ %s ↓ %s", c.Sun.Sunrise, c.Sun.Sunset))
			}
			return nil
		},
	}
}
