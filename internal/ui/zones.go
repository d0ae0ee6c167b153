package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timesynx/internal/catalog"
	"github.com/javiermolinar/timesynx/internal/tzfmt"
)

func (a *App) zonesCmd() *cobra.Command {
	var (
		region  string
		search  string
		limit   int
		regions bool
	)

	cmd := &cobra.Command{
		Use:   "zones [search]",
		Short: "List the cities in the catalog",
		Long: `List catalog cities with their zone and current UTC offset.

Filter by region (see --regions) and by a term matched against city,
country and zone.`,
		Example: `  timesynx zones
  timesynx zones --region=europe
  timesynx zones --region="south america"
  timesynx zones tokyo
  timesynx zones --regions`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if regions {
				for _, r := range catalog.Regions() {
					fmt.Fprintln(out, r)
				}
				return nil
			}

			if len(args) == 1 {
				search = args[0]
			}
			if limit <= 0 {
				limit = len(catalog.All())
			}
			cities := catalog.Search(search, region, limit)
			if len(cities) == 0 {
				fmt.Fprintln(out, "No cities match.")
				return nil
			}

			now := a.now()
			current := ""
			for _, c := range cities {
				if r := c.Region(); r != current {
					if current != "" {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "=== %s ===\n", formatHeader(r))
					current = r
				}
				fmt.Fprintf(out, "  %-16s %-14s %-32s %s\n",
					c.Name, c.Country, c.Timezone,
					formatMuted(formatUTCOffset(tzfmt.OffsetHours(now, c.Timezone))))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", catalog.AllRegions, "Region filter ("+strings.Join(catalog.Regions(), ", ")+")")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Match city, country or zone")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum cities to list (0 = all)")
	cmd.Flags().BoolVar(&regions, "regions", false, "List region names only")
	return cmd
}
