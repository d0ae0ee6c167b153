package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timesynx/internal/invite"
	"github.com/javiermolinar/timesynx/internal/share"
)

func (a *App) inviteCmd() *cobra.Command {
	var (
		window int
		title  string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "invite",
		Short: "Export a meeting window as an iCalendar file",
		Long: `Write one of the suggested meeting windows as an .ics event that calendar
apps can import. The description lists each city's local time and the
event links back to the comparison.

The file is named timesynx-YYYY-MM-DD.ics unless --out is given; use
--out=- to write to stdout.`,
		Example: `  timesynx invite
  timesynx invite --board=standup --window=2 --title="Planning"
  timesynx invite --out=- > meeting.ics`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sv, err := a.resolveState(cmd.Context())
			if err != nil {
				return err
			}
			s := a.summarize(sv)
			if len(s.Windows) == 0 {
				return fmt.Errorf("no meeting window with enough overlap")
			}
			if window < 1 || window > len(s.Windows) {
				return fmt.Errorf("--window must be between 1 and %d", len(s.Windows))
			}

			encoded, err := share.EncodeState(sv.State)
			if err != nil {
				return fmt.Errorf("encoding state: %w", err)
			}
			if title == "" {
				title = sv.Board
			}
			e := invite.Event{
				Summary:    title,
				Window:     s.Windows[window-1],
				Day:        s.Reference,
				Selections: sv.Selections,
				URL:        share.URL(a.config.Share.BaseURL, encoded),
			}

			if out == "-" {
				return invite.Write(cmd.OutOrStdout(), e, a.now())
			}
			if out == "" {
				out = invite.FileName(e.Day)
			}
			if err := writeInviteFile(out, e, a.now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", out, e.Start().UTC().Format("2006-01-02 15:04 UTC"))
			return nil
		},
	}

	cmd.Flags().IntVarP(&window, "window", "w", 1, "Which suggested window to export (1 = best)")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Event title (default: board name or \"Team meeting\")")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path, or - for stdout")
	return cmd
}

func writeInviteFile(path string, e invite.Event, stamp time.Time) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating invite directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating invite file: %w", err)
	}
	if err := invite.Write(f, e, stamp); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing invite: %w", err)
	}
	return f.Close()
}
