package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/timesynx/internal/share"
	"github.com/javiermolinar/timesynx/internal/tui"
)

// writeClipboard is the clipboard sink; tests replace it.
var writeClipboard = clipboard.WriteAll

func (a *App) shareCmd() *cobra.Command {
	var (
		copyLink bool
		rawOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print a share link for the comparison",
		Long: `Encode the cards and the frozen time (if any) into a link that opens the
same comparison. The payload is base64 JSON in the data query parameter.`,
		Example: `  timesynx share --zones=Europe/Paris,Asia/Tokyo --at="friday 10:00"
  timesynx share --board=standup --copy`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sv, err := a.resolveState(cmd.Context())
			if err != nil {
				return err
			}
			encoded, err := share.EncodeState(sv.State)
			if err != nil {
				return fmt.Errorf("encoding state: %w", err)
			}

			out := encoded
			if !rawOnly {
				out = share.URL(a.config.Share.BaseURL, encoded)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			if copyLink {
				if err := writeClipboard(out); err != nil {
					return fmt.Errorf("failed to copy link: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Share link copied to clipboard!")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyLink, "copy", "c", false, "Copy the link to the clipboard")
	cmd.Flags().BoolVar(&rawOnly, "raw", false, "Print only the encoded payload")
	return cmd
}

func (a *App) openCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "open <link-or-payload>",
		Short: "Show the comparison in a share link",
		Long: `Decode a share link (or a bare payload) and print its cards and meeting
windows. A link without a data parameter, or one that cannot be decoded,
opens the default cards.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := share.DecodeURL(args[0])
			sv := stateView{State: st}
			if a.state.at != "" {
				at, err := a.parseAt(a.state.at, st.Selections)
				if err != nil {
					return err
				}
				sv.SelectedTime = at
			}

			if interactive {
				if _, err := a.repository(); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: boards unavailable: %v\n", err)
				}
				return tui.RunWithDebug(a.repo, a.config, a.debug, tui.WithState(sv.State))
			}

			s := a.summarize(sv)
			out := cmd.OutOrStdout()
			printHeader(out, s, a.use24h)
			printCards(out, s, true)
			fmt.Fprintln(out)
			printWindows(out, s, a.use24h)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "tui", "i", false, "Open the link in the interactive board")
	return cmd
}
