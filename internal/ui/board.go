package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timesynx/internal/board"
)

func (a *App) boardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage saved boards",
		Long: `Boards are named comparisons stored locally. They hold the same cards
and frozen time as a share link.

Open one with --board on any command, or in the interactive board.`,
	}

	cmd.AddCommand(a.boardSaveCmd())
	cmd.AddCommand(a.boardListCmd())
	cmd.AddCommand(a.boardShowCmd())
	cmd.AddCommand(a.boardRenameCmd())
	cmd.AddCommand(a.boardDeleteCmd())
	return cmd
}

func (a *App) boardSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name>",
		Short: "Save the comparison as a board",
		Long: `Save the comparison selected by --data, --zones or --board (or the
default cards) under name. An existing board with that name is replaced.`,
		Example: `  timesynx board save standup --zones=Europe/London,America/New_York
  timesynx board save launch --data="https://timesynx.app?data=..." --at="2025-06-01 15:00"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sv, err := a.resolveState(cmd.Context())
			if err != nil {
				return err
			}
			repo, err := a.repository()
			if err != nil {
				return err
			}
			b, err := board.New(args[0], sv.State, a.now())
			if err != nil {
				return err
			}
			if err := repo.SaveBoard(cmd.Context(), b); err != nil {
				return fmt.Errorf("saving board: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved board %q (%d cities)\n", b.Name, len(b.State.Selections))
			return nil
		},
	}
}

func (a *App) boardListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := a.repository()
			if err != nil {
				return err
			}
			boards, err := repo.ListBoards(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing boards: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(boards) == 0 {
				fmt.Fprintln(out, "No saved boards.")
				return nil
			}
			for _, b := range boards {
				mode := "live"
				if at := b.State.SelectedTime; at != nil {
					mode = formatFrozen(at.UTC().Format("2006-01-02 15:04 UTC"))
				}
				fmt.Fprintf(out, "  %-24s %2d cities  %s  %s\n",
					b.Name, len(b.State.Selections), mode,
					formatMuted("updated "+b.UpdatedAt.Local().Format("2006-01-02 15:04")))
			}
			return nil
		},
	}
}

func (a *App) boardShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a saved board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.getBoard(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			sv := stateView{State: b.State, Board: b.Name}
			if a.state.at != "" {
				at, err := a.parseAt(a.state.at, sv.Selections)
				if err != nil {
					return err
				}
				sv.SelectedTime = at
			}

			s := a.summarize(sv)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Board %s\n", formatHeader(b.Name))
			printHeader(out, s, a.use24h)
			printCards(out, s, true)
			fmt.Fprintln(out)
			printWindows(out, s, a.use24h)
			return nil
		},
	}
}

func (a *App) boardRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a saved board",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.repository()
			if err != nil {
				return err
			}
			if err := repo.RenameBoard(cmd.Context(), args[0], args[1]); err != nil {
				if errors.Is(err, board.ErrNotFound) {
					return fmt.Errorf("board %q not found", args[0])
				}
				return fmt.Errorf("renaming board: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed board %q to %q\n", args[0], args[1])
			return nil
		},
	}
}

func (a *App) boardDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved board",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.repository()
			if err != nil {
				return err
			}
			if err := repo.DeleteBoard(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, board.ErrNotFound) {
					return fmt.Errorf("board %q not found", args[0])
				}
				return fmt.Errorf("deleting board: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted board %q\n", args[0])
			return nil
		},
	}
}

func (a *App) getBoard(ctx context.Context, name string) (*board.Board, error) {
	repo, err := a.repository()
	if err != nil {
		return nil, err
	}
	b, err := repo.GetBoard(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("loading board: %w", err)
	}
	if b == nil {
		return nil, fmt.Errorf("board %q not found", name)
	}
	return b, nil
}
