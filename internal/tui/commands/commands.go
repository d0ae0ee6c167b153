// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/timesynx/internal/board"
	"github.com/javiermolinar/timesynx/internal/invite"
)

// TickMsg is delivered by Tick. Tag identifies the loop that scheduled it;
// the model drops ticks whose tag is no longer current.
type TickMsg struct {
	Tag int
	At  time.Time
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// ShareCopiedMsg reports the outcome of copying a share link.
type ShareCopiedMsg struct {
	URL string
	Err error
}

// BoardSavedMsg is sent when a board is stored.
type BoardSavedMsg struct {
	Board *board.Board
}

// BoardLoadedMsg is sent when a board is read back.
type BoardLoadedMsg struct {
	Board *board.Board
}

// BoardsListedMsg carries the stored boards.
type BoardsListedMsg struct {
	Boards []*board.Board
}

// InviteWrittenMsg is sent when an ICS file has been written.
type InviteWrittenMsg struct {
	Path string
}

// WriteClipboard is the clipboard sink; tests replace it.
var WriteClipboard = clipboard.WriteAll

// Tick schedules one TickMsg after d.
func Tick(tag int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Tag: tag, At: t}
	})
}

// CopyShareLink writes url to the system clipboard.
func CopyShareLink(url string) tea.Cmd {
	return func() tea.Msg {
		return ShareCopiedMsg{URL: url, Err: WriteClipboard(url)}
	}
}

// CopySummary writes a plain-text digest to the system clipboard.
func CopySummary(text string) tea.Cmd {
	return func() tea.Msg {
		if err := WriteClipboard(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying summary: %w", err)}
		}
		return StatusMsgCmd{Msg: "Summary copied to clipboard"}
	}
}

// SaveBoard stores b.
func SaveBoard(repo board.Repository, b *board.Board) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return ErrMsg{Err: errors.New("board storage is not available")}
		}
		if err := repo.SaveBoard(context.Background(), b); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving board: %w", err)}
		}
		return BoardSavedMsg{Board: b}
	}
}

// LoadBoard reads the board called name.
func LoadBoard(repo board.Repository, name string) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return ErrMsg{Err: errors.New("board storage is not available")}
		}
		b, err := repo.GetBoard(context.Background(), name)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading board: %w", err)}
		}
		if b == nil {
			return ErrMsg{Err: fmt.Errorf("%w: %s", board.ErrNotFound, name)}
		}
		return BoardLoadedMsg{Board: b}
	}
}

// ListBoards reads every stored board.
func ListBoards(repo board.Repository) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return ErrMsg{Err: errors.New("board storage is not available")}
		}
		boards, err := repo.ListBoards(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("listing boards: %w", err)}
		}
		return BoardsListedMsg{Boards: boards}
	}
}

// WriteInvite writes e as an ICS file in dir, named for its day.
func WriteInvite(dir string, e invite.Event, stamp time.Time) tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(dir, invite.FileName(e.Day))
		f, err := os.Create(path)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("creating invite file: %w", err)}
		}
		if err := invite.Write(f, e, stamp); err != nil {
			_ = f.Close()
			return ErrMsg{Err: fmt.Errorf("writing invite: %w", err)}
		}
		if err := f.Close(); err != nil {
			return ErrMsg{Err: fmt.Errorf("closing invite file: %w", err)}
		}
		return InviteWrittenMsg{Path: path}
	}
}
