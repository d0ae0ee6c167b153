package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/timesynx/internal/board"
	"github.com/javiermolinar/timesynx/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.Width = max(10, msg.Width-6)
		return m, nil

	case commands.TickMsg:
		return m.handleTick(msg)

	case commands.ShareCopiedMsg:
		LogShare(msg.URL, msg.Err)
		if msg.Err != nil {
			return m, statusCmd("Failed to copy link")
		}
		return m, statusCmd("Share link copied to clipboard!")

	case commands.BoardSavedMsg:
		m.boardName = msg.Board.Name
		return m, statusCmd(fmt.Sprintf("Saved board %q", msg.Board.Name))

	case commands.BoardLoadedMsg:
		m.boardName = msg.Board.Name
		m.selections = msg.Board.State.Selections.Clone()
		m.cursor = 0
		var cmd tea.Cmd
		if t := msg.Board.State.SelectedTime; t != nil {
			m.freeze(*t, "board")
		} else {
			cmd = m.goLive("board")
		}
		return m, tea.Batch(cmd, statusCmd(fmt.Sprintf("Loaded board %q", msg.Board.Name)))

	case commands.BoardsListedMsg:
		if len(msg.Boards) == 0 {
			return m, statusCmd("No saved boards")
		}
		names := ""
		for i, b := range msg.Boards {
			if i > 0 {
				names += ", "
			}
			names += b.Name
		}
		return m, statusCmd("Boards: " + names)

	case commands.InviteWrittenMsg:
		return m, statusCmd("Invite written to " + msg.Path)

	case commands.ErrMsg:
		LogError("command", msg.Err)
		text := fmt.Sprintf("Error: %v", msg.Err)
		if errors.Is(msg.Err, board.ErrNotFound) {
			text = msg.Err.Error()
		}
		m.setStatus(text, 5*time.Second)
		return m, clearStatusAfter(5 * time.Second)

	case commands.StatusMsgCmd:
		m.setStatus(msg.Msg, 3*time.Second)
		return m, clearStatusAfter(3 * time.Second)

	case commands.ClearStatusMsg:
		if m.nowFunc().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func statusCmd(msg string) tea.Cmd {
	return func() tea.Msg {
		return commands.StatusMsgCmd{Msg: msg}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
