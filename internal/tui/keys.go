package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/timesynx/internal/board"
	"github.com/javiermolinar/timesynx/internal/dateutil"
	"github.com/javiermolinar/timesynx/internal/invite"
	"github.com/javiermolinar/timesynx/internal/share"
	"github.com/javiermolinar/timesynx/internal/tui/commands"
	"github.com/javiermolinar/timesynx/internal/tui/input"
	"github.com/javiermolinar/timesynx/internal/tzfmt"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.mode == ModePrompt {
		return m.handlePromptKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Card cursor
	case "j", "down":
		if m.cursor < len(m.selections)-1 {
			m.cursor++
			LogCursorMove(m.cursor, "down")
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			LogCursorMove(m.cursor, "up")
		}

	// Card edits
	case "J", "shift+down":
		if m.cursor < len(m.selections)-1 {
			m.setSelections(m.selections.Move(m.cursor, m.cursor+1))
			m.cursor++
		}
	case "K", "shift+up":
		if m.cursor > 0 {
			m.setSelections(m.selections.Move(m.cursor, m.cursor-1))
			m.cursor--
		}
	case " ", "enter":
		if id, ok := m.currentID(); ok {
			m.setSelections(m.selections.Toggle(id))
		}
	case "b":
		if id, ok := m.currentID(); ok {
			m.setSelections(m.selections.SetBase(id))
		}
	case "x", "delete":
		if id, ok := m.currentID(); ok {
			m.setSelections(m.selections.Remove(id))
		}

	// Time
	case "h", "left":
		m.step(-1)
	case "l", "right":
		m.step(1)
	case "p":
		return m, m.togglePlay()
	case "n":
		return m, m.goLive("key")
	case "f":
		m.use24h = !m.use24h
		m.refresh()

	// Output
	case "s":
		return m, m.shareCmd()
	case "y":
		return m, commands.CopySummary(m.summary.Text(m.use24h))
	case "i":
		return m, m.inviteCmd()

	// Prompt
	case "/":
		return m.openPrompt("/")
	case "a":
		return m.openPrompt("/add ")
	case "r":
		return m.openPrompt("/replace ")
	case "t":
		return m.openPrompt("/at ")
	case "w":
		return m.openPrompt("/save " + m.boardName)
	case "o":
		return m, commands.ListBoards(m.repo)
	}
	return m, nil
}

func (m Model) openPrompt(value string) (tea.Model, tea.Cmd) {
	m.mode = ModePrompt
	m.prompt.SetValue(value)
	m.prompt.CursorEnd()
	return m, m.prompt.Focus()
}

func (m *Model) closePrompt() {
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.SetValue("")
}

// handlePromptKeys handles keys while the prompt is open.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil
	case "tab":
		value := m.prompt.Value()
		if completed, ok := input.PromptAutocomplete(value, input.Commands); ok {
			m.prompt.SetValue(completed)
		} else if cities := input.CitySuggestions(value, 1); len(cities) > 0 {
			cmd, _ := input.Parse(value)
			m.prompt.SetValue(cmd + " " + cities[0].Name)
		}
		m.prompt.CursorEnd()
		return m, nil
	case "enter":
		value := m.prompt.Value()
		m.closePrompt()
		return m.runPrompt(value)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// runPrompt executes a submitted prompt line.
func (m Model) runPrompt(line string) (tea.Model, tea.Cmd) {
	cmd, arg := input.Parse(line)
	switch cmd {
	case "/add", "/replace":
		if arg == "" {
			return m, nil
		}
		city, ok := input.ResolveCity(arg)
		if !ok {
			return m, statusCmd(fmt.Sprintf("No city matches %q", arg))
		}
		if cmd == "/add" {
			m.setSelections(m.selections.Add(city))
			m.cursor = len(m.selections) - 1
			return m, nil
		}
		if id, ok := m.currentID(); ok {
			m.setSelections(m.selections.Replace(id, city))
		}
		return m, nil

	case "/at":
		loc, err := tzfmt.LoadLocation(m.selections.BaseZone())
		if err != nil {
			return m, statusCmd(fmt.Sprintf("Error: %v", err))
		}
		t, ok, err := dateutil.ParseMoment(arg, loc, m.nowFunc())
		if err != nil {
			return m, statusCmd(fmt.Sprintf("Error: %v", err))
		}
		if !ok {
			return m, m.goLive("prompt")
		}
		m.freeze(t, "prompt")
		return m, nil

	case "/live":
		return m, m.goLive("prompt")

	case "/save":
		name := arg
		if name == "" {
			name = m.boardName
		}
		b, err := board.New(name, m.shareState(), m.nowFunc())
		if err != nil {
			return m, statusCmd(fmt.Sprintf("Error: %v", err))
		}
		return m, commands.SaveBoard(m.repo, b)

	case "/load":
		if arg == "" {
			return m, commands.ListBoards(m.repo)
		}
		return m, commands.LoadBoard(m.repo, arg)

	case "/invite":
		return m, m.inviteCmd()
	}
	return m, statusCmd(fmt.Sprintf("Unknown command %s", strings.TrimSpace(cmd)))
}

func (m Model) currentID() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.selections) {
		return "", false
	}
	return m.selections[m.cursor].ID, true
}

// shareCmd encodes the state and copies its link.
func (m Model) shareCmd() tea.Cmd {
	encoded, err := share.EncodeState(m.shareState())
	if err != nil {
		LogShare("", err)
		return statusCmd("Failed to copy link")
	}
	return commands.CopyShareLink(share.URL(m.config.Share.BaseURL, encoded))
}

// inviteCmd writes the best window as an ICS file.
func (m Model) inviteCmd() tea.Cmd {
	if len(m.summary.Windows) == 0 {
		return statusCmd("No meeting window to export")
	}
	encoded, err := share.EncodeState(m.shareState())
	if err != nil {
		return statusCmd(fmt.Sprintf("Error: %v", err))
	}
	e := invite.Event{
		Summary:    m.boardName,
		Window:     m.summary.Windows[0],
		Day:        m.summary.Reference,
		Selections: m.selections,
		URL:        share.URL(m.config.Share.BaseURL, encoded),
	}
	return commands.WriteInvite(m.inviteDir, e, m.nowFunc())
}
