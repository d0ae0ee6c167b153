// Package tui provides the terminal user interface for timesynx.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/timesynx/internal/board"
	"github.com/javiermolinar/timesynx/internal/clock"
	"github.com/javiermolinar/timesynx/internal/config"
	"github.com/javiermolinar/timesynx/internal/db"
	"github.com/javiermolinar/timesynx/internal/overlap"
	"github.com/javiermolinar/timesynx/internal/selection"
	"github.com/javiermolinar/timesynx/internal/share"
	"github.com/javiermolinar/timesynx/internal/summary"
	"github.com/javiermolinar/timesynx/internal/tui/commands"
	"github.com/javiermolinar/timesynx/internal/tui/theme"
	"github.com/javiermolinar/timesynx/internal/tzfmt"
	"github.com/javiermolinar/timesynx/internal/weather"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt
)

// Tick intervals for the live clock and the player.
const (
	liveInterval = time.Second
	playInterval = time.Second
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo    board.Repository
	config  *config.Config
	finder  overlap.Finder
	weather weather.Provider

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Time
	session *clock.Session
	player  clock.Player
	playing bool
	tickTag int // bumped on every live/frozen/playing switch

	// State
	selections selection.Set
	cursor     int // index into selections
	mode       Mode
	use24h     bool
	boardName  string
	inviteDir  string
	summary    *summary.Summary

	// Components
	prompt textinput.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	nowFunc func() time.Time
	startAt *time.Time // frozen instant to open at, nil for live
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithState starts the model from a decoded share state.
func WithState(s share.State) ModelOption {
	return func(m *Model) {
		m.selections = s.Selections.Clone()
		m.startAt = s.SelectedTime
	}
}

// WithBoard remembers the board the state was loaded from.
func WithBoard(name string) ModelOption {
	return func(m *Model) {
		m.boardName = name
	}
}

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.nowFunc = now
	}
}

// WithInviteDir sets where invites are written.
func WithInviteDir(dir string) ModelOption {
	return func(m *Model) {
		m.inviteDir = dir
	}
}

// New creates a new TUI model.
func New(repo board.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	ti := textinput.New()
	ti.Placeholder = "city to add, or /command"
	ti.CharLimit = 128

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)
	ti.PromptStyle = styles.PromptCharStyle
	ti.TextStyle = styles.TextStyle
	ti.PlaceholderStyle = styles.MutedStyle

	m := &Model{
		repo:       repo,
		config:     cfg,
		finder:     cfg.Finder(),
		weather:    weather.Mock{},
		theme:      t,
		styles:     styles,
		selections: selection.Defaults(),
		mode:       ModeNormal,
		use24h:     cfg.Display.Use24h,
		inviteDir:  ".",
		prompt:     ti,
		nowFunc:    time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.session = clock.NewSession(m.nowFunc)
	if m.startAt != nil {
		m.session.Freeze(*m.startAt)
	}

	m.player = clock.Snap(m.reference())
	m.refresh()
	return m
}

// Init starts the live clock unless the state opened frozen.
func (m Model) Init() tea.Cmd {
	if !m.session.IsLive() {
		return nil
	}
	return commands.Tick(m.tickTag, liveInterval)
}

// shareState returns the state as it would be encoded.
func (m Model) shareState() share.State {
	return share.State{Selections: m.selections, SelectedTime: m.session.Selected()}
}

// reference returns the displayed instant in the base zone.
func (m Model) reference() time.Time {
	at := m.session.Now()
	if local, err := tzfmt.In(at, m.selections.BaseZone()); err == nil {
		return local
	}
	return at
}

// timeMode names the current time mode for display and logging.
func (m Model) timeMode() string {
	if m.playing {
		return "playing"
	}
	return m.session.Mode().String()
}

// refresh recomputes the summary for the current state.
func (m *Model) refresh() {
	m.summary = summary.Build(m.shareState(), summary.Options{
		Finder:  m.finder,
		Use24h:  m.use24h,
		Weather: m.weather,
		Now:     m.session.Now(),
	})
	if m.cursor >= len(m.selections) {
		m.cursor = len(m.selections) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// goLive follows the wall clock again.
func (m *Model) goLive(reason string) tea.Cmd {
	from := m.timeMode()
	m.session.GoLive()
	m.playing = false
	m.tickTag++
	m.refresh()
	m.player = clock.Snap(m.summary.Reference)
	LogModeChange(from, m.timeMode(), reason)
	return commands.Tick(m.tickTag, liveInterval)
}

// freeze pins the display to t and stops any running loop.
func (m *Model) freeze(t time.Time, reason string) {
	from := m.timeMode()
	m.session.Freeze(t)
	m.playing = false
	m.tickTag++
	m.refresh()
	m.player = clock.Snap(m.summary.Reference)
	LogModeChange(from, m.timeMode(), reason)
}

// togglePlay starts or pauses the 30-minute player.
func (m *Model) togglePlay() tea.Cmd {
	from := m.timeMode()
	m.tickTag++
	if m.playing {
		m.playing = false
		LogModeChange(from, m.timeMode(), "pause")
		return nil
	}

	ref := m.reference()
	m.player = clock.Snap(ref)
	m.session.Freeze(m.player.On(ref))
	m.playing = true
	m.refresh()
	LogModeChange(from, m.timeMode(), "play")
	return commands.Tick(m.tickTag, playInterval)
}

// step moves the frozen time by n player slots on the reference day.
func (m *Model) step(n int) {
	ref := m.reference()
	p := clock.FromSlot(clock.Snap(ref).Slot() + n)
	m.freeze(p.On(ref), "scrub")
}

// handleTick advances the live clock or the player.
func (m Model) handleTick(msg commands.TickMsg) (Model, tea.Cmd) {
	stale := msg.Tag != m.tickTag
	LogTick(msg.Tag, m.tickTag, stale)
	if stale {
		return m, nil
	}

	if m.playing {
		ref := m.reference()
		m.player = m.player.Step()
		m.session.Freeze(m.player.On(ref))
		m.refresh()
		return m, commands.Tick(m.tickTag, playInterval)
	}
	if m.session.IsLive() {
		m.refresh()
		return m, commands.Tick(m.tickTag, liveInterval)
	}
	return m, nil
}

// setSelections applies an edited selection set.
func (m *Model) setSelections(s selection.Set, err error) {
	if err != nil {
		m.setStatus(fmt.Sprintf("Error: %v", err), 5*time.Second)
		LogError("selection", err)
		return
	}
	m.selections = s
	m.refresh()
}

func (m *Model) setStatus(msg string, d time.Duration) {
	m.statusMsg = msg
	m.statusTime = m.nowFunc().Add(d)
}

// Run starts the TUI.
func Run(repo board.Repository, cfg *config.Config, opts ...ModelOption) error {
	return RunWithDebug(repo, cfg, false, opts...)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo board.Repository, cfg *config.Config, debug bool, opts ...ModelOption) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	ownRepo := false
	if repo == nil {
		r, err := openRepo(cfg.Storage.DBPath)
		if err != nil {
			// Boards are optional; the comparison works without storage.
			LogError("open board storage", err)
		} else {
			repo = r
			ownRepo = true
		}
	}
	if ownRepo {
		defer func() { _ = repo.Close() }()
	}

	model := New(repo, cfg, opts...)
	p := tea.NewProgram(*model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func openRepo(dbPath string) (board.Repository, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}
