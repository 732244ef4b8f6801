package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/birdfeed/internal/config"
	"github.com/vovakirdan/birdfeed/internal/core"
	"github.com/vovakirdan/birdfeed/internal/flock"
	"github.com/vovakirdan/birdfeed/internal/game"
	"github.com/vovakirdan/birdfeed/internal/storage"
)

// Options configures a game session.
type Options struct {
	Rules    config.Config
	Runtime  core.RuntimeConfig
	Setting  int            // initial countdown setting, 0 keeps the default
	Store    *storage.Store // may be nil
	Audio    game.Audio     // may be nil
	Player   string         // recorded with results, empty for local play
	Logger   *log.Logger    // may be nil
	Renderer *lipgloss.Renderer
	Flock    *flock.Registry // other players on the same server, may be nil
	Session  *flock.Session  // this player's session in Flock
}

// noticeTicks is how long a notice from another player stays on screen.
const noticeTicks = 180

// noticeMsg carries an event from another session.
type noticeMsg struct {
	flock.Event
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	loop      *game.Loop
	display   *Renderer
	pad       *Pad
	keys      KeyMap
	help      help.Model
	theme     Theme
	store     *storage.Store
	player    string
	logger    *log.Logger
	tickRate  int
	width     int
	height    int
	highScore int
	setting   int // setting highScore was loaded for
	saved     int // results recorded this session
	flock     *flock.Registry
	session   *flock.Session
	notice    string
	noticeTTL int
	quitting  bool
}

// NewModel creates a session on the title screen.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	display := NewRenderer()
	gameOpts := []game.Option{
		game.WithRenderer(display),
		game.WithSeed(opts.Runtime.Seed),
		game.WithLogger(logger),
	}
	if opts.Audio != nil {
		gameOpts = append(gameOpts, game.WithAudio(opts.Audio))
	}

	loop := game.NewLoop(opts.Rules, gameOpts...)
	if opts.Setting != 0 {
		loop.SetSetting(opts.Setting)
	}

	m := Model{
		loop:     loop,
		display:  display,
		pad:      NewPad(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		theme:    NewTheme(opts.Renderer),
		store:    opts.Store,
		player:   opts.Player,
		logger:   logger,
		tickRate: opts.Runtime.TickRate,
		width:    opts.Runtime.ScreenW,
		height:   opts.Runtime.ScreenH,
		setting:  -1,
		flock:    opts.Flock,
		session:  opts.Session,
	}
	m.refreshHighScore()
	return m
}

// Init starts the tick loop and listens for other players.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.tickRate), m.waitForEvent())
}

// waitForEvent returns a command that waits for the next notice.
func (m Model) waitForEvent() tea.Cmd {
	if m.session == nil {
		return nil
	}
	events, done := m.session.Events(), m.session.Done()
	return func() tea.Msg {
		select {
		case evt := <-events:
			return noticeMsg{evt}
		case <-done:
			return nil
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case noticeMsg:
		m.notice = msg.Notice()
		m.noticeTTL = noticeTicks
		return m, m.waitForEvent()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if b := m.keys.Buttons(msg); b != core.ButtonNone {
		m.pad.Press(b)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	if m.noticeTTL > 0 {
		m.noticeTTL--
		if m.noticeTTL == 0 {
			m.notice = ""
		}
	}

	res := m.loop.Tick(m.pad.Poll())
	if res.Finished {
		m.saveResult(res.Summary)
	}
	if res.Summary.Setting != m.setting {
		m.refreshHighScore()
	}

	return m, tickCmd(m.tickRate)
}

// saveResult records a finished game. Storage failures are logged and the
// session goes on.
func (m *Model) saveResult(s game.Summary) {
	if m.store == nil {
		return
	}
	r := storage.Result{
		Setting:    s.Setting,
		Score:      int(s.Score),
		Dandelions: s.Stats.Caught[game.FoodDandelion],
		Berries:    s.Stats.Caught[game.FoodBerry],
		Player:     m.player,
	}
	id, err := m.store.SaveResult(r)
	if err != nil {
		m.logger.Error("could not save result", "error", err)
		return
	}
	m.saved++
	m.logger.Info("result saved", "id", id, "score", r.Score, "setting", r.Setting, "player", r.Player)

	if r.Score > m.highScore {
		m.highScore = r.Score
		if m.flock != nil && m.session != nil {
			m.flock.Broadcast(m.session.ID(), flock.RecordEvent{Player: m.player, Setting: r.Setting, Score: r.Score})
		}
	}
}

func (m *Model) refreshHighScore() {
	m.setting = m.loop.Summary().Setting
	m.highScore = 0
	if m.store == nil {
		return
	}
	hs, err := m.store.HighScore(m.setting)
	if err != nil {
		m.logger.Warn("could not load high score", "setting", m.setting, "error", err)
		return
	}
	m.highScore = hs
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	screen := m.theme.Frame.Render(RenderScreen(m.display.Compose(), m.theme))

	var b strings.Builder
	b.WriteString(screen)
	b.WriteString("\n")
	b.WriteString(m.theme.Status.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	if m.width <= 0 || m.height <= 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m Model) statusLine() string {
	s := m.loop.Summary()
	parts := []string{
		fmt.Sprintf("HI %05d", m.highScore),
		fmt.Sprintf("%d MIN", s.Setting),
	}
	if s.Paused {
		parts = append(parts, "PAUSED")
	}
	if m.player != "" {
		parts = append(parts, m.player)
	}
	if m.flock != nil {
		parts = append(parts, fmt.Sprintf("%d online", m.flock.Count()))
	}
	if m.notice != "" {
		parts = append(parts, m.notice)
	}
	return strings.Join(parts, "  ")
}

// Summary returns the state of the running simulation.
func (m Model) Summary() game.Summary {
	return m.loop.Summary()
}

// Saved returns how many results this session recorded.
func (m Model) Saved() int {
	return m.saved
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
