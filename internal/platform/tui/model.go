package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/replay"
	"github.com/vovakirdan/pixel-arcade/internal/storage"
)

// Options controls optional behavior of a game Model.
type Options struct {
	// Store receives the recording when Record is set.
	Store *storage.Store

	// Logger reports best-effort failures. Nil discards them.
	Logger *log.Logger

	// Record captures every tick's input for replay.
	Record bool

	// AllowBack lets B/Esc end the game and return to a menu.
	AllowBack bool
}

// Model drives one game inside Bubble Tea. Input gathered between ticks is
// applied on the next TickMsg, then cleared.
type Model struct {
	game registry.Game
	opts Options
	keys *KeyMapper
	cfg  core.RuntimeConfig

	buf  *core.Screen
	view core.Viewport
	loop uint64 // ticks from an older loop are dropped

	pending  core.InputFrame
	state    core.GameState
	recorder *replay.Recorder
	replayID string

	quitting   bool
	backToMenu bool
}

// NewModel prepares game for cfg. A zero seed is replaced with the clock
// and a missing tick rate with the default.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game: game,
		opts: opts,
		keys: &KeyMapper{EscBack: opts.AllowBack},
		cfg:  cfg,
		buf:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		loop: nextLoopID(),
	}
	m.view, _ = core.Layout(cfg.ScreenW, cfg.ScreenH, game.Playfield())
	if opts.Record {
		m.recorder = replay.NewRecorder(game.ID(), cfg)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	m.game.Reset(m.cfg)
	return tickCmd(m.cfg.TickRate, m.loop)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.Loop != m.loop || m.quitting || m.backToMenu {
			return m, nil
		}
		m.step()
		return m, tickCmd(m.cfg.TickRate, m.loop)

	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			m.screenshot()
			return m, nil
		}
		if m.keys.MapKeyToFrame(msg, &m.pending) {
			m.quitting = true
			m.finish()
			return m, tea.Quit
		}
		if m.opts.AllowBack && m.pending.Has(core.ActionBack) {
			m.backToMenu = true
			m.finish()
			return m, tea.Quit // sessions drop this and swap stages
		}

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, m.view, &m.pending)

	case tea.WindowSizeMsg:
		// Refit only; the session keeps running.
		m.cfg.ScreenW, m.cfg.ScreenH = msg.Width, msg.Height
		m.buf.Resize(msg.Width, msg.Height)
		m.view, _ = core.Layout(msg.Width, msg.Height, m.game.Playfield())
	}
	return m, nil
}

func (m *Model) step() {
	if m.recorder != nil {
		m.recorder.Record(m.pending)
	}
	m.state = m.game.Step(m.pending).State
	m.pending.Clear()
}

// finish stores the recording once. Failures are logged and never block
// leaving the game.
func (m *Model) finish() {
	if m.recorder == nil || m.replayID != "" {
		return
	}
	logger := m.logger()
	id, err := replay.Save(m.opts.Store, m.recorder, m.game)
	switch {
	case err != nil:
		logger.Warn("could not save replay", "game", m.game.ID(), "error", err)
	case id != "":
		m.replayID = id
		logger.Info("replay saved", "id", id, "game", m.game.ID(), "ticks", m.recorder.Ticks())
	}
}

func (m Model) logger() *log.Logger {
	if m.opts.Logger != nil {
		return m.opts.Logger
	}
	return discardLogger
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	core.Paint(m.buf, m.game)
	return RenderScreen(m.buf)
}

// BackToMenu reports whether the player left with Back.
func (m Model) BackToMenu() bool { return m.backToMenu }

func (m Model) IsQuitting() bool { return m.quitting }

// ReplayID is the stored recording's ID, empty if nothing was saved.
func (m Model) ReplayID() string { return m.replayID }

// GameState is the state after the latest tick.
func (m Model) GameState() core.GameState { return m.state }

// Run plays game full screen until the player quits and returns the ID of
// the saved recording, if any.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (string, error) {
	p := tea.NewProgram(NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // steer without holding a button
	)
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if fm, ok := final.(Model); ok {
		return fm.ReplayID(), nil
	}
	return "", nil
}
