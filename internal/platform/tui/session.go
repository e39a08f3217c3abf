package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/storage"
)

// stage is the part of a session currently in front of the player.
type stage int

const (
	stageMenu stage = iota
	stageGame
	stageReplays
)

// SessionModel is one remote player's whole visit: the menu, any number of
// games and the replay browser, all inside a single Bubble Tea program.
type SessionModel struct {
	store  *storage.Store
	config core.RuntimeConfig
	logger *log.Logger

	at       stage
	menu     MenuModel
	game     *Model
	replays  *ReplaysModel
	quitting bool
}

// NewSessionModel starts at the menu. Games are recorded when store is not
// nil.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = discardLogger
	}
	return SessionModel{store: store, config: cfg, logger: logger, menu: NewMenuModel(cfg)}
}

func (m SessionModel) Init() tea.Cmd { return m.menu.Init() }

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}
	switch m.at {
	case stageGame:
		return m.updateGame(msg)
	case stageReplays:
		return m.updateReplays(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.at = stageMenu
	m.game, m.replays = nil, nil
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		return m.quit()

	case m.menu.WantsReplays():
		rm := NewReplaysModel(m.store, "", m.config.ScreenW, m.config.ScreenH)
		m.at, m.replays = stageReplays, &rm
		m.menu = NewMenuModel(m.config)
		return m, rm.Init()

	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().GameID)
	}
	// The menu's tea.Quit on a choice is dropped by the cases above.
	return m, cmd
}

func (m SessionModel) startGame(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		m.logger.Error("cannot start game", "game", id, "error", err)
		return m.toMenu()
	}

	cfg := m.config
	cfg.Seed = time.Now().UnixNano()
	gm := NewModel(game, cfg, Options{
		Store:     m.store,
		Logger:    m.logger,
		Record:    m.store != nil,
		AllowBack: true,
	})
	m.at, m.game = stageGame, &gm
	m.logger.Info("game started", "game", id, "seed", cfg.Seed)
	return m, gm.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	gm := next.(Model)
	m.game = &gm

	switch {
	case gm.IsQuitting():
		return m.quit()
	case gm.BackToMenu():
		m.logger.Info("game left", "game", gm.game.ID(), "score", gm.GameState().Score, "replay", gm.ReplayID())
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateReplays(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.replays.Update(msg)
	rm := next.(ReplaysModel)
	m.replays = &rm

	switch {
	case rm.IsGoingBack():
		return m.toMenu()
	case rm.IsQuitting():
		return m.quit()
	}
	return m, cmd
}

func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.at {
	case stageGame:
		return m.game.View()
	case stageReplays:
		return m.replays.View()
	}
	return m.menu.View()
}
