package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuItem is one game in the picker.
type MenuItem struct {
	GameID string
	Title  string
	Field  core.Size
}

// MenuModel lets the player pick a game or open the replay browser. It
// quits its program once a choice is made; the caller reads the choice.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig
	keys   *KeyMapper

	selected    *MenuItem
	openReplays bool
	quitting    bool
}

// NewMenuModel lists every registered game.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title, Field: g.Playfield})
	}
	return MenuModel{items: items, config: cfg, keys: NewKeyMapper()}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.onKey(m.keys.MapKeyToMenuAction(msg))
	}
	return m, nil
}

func (m MenuModel) onKey(action MenuAction) (tea.Model, tea.Cmd) {
	n := len(m.items)
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionReplays:
		m.openReplays = true
		return m, tea.Quit
	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}
	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case MenuActionSelect:
		if n > 0 {
			pick := m.items[m.cursor]
			m.selected = &pick
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	w := m.config.ScreenW

	lines := []string{
		"",
		menuTitleStyle.Render(centerText("  A R C A D E  ", w)),
		"",
		centerText("Select a game", w),
		"",
	}
	for i, item := range m.items {
		label := "  " + item.Title
		if i == m.cursor {
			lines = append(lines, menuPickStyle.Render(centerText("> "+item.Title, w)))
			continue
		}
		lines = append(lines, centerText(label, w))
	}
	if len(m.items) == 0 {
		lines = append(lines, centerText("(no games registered)", w))
	} else {
		f := m.items[m.cursor].Field
		lines = append(lines, "", menuHintStyle.Render(centerText(fmt.Sprintf("playfield %.0f x %.0f", f.W, f.H), w)))
	}
	lines = append(lines, "",
		menuHintStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Replays  |  Q: Quit", w)))
	return strings.Join(lines, "\n") + "\n"
}

// Selected is the chosen game, nil until Enter.
func (m MenuModel) Selected() *MenuItem { return m.selected }

func (m MenuModel) IsQuitting() bool   { return m.quitting }
func (m MenuModel) WantsReplays() bool { return m.openReplays }

// Config is the runtime config including the latest terminal size.
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// centerText left-pads text to center it in width columns.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// MenuResult is what the standalone menu program decided.
type MenuResult struct {
	GameID       string
	Config       core.RuntimeConfig
	WantsReplays bool
	Quit         bool
}

// RunMenu shows the picker full screen until the player chooses.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config()}
	switch {
	case m.WantsReplays():
		res.WantsReplays = true
	case m.Selected() != nil:
		res.GameID = m.Selected().GameID
	default:
		res.Quit = true
	}
	return res, nil
}
