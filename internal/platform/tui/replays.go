package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/replay"
	"github.com/vovakirdan/pixel-arcade/internal/storage"
)

const (
	replayListLimit = 100
	detailMinWidth  = 96 // narrower terminals drop the detail pane
	detailWidth     = 30
)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ReplaysKeyMap lists the replay browser bindings. It implements
// help.KeyMap.
type ReplaysKeyMap struct {
	Up, Down           key.Binding
	NextGame, PrevGame key.Binding
	Verify, Delete     key.Binding
	Back, Quit         key.Binding
}

func bind(desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], desc))
}

// DefaultReplaysKeyMap returns the stock bindings.
func DefaultReplaysKeyMap() ReplaysKeyMap {
	return ReplaysKeyMap{
		Up:       bind("up", "up", "k"),
		Down:     bind("down", "down", "j"),
		NextGame: bind("next game", "tab", "right", "l"),
		PrevGame: bind("prev game", "shift+tab", "left", "h"),
		Verify:   bind("verify", "enter", "v"),
		Delete:   bind("delete", "x", "delete"),
		Back:     bind("back", "esc", "b"),
		Quit:     bind("quit", "q", "ctrl+c"),
	}
}

func (k ReplaysKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextGame, k.Verify, k.Delete, k.Back, k.Quit}
}

func (k ReplaysKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.NextGame, k.PrevGame}, {k.Verify, k.Delete, k.Back, k.Quit}}
}

// verifiedMsg carries the result of a background re-simulation.
type verifiedMsg struct {
	id     string
	result replay.Result
	err    error
}

// ReplaysModel browses stored recordings, filtered by game, and can
// re-simulate or delete the one under the cursor.
type ReplaysModel struct {
	store   *storage.Store
	filters []registry.GameInfo // index 0 is every game
	filter  int
	replays []storage.Replay

	table table.Model
	help  help.Model
	keys  ReplaysKeyMap

	status        string
	width, height int
	goingBack     bool
	quitting      bool
}

// NewReplaysModel opens the browser filtered to gameID, or to every game
// when gameID is empty or unknown. A nil store shows an empty list.
func NewReplaysModel(store *storage.Store, gameID string, width, height int) ReplaysModel {
	m := ReplaysModel{
		store:   store,
		filters: append([]registry.GameInfo{{Title: "All games"}}, registry.List()...),
		help:    help.New(),
		keys:    DefaultReplaysKeyMap(),
		width:   width,
		height:  height,
	}
	for i, g := range m.filters {
		if gameID != "" && g.ID == gameID {
			m.filter = i
		}
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ReplaysModel) wide() bool { return m.width >= detailMinWidth }

func (m ReplaysModel) newTable() table.Model {
	cols := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Game", Width: 9},
		{Title: "Score", Width: 6},
		{Title: "Result", Width: 6},
		{Title: "Time", Width: 6},
		{Title: "Recorded", Width: 12},
	}

	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("240"))
	st.Selected = st.Selected.Bold(false).
		Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	return table.New(
		table.WithColumns(cols),
		table.WithStyles(st),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
}

// reload queries the store for the current filter.
func (m *ReplaysModel) reload() {
	m.replays = nil
	if m.store != nil {
		list, err := m.store.ListReplays(m.filters[m.filter].ID, replayListLimit)
		if err != nil {
			m.status = "cannot load replays: " + err.Error()
		}
		m.replays = list
	}

	rows := make([]table.Row, 0, len(m.replays))
	for _, r := range m.replays {
		rows = append(rows, table.Row{
			shortID(r.ID),
			r.GameID,
			strconv.Itoa(r.Score),
			r.Outcome,
			playTime(r).String(),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// playTime is the simulated length of a recording.
func playTime(r storage.Replay) time.Duration {
	if r.TickRate <= 0 {
		return 0
	}
	return (time.Duration(r.Ticks) * time.Second / time.Duration(r.TickRate)).Round(time.Second)
}

func (m ReplaysModel) current() (storage.Replay, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.replays) {
		return storage.Replay{}, false
	}
	return m.replays[i], true
}

func (m ReplaysModel) Init() tea.Cmd { return nil }

func (m ReplaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(m.height-10, 3))
		return m, nil

	case verifiedMsg:
		m.status = describeVerify(msg)
		return m, nil

	case tea.KeyMsg:
		return m.onKey(msg)
	}
	return m, nil
}

func (m ReplaysModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextGame):
		m.filter = (m.filter + 1) % len(m.filters)
		m.status = ""
		m.reload()

	case key.Matches(msg, m.keys.PrevGame):
		m.filter = (m.filter + len(m.filters) - 1) % len(m.filters)
		m.status = ""
		m.reload()

	case key.Matches(msg, m.keys.Verify):
		if r, ok := m.current(); ok && m.store != nil {
			m.status = "verifying " + shortID(r.ID) + "..."
			return m, verifyReplay(m.store, r.ID)
		}

	case key.Matches(msg, m.keys.Delete):
		if r, ok := m.current(); ok && m.store != nil {
			if err := m.store.DeleteReplay(r.ID); err != nil {
				m.status = "delete failed: " + err.Error()
			} else {
				m.status = "deleted " + shortID(r.ID)
			}
			m.reload()
		}

	case key.Matches(msg, m.keys.Up, m.keys.Down):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// verifyReplay re-simulates off the update loop; long recordings take a
// noticeable moment.
func verifyReplay(store *storage.Store, id string) tea.Cmd {
	return func() tea.Msg {
		res, err := replay.Verify(store, id)
		return verifiedMsg{id: id, result: res, err: err}
	}
}

func describeVerify(msg verifiedMsg) string {
	id := shortID(msg.id)
	switch {
	case msg.err != nil:
		return fmt.Sprintf("%s: %v", id, msg.err)
	case msg.result.Match():
		return fmt.Sprintf("%s: verified, score %d", id, msg.result.State.Score)
	}
	return fmt.Sprintf("%s: MISMATCH, replayed hash %x but recorded %x", id, msg.result.Hash, msg.result.Replay.FinalHash)
}

func (m ReplaysModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
		Render(centerText("REPLAYS", m.width))

	body := m.listView()
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.detailView())
	}

	parts := []string{title, "", m.tabsView(), body}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	parts = append(parts, mutedStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m ReplaysModel) tabsView() string {
	tabs := make([]string, len(m.filters))
	for i, g := range m.filters {
		if i == m.filter {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ReplaysModel) listView() string {
	if len(m.replays) == 0 {
		return panelStyle.Render(mutedStyle.Italic(true).Padding(1, 2).
			Render("No replays recorded yet.\nGames are recorded with --record."))
	}
	return panelStyle.Render(m.table.View())
}

func (m ReplaysModel) detailView() string {
	r, ok := m.current()
	if !ok {
		return ""
	}
	rows := [][2]string{
		{"id", r.ID},
		{"game", r.GameID},
		{"seed", strconv.FormatInt(r.Seed, 10)},
		{"tick rate", strconv.Itoa(r.TickRate) + "/s"},
		{"ticks", strconv.Itoa(r.Ticks)},
		{"hash", fmt.Sprintf("%016x", r.FinalHash)},
	}
	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s\n%s\n", mutedStyle.Render(row[0]), row[1])
	}
	return panelStyle.Width(detailWidth).Render(strings.TrimSuffix(b.String(), "\n"))
}

func (m ReplaysModel) IsGoingBack() bool { return m.goingBack }
func (m ReplaysModel) IsQuitting() bool  { return m.quitting }

// Status is the last message shown under the list.
func (m ReplaysModel) Status() string { return m.status }

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// RunReplays shows the browser full screen. goBack is true when the player
// left with Back rather than Quit.
func RunReplays(store *storage.Store, gameID string, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewReplaysModel(store, gameID, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ReplaysModel)
	return ok && m.IsGoingBack(), nil
}
