package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arbolin/internal/game"
	"github.com/vovakirdan/arbolin/internal/leaderboard"
	"github.com/vovakirdan/arbolin/internal/progress"
	"github.com/vovakirdan/arbolin/internal/rules"
)

// boardState is the leaderboard screen. gen identifies the current visit;
// messages from an earlier visit are dropped.
type boardState struct {
	entries []leaderboard.Entry
	online  bool
	err     string
	gen     uint64
	cancel  context.CancelFunc
	table   table.Model
}

type boardMsg struct {
	gen     uint64
	entries []leaderboard.Entry
	err     error
}

type watchStartedMsg struct {
	gen uint64
	ch  <-chan []leaderboard.Entry
	err error
}

type snapshotMsg struct {
	gen     uint64
	ch      <-chan []leaderboard.Entry
	entries []leaderboard.Entry
	ok      bool
}

func fetchCmd(c *leaderboard.Client, gen uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), leaderboard.DefaultSubmitTimeout)
		defer cancel()
		entries, err := c.Fetch(ctx)
		return boardMsg{gen: gen, entries: entries, err: err}
	}
}

func watchCmd(ctx context.Context, c *leaderboard.Client, gen uint64) tea.Cmd {
	return func() tea.Msg {
		ch, err := c.Watch(ctx)
		return watchStartedMsg{gen: gen, ch: ch, err: err}
	}
}

func nextSnapshotCmd(ch <-chan []leaderboard.Entry, gen uint64) tea.Cmd {
	return func() tea.Msg {
		entries, ok := <-ch
		return snapshotMsg{gen: gen, ch: ch, entries: entries, ok: ok}
	}
}

// enterBoard loads the board: the online one when a client is configured,
// the local endless scores otherwise or when the server is unreachable.
func (m *App) enterBoard() tea.Cmd {
	m.leaveBoard()
	m.board.gen++
	m.board.err = ""
	m.board.online = false
	if m.client == nil {
		m.loadLocalBoard()
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.board.cancel = cancel
	return tea.Batch(fetchCmd(m.client, m.board.gen), watchCmd(ctx, m.client, m.board.gen))
}

// leaveBoard closes the push connection, if any.
func (m *App) leaveBoard() {
	if m.board.cancel != nil {
		m.board.cancel()
		m.board.cancel = nil
	}
}

func (m *App) loadLocalBoard() {
	m.board.entries = nil
	if m.store != nil {
		scores, err := m.store.TopScores(game.EndlessID, leaderboard.DefaultCapacity)
		if err != nil {
			m.board.err = err.Error()
		}
		for _, s := range scores {
			m.board.entries = append(m.board.entries, leaderboard.Entry{Name: s.Name, Score: s.Score, Date: s.CreatedAt})
		}
	}
	m.board.table = m.boardTable()
}

func (m *App) handleBoardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case boardMsg:
		if msg.gen != m.board.gen {
			return nil
		}
		if msg.err != nil {
			m.board.err = "Sin conexión, mostrando récords locales"
			m.loadLocalBoard()
			return nil
		}
		m.board.online = true
		m.board.entries = msg.entries
		m.board.table = m.boardTable()

	case watchStartedMsg:
		if msg.err != nil || msg.gen != m.board.gen {
			return nil
		}
		return nextSnapshotCmd(msg.ch, msg.gen)

	case snapshotMsg:
		if !msg.ok || msg.gen != m.board.gen {
			return nil
		}
		m.board.online = true
		m.board.err = ""
		m.board.entries = msg.entries
		m.board.table = m.boardTable()
		return nextSnapshotCmd(msg.ch, msg.gen)
	}
	return nil
}

// newTable builds a focused table in the shell's style.
func (m *App) newTable(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 5)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *App) boardTable() table.Model {
	rows := make([]table.Row, len(m.board.entries))
	for i, e := range m.board.entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
			e.Date.Local().Format("Jan 02 15:04"),
		}
	}
	return m.newTable([]table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Nombre", Width: progress.MaxNameLen + 2},
		{Title: "Puntos", Width: 8},
		{Title: "Fecha", Width: 14},
	}, rows)
}

func (m *App) achievementsTable() table.Model {
	list := progress.Achievements(m.progress)
	rows := make([]table.Row, len(list))
	for i, a := range list {
		state := fmt.Sprintf("%d/%d", min(a.Current, a.Target), a.Target)
		if a.Unlocked {
			state = "✓"
		}
		rows[i] = table.Row{
			a.Title,
			fmt.Sprintf("%3d%%", a.Percent()),
			state,
			rules.SkinByID(a.SkinReward).Name,
		}
	}
	return m.newTable([]table.Column{
		{Title: "Logro", Width: 22},
		{Title: "%", Width: 5},
		{Title: "Estado", Width: 9},
		{Title: "Premio", Width: 20},
	}, rows)
}

// scrollTable forwards navigation to the table on screen.
func (m *App) scrollTable(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.screen {
	case ScreenAchievements:
		m.achievements, cmd = m.achievements.Update(msg)
	case ScreenLeaderboard:
		m.board.table, cmd = m.board.table.Update(msg)
	}
	return cmd
}

func (m App) viewAchievements() string {
	body := m.achievements.View()
	list := progress.Achievements(m.progress)
	if cur := m.achievements.Cursor(); cur >= 0 && cur < len(list) {
		body += "\n" + subtitleStyle.Render(list[cur].Description)
	}
	return m.frame("Logros", body)
}

func (m App) viewBoard() string {
	title := "Clasificación (local)"
	if m.board.online {
		title = "Clasificación en línea"
	}
	body := m.board.table.View()
	if len(m.board.entries) == 0 {
		body = subtitleStyle.Render("Aún no hay récords. Juega en modo Infinito.")
	}
	if m.board.err != "" {
		body += "\n" + lockedStyle.Render(m.board.err)
	}
	return m.frame(title, body)
}
