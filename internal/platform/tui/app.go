package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arbolin/internal/audio"
	"github.com/vovakirdan/arbolin/internal/config"
	"github.com/vovakirdan/arbolin/internal/core"
	"github.com/vovakirdan/arbolin/internal/leaderboard"
	"github.com/vovakirdan/arbolin/internal/progress"
	"github.com/vovakirdan/arbolin/internal/registry"
	"github.com/vovakirdan/arbolin/internal/rules"
	"github.com/vovakirdan/arbolin/internal/storage"
)

// ScreenID names a screen of the shell.
type ScreenID int

const (
	ScreenMenu ScreenID = iota
	ScreenLevelSelect
	ScreenPlaying
	ScreenSkins
	ScreenSettings
	ScreenAchievements
	ScreenExtras
	ScreenStory
	ScreenLeaderboard
	ScreenShop
)

func (s ScreenID) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenLevelSelect:
		return "levels"
	case ScreenPlaying:
		return "playing"
	case ScreenSkins:
		return "skins"
	case ScreenSettings:
		return "settings"
	case ScreenAchievements:
		return "achievements"
	case ScreenExtras:
		return "extras"
	case ScreenStory:
		return "story"
	case ScreenLeaderboard:
		return "leaderboard"
	case ScreenShop:
		return "shop"
	default:
		return "unknown"
	}
}

// GameFactory creates a session variant. registry.Create is the default.
type GameFactory func(id string, opts registry.Options) (registry.Game, error)

// PlayRequest starts the shell directly inside a session.
type PlayRequest struct {
	Difficulty rules.Difficulty
	Modes      rules.Modes
}

// Options configure an App.
type Options struct {
	Store       *storage.Store      // nil keeps everything in memory
	Player      string              // progress key; empty uses the device id
	Runtime     core.RuntimeConfig  // tick rate, seed, initial size
	Tuning      config.GameConfig   // simulation tuning
	Leaderboard *leaderboard.Client // nil disables the online board
	Audio       *audio.Player       // nil is silent
	Play        *PlayRequest        // start in a session and quit when it is left
	NewGame     GameFactory
}

// App is the top-level Bubble Tea model: a router over the named screens.
type App struct {
	store   *storage.Store
	client  *leaderboard.Client
	sound   *audio.Player
	newGame GameFactory
	player  string

	runtime core.RuntimeConfig
	tuning  config.GameConfig
	keys    KeyMap
	help    help.Model

	screen  ScreenID
	cursors map[ScreenID]int
	notice  string
	width   int
	height  int

	progress progress.Progress
	settings progress.Settings
	skin     string
	modes    rules.Modes
	pending  []rules.PowerUp

	play     *playState
	tokens   uint64
	direct   bool
	quitting bool

	editing   editField
	nameInput textinput.Model
	codeInput textinput.Model

	achievements table.Model
	board        boardState
}

// NewApp loads the player's records and builds the shell.
func NewApp(opts Options) App {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	if opts.NewGame == nil {
		opts.NewGame = registry.Create
	}

	m := App{
		store:    opts.Store,
		client:   opts.Leaderboard,
		sound:    opts.Audio,
		newGame:  opts.NewGame,
		player:   opts.Player,
		runtime:  rt,
		tuning:   opts.Tuning,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		cursors:  make(map[ScreenID]int),
		width:    rt.ScreenW,
		height:   rt.ScreenH,
		progress: progress.Default(),
		settings: progress.DefaultSettings(),
		skin:     rules.DefaultSkinID,
	}
	m.loadRecords()

	m.nameInput = textinput.New()
	m.nameInput.Placeholder = progress.DefaultPlayerName
	m.nameInput.CharLimit = progress.MaxNameLen
	m.codeInput = textinput.New()
	m.codeInput.Placeholder = "CÓDIGO"
	m.codeInput.CharLimit = 32

	if opts.Play != nil {
		m.direct = true
		if opts.Play.Difficulty.Valid() {
			m.settings.Difficulty = opts.Play.Difficulty
		}
		m.modes = opts.Play.Modes
	}
	m.sound.SetEnabled(m.settings.SoundEnabled)
	m.achievements = m.achievementsTable()
	m.board.table = m.boardTable()
	return m
}

func (m *App) loadRecords() {
	if m.store == nil {
		if m.player == "" {
			m.player = "local"
		}
		return
	}
	if m.player == "" {
		id, err := m.store.DeviceID()
		if err != nil {
			id = "local"
		}
		m.player = id
	}
	// load failures already fall back to defaults
	m.progress, _ = m.store.LoadProgress(m.player)
	m.settings, _ = m.store.LoadSettings(m.player)
	m.skin, _ = m.store.LoadSkin(m.player)
	if !m.progress.HasSkin(m.skin) {
		m.skin = rules.DefaultSkinID
	}
}

func (m *App) saveProgress() {
	if m.store != nil {
		//nolint:errcheck // Best-effort save, the session flow continues regardless
		m.store.SaveProgress(m.player, m.progress)
	}
}

func (m *App) saveSettings() {
	m.sound.SetEnabled(m.settings.SoundEnabled)
	if m.store != nil {
		//nolint:errcheck // Best-effort save
		m.store.SaveSettings(m.player, m.settings)
	}
}

// Player returns the key progress is stored under.
func (m App) Player() string { return m.player }

// Screen returns the active screen.
func (m App) Screen() ScreenID { return m.screen }

// Progress returns the in-memory player record.
func (m App) Progress() progress.Progress { return m.progress }

// Init starts the direct session, if one was requested.
func (m App) Init() tea.Cmd {
	if m.direct {
		return func() tea.Msg { return startPlayMsg{} }
	}
	return nil
}

type startPlayMsg struct{}

// Update routes messages to the active screen.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.runtime.ScreenW, m.runtime.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
		if m.play != nil {
			m.play.screen.Resize(msg.Width, arenaRows(msg.Height))
		}
		m.achievements = m.achievementsTable()
		m.board.table = m.boardTable()
		return m, nil

	case startPlayMsg:
		return m, m.startPlay()

	case TickMsg:
		// stale ticks are dropped and not re-armed
		if m.play == nil || msg.Token != m.play.token {
			return m, nil
		}
		return m, m.handleTick(msg)

	case boardMsg, watchStartedMsg, snapshotMsg:
		return m, m.handleBoardMsg(msg)

	case submitDoneMsg:
		return m, nil

	case tea.KeyMsg:
		if m.editing != editNone {
			return m, m.handleEditKey(msg)
		}
		if m.screen == ScreenPlaying {
			return m, m.handlePlayKey(msg)
		}
		return m, m.handleMenuKey(msg)
	}

	if m.editing != editNone {
		return m, m.updateInput(msg)
	}
	return m, nil
}

// handleMenuKey handles keys on every non-play screen.
func (m *App) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	action := m.keys.MenuActionFor(msg)
	if action == MenuActionQuit {
		m.quitting = true
		m.leaveBoard()
		return tea.Quit
	}
	if action == MenuActionBack && m.screen != ScreenMenu {
		m.goTo(ScreenMenu)
		return nil
	}

	n := m.itemCount()
	cur := m.cursors[m.screen]
	switch action {
	case MenuActionUp:
		if cur > 0 {
			m.cursors[m.screen] = cur - 1
		}
		m.notice = ""
		if m.screen == ScreenAchievements || m.screen == ScreenLeaderboard {
			return m.scrollTable(msg)
		}
	case MenuActionDown:
		if cur < n-1 {
			m.cursors[m.screen] = cur + 1
		}
		m.notice = ""
		if m.screen == ScreenAchievements || m.screen == ScreenLeaderboard {
			return m.scrollTable(msg)
		}
	case MenuActionLeft, MenuActionRight, MenuActionSelect:
		return m.activate(action)
	}
	return nil
}

// goTo switches screens, running enter and leave hooks.
func (m *App) goTo(s ScreenID) tea.Cmd {
	if m.screen == ScreenLeaderboard && s != ScreenLeaderboard {
		m.leaveBoard()
	}
	m.screen = s
	m.notice = ""
	switch s {
	case ScreenAchievements:
		m.achievements = m.achievementsTable()
	case ScreenLeaderboard:
		return m.enterBoard()
	case ScreenPlaying:
		return m.startPlay()
	}
	return nil
}

// View renders the active screen.
func (m App) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case ScreenPlaying:
		return m.viewPlay()
	case ScreenLevelSelect:
		return m.viewLevels()
	case ScreenExtras:
		return m.viewExtras()
	case ScreenShop:
		return m.viewShop()
	case ScreenSkins:
		return m.viewSkins()
	case ScreenSettings:
		return m.viewSettings()
	case ScreenAchievements:
		return m.viewAchievements()
	case ScreenStory:
		return m.viewStory()
	case ScreenLeaderboard:
		return m.viewBoard()
	default:
		return m.viewMenu()
	}
}

// Run starts the shell on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen())
	final, err := p.Run()
	if app, ok := final.(App); ok {
		app.leaveBoard()
	}
	return err
}

// seed returns the RNG seed for the next session.
func (m *App) seed() int64 {
	if m.runtime.Seed != 0 {
		return m.runtime.Seed + int64(m.tokens)
	}
	return time.Now().UnixNano()
}

// submitDoneMsg reports a finished leaderboard submission. Failures are
// ignored; the board is best-effort.
type submitDoneMsg struct{ err error }

func submitCmd(c *leaderboard.Client, e leaderboard.Entry) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), leaderboard.DefaultSubmitTimeout)
		defer cancel()
		return submitDoneMsg{err: c.Submit(ctx, e)}
	}
}
