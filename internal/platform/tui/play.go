package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arbolin/internal/audio"
	"github.com/vovakirdan/arbolin/internal/core"
	"github.com/vovakirdan/arbolin/internal/game"
	"github.com/vovakirdan/arbolin/internal/leaderboard"
	"github.com/vovakirdan/arbolin/internal/progress"
	"github.com/vovakirdan/arbolin/internal/registry"
	"github.com/vovakirdan/arbolin/internal/rules"
)

// snapshotter is implemented by variants that expose a detailed readout.
type snapshotter interface {
	Snapshot() game.Snapshot
}

// playState is one running session and the input collected for it.
type playState struct {
	game   registry.Game
	setup  rules.Setup
	screen *core.Screen
	token  uint64
	keys   KeyMapper

	move    heldKeys
	aim     heldKeys
	pending core.InputFrame
	last    time.Time

	prev     game.Snapshot
	finished bool
	result   rules.GameResult
}

// sessionSetup builds the setup for the next session from the player's
// choices. Pending power-ups are consumed.
func (m *App) sessionSetup() rules.Setup {
	setup := m.progress.Setup(m.settings.Difficulty, m.modes, m.skin, m.pending)
	m.pending = nil
	return setup
}

// startPlay creates a session and arms its first tick.
func (m *App) startPlay() tea.Cmd {
	setup := m.sessionSetup()
	id := game.ID
	if setup.Modes.Endless {
		id = game.EndlessID
	}
	g, err := m.newGame(id, registry.Options{Setup: setup, Tuning: m.tuning})
	if err != nil {
		m.screen = ScreenMenu
		m.notice = err.Error()
		return nil
	}
	return m.launch(g, setup)
}

// launch resets g and makes it the active session under a fresh token.
func (m *App) launch(g registry.Game, setup rules.Setup) tea.Cmd {
	m.tokens++
	rt := m.runtime
	rt.Seed = m.seed()
	g.Reset(rt)

	m.play = &playState{
		game:    g,
		setup:   setup,
		screen:  core.NewScreen(m.width, arenaRows(m.height)),
		token:   m.tokens,
		keys:    NewKeyMapper(m.settings.Controls),
		pending: core.NewInputFrame(),
	}
	if s, ok := g.(snapshotter); ok {
		m.play.prev = s.Snapshot()
	}
	m.screen = ScreenPlaying
	m.notice = ""
	return tickCmd(m.runtime.TickRate, m.play.token)
}

// restart begins a new session with the same setup. Power-ups bought for
// the previous session do not carry over.
func (m *App) restart() tea.Cmd {
	setup := m.play.setup
	setup.PowerUps = nil
	setup.UnlockedStory = append([]int(nil), m.progress.UnlockedStoryParts...)
	setup.HasPeel = m.progress.HasSacredPeel
	setup.HasCaramel = m.progress.HasCaramelBanana
	g, err := m.newGame(m.play.game.ID(), registry.Options{Setup: setup, Tuning: m.tuning})
	if err != nil {
		m.notice = err.Error()
		return nil
	}
	return m.launch(g, setup)
}

// leavePlay drops the session. Its outstanding tick is ignored on arrival.
func (m *App) leavePlay() tea.Cmd {
	p := m.play
	m.play = nil
	if m.direct {
		m.quitting = true
		return tea.Quit
	}
	if p != nil && p.finished && p.result.Outcome == rules.OutcomeSecretFound {
		return m.claimSecret(p.result)
	}
	m.screen = ScreenMenu
	return nil
}

// claimSecret opens the screen that shows what a secret ending unlocked:
// the story with the new part selected, or the extras for an item.
func (m *App) claimSecret(r rules.GameResult) tea.Cmd {
	if r.FoundPeel || r.FoundCaramel {
		return m.goTo(ScreenExtras)
	}
	cmd := m.goTo(ScreenStory)
	for i, part := range rules.Story {
		if part.ID == r.UnlockedSecret {
			m.cursors[ScreenStory] = i
		}
	}
	return cmd
}

// handleTick steps the session by the real time since the previous tick.
func (m *App) handleTick(msg TickMsg) tea.Cmd {
	p := m.play
	var dt time.Duration
	if !p.last.IsZero() {
		dt = msg.Time.Sub(p.last)
	}
	p.last = msg.Time

	in := p.pending
	in.Move = p.move.vector()
	in.Aim = p.aim.vector()
	in.DT = dt
	p.game.Step(in)
	p.pending = core.NewInputFrame()

	nominal := dt
	if nominal <= 0 {
		nominal = time.Second / time.Duration(m.runtime.TickRate)
	}
	p.move.decay(nominal)
	p.aim.decay(nominal)

	m.playCues()

	if p.game.State().GameOver {
		return m.finishSession()
	}
	return tickCmd(m.runtime.TickRate, p.token)
}

// playCues turns readout changes into sound cues.
func (m *App) playCues() {
	p := m.play
	s, ok := p.game.(snapshotter)
	if !ok {
		return
	}
	cur := s.Snapshot()
	switch {
	case cur.Score > p.prev.Score:
		m.sound.Play(audio.CuePickup)
	case p.prev.Shield && !cur.Shield:
		m.sound.Play(audio.CueShield)
	case p.prev.AbilityReady && !cur.AbilityReady:
		m.sound.Play(audio.CueAbility)
	}
	p.prev = cur
}

// finishSession applies the terminal result exactly once.
func (m *App) finishSession() tea.Cmd {
	p := m.play
	if p.finished {
		return nil
	}
	r, ok := p.game.Result()
	if !ok {
		return nil
	}
	p.finished = true
	p.result = r

	switch r.Outcome {
	case rules.OutcomeWon:
		m.sound.Play(audio.CueWin)
	case rules.OutcomeSecretFound:
		m.sound.Play(audio.CueSecret)
	default:
		m.sound.Play(audio.CueLoss)
	}

	m.progress = progress.Apply(m.progress, r, p.setup.Modes)
	m.saveProgress()

	if !p.setup.Modes.Endless || r.Outcome == rules.OutcomeSecretFound {
		return nil
	}
	name := m.settings.PlayerName
	if m.store != nil {
		//nolint:errcheck // Best-effort local score
		m.store.SaveScore(p.game.ID(), m.player, name, r.Score)
	}
	if m.client == nil {
		return nil
	}
	return submitCmd(m.client, leaderboard.Entry{Name: name, Score: r.Score, Date: time.Now().UTC()})
}

// handlePlayKey handles keys while a session is on screen.
func (m *App) handlePlayKey(msg tea.KeyMsg) tea.Cmd {
	p := m.play
	if p == nil {
		m.screen = ScreenMenu
		return nil
	}
	k := p.keys.MapKey(msg)
	over := p.game.State().GameOver
	paused := p.game.State().Paused

	switch k.Action {
	case core.ActionQuit:
		m.quitting = true
		m.play = nil
		return tea.Quit
	case core.ActionBack:
		if over || paused {
			return m.leavePlay()
		}
		p.pending.Set(core.ActionPause)
		return nil
	case core.ActionRestart:
		if over {
			return m.restart()
		}
		return nil
	case core.ActionConfirm:
		if over {
			return m.leavePlay()
		}
		return nil
	case core.ActionPause, core.ActionAbility:
		if !over {
			p.pending.Set(k.Action)
		}
		return nil
	}

	switch {
	case k.Move:
		p.move.press(k.Dir)
	case k.Aim:
		p.aim.press(k.Dir)
	}
	return nil
}

// arenaRows leaves one row under the arena for the result line.
func arenaRows(height int) int {
	return max(height-1, 1)
}

// viewPlay renders the arena with the HUD above it.
func (m App) viewPlay() string {
	p := m.play
	if p == nil {
		return ""
	}
	p.screen.Clear()
	p.game.Render(p.screen)
	out := RenderScreen(p.screen)
	if p.finished {
		out = lipgloss.JoinVertical(lipgloss.Left, out, centerText(m.resultLine(), m.width))
	}
	return out
}

// resultLine summarises a finished session.
func (m App) resultLine() string {
	r := m.play.result
	switch r.Outcome {
	case rules.OutcomeWon:
		return noticeStyle.Render(fmt.Sprintf("¡Ganaste! %d %s · r: otra vez · esc: menú", r.Score, m.play.setup.Modes.Currency()))
	case rules.OutcomeSecretFound:
		title := "secreto"
		switch part, ok := rules.StoryByID(r.UnlockedSecret); {
		case r.FoundPeel:
			title = "Cáscara Sagrada"
		case r.FoundCaramel:
			title = "Banana Caramelizada"
		case ok:
			title = part.Title
		}
		return noticeStyle.Render(fmt.Sprintf("Encontraste: %s · enter: reclamar", title))
	default:
		return noticeStyle.Render(fmt.Sprintf("Perdiste con %d · r: otra vez · esc: menú", r.Score))
	}
}
