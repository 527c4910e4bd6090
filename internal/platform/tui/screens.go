package tui

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arbolin/internal/progress"
	"github.com/vovakirdan/arbolin/internal/rules"
)

type menuItem struct {
	label  string
	screen ScreenID
	quit   bool
}

var menuItems = []menuItem{
	{label: "Jugar", screen: ScreenPlaying},
	{label: "Dificultad", screen: ScreenLevelSelect},
	{label: "Extras", screen: ScreenExtras},
	{label: "Tienda", screen: ScreenShop},
	{label: "Aspectos", screen: ScreenSkins},
	{label: "Logros", screen: ScreenAchievements},
	{label: "Historia", screen: ScreenStory},
	{label: "Clasificación", screen: ScreenLeaderboard},
	{label: "Ajustes", screen: ScreenSettings},
	{label: "Salir", quit: true},
}

// Rows of the extras screen.
const (
	extraMutant = iota
	extraEndless
	extraFuegorin
	extraBanana
	extraRedeem
	extraCount
)

// Rows of the settings screen.
const (
	settingSound = iota
	settingDifficulty
	settingName
	settingControls
	settingCount
)

type editField int

const (
	editNone editField = iota
	editName
	editCode
)

// itemCount returns how many selectable rows the active screen has.
func (m *App) itemCount() int {
	switch m.screen {
	case ScreenMenu:
		return len(menuItems)
	case ScreenLevelSelect:
		return len(rules.Difficulties)
	case ScreenExtras:
		return extraCount
	case ScreenShop:
		return len(rules.PowerUps)
	case ScreenSkins:
		return len(rules.Skins)
	case ScreenSettings:
		return settingCount
	case ScreenStory:
		return len(rules.Story)
	case ScreenAchievements:
		return len(m.achievements.Rows())
	case ScreenLeaderboard:
		return len(m.board.table.Rows())
	}
	return 0
}

// activate applies select/left/right on the row under the cursor.
func (m *App) activate(action MenuAction) tea.Cmd {
	cur := m.cursors[m.screen]
	switch m.screen {
	case ScreenMenu:
		if action != MenuActionSelect {
			return nil
		}
		item := menuItems[cur]
		if item.quit {
			m.quitting = true
			return tea.Quit
		}
		return m.goTo(item.screen)

	case ScreenLevelSelect:
		if action != MenuActionSelect {
			return nil
		}
		m.settings.Difficulty = rules.Difficulties[cur]
		m.saveSettings()
		return m.goTo(ScreenPlaying)

	case ScreenExtras:
		return m.activateExtra(cur)

	case ScreenShop:
		if action == MenuActionSelect {
			m.buy(rules.PowerUps[cur].ID)
		}

	case ScreenSkins:
		if action != MenuActionSelect {
			return nil
		}
		skin := rules.Skins[cur]
		if !m.progress.HasSkin(skin.ID) {
			m.notice = "Bloqueado: " + skin.Hint
			return nil
		}
		m.skin = skin.ID
		if m.store != nil {
			//nolint:errcheck // Best-effort save
			m.store.SaveSkin(m.player, skin.ID)
		}
		m.notice = skin.Name + " equipado"

	case ScreenSettings:
		return m.activateSetting(cur, action)

	case ScreenLeaderboard:
		if action == MenuActionSelect {
			return m.enterBoard()
		}
	}
	return nil
}

func (m *App) activateExtra(row int) tea.Cmd {
	switch row {
	case extraMutant:
		m.modes.Mutant = !m.modes.Mutant
	case extraEndless:
		m.modes.Endless = !m.modes.Endless
	case extraFuegorin:
		if !m.modes.Fuegorin && !m.progress.FuegorinAvailable() {
			m.notice = "Bloqueado: encuentra toda la historia"
			return nil
		}
		m.modes.Fuegorin = !m.modes.Fuegorin
	case extraBanana:
		if !m.modes.Banana && !m.progress.BananaAvailable() {
			m.notice = "Bloqueado: canjea un código"
			return nil
		}
		m.modes.Banana = !m.modes.Banana
	case extraRedeem:
		m.editing = editCode
		m.codeInput.SetValue("")
		return m.codeInput.Focus()
	}
	return nil
}

func (m *App) activateSetting(row int, action MenuAction) tea.Cmd {
	switch row {
	case settingSound:
		m.settings.SoundEnabled = !m.settings.SoundEnabled
	case settingDifficulty:
		i := m.settings.Difficulty.Index()
		n := len(rules.Difficulties)
		if action == MenuActionLeft {
			i = (i - 1 + n) % n
		} else {
			i = (i + 1) % n
		}
		m.settings.Difficulty = rules.Difficulties[i]
	case settingName:
		if action != MenuActionSelect {
			return nil
		}
		m.editing = editName
		m.nameInput.SetValue(m.settings.PlayerName)
		return m.nameInput.Focus()
	case settingControls:
		if m.settings.Controls == progress.ControlsVim {
			m.settings.Controls = progress.ControlsKeys
		} else {
			m.settings.Controls = progress.ControlsVim
		}
	}
	m.saveSettings()
	return nil
}

// buy spends the active currency on a power-up for the next session.
func (m *App) buy(id rules.PowerUp) {
	if slices.Contains(m.pending, id) {
		m.notice = "Ya comprado para la próxima partida"
		return
	}
	next, err := progress.Buy(m.progress, id, m.modes)
	if err != nil {
		if errors.Is(err, progress.ErrInsufficientFunds) {
			m.notice = "No te alcanza"
		} else {
			m.notice = err.Error()
		}
		return
	}
	m.progress = next
	m.pending = append(m.pending, id)
	m.saveProgress()
	info, _ := rules.LookupPowerUp(id)
	m.notice = info.Name + " listo para la próxima partida"
}

// handleEditKey feeds a key to the focused text input.
func (m *App) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopEditing()
		return nil
	case tea.KeyEnter:
		m.commitEdit()
		return nil
	case tea.KeyCtrlC:
		m.quitting = true
		return tea.Quit
	}
	return m.updateInput(msg)
}

func (m *App) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.editing {
	case editName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case editCode:
		m.codeInput, cmd = m.codeInput.Update(msg)
	}
	return cmd
}

func (m *App) commitEdit() {
	switch m.editing {
	case editName:
		m.settings.PlayerName = progress.CleanName(m.nameInput.Value())
		m.saveSettings()
		m.notice = "Nombre: " + m.settings.PlayerName
	case editCode:
		next, ok := progress.Redeem(m.progress, m.codeInput.Value())
		if !ok {
			m.notice = "Código inválido"
		} else {
			m.progress = next
			m.saveProgress()
			m.notice = "¡Código canjeado!"
		}
	}
	m.stopEditing()
}

func (m *App) stopEditing() {
	m.nameInput.Blur()
	m.codeInput.Blur()
	m.editing = editNone
}

// frame lays a screen out: title, body, notice and help, centered.
func (m App) frame(title, body string) string {
	parts := []string{titleStyle.Render(title), "", body}
	if m.notice != "" {
		parts = append(parts, "", noticeStyle.Render(m.notice))
	}
	parts = append(parts, "", helpStyle.Render(m.help.View(m.keys)))
	return centerBlock(lipgloss.JoinVertical(lipgloss.Left, parts...), m.width)
}

// row renders one selectable line.
func (m App) row(i int, text string, locked bool) string {
	switch {
	case i == m.cursors[m.screen]:
		return cursorStyle.Render("> " + text)
	case locked:
		return lockedStyle.Render("  " + text)
	default:
		return "  " + text
	}
}

func (m App) viewMenu() string {
	var b strings.Builder
	for i, item := range menuItems {
		b.WriteString(m.row(i, item.label, false))
		b.WriteByte('\n')
	}
	c := m.modes.Currency()
	status := subtitleStyle.Render(fmt.Sprintf("%s · %s · %d %s",
		m.settings.Difficulty.Info().Label, m.modes, m.progress.Balance(c), c))
	return m.frame("ARBOLÍN", panelStyle.Render(strings.TrimRight(b.String(), "\n"))+"\n"+status)
}

func (m App) viewLevels() string {
	var b strings.Builder
	for i, d := range rules.Difficulties {
		info := d.Info()
		mark := " "
		if m.progress.Completed(d) {
			mark = "✓"
		}
		line := fmt.Sprintf("%s %-8s meta %3d", mark, info.Label, info.WinScore)
		b.WriteString(m.row(i, styleFor(info.Color).Render(line), false))
		b.WriteByte('\n')
	}
	return m.frame("Dificultad", panelStyle.Render(strings.TrimRight(b.String(), "\n")))
}

func onOff(v bool) string {
	if v {
		return "[x]"
	}
	return "[ ]"
}

func (m App) viewExtras() string {
	rows := []struct {
		text   string
		locked bool
	}{
		{onOff(m.modes.Mutant) + " Mutante", false},
		{onOff(m.modes.Endless) + " Infinito", false},
		{onOff(m.modes.Fuegorin) + " Fuegorín", !m.progress.FuegorinAvailable()},
		{onOff(m.modes.Banana) + " Banana", !m.progress.BananaAvailable()},
		{"Canjear código", false},
	}
	var b strings.Builder
	for i, r := range rows {
		b.WriteString(m.row(i, r.text, r.locked))
		b.WriteByte('\n')
	}
	body := panelStyle.Render(strings.TrimRight(b.String(), "\n"))
	if m.editing == editCode {
		body += "\n" + m.codeInput.View()
	}
	return m.frame("Extras", body)
}

func (m App) viewShop() string {
	c := m.modes.Currency()
	var b strings.Builder
	for i, p := range rules.PowerUps {
		mark := " "
		if slices.Contains(m.pending, p.ID) {
			mark = "✓"
		}
		line := fmt.Sprintf("%s %-9s %3d  %s", mark, p.Name, p.Cost, p.Description)
		b.WriteString(m.row(i, line, p.Cost > m.progress.Balance(c)))
		b.WriteByte('\n')
	}
	balance := subtitleStyle.Render(fmt.Sprintf("Saldo: %d %s", m.progress.Balance(c), c))
	return m.frame("Tienda", panelStyle.Render(strings.TrimRight(b.String(), "\n"))+"\n"+balance)
}

func (m App) viewSkins() string {
	var b strings.Builder
	for i, s := range rules.Skins {
		unlocked := m.progress.HasSkin(s.ID)
		swatch := styleFor(s.Color).Render("██") + styleFor(s.Secondary).Render("▓")
		text := s.Name
		switch {
		case !unlocked:
			text += " · " + s.Hint
		case s.ID == m.skin:
			text += " (equipado)"
		}
		b.WriteString(m.row(i, swatch+" "+text, !unlocked))
		b.WriteByte('\n')
	}
	return m.frame("Aspectos", panelStyle.Render(strings.TrimRight(b.String(), "\n")))
}

func (m App) viewSettings() string {
	sound := "No"
	if m.settings.SoundEnabled {
		sound = "Sí"
	}
	name := m.settings.PlayerName
	if m.editing == editName {
		name = m.nameInput.View()
	}
	lines := []string{
		"Sonido      " + sound,
		"Dificultad  < " + m.settings.Difficulty.Info().Label + " >",
		"Nombre      " + name,
		"Controles   " + m.settings.Controls,
	}
	for i, l := range lines {
		lines[i] = m.row(i, l, false)
	}
	return m.frame("Ajustes", panelStyle.Render(strings.Join(lines, "\n")))
}

// viewStory lists fragments. Locked ones show their hint only when they
// are the next one to find.
func (m App) viewStory() string {
	var b strings.Builder
	hinted := false
	for i, part := range rules.Story {
		unlocked := m.progress.HasStory(part.ID)
		text := fmt.Sprintf("%d. %s", part.ID, part.Title)
		if !unlocked {
			text = fmt.Sprintf("%d. ???", part.ID)
			if !hinted {
				text += " · " + part.Hint
				hinted = true
			}
		}
		b.WriteString(m.row(i, text, !unlocked))
		b.WriteByte('\n')
	}
	body := panelStyle.Render(strings.TrimRight(b.String(), "\n"))
	selected := rules.Story[m.cursors[ScreenStory]]
	if m.progress.HasStory(selected.ID) {
		body += "\n" + lipgloss.NewStyle().Width(min(60, max(m.width-4, 20))).Render(selected.Content)
	}
	if m.progress.FuegorinAvailable() {
		body += "\n" + noticeStyle.Render("Modo Fuegorín desbloqueado en Extras")
	}
	return m.frame("Historia", body)
}
