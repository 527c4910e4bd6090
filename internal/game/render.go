package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/arbolin/internal/core"
	"github.com/vovakirdan/arbolin/internal/entity"
	"github.com/vovakirdan/arbolin/internal/rules"
)

// Visual characters for rendering
const (
	TreeChar        = '♣'
	FlameChar       = '♦'
	BananaChar      = ')'
	FireChar        = '^'
	DropChar        = 'o'
	SproutChar      = '•'
	MutantChar      = '✦'
	BasketChar      = 'U'
	SeedChar        = '·'
	GrassChar       = '"'
	CrackChar       = '~'
	AshChar         = '.'
	ShieldOpenChar  = '('
	ShieldCloseChar = ')'
)

// viewport maps arena units onto a block of screen cells.
type viewport struct {
	x0, y0     int
	cols, rows int
	sx, sy     float64
}

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

// newViewport fits the portrait arena into a w x h screen below a one-line
// HUD, keeping its aspect ratio and leaving room for a border.
func (g *Game) newViewport(w, h int) viewport {
	aw, ah := g.tuning.Arena.Width, g.tuning.Arena.Height
	rows := max(h-3, 1)
	cols := int(math.Round(float64(rows) * cellAspect * aw / ah))
	if cols > w-2 {
		cols = max(w-2, 1)
		rows = max(int(math.Round(float64(cols)*ah/(aw*cellAspect))), 1)
	}
	return viewport{
		x0:   (w - cols) / 2,
		y0:   2,
		cols: cols,
		rows: rows,
		sx:   float64(cols) / aw,
		sy:   float64(rows) / ah,
	}
}

func (v viewport) cell(p core.Vec) (int, int) {
	x := core.Clamp(int(p.X*v.sx), 0, v.cols-1)
	y := core.Clamp(int(p.Y*v.sy), 0, v.rows-1)
	return v.x0 + x, v.y0 + y
}

func (v viewport) put(dst *core.Screen, p core.Vec, r rune, c core.Color) {
	x, y := v.cell(p)
	dst.SetColored(x, y, r, c)
}

// Render draws the session. It never changes simulation state.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() < 12 || dst.Height() < 8 {
		dst.DrawText(0, 0, "too small")
		return
	}
	v := g.newViewport(dst.Width(), dst.Height())
	g.drawHUD(dst)
	g.drawBorder(dst, v)

	for _, d := range g.s.Decorations {
		v.put(dst, d.Pos, decorationChar(d.Variant), d.Color)
	}
	g.drawGroundCode(dst, v)
	for _, s := range g.s.Sprouts {
		v.put(dst, s.Center(), g.sproutChar(s.Kind), s.Color)
	}
	for _, p := range g.s.Projectiles {
		v.put(dst, p.Center(), SeedChar, p.Color)
	}
	for _, e := range g.s.Enemies {
		v.put(dst, e.Center(), g.enemyChar(), e.Color)
	}
	g.drawPlayer(dst, v)
	g.drawOverlay(dst)
}

func (g *Game) drawHUD(dst *core.Screen) {
	target := "∞"
	if ws := g.WinScore(); ws > 0 {
		target = fmt.Sprint(ws)
	}
	info := g.setup.Difficulty.Info()
	dst.DrawTextColored(0, 0, fmt.Sprintf(" %d/%s", g.s.Score, target), core.ColorBrightWhite)
	dst.DrawTextColored(10, 0, info.Label, info.Color)
	dst.DrawTextColored(20, 0, fmt.Sprintf("%5.1fs", g.s.Elapsed), core.ColorGray)

	x := 28
	if g.s.AbilityReady {
		dst.DrawTextColored(x, 0, "[SPACE] BOOM", core.ColorBrightYellow)
		x += 13
	}
	if g.s.Shield {
		dst.DrawTextColored(x, 0, "[ESCUDO]", core.ColorBrightBlue)
	}
	if g.setup.Difficulty == rules.Hacker {
		dst.DrawTextColored(0, 1, fmt.Sprintf(" sin brotes %4.1fs", g.s.NoSproutStreak), core.ColorPurple)
	}
}

func (g *Game) drawBorder(dst *core.Screen, v viewport) {
	c := core.ColorDefault
	// pulse the frame while a secret is being uncovered
	if g.s.InSecretZone() {
		c = core.ColorWhite
		if g.s.Frame%30 < 15 {
			c = core.ColorBrightWhite
		}
	}
	dst.DrawBox(v.x0-1, v.y0-1, v.cols+2, v.rows+2, c)
}

func (g *Game) drawGroundCode(dst *core.Screen, v viewport) {
	code, ok := rules.GroundCodeFor(g.setup.Difficulty)
	if !ok || g.s.Frame%200 <= 100 {
		return
	}
	x, y := v.cell(code.Pos)
	dst.DrawTextColored(x, y, code.Code, core.ColorGray)
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	skin := rules.SkinByID(g.setup.Skin)
	glyph, color := TreeChar, skin.Color
	switch {
	case g.setup.Modes.Banana:
		glyph = BananaChar
	case g.setup.Modes.Fuegorin:
		glyph, color = FlameChar, core.ColorOrange
	}
	if color == core.ColorBlack {
		color = skin.Secondary
	}

	x, y := v.cell(g.s.Player.Center())
	dst.SetColored(x, y, glyph, color)
	if g.s.Shield {
		dst.SetColored(x-1, y, ShieldOpenChar, core.ColorBlue)
		dst.SetColored(x+1, y, ShieldCloseChar, core.ColorBlue)
	}
	if g.s.InSecretZone() && g.s.Frame%30 < 15 {
		dst.DrawTextColored(x+1, y-1, "???", core.ColorBrightWhite)
	}
}

func (g *Game) drawOverlay(dst *core.Screen) {
	mid := dst.Height() / 2
	switch g.s.Phase {
	case PhasePaused:
		dst.DrawTextCentered(mid, " PAUSA ", core.ColorBrightWhite)
	case PhaseWon:
		dst.DrawTextCentered(mid, " VICTORIA ", core.ColorBrightGreen)
	case PhaseLost:
		dst.DrawTextCentered(mid, " DERROTA ", core.ColorRed)
	case PhaseSecretFound:
		dst.DrawTextCentered(mid, " ¡SECRETO DESCUBIERTO! ", core.ColorBrightYellow)
		if r, ok := g.Result(); ok {
			dst.DrawTextCentered(mid+1, secretTitle(r), core.ColorBrightWhite)
		}
	}
}

func secretTitle(r rules.GameResult) string {
	switch {
	case r.FoundPeel:
		return "Cáscara Sagrada"
	case r.FoundCaramel:
		return "Banana Caramelizada"
	}
	if p, ok := rules.StoryByID(r.UnlockedSecret); ok {
		return p.Title
	}
	return "Historia Desconocida"
}

func (g *Game) sproutChar(k entity.Kind) rune {
	switch {
	case g.setup.Modes.Banana:
		return BasketChar
	case k == entity.KindMutant:
		return MutantChar
	default:
		return SproutChar
	}
}

func (g *Game) enemyChar() rune {
	if g.setup.Modes.Fuegorin && !g.setup.Modes.Banana {
		return DropChar
	}
	return FireChar
}

func decorationChar(v entity.Variant) rune {
	switch v {
	case entity.VariantCrack:
		return CrackChar
	case entity.VariantAsh:
		return AshChar
	default:
		return GrassChar
	}
}
