package treasure

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/treasure-dash/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar       = '█'
	TreasureChar     = '$'
	ObstacleChar     = '▓'
	MovingCoreChar   = '◆'
	PlatformChar     = '▀'
	DeathZoneChar    = '▒'
	ParticleChar     = '*'
	ParticleFadeChar = '·'
	LifeChar         = '♥'
)

// Minimum terminal size for a readable playfield.
const (
	minScreenW = 40
	minScreenH = 15
	hudRows    = 1
)

// viewport maps world units onto screen cells below the HUD.
type viewport struct {
	sx, sy float64
}

func newViewport(w *World, dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / w.Width,
		sy: float64(dst.Height()-hudRows) / w.Height,
	}
}

// rect converts a world rectangle to the cells it covers, at least one cell.
func (v viewport) rect(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	return core.NewRect(x0, y0+hudRows, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

func (v viewport) point(x, y float64) (int, int) {
	return int(x * v.sx), int(y*v.sy) + hudRows
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	w := g.world
	vp := newViewport(w, dst)

	g.renderDeathZone(dst, vp)
	for _, p := range w.Platforms {
		dst.DrawRectColor(vp.rect(p.Rect()), PlatformChar, core.ColorGray)
	}
	for _, t := range w.Treasures {
		if !t.Collected {
			dst.DrawRectColor(vp.rect(t.Rect()), TreasureChar, core.ColorBrightYellow)
		}
	}
	for _, o := range w.Obstacles {
		g.renderObstacle(dst, vp, o)
	}
	for _, p := range w.Particles {
		x, y := vp.point(p.X, p.Y)
		ch := ParticleChar
		if p.Life*2 < p.MaxLife {
			ch = ParticleFadeChar
		}
		dst.SetColor(x, y, ch, core.ColorYellow)
	}
	dst.DrawRectColor(vp.rect(w.Player.Rect()), PlayerChar, core.ColorBrightRed)

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderDeathZone draws the lethal band with a hazard stripe.
func (g *Game) renderDeathZone(dst *core.Screen, vp viewport) {
	w := g.world
	zone := vp.rect(core.NewRectF(0, w.Floor(), w.Width, w.DeathZone()))
	for y := zone.Y; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			c := core.ColorRed
			if (x/2)%2 == 0 {
				c = core.ColorYellow
			}
			dst.SetColor(x, y, DeathZoneChar, c)
		}
	}
}

func (g *Game) renderObstacle(dst *core.Screen, vp viewport, o Obstacle) {
	r := vp.rect(o.Rect())
	if !o.Moving {
		dst.DrawRectColor(r, ObstacleChar, core.ColorOrange)
		return
	}
	dst.DrawRectColor(r, ObstacleChar, core.ColorRed)
	dst.SetColor(r.X+r.W/2, r.Y+r.H/2, MovingCoreChar, core.ColorBrightRed)
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", w.Score), core.ColorBrightWhite)

	lives := "Lives: " + strings.Repeat(string(LifeChar), w.Lives)
	dst.DrawTextColor((dst.Width()-len([]rune(lives)))/2, 0, lives, core.ColorBrightRed)

	levelText := fmt.Sprintf("Level: %d  $%d", w.Level, w.Remaining())
	dst.DrawTextColor(dst.Width()-len(levelText)-1, 0, levelText, core.ColorBrightCyan)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.world.Phase {
	case PhaseIdle:
		hint := "Arrows/WASD move | ENTER to start"
		if g.variant == VariantPlatformer {
			hint = "Arrows/WASD move, UP/SPACE jump | ENTER to start"
		}
		drawCenteredBox(dst, g.Title(), hint)
	case PhasePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.world.Score)
		drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))
	boxW := core.Min(core.Max(titleLen, subtitleLen)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
