package particle

import (
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Glyphs by life phase: bright core, mid fleck, dying ember
const (
	glyphYoung = '●'
	glyphMid   = '•'
	glyphOld   = '·'
)

// Render draws every live particle as a single glyph whose color fades
// from the burst color toward the background over its lifetime.
// Off-screen particles are skipped, not culled; gravity can bring a
// particle back into view.
func (s *System) Render(screen tcell.Screen, width, height int, bg colorful.Color) {
	for _, p := range s.particles {
		x := int(math.Round(p.X))
		y := int(math.Round(p.Y))
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}

		t := p.Age / p.Lifetime
		faded := p.Color.BlendLuv(bg, t).Clamped()

		glyph := glyphYoung
		switch {
		case t > 0.66:
			glyph = glyphOld
		case t > 0.33:
			glyph = glyphMid
		}

		style := tcell.StyleDefault.
			Foreground(toTcell(faded)).
			Background(toTcell(bg))
		screen.SetContent(x, y, glyph, nil, style)
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
