package visual

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a plain 8-bit color triple used for all palette definitions
type RGB struct {
	R, G, B uint8
}

// Tcell converts to a tcell color for cell styling
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Colorful converts to a go-colorful color for blending
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// RGB color definitions for the calculator UI
var (
	RgbBackground = RGB{26, 27, 38} // Tokyo Night background
	RgbText       = RGB{200, 200, 200}
	RgbDim        = RGB{100, 100, 100}
	RgbBorder     = RGB{80, 100, 140}
	RgbFocus      = RGB{100, 200, 220}
	RgbError      = RGB{255, 60, 60}
	RgbStatusBar  = RGB{255, 255, 255}

	// Result label and particle burst colors per classification
	RgbGreen   = RGB{50, 255, 50}
	RgbYellow  = RGB{255, 255, 0}
	RgbRed     = RGB{255, 100, 100}
	RgbUnknown = RGB{128, 128, 128}

	// Secondary burst tints mixed into green fireworks
	RgbBurstWhite = RGB{255, 255, 255}
	RgbBurstMint  = RGB{120, 255, 180}
)
