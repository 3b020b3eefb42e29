package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/wolfadex/noom-colors/food"
	"github.com/wolfadex/noom-colors/parameter"
	"github.com/wolfadex/noom-colors/parameter/visual"
)

const labelColWidth = 22

var (
	styleBase   = tcell.StyleDefault.Foreground(visual.RgbText.Tcell()).Background(visual.RgbBackground.Tcell())
	styleDim    = tcell.StyleDefault.Foreground(visual.RgbDim.Tcell()).Background(visual.RgbBackground.Tcell())
	styleFocus  = tcell.StyleDefault.Foreground(visual.RgbFocus.Tcell()).Background(visual.RgbBackground.Tcell())
	styleError  = tcell.StyleDefault.Foreground(visual.RgbError.Tcell()).Background(visual.RgbBackground.Tcell())
	styleField  = tcell.StyleDefault.Foreground(visual.RgbText.Tcell()).Background(visual.RgbBorder.Tcell())
	styleStatus = tcell.StyleDefault.Foreground(visual.RgbStatusBar.Tcell()).Background(visual.RgbBorder.Tcell())
)

func resultStyle(c food.Color) tcell.Style {
	rgb := visual.RgbUnknown
	switch c {
	case food.Green:
		rgb = visual.RgbGreen
	case food.Yellow:
		rgb = visual.RgbYellow
	case food.Red:
		rgb = visual.RgbRed
	}
	return tcell.StyleDefault.Foreground(rgb.Tcell()).Background(visual.RgbBackground.Tcell()).Bold(true)
}

// Draw renders the full frame: background, form, result, status bar,
// then particles on top.
func (a *App) Draw() {
	a.screen.Fill(' ', styleBase)

	a.drawText(parameter.FormLeft, 1, styleFocus.Bold(true), "Food Colors")

	a.drawField(a.calories, focusCalories)
	a.drawField(a.grams, focusGrams)
	a.drawSelector(a.style, focusStyle)
	a.drawSelector(a.dairy, focusDairy)

	a.drawResult()
	a.drawStatusBar()

	a.particles.Render(a.screen, a.width, a.height, visual.RgbBackground.Colorful())

	a.screen.Show()
}

func (a *App) widgetY(slot int) int {
	return parameter.FormTop + slot*parameter.WidgetGap
}

func (a *App) drawField(f *Field, slot int) {
	y := a.widgetY(slot)
	focused := a.focus == slot

	labelStyle := styleDim
	if focused {
		labelStyle = styleFocus
	}
	a.drawText(parameter.FormLeft, y, labelStyle, f.Label)

	boxX := parameter.FormLeft + labelColWidth
	for i := 0; i < parameter.FieldWidth; i++ {
		a.screen.SetContent(boxX+i, y, ' ', nil, styleField)
	}
	a.drawText(boxX, y, styleField, f.Text())

	if focused && a.cursorVisible {
		cx := boxX + f.Cursor()
		r := ' '
		if f.Cursor() < len(f.Text()) {
			r = []rune(f.Text())[f.Cursor()]
		}
		a.screen.SetContent(cx, y, r, nil, styleField.Reverse(true))
	}

	if f.Touched() {
		for i, msg := range f.Errors() {
			a.drawText(boxX, y+1+i, styleError, msg)
		}
	}
}

func (a *App) drawSelector(s *Selector, slot int) {
	y := a.widgetY(slot)
	focused := a.focus == slot

	labelStyle := styleDim
	valueStyle := styleBase
	if focused {
		labelStyle = styleFocus
		valueStyle = styleFocus
	}
	a.drawText(parameter.FormLeft, y, labelStyle, s.Label)
	a.drawText(parameter.FormLeft+labelColWidth, y, valueStyle, fmt.Sprintf("◀ %s ▶", s.Value()))
}

func (a *App) resultPos() (int, int) {
	y := a.widgetY(focusCount) + 1
	return parameter.FormLeft + labelColWidth + 3, y
}

func (a *App) drawResult() {
	x, y := a.resultPos()
	a.drawText(parameter.FormLeft, y, styleBase, "Result")
	a.drawText(x-3, y, resultStyle(a.result), a.result.String())
}

func (a *App) drawStatusBar() {
	if a.height < 1 {
		return
	}
	y := a.height - 1
	for x := 0; x < a.width; x++ {
		a.screen.SetContent(x, y, ' ', nil, styleStatus)
	}

	sound := "off"
	if a.sound.Enabled() {
		sound = "on"
	}
	a.drawText(1, y, styleStatus,
		fmt.Sprintf("Tab: next field  ◀/▶: change  Del: clear dairy  Ctrl+S: sound %s  Esc: quit", sound))
}

// drawText writes a string with the background kept from the style,
// advancing by display width per rune.
func (a *App) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		if x >= a.width {
			return
		}
		a.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
