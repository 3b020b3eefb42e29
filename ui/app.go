package ui

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/wolfadex/noom-colors/config"
	"github.com/wolfadex/noom-colors/food"
	"github.com/wolfadex/noom-colors/parameter"
	"github.com/wolfadex/noom-colors/parameter/visual"
	"github.com/wolfadex/noom-colors/particle"
)

// Widget focus order, top to bottom.
const (
	focusCalories = iota
	focusGrams
	focusStyle
	focusDairy
	focusCount
)

// styleOrder and dairyOrder map selector indices to the food enums.
var styleOrder = []food.Style{
	food.Solid,
	food.SolidWholeGrain,
	food.LiquidRegular,
	food.LiquidSoda,
	food.LiquidAlcohol,
	food.LiquidSweetener,
	food.Soup,
}

var dairyOrder = []food.Dairy{
	food.NotDairy,
	food.NonFatDairy,
	food.LowFatDairy,
	food.WholeFatDairy,
}

// App is the whole calculator: form state, classification result,
// firework particles and sound. Everything runs on one goroutine;
// only the tcell poll feeding Run's event channel lives elsewhere.
type App struct {
	screen        tcell.Screen
	width, height int

	calories *Field
	grams    *Field
	style    *Selector
	dairy    *Selector
	focus    int

	result  food.Color
	trigger GreenTrigger

	particles *particle.System
	sound     Sounder
	cfg       config.Config

	cursorVisible bool
	cursorBlink   time.Time
}

// Sounder is the audio surface the app needs. *audio.Player
// implements it; tests substitute a silent one.
type Sounder interface {
	Enabled() bool
	Toggle() bool
	Chime()
	Blip()
}

func New(screen tcell.Screen, cfg config.Config, snd Sounder) *App {
	emission := particle.DefaultEmission()
	emission.Count = cfg.ParticlesPerBurst

	a := &App{
		screen:        screen,
		calories:      NewField("Calories per serving"),
		grams:         NewField("Grams per serving"),
		style:         NewSelector("Food style", optionLabels(styleOrder)),
		dairy:         NewSelector("Dairy fat", optionLabels(dairyOrder)),
		particles:     particle.NewSystem(emission),
		sound:         snd,
		cfg:           cfg,
		cursorVisible: true,
		cursorBlink:   time.Now(),
	}
	a.width, a.height = screen.Size()
	a.reclassify()
	return a
}

func optionLabels[T interface{ String() string }](order []T) []string {
	labels := make([]string, len(order))
	for i, v := range order {
		labels[i] = v.String()
	}
	return labels
}

// Result returns the current classification.
func (a *App) Result() food.Color {
	return a.result
}

// Particles exposes the firework system, mainly for rendering order
// control and tests.
func (a *App) Particles() *particle.System {
	return a.particles
}

// reclassify recomputes the color from the current widget state and
// feeds the edge trigger.
func (a *App) reclassify() {
	cal, _ := a.calories.Value()
	grams, _ := a.grams.Value()
	dairy := dairyOrder[a.dairy.Index]
	style := styleOrder[a.style.Index]

	a.result = food.Classify(dairy, style, cal, grams)

	if a.trigger.Observe(a.result) {
		a.celebrate()
	}
}

// celebrate fires the configured number of bursts around the result
// label and plays the chime.
func (a *App) celebrate() {
	colors := []colorful.Color{
		visual.RgbGreen.Colorful(),
		visual.RgbBurstWhite.Colorful(),
		visual.RgbBurstMint.Colorful(),
	}

	x, y := a.resultPos()
	for i := 0; i < a.cfg.BurstsPerGreen; i++ {
		bx, by := x, y
		if i > 0 {
			bx += rand.Intn(21) - 10
			by += rand.Intn(7) - 3
		}
		a.particles.Burst(bx, by, colors)
	}

	a.sound.Chime()
}

// HandleEvent processes one input event to completion. Returns false
// when the app should quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false

	case tcell.KeyCtrlS:
		a.sound.Toggle()
		return true

	case tcell.KeyTab, tcell.KeyDown:
		a.focus = (a.focus + 1) % focusCount
		a.resetCursorBlink()
		return true

	case tcell.KeyBacktab, tcell.KeyUp:
		a.focus = (a.focus - 1 + focusCount) % focusCount
		a.resetCursorBlink()
		return true
	}

	switch a.focus {
	case focusCalories:
		a.fieldKey(a.calories, ev)
	case focusGrams:
		a.fieldKey(a.grams, ev)
	case focusStyle:
		if a.selectorKey(a.style, ev, false) {
			a.reclassify()
		}
	case focusDairy:
		if a.selectorKey(a.dairy, ev, true) {
			a.reclassify()
		}
	}
	return true
}

func (a *App) fieldKey(f *Field, ev *tcell.EventKey) {
	edited, rejected := f.HandleKey(ev)
	if rejected {
		a.sound.Blip()
	}
	if edited {
		a.resetCursorBlink()
		a.reclassify()
	}
}

// selectorKey returns true when the selection changed. clearable
// selectors (dairy) reset to their neutral option on Delete or
// Backspace.
func (a *App) selectorKey(s *Selector, ev *tcell.EventKey, clearable bool) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		s.Prev()
		return true
	case tcell.KeyRight:
		s.Next()
		return true
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		if clearable && s.Index != 0 {
			s.Clear()
			return true
		}
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			s.Prev()
			return true
		case 'l', ' ':
			s.Next()
			return true
		}
	}
	return false
}

func (a *App) resetCursorBlink() {
	a.cursorVisible = true
	a.cursorBlink = time.Now()
}

// Tick advances the animation by dt seconds.
func (a *App) Tick(dt float64) {
	a.particles.Update(dt)

	if time.Since(a.cursorBlink) > parameter.CursorBlinkInterval {
		a.cursorVisible = !a.cursorVisible
		a.cursorBlink = time.Now()
	}
}

// Run drives the frame loop: a dedicated goroutine feeds tcell events
// into a channel, and the select below processes each event or frame
// tick to completion before the next.
func (a *App) Run() error {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	a.Draw()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}
			a.Draw()

		case <-ticker.C:
			now := time.Now()
			a.Tick(now.Sub(last).Seconds())
			last = now
			a.Draw()
		}
	}
}
