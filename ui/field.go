package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/wolfadex/noom-colors/food"
	"github.com/wolfadex/noom-colors/parameter"
)

// Field is a single-line free-text input for a serving amount. It
// revalidates on every edit and keeps the resulting value or error
// messages alongside the raw text.
type Field struct {
	Label string

	text    []rune
	cursor  int
	touched bool

	value  int
	valid  bool
	errors []string
}

func NewField(label string) *Field {
	f := &Field{Label: label}
	f.revalidate()
	return f
}

// HandleKey processes one keystroke while the field has focus.
// edited reports a text change, rejected a printable rune the field
// refused (input at capacity).
func (f *Field) HandleKey(ev *tcell.EventKey) (edited, rejected bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		if len(f.text) >= parameter.FieldMaxRunes {
			return false, true
		}
		f.text = append(f.text[:f.cursor], append([]rune{ev.Rune()}, f.text[f.cursor:]...)...)
		f.cursor++
		f.markEdited()
		return true, false

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if f.cursor == 0 {
			return false, false
		}
		f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
		f.cursor--
		f.markEdited()
		return true, false

	case tcell.KeyDelete:
		if f.cursor >= len(f.text) {
			return false, false
		}
		f.text = append(f.text[:f.cursor], f.text[f.cursor+1:]...)
		f.markEdited()
		return true, false

	case tcell.KeyLeft:
		if f.cursor > 0 {
			f.cursor--
		}
		return false, false

	case tcell.KeyRight:
		if f.cursor < len(f.text) {
			f.cursor++
		}
		return false, false

	case tcell.KeyHome:
		f.cursor = 0
		return false, false

	case tcell.KeyEnd:
		f.cursor = len(f.text)
		return false, false
	}

	return false, false
}

func (f *Field) markEdited() {
	f.touched = true
	f.revalidate()
}

func (f *Field) revalidate() {
	f.value, f.errors = food.ParseAmount(string(f.text))
	f.valid = len(f.errors) == 0
}

// Text returns the raw typed text.
func (f *Field) Text() string {
	return string(f.text)
}

// Cursor returns the rune index of the edit cursor.
func (f *Field) Cursor() int {
	return f.cursor
}

// Value returns the validated amount. ok is false while the text does
// not parse to a positive integer, in which case the value is 0.
func (f *Field) Value() (int, bool) {
	if !f.valid {
		return 0, false
	}
	return f.value, true
}

// Errors returns the current validation messages, in display order.
func (f *Field) Errors() []string {
	return f.errors
}

// Touched reports whether the user has edited the field yet. An
// untouched empty field is invalid but shows no error lines.
func (f *Field) Touched() bool {
	return f.touched
}
