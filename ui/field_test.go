package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/wolfadex/noom-colors/food"
)

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func typeText(f *Field, text string) {
	for _, r := range text {
		f.HandleKey(keyRune(r))
	}
}

func TestFieldStartsUntouchedAndInvalid(t *testing.T) {
	f := NewField("Calories per serving")

	if f.Touched() {
		t.Error("new field reports Touched")
	}
	if _, ok := f.Value(); ok {
		t.Error("empty field reports a valid value")
	}
	if len(f.Errors()) == 0 {
		t.Error("empty field has no validation errors")
	}
}

func TestFieldValidatesOnEveryKeystroke(t *testing.T) {
	f := NewField("Grams per serving")

	typeText(f, "1")
	if v, ok := f.Value(); !ok || v != 1 {
		t.Errorf("after \"1\": Value() = %d, %v; want 1, true", v, ok)
	}

	typeText(f, "x")
	if _, ok := f.Value(); ok {
		t.Error("\"1x\" still reports valid")
	}
	if errs := f.Errors(); len(errs) != 1 || errs[0] != food.MsgNotWholeNumber {
		t.Errorf("errors = %v, want [%q]", errs, food.MsgNotWholeNumber)
	}

	f.HandleKey(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	if v, ok := f.Value(); !ok || v != 1 {
		t.Errorf("after backspace: Value() = %d, %v; want 1, true", v, ok)
	}
}

func TestFieldCursorEditing(t *testing.T) {
	f := NewField("Calories per serving")
	typeText(f, "13")

	// Insert a 2 in the middle: 13 -> 123.
	f.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	typeText(f, "2")

	if got := f.Text(); got != "123" {
		t.Errorf("Text() = %q, want %q", got, "123")
	}
	if v, _ := f.Value(); v != 123 {
		t.Errorf("Value() = %d, want 123", v)
	}
}

func TestFieldRejectsInputAtCapacity(t *testing.T) {
	f := NewField("Calories per serving")
	typeText(f, "123456789")

	edited, rejected := f.HandleKey(keyRune('0'))
	if edited || !rejected {
		t.Errorf("overfull keystroke: edited=%v rejected=%v, want false/true", edited, rejected)
	}
	if got := f.Text(); got != "123456789" {
		t.Errorf("Text() = %q, capacity overflow leaked", got)
	}
}

func TestFieldNegativeNumberGetsRangeError(t *testing.T) {
	f := NewField("Grams per serving")
	typeText(f, "-20")

	if errs := f.Errors(); len(errs) != 1 || errs[0] != food.MsgNotPositive {
		t.Errorf("errors = %v, want [%q]", errs, food.MsgNotPositive)
	}
}
