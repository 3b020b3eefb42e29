package ui

import (
	"testing"

	"github.com/wolfadex/noom-colors/food"
)

func TestTriggerFiresOnceOnGreenEdge(t *testing.T) {
	var tr GreenTrigger

	if !tr.Observe(food.Green) {
		t.Error("first transition to Green did not fire")
	}
	if tr.Observe(food.Green) {
		t.Error("staying Green fired again")
	}
	if tr.Observe(food.Green) {
		t.Error("staying Green fired again")
	}
}

func TestTriggerRefiresAfterLeavingGreen(t *testing.T) {
	var tr GreenTrigger

	tr.Observe(food.Green)
	if tr.Observe(food.Yellow) {
		t.Error("leaving Green fired")
	}
	if !tr.Observe(food.Green) {
		t.Error("re-entering Green did not fire")
	}
}

func TestTriggerIgnoresNonGreenChurn(t *testing.T) {
	var tr GreenTrigger

	for _, c := range []food.Color{food.Unknown, food.Yellow, food.Red, food.Yellow, food.Unknown} {
		if tr.Observe(c) {
			t.Errorf("Observe(%v) fired without a Green edge", c)
		}
	}
}
