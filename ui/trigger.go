package ui

import "github.com/wolfadex/noom-colors/food"

// GreenTrigger fires the celebration exactly once per transition into
// Green. Staying Green, leaving Green, and staying not-Green are all
// no-ops. Zero value starts in the not-Green state.
type GreenTrigger struct {
	wasGreen bool
}

// Observe feeds the latest classification and reports whether the
// burst should fire.
func (t *GreenTrigger) Observe(c food.Color) bool {
	isGreen := c == food.Green
	fired := isGreen && !t.wasGreen
	t.wasGreen = isGreen
	return fired
}
