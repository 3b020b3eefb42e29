package food

// Calorie-density cutoffs (calories per gram). Boundaries are strict:
// a density exactly at a cutoff falls in the higher bucket.
const (
	solidGreenMax      = 1.0
	solidYellowMax     = 2.4
	wholeGrainGreenMax = 2.4
	liquidGreenMax     = 0.4
	liquidYellowMax    = 0.5
	soupGreenMax       = 0.5
	soupYellowMax      = 1.0
)

// Classify maps a dairy category, food style, and validated serving
// amounts to a traffic-light color. It is a pure function: a fat-level
// dairy pick wins outright, otherwise the color is bucketed by calorie
// density. Non-positive amounts (unvalidated input) yield Unknown.
func Classify(d Dairy, s Style, calories, grams int) Color {
	if c, ok := d.Override(); ok {
		return c
	}
	if calories <= 0 || grams <= 0 {
		return Unknown
	}

	density := float64(calories) / float64(grams)

	switch s {
	case SolidWholeGrain:
		if density < wholeGrainGreenMax {
			return Green
		}
		return Yellow
	case Solid:
		switch {
		case density < solidGreenMax:
			return Green
		case density < solidYellowMax:
			return Yellow
		default:
			return Red
		}
	case LiquidRegular:
		switch {
		case density < liquidGreenMax:
			return Green
		case density < liquidYellowMax:
			return Yellow
		default:
			return Red
		}
	case LiquidSoda, LiquidAlcohol, LiquidSweetener:
		// Non-regular liquids never reach Green.
		if density < liquidGreenMax {
			return Yellow
		}
		return Red
	case Soup:
		switch {
		case density < soupGreenMax:
			return Green
		case density < soupYellowMax:
			return Yellow
		default:
			return Red
		}
	default:
		return Unknown
	}
}
