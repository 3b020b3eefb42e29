package food

// Style is the closed set of food-style categories a user can pick.
// Solids carry a whole-grain variant; liquids split into sub-kinds
// that share thresholds except for regular liquids.
type Style int

const (
	Solid Style = iota
	SolidWholeGrain
	LiquidRegular
	LiquidSoda
	LiquidAlcohol
	LiquidSweetener
	Soup
	StyleCount // Sentinel for iteration
)

func (s Style) String() string {
	switch s {
	case Solid:
		return "Solid"
	case SolidWholeGrain:
		return "Solid (whole grain)"
	case LiquidRegular:
		return "Liquid"
	case LiquidSoda:
		return "Soda"
	case LiquidAlcohol:
		return "Alcohol"
	case LiquidSweetener:
		return "Artificial sweetener"
	case Soup:
		return "Soup"
	default:
		return "unknown"
	}
}

// Dairy is the dairy-fat category. Anything other than NotDairy
// overrides the calorie-density calculation entirely.
type Dairy int

const (
	NotDairy Dairy = iota
	NonFatDairy
	LowFatDairy
	WholeFatDairy
	DairyCount // Sentinel for iteration
)

func (d Dairy) String() string {
	switch d {
	case NotDairy:
		return "Not dairy"
	case NonFatDairy:
		return "Non-fat"
	case LowFatDairy:
		return "Low-fat"
	case WholeFatDairy:
		return "Whole-fat"
	default:
		return "unknown"
	}
}

// Override returns the fixed color for fat-level dairy categories.
// NotDairy reports false: classification falls through to density.
func (d Dairy) Override() (Color, bool) {
	switch d {
	case NonFatDairy:
		return Green, true
	case LowFatDairy:
		return Yellow, true
	case WholeFatDairy:
		return Red, true
	default:
		return Unknown, false
	}
}
