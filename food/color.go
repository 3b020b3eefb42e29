package food

// Color is the traffic-light classification of a food item.
type Color int

const (
	// Unknown means no classification could be made (invalid inputs).
	Unknown Color = iota
	Green
	Yellow
	Red
)

func (c Color) String() string {
	switch c {
	case Green:
		return "Green"
	case Yellow:
		return "Yellow"
	case Red:
		return "Red"
	default:
		return "Unknown"
	}
}
