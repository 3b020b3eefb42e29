package parameter

import "time"

// Frame loop
const (
	// FrameInterval is the render tick period (~30 FPS)
	FrameInterval = 33 * time.Millisecond

	// CursorBlinkInterval toggles the text-field cursor
	CursorBlinkInterval = 500 * time.Millisecond
)

// Form layout (cells)
const (
	// FormLeft is the left margin of the form column
	FormLeft = 4
	// FormTop is the top margin of the first widget
	FormTop = 3
	// FieldWidth is the rendered width of a text-input box
	FieldWidth = 16
	// WidgetGap is the vertical spacing between widgets, leaving a
	// line for inline validation errors under each field
	WidgetGap = 3
	// FieldMaxRunes caps typed input per numeric field
	FieldMaxRunes = 9
)
