package food

import (
	"strconv"
	"strings"
)

// Validation messages shown inline under a numeric field.
const (
	MsgNotWholeNumber = "Must be a positive, whole number"
	MsgNotPositive    = "Must be greater than 0"
)

// ParseAmount validates one raw text field (calories or grams per
// serving). It trims surrounding whitespace and returns the positive
// integer, or an ordered list of user-visible error messages. The two
// failure modes are disjoint: text that is not a whole number reports
// MsgNotWholeNumber, a whole number at or below zero reports
// MsgNotPositive.
func ParseAmount(raw string) (int, []string) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, []string{MsgNotWholeNumber}
	}
	if n <= 0 {
		return 0, []string{MsgNotPositive}
	}
	return n, nil
}
