package ui

// Selector cycles through a closed option list. Index 0 is the
// neutral/default option, which Clear restores.
type Selector struct {
	Label   string
	Options []string
	Index   int
}

func NewSelector(label string, options []string) *Selector {
	return &Selector{Label: label, Options: options}
}

func (s *Selector) Next() {
	s.Index = (s.Index + 1) % len(s.Options)
}

func (s *Selector) Prev() {
	s.Index = (s.Index - 1 + len(s.Options)) % len(s.Options)
}

func (s *Selector) Clear() {
	s.Index = 0
}

func (s *Selector) Value() string {
	return s.Options[s.Index]
}
