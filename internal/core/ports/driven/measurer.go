package driven

// TextMeasurer measures text the way a terminal renders it.
type TextMeasurer interface {
	// Graphemes returns the number of user-perceived characters in s.
	Graphemes(s string) int

	// Width returns the monospace display width of s.
	Width(s string) int
}
