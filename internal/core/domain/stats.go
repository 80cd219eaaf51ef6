package domain

// TextStats summarises how much of a text is decoration.
type TextStats struct {
	// Runes is the total number of scalar values.
	Runes int `json:"runes"`
	// Base is the number of runes that are not marks.
	Base int `json:"base"`
	// Marks counts marks per class, indexed by MarkClass.
	Marks [3]int `json:"marks"`
	// Graphemes is the number of user-perceived characters.
	Graphemes int `json:"graphemes"`
	// Width is the monospace display width.
	Width int `json:"width"`
}

// TotalMarks returns the number of marks across all classes.
func (s TextStats) TotalMarks() int {
	return s.Marks[ClassAbove] + s.Marks[ClassWithin] + s.Marks[ClassBelow]
}

// Density returns the average number of marks per base rune.
func (s TextStats) Density() float64 {
	if s.Base == 0 {
		return 0
	}
	return float64(s.TotalMarks()) / float64(s.Base)
}
