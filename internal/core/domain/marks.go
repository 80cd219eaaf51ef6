package domain

import "fmt"

// Table sizes for the three mark classes.
const (
	AboveLen   = 50
	WithinLen  = 23
	BelowLen   = 40
	TotalMarks = AboveLen + WithinLen + BelowLen

	// MarkEncodedLen is the UTF-8 length of every mark.
	MarkEncodedLen = 2
)

// MarkClass names one of the three mark tables.
// The numeric order matches the concatenation order of the tables.
type MarkClass uint8

// Mark classes, in concatenation order.
const (
	ClassAbove MarkClass = iota
	ClassWithin
	ClassBelow
)

// Classes lists every mark class in concatenation order.
var Classes = [...]MarkClass{ClassAbove, ClassWithin, ClassBelow}

var aboveMarks = [AboveLen]rune{
	'\u030d', '\u030e', '\u0304', '\u0305', '\u033f', '\u0311', '\u0306', '\u0310',
	'\u0352', '\u0357', '\u0351', '\u0307', '\u0308', '\u030a', '\u0342', '\u0343',
	'\u0344', '\u034a', '\u034b', '\u034c', '\u0303', '\u0302', '\u030c', '\u0350',
	'\u0300', '\u0301', '\u030b', '\u030f', '\u0312', '\u0313', '\u0314', '\u033d',
	'\u0309', '\u0363', '\u0364', '\u0365', '\u0366', '\u0367', '\u0368', '\u0369',
	'\u036a', '\u036b', '\u036c', '\u036d', '\u036e', '\u036f', '\u033e', '\u035b',
	'\u0346', '\u031a',
}

var withinMarks = [WithinLen]rune{
	'\u0315', '\u031b', '\u0340', '\u0341', '\u0358', '\u0321', '\u0322', '\u0327',
	'\u0328', '\u0334', '\u0335', '\u0336', '\u034f', '\u035c', '\u035d', '\u035e',
	'\u035f', '\u0360', '\u0362', '\u0338', '\u0337', '\u0361', '\u0489',
}

var belowMarks = [BelowLen]rune{
	'\u0316', '\u0317', '\u0318', '\u0319', '\u031c', '\u031d', '\u031e', '\u031f',
	'\u0320', '\u0324', '\u0325', '\u0326', '\u0329', '\u032a', '\u032b', '\u032c',
	'\u032d', '\u032e', '\u032f', '\u0330', '\u0331', '\u0332', '\u0333', '\u0339',
	'\u033a', '\u033b', '\u033c', '\u0345', '\u0347', '\u0348', '\u0349', '\u034d',
	'\u034e', '\u0353', '\u0354', '\u0355', '\u0356', '\u0359', '\u035a', '\u0323',
}

// markIndex maps every mark to its class. Built once, never written afterwards.
var markIndex = func() map[rune]MarkClass {
	m := make(map[rune]MarkClass, TotalMarks)
	for _, c := range Classes {
		for _, r := range c.table() {
			m[r] = c
		}
	}
	return m
}()

// AboveMarks returns a copy of the marks drawn over a base rune.
func AboveMarks() [AboveLen]rune { return aboveMarks }

// WithinMarks returns a copy of the marks drawn through a base rune.
func WithinMarks() [WithinLen]rune { return withinMarks }

// BelowMarks returns a copy of the marks drawn under a base rune.
func BelowMarks() [BelowLen]rune { return belowMarks }

// IsMark reports whether r belongs to any of the three mark tables.
func IsMark(r rune) bool {
	_, ok := markIndex[r]
	return ok
}

// ClassOf returns the class a mark belongs to.
// The boolean is false when r is not a mark.
func ClassOf(r rune) (MarkClass, bool) {
	c, ok := markIndex[r]
	return c, ok
}

func (c MarkClass) table() []rune {
	switch c {
	case ClassAbove:
		return aboveMarks[:]
	case ClassWithin:
		return withinMarks[:]
	case ClassBelow:
		return belowMarks[:]
	default:
		return nil
	}
}

// Len returns the number of marks in the class table.
func (c MarkClass) Len() int {
	return len(c.table())
}

// At returns the i-th mark of the class table. It panics if i is out of range.
func (c MarkClass) At(i int) rune {
	return c.table()[i]
}

// Marks returns a copy of the class table.
func (c MarkClass) Marks() []rune {
	t := c.table()
	out := make([]rune, len(t))
	copy(out, t)
	return out
}

// Kind returns the single-class selector for c.
func (c MarkClass) Kind() Kind {
	return 1 << c
}

// IsValid returns true if the class is one of the three tables.
func (c MarkClass) IsValid() bool {
	return c <= ClassBelow
}

// String returns the lower-case class name.
func (c MarkClass) String() string {
	switch c {
	case ClassAbove:
		return "above"
	case ClassWithin:
		return "within"
	case ClassBelow:
		return "below"
	default:
		return fmt.Sprintf("MarkClass(%d)", uint8(c))
	}
}
