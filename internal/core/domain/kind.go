package domain

import (
	"fmt"
	"strings"
)

// Kind selects which mark classes take part in decoration.
// Every subset of the three classes is valid, including the empty one.
type Kind uint8

// Class selector flags.
const (
	KindAbove Kind = 1 << iota
	KindWithin
	KindBelow

	KindNone Kind = 0
	KindAll       = KindAbove | KindWithin | KindBelow
)

// DefaultKind is used by the command line when no class is requested.
const DefaultKind = KindWithin | KindBelow

// KindFromBits returns the selector for raw flag bits.
// The boolean is false when bits outside the three classes are set.
func KindFromBits(bits uint8) (Kind, bool) {
	k := Kind(bits)
	if !k.IsValid() {
		return KindNone, false
	}
	return k, true
}

// Union returns the classes present in either selector.
func (k Kind) Union(other Kind) Kind {
	return k | other
}

// Intersect returns the classes present in both selectors.
func (k Kind) Intersect(other Kind) Kind {
	return k & other
}

// Complement returns the classes absent from k.
func (k Kind) Complement() Kind {
	return ^k & KindAll
}

// Contains reports whether every class in other is also in k.
func (k Kind) Contains(other Kind) bool {
	return k&other == other
}

// Has reports whether the class c is enabled.
func (k Kind) Has(c MarkClass) bool {
	return c.IsValid() && k.Contains(c.Kind())
}

// IsEmpty reports whether no class is enabled.
func (k Kind) IsEmpty() bool {
	return k&KindAll == 0
}

// IsValid reports whether k only uses the three class bits.
func (k Kind) IsValid() bool {
	return k&^KindAll == 0
}

// Classes returns the enabled classes in table order.
func (k Kind) Classes() []MarkClass {
	var out []MarkClass
	for _, c := range Classes {
		if k.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the enabled class names in table order.
func (k Kind) Names() []string {
	classes := k.Classes()
	names := make([]string, 0, len(classes))
	for _, c := range classes {
		names = append(names, c.String())
	}
	return names
}

// String returns the enabled classes joined by "|", or "none".
func (k Kind) String() string {
	if k.IsEmpty() {
		return "none"
	}
	return strings.Join(k.Names(), "|")
}

// ParseKind parses a comma or pipe separated list of class names.
// Accepted names are above/up/u, within/middle/m, below/down/d, all and none.
func ParseKind(s string) (Kind, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == ' '
	})
	return KindFromNames(fields)
}

// KindFromNames builds a selector from class names.
func KindFromNames(names []string) (Kind, error) {
	k := KindNone
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "above", "up", "u":
			k |= KindAbove
		case "within", "middle", "m":
			k |= KindWithin
		case "below", "down", "d":
			k |= KindBelow
		case "all":
			k |= KindAll
		case "none", "":
		default:
			return KindNone, fmt.Errorf("%w: %q", ErrUnknownKind, name)
		}
	}
	return k, nil
}
