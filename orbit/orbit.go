// Orbits of outer and inner billiard maps.
//
// Geometric failures never escape this package: an orbit that cannot be
// continued is truncated, and the prefix computed so far is returned.
package orbit

import (
	"strings"

	"github.com/pkg/errors"
)

// The quantity the billiard map preserves.
type Generator int

const (
	// The classical outer billiard (reflection through a tangent point) and the
	// symplectic inner billiard.
	Area Generator = iota
	// The outer length billiard and the classical inner billiard.
	Length
)

func (g Generator) String() string {
	switch g {
	case Area:
		return "area"
	case Length:
		return "length"
	}
	return "unknown"
}

func ParseGenerator(s string) (Generator, error) {
	switch strings.ToLower(s) {
	case "area", "symplectic":
		return Area, nil
	case "length":
		return Length, nil
	}
	return 0, errors.Errorf("unknown generator %q", s)
}

type Duality int

const (
	OuterDuality Duality = iota
	InnerDuality
)

func (d Duality) String() string {
	switch d {
	case OuterDuality:
		return "outer"
	case InnerDuality:
		return "inner"
	}
	return "unknown"
}

func ParseDuality(s string) (Duality, error) {
	switch strings.ToLower(s) {
	case "outer":
		return OuterDuality, nil
	case "inner":
		return InnerDuality, nil
	}
	return 0, errors.Errorf("unknown duality %q", s)
}
