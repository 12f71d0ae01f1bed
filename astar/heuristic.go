package astar

import (
	"fmt"
	"math"

	"github.com/rogpeppe/gridpath/grid"
)

// Heuristic selects the function used to estimate the remaining cost
// from a cell to the goal.
type Heuristic int

const (
	// Manhattan is |dx| + |dy|. It is admissible for cardinal moves only.
	Manhattan Heuristic = iota
	// Euclidean is the straight-line distance, admissible for any moves.
	Euclidean
	// Octile is the exact cost on an open grid with diagonal moves.
	Octile
	// Chebyshev is max(|dx|, |dy|).
	Chebyshev
)

var heuristicNames = [...]string{
	Manhattan: "manhattan",
	Euclidean: "euclidean",
	Octile:    "octile",
	Chebyshev: "chebyshev",
}

// Estimate returns the estimated cost of travelling between from and to.
// The result is never negative and does not depend on argument order.
func (h Heuristic) Estimate(from, to grid.Point) float64 {
	dx := math.Abs(float64(from.X - to.X))
	dy := math.Abs(float64(from.Y - to.Y))
	switch h {
	case Manhattan:
		return dx + dy
	case Euclidean:
		return math.Sqrt(dx*dx + dy*dy)
	case Octile:
		return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
	case Chebyshev:
		return math.Max(dx, dy)
	}
	panic(fmt.Sprintf("astar: unknown heuristic %d", int(h)))
}

func (h Heuristic) String() string {
	if h >= 0 && int(h) < len(heuristicNames) {
		return heuristicNames[h]
	}
	return fmt.Sprintf("Heuristic(%d)", int(h))
}

// ParseHeuristic returns the heuristic with the given name,
// as returned by Heuristic.String.
func ParseHeuristic(s string) (Heuristic, error) {
	for h, name := range heuristicNames {
		if name == s {
			return Heuristic(h), nil
		}
	}
	return 0, fmt.Errorf("unknown heuristic %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Heuristic) UnmarshalText(data []byte) error {
	h1, err := ParseHeuristic(string(data))
	if err != nil {
		return err
	}
	*h = h1
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (h Heuristic) MarshalText() ([]byte, error) {
	if h < 0 || int(h) >= len(heuristicNames) {
		return nil, fmt.Errorf("unknown heuristic %d", int(h))
	}
	return []byte(h.String()), nil
}
