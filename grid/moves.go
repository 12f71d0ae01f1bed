package grid

import "math"

// Moves describes which steps are allowed out of a cell.
type Moves struct {
	// Diagonal allows the four diagonal steps in addition to the
	// four cardinal ones.
	Diagonal bool

	// NoCornerCutting forbids a diagonal step when either of the two
	// cells it squeezes past is not walkable. By default such steps
	// are allowed.
	NoCornerCutting bool
}

// Step is a single move to a neighboring cell.
type Step struct {
	To   Point
	Cost float64
}

var (
	cardinalDirs = [...]Point{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonalDirs = [...]Point{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// Neighbors returns the walkable cells reachable from p in one step,
// cardinal directions first, then diagonals when m allows them.
// The order is fixed so that searches are reproducible.
func (g *Grid) Neighbors(p Point, m Moves) []Step {
	steps := make([]Step, 0, 8)
	for _, d := range cardinalDirs {
		if q := p.Add(d); g.IsWalkable(q) {
			steps = append(steps, Step{To: q, Cost: 1})
		}
	}
	if !m.Diagonal {
		return steps
	}
	for _, d := range diagonalDirs {
		q := p.Add(d)
		if !g.IsWalkable(q) {
			continue
		}
		if m.NoCornerCutting && (!g.IsWalkable(Point{p.X + d.X, p.Y}) || !g.IsWalkable(Point{p.X, p.Y + d.Y})) {
			continue
		}
		steps = append(steps, Step{To: q, Cost: math.Sqrt2})
	}
	return steps
}

// StepCost returns the cost of moving between the adjacent cells a and b:
// 1 for a cardinal step and √2 for a diagonal one. It returns +Inf if the
// cells are not adjacent and 0 if they are the same cell.
func StepCost(a, b Point) float64 {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	switch {
	case dx == 0 && dy == 0:
		return 0
	case dx > 1 || dy > 1:
		return math.Inf(1)
	case dx == 1 && dy == 1:
		return math.Sqrt2
	}
	return 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
