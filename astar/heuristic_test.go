package astar

import (
	"math"
	"testing"

	"github.com/go-quicktest/qt"
	"gopkg.in/yaml.v3"

	"github.com/rogpeppe/gridpath/grid"
)

var estimateTests = []struct {
	h        Heuristic
	from, to grid.Point
	want     float64
}{
	{Manhattan, grid.Point{X: 0, Y: 0}, grid.Point{X: 3, Y: 4}, 7},
	{Euclidean, grid.Point{X: 0, Y: 0}, grid.Point{X: 3, Y: 4}, 5},
	{Chebyshev, grid.Point{X: 0, Y: 0}, grid.Point{X: 3, Y: 4}, 4},
	{Octile, grid.Point{X: 0, Y: 0}, grid.Point{X: 3, Y: 4}, 1 + 3*math.Sqrt2},
	{Manhattan, grid.Point{X: 2, Y: 2}, grid.Point{X: 2, Y: 2}, 0},
	{Euclidean, grid.Point{X: -1, Y: 5}, grid.Point{X: 2, Y: 1}, 5},
}

func TestEstimate(t *testing.T) {
	for _, test := range estimateTests {
		got := test.h.Estimate(test.from, test.to)
		qt.Check(t, qt.IsTrue(math.Abs(got-test.want) < 1e-12), qt.Commentf("%v %v->%v got %v want %v", test.h, test.from, test.to, got, test.want))
		// Estimates are symmetric.
		qt.Check(t, qt.Equals(test.h.Estimate(test.to, test.from), got))
	}
}

func TestOctileIsExactOnOpenGrid(t *testing.T) {
	// On an open grid with diagonal moves, the octile distance is
	// the true shortest path cost.
	g := grid.MustNew(openRows(6, 5))
	pf, err := New(g, WithHeuristic(Octile))
	qt.Assert(t, qt.IsNil(err))
	for _, goal := range []grid.Point{{X: 5, Y: 4}, {X: 0, Y: 4}, {X: 3, Y: 0}, {X: 2, Y: 3}} {
		r := pf.Search(grid.Point{X: 0, Y: 0}, goal)
		qt.Assert(t, qt.IsTrue(r.Found()))
		qt.Check(t, qt.IsTrue(math.Abs(r.Cost-Octile.Estimate(grid.Point{X: 0, Y: 0}, goal)) < 1e-9))
	}
}

func TestParseHeuristic(t *testing.T) {
	for _, h := range []Heuristic{Manhattan, Euclidean, Octile, Chebyshev} {
		h1, err := ParseHeuristic(h.String())
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(h1, h))
	}
	_, err := ParseHeuristic("taxicab")
	qt.Assert(t, qt.ErrorMatches(err, `unknown heuristic "taxicab"`))
	qt.Assert(t, qt.Equals(Heuristic(99).String(), "Heuristic(99)"))
}

func TestHeuristicYAML(t *testing.T) {
	var v struct {
		H Heuristic `yaml:"h"`
	}
	err := yaml.Unmarshal([]byte("h: euclidean\n"), &v)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v.H, Euclidean))

	err = yaml.Unmarshal([]byte("h: crow\n"), &v)
	qt.Assert(t, qt.ErrorMatches(err, `.*unknown heuristic "crow".*`))

	data, err := yaml.Marshal(struct {
		H Heuristic `yaml:"h"`
	}{Chebyshev})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(data), "h: chebyshev\n"))
}

func openRows(w, h int) [][]bool {
	rows := make([][]bool, h)
	for y := range rows {
		rows[y] = make([]bool, w)
	}
	return rows
}
