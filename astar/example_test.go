package astar_test

import (
	"fmt"
	"os"

	"github.com/rogpeppe/gridpath/astar"
	"github.com/rogpeppe/gridpath/grid"
)

func ExamplePathfinder_FindPath() {
	g, m, err := grid.ParseString(`
S . . .
# # # .
. . . G
`)
	if err != nil {
		panic(err)
	}
	pf, err := astar.New(g, astar.WithHeuristic(astar.Manhattan), astar.WithDiagonal(false))
	if err != nil {
		panic(err)
	}
	path, ok := pf.FindPath(m.Start, m.Goal)
	fmt.Println(ok, path)
	grid.Render(os.Stdout, g, path)
	// Output:
	// true [(0,0) (1,0) (2,0) (3,0) (3,1) (3,2)]
	// S * * *
	// # # # *
	// . . . G
}

func ExamplePathfinder_Search() {
	g, m, err := grid.ParseString(`
S . . .
# # # .
. . . G
`)
	if err != nil {
		panic(err)
	}
	pf, err := astar.New(g, astar.WithHeuristic(astar.Euclidean))
	if err != nil {
		panic(err)
	}
	r := pf.Search(m.Start, m.Goal)
	fmt.Printf("%v cost=%.3f expanded=%d\n", r.Outcome, r.Cost, r.Expanded)
	fmt.Println(r.Path)

	r = pf.Search(m.Start, grid.Point{X: 1, Y: 1})
	fmt.Println(r.Outcome)
	// Output:
	// found cost=4.414 expanded=4
	// [(0,0) (1,0) (2,0) (3,1) (3,2)]
	// invalid-endpoint
}
