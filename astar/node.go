package astar

import (
	"fmt"

	"github.com/rogpeppe/gridpath/grid"
)

// SearchNode holds the search state of one grid cell.
//
// A node is shared by reference between the node table of a search
// and the open queue, so a change made through one is seen by the
// other.
type SearchNode struct {
	// Position identifies the cell. It never changes.
	Position grid.Point

	// G is the cost of the cheapest path from the start found so far.
	// It is +Inf until the cell is first reached and only ever decreases.
	G float64

	// H is the estimated remaining cost to the goal, already
	// multiplied by the search's epsilon (except for the start node).
	H float64

	// Parent is the previous cell on the cheapest known path,
	// or nil for the start.
	Parent *SearchNode

	// heapIndex is the node's slot in the open queue, or -1 when
	// the node is not queued.
	heapIndex int
}

func newSearchNode(p grid.Point) *SearchNode {
	return &SearchNode{
		Position:  p,
		G:         inf,
		H:         inf,
		heapIndex: -1,
	}
}

// F returns G + H, the key the open queue is ordered by.
func (n *SearchNode) F() float64 {
	return n.G + n.H
}

// less orders nodes by F, preferring the smaller H on a tie
// so that nodes believed nearer the goal are expanded first.
func (n *SearchNode) less(m *SearchNode) bool {
	if fn, fm := n.F(), m.F(); fn != fm {
		return fn < fm
	}
	return n.H < m.H
}

func (n *SearchNode) String() string {
	return fmt.Sprintf("%v g=%g h=%g", n.Position, n.G, n.H)
}

// path returns the positions from the start to n by following
// the parent links.
func (n *SearchNode) path() []grid.Point {
	var path []grid.Point
	for ; n != nil; n = n.Parent {
		path = append(path, n.Position)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
