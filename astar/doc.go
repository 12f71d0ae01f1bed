// Package astar finds shortest paths across a grid.Grid with the A*
// algorithm.
//
// The open set is a binary min-heap keyed on f = g + ε·h, where g is
// the cost from the start and h the heuristic estimate to the goal.
// Ties on f go to the node with the smaller h. With ε = 1 and an
// admissible heuristic (Manhattan for cardinal moves, Euclidean or
// Octile when diagonal moves are allowed) the paths found are optimal;
// larger values of ε usually expand fewer cells at the price of
// longer paths.
//
// Failing to find a path is a normal result, not an error: FindPath
// reports it with a false return and Search with the Outcome of its
// Result.
package astar
