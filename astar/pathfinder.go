package astar

import (
	"context"
	"errors"
	"math"

	"github.com/rogpeppe/gridpath/grid"
)

var inf = math.Inf(1)

var (
	ErrInvalidEpsilon = errors.New("astar: epsilon must be a finite number no less than 1")
	ErrInvalidLimit   = errors.New("astar: expansion limit must not be negative")
)

// ctxCheckInterval is how many queue extractions SearchContext makes
// between looks at its context.
const ctxCheckInterval = 256

// Options holds the configuration of a Pathfinder.
type Options struct {
	// Heuristic estimates the remaining cost to the goal.
	Heuristic Heuristic

	// Epsilon scales the heuristic: f(n) = g(n) + Epsilon·h(n).
	// 1 gives standard A*; larger values trade path quality for
	// fewer expansions.
	Epsilon float64

	// Moves holds the movement rules.
	Moves grid.Moves

	// MaxExpansions bounds the number of cells a search may close.
	// Zero means no bound.
	MaxExpansions int

	// Tracer, if non-nil, is told about the progress of every search.
	Tracer Tracer
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic sets the heuristic. The default is Manhattan.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithEpsilon sets the heuristic weight. The default is 1.
func WithEpsilon(epsilon float64) Option {
	return func(o *Options) { o.Epsilon = epsilon }
}

// WithDiagonal sets whether diagonal moves are allowed. The default is true.
func WithDiagonal(diagonal bool) Option {
	return func(o *Options) { o.Moves.Diagonal = diagonal }
}

// WithoutCornerCutting forbids diagonal moves that squeeze past a
// cell that is not walkable.
func WithoutCornerCutting() Option {
	return func(o *Options) { o.Moves.NoCornerCutting = true }
}

// WithMaxExpansions bounds the number of cells a search may close
// before giving up with LimitReached.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithTracer sets a tracer to observe searches.
func WithTracer(t Tracer) Option {
	return func(o *Options) { o.Tracer = t }
}

// Tracer observes the progress of a search. Its methods are called
// synchronously from the searching goroutine.
type Tracer interface {
	// Expand is called when the cell at p is closed with cost g.
	Expand(p grid.Point, g float64)

	// Relax is called when a cheaper path to p is found.
	// oldG is +Inf when p has just been discovered.
	Relax(p grid.Point, oldG, newG float64)
}

// Outcome says how a search ended.
type Outcome int

const (
	// Found means a path was found.
	Found Outcome = iota
	// InvalidEndpoint means the start or goal is outside the grid or
	// blocked, so no search was made.
	InvalidEndpoint
	// Exhausted means every reachable cell was expanded without
	// reaching the goal.
	Exhausted
	// LimitReached means the search closed the maximum number of
	// cells without reaching the goal.
	LimitReached
	// Interrupted means the search's context was done.
	Interrupted
)

var outcomeNames = [...]string{
	Found:           "found",
	InvalidEndpoint: "invalid-endpoint",
	Exhausted:       "exhausted",
	LimitReached:    "limit-reached",
	Interrupted:     "interrupted",
}

func (o Outcome) String() string {
	if o >= 0 && int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Result contains the outcome of a search.
type Result struct {
	// Path holds the cells from start to goal inclusive.
	// It is nil unless Outcome is Found.
	Path []grid.Point

	// Cost is the cost of Path, or +Inf if there is no path.
	Cost float64

	// Expanded holds the number of cells closed by the search.
	Expanded int

	Outcome Outcome
}

// Found reports whether the search found a path.
func (r Result) Found() bool {
	return r.Outcome == Found
}

// Pathfinder finds paths across a grid. It holds no per-search state,
// so one Pathfinder may run searches from several goroutines at once.
type Pathfinder struct {
	grid *grid.Grid
	opts Options
}

// New returns a Pathfinder over g. By default it uses the Manhattan
// heuristic with epsilon 1 and allows diagonal moves, including ones
// that cut the corner of a blocked cell.
func New(g *grid.Grid, options ...Option) (*Pathfinder, error) {
	opts := Options{
		Heuristic: Manhattan,
		Epsilon:   1,
		Moves:     grid.Moves{Diagonal: true},
	}
	for _, o := range options {
		o(&opts)
	}
	if !(opts.Epsilon >= 1) || math.IsInf(opts.Epsilon, 1) {
		return nil, ErrInvalidEpsilon
	}
	if opts.MaxExpansions < 0 {
		return nil, ErrInvalidLimit
	}
	// Check the heuristic now rather than panicking mid-search.
	if _, err := opts.Heuristic.MarshalText(); err != nil {
		return nil, err
	}
	return &Pathfinder{
		grid: g,
		opts: opts,
	}, nil
}

// Grid returns the grid searched by p.
func (p *Pathfinder) Grid() *grid.Grid {
	return p.grid
}

// Options returns the options p was created with.
func (p *Pathfinder) Options() Options {
	return p.opts
}

// FindPath returns the path from start to goal, including both, and
// reports whether there is one. There is no path when either point is
// outside the grid or blocked, or when the goal cannot be reached.
func (p *Pathfinder) FindPath(start, goal grid.Point) ([]grid.Point, bool) {
	r := p.Search(start, goal)
	return r.Path, r.Found()
}

// Search is like FindPath but returns more detail about the search.
func (p *Pathfinder) Search(start, goal grid.Point) Result {
	r, _ := p.SearchContext(context.Background(), start, goal)
	return r
}

// SearchContext is like Search but gives up with the context's error
// and an Interrupted result once ctx is done.
func (p *Pathfinder) SearchContext(ctx context.Context, start, goal grid.Point) (Result, error) {
	if !p.grid.IsWalkable(start) || !p.grid.IsWalkable(goal) {
		return Result{Cost: inf, Outcome: InvalidEndpoint}, nil
	}
	s := &search{
		Options: &p.opts,
		grid:    p.grid,
		goal:    goal,
		nodes:   make(map[grid.Point]*SearchNode),
		closed:  make(map[grid.Point]bool),
		open:    NewPriorityQueue(),
	}
	return s.run(ctx, start)
}

// search holds the state of a single call to SearchContext.
type search struct {
	*Options
	grid *grid.Grid
	goal grid.Point

	// nodes holds every node discovered so far, keyed by position.
	nodes  map[grid.Point]*SearchNode
	closed map[grid.Point]bool
	open   *PriorityQueue
}

func (s *search) run(ctx context.Context, start grid.Point) (Result, error) {
	n := newSearchNode(start)
	n.G = 0
	n.H = s.Heuristic.Estimate(start, s.goal)
	s.nodes[start] = n
	s.open.Insert(n)

	for i := 0; ; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return s.result(Interrupted, nil), err
			}
		}
		current := s.open.ExtractMin()
		if current == nil {
			return s.result(Exhausted, nil), nil
		}
		if current.Position == s.goal {
			return s.result(Found, current), nil
		}
		if s.closed[current.Position] {
			// The queue holds at most one entry per position and
			// closed cells are never reinserted, so this does not
			// happen today. It keeps each cell expanded at most once
			// should the queue ever allow duplicate entries.
			continue
		}
		if s.MaxExpansions > 0 && len(s.closed) >= s.MaxExpansions {
			return s.result(LimitReached, nil), nil
		}
		s.closed[current.Position] = true
		if s.Tracer != nil {
			s.Tracer.Expand(current.Position, current.G)
		}
		s.expand(current)
	}
}

func (s *search) expand(current *SearchNode) {
	for _, step := range s.grid.Neighbors(current.Position, s.Moves) {
		if s.closed[step.To] {
			continue
		}
		g := current.G + step.Cost
		nb, ok := s.nodes[step.To]
		if !ok {
			nb = newSearchNode(step.To)
			s.nodes[step.To] = nb
		}
		if g >= nb.G {
			continue
		}
		h := s.Heuristic.Estimate(step.To, s.goal) * s.Epsilon
		if s.Tracer != nil {
			s.Tracer.Relax(step.To, nb.G, g)
		}
		if !math.IsInf(nb.G, 1) && s.open.UpdatePriority(nb, current, g, h) {
			continue
		}
		// Newly discovered, or known but no longer queued.
		nb.Parent = current
		nb.G = g
		nb.H = h
		s.open.Insert(nb)
	}
}

func (s *search) result(o Outcome, goal *SearchNode) Result {
	r := Result{
		Cost:     inf,
		Expanded: len(s.closed),
		Outcome:  o,
	}
	if goal != nil {
		r.Path = goal.path()
		r.Cost = goal.G
	}
	return r
}

// PathCost returns the total cost of walking path, with each cardinal
// step costing 1 and each diagonal step √2. It returns +Inf if two
// consecutive points are not adjacent.
func PathCost(path []grid.Point) float64 {
	cost := 0.0
	for i := 1; i < len(path); i++ {
		cost += grid.StepCost(path[i-1], path[i])
	}
	return cost
}
