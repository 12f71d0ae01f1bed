// Package scenario loads the YAML files that describe searches for
// the gridpath command.
//
// A file holds either a single scenario or a list of them under
// "scenarios":
//
//	name: wall
//	grid: |
//	  S . . .
//	  # # # .
//	  . . . G
//	heuristic: euclidean
//	diagonal: true
//
// The grid is given inline or read from grid_file, which is relative to
// the scenario file and may be zstd-compressed. The start and goal
// default to the grid's S and G cells. Every document is checked
// against an embedded JSON Schema before it is decoded.
package scenario

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/rogpeppe/gridpath/astar"
	"github.com/rogpeppe/gridpath/grid"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "scenario.schema.json"

// ErrNoEndpoint is returned when a scenario names neither a start
// (or goal) nor marks one in its grid.
var ErrNoEndpoint = errors.New("scenario: missing start or goal")

// Scenario is a single search to run.
type Scenario struct {
	Name        string
	Grid        *grid.Grid
	Start, Goal grid.Point

	Heuristic     astar.Heuristic
	Epsilon       float64
	Diagonal      bool
	CornerCutting bool
	MaxExpansions int
}

// Pathfinder returns a pathfinder configured as the scenario says.
// Any extra options are applied after the scenario's own.
func (s *Scenario) Pathfinder(extra ...astar.Option) (*astar.Pathfinder, error) {
	opts := []astar.Option{
		astar.WithHeuristic(s.Heuristic),
		astar.WithEpsilon(s.Epsilon),
		astar.WithDiagonal(s.Diagonal),
		astar.WithMaxExpansions(s.MaxExpansions),
	}
	if !s.CornerCutting {
		opts = append(opts, astar.WithoutCornerCutting())
	}
	return astar.New(s.Grid, append(opts, extra...)...)
}

// document is the YAML form of a scenario.
type document struct {
	Name          string          `yaml:"name"`
	Grid          string          `yaml:"grid"`
	GridFile      string          `yaml:"grid_file"`
	Start         []int           `yaml:"start"`
	Goal          []int           `yaml:"goal"`
	Heuristic     astar.Heuristic `yaml:"heuristic"`
	Epsilon       float64         `yaml:"epsilon"`
	Diagonal      *bool           `yaml:"diagonal"`
	CornerCutting *bool           `yaml:"corner_cutting"`
	MaxExpansions int             `yaml:"max_expansions"`
}

type file struct {
	Scenarios []document `yaml:"scenarios"`
}

// Load reads the scenarios in the named file.
func Load(path string) ([]*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ss, err := Parse(data, filepath.Dir(path), name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ss, nil
}

// Parse parses the scenarios in data. Grid files are found relative to
// dir, and scenarios without a name are named after defaultName.
func Parse(data []byte, dir, defaultName string) ([]*Scenario, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	docs := f.Scenarios
	if docs == nil {
		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		docs = []document{doc}
	}
	ss := make([]*Scenario, 0, len(docs))
	for i, doc := range docs {
		if doc.Name == "" {
			doc.Name = defaultName
			if len(docs) > 1 {
				doc.Name = fmt.Sprintf("%s-%d", defaultName, i+1)
			}
		}
		s, err := doc.resolve(dir)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", doc.Name, err)
		}
		ss = append(ss, s)
	}
	return ss, nil
}

func (doc *document) resolve(dir string) (*Scenario, error) {
	var (
		g   *grid.Grid
		m   grid.Markers
		err error
	)
	if doc.GridFile != "" {
		path := doc.GridFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		g, m, err = grid.Load(path)
	} else {
		g, m, err = grid.ParseString(doc.Grid)
	}
	if err != nil {
		return nil, err
	}
	s := &Scenario{
		Name:          doc.Name,
		Grid:          g,
		Heuristic:     doc.Heuristic,
		Epsilon:       doc.Epsilon,
		Diagonal:      true,
		CornerCutting: true,
		MaxExpansions: doc.MaxExpansions,
	}
	if s.Epsilon == 0 {
		s.Epsilon = 1
	}
	if doc.Diagonal != nil {
		s.Diagonal = *doc.Diagonal
	}
	if doc.CornerCutting != nil {
		s.CornerCutting = *doc.CornerCutting
	}
	var ok bool
	if s.Start, ok = endpoint(doc.Start, m.Start, m.HasStart); !ok {
		return nil, fmt.Errorf("no start: %w", ErrNoEndpoint)
	}
	if s.Goal, ok = endpoint(doc.Goal, m.Goal, m.HasGoal); !ok {
		return nil, fmt.Errorf("no goal: %w", ErrNoEndpoint)
	}
	return s, nil
}

// endpoint returns the explicitly given point if there is one,
// falling back to the marked one.
func endpoint(given []int, marked grid.Point, hasMarked bool) (grid.Point, bool) {
	if len(given) == 2 {
		return grid.Point{X: given[0], Y: given[1]}, true
	}
	return marked, hasMarked
}

var schema = func() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		panic(err)
	}
	return c.MustCompile(schemaURL)
}()

// validate checks the YAML document in data against the scenario schema.
func validate(data []byte) error {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return err
	}
	// Round trip through JSON so that the validator sees the
	// same types as it would for a JSON document.
	j, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("scenario is not representable as JSON: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(j))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return err
	}
	return schema.Validate(doc)
}
