package grid

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/klauspost/compress/zstd"
)

// wall is the 4x3 grid with a wall across the middle row, leaving
// only the rightmost column open.
var wall = [][]bool{
	{false, false, false, false},
	{true, true, true, false},
	{false, false, false, false},
}

func TestNew(t *testing.T) {
	g, err := New(wall)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(g.Width(), 4))
	qt.Assert(t, qt.Equals(g.Height(), 3))
	qt.Assert(t, qt.DeepEquals(g.Rows(), wall))
}

func TestNewCopiesRows(t *testing.T) {
	rows := [][]bool{{false, false}}
	g := MustNew(rows)
	rows[0][0] = true
	qt.Assert(t, qt.IsTrue(g.IsWalkable(Point{0, 0})))
}

func TestNewRagged(t *testing.T) {
	_, err := New([][]bool{{false, false}, {false}})
	qt.Assert(t, qt.ErrorIs(err, ErrRagged))
}

func TestNewEmpty(t *testing.T) {
	g, err := New(nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsFalse(g.IsWalkable(Point{0, 0})))
}

var walkableTests = []struct {
	p    Point
	want bool
}{
	{Point{0, 0}, true},
	{Point{3, 1}, true},
	{Point{1, 1}, false},
	{Point{-1, 0}, false},
	{Point{0, -1}, false},
	{Point{4, 0}, false},
	{Point{0, 3}, false},
}

func TestIsWalkable(t *testing.T) {
	g := MustNew(wall)
	for _, test := range walkableTests {
		qt.Check(t, qt.Equals(g.IsWalkable(test.p), test.want), qt.Commentf("%v", test.p))
		if !g.InBounds(test.p) {
			qt.Check(t, qt.IsTrue(g.Blocked(test.p)), qt.Commentf("%v", test.p))
		}
	}
}

func TestNeighborsCardinal(t *testing.T) {
	g := MustNew(wall)
	steps := g.Neighbors(Point{2, 0}, Moves{})
	qt.Assert(t, qt.DeepEquals(steps, []Step{
		{To: Point{3, 0}, Cost: 1},
		{To: Point{1, 0}, Cost: 1},
	}))
}

func TestNeighborsDiagonal(t *testing.T) {
	g := MustNew(wall)
	steps := g.Neighbors(Point{2, 0}, Moves{Diagonal: true})
	qt.Assert(t, qt.DeepEquals(steps, []Step{
		{To: Point{3, 0}, Cost: 1},
		{To: Point{1, 0}, Cost: 1},
		{To: Point{3, 1}, Cost: math.Sqrt2},
	}))
}

func TestNeighborsNoCornerCutting(t *testing.T) {
	g := MustNew(wall)
	// From (2,0) to (3,1) passes (2,1), which is blocked.
	steps := g.Neighbors(Point{2, 0}, Moves{Diagonal: true, NoCornerCutting: true})
	qt.Assert(t, qt.DeepEquals(steps, []Step{
		{To: Point{3, 0}, Cost: 1},
		{To: Point{1, 0}, Cost: 1},
	}))

	open := MustNew([][]bool{{false, false}, {false, false}})
	steps = open.Neighbors(Point{0, 0}, Moves{Diagonal: true, NoCornerCutting: true})
	qt.Assert(t, qt.HasLen(steps, 3))
	qt.Assert(t, qt.Equals(steps[2].To, Point{1, 1}))
}

func TestStepCost(t *testing.T) {
	qt.Assert(t, qt.Equals(StepCost(Point{1, 1}, Point{1, 1}), 0.0))
	qt.Assert(t, qt.Equals(StepCost(Point{1, 1}, Point{1, 2}), 1.0))
	qt.Assert(t, qt.Equals(StepCost(Point{1, 1}, Point{0, 0}), math.Sqrt2))
	qt.Assert(t, qt.IsTrue(math.IsInf(StepCost(Point{1, 1}, Point{3, 1}), 1)))
}

const wallText = `
S . . .
# # # .
. . . G
`

func TestParse(t *testing.T) {
	g, m, err := ParseString(wallText)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(g.Rows(), wall))
	qt.Assert(t, qt.DeepEquals(m, Markers{
		Start:    Point{0, 0},
		Goal:     Point{3, 2},
		HasStart: true,
		HasGoal:  true,
	}))
}

func TestParseCompact(t *testing.T) {
	g, m, err := ParseString("..#\r\n#..\r\n")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(g.Rows(), [][]bool{{false, false, true}, {true, false, false}}))
	qt.Assert(t, qt.IsFalse(m.HasStart))
	qt.Assert(t, qt.IsFalse(m.HasGoal))
}

var parseErrorTests = []struct {
	about string
	text  string
	err   error
}{{
	about: "bad character",
	text:  "..x\n",
	err:   ErrSyntax,
}, {
	about: "two starts",
	text:  "S.S\n",
	err:   ErrSyntax,
}, {
	about: "two goals",
	text:  "G..\n..G\n",
	err:   ErrSyntax,
}, {
	about: "ragged",
	text:  "...\n..\n",
	err:   ErrRagged,
}}

func TestParseErrors(t *testing.T) {
	for _, test := range parseErrorTests {
		t.Run(test.about, func(t *testing.T) {
			_, _, err := ParseString(test.text)
			qt.Assert(t, qt.ErrorIs(err, test.err))
		})
	}
}

func TestRender(t *testing.T) {
	g := MustNew(wall)
	var buf bytes.Buffer
	err := Render(&buf, g, []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}, {3, 2}})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(buf.String(), `
S * * *
# # # *
. . . G
`[1:]))

	// The rendered form parses back to the same grid.
	g1, m, err := Parse(&buf)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(g1.Rows(), wall))
	qt.Assert(t, qt.Equals(m.Goal, Point{3, 2}))
}

func TestRenderSinglePoint(t *testing.T) {
	g := MustNew([][]bool{{false, true}})
	var buf bytes.Buffer
	Render(&buf, g, []Point{{0, 0}})
	qt.Assert(t, qt.Equals(buf.String(), "S #\n"))
	qt.Assert(t, qt.Equals(g.String(), ". #\n"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "wall.txt")
	err := os.WriteFile(plain, []byte(wallText), 0o666)
	qt.Assert(t, qt.IsNil(err))

	g, m, err := Load(plain)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(g.Rows(), wall))
	qt.Assert(t, qt.IsTrue(m.HasStart))

	enc, err := zstd.NewWriter(nil)
	qt.Assert(t, qt.IsNil(err))
	compressed := filepath.Join(dir, "wall.txt.zst")
	err = os.WriteFile(compressed, enc.EncodeAll([]byte(wallText), nil), 0o666)
	qt.Assert(t, qt.IsNil(err))
	enc.Close()

	g, m, err = Load(compressed)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(g.Rows(), wall))
	qt.Assert(t, qt.Equals(m.Goal, Point{3, 2}))
}

func TestLoadNotFound(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing"))
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))
}
