package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Cell characters used by the text form of a grid.
const (
	CellOpen    = '.'
	CellBlocked = '#'
	CellStart   = 'S'
	CellGoal    = 'G'
	CellPath    = '*'
)

// ErrSyntax is returned when a grid's text form cannot be parsed.
var ErrSyntax = errors.New("grid: syntax error")

// Markers records the S and G cells found while parsing a grid.
type Markers struct {
	Start, Goal       Point
	HasStart, HasGoal bool
}

// Parse reads the text form of a grid: one line per row, with '#'
// for a blocked cell and '.' for an open one. 'S' and 'G' mark open
// cells whose positions are returned in Markers, and '*' is read as an
// open cell, so the output of Render parses back to the same grid.
// Spaces and tabs are ignored, as are blank lines.
func Parse(r io.Reader) (*Grid, Markers, error) {
	var (
		rows [][]bool
		m    Markers
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<24)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		y := len(rows)
		row := make([]bool, 0, len(line))
		for _, c := range line {
			p := Point{len(row), y}
			switch c {
			case ' ', '\t':
				continue
			case CellOpen, CellPath:
			case CellBlocked:
				row = append(row, true)
				continue
			case CellStart:
				if m.HasStart {
					return nil, Markers{}, fmt.Errorf("line %d: second %q marker: %w", lineNo, c, ErrSyntax)
				}
				m.Start, m.HasStart = p, true
			case CellGoal:
				if m.HasGoal {
					return nil, Markers{}, fmt.Errorf("line %d: second %q marker: %w", lineNo, c, ErrSyntax)
				}
				m.Goal, m.HasGoal = p, true
			default:
				return nil, Markers{}, fmt.Errorf("line %d: unexpected character %q: %w", lineNo, c, ErrSyntax)
			}
			row = append(row, false)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, Markers{}, err
	}
	g, err := New(rows)
	if err != nil {
		return nil, Markers{}, err
	}
	return g, m, nil
}

// ParseString is like Parse but reads from s.
func ParseString(s string) (*Grid, Markers, error) {
	return Parse(strings.NewReader(s))
}

// Load parses the grid held in the named file. Files whose name ends
// in ".zst" are decompressed with zstd first.
func Load(path string) (*Grid, Markers, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Markers{}, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, Markers{}, fmt.Errorf("%s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	}
	g, m, err := Parse(r)
	if err != nil {
		return nil, Markers{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, m, nil
}

// Render writes g to w, one row per line with cells separated by
// spaces. Cells on path are drawn as '*', except that the first is
// drawn as 'S' and the last as 'G'.
func Render(w io.Writer, g *Grid, path []Point) error {
	marks := make(map[Point]rune, len(path))
	for i, p := range path {
		switch i {
		case 0:
			marks[p] = CellStart
		case len(path) - 1:
			if _, ok := marks[p]; !ok {
				marks[p] = CellGoal
			}
		default:
			marks[p] = CellPath
		}
	}
	bw := bufio.NewWriter(w)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			p := Point{x, y}
			c, ok := marks[p]
			switch {
			case ok:
			case g.Blocked(p):
				c = CellBlocked
			default:
				c = CellOpen
			}
			bw.WriteRune(c)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (g *Grid) String() string {
	var sb strings.Builder
	Render(&sb, g, nil)
	return sb.String()
}
