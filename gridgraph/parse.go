// SPDX-License-Identifier: MIT

package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
)

// Map symbols.
const (
	symWall  = '#'
	symOpen  = '.'
	symStart = 'S'
	symGoal  = 'G'
)

// LoadGrid opens path and parses it with ParseGrid.
func LoadGrid(path string, opts GridOptions) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: open map: %w", err)
	}
	defer f.Close()

	return ParseGrid(path, f, opts)
}

// ParseGrid reads a text map; name is used only in error messages.
// Blank lines and lines starting with ';' are skipped. Exactly one 'S' and
// at least one 'G' are required; goals are listed in row-major order.
func ParseGrid(name string, r io.Reader, opts GridOptions) (*Map, error) {
	var (
		rows   [][]int
		start  *Point
		goals  []Point
		sc     = bufio.NewScanner(r)
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		y := len(rows)
		row := make([]int, 0, len(line))
		for x, ch := range []byte(line) {
			switch {
			case ch == symWall:
				row = append(row, 0)
			case ch == symOpen:
				row = append(row, 1)
			case ch >= '1' && ch <= '9':
				row = append(row, int(ch-'0'))
			case ch == symStart:
				if start != nil {
					return nil, fmt.Errorf("%w: %s:%d: second start cell", ErrParse, name, lineNo)
				}
				start = &Point{x, y}
				row = append(row, 1)
			case ch == symGoal:
				goals = append(goals, Point{x, y})
				row = append(row, 1)
			default:
				return nil, fmt.Errorf("%w: %s:%d: unexpected %q at column %d", ErrParse, name, lineNo, ch, x+1)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read: %w", err)
	}
	if start == nil {
		return nil, fmt.Errorf("%w: %s: no start cell", ErrParse, name)
	}
	if len(goals) == 0 {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, name, ErrNoGoal)
	}

	gg, err := NewGridGraph(rows, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, name, err)
	}

	return &Map{Grid: gg, Start: *start, Goals: goals}, nil
}

// ToCoreGraph converts the map with its own start and goals.
func (m *Map) ToCoreGraph() (*core.Graph, error) {
	return m.Grid.ToCoreGraph(m.Start, m.Goals...)
}
