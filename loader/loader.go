// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
)

// ErrParse is returned (wrapped with source:line context) for malformed input.
var ErrParse = errors.New("loader: malformed input")

// commentPrefix marks lines that are skipped entirely.
const commentPrefix = "#"

// LoadStates opens path and parses it with ParseStates.
func LoadStates(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open state space: %w", err)
	}
	defer f.Close()

	return ParseStates(path, f)
}

// LoadHeuristics opens path and parses it into g with ParseHeuristics.
func LoadHeuristics(path string, g *core.Graph) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("loader: open heuristics: %w", err)
	}
	defer f.Close()

	return ParseHeuristics(path, f, g)
}

// ParseStates reads a state-space description. name is used only in error
// messages. The returned graph is not frozen so heuristics can still be added.
//
// Errors:
//   - ErrParse: missing start or goal line, missing ':' or ',' separators,
//     or an unparsable / negative cost.
//   - Any read error from r.
func ParseStates(name string, r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	seen := 0 // data lines consumed so far

	err := scanLines(r, func(lineNo int, line string) error {
		seen++
		switch seen {
		case 1:
			if err := g.SetStart(stateID(line)); err != nil {
				return parseErr(name, lineNo, "bad start state", err)
			}
			return nil
		case 2:
			for _, id := range strings.Fields(stateID(line)) {
				if err := g.AddGoal(id); err != nil {
					return parseErr(name, lineNo, "bad goal state", err)
				}
			}
			return nil
		}

		id, rest, ok := strings.Cut(line, ":")
		if !ok {
			return parseErr(name, lineNo, "expected 'state: neighbor,cost ...'", nil)
		}
		id = strings.TrimSpace(id)
		if err := g.AddNode(id); err != nil {
			return parseErr(name, lineNo, "bad state", err)
		}
		for _, pair := range strings.Fields(rest) {
			to, costText, ok := strings.Cut(pair, ",")
			if !ok {
				return parseErr(name, lineNo, fmt.Sprintf("expected 'neighbor,cost', got %q", pair), nil)
			}
			cost, err := strconv.ParseFloat(strings.TrimSpace(costText), 64)
			if err != nil {
				return parseErr(name, lineNo, fmt.Sprintf("bad cost %q", costText), err)
			}
			if err := g.AddEdge(id, strings.TrimSpace(to), cost); err != nil {
				return parseErr(name, lineNo, "bad transition", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	if seen < 2 {
		return nil, parseErr(name, 0, "missing start state or goal states", nil)
	}

	return g, nil
}

// ParseHeuristics reads "state: value" lines into g. Unknown states are
// skipped. On error g may hold some of the new values; callers discard it.
func ParseHeuristics(name string, r io.Reader, g *core.Graph) error {
	return scanLines(r, func(lineNo int, line string) error {
		id, valText, ok := strings.Cut(line, ":")
		if !ok {
			return parseErr(name, lineNo, "expected 'state: value'", nil)
		}
		h, err := strconv.ParseFloat(strings.TrimSpace(valText), 64)
		if err != nil {
			return parseErr(name, lineNo, fmt.Sprintf("bad heuristic %q", strings.TrimSpace(valText)), err)
		}
		if _, err = g.SetHeuristic(strings.TrimSpace(id), h); err != nil {
			return parseErr(name, lineNo, "cannot set heuristic", err)
		}

		return nil
	})
}

// stateID strips an optional trailing ':' section from start/goal lines.
func stateID(line string) string {
	id, _, _ := strings.Cut(line, ":")

	return strings.TrimSpace(id)
}

// scanLines feeds every non-blank, non-comment line to fn with its 1-based number.
func scanLines(r io.Reader, fn func(lineNo int, line string) error) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("loader: read: %w", err)
	}

	return nil
}

func parseErr(name string, lineNo int, msg string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %s:%d: %s: %w", ErrParse, name, lineNo, msg, cause)
	}

	return fmt.Errorf("%w: %s:%d: %s", ErrParse, name, lineNo, msg)
}
