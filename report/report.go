// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/search"
)

// pathSeparator joins state IDs in the [PATH] line.
const pathSeparator = " => "

// WriteSearch writes the six-line search report for res.
// A nil or zero Result renders as an empty-tag, not-found report.
func WriteSearch(w io.Writer, res *search.Result) error {
	if res == nil {
		res = &search.Result{}
	}
	var b strings.Builder
	b.WriteString("# " + strings.ToUpper(res.Algorithm) + "\n")
	b.WriteString("[FOUND_SOLUTION]: " + yesNo(res.Found) + "\n")
	b.WriteString("[STATES_VISITED]: " + strconv.Itoa(res.StatesVisited) + "\n")
	b.WriteString("[PATH_LENGTH]: " + strconv.Itoa(res.PathLength()) + "\n")
	b.WriteString("[TOTAL_COST]: " + Cost(res.TotalCost) + "\n")
	b.WriteString("[PATH]: " + strings.Join(res.Path, pathSeparator) + "\n")

	_, err := io.WriteString(w, b.String())

	return err
}

// WriteOptimism writes the admissibility report; label is the heuristic
// source shown in the header.
func WriteOptimism(w io.Writer, label string, rep *heuristic.OptimismReport) error {
	if rep == nil {
		return fmt.Errorf("report: nil optimism report")
	}
	var b strings.Builder
	b.WriteString("# HEURISTIC-OPTIMISTIC " + label + "\n")
	for _, c := range rep.Conditions {
		fmt.Fprintf(&b, "[CONDITION]: [%s] h(%s) <= h*: %s <= %s\n",
			okErr(c.OK), c.ID, Fixed1(c.H), Fixed1(c.HStar))
	}
	b.WriteString("[CONCLUSION]: Heuristic " + isIsNot(rep.Optimistic) + " optimistic.\n")

	_, err := io.WriteString(w, b.String())

	return err
}

// WriteConsistency writes the consistency report; label is the heuristic
// source shown in the header.
func WriteConsistency(w io.Writer, label string, rep *heuristic.ConsistencyReport) error {
	if rep == nil {
		return fmt.Errorf("report: nil consistency report")
	}
	var b strings.Builder
	b.WriteString("# HEURISTIC-CONSISTENT " + label + "\n")
	for _, c := range rep.Conditions {
		fmt.Fprintf(&b, "[CONDITION]: [%s] h(%s) <= h(%s) + c: %s <= %s + %s\n",
			okErr(c.OK), c.From, c.To, Fixed1(c.HFrom), Fixed1(c.HTo), Fixed1(c.Cost))
	}
	b.WriteString("[CONCLUSION]: Heuristic " + isIsNot(rep.Consistent) + " consistent.\n")

	_, err := io.WriteString(w, b.String())

	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

func okErr(b bool) string {
	if b {
		return "OK"
	}

	return "ERR"
}

func isIsNot(b bool) string {
	if b {
		return "is"
	}

	return "is not"
}
