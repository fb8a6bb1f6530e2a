package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/framealign/align"
	"github.com/katalvlaran/framealign/internal/config"
)

// row is one output line: the aligned pair plus the labels of its elements.
type row struct {
	align.Pair
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// report is the JSON document written by --format json.
type report struct {
	RunID    string           `json:"run_id"`
	Script   string           `json:"script"`
	Counts   map[align.Op]int `json:"counts"`
	GapOpens int              `json:"gap_opens"`
	Rows     []row            `json:"rows"`
}

func buildRows(script align.Script, labelA, labelB func(int) string) []row {
	pairs := script.Pairs()
	rows := make([]row, len(pairs))
	for k, p := range pairs {
		rows[k].Pair = p
		if p.A >= 0 {
			rows[k].From = labelA(p.A)
		}
		if p.B >= 0 {
			rows[k].To = labelB(p.B)
		}
	}

	return rows
}

// writeResult prints script in the requested format.
func writeResult(w io.Writer, format, runID string, script align.Script, labelA, labelB func(int) string) error {
	rows := buildRows(script, labelA, labelB)
	counts := script.Counts()

	if format == config.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report{
			RunID:    runID,
			Script:   script.String(),
			Counts:   counts,
			GapOpens: script.GapOpens(),
			Rows:     rows,
		})
	}

	fmt.Fprintf(w, "# run %s: %d perfect, %d match, %d insertion, %d deletion, %d gap runs\n",
		runID, counts[align.Perfect], counts[align.Match], counts[align.Insertion], counts[align.Deletion], script.GapOpens())
	fmt.Fprintln(w, script.String())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range rows {
		from, to := r.From, r.To
		if r.A < 0 {
			from = "-"
		}
		if r.B < 0 {
			to = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Op, from, to)
	}

	return tw.Flush()
}
