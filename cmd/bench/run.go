package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/funmatu/sawsolver/sequence"
)

const (
	StatusOK       = "OK"
	StatusTimeout  = "TIMEOUT"
	StatusSkipped  = "SKIPPED"
	StatusMismatch = "MISMATCH"
	StatusError    = "ERROR"
)

type Row struct {
	N       int
	Method  string
	Count   string
	Cached  bool
	Elapsed time.Duration
	Status  string
	Detail  string
}

// Run counts every case with every method. Once a method times out it
// is skipped for the following cases.
func Run(count Counter, cases []int, methods []string, timeout time.Duration, recursiveMax int) []*Row {

	rows := []*Row{}
	timedOut := map[string]bool{}

	for _, n := range cases {

		expected, hasExpected := sequence.Known().Lookup(n)
		first := ""

		for _, method := range methods {
			row := &Row{N: n, Method: method}
			rows = append(rows, row)

			if method == "recursive" && n > recursiveMax {
				row.Status = StatusSkipped
				row.Detail = fmt.Sprintf("above %d", recursiveMax)
				continue
			}
			if timedOut[method] {
				row.Status = StatusSkipped
				row.Detail = "timed out before"
				continue
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			t0 := time.Now()
			c, cached, err := count(ctx, n, method)
			row.Elapsed = time.Since(t0)
			cancel()

			switch {
			case errors.Is(err, context.DeadlineExceeded):
				row.Status = StatusTimeout
				timedOut[method] = true
				continue
			case err != nil:
				row.Status = StatusError
				row.Detail = err.Error()
				continue
			}

			row.Count = c
			row.Cached = cached
			row.Status = StatusOK

			if hasExpected && expected.String() != c {
				row.Status = StatusMismatch
				row.Detail = "published " + expected.String()
				continue
			}
			if cached {
				// the server keeps one count per n, whatever the method
				row.Detail = "cached, not cross-checked"
				continue
			}
			if first == "" {
				first = c
			} else if first != c {
				row.Status = StatusMismatch
				row.Detail = "other method gave " + first
			}
		}
	}

	return rows
}

func PrintTable(w io.Writer, rows []*Row) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "N\tMETHOD\tCOUNT\tTIME(ms)\tSTATUS\tDETAIL")
	for _, row := range rows {
		elapsed := fmt.Sprintf("%.3f", float64(row.Elapsed.Microseconds())/1000)
		if row.Status == StatusSkipped {
			elapsed = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", row.N, row.Method, row.Count, elapsed, row.Status, row.Detail)
	}
	tw.Flush()
}
