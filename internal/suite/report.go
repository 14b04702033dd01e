package suite

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Result, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n\n", r.Suite)

	header := []string{"Case", "Input", "Expected", "Got", "Status", "Latency"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, c := range r.Cases {
		status := "PASS"
		if !c.Passed {
			status = "FAIL: " + c.Message
		}
		row := []string{
			c.ID,
			c.Input,
			fmtExpected(c),
			fmtGot(c),
			status,
			fmtDuration(c.Latency),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintf(tw, "\nPassed: %d\tFailed: %d\tTotal: %s\tp95: %s\n",
		r.Passed, r.Failed, fmtDuration(r.Duration), fmtDuration(r.Latency.P95))

	tw.Flush()
}

func WriteJSON(r *Result, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func fmtExpected(c CaseResult) string {
	if c.Expect != nil {
		return fmt.Sprintf("%g", *c.Expect)
	}
	return string(c.Want) + " error"
}

func fmtGot(c CaseResult) string {
	if c.GotError != ErrorNone {
		return string(c.GotError) + " error"
	}
	return fmt.Sprintf("%g", c.Got)
}

func fmtDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1e3)
	default:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	}
}
