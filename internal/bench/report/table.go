package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n\n", r.Meta.Suite)
	writeSummary(tw, r)
	writeCategoryTable(tw, r.Categories)
	writeCaseTable(tw, r.Cases)

	return tw.Flush()
}

func writeSummary(tw *tabwriter.Writer, r *Report) {
	s := r.Summary
	fmt.Fprintf(tw, "Passed %d/%d (%.2f%%), failed %d, errors %d, unstable %d\n",
		s.Passed, s.Total, s.PassRate*100, s.Failed, s.Errors, s.Unstable)
	fmt.Fprintf(tw, "Latency p50 %s, p95 %s, max %s over %d samples\n\n",
		fmtDuration(s.Latency.P50), fmtDuration(s.Latency.P95), fmtDuration(s.Latency.Max), s.Latency.Samples)
}

func writeCategoryTable(tw *tabwriter.Writer, cats []CategoryEntry) {
	writeHeader(tw, "Category", "Cases", "Passed", "Pass rate", "Mean latency")
	for _, c := range cats {
		fmt.Fprintln(tw, strings.Join([]string{
			c.Category.String(),
			fmt.Sprintf("%d", c.Total),
			fmt.Sprintf("%d", c.Passed),
			fmt.Sprintf("%.4f", c.PassRate),
			fmtDuration(c.MeanLatency),
		}, "\t"))
	}
	fmt.Fprintln(tw)
}

func writeCaseTable(tw *tabwriter.Writer, cases []Entry) {
	writeHeader(tw, "Case", "Category", "p50", "p95", "Answers", "Status", "Answer")
	for _, e := range cases {
		status := "OK"
		switch {
		case e.Error != "":
			status = "ERR"
		case !e.Passed:
			status = "FAIL"
		}
		fmt.Fprintln(tw, strings.Join([]string{
			e.CaseID,
			e.Category.String(),
			fmtDuration(e.Latency.P50),
			fmtDuration(e.Latency.P95),
			fmt.Sprintf("%d", e.Answers),
			status,
			e.Line,
		}, "\t"))
	}
	fmt.Fprintln(tw)

	for _, e := range cases {
		if e.Error != "" {
			fmt.Fprintf(tw, "%s: %s\n", e.CaseID, e.Error)
		}
		for _, f := range e.Failures {
			fmt.Fprintf(tw, "%s: %s\n", e.CaseID, f)
		}
	}
}

func writeHeader(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
	sep := make([]string, len(cols))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
