package render

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"

	"tasnim.dev/s3cadence/internal/cadence"
)

var (
	primary = lipgloss.Color("#33A8FF")
	muted   = lipgloss.Color("#6B7280")
	warning = lipgloss.Color("#F59E0B")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	labelStyle = lipgloss.NewStyle().
			Foreground(muted)

	noDataStyle = lipgloss.NewStyle().
			Foreground(warning)
)

// Target identifies the listing a report was run against.
type Target struct {
	Bucket    string
	Profile   string
	Prefix    string
	AccountID string
}

// Header echoes the run parameters before the result.
func Header(w io.Writer, t Target) {
	fmt.Fprintln(w, titleStyle.Render("s3cadence"))
	row(w, "bucket:", t.Bucket)
	row(w, "profile:", t.Profile)
	row(w, "prefix:", t.Prefix)
	if t.AccountID != "" {
		row(w, "account:", t.AccountID)
	}
	fmt.Fprintln(w)
}

// Stats prints the computed interval statistics.
func Stats(w io.Writer, res cadence.Result) {
	row(w, "Average time between modifications:", res.Average.String())
	row(w, "Total time for", fmt.Sprintf("%d files: %s", res.Count, Clock(res.Breakdown())))
}

// InsufficientData prints the fixed message for runs with fewer than two
// timestamps.
func InsufficientData(w io.Writer) {
	fmt.Fprintln(w, noDataStyle.Render("Not enough timestamps to calculate average."))
}

// Clock formats a breakdown as "{h}h {m}m {s}s {ms}ms".
func Clock(b cadence.Breakdown) string {
	return fmt.Sprintf("%dh %dm %ds %dms", b.Hours, b.Minutes, b.Seconds, b.Millis)
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label), value)
}
