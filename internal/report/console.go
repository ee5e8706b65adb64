package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/HRNPH/election-69-analyzer/internal/compare"
)

const (
	tableWidth   = 50
	summaryWidth = 40
)

// Print renders the full console report: banner, one row per area in
// load order, then the per-party summary block.
func Print(w io.Writer, res compare.Result) {
	fmt.Fprintln(w, "--- MP winning number vs Top 8 Party List comparison ---")
	fmt.Fprintln(w, "Logic: Ignores Party 06 and 09")
	fmt.Fprintf(w, "%-6s | %-6s | %-10s | %-30s\n", "Area", "MP Num", "MP Party", "Status")
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))

	for _, r := range res.Rows {
		fmt.Fprintf(w, "%-6s | %-6s | %-10s | %s\n", r.Area, r.MPNumber, r.MPParty, r.Status)
	}

	printSummary(w, Summarize(res.Matches))
}

func printSummary(w io.Writer, summary []PartyCount) {
	rule := strings.Repeat("=", summaryWidth)
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, center("SUMMARY BY PARTY (DESC)", summaryWidth))
	fmt.Fprintln(w, rule)

	if len(summary) == 0 {
		fmt.Fprintln(w, "No matches discovered.")
	} else {
		fmt.Fprintf(w, "%-20s | %-10s\n", "Party Code", "Match Count")
		fmt.Fprintln(w, strings.Repeat("-", summaryWidth))
		for _, pc := range summary {
			fmt.Fprintf(w, "%-20s | %-10d\n", pc.PartyCode, pc.MatchCount)
		}
	}
	fmt.Fprintln(w, rule)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
