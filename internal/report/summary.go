package report

import (
	"math"
	"sort"

	"github.com/HRNPH/election-69-analyzer/internal/compare"
)

// PartyCount is one summary line: how many party list matches the
// winners of one MP party produced across all areas.
type PartyCount struct {
	PartyCode  string `json:"party_code"`
	MatchCount int    `json:"match_count"`
}

// Summarize counts matches per MP party, sorted by count descending.
// The sort is stable so parties with equal counts keep first-seen
// order.
func Summarize(matches []compare.Match) []PartyCount {
	counts := make(map[string]int)
	var order []string
	for _, m := range matches {
		if _, seen := counts[m.MPParty]; !seen {
			order = append(order, m.MPParty)
		}
		counts[m.MPParty]++
	}

	summary := make([]PartyCount, 0, len(order))
	for _, p := range order {
		summary = append(summary, PartyCount{PartyCode: p, MatchCount: counts[p]})
	}
	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].MatchCount > summary[j].MatchCount
	})
	return summary
}

// MatchRate is the matched-area percentage rounded to two decimals,
// zero when nothing was processed.
func MatchRate(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(matched) / float64(total) * 100
	return math.Round(rate*100) / 100
}
