package compare

import (
	"fmt"
	"strings"
)

const (
	candidatePrefix = "CANDIDATE-MP-"
	topRanks        = 7
	unknownParty    = "Unknown"
)

// Party numbers excluded from matching regardless of numeric equality:
// "06" is United Thai Nation, "09" is Pheu Thai.
var excludedNumbers = map[string]bool{
	"06": true,
	"09": true,
}

// Winner pulls the winning candidate's party and MP number out of a
// constituency file. The MP number is whatever follows the literal
// prefix CANDIDATE-MP-<area>, compared as a string so leading zeros
// survive. ok is false when the file has no entries, the prefix does
// not match, or nothing follows it.
func Winner(area string, mp AreaFile) (party, number string, ok bool) {
	if len(mp.Entries) == 0 {
		return "", "", false
	}
	top := mp.Entries[0]
	party = top.PartyCode
	if party == "" {
		party = unknownParty
	}

	prefix := candidatePrefix + area
	if !strings.HasPrefix(top.CandidateCode, prefix) {
		return "", "", false
	}
	number = top.CandidateCode[len(prefix):]
	if number == "" {
		return "", "", false
	}
	return party, number, true
}

// MatchPartyList scans the top 7 party list entries for party numbers
// equal to the MP number and builds the report row for the area.
// Excluded party numbers never match.
func MatchPartyList(area, number, party string, pl AreaFile) (Row, []Match) {
	entries := pl.Entries
	if len(entries) > topRanks {
		entries = entries[:topRanks]
	}

	var matches []Match
	var labels []string
	for _, e := range entries {
		last2 := lastTwo(e.PartyCode)
		if excludedNumbers[last2] {
			continue
		}
		if last2 != number {
			continue
		}
		matches = append(matches, Match{
			Area:        area,
			MPNumber:    number,
			MPParty:     party,
			PLRank:      e.Rank,
			PLPartyCode: e.PartyCode,
		})
		labels = append(labels, fmt.Sprintf("Rank %d (Party List %s)", e.Rank, last2))
	}

	status := "No Match"
	if len(labels) > 0 {
		status = "MATCH: " + strings.Join(labels, ", ")
	}
	row := Row{
		Area:     area,
		MPNumber: number,
		MPParty:  party,
		Matched:  len(matches) > 0,
		Status:   status,
	}
	return row, matches
}

func lastTwo(code string) string {
	if len(code) < 2 {
		return code
	}
	return code[len(code)-2:]
}
