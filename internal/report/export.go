package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/HRNPH/election-69-analyzer/internal/compare"
)

const (
	resultsFile = "results.json"
	historyFile = "history.json"
)

// Results is the full export document, overwritten on every export run.
type Results struct {
	Timestamp      string          `json:"timestamp"`
	TotalAreas     int             `json:"total_areas"`
	MatchedAreas   int             `json:"matched_areas"`
	MatchRate      float64         `json:"match_rate"`
	SummaryByParty []PartyCount    `json:"summary_by_party"`
	Matches        []compare.Match `json:"matches"`
	Details        []compare.Row   `json:"details"`
}

// Snapshot is the trimmed form appended to the history file.
type Snapshot struct {
	Timestamp      string       `json:"timestamp"`
	TotalAreas     int          `json:"total_areas"`
	MatchedAreas   int          `json:"matched_areas"`
	MatchRate      float64      `json:"match_rate"`
	SummaryByParty []PartyCount `json:"summary_by_party"`
}

// Export writes the results document and appends a snapshot to the
// history file under outDir, creating the directory if needed. The
// history is a full read-modify-write; a missing or corrupt history
// starts over empty. Returns the two paths written.
func Export(outDir string, res compare.Result, now time.Time) (resultsPath, historyPath string, err error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output directory: %w", err)
	}

	matched := 0
	for _, r := range res.Rows {
		if r.Matched {
			matched++
		}
	}

	doc := Results{
		Timestamp:      now.UTC().Format(time.RFC3339),
		TotalAreas:     len(res.Rows),
		MatchedAreas:   matched,
		MatchRate:      MatchRate(matched, len(res.Rows)),
		SummaryByParty: Summarize(res.Matches),
		Matches:        res.Matches,
		Details:        res.Rows,
	}
	// Empty runs still export as [] rather than null.
	if doc.SummaryByParty == nil {
		doc.SummaryByParty = []PartyCount{}
	}
	if doc.Matches == nil {
		doc.Matches = []compare.Match{}
	}
	if doc.Details == nil {
		doc.Details = []compare.Row{}
	}

	resultsPath = filepath.Join(outDir, resultsFile)
	if err := writeJSON(resultsPath, doc); err != nil {
		return "", "", fmt.Errorf("write results: %w", err)
	}

	historyPath = filepath.Join(outDir, historyFile)
	history := append(loadHistory(historyPath), Snapshot{
		Timestamp:      doc.Timestamp,
		TotalAreas:     doc.TotalAreas,
		MatchedAreas:   doc.MatchedAreas,
		MatchRate:      doc.MatchRate,
		SummaryByParty: doc.SummaryByParty,
	})
	if err := writeJSON(historyPath, history); err != nil {
		return "", "", fmt.Errorf("write history: %w", err)
	}
	return resultsPath, historyPath, nil
}

// loadHistory tolerates a missing or unreadable history file and a file
// that no longer parses; both start a fresh history.
func loadHistory(path string) []Snapshot {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var history []Snapshot
	if err := json.Unmarshal(data, &history); err != nil {
		return nil
	}
	return history
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
