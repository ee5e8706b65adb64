package compare

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

const fileExt = ".json"

// Comparer walks the constituency directory, pairs each area file with
// its party list counterpart and accumulates rows and matches. One bad
// area never aborts the batch.
type Comparer struct {
	MPDir string
	PLDir string
	Log   zerolog.Logger
}

// Run processes every paired area in sorted filename order. It fails
// only when one of the two input directories is missing; per-area
// problems are logged and skipped.
func (c Comparer) Run() (Result, error) {
	for _, dir := range []string{c.MPDir, c.PLDir} {
		if _, err := os.Stat(dir); err != nil {
			return Result{}, fmt.Errorf("input directory %s not found", dir)
		}
	}

	areas, err := c.areas()
	if err != nil {
		return Result{}, err
	}

	var res Result
	for _, area := range areas {
		plPath := filepath.Join(c.PLDir, area+fileExt)
		if _, err := os.Stat(plPath); err != nil {
			// Incomplete datasets are expected mid-scrape.
			continue
		}

		mp, err := readAreaFile(filepath.Join(c.MPDir, area+fileExt))
		if err != nil {
			c.Log.Warn().Str("area", area).Err(err).Msg("skipping area")
			continue
		}
		party, number, ok := Winner(area, mp)
		if !ok {
			continue
		}

		pl, err := readAreaFile(plPath)
		if err != nil {
			c.Log.Warn().Str("area", area).Err(err).Msg("skipping area")
			continue
		}

		row, matches := MatchPartyList(area, number, party, pl)
		res.Rows = append(res.Rows, row)
		res.Matches = append(res.Matches, matches...)
	}
	return res, nil
}

// areas lists area codes present in the constituency directory, sorted
// for a deterministic report order.
func (c Comparer) areas() ([]string, error) {
	entries, err := os.ReadDir(c.MPDir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.MPDir, err)
	}
	var areas []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		areas = append(areas, strings.TrimSuffix(e.Name(), fileExt))
	}
	sort.Strings(areas)
	return areas, nil
}

func readAreaFile(path string) (AreaFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AreaFile{}, err
	}
	var af AreaFile
	if err := json.Unmarshal(data, &af); err != nil {
		return AreaFile{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return af, nil
}
