package compare

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArea(t *testing.T, dir, area, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, area+".json"), []byte(content), 0o644))
}

func newTestComparer(t *testing.T) (Comparer, string, string) {
	t.Helper()
	root := t.TempDir()
	mpDir := filepath.Join(root, "mp")
	plDir := filepath.Join(root, "pl")
	require.NoError(t, os.Mkdir(mpDir, 0o755))
	require.NoError(t, os.Mkdir(plDir, 0o755))
	return Comparer{MPDir: mpDir, PLDir: plDir, Log: zerolog.Nop()}, mpDir, plDir
}

func TestComparerRun_MissingInputDirsFatal(t *testing.T) {
	c := Comparer{MPDir: "does/not/exist", PLDir: "also/missing", Log: zerolog.Nop()}
	_, err := c.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestComparerRun_EndToEnd(t *testing.T) {
	c, mpDir, plDir := newTestComparer(t)

	writeArea(t, mpDir, "100", `{"entries":[{"candidateCode":"CANDIDATE-MP-10005","partyCode":"PARTY-A"}]}`)
	writeArea(t, plDir, "100", `{"entries":[
		{"partyCode":"PL-1101","rank":1},
		{"partyCode":"PL-1102","rank":2},
		{"partyCode":"PL-1105","rank":3}
	]}`)

	writeArea(t, mpDir, "101", `{"entries":[{"candidateCode":"CANDIDATE-MP-10109","partyCode":"PARTY-B"}]}`)
	writeArea(t, plDir, "101", `{"entries":[{"partyCode":"PL-1109","rank":1}]}`)

	res, err := c.Run()
	require.NoError(t, err)

	require.Len(t, res.Rows, 2)
	assert.Equal(t, "100", res.Rows[0].Area)
	assert.True(t, res.Rows[0].Matched)
	assert.Equal(t, "MATCH: Rank 3 (Party List 05)", res.Rows[0].Status)

	assert.Equal(t, "101", res.Rows[1].Area)
	assert.False(t, res.Rows[1].Matched)
	assert.Equal(t, "No Match", res.Rows[1].Status)

	require.Len(t, res.Matches, 1)
	assert.Equal(t, "PARTY-A", res.Matches[0].MPParty)
}

func TestComparerRun_SortedAreaOrder(t *testing.T) {
	c, mpDir, plDir := newTestComparer(t)

	for _, area := range []string{"210", "003", "105"} {
		writeArea(t, mpDir, area, `{"entries":[{"candidateCode":"CANDIDATE-MP-`+area+`01","partyCode":"P"}]}`)
		writeArea(t, plDir, area, `{"entries":[]}`)
	}

	res, err := c.Run()
	require.NoError(t, err)

	require.Len(t, res.Rows, 3)
	assert.Equal(t, "003", res.Rows[0].Area)
	assert.Equal(t, "105", res.Rows[1].Area)
	assert.Equal(t, "210", res.Rows[2].Area)
}

func TestComparerRun_SkipsUnpairedArea(t *testing.T) {
	c, mpDir, _ := newTestComparer(t)

	writeArea(t, mpDir, "100", `{"entries":[{"candidateCode":"CANDIDATE-MP-10005","partyCode":"P"}]}`)

	res, err := c.Run()
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
}

func TestComparerRun_BadFileDoesNotAbortBatch(t *testing.T) {
	c, mpDir, plDir := newTestComparer(t)

	writeArea(t, mpDir, "100", `{not json`)
	writeArea(t, plDir, "100", `{"entries":[]}`)
	writeArea(t, mpDir, "101", `{"entries":[{"candidateCode":"CANDIDATE-MP-10102","partyCode":"P"}]}`)
	writeArea(t, plDir, "101", `{"entries":[{"partyCode":"PL-1102","rank":1}]}`)

	res, err := c.Run()
	require.NoError(t, err)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, "101", res.Rows[0].Area)
	assert.True(t, res.Rows[0].Matched)
}

func TestComparerRun_BadPartyListFileSkipsArea(t *testing.T) {
	c, mpDir, plDir := newTestComparer(t)

	writeArea(t, mpDir, "100", `{"entries":[{"candidateCode":"CANDIDATE-MP-10005","partyCode":"P"}]}`)
	writeArea(t, plDir, "100", `not json at all`)

	res, err := c.Run()
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
}

func TestComparerRun_SkipsEmptyAndUnmatchedWinners(t *testing.T) {
	c, mpDir, plDir := newTestComparer(t)

	// No entries at all.
	writeArea(t, mpDir, "100", `{"entries":[]}`)
	writeArea(t, plDir, "100", `{"entries":[]}`)
	// Winner code does not carry the expected prefix.
	writeArea(t, mpDir, "101", `{"entries":[{"candidateCode":"SOMETHING-ELSE","partyCode":"P"}]}`)
	writeArea(t, plDir, "101", `{"entries":[]}`)

	res, err := c.Run()
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
}

func TestComparerRun_IgnoresNonJSONFiles(t *testing.T) {
	c, mpDir, plDir := newTestComparer(t)

	require.NoError(t, os.WriteFile(filepath.Join(mpDir, "README.txt"), []byte("notes"), 0o644))
	writeArea(t, mpDir, "100", `{"entries":[{"candidateCode":"CANDIDATE-MP-10001","partyCode":"P"}]}`)
	writeArea(t, plDir, "100", `{"entries":[]}`)

	res, err := c.Run()
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "100", res.Rows[0].Area)
}
