package compare

// Entry is one line of a per-area result file. Constituency (MP) files
// carry candidateCode, party list (PL) files carry rank; both carry
// partyCode.
type Entry struct {
	CandidateCode string `json:"candidateCode,omitempty"`
	PartyCode     string `json:"partyCode"`
	Rank          int    `json:"rank,omitempty"`
}

// AreaFile is the shared top-level layout of both input directories,
// entries ordered by rank ascending.
type AreaFile struct {
	Entries []Entry `json:"entries"`
}

// Match links one area's winning MP number to a party list entry whose
// party number equals it.
type Match struct {
	Area        string `json:"area"`
	MPNumber    string `json:"mp_number"`
	MPParty     string `json:"mp_party"`
	PLRank      int    `json:"pl_rank"`
	PLPartyCode string `json:"pl_party_code"`
}

// Row is the per-area report line, emitted whether or not anything
// matched.
type Row struct {
	Area     string `json:"area"`
	MPNumber string `json:"mp_number"`
	MPParty  string `json:"mp_party"`
	Matched  bool   `json:"matched"`
	Status   string `json:"status"`
}

// Result is everything one run produced, rows in area order.
type Result struct {
	Rows    []Row
	Matches []Match
}
