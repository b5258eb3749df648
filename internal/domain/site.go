package domain

// SiteResolution is the outcome of a site search. A zero SiteID means the
// attempt ladder was exhausted without a usable match.
type SiteResolution struct {
	SiteID int64
	// Candidate is the raw carrier record the id was taken from.
	Candidate map[string]any
	// MatchedPayload is the search payload of the attempt that succeeded.
	MatchedPayload map[string]any
	// CandidateCount is the size of the candidate list in that attempt.
	CandidateCount int
	// Attempts lists every search payload actually issued, in order.
	Attempts []map[string]any
	// LastResponse is the raw body of the final carrier response, kept
	// for diagnostics when resolution fails.
	LastResponse string
}

// Resolved reports whether a usable site id was found.
func (r SiteResolution) Resolved() bool {
	return r.SiteID > 0
}
