package search

// Results is the ordered match list plus the focused index used when
// cycling through results.
type Results struct {
	Matches []Match `json:"results"`
	Index   int     `json:"index"`
}

// Len is the number of matches.
func (r *Results) Len() int { return len(r.Matches) }

// Next is the index after i, wrapping to 0.
func (r *Results) Next(i int) int {
	if len(r.Matches) == 0 {
		return 0
	}
	return (i + 1) % len(r.Matches)
}

// Prev is the index before i, wrapping to the last match.
func (r *Results) Prev(i int) int {
	n := len(r.Matches)
	if n == 0 {
		return 0
	}
	return ((i-1)%n + n) % n
}

// Current returns the focused match, false when there are none.
func (r *Results) Current() (Match, bool) {
	if r.Index < 0 || r.Index >= len(r.Matches) {
		return Match{}, false
	}
	return r.Matches[r.Index], true
}

// Step moves the focus forward (delta > 0) or back (delta < 0) and returns
// the newly focused match.
func (r *Results) Step(delta int) (Match, bool) {
	switch {
	case delta > 0:
		r.Index = r.Next(r.Index)
	case delta < 0:
		r.Index = r.Prev(r.Index)
	}
	return r.Current()
}
