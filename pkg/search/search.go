// Package search runs a query over both strands of a sequence and returns
// an ordered, navigable list of matches.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/liserjrqlxue/seqviz/pkg/alphabet"
	"github.com/liserjrqlxue/seqviz/pkg/match"
	"github.com/liserjrqlxue/seqviz/pkg/part"
	"github.com/liserjrqlxue/seqviz/pkg/util"
)

// ErrSearchTooBroad is returned when a query is too short for its mismatch
// budget or matches too often to be useful.
var ErrSearchTooBroad = errors.New("search too broad")

// Match is one hit on the sequence.
type Match struct {
	Start      int          `json:"start"`
	End        int          `json:"end"`
	Strand     part.Strand  `json:"strand"`
	Mismatches []part.Range `json:"mismatches,omitempty"`
	Index      int          `json:"index"`
}

// Range is the span the match covers.
func (m Match) Range() part.Range { return part.Range{Start: m.Start, End: m.End} }

// Options tune a search. Zero values take the package defaults and a
// negative MaxResults disables the hit guard.
type Options struct {
	Mismatches int
	Circular   bool
	MaxResults int
	MinLength  int
	// TopOnly skips the reverse complement scan. AATTC in GGAATTCGGAATTC
	// gives starts 2 and 9 with TopOnly; both strands add 1 and 8 (GAATT).
	TopOnly bool
}

func (o Options) maxResults() int {
	switch {
	case o.MaxResults < 0:
		return 0
	case o.MaxResults == 0:
		return util.SearchResultMax
	}
	return o.MaxResults
}

func (o Options) minLength() int {
	if o.MinLength <= 0 {
		return util.QueryLengthMin
	}
	return o.MinLength
}

// Search finds query in seq on both strands. Bottom strand hits come from
// scanning the top strand text with the reverse complement of the query, so
// every position is in top strand coordinates.
func Search(ctx context.Context, query, seq string, opts Options) (*Results, error) {
	var res = &Results{}
	query = util.Blank.ReplaceAllString(query, "")
	seq, _ = alphabet.ComplementSeq(seq)
	if query == "" || seq == "" {
		return res, nil
	}
	if opts.Mismatches < 0 {
		opts.Mismatches = 0
	}

	top, err := match.Compile(query, opts.Mismatches)
	if err != nil {
		return nil, err
	}
	if match.EffectiveLength(top.Query(), opts.Mismatches) < opts.minLength() {
		return nil, fmt.Errorf("%w: %q with %d mismatches", ErrSearchTooBroad, query, opts.Mismatches)
	}
	top = top.WithLimit(opts.maxResults())
	bottom := match.MustCompile(alphabet.ReverseComplement(top.Query()), opts.Mismatches).WithLimit(opts.maxResults())

	type scan struct {
		m *match.Matcher
		s part.Strand
	}
	var (
		matches []Match
		scans   = []scan{{top, part.Top}, {bottom, part.Bottom}}
	)
	if opts.TopOnly {
		scans = scans[:1]
	}
	for _, strand := range scans {
		hits, err := strand.m.FindInSequence(ctx, seq, opts.Circular)
		if err != nil {
			if errors.Is(err, match.ErrTooManyHits) {
				return nil, fmt.Errorf("%w: %v", ErrSearchTooBroad, err)
			}
			return nil, err
		}
		for _, h := range hits {
			matches = append(matches, newMatch(h, strand.s, strand.m.Len(), len(seq)))
		}
	}

	res.Matches = collate(matches)
	slog.Debug("search", "query", top.Query(), "mismatches", opts.Mismatches, "circular", opts.Circular, "matches", len(res.Matches))
	return res, nil
}

func newMatch(h match.Hit, s part.Strand, k, seqLen int) Match {
	r := part.Span(h.Pos, k, seqLen)
	m := Match{Start: r.Start, End: r.End, Strand: s}
	for _, run := range util.Runs(h.Mismatches) {
		m.Mismatches = append(m.Mismatches, part.Span(h.Pos+run.Start, run.End-run.Start, seqLen))
	}
	return m
}

// collate sorts by start then strand, drops duplicate (start, strand) pairs
// and assigns ranks.
func collate(matches []Match) []Match {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		return matches[i].Strand < matches[j].Strand
	})
	out := matches[:0]
	for i, m := range matches {
		if i > 0 && m.Start == matches[i-1].Start && m.Strand == matches[i-1].Strand {
			continue
		}
		m.Index = len(out)
		out = append(out, m)
	}
	return out
}
