// Package match finds a query, which may carry IUPAC wildcards, in a target
// sequence, either exactly or within a mismatch budget. It also owns the
// circular wrap-around technique shared by every circular-aware caller.
package match

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/liserjrqlxue/seqviz/pkg/alphabet"
	"github.com/liserjrqlxue/seqviz/pkg/util"
)

var (
	// ErrInvalidQuery is returned for an empty query or one holding characters
	// outside the nucleotide and wildcard alphabet.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrTooManyHits is returned when a scan exceeds its hit limit.
	ErrTooManyHits = errors.New("too many hits")
)

// Hit is one match of the query in the target.
type Hit struct {
	Pos        int
	Mismatches []int // 0-based offsets in the query that did not pair
}

// Matcher is a compiled query. It is safe for concurrent use.
type Matcher struct {
	query string
	maxMM int
	limit int
	exact *regexp.Regexp
}

// Compile prepares query for scanning with up to maxMismatches mismatches.
// Case, whitespace and U/T differences in the query are normalized away.
func Compile(query string, maxMismatches int) (*Matcher, error) {
	q := alphabet.Normalize(util.Blank.ReplaceAllString(query, ""))
	if q == "" {
		return nil, fmt.Errorf("%w: empty query", ErrInvalidQuery)
	}
	if err := alphabet.Valid(q); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	if maxMismatches < 0 {
		maxMismatches = 0
	}
	m := &Matcher{query: q, maxMM: maxMismatches}
	if maxMismatches == 0 && !util.ACGT.MatchString(q) {
		var expr strings.Builder
		for i := 0; i < len(q); i++ {
			expr.WriteString(alphabet.Class(q[i]))
		}
		m.exact = regexp.MustCompile(expr.String())
	}
	return m, nil
}

// MustCompile is like Compile but panics on an invalid query.
func MustCompile(query string, maxMismatches int) *Matcher {
	m, err := Compile(query, maxMismatches)
	if err != nil {
		panic(err)
	}
	return m
}

// WithLimit returns a copy of m that fails with ErrTooManyHits once more
// than n hits are found. n <= 0 means unlimited.
func (m *Matcher) WithLimit(n int) *Matcher {
	c := *m
	c.limit = n
	return &c
}

// Query returns the normalized query.
func (m *Matcher) Query() string { return m.query }

// Len is the query length.
func (m *Matcher) Len() int { return len(m.query) }

// MaxMismatches is the mismatch budget.
func (m *Matcher) MaxMismatches() int { return m.maxMM }

// EffectiveLength is the query length left once the mismatch budget is spent.
// Callers use it to refuse queries so short they would match almost anywhere.
func EffectiveLength(query string, maxMismatches int) int {
	return len(util.Blank.ReplaceAllString(query, "")) - maxMismatches
}

// WrapText returns the text to scan for seq. A circular sequence gets its
// first k-1 bases appended so a k-long match may cross the origin.
func WrapText(seq string, k int, circular bool) string {
	if !circular || k <= 1 || len(seq) == 0 {
		return seq
	}
	extra := k - 1
	if extra > len(seq) {
		// a query longer than the circle wraps more than once
		return seq + strings.Repeat(seq, extra/len(seq)) + seq[:extra%len(seq)]
	}
	return seq + seq[:extra]
}

// FindInSequence scans seq, wrapping around the origin when circular. Every
// returned Pos is in [0, len(seq)).
func (m *Matcher) FindInSequence(ctx context.Context, seq string, circular bool) ([]Hit, error) {
	text := WrapText(seq, m.Len(), circular)
	hits, err := m.FindAll(ctx, text)
	if !circular {
		return hits, err
	}
	out := hits[:0]
	for _, h := range hits {
		if h.Pos < len(seq) {
			out = append(out, h)
		}
	}
	return out, err
}

// FindAll returns every offset where the query matches text, overlapping
// matches included, in ascending order.
func (m *Matcher) FindAll(ctx context.Context, text string) ([]Hit, error) {
	text = alphabet.Normalize(text)
	switch {
	case m.maxMM > 0:
		return m.scanMismatch(ctx, text)
	case m.exact != nil:
		return m.scanRegexp(ctx, text)
	default:
		return m.scanIndex(ctx, text)
	}
}

func (m *Matcher) add(out []Hit, h Hit) ([]Hit, error) {
	out = append(out, h)
	if m.limit > 0 && len(out) > m.limit {
		return out, fmt.Errorf("%w: more than %d matches for %s", ErrTooManyHits, m.limit, m.query)
	}
	return out, nil
}

// scanIndex is the unambiguous exact fast path.
func (m *Matcher) scanIndex(ctx context.Context, text string) (out []Hit, err error) {
	for i := 0; ; {
		j := strings.Index(text[i:], m.query)
		if j < 0 {
			return out, nil
		}
		pos := i + j
		if out, err = m.add(out, Hit{Pos: pos}); err != nil {
			return out, err
		}
		if len(out)%util.ScanCheckInterval == 0 {
			if err = ctx.Err(); err != nil {
				return out, err
			}
		}
		i = pos + 1
	}
}

func (m *Matcher) scanRegexp(ctx context.Context, text string) (out []Hit, err error) {
	for i := 0; i < len(text); {
		loc := m.exact.FindStringIndex(text[i:])
		if loc == nil {
			return out, nil
		}
		pos := i + loc[0]
		if out, err = m.add(out, Hit{Pos: pos}); err != nil {
			return out, err
		}
		if len(out)%util.ScanCheckInterval == 0 {
			if err = ctx.Err(); err != nil {
				return out, err
			}
		}
		// step one past the hit start so overlapping matches are kept
		i = pos + 1
	}
	return out, nil
}

func (m *Matcher) scanMismatch(ctx context.Context, text string) (out []Hit, err error) {
	n := len(m.query)
	end := len(text) - n
window:
	for pos := 0; pos <= end; pos++ {
		if pos%util.ScanCheckInterval == 0 {
			if err = ctx.Err(); err != nil {
				return out, err
			}
		}
		var idx []int
		for j := 0; j < n; j++ {
			if !alphabet.Pairs(m.query[j], text[pos+j]) {
				idx = append(idx, j)
				if len(idx) > m.maxMM {
					continue window
				}
			}
		}
		if out, err = m.add(out, Hit{Pos: pos, Mismatches: idx}); err != nil {
			return out, err
		}
	}
	return out, nil
}
