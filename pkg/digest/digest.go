// Package digest cuts a part with restriction enzymes and returns the
// fragments with their annotations re-mapped into fragment coordinates.
package digest

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/liserjrqlxue/seqviz/pkg/alphabet"
	"github.com/liserjrqlxue/seqviz/pkg/enzyme"
	"github.com/liserjrqlxue/seqviz/pkg/match"
	"github.com/liserjrqlxue/seqviz/pkg/part"
)

// NoCutsNote is the Result note when no enzyme cuts the part.
const NoCutsNote = "no cut sites found"

// SingleCutNote is the Result note when a circular part is opened by one cut.
const SingleCutNote = "circular sequence opened at a single cut"

// Registry resolves enzyme names.
type Registry interface {
	Lookup(name string) (enzyme.Enzyme, bool)
}

type builtin struct{}

func (builtin) Lookup(name string) (enzyme.Enzyme, bool) { return enzyme.Lookup(name) }

// Cut is a cleavage point. Position is the top strand cut, CompPosition the
// bottom strand cut. On a linear part CompPosition may be 0 or len.
type Cut struct {
	Position     int         `json:"position"`
	CompPosition int         `json:"compPosition"`
	Enzymes      []string    `json:"enzymes"`
	Strand       part.Strand `json:"strand"`
}

// Fragment is one piece of a digested part. Start and End are in the
// parent's coordinates, End < Start when it spans the origin. Left and Right
// are nil at the ends of a linear part.
type Fragment struct {
	Start       int               `json:"start"`
	End         int               `json:"end"`
	Seq         string            `json:"seq"`
	CompSeq     string            `json:"compSeq"`
	Annotations []part.Annotation `json:"annotations,omitempty"`
	Left        *Cut              `json:"left,omitempty"`
	Right       *Cut              `json:"right,omitempty"`
}

// Len is the fragment length in bases.
func (f Fragment) Len() int { return len(f.Seq) }

// Result is the outcome of a digestion. Degenerate is set when the part
// comes back as a single fragment.
type Result struct {
	Fragments  []Fragment `json:"fragments"`
	Cuts       []Cut      `json:"cuts"`
	Skipped    []string   `json:"skipped,omitempty"`
	Note       string     `json:"note,omitempty"`
	Degenerate bool       `json:"degenerate"`
}

// Digester digests parts with the enzymes of one registry.
type Digester struct {
	registry Registry
}

// New returns a Digester over r, or over the built-in enzymes when r is nil.
func New(r Registry) *Digester {
	if r == nil {
		r = builtin{}
	}
	return &Digester{registry: r}
}

// Digest cuts p with the built-in enzymes.
func Digest(ctx context.Context, names []string, p *part.Part) (*Result, error) {
	return New(nil).Digest(ctx, names, p)
}

// Digest cuts p with every named enzyme. Unknown names are listed in
// Result.Skipped. p is not modified.
func (d *Digester) Digest(ctx context.Context, names []string, p *part.Part) (*Result, error) {
	p = p.Normalize()
	res := &Result{}
	if p.Len() == 0 {
		return res, nil
	}

	cuts, skipped, err := d.cuts(ctx, names, p)
	if err != nil {
		return nil, err
	}
	res.Cuts, res.Skipped = cuts, skipped

	switch {
	case len(cuts) == 0:
		res.Note = NoCutsNote
		res.Degenerate = true
		res.Fragments = []Fragment{{
			Start:       0,
			End:         p.Len(),
			Seq:         p.Seq,
			CompSeq:     p.CompSeq,
			Annotations: append([]part.Annotation(nil), p.Annotations...),
		}}
	case p.Circular && len(cuts) == 1:
		res.Note = SingleCutNote
		res.Degenerate = true
		c := &res.Cuts[0]
		res.Fragments = []Fragment{fragment(p, c.Position, p.Len(), c, c)}
	case p.Circular:
		for i := range res.Cuts {
			left, right := &res.Cuts[i], &res.Cuts[(i+1)%len(res.Cuts)]
			length := right.Position - left.Position
			if length <= 0 {
				length += p.Len()
			}
			res.Fragments = append(res.Fragments, fragment(p, left.Position, length, left, right))
		}
	default:
		start := 0
		var left *Cut
		for i := range res.Cuts {
			right := &res.Cuts[i]
			res.Fragments = append(res.Fragments, fragment(p, start, right.Position-start, left, right))
			start, left = right.Position, right
		}
		res.Fragments = append(res.Fragments, fragment(p, start, p.Len()-start, left, nil))
	}

	slog.Debug("digest", "part", p.Name, "enzymes", names, "cuts", len(res.Cuts), "fragments", len(res.Fragments))
	return res, nil
}

// fragment slices length bases from start, wrapping past the origin.
func fragment(p *part.Part, start, length int, left, right *Cut) Fragment {
	r := part.Span(start, length, p.Len())
	f := Fragment{Start: r.Start, End: r.End, Left: left, Right: right}
	if end := start + length; end <= p.Len() {
		f.Seq, f.CompSeq = p.Seq[start:end], p.CompSeq[start:end]
	} else {
		end -= p.Len()
		f.Seq = p.Seq[start:] + p.Seq[:end]
		f.CompSeq = p.CompSeq[start:] + p.CompSeq[:end]
	}
	f.Annotations = remap(p.Annotations, p.Len(), p.Circular, start, length)
	return f
}

// cuts finds every cut of every known enzyme, sorted and merged by top
// strand position.
func (d *Digester) cuts(ctx context.Context, names []string, p *part.Part) (cuts []Cut, skipped []string, err error) {
	var (
		n    = p.Len()
		seen = make(map[string]bool)
		byAt = make(map[int]*Cut)
	)
	add := func(top, bottom int, name string, s part.Strand) {
		if p.Circular {
			top, bottom = top%n, bottom%n
		} else if top <= 0 || top >= n {
			return
		}
		c, ok := byAt[top]
		if !ok {
			c = &Cut{Position: top, CompPosition: bottom, Strand: s}
			byAt[top] = c
		}
		for _, e := range c.Enzymes {
			if e == name {
				return
			}
		}
		c.Enzymes = append(c.Enzymes, name)
	}

	for _, name := range names {
		e, ok := d.registry.Lookup(name)
		if !ok {
			skipped = append(skipped, name)
			continue
		}
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true

		k := len(e.RecognitionSeq)
		fwd, err := match.Compile(e.RecognitionSeq, 0)
		if err != nil {
			return nil, nil, fmt.Errorf("enzyme %s: %w", e.Name, err)
		}
		hits, err := fwd.FindInSequence(ctx, p.Seq, p.Circular)
		if err != nil {
			return nil, nil, err
		}
		for _, h := range hits {
			add(h.Pos+e.SequenceCutIdx, h.Pos+e.ComplementCutIdx, e.Name, part.Top)
		}
		if e.Palindromic() {
			continue
		}
		rev := match.MustCompile(alphabet.ReverseComplement(e.RecognitionSeq), 0)
		if hits, err = rev.FindInSequence(ctx, p.Seq, p.Circular); err != nil {
			return nil, nil, err
		}
		for _, h := range hits {
			add(h.Pos+k-e.ComplementCutIdx, h.Pos+k-e.SequenceCutIdx, e.Name, part.Bottom)
		}
	}

	for _, c := range byAt {
		cuts = append(cuts, *c)
	}
	sort.Slice(cuts, func(i, j int) bool { return cuts[i].Position < cuts[j].Position })
	return cuts, skipped, nil
}
