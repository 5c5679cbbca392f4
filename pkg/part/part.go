// Package part is the sequence model shared by the engines: a Part is a
// named sequence with annotations, circular or linear, and Range/Strand
// describe positions on it.
package part

import (
	"fmt"
	"strings"

	"github.com/liserjrqlxue/seqviz/pkg/alphabet"
	"github.com/liserjrqlxue/seqviz/pkg/util"
)

// Strand is the strand a result sits on.
type Strand int

const (
	Top Strand = iota
	Bottom
)

func (s Strand) String() string {
	if s == Bottom {
		return "BOTTOM"
	}
	return "TOP"
}

// MarshalText encodes the strand as TOP or BOTTOM.
func (s Strand) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts TOP/BOTTOM and the +/- and 1/-1 spellings.
func (s *Strand) UnmarshalText(b []byte) error {
	switch strings.ToUpper(string(b)) {
	case "TOP", "+", "1", "FORWARD", "":
		*s = Top
	case "BOTTOM", "-", "-1", "REVERSE":
		*s = Bottom
	default:
		return fmt.Errorf("unknown strand %q", b)
	}
	return nil
}

// Range is a half-open [Start,End) span. End < Start means the span
// crosses the origin of a circular sequence.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Wraps reports whether r crosses the origin.
func (r Range) Wraps() bool { return r.End < r.Start }

// Len is the span length on a sequence of seqLen bases.
func (r Range) Len(seqLen int) int {
	if r.Wraps() {
		return seqLen - r.Start + r.End
	}
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Span builds the range for length bases starting at start on a sequence of
// seqLen bases. Start is reduced into [0,seqLen) and End into [0,seqLen].
func Span(start, length, seqLen int) Range {
	start = util.Mod(start, seqLen)
	end := start + length
	if end > seqLen {
		end = util.Mod(end, seqLen)
		if end == 0 {
			end = seqLen
		}
	}
	return Range{Start: start, End: end}
}

// Annotation is a labelled feature on a part.
type Annotation struct {
	Name      string `json:"name"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Direction int    `json:"direction,omitempty"` // 1 forward, -1 reverse, 0 none
	Color     string `json:"color,omitempty"`
	Type      string `json:"type,omitempty"`
}

// Range returns the annotation's span.
func (a Annotation) Range() Range { return Range{Start: a.Start, End: a.End} }

// Part is a sequence with its complement and annotations.
type Part struct {
	Name        string       `json:"name"`
	Seq         string       `json:"seq"`
	CompSeq     string       `json:"compSeq,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
	Circular    bool         `json:"circular"`
}

// New returns a part for seq. Characters outside the alphabet are dropped
// and the complement is filled in.
func New(name, seq string, circular bool) *Part {
	p := &Part{Name: name, Circular: circular}
	p.Seq, p.CompSeq = alphabet.ComplementSeq(seq)
	return p
}

// Normalize fills in a missing complement and drops annotations that do not
// fit the sequence. It returns a new Part; p is left untouched.
func (p *Part) Normalize() *Part {
	out := &Part{Name: p.Name, Circular: p.Circular}
	out.Seq, out.CompSeq = alphabet.ComplementSeq(p.Seq)
	n := len(out.Seq)
	for _, a := range p.Annotations {
		if a.Start < 0 || a.End < 0 || a.Start > n || a.End > n {
			continue
		}
		if a.End < a.Start && !p.Circular {
			continue
		}
		out.Annotations = append(out.Annotations, a)
	}
	return out
}

// Len is the sequence length.
func (p *Part) Len() int { return len(p.Seq) }
