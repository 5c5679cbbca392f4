package digest

import (
	"context"
	"sort"
	"strings"

	"github.com/liserjrqlxue/seqviz/pkg/part"
)

// Labels used for fragment ends that are not cuts.
const (
	StartOfSequence = "Start of sequence"
	EndOfSequence   = "End of sequence"
)

// GelFragment is a fragment as it would run on an agarose gel.
type GelFragment struct {
	Size       int     `json:"size"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	StartLabel string  `json:"startLabel"`
	EndLabel   string  `json:"endLabel"`
	Top        float64 `json:"top"`
}

// Agarose digests p with the built-in enzymes and lays the fragments out
// against ladder.
func Agarose(ctx context.Context, names []string, p *part.Part, ladder Ladder) ([]GelFragment, error) {
	return New(nil).Agarose(ctx, names, p, ladder)
}

// Agarose returns the fragments largest first, each labelled with the
// enzymes at its ends and its mobility against ladder.
func (d *Digester) Agarose(ctx context.Context, names []string, p *part.Part, ladder Ladder) ([]GelFragment, error) {
	res, err := d.Digest(ctx, names, p)
	if err != nil {
		return nil, err
	}
	return Gel(res, ladder), nil
}

// Gel is the agarose view of an existing digestion.
func Gel(res *Result, ladder Ladder) []GelFragment {
	bands := make([]GelFragment, 0, len(res.Fragments))
	for _, f := range res.Fragments {
		bands = append(bands, GelFragment{
			Size:       f.Len(),
			Start:      f.Start,
			End:        f.End,
			StartLabel: label(f.Left, StartOfSequence),
			EndLabel:   label(f.Right, EndOfSequence),
			Top:        ladder.Top(f.Len()),
		})
	}
	sort.SliceStable(bands, func(i, j int) bool {
		if bands[i].Size != bands[j].Size {
			return bands[i].Size > bands[j].Size
		}
		return bands[i].Start < bands[j].Start
	})
	return bands
}

func label(c *Cut, end string) string {
	if c == nil {
		return end
	}
	return strings.Join(c.Enzymes, ", ")
}
