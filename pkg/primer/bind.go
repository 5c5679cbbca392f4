package primer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/liserjrqlxue/seqviz/pkg/alphabet"
	"github.com/liserjrqlxue/seqviz/pkg/match"
	"github.com/liserjrqlxue/seqviz/pkg/part"
	"github.com/liserjrqlxue/seqviz/pkg/search"
	"github.com/liserjrqlxue/seqviz/pkg/util"
)

// BindingSite is a place a primer anneals. Start and End are on the vector
// top strand whatever the direction; End < Start when it spans the origin.
type BindingSite struct {
	Primer         Primer       `json:"primer"`
	Start          int          `json:"start"`
	End            int          `json:"end"`
	Direction      Direction    `json:"direction"`
	Mismatches     []part.Range `json:"mismatches,omitempty"`
	AnnealSequence string       `json:"annealSequence"`
	GC             float64      `json:"gc"`
	Tm             float64      `json:"tm"`
}

// Options tune binding. Zero values take the package defaults.
type Options struct {
	Circular bool
	// one mismatch allowed per BasesPerMismatch annealing bases
	BasesPerMismatch int
	// more sites than this for one primer is ErrSearchTooBroad
	MaxSites  int
	MinLength int
}

func (o Options) defaults() Options {
	if o.BasesPerMismatch <= 0 {
		o.BasesPerMismatch = util.BasesPerMismatch
	}
	if o.MaxSites <= 0 {
		o.MaxSites = util.PrimerSiteMax
	}
	if o.MinLength <= 0 {
		o.MinLength = util.QueryLengthMin
	}
	return o
}

// Budget is the number of mismatches tolerated for an annealing sequence
// of length n.
func (o Options) Budget(n int) int {
	return n / o.defaults().BasesPerMismatch
}

// FindAllBindingSites returns every site any primer anneals to on either
// strand of vector, sorted by start. The overhang takes no part in the
// match. Primers too short for their mismatch budget are skipped.
func FindAllBindingSites(ctx context.Context, primers []Primer, vector string, opts Options) ([]BindingSite, error) {
	opts = opts.defaults()
	vector, _ = alphabet.ComplementSeq(vector)
	if vector == "" {
		return nil, nil
	}

	var sites []BindingSite
	for _, p := range primers {
		found, err := bind(ctx, p, vector, opts)
		if err != nil {
			return nil, fmt.Errorf("primer %s: %w", p.Name, err)
		}
		sites = append(sites, found...)
	}
	sort.SliceStable(sites, func(i, j int) bool {
		if sites[i].Start != sites[j].Start {
			return sites[i].Start < sites[j].Start
		}
		return sites[i].Direction < sites[j].Direction
	})
	return sites, nil
}

func bind(ctx context.Context, p Primer, vector string, opts Options) ([]BindingSite, error) {
	anneal := p.Anneal()
	if anneal == "" {
		slog.Debug("skip primer", "name", p.Name, "reason", "empty sequence")
		return nil, nil
	}
	budget := opts.Budget(len(anneal))
	if match.EffectiveLength(anneal, budget) < opts.MinLength {
		slog.Debug("skip primer", "name", p.Name, "length", len(anneal), "mismatches", budget)
		return nil, nil
	}

	fwd, err := match.Compile(anneal, budget)
	if err != nil {
		return nil, err
	}
	rev := match.MustCompile(alphabet.ReverseComplement(anneal), budget)

	type key struct {
		start, end int
		d          Direction
	}
	var (
		sites []BindingSite
		seen  = make(map[key]bool)
		gc    = util.GC(anneal)
		tm    = util.CalculateTm(len(anneal), gc)
	)
	for _, scan := range []struct {
		m *match.Matcher
		d Direction
	}{{fwd, Forward}, {rev, Reverse}} {
		hits, err := scan.m.WithLimit(opts.MaxSites).FindInSequence(ctx, vector, opts.Circular)
		if err != nil {
			if errors.Is(err, match.ErrTooManyHits) {
				return nil, fmt.Errorf("%w: %v", search.ErrSearchTooBroad, err)
			}
			return nil, err
		}
		for _, h := range hits {
			r := part.Span(h.Pos, len(anneal), len(vector))
			k := key{r.Start, r.End, scan.d}
			if seen[k] {
				continue
			}
			seen[k] = true
			site := BindingSite{
				Primer:         p,
				Start:          r.Start,
				End:            r.End,
				Direction:      scan.d,
				AnnealSequence: anneal,
				GC:             gc,
				Tm:             tm,
			}
			for _, run := range util.Runs(h.Mismatches) {
				site.Mismatches = append(site.Mismatches, part.Span(h.Pos+run.Start, run.End-run.Start, len(vector)))
			}
			sites = append(sites, site)
		}
	}
	return sites, nil
}
