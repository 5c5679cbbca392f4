package digest

import "github.com/liserjrqlxue/seqviz/pkg/part"

// remap returns the annotations that overlap the fragment covering length
// bases from start, in fragment coordinates. Annotations crossing a fragment
// edge are truncated there. On a circular part positions are unrolled, so an
// annotation may overlap a fragment twice and comes back as two pieces.
func remap(anns []part.Annotation, n int, circular bool, start, length int) []part.Annotation {
	var (
		out    []part.Annotation
		end    = start + length
		shifts = []int{0}
	)
	if circular {
		shifts = []int{-n, 0, n}
	}
	for _, a := range anns {
		aStart, aEnd := a.Start, a.End
		if aEnd < aStart {
			if !circular {
				continue
			}
			aEnd += n
		}
		for _, shift := range shifts {
			lo, hi := max(aStart+shift, start), min(aEnd+shift, end)
			if lo >= hi {
				continue
			}
			piece := a
			piece.Start, piece.End = lo-start, hi-start
			out = append(out, piece)
		}
	}
	return out
}
