package util

import (
	"math"
	"strings"

	"github.com/liserjrqlxue/goUtil/textUtil"
)

// LoadInputSeq reads a raw sequence file, one or more lines, and joins it
// into a single upper-case string. Lines starting with '>' are skipped so a
// single-record FASTA file also loads.
func LoadInputSeq(path string) string {
	var sequence strings.Builder
	for _, line := range textUtil.File2Array(path) {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, ">") {
			continue
		}
		sequence.WriteString(line)
	}
	return strings.ToUpper(sequence.String())
}

// GC return GC content percent of a sequence round to 2 decimal
func GC(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'g', 'c', 'S', 's':
			gc++
		}
	}
	return math.Round(10000*float64(gc)/float64(len(seq))) / 100
}

// CalculateTm calculates the melting temperature (Tm) based on the GC content and sequence length.
// Calculate Tm using the formula: Tm = A + (B * GC/100) - (C / Length)
func CalculateTm(length int, gc float64) float64 {
	if length == 0 {
		return 0
	}
	return TmA + TmB*gc/100 - TmC/float64(length)
}

// Mod is the non-negative remainder of x/n, n > 0.
func Mod(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}
	return x
}

// Reverse returns its argument string reversed rune-wise left to right.
// from https://github.com/golang/example/blob/master/stringutil/reverse.go
func Reverse(r []byte) []byte {
	for i, j := 0, len(r)-1; i < len(r)/2; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return r
}
