package alphabet

import (
	"strings"

	"github.com/liserjrqlxue/seqviz/pkg/util"
)

var complement [256]byte

func init() {
	pairs := []struct{ b, c byte }{
		{'A', 'T'}, {'T', 'A'}, {'U', 'A'},
		{'C', 'G'}, {'G', 'C'},
		{'R', 'Y'}, {'Y', 'R'},
		{'S', 'S'}, {'W', 'W'},
		{'K', 'M'}, {'M', 'K'},
		{'B', 'V'}, {'V', 'B'},
		{'D', 'H'}, {'H', 'D'},
		{'N', 'N'},
	}
	for _, p := range pairs {
		complement[p.b] = p.c
		complement[p.b+'a'-'A'] = p.c + 'a' - 'A'
	}
}

// Complement returns the complement of a single base, preserving case. The
// second return is false for characters outside the table.
func Complement(b byte) (byte, bool) {
	c := complement[b]
	return c, c != 0
}

// IsBase reports whether b is a nucleotide or ambiguity code, either case.
func IsBase(b byte) bool {
	return complement[b] != 0
}

// ComplementSeq drops every character outside the table and returns the
// filtered sequence along with its complement. Both results always have the
// same length and correspond position for position.
func ComplementSeq(seq string) (filtered, comp string) {
	var s, c strings.Builder
	s.Grow(len(seq))
	c.Grow(len(seq))
	for i := 0; i < len(seq); i++ {
		if x := complement[seq[i]]; x != 0 {
			s.WriteByte(seq[i])
			c.WriteByte(x)
		}
	}
	return s.String(), c.String()
}

// ReverseComplement is the reverse of ComplementSeq's complement.
func ReverseComplement(seq string) string {
	_, comp := ComplementSeq(seq)
	return string(util.Reverse([]byte(comp)))
}

// Reverse returns seq reversed byte-wise.
func Reverse(seq string) string {
	return string(util.Reverse([]byte(seq)))
}
