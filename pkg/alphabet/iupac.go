package alphabet

import (
	"fmt"
	"strings"
)

// Mask is a 4-bit set of the bases a symbol stands for: bit0=A bit1=C bit2=G bit3=T.
type Mask uint8

const (
	MaskA Mask = 1 << iota
	MaskC
	MaskG
	MaskT
	MaskN = MaskA | MaskC | MaskG | MaskT
)

var masks [256]Mask

func init() {
	set := func(c byte, m Mask) {
		masks[c] = m
		masks[c+'a'-'A'] = m
	}
	set('A', MaskA)
	set('C', MaskC)
	set('G', MaskG)
	set('T', MaskT)
	set('U', MaskT)
	set('R', MaskA|MaskG)
	set('Y', MaskC|MaskT)
	set('S', MaskC|MaskG)
	set('W', MaskA|MaskT)
	set('K', MaskG|MaskT)
	set('M', MaskA|MaskC)
	set('B', MaskC|MaskG|MaskT)
	set('D', MaskA|MaskG|MaskT)
	set('H', MaskA|MaskC|MaskT)
	set('V', MaskA|MaskC|MaskG)
	set('N', MaskN)
}

// MaskOf returns the base set of b, zero for anything outside the alphabet.
func MaskOf(b byte) Mask {
	return masks[b]
}

// Wildcard reports whether b stands for more than one base.
func Wildcard(b byte) bool {
	m := masks[b]
	return m != 0 && m&(m-1) != 0
}

// Pairs reports whether query symbol q accepts target base t. Only concrete
// target bases can match; an N in the target is always a mismatch so long
// N blocks never produce spurious hits.
func Pairs(q, t byte) bool {
	mt := masks[t]
	if mt == 0 || mt&(mt-1) != 0 {
		return false
	}
	return masks[q]&mt != 0
}

// Normalize upper-cases seq and maps U to T so RNA and DNA text scan alike.
func Normalize(seq string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == 'U' || r == 'u':
			return 'T'
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		return r
	}, seq)
}

var order = [4]byte{'A', 'C', 'G', 'T'}

// Bases lists the concrete bases behind a symbol, e.g. R -> "AG".
func Bases(b byte) string {
	m := masks[b]
	var sb strings.Builder
	for i, base := range order {
		if m&(1<<i) != 0 {
			sb.WriteByte(base)
		}
	}
	return sb.String()
}

// Class returns the regular expression fragment for a symbol: the base itself
// when unambiguous, otherwise a character class such as [AG].
func Class(b byte) string {
	bases := Bases(b)
	if len(bases) <= 1 {
		return bases
	}
	return "[" + bases + "]"
}

// Valid returns an error naming the first character outside the alphabet.
func Valid(seq string) error {
	for i := 0; i < len(seq); i++ {
		if masks[seq[i]] == 0 {
			return fmt.Errorf("invalid base %q at %d; allowed: A C G T U R Y S W K M B D H V N", seq[i], i+1)
		}
	}
	return nil
}
