// Package alphabet holds the nucleotide alphabet used across seqviz: the
// complement table for standard bases and IUPAC ambiguity codes, and the
// bit masks the matchers use to decide whether two symbols can pair.
package alphabet
