package alphabet

import "testing"

func TestComplement(t *testing.T) {
	tests := []struct {
		in   byte
		want byte
		ok   bool
	}{
		{'A', 'T', true},
		{'t', 'a', true},
		{'U', 'A', true},
		{'R', 'Y', true},
		{'k', 'm', true},
		{'B', 'V', true},
		{'N', 'N', true},
		{'X', 0, false},
		{'-', 0, false},
	}
	for _, tt := range tests {
		got, ok := Complement(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Complement(%q) = %q,%v want %q,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestComplementSeqFilters(t *testing.T) {
	seq, comp := ComplementSeq("AT-GC x\nRn")
	if seq != "ATGCRn" {
		t.Errorf("filtered = %q, want ATGCRn", seq)
	}
	if comp != "TACGYn" {
		t.Errorf("comp = %q, want TACGYn", comp)
	}
	if len(seq) != len(comp) {
		t.Errorf("length mismatch %d != %d", len(seq), len(comp))
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"", "A", "GGTCTCNNNNN", "acgtRYSWKMBDHVN", "AAAAGAATTCTTAAAGAATTC"} {
		_, comp := ComplementSeq(s)
		if _, back := ComplementSeq(comp); back != s {
			t.Errorf("complement round trip %q -> %q", s, back)
		}
		if got := ReverseComplement(ReverseComplement(s)); got != s {
			t.Errorf("reverse complement round trip %q -> %q", s, got)
		}
	}
}

func TestReverseComplement(t *testing.T) {
	if got := ReverseComplement("GGTCTC"); got != "GAGACC" {
		t.Errorf("ReverseComplement(GGTCTC) = %q", got)
	}
	if got := ReverseComplement("GAATTC"); got != "GAATTC" {
		t.Errorf("ReverseComplement(GAATTC) = %q", got)
	}
	if got := ReverseComplement("AUG"); got != "CAT" {
		t.Errorf("ReverseComplement(AUG) = %q", got)
	}
}

func TestPairs(t *testing.T) {
	tests := []struct {
		q, t byte
		want bool
	}{
		{'A', 'A', true},
		{'A', 'a', true},
		{'A', 'C', false},
		{'N', 'G', true},
		{'R', 'G', true},
		{'R', 'C', false},
		{'T', 'U', true},
		{'N', 'N', false},
		{'A', 'N', false},
		{'A', '-', false},
	}
	for _, tt := range tests {
		if got := Pairs(tt.q, tt.t); got != tt.want {
			t.Errorf("Pairs(%q, %q) = %v, want %v", tt.q, tt.t, got, tt.want)
		}
	}
}

func TestClass(t *testing.T) {
	tests := map[byte]string{
		'A': "A",
		'g': "G",
		'R': "[AG]",
		'N': "[ACGT]",
		'B': "[CGT]",
		'X': "",
	}
	for in, want := range tests {
		if got := Class(in); got != want {
			t.Errorf("Class(%q) = %q, want %q", in, got, want)
		}
	}
	if !Wildcard('N') || Wildcard('A') || Wildcard('X') {
		t.Error("Wildcard misclassified")
	}
}

func TestValid(t *testing.T) {
	if err := Valid("ACGTNRYacgu"); err != nil {
		t.Errorf("Valid: unexpected error %v", err)
	}
	if err := Valid("ACGZ"); err == nil {
		t.Error("Valid(ACGZ): want error")
	}
	if got := Normalize("acgUu"); got != "ACGTT" {
		t.Errorf("Normalize = %q", got)
	}
}
