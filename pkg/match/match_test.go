package match

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func positions(hits []Hit) []int {
	out := make([]int, len(hits))
	for i, h := range hits {
		out[i] = h.Pos
	}
	return out
}

func TestFindAll(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		query string
		maxMM int
		text  string
		want  []int
	}{
		{"exact", "AATTC", 0, "GGAATTCGGAATTC", []int{2, 9}},
		{"overlapping", "AA", 0, "AAAA", []int{0, 1, 2}},
		{"case insensitive", "aattc", 0, "ggAATTcgg", []int{2}},
		{"wildcard exact", "GGWCC", 0, "GGACCTTGGTCCGGGCC", []int{0, 7}},
		{"N is any base", "ACN", 0, "ACGTACGTACGT", []int{0, 4, 8}},
		{"N in text never matches", "ACG", 0, "ACNACG", []int{3}},
		{"one mismatch", "AGG", 1, "ACGTACGTACGT", []int{0, 4, 8}},
		{"no mismatch budget", "AGG", 0, "ACGTACGTACGT", nil},
		{"RNA text", "ATG", 0, "CCAUGCC", []int{2}},
		{"query longer than text", "ACGTACGT", 2, "ACG", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Compile(tt.query, tt.maxMM)
			if err != nil {
				t.Fatal(err)
			}
			hits, err := m.FindAll(ctx, tt.text)
			if err != nil {
				t.Fatal(err)
			}
			if got := positions(hits); !reflect.DeepEqual(got, tt.want) && !(len(got) == 0 && len(tt.want) == 0) {
				t.Errorf("FindAll(%q in %q) = %v, want %v", tt.query, tt.text, got, tt.want)
			}
		})
	}
}

func TestMismatchOffsets(t *testing.T) {
	m := MustCompile("ACGTTT", 2)
	hits, err := m.FindAll(context.Background(), "ACCTTA")
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if want := []int{2, 5}; !reflect.DeepEqual(hits[0].Mismatches, want) {
		t.Errorf("mismatches = %v, want %v", hits[0].Mismatches, want)
	}
}

func TestMismatchMonotonic(t *testing.T) {
	text := "GATTACAGATTACCGATTTCAGGTTACA"
	prev := -1
	for k := 0; k <= 4; k++ {
		hits, err := MustCompile("GATTACA", k).FindAll(context.Background(), text)
		if err != nil {
			t.Fatal(err)
		}
		if len(hits) < prev {
			t.Fatalf("k=%d: %d hits, fewer than %d at k-1", k, len(hits), prev)
		}
		prev = len(hits)
	}
}

func TestCompileInvalid(t *testing.T) {
	for _, q := range []string{"", "  ", "ACGZ", "AC-G"} {
		if _, err := Compile(q, 0); !errors.Is(err, ErrInvalidQuery) {
			t.Errorf("Compile(%q) err = %v, want ErrInvalidQuery", q, err)
		}
	}
	m, err := Compile(" ac gu\n", 0)
	if err != nil {
		t.Fatal(err)
	}
	if m.Query() != "ACGT" || m.Len() != 4 {
		t.Errorf("normalized query = %q", m.Query())
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		seq      string
		k        int
		circular bool
		want     string
	}{
		{"ATCG", 4, false, "ATCG"},
		{"ATCG", 4, true, "ATCGATC"},
		{"ATCG", 1, true, "ATCG"},
		{"ATCG", 10, true, "ATCGATCGATCGA"},
		{"", 3, true, ""},
	}
	for _, tt := range tests {
		if got := WrapText(tt.seq, tt.k, tt.circular); got != tt.want {
			t.Errorf("WrapText(%q, %d, %v) = %q, want %q", tt.seq, tt.k, tt.circular, got, tt.want)
		}
	}
}

func TestFindInSequenceCircular(t *testing.T) {
	m := MustCompile("CGAT", 0)
	hits, err := m.FindInSequence(context.Background(), "ATCG", true)
	if err != nil {
		t.Fatal(err)
	}
	if got := positions(hits); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("circular hits = %v, want [2]", got)
	}
	hits, err = m.FindInSequence(context.Background(), "ATCG", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 0 {
		t.Fatalf("linear hits = %v, want none", positions(hits))
	}
}

func TestLimit(t *testing.T) {
	m := MustCompile("A", 0).WithLimit(3)
	hits, err := m.FindAll(context.Background(), "AAAAAA")
	if !errors.Is(err, ErrTooManyHits) {
		t.Fatalf("err = %v, want ErrTooManyHits", err)
	}
	if len(hits) != 4 {
		t.Errorf("stopped after %d hits, want 4", len(hits))
	}
	if _, err := m.FindAll(context.Background(), "AAA"); err != nil {
		t.Errorf("limit hit at exactly 3: %v", err)
	}
}

func TestCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := MustCompile("ACGTAC", 1).FindAll(ctx, strings.Repeat("ACGT", 100))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestEffectiveLength(t *testing.T) {
	if got := EffectiveLength("ACGT ", 2); got != 2 {
		t.Errorf("EffectiveLength = %d, want 2", got)
	}
}

func BenchmarkMismatchScan(b *testing.B) {
	text := strings.Repeat("GATTACAGGCTTAACCGGTTAA", 500)
	m := MustCompile("GGCTTAACCGGT", 2)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.FindAll(ctx, text)
	}
}

func BenchmarkExactWildcard(b *testing.B) {
	text := strings.Repeat("GATTACAGGCTTAACCGGTTAA", 500)
	m := MustCompile("GGNTTAAYC", 0)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.FindAll(ctx, text)
	}
}
