package search

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/liserjrqlxue/seqviz/pkg/match"
	"github.com/liserjrqlxue/seqviz/pkg/part"
)

func starts(ms []Match, s part.Strand) []int {
	var out []int
	for _, m := range ms {
		if m.Strand == s {
			out = append(out, m.Start)
		}
	}
	return out
}

func TestSearchBothStrands(t *testing.T) {
	res, err := Search(context.Background(), "AATTC", "GGAATTCGGAATTC", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := starts(res.Matches, part.Top); !reflect.DeepEqual(got, []int{2, 9}) {
		t.Errorf("top starts = %v, want [2 9]", got)
	}
	// GAATT, the reverse complement, sits at 1 and 8
	if got := starts(res.Matches, part.Bottom); !reflect.DeepEqual(got, []int{1, 8}) {
		t.Errorf("bottom starts = %v, want [1 8]", got)
	}
	for i, m := range res.Matches {
		if m.Index != i {
			t.Errorf("match %d has index %d", i, m.Index)
		}
		if i > 0 && m.Start < res.Matches[i-1].Start {
			t.Errorf("matches not sorted: %+v", res.Matches)
		}
		if m.End-m.Start != 5 {
			t.Errorf("match %+v has wrong length", m)
		}
	}

	res, err = Search(context.Background(), "aattc", "GGAATTCGGAATTC", Options{TopOnly: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Len() != 2 || res.Matches[0].Start != 2 || res.Matches[1].Start != 9 {
		t.Errorf("top only = %+v", res.Matches)
	}
}

func TestSearchCircular(t *testing.T) {
	res, err := Search(context.Background(), "GGAT", "ATCGGG", Options{Circular: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Len() != 1 {
		t.Fatalf("got %d matches, want 1: %+v", res.Len(), res.Matches)
	}
	m := res.Matches[0]
	if m.Start != 4 || m.End != 2 || m.Start <= m.End {
		t.Errorf("wrapping match = %+v, want 4-2", m)
	}

	res, err = Search(context.Background(), "GGAT", "ATCGGG", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Len() != 0 {
		t.Errorf("linear sequence must not wrap: %+v", res.Matches)
	}
}

func TestSearchPalindrome(t *testing.T) {
	res, err := Search(context.Background(), "GAATTC", "CCGAATTCCC", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Len() != 2 || res.Matches[0].Strand != part.Top || res.Matches[1].Strand != part.Bottom {
		t.Errorf("palindrome = %+v", res.Matches)
	}
}

func TestSearchMismatchRanges(t *testing.T) {
	res, err := Search(context.Background(), "GAATTCGA", "CCCGATGTCGACCC", Options{Mismatches: 2})
	if err != nil {
		t.Fatal(err)
	}
	var found bool
	for _, m := range res.Matches {
		if m.Strand == part.Top && m.Start == 3 {
			found = true
			if want := []part.Range{{Start: 5, End: 7}}; !reflect.DeepEqual(m.Mismatches, want) {
				t.Errorf("mismatches = %v, want %v", m.Mismatches, want)
			}
		}
	}
	if !found {
		t.Fatalf("no top match at 3: %+v", res.Matches)
	}
}

func TestSearchMonotonic(t *testing.T) {
	seq := strings.Repeat("GATTACAGGCCTTAACG", 20)
	prev := -1
	for k := 0; k <= 3; k++ {
		res, err := Search(context.Background(), "TTACAGGC", seq, Options{Mismatches: k, Circular: true})
		if err != nil {
			t.Fatal(err)
		}
		if res.Len() < prev {
			t.Errorf("mismatches=%d gave %d matches, fewer than %d", k, res.Len(), prev)
		}
		prev = res.Len()
	}
}

func TestSearchErrors(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		query string
		seq   string
		opts  Options
		want  error
	}{
		{"short", "AT", "ATATAT", Options{}, ErrSearchTooBroad},
		{"short after mismatches", "ATGC", "ATATAT", Options{Mismatches: 2}, ErrSearchTooBroad},
		{"invalid", "ATGXC", "ATATAT", Options{}, match.ErrInvalidQuery},
		{"too many", "NNNN", strings.Repeat("ACGT", 100), Options{MaxResults: 10}, ErrSearchTooBroad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Search(ctx, tt.query, tt.seq, tt.opts); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	res, err := Search(ctx, "NNNN", strings.Repeat("ACGT", 2000), Options{MaxResults: -1})
	if err != nil || res.Len() == 0 {
		t.Errorf("unlimited search: %d matches, %v", res.Len(), err)
	}
}

func TestSearchEmpty(t *testing.T) {
	for _, tt := range [][2]string{{"", "ACGT"}, {"ACGT", ""}, {" ", "ACGT"}} {
		res, err := Search(context.Background(), tt[0], tt[1], Options{})
		if err != nil || res.Len() != 0 {
			t.Errorf("Search(%q,%q) = %v, %v", tt[0], tt[1], res, err)
		}
	}
}

func TestSearchCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Search(ctx, "ACGTA", strings.Repeat("ACGTT", 5000), Options{Mismatches: 1, MaxResults: -1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestNavigation(t *testing.T) {
	r := &Results{Matches: make([]Match, 3)}
	if r.Next(2) != 0 || r.Next(0) != 1 {
		t.Error("Next does not cycle")
	}
	if r.Prev(0) != 2 || r.Prev(2) != 1 {
		t.Error("Prev does not cycle")
	}
	r.Step(-1)
	if r.Index != 2 {
		t.Errorf("Step(-1) index = %d, want 2", r.Index)
	}
	r.Step(1)
	if r.Index != 0 {
		t.Errorf("Step(1) index = %d, want 0", r.Index)
	}
	empty := &Results{}
	if empty.Next(0) != 0 || empty.Prev(0) != 0 {
		t.Error("empty results must stay at 0")
	}
	if _, ok := empty.Current(); ok {
		t.Error("empty results have no current match")
	}
}

func BenchmarkSearch(b *testing.B) {
	seq := strings.Repeat("GATTACAGGCCTTAACGTTAGCCATGG", 400)
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		if _, err := Search(ctx, "GGCCTTRACG", seq, Options{Mismatches: 1, Circular: true}); err != nil {
			b.Fatal(err)
		}
	}
}
