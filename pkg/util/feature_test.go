package util

import (
	"reflect"
	"testing"
)

func TestRuns(t *testing.T) {
	tests := []struct {
		name    string
		offsets []int
		want    []Interval
	}{
		{"empty", nil, nil},
		{"single", []int{4}, []Interval{{4, 5}}},
		{"adjacent", []int{2, 3, 4, 9}, []Interval{{2, 5}, {9, 10}}},
		{"unsorted", []int{9, 3, 2}, []Interval{{2, 4}, {9, 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Runs(tt.offsets); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Runs(%v) = %v, want %v", tt.offsets, got, tt.want)
			}
		})
	}
}

func TestMergeIntervalsKeepsInput(t *testing.T) {
	in := []Interval{{10, 20}, {0, 5}, {15, 30}}
	got := MergeIntervals(in)
	want := []Interval{{0, 5}, {10, 30}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MergeIntervals = %v, want %v", got, want)
	}
	if in[0] != (Interval{10, 20}) {
		t.Fatalf("input reordered: %v", in)
	}
}
