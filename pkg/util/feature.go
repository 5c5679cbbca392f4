package util

import (
	"fmt"
	"sort"
)

// Interval is a half-open [Start,End) span on a sequence.
type Interval struct {
	Start int
	End   int
}

func (f Interval) String() string {
	return fmt.Sprintf("%d-%d", f.Start, f.End)
}

// Runs collapses sorted or unsorted offsets into contiguous intervals,
// e.g. [2 3 4 9] -> [2,5) [9,10).
func Runs(offsets []int) []Interval {
	if len(offsets) == 0 {
		return nil
	}
	var intervals = make([]Interval, len(offsets))
	for i, o := range offsets {
		intervals[i] = Interval{Start: o, End: o + 1}
	}
	return MergeIntervals(intervals)
}

// MergeIntervals 合并有交集或相邻的区间
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return intervals
	}

	// 按起点排序
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	merged := make([]Interval, 0, len(sorted))
	current := sorted[0]

	for _, interval := range sorted[1:] {
		if interval.Start <= current.End { // 有交集
			// 合并区间
			if interval.End > current.End {
				current.End = interval.End
			}
		} else {
			// 没有交集，保存当前区间并更新
			merged = append(merged, current)
			current = interval
		}
	}

	// 添加最后一个区间
	merged = append(merged, current)

	return merged
}
