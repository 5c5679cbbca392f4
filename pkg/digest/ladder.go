package digest

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Ladder is a DNA size marker, band sizes in bp.
type Ladder struct {
	Name  string `json:"name"`
	Sizes []int  `json:"sizes"`
}

var ladders = map[string]Ladder{
	"1kb": {Name: "1kb", Sizes: []int{10000, 8000, 6000, 5000, 4000, 3000, 2000, 1500, 1000, 500}},
	"100bp": {Name: "100bp", Sizes: []int{1517, 1200, 1000, 900, 800, 700, 600, 500, 400, 300, 200, 100}},
	"1kb-plus": {Name: "1kb-plus", Sizes: []int{
		10000, 8000, 6000, 5000, 4000, 3000, 2000, 1500, 1200, 1000,
		900, 800, 700, 600, 500, 400, 300, 200, 100,
	}},
}

// DefaultLadder is used when no ladder is named.
const DefaultLadder = "1kb"

// LadderByName returns a built-in ladder. The empty name gives DefaultLadder.
func LadderByName(name string) (Ladder, error) {
	if name == "" {
		name = DefaultLadder
	}
	l, ok := ladders[strings.ToLower(name)]
	if !ok {
		return Ladder{}, fmt.Errorf("unknown ladder %q, want one of %s", name, strings.Join(LadderNames(), ", "))
	}
	return l, nil
}

// LadderNames lists the built-in ladders.
func LadderNames() []string {
	var names []string
	for name := range ladders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (l Ladder) bounds() (lo, hi int) {
	lo, hi = math.MaxInt, 0
	for _, s := range l.Sizes {
		lo, hi = min(lo, s), max(hi, s)
	}
	return lo, hi
}

// Top is the relative migration of a band of size bp: 0 at the largest
// ladder band, 1 at the smallest, linear in log size and clamped to [0,1].
func (l Ladder) Top(size int) float64 {
	lo, hi := l.bounds()
	if size <= 0 || lo >= hi {
		return 1
	}
	top := (math.Log(float64(hi)) - math.Log(float64(size))) / (math.Log(float64(hi)) - math.Log(float64(lo)))
	return math.Max(0, math.Min(1, top))
}
