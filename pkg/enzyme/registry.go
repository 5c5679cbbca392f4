package enzyme

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/liserjrqlxue/goUtil/textUtil"
)

// ldCutoff is the largest edit distance Find still suggests.
const ldCutoff = 2

// Registry maps enzyme names to enzymes. Lookups ignore case.
type Registry struct {
	enzymes map[string]Enzyme // upper-cased name -> enzyme
}

var defaultRegistry = NewRegistry()

// NewRegistry returns a registry holding the built-in table.
func NewRegistry() *Registry {
	r := &Registry{enzymes: make(map[string]Enzyme, len(table))}
	for _, e := range table {
		r.enzymes[strings.ToUpper(e.Name)] = e
	}
	return r
}

// Add inserts or replaces e.
func (r *Registry) Add(e Enzyme) error {
	if err := e.Valid(); err != nil {
		return err
	}
	r.enzymes[strings.ToUpper(e.Name)] = e
	return nil
}

// LoadFile adds every enzyme in a name<TAB>notation file, one per line.
// Blank lines and lines starting with # are skipped.
func (r *Registry) LoadFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	var n int
	for i, line := range textUtil.File2Array(path) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		columns := strings.Split(line, "\t")
		if len(columns) < 2 {
			return fmt.Errorf("%s:%d: want name<TAB>site, got %q", path, i+1, line)
		}
		e, err := Parse(strings.TrimSpace(columns[0]), columns[1])
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, i+1, err)
		}
		if err = r.Add(e); err != nil {
			return fmt.Errorf("%s:%d: %w", path, i+1, err)
		}
		n++
	}
	slog.Debug("load enzymes", "path", path, "count", n)
	return nil
}

// Lookup finds an enzyme by name.
func (r *Registry) Lookup(name string) (Enzyme, bool) {
	e, ok := r.enzymes[strings.ToUpper(strings.TrimSpace(name))]
	return e, ok
}

// Names returns every enzyme name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.enzymes))
	for _, e := range r.enzymes {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// Find returns the enzymes a user most likely meant by name: the exact
// match if there is one, else those whose name contains name, else those
// within a small edit distance. Results are sorted by name.
func (r *Registry) Find(name string) []Enzyme {
	if e, ok := r.Lookup(name); ok {
		return []Enzyme{e}
	}
	upper := strings.ToUpper(strings.TrimSpace(name))
	var containing, lowDistance []Enzyme
	for key, e := range r.enzymes {
		if strings.Contains(key, upper) {
			containing = append(containing, e)
		} else if len(key) > ldCutoff && ld(upper, key) <= ldCutoff {
			lowDistance = append(lowDistance, e)
		}
	}
	found := containing
	if len(found) == 0 {
		found = lowDistance
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Name < found[j].Name })
	return found
}

// Lookup finds a built-in enzyme by name.
func Lookup(name string) (Enzyme, bool) { return defaultRegistry.Lookup(name) }

// Names lists the built-in enzymes.
func Names() []string { return defaultRegistry.Names() }

// ld is the Levenshtein distance between s and t.
func ld(s, t string) int {
	d := make([][]int, len(s)+1)
	for i := range d {
		d[i] = make([]int, len(t)+1)
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for j := 1; j <= len(t); j++ {
		for i := 1; i <= len(s); i++ {
			if s[i-1] == t[j-1] {
				d[i][j] = d[i-1][j-1]
				continue
			}
			d[i][j] = min(d[i-1][j], d[i][j-1], d[i-1][j-1]) + 1
		}
	}
	return d[len(s)][len(t)]
}
