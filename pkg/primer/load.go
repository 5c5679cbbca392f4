package primer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/liserjrqlxue/goUtil/textUtil"
)

// Load reads primers from a JSON array, or from a text file with one
// primer per line: name, sequence and an optional overhang, separated by
// whitespace. A line holding only a sequence is named after its line number.
func Load(path string) ([]Primer, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var primers []Primer
		if err = json.Unmarshal(data, &primers); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return primers, nil
	}

	var primers []Primer
	for i, line := range textUtil.File2Array(path) {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		var p Primer
		switch len(f) {
		case 1:
			p = Primer{Name: fmt.Sprintf("primer%d", i+1), Sequence: f[0]}
		case 2:
			p = Primer{Name: f[0], Sequence: f[1]}
		case 3:
			p = Primer{Name: f[0], Sequence: f[1], Overhang: f[2]}
		default:
			return nil, fmt.Errorf("%s:%d bad field count", path, i+1)
		}
		p.ID = p.Name
		primers = append(primers, p)
	}
	return primers, nil
}
