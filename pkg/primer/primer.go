// Package primer finds where primers anneal on a vector, tolerating a
// mismatch budget proportional to primer length.
package primer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/liserjrqlxue/seqviz/pkg/alphabet"
	"github.com/liserjrqlxue/seqviz/pkg/util"
)

// Direction is the strand a primer anneals to.
type Direction int

const (
	Forward Direction = iota
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "REVERSE"
	}
	return "FORWARD"
}

func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Direction) UnmarshalText(b []byte) error {
	switch strings.ToUpper(string(b)) {
	case "FORWARD", "F", "FWD", "1":
		*d = Forward
	case "REVERSE", "R", "REV", "-1":
		*d = Reverse
	default:
		return fmt.Errorf("unknown direction %q", b)
	}
	return nil
}

// Primer is an oligo: the annealing Sequence plus an optional 5' Overhang
// that is not expected to pair. Extra carries caller metadata: in JSON any
// field other than the named ones lands in Extra and is written back at the
// top level. Non-string values are kept as their JSON text.
type Primer struct {
	ID       string            `json:"id,omitempty"`
	Name     string            `json:"name"`
	Sequence string            `json:"sequence"`
	Overhang string            `json:"overhang,omitempty"`
	Color    string            `json:"color,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

var primerFields = map[string]bool{
	"id": true, "name": true, "sequence": true, "overhang": true, "color": true, "extra": true,
}

func (p *Primer) UnmarshalJSON(data []byte) error {
	type plain Primer
	var q plain
	if err := json.Unmarshal(data, &q); err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for k, raw := range fields {
		if primerFields[k] {
			continue
		}
		if q.Extra == nil {
			q.Extra = make(map[string]string)
		}
		var v string
		if json.Unmarshal(raw, &v) != nil {
			v = string(raw)
		}
		q.Extra[k] = v
	}
	*p = Primer(q)
	return nil
}

func (p Primer) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(p.Extra)+5)
	for k, v := range p.Extra {
		if !primerFields[k] {
			out[k] = v
		}
	}
	out["name"] = p.Name
	out["sequence"] = p.Sequence
	for k, v := range map[string]string{"id": p.ID, "overhang": p.Overhang, "color": p.Color} {
		if v != "" {
			out[k] = v
		}
	}
	return json.Marshal(out)
}

// Anneal is the normalized annealing sequence.
func (p Primer) Anneal() string {
	return alphabet.Normalize(util.Blank.ReplaceAllString(p.Sequence, ""))
}

// Oligo is the full primer as ordered, overhang first.
func (p Primer) Oligo() string {
	return alphabet.Normalize(util.Blank.ReplaceAllString(p.Overhang+p.Sequence, ""))
}

// GC content percent of the annealing sequence
func (p Primer) GC() float64 {
	return util.GC(p.Anneal())
}

// Tm of the annealing sequence
func (p Primer) Tm() float64 {
	anneal := p.Anneal()
	return util.CalculateTm(len(anneal), util.GC(anneal))
}
