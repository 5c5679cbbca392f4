package main

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/liserjrqlxue/seqviz/pkg/part"
)

var (
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	mismatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true).Underline(true)
	posStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
)

const lineWidth = 60

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTable is a tabwriter laid out for result tables.
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)
}

func ranges(rs []part.Range) string {
	if len(rs) == 0 {
		return "-"
	}
	var s []string
	for _, r := range rs {
		s = append(s, r.String())
	}
	return strings.Join(s, ",")
}

// mark flags the bases of r on a sequence of len(flags) bases.
func mark(flags []bool, r part.Range) {
	n := len(flags)
	for i := 0; i < r.Len(n); i++ {
		flags[(r.Start+i)%n] = true
	}
}

// highlight writes seq in lines of lineWidth with hit bases in matchStyle
// and mismatched bases in mismatchStyle.
func highlight(w io.Writer, name, seq string, hit, miss []bool) {
	io.WriteString(w, headerStyle.Render(">"+name)+"\n")
	for start := 0; start < len(seq); start += lineWidth {
		end := min(start+lineWidth, len(seq))
		var line strings.Builder
		line.WriteString(posStyle.Render(padLeft(start+1, 8)) + " ")
		for i := start; i < end; {
			j := i + 1
			for j < end && hit[j] == hit[i] && miss[j] == miss[i] {
				j++
			}
			switch seg := seq[i:j]; {
			case miss[i]:
				line.WriteString(mismatchStyle.Render(seg))
			case hit[i]:
				line.WriteString(matchStyle.Render(seg))
			default:
				line.WriteString(seg)
			}
			i = j
		}
		io.WriteString(w, line.String()+"\n")
	}
}

func padLeft(n, width int) string {
	s := strings.Repeat(" ", width) + strconv.Itoa(n)
	return s[len(s)-width:]
}
