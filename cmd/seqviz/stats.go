package main

import (
	"bufio"
	"fmt"
	"math"
	"sort"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/seqviz/pkg/primer"
	"github.com/liserjrqlxue/seqviz/pkg/util"
)

// seqStat is one row of the stats table
type seqStat struct {
	Name   string  `json:"name"`
	Length int     `json:"length"`
	GC     float64 `json:"gc"`
	Tm     float64 `json:"tm"`
}

func (a *app) statsCmd() *cobra.Command {
	var (
		in          inputFlags
		primersPath string
		hist        string
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "GC content and melting temperature of sequences or primers",
		Long: `Prints length, GC percent and Tm of every input sequence, or of every primer
in a primer file. With --hist PREFIX also writes PREFIX.gc and PREFIX.tm, two
column histograms of the rounded values.`,
		Example: `  seqviz stats -p primers.txt --hist primers`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var stats []seqStat
			if primersPath != "" {
				primers, err := primer.Load(primersPath)
				if err != nil {
					return err
				}
				for _, p := range primers {
					stats = append(stats, seqStat{p.Name, len(p.Anneal()), p.GC(), p.Tm()})
				}
			} else {
				parts, err := in.parts(cmd)
				if err != nil {
					return err
				}
				for _, p := range parts {
					gc := util.GC(p.Seq)
					stats = append(stats, seqStat{p.Name, len(p.Seq), gc, util.CalculateTm(len(p.Seq), gc)})
				}
			}

			if hist != "" {
				gcHist, tmHist := histograms(stats)
				if err := saveHist(hist+".gc", gcHist); err != nil {
					return err
				}
				if err := saveHist(hist+".tm", tmHist); err != nil {
					return err
				}
			}

			if in.json {
				return writeJSON(cmd.OutOrStdout(), stats)
			}
			w := newTable(cmd.OutOrStdout())
			fmtUtil.Fprintf(w, "name\tlength\tGC\tTm\n")
			for _, s := range stats {
				fmtUtil.Fprintf(w, "%s\t%d\t%.2f\t%.2f\n", s.Name, s.Length, s.GC, s.Tm)
			}
			return w.Flush()
		},
	}
	in.register(cmd)
	cmd.Flags().StringVarP(&primersPath, "primers", "p", "", "primer file, JSON or text")
	cmd.Flags().StringVar(&hist, "hist", "", "write GC and Tm histograms to PREFIX.gc and PREFIX.tm")
	return cmd
}

// histograms counts GC and Tm values rounded to one decimal
func histograms(stats []seqStat) (gcHist, tmHist map[float64]int) {
	gcHist = make(map[float64]int)
	tmHist = make(map[float64]int)
	for _, s := range stats {
		gcHist[math.Round(s.GC*10)/10]++
		tmHist[math.Round(s.Tm*10)/10]++
	}
	return
}

func saveHist(path string, hist map[float64]int) error {
	f := osUtil.Create(path)
	defer simpleUtil.DeferClose(f)
	w := bufio.NewWriter(f)
	if err := writeHist(hist, w); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// writeHist writes hist as sorted "value\tcount" lines
func writeHist(hist map[float64]int, w *bufio.Writer) (err error) {
	var sortKey = make([]float64, 0, len(hist))
	for k := range hist {
		sortKey = append(sortKey, k)
	}
	sort.Float64s(sortKey)
	for _, k := range sortKey {
		if _, err = fmt.Fprintf(w, "%.1f\t%d\n", k, hist[k]); err != nil {
			return
		}
	}
	err = w.Flush()
	return
}
