package main

import (
	"fmt"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/seqviz/pkg/primer"
)

func (a *app) primersCmd() *cobra.Command {
	var (
		in          inputFlags
		primersPath string
	)
	cmd := &cobra.Command{
		Use:   "primers",
		Short: "Find where primers bind a vector",
		Long: `Finds every site each primer anneals to on either strand of the vector. The
primer file is JSON (a list of {name, sequence, overhang}) or text with one
"name sequence [overhang]" per line. Overhangs are not matched. One mismatch
is tolerated per primer.bases-per-mismatch annealing bases.`,
		Example: `  seqviz primers -p primers.txt -i pUC19.fa --circular`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			primers, err := primer.Load(primersPath)
			if err != nil {
				return err
			}
			parts, err := in.parts(cmd)
			if err != nil {
				return err
			}
			opts := primer.Options{
				BasesPerMismatch: a.cfg.Primer.BasesPerMismatch,
				MaxSites:         a.cfg.Primer.MaxSites,
				MinLength:        a.cfg.Search.MinLength,
			}

			type result struct {
				Part  string               `json:"part"`
				Sites []primer.BindingSite `json:"sites"`
			}
			var all []result
			for _, p := range parts {
				opts.Circular = p.Circular
				sites, err := primer.FindAllBindingSites(cmd.Context(), primers, p.Seq, opts)
				if err != nil {
					return fmt.Errorf("%s: %w", p.Name, err)
				}
				all = append(all, result{Part: p.Name, Sites: sites})
			}
			if in.json {
				return writeJSON(cmd.OutOrStdout(), all)
			}

			w := newTable(cmd.OutOrStdout())
			fmtUtil.Fprintf(w, "part\tprimer\tdirection\tstart\tend\tmismatches\tGC\tTm\n")
			for _, r := range all {
				for _, s := range r.Sites {
					fmtUtil.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%.2f\t%.2f\n",
						r.Part, s.Primer.Name, s.Direction, s.Start, s.End, ranges(s.Mismatches), s.GC, s.Tm)
				}
			}
			return w.Flush()
		},
	}
	in.register(cmd)
	cmd.Flags().StringVarP(&primersPath, "primers", "p", "", "primer file, JSON or text")
	cmd.Flags().Int("bases-per-mismatch", 0, "annealing bases per tolerated mismatch")
	a.bind("primer.bases-per-mismatch", cmd, "bases-per-mismatch")
	_ = cmd.MarkFlagRequired("primers")
	return cmd
}
