package main

import (
	"fmt"
	"strings"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/seqviz/pkg/search"
)

type searchResult struct {
	Part string `json:"part"`
	*search.Results
}

func (a *app) searchCmd() *cobra.Command {
	var (
		in         inputFlags
		mismatches int
		show       bool
		topOnly    bool
	)
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Find a query on both strands of a sequence",
		Long: `Finds every place QUERY occurs on either strand. The query may hold IUPAC
wildcards (N, R, Y, ...) and up to --mismatch substitutions. Positions are
0-based, end exclusive, on the top strand; end < start means the match wraps
the origin of a circular sequence.`,
		Example: `  seqviz search GAATTC -i pUC19.fa --circular
  seqviz search GGTCTCN -s TTAGGTCTCGGGGGAA --mismatch 1 --show`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, err := in.parts(cmd)
			if err != nil {
				return err
			}
			opts := search.Options{
				Mismatches: mismatches,
				Circular:   in.circular,
				MaxResults: a.cfg.Search.MaxResults,
				MinLength:  a.cfg.Search.MinLength,
				TopOnly:    topOnly,
			}
			query := strings.Join(args, "")

			var all []searchResult
			for _, p := range parts {
				opts.Circular = p.Circular
				res, err := search.Search(cmd.Context(), query, p.Seq, opts)
				if err != nil {
					return fmt.Errorf("%s: %w", p.Name, err)
				}
				all = append(all, searchResult{Part: p.Name, Results: res})

				if show && !in.json {
					hit, miss := make([]bool, p.Len()), make([]bool, p.Len())
					for _, m := range res.Matches {
						mark(hit, m.Range())
						for _, r := range m.Mismatches {
							mark(miss, r)
						}
					}
					highlight(cmd.OutOrStdout(), p.Name, p.Seq, hit, miss)
				}
			}
			if in.json {
				return writeJSON(cmd.OutOrStdout(), all)
			}

			w := newTable(cmd.OutOrStdout())
			fmtUtil.Fprintf(w, "part\t#\tstart\tend\tstrand\tmismatches\n")
			for _, r := range all {
				for _, m := range r.Matches {
					fmtUtil.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%s\n", r.Part, m.Index, m.Start, m.End, m.Strand, ranges(m.Mismatches))
				}
			}
			return w.Flush()
		},
	}
	in.register(cmd)
	cmd.Flags().IntVarP(&mismatches, "mismatch", "m", 0, "substitutions allowed")
	cmd.Flags().BoolVar(&show, "show", false, "print the sequence with matches highlighted")
	cmd.Flags().BoolVar(&topOnly, "top", false, "search the top strand only")
	cmd.Flags().Int("max-results", 0, "hits on one strand before the search counts as too broad")
	a.bind("search.max-results", cmd, "max-results")
	return cmd
}
