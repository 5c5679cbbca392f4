package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/seqviz/pkg/digest"
)

type digestResult struct {
	Part string `json:"part"`
	*digest.Result
	Gel []digest.GelFragment `json:"gel,omitempty"`
}

func (a *app) digestCmd() *cobra.Command {
	var (
		in     inputFlags
		asGel bool
		ladder string
	)
	cmd := &cobra.Command{
		Use:   "digest ENZYME...",
		Short: "Cut a sequence with restriction enzymes",
		Long: `Cuts the sequence with every named enzyme and lists the fragments. A linear
sequence with N cuts gives N+1 fragments, a circular one N. Unknown enzyme
names are skipped with a warning; see 'seqviz enzymes' for the known ones.`,
		Example: `  seqviz digest EcoRI BamHI -i pUC19.fa --circular
  seqviz digest BsaI -s TTAGGTCTCGGGGGAA --gel`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, err := in.parts(cmd)
			if err != nil {
				return err
			}
			if ladder == "" {
				ladder = a.cfg.Gel.Ladder
			}
			l, err := digest.LadderByName(ladder)
			if err != nil {
				return err
			}
			d := digest.New(a.registry)

			var all []digestResult
			for _, p := range parts {
				res, err := d.Digest(cmd.Context(), args, p)
				if err != nil {
					return fmt.Errorf("%s: %w", p.Name, err)
				}
				for _, name := range res.Skipped {
					slog.Warn("unknown enzyme skipped", "name", name)
				}
				if res.Note != "" {
					slog.Info(res.Note, "part", p.Name)
				}
				r := digestResult{Part: p.Name, Result: res}
				if asGel {
					r.Gel = digest.Gel(res, l)
				}
				all = append(all, r)
			}
			if in.json {
				return writeJSON(cmd.OutOrStdout(), all)
			}

			w := newTable(cmd.OutOrStdout())
			if asGel {
				fmtUtil.Fprintf(w, "part\tsize\tstart\tend\tfrom\tto\ttop\n")
				for _, r := range all {
					for _, g := range r.Gel {
						fmtUtil.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%s\t%.3f\n", r.Part, g.Size, g.Start, g.End, g.StartLabel, g.EndLabel, g.Top)
					}
				}
				return w.Flush()
			}
			fmtUtil.Fprintf(w, "part\t#\tstart\tend\tsize\tleft\tright\tannotations\n")
			for _, r := range all {
				for i, f := range r.Fragments {
					var names []string
					for _, ann := range f.Annotations {
						names = append(names, ann.Name)
					}
					fmtUtil.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\t%s\t%s\n",
						r.Part, i, f.Start, f.End, f.Len(),
						cutLabel(f.Left, digest.StartOfSequence), cutLabel(f.Right, digest.EndOfSequence),
						strings.Join(names, ","))
				}
			}
			return w.Flush()
		},
	}
	in.register(cmd)
	cmd.Flags().BoolVar(&asGel, "gel", false, "list fragments as gel bands, largest first")
	cmd.Flags().StringVar(&ladder, "ladder", "", "ladder for --gel mobility: "+strings.Join(digest.LadderNames(), ", "))
	return cmd
}

func cutLabel(c *digest.Cut, end string) string {
	if c == nil {
		return end
	}
	return fmt.Sprintf("%s@%d", strings.Join(c.Enzymes, "/"), c.Position)
}
