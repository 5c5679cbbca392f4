package main

import (
	"fmt"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/seqviz/pkg/enzyme"
)

func (a *app) enzymesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "enzymes [NAME]",
		Short: "List the restriction enzymes available for digests",
		Long: `Lists every enzyme by name with its recognition site, ^ marking the top
strand cut and _ the bottom strand cut. With NAME, lists the enzyme of that
name or, failing that, those with similar names. Enzymes from enzymes.db in
the config file are included.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var enzymes []enzyme.Enzyme
			if len(args) == 0 {
				for _, name := range a.registry.Names() {
					e, _ := a.registry.Lookup(name)
					enzymes = append(enzymes, e)
				}
			} else if enzymes = a.registry.Find(args[0]); len(enzymes) == 0 {
				return fmt.Errorf("failed to find any enzymes for %s", args[0])
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), enzymes)
			}

			w := newTable(cmd.OutOrStdout())
			for _, e := range enzymes {
				fmtUtil.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Notation(), e.Ends())
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "write enzymes as JSON")
	return cmd
}
