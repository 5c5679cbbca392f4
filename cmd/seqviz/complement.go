package main

import (
	"strings"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/seqviz/pkg/alphabet"
)

// complementCmd prints the complement of a sequence
func (a *app) complementCmd() *cobra.Command {
	var reverse bool
	cmd := &cobra.Command{
		Use:   "complement SEQ...",
		Short: "Complement or reverse complement a sequence",
		Long: `Prints the sequence with non-nucleotide characters removed, then its
complement. With --reverse prints only the reverse complement. Case and IUPAC
ambiguity codes are kept.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq := strings.Join(args, "")
			out := cmd.OutOrStdout()
			if reverse {
				fmtUtil.Fprintf(out, "%s\n", alphabet.ReverseComplement(seq))
				return nil
			}
			filtered, comp := alphabet.ComplementSeq(seq)
			fmtUtil.Fprintf(out, "%s\n%s\n", filtered, comp)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "print the reverse complement")
	return cmd
}
