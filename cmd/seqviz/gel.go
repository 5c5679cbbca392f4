package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/liserjrqlxue/seqviz/pkg/digest"
	"github.com/liserjrqlxue/seqviz/pkg/gel"
)

func (a *app) gelCmd() *cobra.Command {
	var (
		in     inputFlags
		output string
		ladder string
		title  string
	)
	cmd := &cobra.Command{
		Use:   "gel ENZYME...",
		Short: "Draw the agarose gel of a digest",
		Long: `Digests every input sequence with the named enzymes and draws one lane per
sequence next to a size ladder. The image format follows the extension of
--output: svg, png, pdf, eps, jpg or tif.`,
		Example: `  seqviz gel EcoRI HindIII -i plasmids.fa --circular -o gel.png`,
		Args:    cobra.MinimumNArgs(1),
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
			lanes := []gel.Lane{gel.LadderLane(l)}
			for _, p := range parts {
				frags, err := d.Agarose(cmd.Context(), args, p, l)
				if err != nil {
					return fmt.Errorf("%s: %w", p.Name, err)
				}
				lanes = append(lanes, gel.DigestLane(p.Name, frags))
			}
			if title == "" {
				title = strings.Join(args, " + ")
			}
			opts := gel.Options{
				Title:  title,
				Width:  vg.Length(a.cfg.Gel.Width) * vg.Centimeter,
				Height: vg.Length(a.cfg.Gel.Height) * vg.Centimeter,
			}
			if err = gel.Save(output, lanes, opts); err != nil {
				return err
			}
			slog.Info("gel written", "path", output, "lanes", len(lanes))
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "gel.svg", "image to write")
	cmd.Flags().StringVar(&ladder, "ladder", "", "size ladder: "+strings.Join(digest.LadderNames(), ", "))
	cmd.Flags().StringVar(&title, "title", "", "image title, the enzymes by default")
	return cmd
}
