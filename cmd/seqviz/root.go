package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/charmbracelet/log"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/liserjrqlxue/seqviz/pkg/config"
	"github.com/liserjrqlxue/seqviz/pkg/enzyme"
	"github.com/liserjrqlxue/seqviz/pkg/part"
)

// app is the state shared by the subcommands of one root command.
type app struct {
	v          *viper.Viper
	cfg        config.Config
	registry   *enzyme.Registry
	cfgFile    string
	cpuProfile string
	profile    *os.File
}

// input flags shared by the commands that read a sequence
type inputFlags struct {
	seq      string
	input    string
	circular bool
	json     bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.seq, "seq", "s", "", "sequence given inline")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "sequence file: FASTA, JSON part or raw sequence, - for stdin")
	cmd.Flags().BoolVarP(&f.circular, "circular", "c", false, "treat the sequence as circular")
	cmd.Flags().BoolVar(&f.json, "json", false, "write results as JSON")
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "seqviz",
		Short: "Search, digest and bind primers to DNA sequences",
		Long: `seqviz runs the sequence analysis behind a plasmid viewer from the command line:
wildcard and mismatch tolerant search on both strands, restriction digests with
agarose gel views, and primer binding sites. Linear and circular sequences are
both supported.`,
		Version:           "0.1.0",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./seqviz.yaml or $HOME/.seqviz/seqviz.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&a.cpuProfile, "cpu", "", "write cpu profile to file")
	simpleUtil.CheckErr(a.v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level")))

	root.AddCommand(
		a.searchCmd(),
		a.digestCmd(),
		a.gelCmd(),
		a.primersCmd(),
		a.enzymesCmd(),
		a.complementCmd(),
		a.statsCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := cfg.Level()
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:           level,
		ReportTimestamp: level == log.DebugLevel,
		Prefix:          "seqviz",
	})
	slog.SetDefault(slog.New(logger))

	a.registry = enzyme.NewRegistry()
	if cfg.Enzymes.DB != "" {
		if err = a.registry.LoadFile(cfg.Enzymes.DB); err != nil {
			return fmt.Errorf("enzyme db: %w", err)
		}
	}

	if a.cpuProfile != "" {
		a.profile = osUtil.Create(a.cpuProfile)
		if err = pprof.StartCPUProfile(a.profile); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) teardown(*cobra.Command, []string) {
	if a.profile != nil {
		pprof.StopCPUProfile()
		simpleUtil.DeferClose(a.profile)
		a.profile = nil
	}
}

// bind ties a config key to a flag of cmd.
func (a *app) bind(key string, cmd *cobra.Command, flag string) {
	simpleUtil.CheckErr(a.v.BindPFlag(key, cmd.Flags().Lookup(flag)))
}

// parts resolves the input flags to the parts to work on.
func (f *inputFlags) parts(cmd *cobra.Command) ([]*part.Part, error) {
	switch {
	case f.seq != "":
		return []*part.Part{part.New("seq", f.seq, f.circular)}, nil
	case f.input == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return readParts(data, f.circular)
	case f.input != "":
		return part.Load(f.input, f.circular)
	}
	return nil, fmt.Errorf("no sequence: use --seq or --input")
}

func readParts(data []byte, circular bool) ([]*part.Part, error) {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(trimmed, []byte(">")):
		return part.ReadFasta(bytes.NewReader(trimmed), circular)
	case bytes.HasPrefix(trimmed, []byte("{")), bytes.HasPrefix(trimmed, []byte("[")):
		return part.ReadJSON(bytes.NewReader(trimmed))
	}
	return []*part.Part{part.New("stdin", string(trimmed), circular)}, nil
}
