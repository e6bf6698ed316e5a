package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trknhr/pursuit/internal/config"
	"github.com/trknhr/pursuit/internal/logger"
)

type rootOptions struct {
	configPath string
	dbPath     string
	logLevel   string
	logFile    string

	words    string
	meanings string
	uttered  string
	visible  string
	gold     string

	seed            int64
	parallel        int
	legacyPrecision bool
	save            bool
	table           bool
	tui             bool

	cfg config.Config
}

func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pursuit <trials>",
		Short: "Simulate Pursuit word learning and score the learned lexicon",
		Example: `
  # Ten trials over the Frank corpus in the current directory
  pursuit 10

  # Reproducible parallel run, saved for later inspection
  pursuit 100 --seed 42 --parallel 8 --save`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, o)
			if err != nil {
				return err
			}
			o.cfg = cfg
			return logger.Init(cfg.Log.File, cfg.Log.Level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			trials, err := parseTrials(args[0])
			if err != nil {
				return err
			}
			return runSimulate(cmd, o, trials)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&o.configPath, "config", "c", "", "Path to YAML config file")
	pf.StringVar(&o.dbPath, "db", "", "Path to the run database (default: user cache dir)")
	pf.StringVar(&o.logLevel, "log-level", "", "Log level (debug, info, warn, error, none)")
	pf.StringVar(&o.logFile, "log-file", "", "Also append logs to this file")

	f := cmd.Flags()
	f.StringVar(&o.words, "words", "", "Word vocabulary file")
	f.StringVar(&o.meanings, "meanings", "", "Meaning vocabulary file")
	f.StringVar(&o.uttered, "uttered", "", "Uttered words record file")
	f.StringVar(&o.visible, "visible", "", "Visible meanings record file")
	f.StringVar(&o.gold, "gold", "", "YAML gold standard (default: built-in Frank mapping)")
	f.Int64Var(&o.seed, "seed", 0, "Base random seed (0 derives one from the clock)")
	f.IntVarP(&o.parallel, "parallel", "p", 1, "Number of trials to run concurrently")
	f.BoolVar(&o.legacyPrecision, "legacy-precision", false, "Divide precision by lexicon size minus one")
	f.BoolVar(&o.save, "save", false, "Persist the run to the database")
	f.BoolVar(&o.table, "table", false, "Print per-trial scores as a table")
	f.BoolVar(&o.tui, "tui", false, "Show a progress bar while trials run")

	cmd.AddCommand(NewRunsCmd(o))

	return cmd
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func parseTrials(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("trial count must be a positive integer, got %q", arg)
	}
	return n, nil
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, o *rootOptions) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}

	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	overrideString := func(name string, dst *string, v string) {
		if changed(name) {
			*dst = v
		}
	}

	overrideString("words", &cfg.Data.Words, o.words)
	overrideString("meanings", &cfg.Data.Meanings, o.meanings)
	overrideString("uttered", &cfg.Data.Uttered, o.uttered)
	overrideString("visible", &cfg.Data.Visible, o.visible)
	overrideString("gold", &cfg.Data.Gold, o.gold)
	overrideString("db", &cfg.Store.Path, o.dbPath)
	overrideString("log-level", &cfg.Log.Level, o.logLevel)
	overrideString("log-file", &cfg.Log.File, o.logFile)
	if changed("seed") {
		cfg.Simulation.Seed = o.seed
	}
	if changed("parallel") {
		cfg.Simulation.Parallel = o.parallel
	}
	if changed("legacy-precision") {
		cfg.Evaluation.LegacyPrecision = o.legacyPrecision
	}
	if changed("save") {
		cfg.Store.Save = o.save
	}

	return cfg, cfg.Validate()
}
