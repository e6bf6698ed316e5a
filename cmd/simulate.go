package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/trknhr/pursuit/internal/config"
	"github.com/trknhr/pursuit/internal/corpus"
	"github.com/trknhr/pursuit/internal/logger"
	"github.com/trknhr/pursuit/internal/report"
	"github.com/trknhr/pursuit/internal/sim"
	"github.com/trknhr/pursuit/internal/store"
	"github.com/trknhr/pursuit/internal/tui"
)

type simulateOptions struct {
	Trials int
	Table  bool
	TUI    bool
	// RunStore receives the finished run when non-nil.
	RunStore store.RunStore
}

func runSimulate(cmd *cobra.Command, o *rootOptions, trials int) error {
	cfg := o.cfg

	opts := simulateOptions{Trials: trials, Table: o.table, TUI: o.tui}
	if cfg.Store.Save {
		db, err := store.Open(cfg.Store.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		opts.RunStore = store.NewSQLRunStore(db)
	}

	return simulate(cmd.Context(), cfg, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// simulate loads the corpus named by cfg, runs the trials and writes the
// report to out. Progress output, when enabled, goes to errOut.
func simulate(ctx context.Context, cfg config.Config, opts simulateOptions, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := corpus.Load(cfg.Files())
	if err != nil {
		return err
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Info("using seed %d", seed)
	}

	simOpts := sim.Options{
		Trials:    opts.Trials,
		Seed:      seed,
		Parallel:  cfg.Simulation.Parallel,
		Params:    cfg.Params(),
		Precision: cfg.PrecisionMode(),
	}

	var summary sim.Summary
	if opts.TUI {
		restore := logger.DetachConsole()
		err = tui.Run(ctx, opts.Trials, errOut, func(onTrial func(sim.TrialResult)) error {
			simOpts.OnTrial = onTrial
			var runErr error
			summary, runErr = sim.Run(ctx, c, simOpts)
			return runErr
		})
		restore()
	} else {
		summary, err = sim.Run(ctx, c, simOpts)
	}
	if err != nil {
		return err
	}
	if summary.Degenerate > 0 {
		logger.Warn("%d of %d trials had too few lexicon entries to score precision", summary.Degenerate, opts.Trials)
	}

	if opts.Table {
		for _, r := range summary.Trials {
			if err := report.WriteLexicon(out, r); err != nil {
				return err
			}
		}
		fmt.Fprintln(out, report.SummaryTable(summary))
	} else if err := report.Write(out, summary); err != nil {
		return err
	}

	if opts.RunStore != nil {
		run := store.NewRun(summary, simOpts, c.Fingerprint)
		if err := opts.RunStore.SaveRun(run); err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		logger.Info("saved run %s", run.ID)
	}
	return nil
}
