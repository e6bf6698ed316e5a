package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/trknhr/pursuit/internal/corpus"
	"github.com/trknhr/pursuit/internal/eval"
	"github.com/trknhr/pursuit/internal/logger"
	"github.com/trknhr/pursuit/internal/pursuit"
)

type Options struct {
	Trials int
	// Seed is the base seed; trial i draws from Seed+i.
	Seed      int64
	Parallel  int
	Params    pursuit.Params
	Precision eval.PrecisionMode
	// OnTrial, when set, is called once per finished trial. Calls are
	// serialized but arrive in completion order.
	OnTrial func(TrialResult)
}

type TrialResult struct {
	Trial int
	Seed  int64
	eval.Result
}

type Summary struct {
	Trials       []TrialResult
	PrecisionSum float64
	RecallSum    float64
	Precision    float64
	Recall       float64
	F            float64
	// Degenerate counts trials whose lexicon was too small to score precision.
	Degenerate int
}

// TrialSeed is the seed used for the 1-based trial number.
func TrialSeed(base int64, trial int) int64 {
	return base + int64(trial)
}

// RunTrial learns from the whole corpus on a fresh store and scores the
// resulting lexicon.
func RunTrial(ctx context.Context, c *corpus.Corpus, trial int, seed int64, params pursuit.Params, mode eval.PrecisionMode) (TrialResult, error) {
	store := pursuit.NewStore(c.Words, c.Meanings)
	learner := pursuit.NewLearner(store, params, rand.New(rand.NewSource(seed)))

	for i, u := range c.Utterances {
		if err := ctx.Err(); err != nil {
			return TrialResult{}, err
		}
		if err := learner.Observe(u); err != nil {
			return TrialResult{}, fmt.Errorf("trial %d, utterance %d: %w", trial, i+1, err)
		}
	}

	lex := pursuit.BuildLexicon(store, params)
	res, err := eval.Evaluate(lex, c.Gold, mode)
	if err != nil && !errors.Is(err, eval.ErrNoPredictions) {
		return TrialResult{}, err
	}
	if err != nil {
		logger.Debug("trial %d: %v; precision counted as 0", trial, err)
	}
	return TrialResult{Trial: trial, Seed: seed, Result: res}, nil
}

// Run executes opts.Trials independent trials and aggregates their scores.
// Per-trial results depend only on the trial seed, so the outcome is the same
// for any degree of parallelism.
func Run(ctx context.Context, c *corpus.Corpus, opts Options) (Summary, error) {
	if opts.Trials < 1 {
		return Summary{}, fmt.Errorf("trial count must be positive, got %d", opts.Trials)
	}
	parallel := max(opts.Parallel, 1)

	results := make([]TrialResult, opts.Trials)
	var mu sync.Mutex
	runOne := func(ctx context.Context, trial int) error {
		seed := TrialSeed(opts.Seed, trial)
		logger.Debug("trial %d started (seed %d)", trial, seed)
		r, err := RunTrial(ctx, c, trial, seed, opts.Params, opts.Precision)
		if err != nil {
			return err
		}
		results[trial-1] = r
		logger.Debug("trial %d done: %d entries, precision %.4f, recall %.4f", trial, len(r.Lexicon), r.Precision, r.Recall)
		if opts.OnTrial != nil {
			mu.Lock()
			opts.OnTrial(r)
			mu.Unlock()
		}
		return nil
	}

	if parallel > 1 {
		g, gCtx := errgroup.WithContext(ctx)
		g.SetLimit(parallel)
		for trial := 1; trial <= opts.Trials; trial++ {
			trial := trial
			g.Go(func() error {
				return runOne(gCtx, trial)
			})
		}
		if err := g.Wait(); err != nil {
			return Summary{}, err
		}
	} else {
		for trial := 1; trial <= opts.Trials; trial++ {
			if err := runOne(ctx, trial); err != nil {
				return Summary{}, err
			}
		}
	}

	return Summarize(results), nil
}

// Summarize averages precision and recall over trials. F is the harmonic mean
// of the two averages.
func Summarize(results []TrialResult) Summary {
	s := Summary{Trials: results}
	for _, r := range results {
		s.PrecisionSum += r.Precision
		s.RecallSum += r.Recall
		if !r.PrecisionDefined {
			s.Degenerate++
		}
	}
	if n := float64(len(results)); n > 0 {
		s.Precision = s.PrecisionSum / n
		s.Recall = s.RecallSum / n
	}
	s.F = eval.FScore(s.Precision, s.Recall)
	return s
}
