package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trknhr/pursuit/internal/eval"
	"github.com/trknhr/pursuit/internal/pursuit"
	"github.com/trknhr/pursuit/internal/sim"
)

var ErrRunNotFound = errors.New("run not found")

// Run is a finished simulation together with the settings that produced it.
type Run struct {
	ID          string
	CreatedAt   time.Time
	Seed        int64
	Params      pursuit.Params
	Precision   eval.PrecisionMode
	Fingerprint string
	Summary     sim.Summary
}

// RunInfo is the listing view of a saved run.
type RunInfo struct {
	ID        string
	CreatedAt time.Time
	Trials    int
	Precision float64
	Recall    float64
	F         float64
}

//go:generate mockgen -source=runs.go -destination=mock_runs.go -package=store

type RunStore interface {
	SaveRun(run Run) error
	ListRuns(limit int) ([]RunInfo, error)
	LoadRun(id string) (Run, error)
}

// NewRun stamps a summary with a fresh id and the current time.
func NewRun(summary sim.Summary, opts sim.Options, fingerprint string) Run {
	return Run{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now(),
		Seed:        opts.Seed,
		Params:      opts.Params,
		Precision:   opts.Precision,
		Fingerprint: fingerprint,
		Summary:     summary,
	}
}

type SQLRunStore struct {
	db *sql.DB
}

func NewSQLRunStore(db *sql.DB) RunStore {
	return &SQLRunStore{db: db}
}

func (s *SQLRunStore) SaveRun(run Run) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	sum := run.Summary
	_, err = tx.Exec(`
		INSERT INTO runs(id, created_at, trials, seed, gamma, lambda, tau, precision_mode, fingerprint, precision, recall, f, degenerate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt.Unix(), len(sum.Trials), run.Seed,
		run.Params.Gamma, run.Params.Lambda, run.Params.Tau,
		run.Precision.String(), run.Fingerprint,
		sum.Precision, sum.Recall, sum.F, sum.Degenerate)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	trialStmt, err := tx.Prepare(`
		INSERT INTO trials(run_id, trial, seed, precision, recall, correct, precision_defined)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer trialStmt.Close()

	lexStmt, err := tx.Prepare(`
		INSERT INTO lexicon_entries(run_id, trial, position, word, meaning)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer lexStmt.Close()

	for _, t := range sum.Trials {
		if _, err := trialStmt.Exec(run.ID, t.Trial, t.Seed, t.Precision, t.Recall, t.Correct, boolToInt(t.PrecisionDefined)); err != nil {
			return fmt.Errorf("failed to insert trial %d: %w", t.Trial, err)
		}
		for i, e := range t.Lexicon {
			if _, err := lexStmt.Exec(run.ID, t.Trial, i, e.Word, e.Meaning); err != nil {
				return fmt.Errorf("failed to insert lexicon entry: %w", err)
			}
		}
	}

	return tx.Commit()
}

func (s *SQLRunStore) ListRuns(limit int) ([]RunInfo, error) {
	rows, err := s.db.Query(`
		SELECT id, created_at, trials, precision, recall, f
		FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var info RunInfo
		var created int64
		if err := rows.Scan(&info.ID, &created, &info.Trials, &info.Precision, &info.Recall, &info.F); err != nil {
			return nil, err
		}
		info.CreatedAt = time.Unix(created, 0)
		runs = append(runs, info)
	}
	return runs, rows.Err()
}

func (s *SQLRunStore) LoadRun(id string) (Run, error) {
	var run Run
	var created int64
	var mode string
	err := s.db.QueryRow(`
		SELECT id, created_at, seed, gamma, lambda, tau, precision_mode, fingerprint, precision, recall, f, degenerate
		FROM runs WHERE id = ?`, id).Scan(
		&run.ID, &created, &run.Seed,
		&run.Params.Gamma, &run.Params.Lambda, &run.Params.Tau,
		&mode, &run.Fingerprint,
		&run.Summary.Precision, &run.Summary.Recall, &run.Summary.F, &run.Summary.Degenerate)
	if err == sql.ErrNoRows {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, err
	}
	run.CreatedAt = time.Unix(created, 0)
	if run.Precision, err = eval.ParsePrecisionMode(mode); err != nil {
		return Run{}, err
	}

	trials, err := s.loadTrials(id)
	if err != nil {
		return Run{}, err
	}
	run.Summary.Trials = trials
	for _, t := range trials {
		run.Summary.PrecisionSum += t.Precision
		run.Summary.RecallSum += t.Recall
	}
	return run, nil
}

func (s *SQLRunStore) loadTrials(id string) ([]sim.TrialResult, error) {
	rows, err := s.db.Query(`
		SELECT trial, seed, precision, recall, correct, precision_defined
		FROM trials WHERE run_id = ? ORDER BY trial`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trials []sim.TrialResult
	index := map[int]int{}
	for rows.Next() {
		var t sim.TrialResult
		var defined int
		if err := rows.Scan(&t.Trial, &t.Seed, &t.Precision, &t.Recall, &t.Correct, &defined); err != nil {
			return nil, err
		}
		t.PrecisionDefined = defined != 0
		index[t.Trial] = len(trials)
		trials = append(trials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lexRows, err := s.db.Query(`
		SELECT trial, word, meaning FROM lexicon_entries
		WHERE run_id = ? ORDER BY trial, position`, id)
	if err != nil {
		return nil, err
	}
	defer lexRows.Close()

	for lexRows.Next() {
		var trial int
		var e pursuit.Entry
		if err := lexRows.Scan(&trial, &e.Word, &e.Meaning); err != nil {
			return nil, err
		}
		if i, ok := index[trial]; ok {
			trials[i].Lexicon = append(trials[i].Lexicon, e)
		}
	}
	return trials, lexRows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
