package eval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/trknhr/pursuit/internal/pursuit"
)

// ErrNoPredictions is returned when the lexicon is too small for precision to
// be defined under the selected mode.
var ErrNoPredictions = errors.New("no predictions to score")

// PrecisionMode selects the precision denominator.
type PrecisionMode int

const (
	// PrecisionCorrected divides by the lexicon size.
	PrecisionCorrected PrecisionMode = iota
	// PrecisionLegacy divides by the lexicon size minus one, reproducing
	// historically published numbers.
	PrecisionLegacy
)

func (m PrecisionMode) String() string {
	switch m {
	case PrecisionLegacy:
		return "legacy"
	default:
		return "corrected"
	}
}

func ParsePrecisionMode(s string) (PrecisionMode, error) {
	switch strings.ToLower(s) {
	case "", "corrected":
		return PrecisionCorrected, nil
	case "legacy":
		return PrecisionLegacy, nil
	default:
		return PrecisionCorrected, fmt.Errorf("unknown precision mode %q (corrected, legacy)", s)
	}
}

type Result struct {
	Precision float64
	Recall    float64
	Correct   int
	// PrecisionDefined is false when the lexicon was too small to score;
	// Precision is then reported as 0.
	PrecisionDefined bool
	Lexicon          pursuit.Lexicon
}

// Evaluate scores lex against gold. A degenerate lexicon still yields recall
// together with ErrNoPredictions.
func Evaluate(lex pursuit.Lexicon, gold Gold, mode PrecisionMode) (Result, error) {
	r := Result{Lexicon: lex}
	for _, e := range lex {
		if m, ok := gold.Lookup(e.Word); ok && m == e.Meaning {
			r.Correct++
		}
	}
	if n := gold.Size(); n > 0 {
		r.Recall = float64(r.Correct) / float64(n)
	}

	learnt := len(lex)
	if mode == PrecisionLegacy {
		learnt--
	}
	if learnt <= 0 {
		return r, fmt.Errorf("%w: lexicon has %d entries (%s precision)", ErrNoPredictions, len(lex), mode)
	}
	r.Precision = float64(r.Correct) / float64(learnt)
	r.PrecisionDefined = true
	return r, nil
}

// FScore is the harmonic mean of precision and recall, 0 when either is 0.
func FScore(precision, recall float64) float64 {
	if precision <= 0 || recall <= 0 {
		return 0
	}
	return 2 / (1/precision + 1/recall)
}
