package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/trknhr/pursuit/internal/eval"
	"github.com/trknhr/pursuit/internal/logger"
	"github.com/trknhr/pursuit/internal/pursuit"
	"github.com/trknhr/pursuit/internal/utils"
)

// Files names the inputs of a simulation. Gold is optional.
type Files struct {
	Words    string
	Meanings string
	Uttered  string
	Visible  string
	Gold     string
}

func (f Files) paths() []string {
	paths := []string{f.Words, f.Meanings, f.Uttered, f.Visible}
	if f.Gold != "" {
		paths = append(paths, f.Gold)
	}
	return paths
}

// Corpus is the read-only input shared by every trial.
type Corpus struct {
	Words       []string
	Meanings    []string
	Utterances  []pursuit.Utterance
	Gold        eval.Gold
	Fingerprint string
}

func Load(files Files) (*Corpus, error) {
	words, err := LoadVocabulary(files.Words)
	if err != nil {
		return nil, fmt.Errorf("failed to load word vocabulary: %w", err)
	}
	meanings, err := LoadVocabulary(files.Meanings)
	if err != nil {
		return nil, fmt.Errorf("failed to load meaning vocabulary: %w", err)
	}
	utterances, err := LoadUtterances(files.Uttered, files.Visible)
	if err != nil {
		return nil, err
	}

	gold := eval.FrankGold()
	if files.Gold != "" {
		if gold, err = LoadGold(files.Gold); err != nil {
			return nil, fmt.Errorf("failed to load gold standard: %w", err)
		}
	}

	c := &Corpus{Words: words, Meanings: meanings, Utterances: utterances, Gold: gold}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Fingerprint, err = utils.HashFiles(files.paths()...); err != nil {
		return nil, err
	}
	logger.Debug("loaded corpus: %d words, %d meanings, %d utterances", len(words), len(meanings), len(utterances))
	return c, nil
}

// LoadUtterances pairs the uttered-word and visible-meaning streams line by line.
func LoadUtterances(utteredPath, visiblePath string) ([]pursuit.Utterance, error) {
	uttered, err := loadRecords(utteredPath)
	if err != nil {
		return nil, err
	}
	visible, err := loadRecords(visiblePath)
	if err != nil {
		return nil, err
	}
	return Pair(uttered, visible)
}

// Pair matches records that come from the same line of their files.
func Pair(uttered, visible []Record) ([]pursuit.Utterance, error) {
	if len(uttered) != len(visible) {
		return nil, fmt.Errorf("%w: %d uttered records, %d visible records", ErrLineCountMismatch, len(uttered), len(visible))
	}
	utterances := make([]pursuit.Utterance, len(uttered))
	for i := range uttered {
		if uttered[i].Line != visible[i].Line {
			return nil, fmt.Errorf("%w: uttered line %d paired with visible line %d", ErrLineCountMismatch, uttered[i].Line, visible[i].Line)
		}
		utterances[i] = pursuit.Utterance{Words: uttered[i].Tokens, Meanings: visible[i].Tokens}
	}
	return utterances, nil
}

func loadRecords(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRecords(f, path)
}

// Validate checks that every utterance only refers to known words and meanings.
func (c *Corpus) Validate() error {
	words := make(map[string]bool, len(c.Words))
	for _, w := range c.Words {
		words[w] = true
	}
	meanings := make(map[string]bool, len(c.Meanings))
	for _, m := range c.Meanings {
		meanings[m] = true
	}
	for i, u := range c.Utterances {
		for _, w := range u.Words {
			if !words[w] {
				return fmt.Errorf("utterance %d: %w: %q", i+1, ErrUnknownWord, w)
			}
		}
		for _, m := range u.Meanings {
			if !meanings[m] {
				return fmt.Errorf("utterance %d: %w: %q", i+1, ErrUnknownMeaning, m)
			}
		}
	}
	return nil
}

// LoadGold reads a YAML mapping of word to meaning.
func LoadGold(path string) (eval.Gold, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	gold := eval.Gold{}
	if err := yaml.Unmarshal(data, &gold); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return gold, nil
}
