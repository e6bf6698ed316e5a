package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/trknhr/pursuit/internal/corpus"
	"github.com/trknhr/pursuit/internal/eval"
	"github.com/trknhr/pursuit/internal/pursuit"
)

type Config struct {
	Data       Data       `yaml:"data"`
	Learning   Learning   `yaml:"learning"`
	Evaluation Evaluation `yaml:"evaluation"`
	Simulation Simulation `yaml:"simulation"`
	Store      Store      `yaml:"store"`
	Log        Log        `yaml:"log"`
}

type Data struct {
	Words    string `yaml:"words"`
	Meanings string `yaml:"meanings"`
	Uttered  string `yaml:"uttered"`
	Visible  string `yaml:"visible"`
	// Gold is a YAML word-to-meaning file; empty selects the built-in mapping.
	Gold string `yaml:"gold"`
}

type Learning struct {
	Gamma  float64 `yaml:"gamma"`
	Lambda float64 `yaml:"lambda"`
	Tau    float64 `yaml:"tau"`
}

type Evaluation struct {
	LegacyPrecision bool `yaml:"legacy_precision"`
}

type Simulation struct {
	// Seed 0 derives a seed from the clock.
	Seed     int64 `yaml:"seed"`
	Parallel int   `yaml:"parallel"`
}

type Store struct {
	Path string `yaml:"path"`
	Save bool   `yaml:"save"`
}

type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func Default() Config {
	p := pursuit.DefaultParams()
	return Config{
		Data: Data{
			Words:    "frank.all_words.txt",
			Meanings: "frank.all_meanings.txt",
			Uttered:  "frank.uttered.txt",
			Visible:  "frank.visible.txt",
		},
		Learning:   Learning{Gamma: p.Gamma, Lambda: p.Lambda, Tau: p.Tau},
		Simulation: Simulation{Parallel: 1},
		Store:      Store{Path: DefaultStorePath()},
		Log:        Log{Level: "info"},
	}
}

// DefaultStorePath places the run database in the user cache directory.
func DefaultStorePath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "pursuit.db"
	}
	return filepath.Join(cacheDir, "pursuit", "pursuit.db")
}

// Load overlays the YAML file at path on the defaults. A missing file is an
// error; an empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Learning.Gamma <= 0 || c.Learning.Gamma >= 1 {
		errs = append(errs, fmt.Errorf("learning.gamma must be in (0, 1), got %v", c.Learning.Gamma))
	}
	if c.Learning.Lambda <= 0 {
		errs = append(errs, fmt.Errorf("learning.lambda must be positive, got %v", c.Learning.Lambda))
	}
	if c.Learning.Tau <= 0 || c.Learning.Tau >= 1 {
		errs = append(errs, fmt.Errorf("learning.tau must be in (0, 1), got %v", c.Learning.Tau))
	}
	if c.Simulation.Parallel < 1 {
		errs = append(errs, fmt.Errorf("simulation.parallel must be at least 1, got %d", c.Simulation.Parallel))
	}
	return errors.Join(errs...)
}

func (c Config) Params() pursuit.Params {
	return pursuit.Params{Gamma: c.Learning.Gamma, Lambda: c.Learning.Lambda, Tau: c.Learning.Tau}
}

func (c Config) Files() corpus.Files {
	return corpus.Files{
		Words:    c.Data.Words,
		Meanings: c.Data.Meanings,
		Uttered:  c.Data.Uttered,
		Visible:  c.Data.Visible,
		Gold:     c.Data.Gold,
	}
}

func (c Config) PrecisionMode() eval.PrecisionMode {
	if c.Evaluation.LegacyPrecision {
		return eval.PrecisionLegacy
	}
	return eval.PrecisionCorrected
}
