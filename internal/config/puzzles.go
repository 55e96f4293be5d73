package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/advent2020/toboggan"
)

// ErrInvalidConfig indicates puzzle settings that no solver can run with.
var ErrInvalidConfig = errors.New("config: invalid puzzle settings")

// Puzzles holds the tunable parameters of every day.
type Puzzles struct {
	ExpenseReport ExpenseReport `yaml:"expense_report"`
	Toboggan      Toboggan      `yaml:"toboggan"`
}

// ExpenseReport configures day 1: one search per depth, all for Target.
type ExpenseReport struct {
	Target int   `yaml:"target"`
	Depths []int `yaml:"depths"`
}

// Toboggan configures day 3: a single run along Primary, then the product
// over Slopes.
type Toboggan struct {
	Primary toboggan.Slope   `yaml:"primary"`
	Slopes  []toboggan.Slope `yaml:"slopes"`
}

// DefaultPuzzles returns the parameters of the published puzzles.
func DefaultPuzzles() Puzzles {
	return Puzzles{
		ExpenseReport: ExpenseReport{Target: 2020, Depths: []int{2, 3}},
		Toboggan: Toboggan{
			Primary: toboggan.PrimarySlope,
			Slopes:  toboggan.DefaultSlopes(),
		},
	}
}

// LoadPuzzles reads YAML from path over the defaults and validates the
// result. An empty path yields the defaults; so does an empty file.
// Unknown keys are rejected with ErrInvalidConfig.
func LoadPuzzles(path string) (Puzzles, error) {
	cfg := DefaultPuzzles()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Puzzles{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Puzzles{}, fmt.Errorf("%w: decode %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Puzzles{}, err
	}

	return cfg, nil
}

// Validate rejects settings a solver would fail on.
func (p Puzzles) Validate() error {
	if p.ExpenseReport.Target < 0 {
		return fmt.Errorf("%w: expense_report.target %d is negative", ErrInvalidConfig, p.ExpenseReport.Target)
	}
	if len(p.ExpenseReport.Depths) == 0 {
		return fmt.Errorf("%w: expense_report.depths is empty", ErrInvalidConfig)
	}
	for i, d := range p.ExpenseReport.Depths {
		if d < 1 {
			return fmt.Errorf("%w: expense_report.depths[%d] = %d", ErrInvalidConfig, i, d)
		}
	}
	if err := p.Toboggan.Primary.Validate(); err != nil {
		return fmt.Errorf("%w: toboggan.primary: %v", ErrInvalidConfig, err)
	}
	if len(p.Toboggan.Slopes) == 0 {
		return fmt.Errorf("%w: toboggan.slopes is empty", ErrInvalidConfig)
	}
	for i, s := range p.Toboggan.Slopes {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%w: toboggan.slopes[%d]: %v", ErrInvalidConfig, i, err)
		}
	}

	return nil
}
