// Package solver binds each puzzle day to the algorithm that answers it and
// keeps them in a Registry the CLI can dispatch on.
package solver

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/advent2020/internal/config"
)

// Sentinel errors for the registry.
var (
	// ErrUnknownDay is returned by Lookup for a day nobody registered.
	ErrUnknownDay = errors.New("solver: no solver registered for day")
	// ErrDuplicateDay is returned by Register when the day is taken.
	ErrDuplicateDay = errors.New("solver: day already registered")
)

// Answer is one reported result of a puzzle part.
type Answer struct {
	Part  int    // 1 or 2
	Value int    // numeric answer; meaningless when Found is false
	Found bool   // false for a search that legitimately came up empty
	Text  string // human-readable line
}

// Solver answers one day's puzzle from its raw input.
type Solver interface {
	Day() int
	Title() string
	Solve(raw string, log zerolog.Logger) ([]Answer, error)
}

// Registry maps day numbers to solvers.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[int]Solver)}
}

// Default returns a Registry holding every day, parameterised by cfg.
func Default(cfg config.Puzzles) *Registry {
	r := NewRegistry()
	for _, s := range []Solver{
		&ExpenseReport{Target: cfg.ExpenseReport.Target, Depths: cfg.ExpenseReport.Depths},
		&PasswordPolicy{},
		&TobogganRun{Primary: cfg.Toboggan.Primary, Slopes: cfg.Toboggan.Slopes},
	} {
		r.MustRegister(s)
	}

	return r
}

// Register adds s under s.Day().
func (r *Registry) Register(s Solver) error {
	if _, ok := r.solvers[s.Day()]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, s.Day())
	}
	r.solvers[s.Day()] = s

	return nil
}

// MustRegister is like Register but panics on a duplicate day.
func (r *Registry) MustRegister(s Solver) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Lookup returns the solver for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Days lists registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	sort.Ints(days)

	return days
}
