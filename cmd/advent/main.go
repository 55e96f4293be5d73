// Package main runs one day's puzzle solver against an input file and prints
// its answers.
//
//	advent -day 3 -input data/day03.txt -render
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/advent2020/internal/config"
	"github.com/katalvlaran/advent2020/internal/logger"
	"github.com/katalvlaran/advent2020/internal/solver"
	"github.com/katalvlaran/advent2020/puzzleinput"
	"github.com/katalvlaran/advent2020/render"
)

// errUsage marks bad command-line arguments; usage has already been printed.
var errUsage = errors.New("usage")

func main() {
	envFileErr := godotenv.Load()

	env, err := config.LoadEnv()
	if err != nil {
		log := logger.New("info", true, os.Stderr)
		log.Fatal().Err(err).Msg("load environment")
	}

	if err := run(os.Args[1:], env, envFileErr, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(1)
		}
		log := logger.New(env.LogLevel, env.LogPretty, os.Stderr)
		log.Fatal().Err(err).Msg("run failed")
	}
}

// run parses args, solves the selected day and writes answers to stdout.
// Logs go to stderr. envFileErr is the result of loading .env; a missing
// file is normal, any other failure is warned about.
func run(args []string, env config.Env, envFileErr error, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("advent", flag.ContinueOnError)
	fs.SetOutput(stderr)
	day := fs.Int("day", 0, "puzzle day to solve (required)")
	input := fs.String("input", "", "input file (default: <ADVENT_INPUT_DIR>/dayNN.txt)")
	cfgPath := fs.String("config", env.ConfigPath, "YAML file with puzzle parameters")
	trail := fs.Bool("render", false, "day 3: draw the primary slope's trail")
	level := fs.String("log-level", env.LogLevel, "log level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage of %s:\n", fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errUsage
	}

	log := logger.New(*level, env.LogPretty, stderr)
	switch {
	case envFileErr == nil:
	case errors.Is(envFileErr, os.ErrNotExist):
		log.Debug().Msg("no .env file found, using environment variables")
	default:
		log.Warn().Err(envFileErr).Msg("ignoring unreadable .env file")
	}

	puzzles, err := config.LoadPuzzles(*cfgPath)
	if err != nil {
		return err
	}
	registry := solver.Default(puzzles)

	s, err := registry.Lookup(*day)
	if err != nil {
		fmt.Fprintf(stderr, "-day must be one of %v\n", registry.Days())
		fs.Usage()
		return errUsage
	}
	if *trail {
		if tr, ok := s.(*solver.TobogganRun); ok {
			tr.Trail = stdout
			tr.Styles = render.DefaultStyles(lipgloss.NewRenderer(stdout))
		} else {
			log.Warn().Int("day", *day).Msg("-render only applies to day 3")
		}
	}

	path := *input
	if path == "" {
		path = filepath.Join(env.InputDir, fmt.Sprintf("day%02d.txt", *day))
	}
	raw, err := puzzleinput.ReadFile(path)
	if err != nil {
		return err
	}

	log.Info().Int("day", s.Day()).Str("title", s.Title()).Str("file", path).Msg("solving")
	answers, err := s.Solve(raw, log.With().Int("day", s.Day()).Logger())
	if err != nil {
		return fmt.Errorf("day %d: %w", s.Day(), err)
	}

	return printAnswers(stdout, answers, log)
}

func printAnswers(w io.Writer, answers []solver.Answer, log zerolog.Logger) error {
	for _, a := range answers {
		if _, err := fmt.Fprintf(w, "part %d: %s\n", a.Part, a.Text); err != nil {
			return err
		}
		if !a.Found {
			log.Warn().Int("part", a.Part).Msg("no result")
		}
	}

	return nil
}
