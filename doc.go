// Package advent2020 is a small collection of Advent of Code 2020 solvers —
// one batch pass per day: read the input, parse it, compute, print.
//
// 🚀 What is inside?
//
//	The algorithmic pieces live in standalone packages with no shared state:
//		• subsetsum — k distinct entries that sum to a target (day 1)
//		• password  — occurrence-count password policies (day 2)
//		• toboggan  — slope walks over a horizontally repeating tile map (day 3)
//		• render    — the day 3 trail drawn over its map
//
// ✨ Why this layout?
//
//   - Each algorithm is a plain function or method with sentinel errors;
//     nothing panics on bad input.
//   - The CLI (cmd/advent) is thin glue: flags, env (ADVENT_*), an optional
//     YAML file for targets, depths and slopes, zerolog on stderr.
//
// Under the hood:
//
//	subsetsum/         — depth-bounded backtracking search
//	password/          — "<low>-<high> <char>: <password>" entries
//	toboggan/          — Map, Tile, Position, Slope, Traverse
//	render/            — lipgloss trail overlay
//	puzzleinput/       — file → text → lines / ints
//	internal/config    — env + YAML puzzle settings
//	internal/logger    — zerolog setup
//	internal/solver    — day registry
//	cmd/advent         — the binary
//
// Quick start:
//
//	go run ./cmd/advent -day 3 -input data/day03.txt -render
package advent2020
