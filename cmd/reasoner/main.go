// Package main is the entry point for the reasoner demo binary.
//
// It reads lines of Narsese from stdin, one sentence per line, feeds each
// as an input task, and runs the reasoning cycle a fixed number of times
// per line before printing whatever the cycle emitted. It is the thin
// outer shell around the reasoning core: command parsing, surface-syntax
// lexing and transport framing all live here, never inside the core
// packages.
//
// Accepted line forms:
//
//	<raven --> bird>.     a judgment, default truth 1.0/0.9
//	<raven --> bird>. %0.9;0.9%   a judgment with explicit truth
//	<raven --> bird>?     a question
//	:inspect summary      prints a metrics summary
//	:save path/to/file.db persists a concept snapshot
//
// Environment variables:
//   - DEBUG: set to "true" to enable debug logging
//   - REASONER_CYCLES_PER_LINE: how many reasoning cycles to run after
//     each input line (default 5)
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/narsgo/reasoner/internal/config"
	"github.com/narsgo/reasoner/internal/reasoner"
	"github.com/narsgo/reasoner/internal/validation"
	"github.com/narsgo/reasoner/internal/value"
)

// stdoutSink prints every reasoning event to stdout as it's emitted.
type stdoutSink struct{}

func (stdoutSink) Emit(o reasoner.Output) { fmt.Println(o.String()) }

func main() {
	if os.Getenv("DEBUG") == "true" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.Println("starting reasoner in debug mode")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	log.Printf("loaded config: concept bag capacity %d, budget threshold %.2f",
		cfg.Bags.ConceptCapacity, cfg.Reasoner.BudgetThreshold)

	cyclesPerLine := 5
	if v := os.Getenv("REASONER_CYCLES_PER_LINE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cyclesPerLine = n
		}
	}

	r := reasoner.New(cfg, stdoutSink{})
	log.Println("reasoner initialized, reading Narsese from stdin")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if err := dispatch(r, line); err != nil {
			fmt.Printf("ERROR: %v\n", err)
			continue
		}
		for i := 0; i < cyclesPerLine; i++ {
			r.Cycle()
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("reading stdin: %v", err)
	}
}

// dispatch classifies one input line and submits it to r, or runs an
// inspection/persistence command when the line starts with ":".
func dispatch(r *reasoner.Reasoner, line string) error {
	if strings.HasPrefix(line, ":") {
		return dispatchCommand(r, line)
	}

	switch {
	case strings.HasSuffix(line, "?"):
		content, err := validation.ParseTerm(strings.TrimSuffix(line, "?"))
		if err != nil {
			return err
		}
		if err := validation.RequireConstant(content); err != nil {
			return err
		}
		_, err = r.InputQuestion(content)
		return err

	case strings.Contains(line, "."):
		text, truth := splitJudgment(line)
		content, err := validation.ParseTerm(strings.TrimSuffix(text, "."))
		if err != nil {
			return err
		}
		if err := validation.RequireConstant(content); err != nil {
			return err
		}
		_, err = r.InputJudgment(content, truth)
		return err

	default:
		return fmt.Errorf("unrecognized line (missing '.' or '?'): %q", line)
	}
}

// splitJudgment separates a judgment's term text from a trailing
// "%frequency;confidence%" truth annotation, defaulting to a confident
// assertion when none is given.
func splitJudgment(line string) (string, value.Truth) {
	truth := value.NewTruth(1.0, 0.9)
	start := strings.LastIndex(line, "%")
	if start < 0 {
		return line, truth
	}
	end := strings.LastIndex(line[:start], "%")
	if end < 0 {
		return line, truth
	}
	annotation := line[end+1 : start]
	parts := strings.Split(annotation, ";")
	if len(parts) != 2 {
		return line, truth
	}
	f, errF := strconv.ParseFloat(parts[0], 64)
	c, errC := strconv.ParseFloat(parts[1], 64)
	if errF != nil || errC != nil {
		return line, truth
	}
	return strings.TrimSpace(line[:end]), value.NewTruth(f, c)
}

func dispatchCommand(r *reasoner.Reasoner, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":inspect":
		if len(fields) < 2 {
			return fmt.Errorf(":inspect requires a target")
		}
		if err := validation.RequireKnownInspectTarget(fields[1]); err != nil {
			return err
		}
		summary := r.Inspect()
		fmt.Printf("concepts=%d beliefs=%d questions=%d answered=%.2f complexity=[%d,%d] mean=%.2f\n",
			summary.ConceptCount, summary.BeliefCount, summary.QuestionCount,
			summary.AnsweredFraction(), summary.MinComplexity, summary.MaxComplexity, summary.MeanComplexity)
		return nil

	case ":save":
		if len(fields) < 2 {
			return fmt.Errorf(":save requires a path")
		}
		return r.SaveSnapshot(fields[1])

	default:
		return fmt.Errorf("unrecognized command: %q", fields[0])
	}
}
