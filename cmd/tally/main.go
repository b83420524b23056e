// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command tally counts a ballot file by instant-runoff and prints every round.
//
//	tally -c "Ollie,Alicia,George,Robert" ballots.csv
//
// Output is an aligned table on a terminal and rank,candidate,votes,percentage
// records otherwise.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/runoff/ballotfile"
	"github.com/danielhkuo/runoff/cliparse"
	"github.com/danielhkuo/runoff/irv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	terminal := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if err := run(os.Args[1:], os.Stdout, terminal); err != nil {
		slog.Error("tally failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, terminal bool) error {
	var candidates, tieBreak string

	flags := flag.NewFlagSet("tally", flag.ContinueOnError)
	flags.StringVar(&candidates, "c", os.Getenv("CANDIDATES"), "Comma-separated candidate names")
	flags.StringVar(&tieBreak, "tie-break", cliparse.TieBreakRandom, "Tie-break mode (random or first)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return errors.New("usage: tally [-c names] [-tie-break random|first] <ballot file>")
	}

	names := irv.DefaultCandidates
	if candidates != "" {
		var err error
		if names, err = cliparse.ParseCandidates(candidates); err != nil {
			return err
		}
	}

	if tieBreak != cliparse.TieBreakRandom && tieBreak != cliparse.TieBreakFirst {
		return fmt.Errorf("unknown tie-break mode %q", tieBreak)
	}
	cfg := cliparse.Config{TieBreak: tieBreak}

	engine, err := irv.NewEngine(names, irv.WithTieBreaker(cfg.TieBreaker()))
	if err != nil {
		return err
	}

	summary, err := ballotfile.LoadFile(flags.Arg(0), engine)
	if err != nil {
		return err
	}
	slog.Debug("ballots loaded", "added", summary.Added, "discarded", summary.Discarded)

	rounds, err := engine.RunToCompletion()
	if err != nil {
		return err
	}

	if terminal {
		return printTable(out, rounds)
	}
	return printRecords(out, rounds)
}

func printTable(out io.Writer, rounds []irv.Tally) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	for i, t := range rounds {
		fmt.Fprintf(tw, "%s round\t%s ballots\t%s exhausted\t\n",
			humanize.Ordinal(t.Round), humanize.Comma(int64(t.TotalBallots)), humanize.Comma(int64(t.Exhausted)))
		if i > 0 {
			for _, c := range newlyEliminated(rounds[i-1], t) {
				fmt.Fprintf(tw, "eliminated\t%s\t\t\n", c.Name())
			}
		}
		for _, r := range t.Results {
			fmt.Fprintf(tw, "%s\t%s\t%d%%\t\n", r.Candidate.Name(), humanize.Comma(int64(r.Votes)), r.Percentage)
		}
		fmt.Fprintln(tw, "\t\t\t")
	}
	fmt.Fprintln(tw, rounds[len(rounds)-1].Announcement())
	return tw.Flush()
}

// newlyEliminated lists candidates active in prev but not in cur.
func newlyEliminated(prev, cur irv.Tally) []irv.Candidate {
	var out []irv.Candidate
	for _, c := range cur.Eliminated {
		if !slices.Contains(prev.Eliminated, c) {
			out = append(out, c)
		}
	}
	return out
}

func printRecords(out io.Writer, rounds []irv.Tally) error {
	for _, t := range rounds {
		for _, r := range t.Results {
			if _, err := fmt.Fprintf(out, "%d,%s,%d,%d\n", t.Round, r.Candidate.Name(), r.Votes, r.Percentage); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(out, "# %s\n", rounds[len(rounds)-1].Announcement())
	return err
}
