// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballotfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/danielhkuo/runoff/irv"
)

var (
	ErrUnreadable       = errors.New("ballot file could not be read")
	ErrMalformedRecord  = errors.New("malformed ballot record")
	ErrUnknownCandidate = errors.New("unknown candidate")
)

// CandidateLookup resolves a candidate by exact name.
type CandidateLookup interface {
	CandidateNamed(name string) (irv.Candidate, error)
}

// Tabulator is what Load feeds ballots into. *irv.Engine implements it.
type Tabulator interface {
	CandidateLookup
	AddBallot(b *irv.Ballot) bool
}

// Summary reports what a Load did.
type Summary struct {
	Added     int
	Discarded int
}

// Read parses every record in r and returns the ballots in file order.
// The final ballot is always returned, even when it has no choices.
func Read(r io.Reader, lookup CandidateLookup) ([]*irv.Ballot, error) {
	var ballots []*irv.Ballot
	ballot := irv.NewIncrementalBallot()

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		rank, name, err := parseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		// Rank 1 starts the next ballot
		if rank == 1 {
			if ballot.HasAnyChoices() {
				ballots = append(ballots, ballot)
			}
			ballot = irv.NewIncrementalBallot()
		}

		c, err := lookup.CandidateNamed(name)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w %q", line, ErrUnknownCandidate, name)
		}
		ballot.Append(c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	return append(ballots, ballot), nil
}

func parseRecord(text string) (int, string, error) {
	rankText, name, ok := strings.Cut(text, ",")
	if !ok {
		return 0, "", fmt.Errorf("%w: missing comma in %q", ErrMalformedRecord, text)
	}

	rank, err := strconv.Atoi(strings.TrimSpace(rankText))
	if err != nil || rank < 1 {
		return 0, "", fmt.Errorf("%w: rank %q is not a positive integer", ErrMalformedRecord, rankText)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return 0, "", fmt.Errorf("%w: empty candidate name", ErrMalformedRecord)
	}
	return rank, name, nil
}

// Load reads all ballots from r and adds them to t. Nothing is added when
// reading fails.
func Load(r io.Reader, t Tabulator) (Summary, error) {
	ballots, err := Read(r, t)
	if err != nil {
		return Summary{}, err
	}

	var s Summary
	for _, b := range ballots {
		if t.AddBallot(b) {
			s.Added++
		} else {
			s.Discarded++
		}
	}
	return s, nil
}

// LoadFile opens path and loads it into t.
func LoadFile(path string, t Tabulator) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer f.Close()

	return Load(f, t)
}

// Write encodes ballots in the format Read accepts.
func Write(w io.Writer, ballots []*irv.Ballot) error {
	bw := bufio.NewWriter(w)
	for _, b := range ballots {
		for rank := 0; b.HasChoiceAt(rank); rank++ {
			if _, err := fmt.Fprintf(bw, "%d,%s\n", rank+1, b.ChoiceAt(rank).Name()); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
