// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package irv

import (
	"fmt"

	"github.com/dustin/go-humanize/english"
)

// Result is one active candidate's standing in a round.
type Result struct {
	Candidate  Candidate
	Votes      int
	Percentage int
}

// Tally is a read-only view of an engine after a round.
type Tally struct {
	Round        int
	TotalBallots int
	Exhausted    int
	Results      []Result // active candidates, pool order
	Eliminated   []Candidate
	Winner       Candidate // zero when HasWinner is false
	HasWinner    bool
}

// Snapshot captures the engine's current state.
func (e *Engine) Snapshot() Tally {
	t := Tally{
		Round:        e.round,
		TotalBallots: len(e.ballots),
		Exhausted:    e.exhausted,
		Results:      make([]Result, 0, len(e.tally)),
	}

	for i, c := range e.pool {
		votes, ok := e.tally[i]
		if !ok {
			t.Eliminated = append(t.Eliminated, c)
			continue
		}
		pct := 0
		if t.TotalBallots > 0 {
			pct = votes * 100 / t.TotalBallots
		}
		t.Results = append(t.Results, Result{Candidate: c, Votes: votes, Percentage: pct})
	}

	if w := e.determineWinner(); w >= 0 {
		t.Winner = e.pool[w]
		t.HasWinner = true
	}
	return t
}

// VotesCast is the number of ballots credited to someone in this round.
func (t Tally) VotesCast() int {
	sum := 0
	for _, r := range t.Results {
		sum += r.Votes
	}
	return sum
}

// RunToCompletion counts the ballots and keeps eliminating until a winner
// emerges. It returns the tally of every round, first round first.
func (e *Engine) RunToCompletion() ([]Tally, error) {
	if err := e.RunCountingRound(); err != nil {
		return nil, err
	}

	rounds := []Tally{e.Snapshot()}
	for !e.HasWinner() {
		if _, err := e.EliminateWeakestAndRecount(); err != nil {
			return rounds, fmt.Errorf("round %d: %w", e.round+1, err)
		}
		rounds = append(rounds, e.Snapshot())
	}
	return rounds, nil
}

// WinnerAnnouncement returns a one-line result, e.g. "Robert has won with 4 votes".
func (e *Engine) WinnerAnnouncement() (string, error) {
	t := e.Snapshot()
	if !t.HasWinner {
		return "", ErrNoWinnerYet
	}
	return t.Announcement(), nil
}

// Announcement is the winner line for this tally, or "" without a winner.
func (t Tally) Announcement() string {
	if !t.HasWinner {
		return ""
	}
	votes := 0
	for _, r := range t.Results {
		if r.Candidate == t.Winner {
			votes = r.Votes
		}
	}
	return fmt.Sprintf("%s has won with %s", t.Winner.Name(), english.Plural(votes, "vote", ""))
}
