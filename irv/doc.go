// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package irv implements single-winner Instant-Runoff Voting tabulation.

# Candidates and Ballots

A Candidate is an immutable named participant. Two candidates are equal iff
their names are equal:

	ollie := irv.NewCandidate("Ollie")

A Ballot ranks candidates from most to least preferred. It can be built in
one go:

	b := irv.NewBallot(ollie, robert)

or incrementally, which is how ballot files are read:

	b := irv.NewIncrementalBallot()
	b.Append(ollie)
	b.Append(robert)
	b.FinalizeChoices()

A ballot finalized without any choices is discarded by the engine.

# Counting

The Engine owns the ballots, the fixed candidate pool, and the tally of
candidates still in contention:

	e, err := irv.NewEngine([]string{"Ollie", "Alicia", "George", "Robert"})
	e.AddBallot(b)
	if err := e.RunCountingRound(); err != nil { ... }
	for !e.HasWinner() {
		if _, err := e.EliminateWeakestAndRecount(); err != nil { ... }
	}
	winner, _ := e.Winner()

Each round credits every ballot to its highest ranked candidate that is
still active. Ballots whose choices have all been eliminated are exhausted
and credit nobody.

# Winner Rule

With one active candidate left, that candidate wins. Otherwise a candidate
wins when floor(votes*100/ballots) is at least MajorityThreshold (51), where
ballots counts every ballot ever added, exhausted or not.

# Elimination

The active candidate with the fewest votes is removed. When several share
the minimum, the engine's TieBreaker picks one. Production code uses
NewRandomTieBreaker; tests use FirstInPoolOrder.

# Notifications

A Listener passed with WithListener is called after every mutation with the
kind of change. It receives no state; observers query the engine.

# Concurrency

An Engine is not safe for concurrent use. Callers serialize access
themselves, one engine per election.
*/
package irv
