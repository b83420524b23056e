// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package irv

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"
)

// newTestEngine returns an engine over the default pool that breaks ties
// deterministically.
func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()

	opts = append([]Option{WithTieBreaker(FirstInPoolOrder)}, opts...)
	e, err := NewEngine(DefaultCandidates, opts...)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return e
}

func addBallots(t *testing.T, e *Engine, rows ...[]string) {
	t.Helper()

	for _, row := range rows {
		ballot := NewIncrementalBallot()
		for _, name := range row {
			c, err := e.CandidateNamed(name)
			if err != nil {
				t.Fatalf("CandidateNamed(%q) failed: %v", name, err)
			}
			ballot.Append(c)
		}
		if !e.AddBallot(ballot) {
			t.Fatalf("Ballot %v was discarded", row)
		}
	}
}

func votesFor(t *testing.T, e *Engine, name string) int {
	t.Helper()

	votes, err := e.VotesFor(NewCandidate(name))
	if err != nil {
		t.Fatalf("VotesFor(%q) failed: %v", name, err)
	}
	return votes
}

func repeat(n int, row ...string) [][]string {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = row
	}
	return rows
}

// Five ballots, Robert first on four of them
var fiveBallots = [][]string{
	{"Robert", "Ollie"},
	{"Robert", "George"},
	{"Alicia", "Robert"},
	{"Robert"},
	{"Robert", "Alicia", "Ollie", "George"},
}

// Eight ballots splitting 3/3/1/1 in the first round
var eightBallots = [][]string{
	{"Ollie", "Alicia"},
	{"Ollie"},
	{"Ollie", "George"},
	{"Alicia"},
	{"Alicia", "Ollie"},
	{"Alicia", "Robert"},
	{"George", "Ollie"},
	{"Robert", "Ollie"},
}

// Twenty ballots splitting 8/7/3/2 in the first round
func twentyBallots() [][]string {
	var rows [][]string
	rows = append(rows, repeat(8, "Ollie")...)
	rows = append(rows, repeat(7, "Alicia", "Ollie")...)
	rows = append(rows, repeat(3, "George", "Ollie")...)
	rows = append(rows, repeat(2, "Robert", "George", "Ollie")...)
	return rows
}

func TestNewEngine(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		wantErr bool
	}{
		{"default pool", DefaultCandidates, false},
		{"single candidate", []string{"Solo"}, false},
		{"empty pool", nil, true},
		{"empty name", []string{"Ollie", ""}, true},
		{"duplicate name", []string{"Ollie", "Alicia", "Ollie"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngine(tt.names)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPool) {
					t.Errorf("Expected ErrInvalidPool, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(e.ActiveCandidates()) != len(tt.names) {
				t.Errorf("Expected %d active candidates, got %d", len(tt.names), len(e.ActiveCandidates()))
			}
		})
	}
}

func TestAddBallot(t *testing.T) {
	e := newTestEngine(t)

	ballot := NewBallot(NewCandidate("Ollie"), NewCandidate("George"))
	if !e.AddBallot(ballot) {
		t.Fatal("Expected ballot to be added")
	}

	ballots := e.Ballots()
	if len(ballots) != 1 || ballots[0] != ballot {
		t.Errorf("Expected the added ballot to be listed, got %v", ballots)
	}

	mustPanic(t, "nil ballot", func() { e.AddBallot(nil) })
}

func TestAddBallotFinalizesIncrementalBallot(t *testing.T) {
	e := newTestEngine(t)

	ballot := NewIncrementalBallot()
	ballot.Append(NewCandidate("Alicia"))
	e.AddBallot(ballot)

	if !ballot.IsFinalized() {
		t.Error("AddBallot should finalize the ballot")
	}
	if !ballot.HasChoiceAt(0) || ballot.ChoiceAt(0).Name() != "Alicia" {
		t.Errorf("Unexpected ranking after AddBallot: %v", ballot.Choices())
	}
}

func TestEmptyBallotIsDiscarded(t *testing.T) {
	e := newTestEngine(t)
	addBallots(t, e, []string{"Ollie"})

	empty := NewIncrementalBallot()
	empty.FinalizeChoices()
	if e.AddBallot(empty) {
		t.Error("Expected empty ballot to be discarded")
	}

	// Never finalized by the caller
	if e.AddBallot(NewIncrementalBallot()) {
		t.Error("Expected unfinalized empty ballot to be discarded")
	}

	for _, b := range e.Ballots() {
		if b == empty || b.Len() == 0 {
			t.Error("Empty ballot appears in Ballots()")
		}
	}
	if e.TotalBallots() != 1 {
		t.Errorf("Expected 1 ballot, got %d", e.TotalBallots())
	}
}

func TestIsCandidateInContention(t *testing.T) {
	e := newTestEngine(t)

	for _, c := range e.ActiveCandidates() {
		if !e.IsCandidateInContention(c.Name()) {
			t.Errorf("Expected %s to be in contention", c)
		}
	}
	if e.IsCandidateInContention(".") {
		t.Error("Did not expect '.' to be in contention")
	}
	if e.IsCandidateInContention("") {
		t.Error("Did not expect empty name to be in contention")
	}
}

func TestCandidateNamed(t *testing.T) {
	e := newTestEngine(t)

	c, err := e.CandidateNamed("Alicia")
	if err != nil {
		t.Fatalf("CandidateNamed failed: %v", err)
	}
	if c.Name() != "Alicia" {
		t.Errorf("Expected Alicia, got %s", c)
	}

	_, err = e.CandidateNamed("Nobody")
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Errorf("Expected ErrCandidateNotFound, got %v", err)
	}
}

func TestCanBeginCounting(t *testing.T) {
	e := newTestEngine(t)

	if e.CanBeginCounting() {
		t.Error("Should not be able to count without ballots")
	}
	if err := e.RunCountingRound(); !errors.Is(err, ErrNoBallotsYet) {
		t.Errorf("Expected ErrNoBallotsYet, got %v", err)
	}
	if _, err := e.EliminateWeakestAndRecount(); !errors.Is(err, ErrNoBallotsYet) {
		t.Errorf("Expected ErrNoBallotsYet, got %v", err)
	}

	addBallots(t, e, []string{"Ollie"})
	if !e.CanBeginCounting() {
		t.Error("Should be able to count with one ballot")
	}
}

func TestRunCountingRound(t *testing.T) {
	e := newTestEngine(t)
	addBallots(t, e, DefaultCandidates)

	if err := e.RunCountingRound(); err != nil {
		t.Fatalf("RunCountingRound failed: %v", err)
	}
	if got := votesFor(t, e, "Ollie"); got != 1 {
		t.Errorf("Expected Ollie to have 1 vote, got %d", got)
	}

	addBallots(t, e, DefaultCandidates)
	e.ResetElection()
	if err := e.RunCountingRound(); err != nil {
		t.Fatalf("RunCountingRound failed: %v", err)
	}
	if got := votesFor(t, e, "Ollie"); got != 2 {
		t.Errorf("Expected Ollie to have 2 votes after reset, got %d", got)
	}
	if e.Round() != 1 {
		t.Errorf("Expected round 1 after reset and one count, got %d", e.Round())
	}
}

func TestVotesForInvalidCandidate(t *testing.T) {
	e := newTestEngine(t)
	addBallots(t, e, eightBallots...)
	if err := e.RunCountingRound(); err != nil {
		t.Fatalf("RunCountingRound failed: %v", err)
	}

	if _, err := e.VotesFor(NewCandidate("Nobody")); !errors.Is(err, ErrInvalidCandidate) {
		t.Errorf("Expected ErrInvalidCandidate for unknown name, got %v", err)
	}

	eliminated, err := e.EliminateWeakestAndRecount()
	if err != nil {
		t.Fatalf("EliminateWeakestAndRecount failed: %v", err)
	}
	if _, err := e.VotesFor(eliminated); !errors.Is(err, ErrInvalidCandidate) {
		t.Errorf("Expected ErrInvalidCandidate for eliminated candidate, got %v", err)
	}
	if e.IsActive(eliminated.Name()) {
		t.Errorf("%s should no longer be active", eliminated)
	}
	if !e.IsCandidateInContention(eliminated.Name()) {
		t.Errorf("%s should still be a valid ballot entry", eliminated)
	}
}

func TestScenarioClearMajority(t *testing.T) {
	e := newTestEngine(t)
	addBallots(t, e, fiveBallots...)

	if err := e.RunCountingRound(); err != nil {
		t.Fatalf("RunCountingRound failed: %v", err)
	}

	want := map[string]int{"Ollie": 0, "Alicia": 1, "George": 0, "Robert": 4}
	for name, votes := range want {
		if got := votesFor(t, e, name); got != votes {
			t.Errorf("Expected %s to have %d votes, got %d", name, votes, got)
		}
	}

	if !e.HasWinner() {
		t.Fatal("Expected a winner with 80% of the vote")
	}
	winner, err := e.Winner()
	if err != nil {
		t.Fatalf("Winner failed: %v", err)
	}
	if winner.Name() != "Robert" {
		t.Errorf("Expected Robert to win, got %s", winner)
	}

	msg, err := e.WinnerAnnouncement()
	if err != nil {
		t.Fatalf("WinnerAnnouncement failed: %v", err)
	}
	if msg != "Robert has won with 4 votes" {
		t.Errorf("Unexpected announcement %q", msg)
	}
}

func TestScenarioTiedElimination(t *testing.T) {
	run := func() []string {
		e := newTestEngine(t)
		addBallots(t, e, eightBallots...)

		if err := e.RunCountingRound(); err != nil {
			t.Fatalf("RunCountingRound failed: %v", err)
		}
		if got := votesFor(t, e, "Alicia"); got != 3 {
			t.Errorf("Expected Alicia to have 3 votes, got %d", got)
		}
		if e.HasWinner() {
			t.Fatal("Did not expect a winner after the first round")
		}
		if _, err := e.Winner(); !errors.Is(err, ErrNoWinnerYet) {
			t.Errorf("Expected ErrNoWinnerYet, got %v", err)
		}

		var order []string

		// George and Robert tie on one vote; George comes first in the pool
		out, err := e.EliminateWeakestAndRecount()
		if err != nil {
			t.Fatalf("EliminateWeakestAndRecount failed: %v", err)
		}
		order = append(order, out.Name())
		if !e.IsActive("Robert") {
			t.Error("Robert should still be active")
		}
		if got := votesFor(t, e, "Ollie"); got != 4 {
			t.Errorf("Expected Ollie to have 4 votes, got %d", got)
		}
		if e.HasWinner() {
			t.Fatal("50% is not a majority")
		}

		out, err = e.EliminateWeakestAndRecount()
		if err != nil {
			t.Fatalf("EliminateWeakestAndRecount failed: %v", err)
		}
		order = append(order, out.Name())
		if got := votesFor(t, e, "Ollie"); got != 5 {
			t.Errorf("Expected Ollie to have 5 votes, got %d", got)
		}

		winner, err := e.Winner()
		if err != nil {
			t.Fatalf("Expected a winner: %v", err)
		}
		if winner.Name() != "Ollie" {
			t.Errorf("Expected Ollie to win, got %s", winner)
		}
		return order
	}

	first := run()
	if !reflect.DeepEqual(first, []string{"George", "Robert"}) {
		t.Errorf("Unexpected elimination order %v", first)
	}
	for i := 0; i < 5; i++ {
		if again := run(); !reflect.DeepEqual(first, again) {
			t.Errorf("Elimination order changed between runs: %v vs %v", first, again)
		}
	}
}

func TestScenarioRunToCompletion(t *testing.T) {
	e := newTestEngine(t)
	addBallots(t, e, twentyBallots()...)

	rounds, err := e.RunToCompletion()
	if err != nil {
		t.Fatalf("RunToCompletion failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}

	last := rounds[len(rounds)-1]
	if !last.HasWinner || last.Winner.Name() != "Ollie" {
		t.Fatalf("Expected Ollie to win, got %+v", last)
	}
	if got := votesFor(t, e, "Ollie"); got != 13 {
		t.Errorf("Expected Ollie to have 13 votes, got %d", got)
	}
	if !e.IsActive("Alicia") {
		t.Error("Alicia should still be active")
	}

	for i, r := range rounds {
		if r.Round != i+1 {
			t.Errorf("Expected round %d, got %d", i+1, r.Round)
		}
	}
	if rounds[0].HasWinner || rounds[1].HasWinner {
		t.Error("Only the last round should have a winner")
	}
}

func TestSingleActiveCandidateAlwaysWins(t *testing.T) {
	e, err := NewEngine([]string{"Solo"})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if !e.HasWinner() {
		t.Error("A lone candidate should win before any ballot is cast")
	}

	// A ballot ranking nobody from the pool leaves Solo on zero votes
	e.AddBallot(NewBallot(NewCandidate("Elsewhere")))
	if err := e.RunCountingRound(); err != nil {
		t.Fatalf("RunCountingRound failed: %v", err)
	}
	if got := votesFor(t, e, "Solo"); got != 0 {
		t.Errorf("Expected 0 votes, got %d", got)
	}
	winner, err := e.Winner()
	if err != nil || winner.Name() != "Solo" {
		t.Errorf("Expected Solo to win with zero votes, got %v (%v)", winner, err)
	}
}

func TestMajorityThresholdBoundary(t *testing.T) {
	tests := []struct {
		name       string
		forA       int
		forB       int
		wantWinner bool
	}{
		{"exactly 51 percent", 51, 49, true},
		{"exactly 50 percent", 50, 50, false},
		{"50.49 percent floors to 50", 51, 50, false},
		{"unanimous", 10, 0, true},
		{"two of three", 2, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngine([]string{"A", "B", "C"}, WithTieBreaker(FirstInPoolOrder))
			if err != nil {
				t.Fatalf("NewEngine failed: %v", err)
			}
			addBallots(t, e, repeat(tt.forA, "A")...)
			addBallots(t, e, repeat(tt.forB, "B")...)

			if err := e.RunCountingRound(); err != nil {
				t.Fatalf("RunCountingRound failed: %v", err)
			}
			if e.HasWinner() != tt.wantWinner {
				t.Errorf("HasWinner = %v, want %v", e.HasWinner(), tt.wantWinner)
			}
			if tt.wantWinner {
				if w, _ := e.Winner(); w.Name() != "A" {
					t.Errorf("Expected A to win, got %s", w)
				}
			}
		})
	}
}

func TestPercentageCountsExhaustedBallots(t *testing.T) {
	e := newTestEngine(t)
	// Ollie holds 2 of 4 ballots: half of all ballots is still short of a majority
	addBallots(t, e,
		[]string{"Ollie"},
		[]string{"Ollie"},
		[]string{"George"},
		[]string{"Alicia"},
	)
	if err := e.RunCountingRound(); err != nil {
		t.Fatalf("RunCountingRound failed: %v", err)
	}

	pct, err := e.Percentage(NewCandidate("Ollie"))
	if err != nil {
		t.Fatalf("Percentage failed: %v", err)
	}
	if pct != 50 {
		t.Errorf("Expected 50%%, got %d%%", pct)
	}
	if e.HasWinner() {
		t.Error("50% of all ballots is not a majority")
	}
}

func TestVoteConservation(t *testing.T) {
	e := newTestEngine(t)
	addBallots(t, e,
		[]string{"George"},
		[]string{"George"},
		[]string{"Ollie", "Alicia"},
		[]string{"Robert"},
		[]string{"Alicia"},
	)

	check := func(stage string) {
		t.Helper()
		sum := 0
		for _, c := range e.ActiveCandidates() {
			votes, err := e.VotesFor(c)
			if err != nil {
				t.Fatalf("%s: VotesFor(%s) failed: %v", stage, c, err)
			}
			sum += votes
		}

		live := 0
		for _, b := range e.Ballots() {
			for rank := 0; b.HasChoiceAt(rank); rank++ {
				if e.IsActive(b.ChoiceAt(rank).Name()) {
					live++
					break
				}
			}
		}

		if sum != live {
			t.Errorf("%s: votes %d != live ballots %d", stage, sum, live)
		}
		if sum+e.Exhausted() != e.TotalBallots() {
			t.Errorf("%s: votes %d + exhausted %d != total %d", stage, sum, e.Exhausted(), e.TotalBallots())
		}
	}

	if err := e.RunCountingRound(); err != nil {
		t.Fatalf("RunCountingRound failed: %v", err)
	}
	check("round 1")

	// Ollie, Alicia and Robert tie on one; Ollie goes and his ballot moves to Alicia
	if out, _ := e.EliminateWeakestAndRecount(); out.Name() != "Ollie" {
		t.Fatalf("Expected Ollie eliminated, got %s", out)
	}
	check("round 2")
	if got := votesFor(t, e, "Alicia"); got != 2 {
		t.Errorf("Expected Alicia to have 2 votes, got %d", got)
	}

	// Robert goes and his only ballot is exhausted
	if out, _ := e.EliminateWeakestAndRecount(); out.Name() != "Robert" {
		t.Fatalf("Expected Robert eliminated, got %s", out)
	}
	check("round 3")
	if e.Exhausted() != 1 {
		t.Errorf("Expected 1 exhausted ballot, got %d", e.Exhausted())
	}
}

func TestEliminationOnlyRemovesLowest(t *testing.T) {
	src := rand.NewPCG(7, 11)
	for trial := 0; trial < 50; trial++ {
		e, err := NewEngine(DefaultCandidates, WithTieBreaker(NewRandomTieBreaker(src)))
		if err != nil {
			t.Fatalf("NewEngine failed: %v", err)
		}

		r := rand.New(src)
		for i := 0; i < 12; i++ {
			perm := r.Perm(len(DefaultCandidates))
			row := make([]string, 1+r.IntN(len(perm)))
			for n := range row {
				row[n] = DefaultCandidates[perm[n]]
			}
			addBallots(t, e, row)
		}

		if err := e.RunCountingRound(); err != nil {
			t.Fatalf("RunCountingRound failed: %v", err)
		}
		for len(e.ActiveCandidates()) > 1 {
			before := map[string]int{}
			lowest := -1
			for _, c := range e.ActiveCandidates() {
				v := votesFor(t, e, c.Name())
				before[c.Name()] = v
				if lowest < 0 || v < lowest {
					lowest = v
				}
			}

			out, err := e.EliminateWeakestAndRecount()
			if err != nil {
				t.Fatalf("EliminateWeakestAndRecount failed: %v", err)
			}
			if before[out.Name()] != lowest {
				t.Fatalf("Eliminated %s with %d votes, minimum was %d", out, before[out.Name()], lowest)
			}
		}

		if _, err := e.EliminateWeakestAndRecount(); !errors.Is(err, ErrTooFewCandidates) {
			t.Errorf("Expected ErrTooFewCandidates, got %v", err)
		}
	}
}

func TestTieBreakerReceivesTiedInPoolOrder(t *testing.T) {
	var seen []Candidate
	pickLast := TieBreakerFunc(func(tied []Candidate) Candidate {
		seen = tied
		return tied[len(tied)-1]
	})

	e := newTestEngine(t, WithTieBreaker(pickLast))
	addBallots(t, e, eightBallots...)
	if err := e.RunCountingRound(); err != nil {
		t.Fatalf("RunCountingRound failed: %v", err)
	}

	out, err := e.EliminateWeakestAndRecount()
	if err != nil {
		t.Fatalf("EliminateWeakestAndRecount failed: %v", err)
	}
	want := []Candidate{NewCandidate("George"), NewCandidate("Robert")}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("Tie breaker saw %v, want %v", seen, want)
	}
	if out.Name() != "Robert" {
		t.Errorf("Expected Robert eliminated, got %s", out)
	}
}

func TestTieBreakerMustPickTiedCandidate(t *testing.T) {
	rogue := TieBreakerFunc(func([]Candidate) Candidate { return NewCandidate("Ollie") })

	e := newTestEngine(t, WithTieBreaker(rogue))
	addBallots(t, e, eightBallots...)
	if err := e.RunCountingRound(); err != nil {
		t.Fatalf("RunCountingRound failed: %v", err)
	}

	mustPanic(t, "non-tied pick", func() { e.EliminateWeakestAndRecount() })
}

func TestResetElection(t *testing.T) {
	e := newTestEngine(t)
	addBallots(t, e, eightBallots...)

	counts := func() map[string]int {
		m := map[string]int{}
		for _, c := range e.ActiveCandidates() {
			m[c.Name()] = votesFor(t, e, c.Name())
		}
		return m
	}

	if err := e.RunCountingRound(); err != nil {
		t.Fatalf("RunCountingRound failed: %v", err)
	}
	first := counts()

	if _, err := e.RunToCompletion(); err != nil {
		t.Fatalf("RunToCompletion failed: %v", err)
	}
	if !e.HasWinner() {
		t.Fatal("Expected a winner")
	}

	e.ResetElection()
	if len(e.ActiveCandidates()) != len(DefaultCandidates) {
		t.Errorf("Expected all candidates active after reset, got %v", e.ActiveCandidates())
	}
	if e.TotalBallots() != len(eightBallots) {
		t.Errorf("Reset should keep ballots, got %d", e.TotalBallots())
	}
	if e.HasWinner() {
		t.Error("Reset tally should not report the previous winner")
	}

	if err := e.RunCountingRound(); err != nil {
		t.Fatalf("RunCountingRound failed: %v", err)
	}
	if again := counts(); !reflect.DeepEqual(first, again) {
		t.Errorf("Recount after reset differs: %v vs %v", first, again)
	}

	// A fresh engine given the same ballots agrees too
	fresh := newTestEngine(t)
	addBallots(t, fresh, eightBallots...)
	if err := fresh.RunCountingRound(); err != nil {
		t.Fatalf("RunCountingRound failed: %v", err)
	}
	for name, votes := range first {
		if got := votesFor(t, fresh, name); got != votes {
			t.Errorf("Fresh engine: %s has %d votes, want %d", name, got, votes)
		}
	}
}

func TestListenerNotifications(t *testing.T) {
	var kinds []ChangeKind
	e := newTestEngine(t, WithListener(func(k ChangeKind) { kinds = append(kinds, k) }))

	addBallots(t, e, eightBallots[:2]...)
	e.AddBallot(NewIncrementalBallot()) // discarded, no notification
	if err := e.RunCountingRound(); err != nil {
		t.Fatalf("RunCountingRound failed: %v", err)
	}
	if _, err := e.EliminateWeakestAndRecount(); err != nil {
		t.Fatalf("EliminateWeakestAndRecount failed: %v", err)
	}
	e.ResetElection()

	want := []ChangeKind{
		BallotAdded, BallotAdded,
		RoundCounted,
		RoundCounted, CandidateEliminated,
		ElectionReset,
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("Notifications %v, want %v", kinds, want)
	}
}

func TestSnapshot(t *testing.T) {
	e := newTestEngine(t)
	addBallots(t, e, eightBallots...)
	if err := e.RunCountingRound(); err != nil {
		t.Fatalf("RunCountingRound failed: %v", err)
	}
	if _, err := e.EliminateWeakestAndRecount(); err != nil {
		t.Fatalf("EliminateWeakestAndRecount failed: %v", err)
	}

	snap := e.Snapshot()
	if snap.Round != 2 {
		t.Errorf("Expected round 2, got %d", snap.Round)
	}
	if snap.TotalBallots != 8 {
		t.Errorf("Expected 8 ballots, got %d", snap.TotalBallots)
	}
	if len(snap.Results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(snap.Results))
	}
	if len(snap.Eliminated) != 1 || snap.Eliminated[0].Name() != "George" {
		t.Errorf("Expected George eliminated, got %v", snap.Eliminated)
	}
	if snap.Results[0].Candidate.Name() != "Ollie" || snap.Results[0].Percentage != 50 {
		t.Errorf("Unexpected first result %+v", snap.Results[0])
	}
	if snap.VotesCast() != 8 {
		t.Errorf("Expected 8 votes cast, got %d", snap.VotesCast())
	}
	if snap.HasWinner {
		t.Error("Did not expect a winner")
	}
}

func TestCanAddChoiceField(t *testing.T) {
	e := newTestEngine(t)

	for n := 0; n < len(DefaultCandidates); n++ {
		if !e.CanAddChoiceField(n) {
			t.Errorf("Expected room for another field after %d", n)
		}
	}
	if e.CanAddChoiceField(len(DefaultCandidates)) {
		t.Error("Did not expect more fields than candidates")
	}
	if e.MaxChoices() != len(DefaultCandidates) {
		t.Errorf("Expected %d max choices, got %d", len(DefaultCandidates), e.MaxChoices())
	}
}
