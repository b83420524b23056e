// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package irv

import (
	"fmt"
	"slices"
)

// MajorityThreshold is the floor percentage of all ballots a candidate needs
// to win while more than one candidate remains.
const MajorityThreshold = 51

// DefaultCandidates is the pool used when none is configured.
var DefaultCandidates = []string{"Ollie", "Alicia", "George", "Robert"}

// Engine tabulates one election.
type Engine struct {
	pool  []Candidate
	index map[string]int // name -> pool position

	ballots []*Ballot

	// tally holds a vote count for every candidate still in contention,
	// keyed by pool position. Deleting a key eliminates the candidate.
	tally map[int]int

	winner    int // pool position, -1 when none
	round     int
	exhausted int

	tieBreaker TieBreaker
	listener   Listener
}

type Option func(*Engine)

func WithTieBreaker(tb TieBreaker) Option {
	return func(e *Engine) {
		e.tieBreaker = tb
	}
}

func WithListener(l Listener) Option {
	return func(e *Engine) {
		e.listener = l
	}
}

// NewEngine creates an engine for the given candidate pool. Names must be
// non-empty and unique.
func NewEngine(names []string, opts ...Option) (*Engine, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no candidates", ErrInvalidPool)
	}

	e := &Engine{
		pool:   make([]Candidate, 0, len(names)),
		index:  make(map[string]int, len(names)),
		winner: -1,
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: candidate %d has an empty name", ErrInvalidPool, i+1)
		}
		if _, dup := e.index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate candidate %q", ErrInvalidPool, name)
		}
		e.index[name] = i
		e.pool = append(e.pool, NewCandidate(name))
	}

	for _, opt := range opts {
		opt(e)
	}
	if e.tieBreaker == nil {
		e.tieBreaker = NewRandomTieBreaker(nil)
	}

	e.resetTally()
	return e, nil
}

// AddBallot finalizes b and adds it to the election. A ballot without any
// choices is discarded and AddBallot returns false.
func (e *Engine) AddBallot(b *Ballot) bool {
	if b == nil {
		panic("irv: nil ballot")
	}

	b.FinalizeChoices()
	if b.Len() == 0 {
		return false
	}

	e.ballots = append(e.ballots, b)
	e.notify(BallotAdded)
	return true
}

// Ballots returns every ballot added so far, in insertion order.
func (e *Engine) Ballots() []*Ballot {
	out := make([]*Ballot, len(e.ballots))
	copy(out, e.ballots)
	return out
}

func (e *Engine) TotalBallots() int {
	return len(e.ballots)
}

// IsCandidateInContention reports whether name belongs to the candidate pool.
// Use it to validate free-text entry before calling CandidateNamed.
func (e *Engine) IsCandidateInContention(name string) bool {
	_, ok := e.index[name]
	return ok
}

// IsActive reports whether name is a candidate that has not been eliminated.
func (e *Engine) IsActive(name string) bool {
	i, ok := e.index[name]
	if !ok {
		return false
	}
	_, ok = e.tally[i]
	return ok
}

func (e *Engine) CandidateNamed(name string) (Candidate, error) {
	i, ok := e.index[name]
	if !ok {
		return Candidate{}, fmt.Errorf("%w: %q", ErrCandidateNotFound, name)
	}
	return e.pool[i], nil
}

// Pool returns the full candidate roster, including eliminated candidates.
func (e *Engine) Pool() []Candidate {
	out := make([]Candidate, len(e.pool))
	copy(out, e.pool)
	return out
}

// ActiveCandidates returns, in pool order, every candidate not yet eliminated.
func (e *Engine) ActiveCandidates() []Candidate {
	active := make([]Candidate, 0, len(e.tally))
	for i, c := range e.pool {
		if _, ok := e.tally[i]; ok {
			active = append(active, c)
		}
	}
	return active
}

// MaxChoices is the longest meaningful ranking: one entry per candidate.
func (e *Engine) MaxChoices() int {
	return len(e.pool)
}

// CanAddChoiceField reports whether a ballot form that already shows
// current choice fields may show another one.
func (e *Engine) CanAddChoiceField(current int) bool {
	return current < len(e.pool)
}

func (e *Engine) CanBeginCounting() bool {
	return len(e.ballots) > 0
}

// Round returns how many counting rounds ran since construction or the last
// reset.
func (e *Engine) Round() int {
	return e.round
}

// Exhausted returns how many ballots credited nobody in the last round.
func (e *Engine) Exhausted() int {
	return e.exhausted
}

// RunCountingRound recounts every ballot against the current active set
// and recomputes the winner.
func (e *Engine) RunCountingRound() error {
	if !e.CanBeginCounting() {
		return ErrNoBallotsYet
	}

	for i := range e.tally {
		e.tally[i] = 0
	}

	e.exhausted = 0
	for _, b := range e.ballots {
		if i, ok := e.firstActiveChoice(b); ok {
			e.tally[i]++
		} else {
			e.exhausted++
		}
	}

	e.round++
	e.winner = e.determineWinner()
	e.notify(RoundCounted)
	return nil
}

// firstActiveChoice scans b from its most preferred choice and returns the
// pool position of the first candidate still in contention.
func (e *Engine) firstActiveChoice(b *Ballot) (int, bool) {
	for rank := 0; b.HasChoiceAt(rank); rank++ {
		i, known := e.index[b.ChoiceAt(rank).Name()]
		if !known {
			continue
		}
		if _, active := e.tally[i]; active {
			return i, true
		}
	}
	return 0, false
}

// determineWinner returns the pool position of the winner, or -1.
// A single remaining candidate always wins. Otherwise the first candidate in
// pool order with the highest percentage at or above the threshold wins;
// a later candidate with an equal percentage does not replace it.
func (e *Engine) determineWinner() int {
	if len(e.tally) == 1 {
		for i := range e.tally {
			return i
		}
	}

	total := len(e.ballots)
	if total == 0 {
		return -1
	}

	winner := -1
	best := MajorityThreshold - 1
	for i := range e.pool {
		votes, ok := e.tally[i]
		if !ok {
			continue
		}
		if pct := votes * 100 / total; pct > best {
			winner = i
			best = pct
		}
	}
	return winner
}

// HasWinner reports whether the current tally has a winner.
func (e *Engine) HasWinner() bool {
	e.winner = e.determineWinner()
	return e.winner >= 0
}

func (e *Engine) Winner() (Candidate, error) {
	if !e.HasWinner() {
		return Candidate{}, ErrNoWinnerYet
	}
	return e.pool[e.winner], nil
}

// VotesFor returns c's count from the latest round.
func (e *Engine) VotesFor(c Candidate) (int, error) {
	i, ok := e.index[c.Name()]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCandidate, c.Name())
	}
	votes, ok := e.tally[i]
	if !ok {
		return 0, fmt.Errorf("%w: %q was eliminated", ErrInvalidCandidate, c.Name())
	}
	return votes, nil
}

// Percentage returns floor(votes*100/total ballots) for an active candidate.
func (e *Engine) Percentage(c Candidate) (int, error) {
	votes, err := e.VotesFor(c)
	if err != nil {
		return 0, err
	}
	if len(e.ballots) == 0 {
		return 0, nil
	}
	return votes * 100 / len(e.ballots), nil
}

// EliminateWeakestAndRecount removes the active candidate with the fewest
// votes, asking the TieBreaker when several share the minimum, then runs a
// new counting round. It returns the eliminated candidate.
func (e *Engine) EliminateWeakestAndRecount() (Candidate, error) {
	if !e.CanBeginCounting() {
		return Candidate{}, ErrNoBallotsYet
	}
	if len(e.tally) < 2 {
		return Candidate{}, ErrTooFewCandidates
	}

	// 1. Find the lowest count and every candidate holding it
	var lowest []int
	minVotes := 0
	for i := range e.pool {
		votes, ok := e.tally[i]
		if !ok {
			continue
		}
		switch {
		case lowest == nil || votes < minVotes:
			lowest = []int{i}
			minVotes = votes
		case votes == minVotes:
			lowest = append(lowest, i)
		}
	}

	// 2. Pick exactly one of them
	out := lowest[0]
	if len(lowest) > 1 {
		tied := make([]Candidate, len(lowest))
		for n, i := range lowest {
			tied[n] = e.pool[i]
		}
		picked := e.tieBreaker.PickFromTied(tied)
		i, ok := e.index[picked.Name()]
		if !ok || !slices.Contains(lowest, i) {
			panic(fmt.Sprintf("irv: tie breaker picked %q, which is not tied for lowest", picked.Name()))
		}
		out = i
	}

	// 3. Remove it and recount
	delete(e.tally, out)
	if err := e.RunCountingRound(); err != nil {
		return Candidate{}, err
	}

	e.notify(CandidateEliminated)
	return e.pool[out], nil
}

// ResetElection puts every pool candidate back in contention with zero votes.
// Ballots are kept so the count can be rerun, with more ballots if desired.
func (e *Engine) ResetElection() {
	e.resetTally()
	e.notify(ElectionReset)
}

func (e *Engine) resetTally() {
	e.tally = make(map[int]int, len(e.pool))
	for i := range e.pool {
		e.tally[i] = 0
	}
	e.round = 0
	e.exhausted = 0
}

func (e *Engine) notify(kind ChangeKind) {
	if e.listener != nil {
		e.listener(kind)
	}
}
