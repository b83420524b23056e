// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/danielhkuo/runoff/ballotfile"
	"github.com/danielhkuo/runoff/db"
	"github.com/danielhkuo/runoff/irv"
)

var (
	ErrTooManyChoices  = errors.New("ballot ranks more choices than there are candidates")
	ErrDuplicateChoice = errors.New("ballot ranks a candidate more than once")
)

type Election struct {
	mu       sync.Mutex
	id       string
	title    string
	engine   *irv.Engine
	store    *db.Store
	revision uint64
}

// Info describes the election for ballot entry forms.
type Info struct {
	ID          string
	Title       string
	Candidates  []string
	Active      []string
	BallotCount int
	MaxChoices  int
}

// Open loads (or creates) the election with this title and replays its
// stored ballots.
func Open(ctx context.Context, store *db.Store, title string, names []string, tb irv.TieBreaker) (*Election, error) {
	id, err := store.EnsureElection(ctx, title, names)
	if err != nil {
		return nil, err
	}

	el := &Election{id: id, title: title, store: store}
	el.engine, err = irv.NewEngine(names, irv.WithTieBreaker(tb), irv.WithListener(el.changed))
	if err != nil {
		return nil, err
	}

	stored, err := store.LoadBallots(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, sb := range stored {
		ballot, err := el.buildBallot(sb.Choices)
		if err != nil {
			return nil, fmt.Errorf("stored ballot %s: %w", sb.ID, err)
		}
		el.engine.AddBallot(ballot)
	}

	slog.Info("election ready", "election_id", id, "title", title, "ballots", len(stored))
	return el, nil
}

// changed is the engine's listener; it runs with mu held.
func (el *Election) changed(kind irv.ChangeKind) {
	el.revision++
	slog.Debug("election changed", "election_id", el.id, "change", kind.String(), "revision", el.revision)
}

func (el *Election) ID() string {
	return el.id
}

func (el *Election) Title() string {
	return el.title
}

func (el *Election) Info() Info {
	el.mu.Lock()
	defer el.mu.Unlock()

	info := Info{
		ID:          el.id,
		Title:       el.title,
		BallotCount: el.engine.TotalBallots(),
		MaxChoices:  el.engine.MaxChoices(),
	}
	for _, c := range el.engine.Pool() {
		info.Candidates = append(info.Candidates, c.Name())
	}
	for _, c := range el.engine.ActiveCandidates() {
		info.Active = append(info.Active, c.Name())
	}
	return info
}

// buildBallot validates names against the pool and returns a finalized ballot.
func (el *Election) buildBallot(names []string) (*irv.Ballot, error) {
	if len(names) > el.engine.MaxChoices() {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyChoices, len(names), el.engine.MaxChoices())
	}

	seen := make(map[string]bool, len(names))
	ballot := irv.NewIncrementalBallot()
	for _, name := range names {
		if !el.engine.IsCandidateInContention(name) {
			return nil, fmt.Errorf("%w: %q", irv.ErrInvalidCandidate, name)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateChoice, name)
		}
		seen[name] = true

		c, err := el.engine.CandidateNamed(name)
		if err != nil {
			return nil, err
		}
		ballot.Append(c)
	}
	ballot.FinalizeChoices()
	return ballot, nil
}

// CastBallot validates and stores one ballot, then adds it to the tally.
// An empty ballot is discarded: added is false and nothing is stored.
func (el *Election) CastBallot(ctx context.Context, names []string, meta db.BallotMeta) (id string, added bool, err error) {
	el.mu.Lock()
	defer el.mu.Unlock()

	ballot, err := el.buildBallot(names)
	if err != nil {
		return "", false, err
	}
	if !ballot.HasAnyChoices() {
		return "", false, nil
	}

	ids, err := el.store.SaveBallots(ctx, el.id, [][]string{names}, meta)
	if err != nil {
		return "", false, err
	}
	el.engine.AddBallot(ballot)

	return ids[0], true, nil
}

// Import reads a ballot file and adds every ballot in it, or none on error.
func (el *Election) Import(ctx context.Context, r io.Reader, meta db.BallotMeta) (ballotfile.Summary, error) {
	el.mu.Lock()
	defer el.mu.Unlock()

	ballots, err := ballotfile.Read(r, el.engine)
	if err != nil {
		return ballotfile.Summary{}, err
	}

	var summary ballotfile.Summary
	var keep []*irv.Ballot
	var rows [][]string
	for n, b := range ballots {
		b.FinalizeChoices()
		if b.Len() == 0 {
			summary.Discarded++
			continue
		}

		// Same rules as CastBallot, so stored ballots always replay
		checked, err := el.buildBallot(names(b))
		if err != nil {
			return ballotfile.Summary{}, fmt.Errorf("ballot %d: %w", n+1, err)
		}
		keep = append(keep, checked)
		rows = append(rows, names(checked))
	}

	if meta.Source == "" {
		meta.Source = db.SourceImport
	}
	if _, err := el.store.SaveBallots(ctx, el.id, rows, meta); err != nil {
		return ballotfile.Summary{}, err
	}

	for _, b := range keep {
		if el.engine.AddBallot(b) {
			summary.Added++
		}
	}
	return summary, nil
}

// Export writes every ballot in ballot file format.
func (el *Election) Export(w io.Writer) error {
	el.mu.Lock()
	ballots := el.engine.Ballots()
	el.mu.Unlock()

	return ballotfile.Write(w, ballots)
}

// Ballots lists stored ballots with their ids.
func (el *Election) Ballots(ctx context.Context) ([]db.StoredBallot, error) {
	el.mu.Lock()
	defer el.mu.Unlock()

	return el.store.LoadBallots(ctx, el.id)
}

// Count runs a counting round.
func (el *Election) Count() (irv.Tally, error) {
	el.mu.Lock()
	defer el.mu.Unlock()

	if err := el.engine.RunCountingRound(); err != nil {
		return irv.Tally{}, err
	}
	return el.snapshot(), nil
}

// Eliminate removes the weakest candidate and recounts.
func (el *Election) Eliminate() (irv.Candidate, irv.Tally, error) {
	el.mu.Lock()
	defer el.mu.Unlock()

	out, err := el.engine.EliminateWeakestAndRecount()
	if err != nil {
		return irv.Candidate{}, irv.Tally{}, err
	}
	slog.Info("candidate eliminated", "election_id", el.id, "candidate", out.Name(), "round", el.engine.Round())
	return out, el.snapshot(), nil
}

// Run counts and eliminates until there is a winner.
func (el *Election) Run() ([]irv.Tally, error) {
	el.mu.Lock()
	defer el.mu.Unlock()

	rounds, err := el.engine.RunToCompletion()
	if err != nil {
		return rounds, err
	}
	if msg, err := el.engine.WinnerAnnouncement(); err == nil {
		slog.Info(msg, "election_id", el.id, "rounds", len(rounds))
	}
	return rounds, nil
}

// Reset starts a fresh count over the same ballots.
func (el *Election) Reset() irv.Tally {
	el.mu.Lock()
	defer el.mu.Unlock()

	el.engine.ResetElection()
	return el.snapshot()
}

// Tally returns the current standings and revision.
func (el *Election) Tally() (irv.Tally, uint64) {
	el.mu.Lock()
	defer el.mu.Unlock()

	return el.snapshot(), el.revision
}

func (el *Election) Revision() uint64 {
	el.mu.Lock()
	defer el.mu.Unlock()

	return el.revision
}

func (el *Election) snapshot() irv.Tally {
	return el.engine.Snapshot()
}

func names(b *irv.Ballot) []string {
	out := make([]string, 0, b.Len())
	for _, c := range b.Choices() {
		out = append(out, c.Name())
	}
	return out
}
