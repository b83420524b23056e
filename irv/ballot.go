// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package irv

// Ballot is one voter's ranking, most preferred first.
//
// A ballot is either created complete with NewBallot, or built with
// NewIncrementalBallot, Append and FinalizeChoices. Once finalized its
// ordering never changes.
type Ballot struct {
	choices   []Candidate
	pending   []Candidate
	finalized bool
}

// NewBallot returns a finalized ballot holding a copy of choices.
func NewBallot(choices ...Candidate) *Ballot {
	b := &Ballot{finalized: true}
	if len(choices) > 0 {
		b.choices = make([]Candidate, len(choices))
		copy(b.choices, choices)
	}
	return b
}

// NewIncrementalBallot returns an empty ballot that accepts Append calls
// until FinalizeChoices is called.
func NewIncrementalBallot() *Ballot {
	return &Ballot{}
}

// HasChoiceAt reports whether the finalized ranking has a choice at index.
// A negative index is a caller bug and panics.
func (b *Ballot) HasChoiceAt(index int) bool {
	if index < 0 {
		panic("irv: negative ballot index")
	}
	return index < len(b.choices)
}

// ChoiceAt returns the candidate ranked at index.
// The caller must check HasChoiceAt first.
func (b *Ballot) ChoiceAt(index int) Candidate {
	if !b.HasChoiceAt(index) {
		panic("irv: no choice at ballot index")
	}
	return b.choices[index]
}

// Append adds the next preference to a ballot under construction.
func (b *Ballot) Append(c Candidate) {
	if b.finalized {
		panic("irv: append to finalized ballot")
	}
	if c.IsZero() {
		panic("irv: append of zero candidate")
	}
	b.pending = append(b.pending, c)
}

// FinalizeChoices commits the appended candidates into the ballot's ranking
// and clears the builder. Calling it again has no effect.
func (b *Ballot) FinalizeChoices() {
	if b.finalized {
		return
	}
	if len(b.pending) > 0 {
		b.choices = make([]Candidate, len(b.pending))
		copy(b.choices, b.pending)
	}
	b.pending = nil
	b.finalized = true
}

// HasAnyChoices reports whether at least one candidate has been appended
// (or, for a finalized ballot, whether its ranking is non-empty).
func (b *Ballot) HasAnyChoices() bool {
	return len(b.pending) > 0 || len(b.choices) > 0
}

func (b *Ballot) IsFinalized() bool {
	return b.finalized
}

// Len returns the number of finalized choices.
func (b *Ballot) Len() int {
	return len(b.choices)
}

// Choices returns a copy of the finalized ranking.
func (b *Ballot) Choices() []Candidate {
	out := make([]Candidate, len(b.choices))
	copy(out, b.choices)
	return out
}
