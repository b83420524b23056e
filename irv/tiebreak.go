// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package irv

import "math/rand/v2"

// TieBreaker chooses which of several candidates tied on the lowest vote
// count is eliminated. tied is never empty and is in pool order.
type TieBreaker interface {
	PickFromTied(tied []Candidate) Candidate
}

// TieBreakerFunc adapts a function to the TieBreaker interface.
type TieBreakerFunc func(tied []Candidate) Candidate

func (f TieBreakerFunc) PickFromTied(tied []Candidate) Candidate {
	return f(tied)
}

// FirstInPoolOrder always eliminates the earliest tied candidate in pool
// order. It makes elimination repeatable for tests and dry runs.
var FirstInPoolOrder = TieBreakerFunc(func(tied []Candidate) Candidate {
	return tied[0]
})

type randomTieBreaker struct {
	rng *rand.Rand
}

// NewRandomTieBreaker picks uniformly among tied candidates. A nil src uses
// the runtime-seeded global generator.
func NewRandomTieBreaker(src rand.Source) TieBreaker {
	if src == nil {
		return randomTieBreaker{}
	}
	return randomTieBreaker{rng: rand.New(src)}
}

func (r randomTieBreaker) PickFromTied(tied []Candidate) Candidate {
	if r.rng == nil {
		return tied[rand.IntN(len(tied))]
	}
	return tied[r.rng.IntN(len(tied))]
}
