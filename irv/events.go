// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package irv

// ChangeKind says which mutation just happened to an Engine.
type ChangeKind int

const (
	BallotAdded ChangeKind = iota + 1
	RoundCounted
	CandidateEliminated
	ElectionReset
)

func (k ChangeKind) String() string {
	switch k {
	case BallotAdded:
		return "ballot_added"
	case RoundCounted:
		return "round_counted"
	case CandidateEliminated:
		return "candidate_eliminated"
	case ElectionReset:
		return "election_reset"
	default:
		return "unknown"
	}
}

// Listener is called synchronously after each mutation. It must not call
// back into mutating Engine methods.
type Listener func(ChangeKind)
