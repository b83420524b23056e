// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package irv

// Candidate is a named participant in an election.
// The zero value is the "no candidate" sentinel.
type Candidate struct {
	name string
}

func NewCandidate(name string) Candidate {
	return Candidate{name: name}
}

func (c Candidate) Name() string {
	return c.name
}

func (c Candidate) String() string {
	return c.name
}

// IsZero reports whether c is the "no candidate" sentinel.
func (c Candidate) IsZero() bool {
	return c.name == ""
}
