// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package irv

import "errors"

var (
	ErrInvalidPool       = errors.New("invalid candidate pool")
	ErrInvalidCandidate  = errors.New("candidate is not in contention")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrNoBallotsYet      = errors.New("no ballots have been added")
	ErrNoWinnerYet       = errors.New("election has no winner yet")
	ErrTooFewCandidates  = errors.New("at least two candidates must remain to eliminate one")
)
