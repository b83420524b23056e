// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election owns the one election a server hosts.

An Election pairs an irv.Engine with the db.Store its ballots live in and
serializes every call with a mutex, since the engine itself is not safe for
concurrent use:

	el, err := election.Open(ctx, store, "General Election", names, irv.NewRandomTieBreaker(nil))

Open creates the election row on first start and replays stored ballots into
the engine on later starts, so counting can resume after a restart. Ballots
are written to the store before they reach the engine; a failed write leaves
the tally untouched.

Every engine change bumps a revision number that clients can poll to learn
whether the tally moved.
*/
package election
