// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the runoff API.

# Handler Types

Each handler wraps the server's single election:

  - BallotHandler: ballot casting, listing, import and export
  - ElectionHandler: election info, counting, elimination, reset, tally

	ballotHandler := handlers.NewBallotHandler(el, cfg)
	electionHandler := handlers.NewElectionHandler(el)

Handlers never touch the engine directly. Every call goes through
election.Election, which serializes access and persists ballots.

# Casting Ballots

	POST /ballots {"choices": ["Robert", "George"]}

Choices are candidate names, most preferred first. A ballot that names an
unknown candidate, repeats one, or ranks more choices than there are
candidates is rejected with 400. An empty ballot is discarded with 200 and
added=false. Accepted ballots get 201 and a ballot id.

The submitter's IP is stored only as auth.HashIP.

# Counting

	POST /count     → Count
	POST /eliminate → Eliminate
	POST /run       → Run
	POST /reset     → Reset

Counting with no ballots, or eliminating when fewer than two candidates
remain, returns 409 Conflict. These routes are wrapped in
middleware.RequireAdmin by the router.

# Ballot Files

	POST /ballots/import → ImportBallots
	GET  /ballots/export → ExportBallots

Import bodies use the ballotfile format and are capped at 10 MiB. A file with
any bad record adds nothing.
*/
package handlers
