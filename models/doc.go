// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - CastBallotRequest: choices (candidate names, most preferred first)

Ballot imports are not JSON; the body is a ballot file (see package ballotfile).

# Response Types

  - CastBallotResponse: ballot_id, added, message
  - ElectionResponse: id, title, candidates, active, ballot_count, max_choices
  - BallotsResponse: ballots
  - ImportResponse: added, discarded
  - EliminateResponse: eliminated, tally
  - RunResponse: rounds, announcement
  - ErrorResponse: error, message

# Tally

TallyResponse is the JSON form of irv.Tally:

	{
	  "round": 2,
	  "total_ballots": 8,
	  "exhausted": 0,
	  "results": [{"candidate": "Ollie", "votes": 4, "percentage": 50}, ...],
	  "eliminated": ["George"],
	  "has_winner": false,
	  "revision": 12
	}

Percentages are floored, matching the winner rule. Revision counts state
changes on the server and lets clients skip redraws; it is only set on
GET /tally.
*/
package models
