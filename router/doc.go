// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the runoff API.

# Route Registration

NewRouter creates a configured http.ServeMux for one election:

	mux := router.NewRouter(el, cfg)

# Endpoints

Health:

	GET /health
	GET /

Public:

	GET  /election - Title, candidate pool, active candidates, ballot count
	POST /ballots  - Cast a ranked ballot
	GET  /tally    - Current standings and revision

Ballot administration (requires X-Admin-Key):

	GET  /ballots        - List stored ballots
	POST /ballots/import - Load a ballot file (all or nothing)
	GET  /ballots/export - Download every ballot as a ballot file

Counting (requires X-Admin-Key):

	POST /count     - Run a counting round
	POST /eliminate - Eliminate the weakest candidate and recount
	POST /run       - Count and eliminate until there is a winner
	POST /reset     - Restore every candidate and clear the tally

The admin key is auth.GenerateAdminKey(election id, ADMIN_KEY_SALT); the
server logs it at startup.
*/
package router
