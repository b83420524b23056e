// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the runoff API server.

runoff counts a single-winner election by instant-runoff voting. Voters
rank candidates; the server counts first choices, eliminates the weakest
candidate and recounts until someone holds a majority (51% of all ballots,
floored).

# Starting the Server

The server reads environment variables, a .env file, or CLI flags:

	ADMIN_KEY_SALT=secret go run .

Or with flags:

	go run . -p 3318 -c "Ollie,Alicia,George,Robert" -admin-salt secret

With no database settings the server uses a SQLite file (runoff.db).
Use PostgreSQL with:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

Required settings:

  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string (required for postgres)
  - ELECTION_TITLE (-title): election name (default: General Election)
  - CANDIDATES (-c): candidate pool (default: Ollie,Alicia,George,Robert)
  - TIE_BREAK (-tie-break): random or first (default: random)

The admin key for counting routes is logged at startup.

# Architecture

  - irv: the tabulation engine (ballots, rounds, elimination, tie breaking)
  - election: the one election the server hosts, serialized and persisted
  - ballotfile: rank,name ballot files
  - handlers: HTTP request handlers (ballots, counting)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin guard, JSON helpers
  - models: Request/response types
  - auth: Admin keys and IP hashing
  - db: Schema, connections and the ballot store
  - cliparse: Configuration parsing

The cmd/tally command counts a ballot file offline.

See package documentation for each component.
*/
package main
