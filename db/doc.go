// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation, and ballot storage.

# Connecting

Open picks the driver from the configured database type and pings it:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types are "sqlite" (modernc.org/sqlite, the default) and
"postgres" (github.com/lib/pq). Queries use $N placeholders, which both
drivers accept.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - election: one row per election title
  - candidate: the fixed candidate pool, in pool order
  - ballot: ballots in the order they were cast (seq)
  - ballot_choice: ranked candidate names per ballot

# Relationships

	election 1──* candidate
	election 1──* ballot
	ballot 1──* ballot_choice

All foreign keys use ON DELETE CASCADE.

# Store

Store wraps the queries the election service needs:

	store := db.NewStore(conn)
	id, err := store.EnsureElection(ctx, "General Election", names)
	ids, err := store.SaveBallots(ctx, id, [][]string{{"Robert", "Ollie"}}, db.BallotMeta{})
	ballots, err := store.LoadBallots(ctx, id)

EnsureElection refuses to reuse a stored election whose candidate pool
differs from the configured one (ErrCandidateMismatch).

Only ballots are stored. Round-by-round tallies are recomputed from them.
*/
package db
