// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The statements below must stay valid for both SQLite and PostgreSQL.
const schema = `
-- Elections
CREATE TABLE IF NOT EXISTS election (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Candidate pool, in pool order
CREATE TABLE IF NOT EXISTS candidate (
    election_id TEXT NOT NULL REFERENCES election(id) ON DELETE CASCADE,
    pool_index INTEGER NOT NULL,
    name TEXT NOT NULL,
    PRIMARY KEY (election_id, pool_index),
    UNIQUE (election_id, name)
);

-- Ballots, in the order they were cast
CREATE TABLE IF NOT EXISTS ballot (
    id TEXT PRIMARY KEY,
    election_id TEXT NOT NULL REFERENCES election(id) ON DELETE CASCADE,
    seq INTEGER NOT NULL,
    source TEXT NOT NULL DEFAULT 'api' CHECK (source IN ('api', 'import')),
    submitted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    ip_hash TEXT,
    user_agent TEXT,
    UNIQUE (election_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_ballot_election_id ON ballot(election_id);

-- Ranked choices
CREATE TABLE IF NOT EXISTS ballot_choice (
    ballot_id TEXT NOT NULL REFERENCES ballot(id) ON DELETE CASCADE,
    choice_rank INTEGER NOT NULL CHECK (choice_rank >= 1),
    candidate_name TEXT NOT NULL,
    PRIMARY KEY (ballot_id, choice_rank)
);
`
