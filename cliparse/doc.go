// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: connection string (default for sqlite: runoff.db)
  - AdminKeySalt: Secret for admin key HMAC (required)
  - ElectionTitle: Name of the hosted election (default: General Election)
  - Candidates: Candidate pool (default: Ollie, Alicia, George, Robert)
  - TieBreak: random or first (default: random)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-title       Election title
	-c           Comma-separated candidate names
	-tie-break   Tie-break mode
	-admin-salt  Admin key salt

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ELECTION_TITLE → -title
	CANDIDATES     → -c
	TIE_BREAK      → -tie-break
	ADMIN_KEY_SALT → -admin-salt

CLI flags take precedence over environment variables. main loads a .env
file (github.com/joho/godotenv) before parsing, so values there act as
environment variables.

# Validation

ParseFlags returns an error if:

  - ADMIN_KEY_SALT is missing
  - DATABASE_URL is missing for postgres
  - a candidate name is empty or repeated
  - DATABASE_TYPE or TIE_BREAK has an unknown value

"first" tie-breaking eliminates the earliest tied candidate in pool order.
Use it for rehearsals; real counts use "random".
*/
package cliparse
