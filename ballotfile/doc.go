// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballotfile reads and writes ranked ballots as rank,name records.

# Format

One preference per line, in ballot order:

	1,Robert
	2,Ollie
	1,Alicia
	2,Robert

A record with rank 1 starts a new ballot. Every following record up to the
next rank 1 belongs to the same ballot, in file order. The name is
everything after the first comma, so names may themselves contain commas.
Blank lines are ignored and surrounding whitespace is trimmed.

# Loading

Load parses the whole stream before touching the engine, so a malformed
record or an unknown name leaves the election unchanged:

	summary, err := ballotfile.LoadFile("ballots.csv", engine)

Empty ballots are handed to the engine like any other and discarded there;
Summary.Discarded counts them.

# Errors

  - ErrUnreadable: the file could not be opened or read
  - ErrMalformedRecord: missing comma, non-positive rank, or empty name
  - ErrUnknownCandidate: a name outside the candidate pool

Record errors carry the 1-based line number.
*/
package ballotfile
