// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Ballot sources
const (
	SourceAPI    = "api"
	SourceImport = "import"
)

var ErrCandidateMismatch = errors.New("stored election has a different candidate pool")

// BallotMeta is request metadata kept alongside a ballot.
type BallotMeta struct {
	Source    string
	IPHash    string
	UserAgent string
}

// StoredBallot is a persisted ballot's id and ranked candidate names.
type StoredBallot struct {
	ID      string
	Choices []string
}

// Store persists elections and their ballots.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureElection returns the id of the election with this title, creating it
// with the given candidate pool if it does not exist yet.
func (s *Store) EnsureElection(ctx context.Context, title string, candidates []string) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var electionID string
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM election WHERE title = $1
	`, title).Scan(&electionID)

	if err == nil {
		stored, err := candidateNames(ctx, tx, electionID)
		if err != nil {
			return "", err
		}
		if !slices.Equal(stored, candidates) {
			return "", fmt.Errorf("%w: have %v, configured %v", ErrCandidateMismatch, stored, candidates)
		}
		return electionID, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("failed to query election: %w", err)
	}

	electionID = uuid.NewString()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO election (id, title) VALUES ($1, $2)
	`, electionID, title)
	if err != nil {
		return "", fmt.Errorf("failed to insert election: %w", err)
	}

	for i, name := range candidates {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO candidate (election_id, pool_index, name)
			VALUES ($1, $2, $3)
		`, electionID, i, name)
		if err != nil {
			return "", fmt.Errorf("failed to insert candidate: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit election: %w", err)
	}
	return electionID, nil
}

func candidateNames(ctx context.Context, tx *sql.Tx, electionID string) ([]string, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT name FROM candidate WHERE election_id = $1 ORDER BY pool_index
	`, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// SaveBallots stores ballots (as ranked candidate names) in one transaction
// and returns their new ids in the same order.
func (s *Store) SaveBallots(ctx context.Context, electionID string, ballots [][]string, meta BallotMeta) ([]string, error) {
	if meta.Source == "" {
		meta.Source = SourceAPI
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var seq int
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(seq), 0) FROM ballot WHERE election_id = $1
	`, electionID).Scan(&seq)
	if err != nil {
		return nil, fmt.Errorf("failed to query ballot sequence: %w", err)
	}

	ids := make([]string, 0, len(ballots))
	for _, choices := range ballots {
		seq++
		ballotID := uuid.NewString()

		_, err = tx.ExecContext(ctx, `
			INSERT INTO ballot (id, election_id, seq, source, ip_hash, user_agent)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, ballotID, electionID, seq, meta.Source, nullString(meta.IPHash), nullString(meta.UserAgent))
		if err != nil {
			return nil, fmt.Errorf("failed to insert ballot: %w", err)
		}

		for rank, name := range choices {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO ballot_choice (ballot_id, choice_rank, candidate_name)
				VALUES ($1, $2, $3)
			`, ballotID, rank+1, name)
			if err != nil {
				return nil, fmt.Errorf("failed to insert ballot choice: %w", err)
			}
		}
		ids = append(ids, ballotID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ballots: %w", err)
	}
	return ids, nil
}

// LoadBallots returns every ballot of an election in the order it was cast.
func (s *Store) LoadBallots(ctx context.Context, electionID string) ([]StoredBallot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, c.candidate_name
		FROM ballot b
		JOIN ballot_choice c ON c.ballot_id = b.id
		WHERE b.election_id = $1
		ORDER BY b.seq, c.choice_rank
	`, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ballots: %w", err)
	}
	defer rows.Close()

	var ballots []StoredBallot
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan ballot choice: %w", err)
		}
		if n := len(ballots); n == 0 || ballots[n-1].ID != id {
			ballots = append(ballots, StoredBallot{ID: id})
		}
		last := &ballots[len(ballots)-1]
		last.Choices = append(last.Choices, name)
	}
	return ballots, rows.Err()
}

// CountBallots returns how many ballots an election holds.
func (s *Store) CountBallots(ctx context.Context, electionID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM ballot WHERE election_id = $1
	`, electionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count ballots: %w", err)
	}
	return count, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
