// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "github.com/danielhkuo/runoff/irv"

// Request types

// ranked candidate names, most preferred first
type CastBallotRequest struct {
	Choices []string `json:"choices"`
}

// Response types

type CastBallotResponse struct {
	BallotID string `json:"ballot_id,omitempty"`
	Added    bool   `json:"added"`
	Message  string `json:"message"`
}

type ElectionResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Candidates  []string `json:"candidates"`
	Active      []string `json:"active"`
	BallotCount int      `json:"ballot_count"`
	MaxChoices  int      `json:"max_choices"`
}

type BallotsResponse struct {
	Ballots []Ballot `json:"ballots"`
}

type ImportResponse struct {
	Added     int `json:"added"`
	Discarded int `json:"discarded"`
}

type EliminateResponse struct {
	Eliminated string        `json:"eliminated"`
	Tally      TallyResponse `json:"tally"`
}

type RunResponse struct {
	Rounds       []TallyResponse `json:"rounds"`
	Announcement string          `json:"announcement"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Domain types

type Ballot struct {
	ID      string   `json:"id"`
	Choices []string `json:"choices"`
}

type CandidateResult struct {
	Candidate  string `json:"candidate"`
	Votes      int    `json:"votes"`
	Percentage int    `json:"percentage"`
}

type TallyResponse struct {
	Round        int               `json:"round"`
	TotalBallots int               `json:"total_ballots"`
	Exhausted    int               `json:"exhausted"`
	Results      []CandidateResult `json:"results"`
	Eliminated   []string          `json:"eliminated"`
	Winner       string            `json:"winner,omitempty"`
	HasWinner    bool              `json:"has_winner"`
	Announcement string            `json:"announcement,omitempty"`
	Revision     uint64            `json:"revision,omitempty"`
}

// NewTallyResponse converts an engine tally for JSON output.
func NewTallyResponse(t irv.Tally) TallyResponse {
	resp := TallyResponse{
		Round:        t.Round,
		TotalBallots: t.TotalBallots,
		Exhausted:    t.Exhausted,
		Results:      make([]CandidateResult, 0, len(t.Results)),
		Eliminated:   make([]string, 0, len(t.Eliminated)),
		HasWinner:    t.HasWinner,
		Announcement: t.Announcement(),
	}
	for _, r := range t.Results {
		resp.Results = append(resp.Results, CandidateResult{
			Candidate:  r.Candidate.Name(),
			Votes:      r.Votes,
			Percentage: r.Percentage,
		})
	}
	for _, c := range t.Eliminated {
		resp.Eliminated = append(resp.Eliminated, c.Name())
	}
	if t.HasWinner {
		resp.Winner = t.Winner.Name()
	}
	return resp
}
