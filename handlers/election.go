// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/runoff/election"
	"github.com/danielhkuo/runoff/irv"
	"github.com/danielhkuo/runoff/middleware"
	"github.com/danielhkuo/runoff/models"
)

type ElectionHandler struct {
	el *election.Election
}

func NewElectionHandler(el *election.Election) *ElectionHandler {
	return &ElectionHandler{el: el}
}

// GetElection handles GET /election
func (h *ElectionHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	info := h.el.Info()
	middleware.JSONResponse(w, http.StatusOK, models.ElectionResponse{
		ID:          info.ID,
		Title:       info.Title,
		Candidates:  info.Candidates,
		Active:      info.Active,
		BallotCount: info.BallotCount,
		MaxChoices:  info.MaxChoices,
	})
}

// GetTally handles GET /tally
func (h *ElectionHandler) GetTally(w http.ResponseWriter, r *http.Request) {
	tally, revision := h.el.Tally()
	resp := models.NewTallyResponse(tally)
	resp.Revision = revision
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Count handles POST /count
func (h *ElectionHandler) Count(w http.ResponseWriter, r *http.Request) {
	tally, err := h.el.Count()
	if err != nil {
		countError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.NewTallyResponse(tally))
}

// Eliminate handles POST /eliminate
func (h *ElectionHandler) Eliminate(w http.ResponseWriter, r *http.Request) {
	out, tally, err := h.el.Eliminate()
	if err != nil {
		countError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.EliminateResponse{
		Eliminated: out.Name(),
		Tally:      models.NewTallyResponse(tally),
	})
}

// Run handles POST /run
func (h *ElectionHandler) Run(w http.ResponseWriter, r *http.Request) {
	rounds, err := h.el.Run()
	if err != nil {
		countError(w, err)
		return
	}

	resp := models.RunResponse{Rounds: make([]models.TallyResponse, 0, len(rounds))}
	for _, t := range rounds {
		resp.Rounds = append(resp.Rounds, models.NewTallyResponse(t))
	}
	resp.Announcement = rounds[len(rounds)-1].Announcement()
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Reset handles POST /reset
func (h *ElectionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	tally := h.el.Reset()
	slog.Info("election reset", "election_id", h.el.ID(), "ballots", tally.TotalBallots)
	middleware.JSONResponse(w, http.StatusOK, models.NewTallyResponse(tally))
}

// countError maps tabulation errors to status codes.
func countError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, irv.ErrNoBallotsYet):
		middleware.ErrorResponse(w, http.StatusConflict, "No ballots have been cast")
	case errors.Is(err, irv.ErrTooFewCandidates):
		middleware.ErrorResponse(w, http.StatusConflict, "Fewer than two candidates remain")
	default:
		slog.Error("tally operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Tally failed")
	}
}
