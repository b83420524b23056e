// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/runoff/auth"
	"github.com/danielhkuo/runoff/ballotfile"
	"github.com/danielhkuo/runoff/cliparse"
	"github.com/danielhkuo/runoff/db"
	"github.com/danielhkuo/runoff/election"
	"github.com/danielhkuo/runoff/irv"
	"github.com/danielhkuo/runoff/middleware"
	"github.com/danielhkuo/runoff/models"
)

// maxImportBytes caps a ballot file upload.
const maxImportBytes = 10 << 20

type BallotHandler struct {
	el  *election.Election
	cfg cliparse.Config
}

func NewBallotHandler(el *election.Election, cfg cliparse.Config) *BallotHandler {
	return &BallotHandler{el: el, cfg: cfg}
}

func (h *BallotHandler) meta(r *http.Request, source string) db.BallotMeta {
	return db.BallotMeta{
		Source:    source,
		IPHash:    auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt),
		UserAgent: r.UserAgent(),
	}
}

// CastBallot handles POST /ballots
func (h *BallotHandler) CastBallot(w http.ResponseWriter, r *http.Request) {
	var req models.CastBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ballotID, added, err := h.el.CastBallot(r.Context(), req.Choices, h.meta(r, db.SourceAPI))
	if err != nil {
		if isBallotError(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to cast ballot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record ballot")
		return
	}

	if !added {
		middleware.JSONResponse(w, http.StatusOK, models.CastBallotResponse{
			Message: "Empty ballot discarded",
		})
		return
	}

	slog.Info("ballot cast", "ballot_id", ballotID, "choices", len(req.Choices))

	middleware.JSONResponse(w, http.StatusCreated, models.CastBallotResponse{
		BallotID: ballotID,
		Added:    true,
		Message:  "Ballot recorded",
	})
}

// ListBallots handles GET /ballots
func (h *BallotHandler) ListBallots(w http.ResponseWriter, r *http.Request) {
	stored, err := h.el.Ballots(r.Context())
	if err != nil {
		slog.Error("failed to load ballots", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.BallotsResponse{Ballots: make([]models.Ballot, 0, len(stored))}
	for _, sb := range stored {
		resp.Ballots = append(resp.Ballots, models.Ballot{ID: sb.ID, Choices: sb.Choices})
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// ImportBallots handles POST /ballots/import
// The body is a ballot file; either every ballot is added or none.
func (h *BallotHandler) ImportBallots(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxImportBytes)
	defer body.Close()

	summary, err := h.el.Import(r.Context(), body, h.meta(r, db.SourceImport))
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Ballot file too large")
		case isBallotError(err):
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("failed to import ballots", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to import ballots")
		}
		return
	}

	slog.Info("ballots imported", "added", summary.Added, "discarded", summary.Discarded)

	middleware.JSONResponse(w, http.StatusOK, models.ImportResponse{
		Added:     summary.Added,
		Discarded: summary.Discarded,
	})
}

// ExportBallots handles GET /ballots/export
func (h *BallotHandler) ExportBallots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="ballots.csv"`)
	if err := h.el.Export(w); err != nil {
		// Headers are already out; all we can do is log
		slog.Error("failed to export ballots", "error", err)
	}
}

// isBallotError reports whether err is the client's fault.
func isBallotError(err error) bool {
	return errors.Is(err, irv.ErrInvalidCandidate) ||
		errors.Is(err, election.ErrTooManyChoices) ||
		errors.Is(err, election.ErrDuplicateChoice) ||
		errors.Is(err, ballotfile.ErrMalformedRecord) ||
		errors.Is(err, ballotfile.ErrUnknownCandidate) ||
		errors.Is(err, ballotfile.ErrUnreadable)
}
