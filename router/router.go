// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/runoff/cliparse"
	"github.com/danielhkuo/runoff/election"
	"github.com/danielhkuo/runoff/handlers"
	"github.com/danielhkuo/runoff/middleware"
)

func NewRouter(el *election.Election, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	ballotHandler := handlers.NewBallotHandler(el, cfg)
	electionHandler := handlers.NewElectionHandler(el)
	admin := middleware.RequireAdmin(el.ID(), cfg.AdminKeySalt)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public
	mux.HandleFunc("GET /election", middleware.WithLogging(electionHandler.GetElection))
	mux.HandleFunc("POST /ballots", middleware.WithLogging(ballotHandler.CastBallot))
	mux.HandleFunc("GET /tally", middleware.WithLogging(electionHandler.GetTally))

	// Ballot administration
	mux.HandleFunc("GET /ballots", middleware.WithLogging(admin(ballotHandler.ListBallots)))
	mux.HandleFunc("POST /ballots/import", middleware.WithLogging(admin(ballotHandler.ImportBallots)))
	mux.HandleFunc("GET /ballots/export", middleware.WithLogging(admin(ballotHandler.ExportBallots)))

	// Counting
	mux.HandleFunc("POST /count", middleware.WithLogging(admin(electionHandler.Count)))
	mux.HandleFunc("POST /eliminate", middleware.WithLogging(admin(electionHandler.Eliminate)))
	mux.HandleFunc("POST /run", middleware.WithLogging(admin(electionHandler.Run)))
	mux.HandleFunc("POST /reset", middleware.WithLogging(admin(electionHandler.Reset)))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("runoff API v1"))
	})

	return mux
}
