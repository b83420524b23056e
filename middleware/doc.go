// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /tally", middleware.WithLogging(handler))

Logs request start at debug level and completion (status, duration_ms) at
info level.

# Admin Guard

Tally operations require the election's admin key:

	admin := middleware.RequireAdmin(electionID, cfg.AdminKeySalt)
	mux.HandleFunc("POST /count", middleware.WithLogging(admin(h.Count)))

A missing X-Admin-Key header gets 401, a wrong one 403.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows GET, POST, OPTIONS with headers Content-Type and X-Admin-Key.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.CastBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, then X-Real-IP, then RemoteAddr. Ballots store only
auth.HashIP of the result.
*/
package middleware
