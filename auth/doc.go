// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key and IP hashing utilities.

# Admin Keys

Counting, elimination, reset and ballot import are guarded by an admin key
derived with HMAC-SHA256 from the election id:

	adminKey := auth.GenerateAdminKey(electionID, salt)
	err := auth.ValidateAdminKey(electionID, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same election id and salt always produce the same key, and the server
logs it at startup instead of storing it. Clients send it in the
X-Admin-Key header.

ValidateAdminKey returns ErrMissingAdminKey for an empty key and
ErrInvalidAdminKey for a wrong one. The comparison is constant time.

# IP Hashing

Ballots record a salted hash of the submitter's address, never the address:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
