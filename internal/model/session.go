package model

import "time"

// Session models an entry in the `sessions` table. Each row belongs
// to a user and records the server-side half of a login session. The
// session cookie itself is a signed token; only the SHA-256 hash of
// its jti claim is stored here so database access alone cannot forge
// a valid cookie.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the session.
//  TokenHash – SHA-256 hex digest of the session id (jti).
//  ExpiresAt – expiration timestamp of the session.
//  RevokedAt – when the session was revoked by logout (null if active).
//  CreatedAt – timestamp of creation.
type Session struct {
	ID        uint64     // sessions.id
	UserID    uint64     // sessions.user_id
	TokenHash string     // sessions.token_hash
	ExpiresAt time.Time  // sessions.expires_at
	RevokedAt *time.Time // sessions.revoked_at (nullable)
	CreatedAt time.Time  // sessions.created_at
}
