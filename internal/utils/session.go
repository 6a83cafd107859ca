package utils // package utils provides helper functions for session tokens and hashing

import (
	"crypto/sha256" // SHA-256 hashing for session ids
	"encoding/hex"  // hex encoding of digests
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
	"github.com/google/uuid"       // random session ids (jti claim)
)

// SessionToken represents a signed login session carried by the client
// in a cookie. Token is the serialized JWT. JTI is the random session
// id embedded in the token; only its SHA-256 hash is stored server-side
// so the database can revoke sessions without being able to mint them.
// Exp is the UTC expiration time.
type SessionToken struct {
	Token string    // the serialized JWT string
	JTI   string    // random session id (uuid)
	Exp   time.Time // UTC expiration time
}

// ErrInvalidSession is returned when a presented session token cannot
// be parsed, fails signature verification, or is expired.
var ErrInvalidSession = errors.New("invalid session token")

// NewSessionToken builds and signs an HS256 JWT for a user. The JWT
// carries standard claims: subject (sub), a uuid session id (jti),
// expiration (exp) and issued at (iat).
func NewSessionToken(secret string, userID uint64, ttl time.Duration) (SessionToken, error) {
	exp := time.Now().UTC().Add(ttl)
	jti := uuid.NewString()
	claims := jwt.MapClaims{
		"sub": userID,
		"jti": jti,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, JTI: jti, Exp: exp}, nil
}

// ParseSessionToken verifies the signature and expiry of a session JWT
// and returns the user id and session id it carries. Any defect in the
// token reports ErrInvalidSession; callers treat that as Anonymous.
func ParseSessionToken(secret, raw string) (userID uint64, jti string, err error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with a different algorithm.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, "", ErrInvalidSession
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidSession
	}
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return 0, "", ErrInvalidSession
	}
	id, ok := claims["jti"].(string)
	if !ok || id == "" {
		return 0, "", ErrInvalidSession
	}
	return uint64(sub), id, nil
}

// HashSessionID returns the SHA-256 hash of a session id as a hex
// string. Storing only the hash keeps stolen database rows from being
// replayed as cookies.
func HashSessionID(jti string) string {
	sum := sha256.Sum256([]byte(jti))
	return hex.EncodeToString(sum[:])
}
