package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken is the capability handed to the caller after a vault has been
// unlocked. It proves that the holder unlocked the folder named in the
// "sub" claim and bounds the session with issued-at/expires-at claims.
//
// The master secret is never part of the token.
type SessionToken struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims holds iss, sub (the folder ID), iat and exp.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// FolderID returns the folder identifier carried in the subject claim.
func (t SessionToken) FolderID() string {
	return t.Subject
}

// IssuedAtTime returns the issued-at claim, or the zero time if absent.
func (t SessionToken) IssuedAtTime() time.Time {
	if t.IssuedAt == nil {
		return time.Time{}
	}
	return t.IssuedAt.Time
}

// ExpiresAtTime returns the expires-at claim, or the zero time if absent.
func (t SessionToken) ExpiresAtTime() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
func (t SessionToken) String() string {
	return t.SignedString
}
