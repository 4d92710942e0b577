package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by [GenerateSessionToken] when a
// required argument is empty or zero.
var ErrInvalidTokenParams = errors.New("invalid params for generating session token")

// GenerateSessionToken creates a signed HMAC-SHA256 session token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the vault process that issued the token
//   - Subject   (sub): the ID of the unlocked folder
//   - ID        (jti): the session ID, unique per unlock
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus duration
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("go-pass-vault", folder.ID(), sessionID, time.Hour, key, time.Now())
func GenerateSessionToken(issuer, folderID, sessionID string, duration time.Duration, signKey []byte, now time.Time) (models.SessionToken, error) {
	if issuer == "" || folderID == "" || sessionID == "" || duration <= 0 || len(signKey) == 0 {
		return models.SessionToken{}, ErrInvalidTokenParams
	}

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   folderID,
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(signKey)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.SessionToken{Token: token, RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseSessionToken validates tokenString and extracts its claims.
//
// Validation includes:
//   - HS256 signature verification with signKey
//   - Issuer (iss) check against issuer
//   - Expiration (exp) check against now; exp is required
//   - Subject (sub) and ID (jti) presence
//
// Expired tokens yield an error wrapping jwt.ErrTokenExpired.
func ValidateAndParseSessionToken(tokenString string, signKey []byte, issuer string, now time.Time) (models.SessionToken, error) {
	parsed := &models.SessionToken{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return signKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if parsed.Subject == "" {
		return models.SessionToken{}, errors.New("empty subject error")
	}
	if parsed.ID == "" {
		return models.SessionToken{}, errors.New("empty session id error")
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	return *parsed, nil
}
