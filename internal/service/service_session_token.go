package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/golang-jwt/jwt/v5"
)

// sessionTokenService is the concrete implementation of SessionTokenService.
// Tokens carry the folder ID, never the master secret.
type sessionTokenService struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey []byte

	// issuer is the "iss" claim embedded in every token.
	issuer string

	// duration controls how long a token remains valid.
	duration time.Duration

	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewSessionTokenService constructs a SessionTokenService from cfg. When
// cfg.SignKey is empty a random 256-bit key is drawn, so tokens do not
// outlive the process.
func NewSessionTokenService(cfg config.Session, ids IDGenerator, logger *logger.Logger) (SessionTokenService, error) {
	signKey := []byte(cfg.SignKey)
	if len(signKey) == 0 {
		signKey = make([]byte, 32)
		if _, err := rand.Read(signKey); err != nil {
			return nil, fmt.Errorf("generate session sign key: %w", err)
		}
	}

	duration := cfg.Duration
	if duration == 0 {
		duration = config.DefaultSessionDuration
	}
	issuer := cfg.Issuer
	if issuer == "" {
		issuer = config.DefaultSessionIssuer
	}

	return &sessionTokenService{
		signKey:  signKey,
		issuer:   issuer,
		duration: duration,
		ids:      ids,
		now:      time.Now,
		logger:   logger,
	}, nil
}

func (s *sessionTokenService) Issue(folderID string) (models.SessionToken, error) {
	token, err := utils.GenerateSessionToken(s.issuer, folderID, s.ids.Generate(), s.duration, s.signKey, s.now())
	if err != nil {
		s.logger.Err(err).Str("func", "sessionTokenService.Issue").Msg("session token was not issued")
		return models.SessionToken{}, err
	}
	return token, nil
}

func (s *sessionTokenService) Verify(token string) (models.SessionToken, error) {
	parsed, err := utils.ValidateAndParseSessionToken(token, s.signKey, s.issuer, s.now())
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.SessionToken{}, ErrSessionExpired
	}
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("%w: %v", ErrSessionInvalid, err)
	}
	return parsed, nil
}
