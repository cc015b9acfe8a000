package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/rollsgame/casino/pkg/auth"
)

// ErrInvalidCredentials is returned for an unknown client id or a secret that
// does not match the configured hash.
var ErrInvalidCredentials = errors.New("invalid client credentials")

type Service struct {
	jwtService  auth.JWTServiceInterface
	hashService auth.HashServiceInterface
	clientID    string
	secretHash  string
	tokenTTL    time.Duration
}

func New(jwtService auth.JWTServiceInterface, hashService auth.HashServiceInterface, clientID, secretHash string, tokenTTL time.Duration) *Service {
	return &Service{
		jwtService:  jwtService,
		hashService: hashService,
		clientID:    clientID,
		secretHash:  secretHash,
		tokenTTL:    tokenTTL,
	}
}

// Authenticate exchanges gateway credentials for a bearer token.
func (s *Service) Authenticate(_ context.Context, clientID, secret string) (string, time.Time, error) {
	if clientID != s.clientID || s.secretHash == "" || !s.hashService.CompareSecret(s.secretHash, secret) {
		zap.L().Warn("rejected token request", zap.String("client_id", clientID))
		return "", time.Time{}, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	token, err := s.jwtService.GenerateJWT(clientID, expiresAt)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}
