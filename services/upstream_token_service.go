package services

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UpstreamTokenClaims are the claims of the service token the gateway
// presents to the upstream commerce API. This is service-to-service auth
// only; admin end-user authentication is not the gateway's concern.
type UpstreamTokenClaims struct {
	Service string `json:"service"`
	jwt.RegisteredClaims
}

const tokenTTL = 10 * time.Minute

// UpstreamTokenService mints short-lived HS256 tokens and reuses them until
// shortly before expiry.
type UpstreamTokenService struct {
	secretKey string

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

var upstreamTokens *UpstreamTokenService

// InitUpstreamTokenService initializes the shared token service.
func InitUpstreamTokenService(secretKey string) error {
	if secretKey == "" {
		return errors.New("upstream secret key cannot be empty")
	}
	upstreamTokens = &UpstreamTokenService{secretKey: secretKey}
	return nil
}

// GetUpstreamTokenService returns the initialized token service.
func GetUpstreamTokenService() *UpstreamTokenService {
	return upstreamTokens
}

// Token returns a valid bearer token, minting a fresh one when the cached
// token is within 30s of expiry.
func (s *UpstreamTokenService) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Until(s.expiresAt) > 30*time.Second {
		return s.token, nil
	}

	now := time.Now()
	expiresAt := now.Add(tokenTTL)
	claims := UpstreamTokenClaims{
		Service: "jubian-admin-gateway",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "jubian-admin-gateway",
			Audience:  jwt.ClaimStrings{"commerce-api"},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secretKey))
	if err != nil {
		return "", err
	}

	s.token = token
	s.expiresAt = expiresAt
	return token, nil
}
