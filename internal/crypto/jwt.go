package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenValidity is the fixed lifetime of an issued token.
	TokenValidity = time.Hour

	tokenIssuer   = "probox-api"
	tokenAudience = "probox-clients"
)

var (
	ErrMissingToken  = errors.New("no token provided")
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrMissingSecret = errors.New("signing secret is empty")
)

// Claims represents the JWT claims issued at login.
type Claims struct {
	jwt.RegisteredClaims
	UserEmail string `json:"userEmail"`
}

// TokenService issues and verifies HS256 tokens with a secret fixed at construction.
type TokenService struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

// NewTokenService creates a TokenService. The secret is copied and never changes afterwards.
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &TokenService{
		secret:   []byte(secret),
		validity: TokenValidity,
		now:      time.Now,
	}, nil
}

// Issue creates a signed token for the given identity, valid for one hour.
func (s *TokenService) Issue(identity string) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   identity,
			Audience:  jwt.ClaimStrings{tokenAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
		UserEmail: identity,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse validates signature, algorithm, issuer, audience and expiry and returns the claims.
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Verify returns the identity embedded in a valid token.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims, err := s.Parse(tokenString)
	if err != nil {
		return "", err
	}
	return claims.UserEmail, nil
}
