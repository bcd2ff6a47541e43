package auth

import (
	"casino-backend/internal/config"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrInvalidToken   = errors.New("invalid token")
	ErrEmptyJWTSecret = errors.New("jwt secret cannot be empty")
	ErrNoVerifier     = errors.New("no token verifier configured")
)

// Identity is the authenticated caller extracted from an access token.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// TokenVerifier validates a bearer token and returns who it belongs to.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

type AppMetadata struct {
	Role string `json:"role,omitempty"`
}

// Claims mirrors the Supabase access token payload.
type Claims struct {
	Email       string      `json:"email"`
	Role        string      `json:"role"`
	AppMetadata AppMetadata `json:"app_metadata"`
	jwt.RegisteredClaims
}

// JWTVerifier checks HS256 tokens signed with the project JWT secret.
type JWTVerifier struct {
	secret   string
	audience string
}

func NewJWTVerifier(secret, audience string) *JWTVerifier {
	return &JWTVerifier{secret: secret, audience: audience}
}

func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (*Identity, error) {
	claims, err := ValidateToken(tokenString, v.secret, v.audience)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a user id", ErrInvalidToken)
	}

	return &Identity{
		UserID: userID,
		Email:  claims.Email,
		Role:   claims.AppMetadata.Role,
	}, nil
}

func ValidateToken(tokenString, secret, audience string) (*Claims, error) {
	if secret == "" {
		return nil, ErrEmptyJWTSecret
	}

	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		},
		opts...,
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GenerateToken signs a Supabase-shaped access token. Used by tests and the CLI.
func GenerateToken(userID uuid.UUID, email, appRole, secret, audience string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptyJWTSecret
	}

	now := time.Now()
	claims := &Claims{
		Email:       email,
		Role:        "authenticated",
		AppMetadata: AppMetadata{Role: appRole},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Audience:  []string{audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// NewVerifier prefers local JWT verification and falls back to asking Supabase.
func NewVerifier(cfg config.AuthConfig) (TokenVerifier, error) {
	switch {
	case cfg.JWTSecret != "":
		return NewJWTVerifier(cfg.JWTSecret, cfg.JWTAudience), nil
	case cfg.SupabaseURL != "" && cfg.SupabaseAnonKey != "":
		return NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey), nil
	default:
		return nil, ErrNoVerifier
	}
}
