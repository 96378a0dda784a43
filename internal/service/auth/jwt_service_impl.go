package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vportnov/airport-api/internal/config"
	"github.com/vportnov/airport-api/internal/platform/logger"
)

// hmacJWTService implements JWTService with HMAC-SHA256 signing. Access and
// refresh tokens share the key and claims shape and differ only in the
// "type" claim and lifetime.
type hmacJWTService struct {
	signingKey           []byte
	tokenLifetime        time.Duration
	refreshTokenLifetime time.Duration
	timeFunc             func() time.Time // injectable for tests
	clockSkew            time.Duration
}

// jwtCustomClaims is the wire shape of our tokens.
type jwtCustomClaims struct {
	UserID    uuid.UUID `json:"uid"`
	TokenType string    `json:"type"`
	jwt.RegisteredClaims
}

var _ JWTService = (*hmacJWTService)(nil)

// NewJWTService builds the HMAC token service from the auth configuration.
// The secret must be at least 32 bytes.
func NewJWTService(cfg config.AuthConfig) (JWTService, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	return &hmacJWTService{
		signingKey:           []byte(cfg.JWTSecret),
		tokenLifetime:        time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		refreshTokenLifetime: time.Duration(cfg.RefreshTokenLifetimeMinutes) * time.Minute,
		timeFunc:             time.Now,
		clockSkew:            2 * time.Minute,
	}, nil
}

// signToken issues a signed token of the given type and lifetime for userID.
func (s *hmacJWTService) signToken(
	ctx context.Context,
	userID uuid.UUID,
	tokenType string,
	lifetime time.Duration,
) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := jwtCustomClaims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign JWT token",
			"error", err,
			"user_id", userID,
			"token_type", tokenType)
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}

	return signedToken, nil
}

// parseToken validates the signature and time claims of tokenString and
// returns its claims. JWT library errors collapse to the caller's sentinel
// taxonomy via expiredErr/invalidErr.
func (s *hmacJWTService) parseToken(
	ctx context.Context,
	tokenString string,
	tokenType string,
	expiredErr, invalidErr error,
) (*Claims, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwtCustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token validation failed: expired",
				"error", err, "token_type", tokenType)
			return nil, expiredErr
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			log.Debug("token validation failed: not yet valid",
				"error", err, "token_type", tokenType)
			if tokenType == "access" {
				return nil, ErrTokenNotYetValid
			}
			return nil, invalidErr
		default:
			log.Debug("token validation failed",
				"error", err, "token_type", tokenType)
			return nil, invalidErr
		}
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid {
		log.Debug("token validation failed: invalid claims", "token_type", tokenType)
		return nil, invalidErr
	}

	if claims.TokenType != tokenType {
		log.Debug("token validation failed: wrong token type",
			"expected", tokenType, "actual", claims.TokenType)
		return nil, ErrWrongTokenType
	}

	log.Debug("token validated",
		"user_id", claims.UserID,
		"token_type", tokenType,
		"token_id", claims.ID)

	return &Claims{
		UserID:    claims.UserID,
		TokenType: claims.TokenType,
		Subject:   claims.Subject,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
		ID:        claims.ID,
	}, nil
}

// GenerateToken creates a signed access token for userID.
func (s *hmacJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return s.signToken(ctx, userID, "access", s.tokenLifetime)
}

// ValidateToken validates an access token and returns its claims.
// A refresh token presented here fails with ErrWrongTokenType.
func (s *hmacJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	return s.parseToken(ctx, tokenString, "access", ErrExpiredToken, ErrInvalidToken)
}

// GenerateRefreshToken creates a signed refresh token for userID.
func (s *hmacJWTService) GenerateRefreshToken(
	ctx context.Context,
	userID uuid.UUID,
) (string, error) {
	return s.signToken(ctx, userID, "refresh", s.refreshTokenLifetime)
}

// ValidateRefreshToken validates a refresh token and returns its claims.
// An access token presented here fails with ErrWrongTokenType.
func (s *hmacJWTService) ValidateRefreshToken(
	ctx context.Context,
	tokenString string,
) (*Claims, error) {
	return s.parseToken(ctx, tokenString, "refresh", ErrExpiredRefreshToken, ErrInvalidRefreshToken)
}
