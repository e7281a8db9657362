package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kiosk_quote/internal/config"
	"kiosk_quote/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSigningMethod = jwt.SigningMethodHS256

var ErrMissingSecret = errors.New("jwt secret is required")

// OperatorClaims identifies the signed-in store operator driving a kiosk.
type OperatorClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// MintOperatorToken issues a signed operator token valid for ttl.
func MintOperatorToken(cfg config.AuthConfig, now time.Time, userID string, ttl time.Duration) (string, error) {
	if cfg.JWTSecret == "" {
		return "", ErrMissingSecret
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", fmt.Errorf("user id is required")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive")
	}
	claims := OperatorClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.JWTIssuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// ParseOperatorToken validates tokenString and returns its claims.
func ParseOperatorToken(cfg config.AuthConfig, tokenString string) (*OperatorClaims, error) {
	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwtSigningMethod.Alg()})}
	if cfg.JWTIssuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWTIssuer))
	}
	claims := &OperatorClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwtSigningMethod {
			return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return nil, fmt.Errorf("token has no user id")
	}
	return claims, nil
}

type contextKey string

const ctxUserID contextKey = "operator_user_id"

// WithUserID stores the operator id on ctx.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxUserID, userID)
}

func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserID).(string); ok {
		return v
	}
	return ""
}

// ContextUserLookup reads the operator placed on the request context by the
// HTTP auth middleware.
type ContextUserLookup struct{}

var _ interfaces.ICurrentUserLookup = ContextUserLookup{}

func (ContextUserLookup) CurrentUserID(ctx context.Context) (string, bool) {
	id := UserIDFromContext(ctx)
	return id, id != ""
}
