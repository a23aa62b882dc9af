// Package auth verifies bearer tokens issued by the identity provider.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/config"
	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// Identity is the caller described by a verified token.
type Identity struct {
	UserID uuid.UUID
	Name   string
	Email  string
}

// claims are the token claims read by the verifier. Name falls back to the
// nested user_metadata.full_name some providers emit.
type claims struct {
	jwt.RegisteredClaims
	Email        string `json:"email,omitempty"`
	Name         string `json:"name,omitempty"`
	UserMetadata struct {
		FullName string `json:"full_name,omitempty"`
	} `json:"user_metadata"`
}

func (c *claims) displayName() string {
	switch {
	case c.Name != "":
		return c.Name
	case c.UserMetadata.FullName != "":
		return c.UserMetadata.FullName
	}
	return c.Email
}

// Verifier validates bearer tokens either with a shared HS256 secret or
// against a JWKS endpoint (RS256/ES256).
type Verifier struct {
	keyFunc jwt.Keyfunc
	parser  *jwt.Parser
	log     *slog.Logger
}

// NewVerifier creates a Verifier from cfg. With a JWKS URL the key set is
// fetched once here and refreshed in the background until ctx is done.
func NewVerifier(ctx context.Context, log *slog.Logger, cfg config.AuthConfig) (*Verifier, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	v := &Verifier{log: log.With("component", "auth")}

	if cfg.UsesJWKS() {
		jwks, err := keyfunc.NewDefaultCtx(ctx, []string{cfg.JWKSURL})
		if err != nil {
			return nil, fmt.Errorf("create JWKS client: %w", err)
		}
		v.keyFunc = jwks.Keyfunc
		opts = append(opts, jwt.WithValidMethods([]string{"RS256", "ES256"}))
		v.log.Info("token verifier initialized", slog.String("mode", "jwks"), slog.String("jwks_url", cfg.JWKSURL))
	} else {
		if cfg.JWTSecret == "" {
			return nil, errors.New("auth: jwt secret or jwks url required")
		}
		secret := []byte(cfg.JWTSecret)
		v.keyFunc = func(*jwt.Token) (any, error) { return secret, nil }
		opts = append(opts, jwt.WithValidMethods([]string{"HS256"}))
		v.log.Info("token verifier initialized", slog.String("mode", "hs256"))
	}

	v.parser = jwt.NewParser(opts...)
	return v, nil
}

// ValidateToken verifies the token and returns the caller's identity.
// Every failure is reported as domain.ErrUnauthorized.
func (v *Verifier) ValidateToken(ctx context.Context, token string) (Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, domain.ErrUnauthorized
	}

	var c claims
	if _, err := v.parser.ParseWithClaims(token, &c, v.keyFunc); err != nil {
		v.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: subject is not a user id", domain.ErrUnauthorized)
	}

	return Identity{UserID: userID, Name: c.displayName(), Email: c.Email}, nil
}
