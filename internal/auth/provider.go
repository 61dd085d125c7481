package auth

import (
	"context"
	"errors"

	"github.com/LidiaAlemu/meditrack/internal"
	"github.com/LidiaAlemu/meditrack/internal/config"
)

// Provider resolves a bearer token to a verified user. All CRUD logic runs
// only behind a user returned from here; there is no default identity.
type Provider interface {
	ValidateToken(ctx context.Context, token string) (*internal.User, error)
}

func FromConfig(cfg *config.Config, logger internal.Logger) (Provider, error) {
	switch cfg.AuthProvider {
	case "static":
		return NewStaticProvider(cfg.AuthToken, &internal.User{ID: cfg.AuthUserID, Name: cfg.AuthUserName}, logger), nil
	case "jwt":
		return NewJWTProvider([]byte(cfg.JWTSecret), logger), nil
	case "remote":
		return NewRemoteProvider(cfg.AuthServiceURL, logger), nil
	}
	return nil, errors.New("auth: unknown provider " + cfg.AuthProvider)
}
