package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/LidiaAlemu/meditrack/internal"
)

// StaticProvider accepts exactly one configured token and maps it to one
// configured user. Development only; config rejects it in production.
type StaticProvider struct {
	token  string
	user   internal.User
	logger internal.Logger
}

func NewStaticProvider(token string, user *internal.User, logger internal.Logger) *StaticProvider {
	return &StaticProvider{token: token, user: *user, logger: logger}
}

func (p *StaticProvider) ValidateToken(ctx context.Context, token string) (*internal.User, error) {
	if subtle.ConstantTimeCompare([]byte(token), []byte(p.token)) != 1 {
		p.logger.Warnf("static auth: token rejected")
		return nil, errors.New("invalid token")
	}
	u := p.user
	return &u, nil
}
