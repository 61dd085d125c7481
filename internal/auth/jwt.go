package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/LidiaAlemu/meditrack/internal"
)

// JWTProvider verifies HMAC-signed tokens issued by the identity service and
// takes the user id from the subject claim.
type JWTProvider struct {
	secret []byte
	logger internal.Logger
}

func NewJWTProvider(secret []byte, logger internal.Logger) *JWTProvider {
	return &JWTProvider{secret: secret, logger: logger}
}

func (p *JWTProvider) ValidateToken(ctx context.Context, tokenString string) (*internal.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		p.logger.Warnf("jwt auth: invalid token: %v", err)
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.New("sub claim missing")
	}
	name, _ := claims["name"].(string)

	return &internal.User{ID: sub, Name: name}, nil
}
