package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/LidiaAlemu/meditrack/internal"
)

// RemoteProvider delegates token verification to the identity service over
// HTTP. The client timeout bounds how long a request can hold a connection
// waiting on auth.
type RemoteProvider struct {
	AuthServiceURL string
	HTTPClient     *http.Client
	logger         internal.Logger
}

func NewRemoteProvider(url string, logger internal.Logger) *RemoteProvider {
	return &RemoteProvider{
		AuthServiceURL: url,
		HTTPClient:     &http.Client{Timeout: 5 * time.Second},
		logger:         logger,
	}
}

func (p *RemoteProvider) ValidateToken(ctx context.Context, token string) (*internal.User, error) {
	payload, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.AuthServiceURL, bytes.NewReader(payload))
	if err != nil {
		p.logger.Errorf("auth: failed to create request: %v", err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		p.logger.Errorf("auth: failed to call auth service: %v", err)
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		p.logger.Warnf("auth: auth service returned %d", resp.StatusCode)
		return nil, errors.New("auth service rejected token")
	}

	var user internal.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		p.logger.Errorf("auth: failed to decode auth response: %v", err)
		return nil, err
	}
	if user.ID == "" {
		return nil, errors.New("auth service returned empty user id")
	}
	return &user, nil
}
