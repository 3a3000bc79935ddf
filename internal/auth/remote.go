package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/yourname/moodjournal/internal"
)

// RemoteAuthProvider asks an external service to resolve the token.
type RemoteAuthProvider struct {
	AuthServiceURL string
	HTTPClient     *http.Client
	logger         internal.Logger
}

func NewRemoteAuthProvider(url string, logger internal.Logger) *RemoteAuthProvider {
	return &RemoteAuthProvider{
		AuthServiceURL: url,
		HTTPClient:     &http.Client{Timeout: 5 * time.Second},
		logger:         logger,
	}
}

func (a *RemoteAuthProvider) ValidateToken(ctx context.Context, token string) (*internal.User, error) {
	body, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.AuthServiceURL, bytes.NewReader(body))
	if err != nil {
		a.logger.Errorf("auth: failed to create request: %v", err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		a.logger.Errorf("auth: failed to call auth service: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Warnf("auth: service returned %d", resp.StatusCode)
		return nil, fmt.Errorf("%w: auth service returned %d", ErrInvalidToken, resp.StatusCode)
	}

	var user internal.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		a.logger.Errorf("auth: failed to decode response: %v", err)
		return nil, err
	}
	if user.ID == "" {
		return nil, fmt.Errorf("%w: auth service returned no user id", ErrInvalidToken)
	}
	return &user, nil
}
