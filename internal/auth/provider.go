package auth

import (
	"context"

	"github.com/yourname/moodjournal/internal"
)

// Provider turns a bearer token into the user whose journal is served.
type Provider interface {
	ValidateToken(ctx context.Context, token string) (*internal.User, error)
}
