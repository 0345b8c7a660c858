package apiclient

import (
	"context"
	"errors"

	"github.com/arbadelivery/deliverykit/pkg/session"
)

// TokenSource supplies the bearer token replayed on each request. An empty
// token means "send no Authorization header".
type TokenSource interface {
	AuthToken(ctx context.Context) (string, error)
}

// StaticTokenSource always returns the same token; handy for tests and
// one-off scripts.
type StaticTokenSource string

func (s StaticTokenSource) AuthToken(ctx context.Context) (string, error) {
	return string(s), nil
}

type sessionTokenSource struct {
	store session.Store
}

// NewSessionTokenSource reads the bearer token from the session store on
// each request, so a login in one part of the app is picked up everywhere.
// A missing token is not an error; the request simply goes out anonymous.
func NewSessionTokenSource(store session.Store) TokenSource {
	return &sessionTokenSource{store: store}
}

func (s *sessionTokenSource) AuthToken(ctx context.Context) (string, error) {
	token, err := s.store.Get(ctx, session.KeyAuthToken)
	if errors.Is(err, session.ErrNotFound) {
		return "", nil
	}
	return token, err
}
