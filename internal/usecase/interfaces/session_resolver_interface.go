package interfaces

import (
	"context"
	"errors"
)

// ErrNoSession indicates the credentials do not map to a live session.
var ErrNoSession = errors.New("no session")

// ISessionResolver is the external identity collaborator: it maps request
// credentials to a stable user id, or reports ErrNoSession.

type ISessionResolver interface {
	Resolve(ctx context.Context, token string) (userID string, err error)
}
