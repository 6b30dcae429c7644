package interfaces

import (
	"context"
	"io"
)

// IBlobStore is the external file-storage collaborator. Put returns a
// retrievable URL (or a local file reference when the write landed on the
// fallback store).

type IBlobStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
