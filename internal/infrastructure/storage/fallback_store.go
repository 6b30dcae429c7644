package storage

import (
	"bytes"
	"context"
	"io"

	"movequote/internal/platform/logger"
	"movequote/internal/usecase/interfaces"
)

// FallbackStore writes to the primary store and retries the write against the
// fallback when the primary fails mid-request. The body is buffered up front
// so the second attempt replays the full content; upload size is capped
// upstream before the store is reached.
type FallbackStore struct {
	primary  interfaces.IBlobStore
	fallback interfaces.IBlobStore
	log      *logger.Logger
}

var _ interfaces.IBlobStore = (*FallbackStore)(nil)

func NewFallbackStore(primary, fallback interfaces.IBlobStore, log *logger.Logger) *FallbackStore {
	return &FallbackStore{primary: primary, fallback: fallback, log: log}
}

func (s *FallbackStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	buf, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	url, err := s.primary.Put(ctx, key, contentType, bytes.NewReader(buf))
	if err == nil {
		return url, nil
	}

	s.log.Warn("primary media store failed, retrying on fallback",
		"key", key, "error", err)
	return s.fallback.Put(ctx, key, contentType, bytes.NewReader(buf))
}
