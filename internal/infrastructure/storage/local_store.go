package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"movequote/internal/usecase/interfaces"
)

const defaultUploadDir = "./uploads"

// LocalStore writes quote media to the local filesystem. It is the fallback
// when no S3 bucket is configured, suitable for development and single-node
// deployments.
type LocalStore struct {
	dir string
}

var _ interfaces.IBlobStore = (*LocalStore)(nil)

func NewLocalStore() (*LocalStore, error) {
	dir := os.Getenv("MEDIA_UPLOAD_DIR")
	if dir == "" {
		dir = defaultUploadDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	clean := filepath.Clean(key)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}

	target := filepath.Join(s.dir, clean)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(target)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", err
	}
	return target, nil
}
