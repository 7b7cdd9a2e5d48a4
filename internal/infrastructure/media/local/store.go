package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store keeps uploaded photos on the local filesystem, used when no
// hosted media provider is configured.
type Store struct {
	baseDir string
	baseURL string
}

func NewStore(baseDir, baseURL string) (*Store, error) {
	baseDir = strings.TrimSpace(baseDir)
	if baseDir == "" {
		return nil, fmt.Errorf("uploads directory is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}

	return &Store{
		baseDir: baseDir,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}, nil
}

func (s *Store) Upload(_ context.Context, fileName string, content []byte) (string, error) {
	name := filepath.Base(fileName)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid photo file name: %q", fileName)
	}

	path := filepath.Join(s.baseDir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write photo file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// Owns reports whether the reference was served from this store's base URL.
func (s *Store) Owns(ref string) bool {
	return strings.HasPrefix(ref, s.baseURL+"/")
}

func (s *Store) Delete(_ context.Context, ref string) error {
	name := filepath.Base(strings.TrimSpace(ref))
	if name == "" || name == "." {
		return nil
	}

	if err := os.Remove(filepath.Join(s.baseDir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove photo file: %w", err)
	}

	return nil
}
