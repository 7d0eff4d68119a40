package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalArchive writes attachments to a directory on disk.
type LocalArchive struct {
	basePath string
}

// NewLocalArchive creates the base directory if needed.
func NewLocalArchive(basePath string) (*LocalArchive, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}
	return &LocalArchive{basePath: basePath}, nil
}

func (a *LocalArchive) Save(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
	storagePath := archivePath(filename)
	fullPath := filepath.Join(a.basePath, storagePath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("writing attachment: %w", err)
	}
	return storagePath, nil
}
