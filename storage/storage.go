// Package storage archives feedback attachments so submitted images can
// be inspected after the fact. Local disk is the default backend; S3 is
// available for deployments.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Archive stores attachment payloads and returns their storage path.
type Archive interface {
	Save(ctx context.Context, filename, mimeType string, data []byte) (string, error)
}

// Type selects the archive backend.
type Type string

const (
	TypeLocal Type = "local"
	TypeS3    Type = "s3"
)

// Config holds archive backend settings.
type Config struct {
	Type         Type
	LocalPath    string // for local storage
	S3Bucket     string // for S3 storage
	S3Region     string // for S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// New creates an archive for the configured backend.
func New(cfg Config) (Archive, error) {
	switch cfg.Type {
	case TypeLocal:
		path := cfg.LocalPath
		if path == "" {
			path = "./storage/attachments"
		}
		return NewLocalArchive(path)
	case TypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("S3 bucket is required for s3 storage")
		}
		return NewS3Archive(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// archivePath builds a unique storage path for an attachment, keyed by a
// fresh ID so identical filenames never collide.
func archivePath(filename string) string {
	id := uuid.New()
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	base = strings.ReplaceAll(base, " ", "_")

	return fmt.Sprintf("%s/%s_%s%s", id.String()[:2], id.String(), base, ext)
}
