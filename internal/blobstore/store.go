// Package blobstore keeps post documents and uploaded images, on local disk or in Google Drive.
package blobstore

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

var (
	ErrBlobNotFound = errors.New("blob not found")
	ErrInvalidPath  = errors.New("invalid blob path")
)

// Store is an object store addressed by slash separated relative paths, e.g. posts/my-post-abc.md.
type Store interface {
	// Put writes r at p, replacing any existing blob, and returns its public URL.
	Put(ctx context.Context, p string, r io.Reader, contentType string) (string, error)
	Get(ctx context.Context, p string) (io.ReadCloser, error)
	Delete(ctx context.Context, p string) error
}

// CleanPath validates a blob path and returns it in canonical form.
func CleanPath(p string) (string, error) {
	if p == "" || strings.HasPrefix(p, "/") || strings.Contains(p, "\\") {
		return "", ErrInvalidPath
	}
	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return "", ErrInvalidPath
		}
	}
	cleaned := path.Clean(p)
	if cleaned == "." {
		return "", ErrInvalidPath
	}
	return cleaned, nil
}
