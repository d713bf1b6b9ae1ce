package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/racedirector/racedirector/internal/telemetry/tracing"
	"github.com/racedirector/racedirector/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var _ Store = (*Disk)(nil)

// Disk stores blobs as files under a root directory and serves them under baseURL.
type Disk struct {
	rootPath string
	baseURL  string
	mutex    sync.RWMutex
}

func NewDisk(rootPath, baseURL string) (*Disk, error) {
	if exists, err := pkg.PathExists(rootPath, true); err != nil {
		return nil, fmt.Errorf("check blob root dir: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("blob root dir does not exist: %s", rootPath)
	}

	return &Disk{
		rootPath: rootPath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (d *Disk) URL(p string) string {
	return d.baseURL + "/" + p
}

func (d *Disk) fullPath(p string) (string, string, error) {
	cleaned, err := CleanPath(p)
	if err != nil {
		return "", "", err
	}
	return cleaned, filepath.Join(d.rootPath, filepath.FromSlash(cleaned)), nil
}

func (d *Disk) Put(ctx context.Context, p string, r io.Reader, _ string) (_ string, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "diskStore.put")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("path", p))

	cleaned, full, err := d.fullPath(p)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", fmt.Errorf("create blob dir: %w", err)
	}

	// write to a temp file first, so readers never see a half written blob
	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", err
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()
	if err := os.Rename(tmpName, full); err != nil {
		_ = os.Remove(tmpName)
		return "", err
	}

	log.Debugf("disk store: blob stored: %s", cleaned)

	return d.URL(cleaned), nil
}

func (d *Disk) Get(ctx context.Context, p string) (io.ReadCloser, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "diskStore.get")
	defer span.End()

	_, full, err := d.fullPath(p)
	if err != nil {
		return nil, err
	}

	d.mutex.RLock()
	defer d.mutex.RUnlock()

	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrBlobNotFound
		}
		return nil, err
	}

	if stat, err := f.Stat(); err != nil {
		_ = f.Close()
		return nil, err
	} else if stat.IsDir() {
		_ = f.Close()
		return nil, ErrBlobNotFound
	}

	return f, nil
}

func (d *Disk) Delete(ctx context.Context, p string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "diskStore.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cleaned, full, err := d.fullPath(p)
	if err != nil {
		return err
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if err := os.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrBlobNotFound
		}
		return err
	}

	log.Debugf("disk store: blob [%s] deleted", cleaned)

	return nil
}
