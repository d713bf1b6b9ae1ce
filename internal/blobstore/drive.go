package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/racedirector/racedirector/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const folderMimeType = "application/vnd.google-apps.folder"

var _ Store = (*Drive)(nil)

// Drive stores blobs as files of a single Google Drive folder. The blob path is the file name.
type Drive struct {
	service  *drive.Service
	folderID string

	mutex   sync.Mutex
	fileIDs map[string]string
}

// NewDrive finds (or creates) the folder named folderName and stores blobs in it.
func NewDrive(ctx context.Context, folderName string, opts ...option.ClientOption) (*Drive, error) {
	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}

	folderQuery := fmt.Sprintf(
		"mimeType = '%s' and trashed = false and name = '%s'",
		folderMimeType, escapeQuery(folderName),
	)
	folders, err := driveService.
		Files.List().
		Q(folderQuery).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve folders: %w", err)
	}

	folderID := ""
	switch {
	case len(folders.Files) == 1:
		folderID = folders.Files[0].Id
	case len(folders.Files) > 1:
		folderID = folders.Files[0].Id
		log.Warnf("drive store: found %d folders named %s, will take the first one: %s", len(folders.Files), folderName, folderID)
	default:
		log.Printf("drive store: folder %s not found, creating ...", folderName)
		created, err := driveService.Files.
			Create(&drive.File{Name: folderName, MimeType: folderMimeType}).
			Fields("id").
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("create blobs folder: %w", err)
		}
		folderID = created.Id
	}

	log.Debugf("drive store: using folder %s (%s)", folderName, folderID)

	return &Drive{
		service:  driveService,
		folderID: folderID,
		fileIDs:  make(map[string]string),
	}, nil
}

func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

func (d *Drive) lookup(ctx context.Context, name string) (string, error) {
	d.mutex.Lock()
	id, ok := d.fileIDs[name]
	d.mutex.Unlock()
	if ok {
		return id, nil
	}

	q := fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false", escapeQuery(name), d.folderID)
	files, err := d.service.Files.List().Q(q).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("list drive files: %w", err)
	}
	if len(files.Files) == 0 {
		return "", ErrBlobNotFound
	}

	id = files.Files[0].Id
	d.mutex.Lock()
	d.fileIDs[name] = id
	d.mutex.Unlock()

	return id, nil
}

func (d *Drive) forget(name string) {
	d.mutex.Lock()
	delete(d.fileIDs, name)
	d.mutex.Unlock()
}

func (d *Drive) Put(ctx context.Context, p string, r io.Reader, contentType string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "driveStore.put")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name, err := CleanPath(p)
	if err != nil {
		return "", err
	}

	var file *drive.File
	existingID, err := d.lookup(ctx, name)
	switch {
	case err == nil:
		file, err = d.service.Files.
			Update(existingID, &drive.File{MimeType: contentType}).
			Media(r).
			Fields("id, webContentLink").
			Context(ctx).
			Do()
		if err != nil {
			return "", fmt.Errorf("update drive file %s: %w", name, err)
		}
	case errors.Is(err, ErrBlobNotFound):
		file, err = d.service.Files.
			Create(&drive.File{Name: name, MimeType: contentType, Parents: []string{d.folderID}}).
			Media(r).
			Fields("id, webContentLink").
			Context(ctx).
			Do()
		if err != nil {
			return "", fmt.Errorf("create drive file %s: %w", name, err)
		}
		if _, err := d.service.Permissions.
			Create(file.Id, &drive.Permission{Type: "anyone", Role: "reader"}).
			Context(ctx).
			Do(); err != nil {
			return "", fmt.Errorf("share drive file %s: %w", name, err)
		}
	default:
		return "", err
	}

	d.mutex.Lock()
	d.fileIDs[name] = file.Id
	d.mutex.Unlock()

	log.Debugf("drive store: blob stored: %s (%s)", name, file.Id)

	return file.WebContentLink, nil
}

func (d *Drive) Get(ctx context.Context, p string) (io.ReadCloser, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "driveStore.get")
	defer span.End()

	name, err := CleanPath(p)
	if err != nil {
		return nil, err
	}

	id, err := d.lookup(ctx, name)
	if err != nil {
		return nil, err
	}

	resp, err := d.service.Files.Get(id).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("download drive file %s: %w", name, err)
	}

	return resp.Body, nil
}

func (d *Drive) Delete(ctx context.Context, p string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "driveStore.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name, err := CleanPath(p)
	if err != nil {
		return err
	}

	id, err := d.lookup(ctx, name)
	if err != nil {
		return err
	}

	if err := d.service.Files.Delete(id).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete drive file %s: %w", name, err)
	}
	d.forget(name)

	return nil
}
