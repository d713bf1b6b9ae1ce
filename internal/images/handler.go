// Package images accepts cover image uploads and keeps them in the blob store.
package images

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/racedirector/racedirector/internal/auth"
	"github.com/racedirector/racedirector/internal/telemetry/tracing"
	"github.com/racedirector/racedirector/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	MaxImageSize = 5 << 20
	formField    = "image"
	nameLength   = 20
)

var (
	ErrUnsupportedType = errors.New("only .jpg, .jpeg and .png images are allowed")
	ErrTooLarge        = errors.New("image is larger than 5MB")
)

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

type blobWriter interface {
	Put(ctx context.Context, p string, r io.Reader, contentType string) (string, error)
}

type uploadResponse struct {
	URL string `json:"url"`
}

type Handler struct {
	blobs blobWriter
	// random file names; swapped in tests
	newName func() (string, error)
}

func NewHandler(blobs blobWriter) *Handler {
	return &Handler{
		blobs: blobs,
		newName: func() (string, error) {
			return pkg.GenerateRandomAlphanumeric(nameLength)
		},
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/images", handler.handleUpload).Methods("POST", "OPTIONS").Name("upload-image")
}

// ImagePath returns where an upload with the given extension is kept for userID.
func ImagePath(userID, name, ext string) string {
	return "users/" + userID + "/" + name + ext
}

func checkExtension(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := contentTypes[ext]; !ok {
		return "", ErrUnsupportedType
	}
	return ext, nil
}

func (handler *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "imagesHandler.upload")
	defer span.End()

	session, ok := auth.SessionFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	// leave some room for the multipart envelope
	r.Body = http.MaxBytesReader(w, r.Body, MaxImageSize+1<<20)
	if err := r.ParseMultipartForm(MaxImageSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, ErrTooLarge.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		log.Debugf("upload image, parse multipart form: %s", err)
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Errorf("upload image, remove temp files: %s", err)
		}
	}()

	file, header, err := r.FormFile(formField)
	if err != nil {
		http.Error(w, "missing image", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext, err := checkExtension(header.Filename)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if header.Size > MaxImageSize {
		http.Error(w, ErrTooLarge.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	name, err := handler.newName()
	if err != nil {
		log.Errorf("upload image, generate name: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	blobPath := ImagePath(session.UserID, name, ext)
	span.SetAttributes(
		attribute.String("image.path", blobPath),
		attribute.Int64("image.size", header.Size),
	)

	url, err := handler.blobs.Put(ctx, blobPath, file, contentTypes[ext])
	if err != nil {
		log.Errorf("upload image [%s]: %s", blobPath, err)
		http.Error(w, "failed to store image", http.StatusInternalServerError)
		return
	}

	log.Debugf("user %s uploaded image %s", session.UserID, blobPath)
	pkg.WriteJSON(w, http.StatusCreated, uploadResponse{URL: url})
}
