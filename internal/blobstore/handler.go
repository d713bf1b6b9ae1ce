package blobstore

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"

	"github.com/racedirector/racedirector/internal/telemetry/tracing"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Handler streams blobs of a store over HTTP.
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/{path:.+}", handler.handleGet).Methods("GET", "OPTIONS").Name("get-blob")
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "blobHandler.get")
	defer span.End()

	blobPath := mux.Vars(r)["path"]
	body, err := handler.store.Get(ctx, blobPath)
	if err != nil {
		switch {
		case errors.Is(err, ErrBlobNotFound):
			http.Error(w, "not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidPath):
			http.Error(w, "invalid path", http.StatusBadRequest)
		default:
			log.Errorf("get blob [%s]: %s", blobPath, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}
	defer body.Close()

	contentType := mime.TypeByExtension(path.Ext(blobPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")

	if _, err := io.Copy(w, body); err != nil {
		log.Errorf("stream blob [%s]: %s", blobPath, err)
	}
}
