// Package sitemap serves the XML sitemap listing the site and its posts.
package sitemap

import (
	"context"
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/racedirector/racedirector/internal/feed"
	"github.com/racedirector/racedirector/internal/posts"
	"github.com/racedirector/racedirector/internal/telemetry/tracing"
	"github.com/racedirector/racedirector/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	MaxPosts     = 500
	cacheControl = "s-maxage=604800"
	namespace    = "http://www.sitemaps.org/schemas/sitemap/0.9"
)

type urlEntry struct {
	Loc string `xml:"loc"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

// Build renders the sitemap of baseURL with one entry per post id.
func Build(baseURL string, postIDs []string) ([]byte, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")
	set := urlSet{
		Xmlns: namespace,
		URLs:  make([]urlEntry, 0, len(postIDs)+1),
	}
	set.URLs = append(set.URLs, urlEntry{Loc: baseURL})
	for _, id := range postIDs {
		set.URLs = append(set.URLs, urlEntry{Loc: baseURL + "/p/" + id})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

type Handler struct {
	baseURL string
	posts   feed.Source[posts.Post]
}

func NewHandler(baseURL string, source feed.Source[posts.Post]) *Handler {
	return &Handler{
		baseURL: baseURL,
		posts:   source,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/sitemap.xml", handler.handleSitemap).Methods("GET", "OPTIONS").Name("sitemap")
}

func (handler *Handler) postIDs(ctx context.Context) ([]string, error) {
	latest, err := handler.posts.After(ctx, feed.Query{Order: feed.OrderCreatedAtDesc}, nil, MaxPosts)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(latest))
	for _, p := range latest {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (handler *Handler) handleSitemap(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "sitemapHandler.sitemap")
	defer span.End()

	ids, err := handler.postIDs(ctx)
	if err != nil {
		log.Errorf("sitemap: list posts: %s", err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	span.SetAttributes(attribute.Int("posts", len(ids)))

	body, err := Build(handler.baseURL, ids)
	if err != nil {
		log.Errorf("sitemap: build: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", cacheControl)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.XML, body)
}
