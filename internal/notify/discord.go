// Package notify announces newly published posts on a Discord channel through a webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/racedirector/racedirector/internal/auth"
	"github.com/racedirector/racedirector/internal/posts"
	"github.com/racedirector/racedirector/internal/telemetry/tracing"
	"github.com/racedirector/racedirector/pkg"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	announcement = "Look at this article that has just been posted!"
	embedColor   = 16713993
)

type authorLookup interface {
	ByID(ctx context.Context, id string) (*auth.User, error)
}

type embedAuthor struct {
	Name    string `json:"name,omitempty"`
	URL     string `json:"url,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
}

type embedImage struct {
	URL string `json:"url"`
}

type embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	URL         string       `json:"url"`
	Color       int          `json:"color"`
	Author      *embedAuthor `json:"author,omitempty"`
	Image       *embedImage  `json:"image,omitempty"`
}

type webhookMessage struct {
	Content string  `json:"content"`
	Embeds  []embed `json:"embeds"`
}

type DiscordClient struct {
	webhookURL    string
	publicBaseURL string
	httpClient    *http.Client
	authors       authorLookup
	failures      prometheus.Counter
}

func NewDiscordClient(
	webhookURL, publicBaseURL string,
	httpClient *http.Client,
	authors authorLookup,
	failures prometheus.Counter,
) *DiscordClient {
	return &DiscordClient{
		webhookURL:    webhookURL,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		httpClient:    httpClient,
		authors:       authors,
		failures:      failures,
	}
}

func (c *DiscordClient) message(ctx context.Context, post posts.Post) webhookMessage {
	e := embed{
		Title:       post.Headline,
		Description: post.Summary,
		URL:         c.publicBaseURL + "/p/" + post.ID,
		Color:       embedColor,
	}
	if post.CoverImage.URL != "" {
		e.Image = &embedImage{URL: post.CoverImage.URL}
	}

	author, err := c.authors.ByID(ctx, post.AuthorID)
	if err != nil {
		// the post still gets announced, just without its author
		log.Warnf("discord: lookup author %s of post %s: %s", post.AuthorID, post.ID, err)
	} else {
		e.Author = &embedAuthor{
			Name:    author.DisplayName,
			URL:     c.publicBaseURL + "/u/" + author.ID,
			IconURL: author.PhotoURL,
		}
	}

	return webhookMessage{
		Content: announcement,
		Embeds:  []embed{e},
	}
}

// PostPublished posts the announcement embed for post to the webhook.
func (c *DiscordClient) PostPublished(ctx context.Context, post posts.Post) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "discord.postPublished")
	defer func() {
		if err != nil {
			c.failures.Inc()
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("post.id", post.ID))

	payload, err := json.Marshal(c.message(ctx, post))
	if err != nil {
		return fmt.Errorf("marshal webhook message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("new webhook request: %w", err)
	}
	req.Header.Set("Content-Type", pkg.ContentType.JSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Errorf("discord: close response body: %s", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook responded with %d: %s", resp.StatusCode, body)
	}

	log.Debugf("discord: announced post %s", post.ID)
	return nil
}
