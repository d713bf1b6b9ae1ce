// Package feed pages through ordered collections with opaque keyset cursors.
package feed

import (
	"context"
	"fmt"

	"github.com/racedirector/racedirector/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// Source returns up to limit items of q strictly after the given key, or from the start when after is nil.
type Source[T Item] interface {
	After(ctx context.Context, q Query, after *Key, limit int) ([]T, error)
}

type Page[T Item] struct {
	Items []T `json:"items"`
	// Next is empty only when the batch was empty
	Next string `json:"next,omitempty"`
	Done bool   `json:"done"`
}

type Retriever[T Item] struct {
	source Source[T]
}

func NewRetriever[T Item](source Source[T]) *Retriever[T] {
	return &Retriever[T]{source: source}
}

// FetchPage returns the next batch of q after cursor (empty for the first page).
// An empty batch comes back with Done set and no cursor; a short batch keeps its cursor and sets Done.
func (r *Retriever[T]) FetchPage(ctx context.Context, q Query, pageSize int, cursor string) (_ Page[T], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "feed.fetchPage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("order", string(q.Order)),
		attribute.Int("page_size", pageSize),
		attribute.Bool("first_page", cursor == ""),
	)

	if !q.Order.Valid() {
		return Page[T]{}, fmt.Errorf("%w: %q", ErrUnknownOrder, q.Order)
	}
	if pageSize <= 0 {
		return Page[T]{}, ErrInvalidPageSize
	}

	var after *Key
	if cursor != "" {
		c, err := DecodeCursor(cursor)
		if err != nil {
			return Page[T]{}, err
		}
		if !c.matches(q) {
			return Page[T]{}, ErrCursorMismatch
		}
		after = &c.After
	}

	items, err := r.source.After(ctx, q, after, pageSize)
	if err != nil {
		return Page[T]{}, fmt.Errorf("fetch feed page: %w", err)
	}
	span.SetAttributes(attribute.Int("items", len(items)))

	if len(items) == 0 {
		return Page[T]{Items: []T{}, Done: true}, nil
	}

	return Page[T]{
		Items: items,
		Next:  newCursor(q, items[len(items)-1].FeedKey()).Encode(),
		Done:  len(items) < pageSize,
	}, nil
}

// PageSizes holds the size of the first page of a feed and of every page after it.
type PageSizes struct {
	First int
	Next  int
}

func (p PageSizes) For(cursor string) int {
	if cursor == "" {
		return p.First
	}
	return p.Next
}
