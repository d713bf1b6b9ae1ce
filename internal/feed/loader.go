package feed

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// shared fetches outlive the caller that started them, up to this long
const sharedFetchTimeout = 30 * time.Second

// Loader reads a single feed page by page on behalf of one consumer.
// Concurrent LoadMore calls share one in-flight fetch and always resume from the latest cursor.
type Loader[T Item] struct {
	retriever *Retriever[T]
	query     Query
	sizes     PageSizes

	group singleflight.Group

	mu     sync.Mutex
	cursor string
	done   bool
	loaded int
}

func NewLoader[T Item](retriever *Retriever[T], query Query, sizes PageSizes) *Loader[T] {
	return &Loader[T]{
		retriever: retriever,
		query:     query,
		sizes:     sizes,
	}
}

// LoadMore fetches the next page. It returns no items and no error once the feed is exhausted.
// The shared fetch does not depend on any single caller's context: a caller that gives up
// returns ctx.Err() while the others still get the page.
func (l *Loader[T]) LoadMore(ctx context.Context) ([]T, error) {
	ch := l.group.DoChan("next", func() (any, error) {
		l.mu.Lock()
		if l.done {
			l.mu.Unlock()
			return []T(nil), nil
		}
		cursor := l.cursor
		l.mu.Unlock()

		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()

		page, err := l.retriever.FetchPage(fetchCtx, l.query, l.sizes.For(cursor), cursor)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		defer l.mu.Unlock()
		if page.Next != "" {
			l.cursor = page.Next
		}
		l.done = page.Done
		l.loaded += len(page.Items)

		return page.Items, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]T), nil
	}
}

func (l *Loader[T]) Done() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

// Loaded is the number of items handed out so far.
func (l *Loader[T]) Loaded() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}
