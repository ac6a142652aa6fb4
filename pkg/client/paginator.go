package client

import (
	"context"
	"errors"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/api"
	"gitlab.com/ignitionrobotics/billing/checkout/pkg/params"
)

const (
	cursorStartingAfter = "starting_after"
	cursorEndingBefore  = "ending_before"
)

// ErrEmptyCursor is returned when a page reports has_more but its last item
// has no id to continue from.
var ErrEmptyCursor = errors.New("list page has more items but no cursor to continue from")

// ListPaginator walks every page of a list endpoint, following the
// starting_after cursor until Stripe reports has_more=false.
//
//	it := client.NewListPaginator[checkout.Session](c, "/checkout/sessions", query)
//	for it.Next(ctx) {
//		s := it.Current()
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
//
// A ListPaginator is meant to be consumed once by a single goroutine.
type ListPaginator[T api.Object] struct {
	client Client
	path   string
	query  params.Pairs

	page    []T
	idx     int
	current T
	cursor  string
	done    bool
	err     error
}

// NewListPaginator returns a paginator over path. Cursor parameters in query
// are dropped: the paginator sets starting_after itself and never sends
// ending_before.
func NewListPaginator[T api.Object](c Client, path string, query params.Pairs) *ListPaginator[T] {
	return &ListPaginator[T]{
		client: c,
		path:   path,
		query:  query.Without(cursorStartingAfter, cursorEndingBefore),
	}
}

// Next advances to the next item, fetching the next page once the current one
// is exhausted. It returns false when the list ends or a request fails.
func (p *ListPaginator[T]) Next(ctx context.Context) bool {
	for {
		if p.idx < len(p.page) {
			p.current = p.page[p.idx]
			p.idx++
			return true
		}
		if p.err != nil || p.done {
			return false
		}
		p.fetch(ctx)
	}
}

func (p *ListPaginator[T]) fetch(ctx context.Context) {
	query := p.query
	if len(p.cursor) > 0 {
		query = query.With(cursorStartingAfter, p.cursor)
	}

	var page api.List[T]
	if err := p.client.GetQuery(ctx, p.path, query, &page); err != nil {
		p.page, p.idx = nil, 0
		p.err = err
		return
	}
	p.page, p.idx = page.Data, 0

	last, ok := page.Last()
	if !page.HasMore || !ok {
		p.done = true
		return
	}
	p.cursor = last.ObjectID()
	if len(p.cursor) == 0 {
		p.err = ErrEmptyCursor
	}
}

// Current returns the item Next moved to.
func (p *ListPaginator[T]) Current() T { return p.current }

// Err returns the error that stopped the paginator, if any. Items of the page
// that failed to yield a cursor are still returned by Next before it stops.
func (p *ListPaginator[T]) Err() error { return p.err }

// All consumes the paginator and returns every remaining item. On error the
// items read so far are returned along with it.
func (p *ListPaginator[T]) All(ctx context.Context) ([]T, error) {
	var items []T
	for p.Next(ctx) {
		items = append(items, p.Current())
	}
	return items, p.Err()
}
