package evo

import (
	"context"
)

// DefaultPageSize is the page size used when none is specified.
const DefaultPageSize = 50

// PageFunc fetches one page of an offset/limit paginated listing. Any fixed
// arguments of the underlying call (scope IDs, filters) are captured by the
// closure and forwarded unchanged on every fetch.
type PageFunc[T any] func(ctx context.Context, limit, offset int) (*Page[T], error)

// Pager drives repeated offset/limit fetches against a paged list endpoint,
// yielding per-page batches until exhaustion. The caller never manages
// offsets: the pager starts at offset 0 and advances by the number of items
// actually returned, so a short final page ends the sequence.
//
// The overall item count is captured from the first response only and is not
// re-read on later pages. Iteration stops when a page comes back empty or the
// accumulated offset reaches that captured total, whichever happens first.
// Errors from the fetch function are returned unmodified; the pager performs
// no retries. A Pager is not restartable and fetches one page at a time:
//
//	pager := evo.NewPager(ctx, client.ListWorkspaces, evo.DefaultPageSize)
//	for pager.HasNext() {
//	  batch, err := pager.NextPage()
//	  if err != nil { return err }
//	  items = append(items, batch...)
//	}
type Pager[T any] struct {
	ctx      context.Context
	fetch    PageFunc[T]
	limit    int
	offset   int
	total    int
	totalSet bool
	done     bool
	buf      []T
	err      error
}

// NewPager creates a pager over fetch with the given page size. A limit of
// zero or less falls back to DefaultPageSize.
func NewPager[T any](ctx context.Context, fetch PageFunc[T], limit int) *Pager[T] {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	return &Pager[T]{
		ctx:   ctx,
		fetch: fetch,
		limit: limit,
	}
}

// HasNext reports whether another batch (or a pending fetch error) is
// available. It may perform the next fetch to find out.
func (p *Pager[T]) HasNext() bool {
	if p.buf != nil || p.err != nil {
		return true
	}

	if p.done {
		return false
	}

	p.advance()

	return p.buf != nil || p.err != nil
}

// NextPage returns the next batch of items in fetch order. Once the sequence
// is exhausted it returns ErrExhausted; a fetch failure is returned exactly
// as the fetch function raised it.
func (p *Pager[T]) NextPage() ([]T, error) {
	if !p.HasNext() {
		return nil, ErrExhausted
	}

	if p.err != nil {
		err := p.err
		p.err = nil
		p.done = true

		return nil, err
	}

	batch := p.buf
	p.buf = nil

	return batch, nil
}

// All drains the pager, flattening every remaining batch into one ordered
// slice. The result is exactly the concatenation of pages in the order
// received.
func (p *Pager[T]) All() ([]T, error) {
	var items []T

	for p.HasNext() {
		batch, err := p.NextPage()
		if err != nil {
			return nil, err
		}

		items = append(items, batch...)
	}

	return items, nil
}

// Offset returns the next offset the pager would request: the number of
// items received so far.
func (p *Pager[T]) Offset() int {
	return p.offset
}

// Total returns the overall item count captured from the first response and
// whether a response has been seen yet.
func (p *Pager[T]) Total() (int, bool) {
	return p.total, p.totalSet
}

func (p *Pager[T]) advance() {
	page, err := p.fetch(p.ctx, p.limit, p.offset)
	if err != nil {
		p.err = err

		return
	}

	if page == nil {
		p.err = ErrNilPage

		return
	}

	if !p.totalSet {
		p.total = page.Total
		p.totalSet = true
	}

	if len(page.Items) == 0 {
		p.done = true

		return
	}

	p.buf = page.Items
	p.offset += len(page.Items)

	// Guards against a total inconsistent with the pages actually returned:
	// the empty-page check above ends the sequence even if total overshoots.
	if p.offset >= p.total {
		p.done = true
	}
}

// FetchAll paginates fetch to exhaustion and returns all items in fetch
// order.
func FetchAll[T any](ctx context.Context, fetch PageFunc[T], limit int) ([]T, error) {
	return NewPager(ctx, fetch, limit).All()
}
