package evo_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/evotools-io/evo-client/pkg/evo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID string
}

// pageServer simulates an offset/limit endpoint holding `total` records,
// recording every offset requested.
type pageServer struct {
	total   int
	offsets []int
	calls   int

	// reportedTotal lets tests lie about the total after the first page.
	reportedTotal func(call int) int
}

func (s *pageServer) fetch(ctx context.Context, limit, offset int) (*evo.Page[record], error) {
	s.offsets = append(s.offsets, offset)
	s.calls++

	var items []record

	for i := offset; i < s.total && i-offset < limit; i++ {
		items = append(items, record{ID: fmt.Sprintf("r%d", i)})
	}

	total := s.total
	if s.reportedTotal != nil {
		total = s.reportedTotal(s.calls)
	}

	return &evo.Page[record]{
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Items:  items,
	}, nil
}

func TestPager_FullPagesThenShortPage(t *testing.T) {
	t.Parallel()

	server := &pageServer{total: 120}
	pager := evo.NewPager(context.Background(), server.fetch, 50)

	var sizes []int

	for pager.HasNext() {
		batch, err := pager.NextPage()
		require.NoError(t, err)
		sizes = append(sizes, len(batch))
	}

	assert.Equal(t, []int{50, 50, 20}, sizes)
	assert.Equal(t, []int{0, 50, 100}, server.offsets)
}

func TestPager_ConcatenationHasLengthTotal(t *testing.T) {
	t.Parallel()

	for _, total := range []int{1, 49, 50, 51, 99, 100, 250} {
		server := &pageServer{total: total}

		items, err := evo.FetchAll(context.Background(), server.fetch, 50)
		require.NoError(t, err)
		assert.Len(t, items, total)
		assert.Equal(t, "r0", items[0].ID)
		assert.Equal(t, fmt.Sprintf("r%d", total-1), items[total-1].ID)
	}
}

func TestPager_TotalZero(t *testing.T) {
	t.Parallel()

	server := &pageServer{total: 0}
	pager := evo.NewPager(context.Background(), server.fetch, 50)

	assert.False(t, pager.HasNext())
	assert.Equal(t, 1, server.calls)
	assert.Equal(t, []int{0}, server.offsets)

	_, err := pager.NextPage()
	require.ErrorIs(t, err, evo.ErrExhausted)
}

func TestPager_EmptyFirstPageIgnoresReportedTotal(t *testing.T) {
	t.Parallel()

	// The service claims 500 items but returns none: the sequence must yield
	// nothing instead of looping on the bogus total.
	server := &pageServer{
		total:         0,
		reportedTotal: func(int) int { return 500 },
	}

	items, err := evo.FetchAll(context.Background(), server.fetch, 50)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, server.calls)
}

func TestPager_TotalCapturedFromFirstResponseOnly(t *testing.T) {
	t.Parallel()

	// Total shrinks to 0 after the first response; the pager must keep the
	// captured value and still fetch the remaining pages.
	server := &pageServer{
		total: 100,
		reportedTotal: func(call int) int {
			if call == 1 {
				return 100
			}

			return 0
		},
	}

	items, err := evo.FetchAll(context.Background(), server.fetch, 50)
	require.NoError(t, err)
	assert.Len(t, items, 100)
	assert.Equal(t, []int{0, 50}, server.offsets)
}

func TestPager_OffsetAdvancesByItemsReturned(t *testing.T) {
	t.Parallel()

	// A server that short-pays every page: 3 items per request regardless of
	// the limit. Offsets must track items actually received, not limit.
	calls := 0
	fetch := func(ctx context.Context, limit, offset int) (*evo.Page[record], error) {
		calls++

		items := []record{{"a"}, {"b"}, {"c"}}
		if offset >= 9 {
			items = nil
		}

		return &evo.Page[record]{Total: 9, Limit: limit, Offset: offset, Items: items}, nil
	}

	pager := evo.NewPager(context.Background(), fetch, 50)

	received := 0

	for pager.HasNext() {
		assert.Equal(t, received, pager.Offset())

		batch, err := pager.NextPage()
		require.NoError(t, err)
		received += len(batch)
	}

	assert.Equal(t, 9, received)
	assert.Equal(t, 3, calls)
}

func TestPager_ErrorPropagatesUnmodified(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("boom")
	calls := 0
	fetch := func(ctx context.Context, limit, offset int) (*evo.Page[record], error) {
		calls++
		if calls == 2 {
			return nil, fetchErr
		}

		return &evo.Page[record]{Total: 100, Items: []record{{"a"}}}, nil
	}

	pager := evo.NewPager(context.Background(), fetch, 50)

	batch, err := pager.NextPage()
	require.NoError(t, err)
	assert.Len(t, batch, 1)

	_, err = pager.NextPage()
	require.Error(t, err)
	assert.Same(t, fetchErr, err)

	// The failure ends the sequence.
	assert.False(t, pager.HasNext())
}

func TestPager_NilPage(t *testing.T) {
	t.Parallel()

	fetch := func(ctx context.Context, limit, offset int) (*evo.Page[record], error) {
		return nil, nil
	}

	pager := evo.NewPager(context.Background(), fetch, 50)

	_, err := pager.NextPage()
	require.ErrorIs(t, err, evo.ErrNilPage)
}

func TestPager_DefaultPageSize(t *testing.T) {
	t.Parallel()

	var limits []int

	fetch := func(ctx context.Context, limit, offset int) (*evo.Page[record], error) {
		limits = append(limits, limit)

		return &evo.Page[record]{Total: 0}, nil
	}

	_, err := evo.FetchAll(context.Background(), fetch, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{evo.DefaultPageSize}, limits)
}

func TestPager_TotalObservable(t *testing.T) {
	t.Parallel()

	server := &pageServer{total: 7}
	pager := evo.NewPager(context.Background(), server.fetch, 50)

	_, seen := pager.Total()
	assert.False(t, seen)

	items, err := pager.All()
	require.NoError(t, err)
	assert.Len(t, items, 7)

	total, seen := pager.Total()
	assert.True(t, seen)
	assert.Equal(t, 7, total)
}
