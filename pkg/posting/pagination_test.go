package posting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateNoPageRequested(t *testing.T) {
	page := Paginate(100, 12, 0)

	assert.Equal(t, int64(0), page.Skip)
	assert.Equal(t, int64(0), page.Limit)
	assert.Equal(t, int64(9), page.TotalPages)
	assert.False(t, page.Paginated())

	// Negative page numbers behave like "no pagination" too.
	assert.Equal(t, page, Paginate(100, 12, -3))
}

func TestPaginateFirstPage(t *testing.T) {
	page := Paginate(100, 12, 1)

	assert.Equal(t, int64(0), page.Skip)
	assert.Equal(t, int64(12), page.Limit)
	assert.Equal(t, int64(9), page.TotalPages)
	assert.True(t, page.Paginated())
}

func TestPaginateFinalPartialPage(t *testing.T) {
	// 100 documents at 12 per page: page 9 holds the final 4.
	page := Paginate(100, 12, 9)

	assert.Equal(t, int64(96), page.Skip)
	assert.Equal(t, int64(12), page.Limit)
	assert.Equal(t, int64(9), page.TotalPages)
}

func TestPaginatePastTheEnd(t *testing.T) {
	// No upper clamp: the window is empty but TotalPages still
	// reflects the true count and no error is raised.
	page := Paginate(100, 12, 10)

	assert.Equal(t, int64(108), page.Skip)
	assert.Equal(t, int64(12), page.Limit)
	assert.Equal(t, int64(9), page.TotalPages)
}

func TestPaginateItemsPageSize(t *testing.T) {
	// 25 items at the items page size of 18: page 2 holds 7.
	page := Paginate(25, ItemsPageSize, 2)

	assert.Equal(t, int64(18), page.Skip)
	assert.Equal(t, int64(18), page.Limit)
	assert.Equal(t, int64(2), page.TotalPages)
}

func TestPaginateEmptyCollection(t *testing.T) {
	page := Paginate(0, ListingPageSize, 1)

	assert.Equal(t, int64(0), page.Skip)
	assert.Equal(t, int64(12), page.Limit)
	assert.Equal(t, int64(0), page.TotalPages)
}
