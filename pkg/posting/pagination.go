package posting

// Fixed page sizes per listing endpoint.
const (
	ItemsPageSize   int64 = 18
	ListingPageSize int64 = 12
)

// Page holds the skip/limit window for a mongo find. Limit 0 means no
// pagination was requested and the full result set is returned.
type Page struct {
	Skip       int64
	Limit      int64
	TotalPages int64
}

// Paginate computes the find window for a requested page number.
// pageNo <= 0 disables pagination but still reports TotalPages so
// clients can render pagers. There is no upper clamp on pageNo: a page
// past the last one yields an empty result set, not an error.
func Paginate(totalCount, pageSize, pageNo int64) Page {
	page := Page{
		TotalPages: (totalCount + pageSize - 1) / pageSize,
	}

	if pageNo <= 0 {
		return page
	}

	page.Skip = pageSize * (pageNo - 1)
	page.Limit = pageSize
	return page
}

// Paginated reports whether the page actually limits the result set.
func (p Page) Paginated() bool {
	return p.Limit > 0
}
