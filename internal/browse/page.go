package browse

import "github.com/NuttharikaTht/comic-square-8-circle-search/internal/domain"

// PageSize is the fixed number of booths shown per page.
const PageSize = 10

// Page is one slice of a filtered result.
type Page struct {
	// Items holds at most PageSize booths. Empty when Number is out of range.
	Items []domain.Booth
	// Number is the 1-based page index that was requested.
	Number int
	// TotalPages is ceil(Total / PageSize); zero for an empty result.
	TotalPages int
	// Total is the length of the filtered result.
	Total int
}

// HasPrev reports whether a previous page can be navigated to.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page can be navigated to.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// TotalPages returns ceil(n / PageSize).
func TotalPages(n int) int {
	return (n + PageSize - 1) / PageSize
}

// Paginate returns records[(page-1)*PageSize : page*PageSize], clipped to len(records).
// Pages outside 1..TotalPages yield no items.
func Paginate(records []domain.Booth, page int) Page {
	p := Page{
		Items:      []domain.Booth{},
		Number:     page,
		TotalPages: TotalPages(len(records)),
		Total:      len(records),
	}
	if page < 1 {
		return p
	}
	start := (page - 1) * PageSize
	if start >= len(records) {
		return p
	}
	end := min(start+PageSize, len(records))
	p.Items = records[start:end]
	return p
}
