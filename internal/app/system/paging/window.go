// internal/app/system/paging/window.go
package paging

import "strconv"

// WindowSize is the maximum number of consecutive page numbers shown.
const WindowSize = 5

// Kind tells a template how to draw a pagination Item.
type Kind int

const (
	KindPage     Kind = iota // a page inside the sliding window
	KindFirst                // the page-1 anchor shown before a window that starts later
	KindLast                 // the last-page anchor shown after a window that ends early
	KindEllipsis             // a gap marker
)

// Item is one entry of the pagination bar.
type Item struct {
	Kind    Kind
	Page    int
	Current bool
}

// IsEllipsis is a template helper.
func (it Item) IsEllipsis() bool { return it.Kind == KindEllipsis }

// Window computes the pagination bar for the given page.
//
// At most WindowSize pages are shown, centred on current where possible and
// clamped to [1,total]. If the window starts after page 1 the bar opens with
// a page-1 anchor, followed by an ellipsis when pages are skipped; the tail is
// symmetric. current is clamped to [1,total] and total<1 is treated as 1.
func Window(current, total int) []Item {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	start := current - WindowSize/2
	if start < 1 {
		start = 1
	}
	end := start + WindowSize - 1
	if end > total {
		end = total
		start = end - WindowSize + 1
		if start < 1 {
			start = 1
		}
	}

	items := make([]Item, 0, WindowSize+4)
	if start > 1 {
		items = append(items, Item{Kind: KindFirst, Page: 1})
		if start > 2 {
			items = append(items, Item{Kind: KindEllipsis})
		}
	}
	for p := start; p <= end; p++ {
		items = append(items, Item{Kind: KindPage, Page: p, Current: p == current})
	}
	if end < total {
		if end < total-1 {
			items = append(items, Item{Kind: KindEllipsis})
		}
		items = append(items, Item{Kind: KindLast, Page: total})
	}
	return items
}

// Link is an Item with its href resolved.
type Link struct {
	Item
	Label string
	Href  string
}

// Links resolves each Window item to an href under basePath that keeps the
// query's filters and size.
func Links(q Query, basePath string, totalPages int) []Link {
	items := Window(q.Page, totalPages)
	out := make([]Link, 0, len(items))
	for _, it := range items {
		l := Link{Item: it}
		if it.Kind == KindEllipsis {
			l.Label = "…"
		} else {
			l.Label = strconv.Itoa(it.Page)
			l.Href = q.WithPage(it.Page).Href(basePath)
		}
		out = append(out, l)
	}
	return out
}

// Range holds display values for "Showing X–Y of Z".
type Range struct {
	Start int // 1-based index of the first row (0 when empty)
	End   int // 1-based index of the last row (0 when empty)
	Total int
}

// ComputeRange calculates the display range for a page that returned shown
// rows out of total.
func ComputeRange(q Query, shown, total int) Range {
	if shown == 0 {
		return Range{Total: total}
	}
	start := q.Offset() + 1
	return Range{Start: start, End: start + shown - 1, Total: total}
}

// Pager is everything a list template needs to draw its pagination bar.
type Pager struct {
	Page       int
	TotalPages int
	Range      Range
	Links      []Link
	PrevHref   string
	NextHref   string
}

// NewPager builds a Pager for a fetched page.
func NewPager(q Query, basePath string, totalPages, totalElements, shown int) Pager {
	if totalPages < 1 {
		totalPages = 1
	}
	p := Pager{
		Page:       q.Page,
		TotalPages: totalPages,
		Range:      ComputeRange(q, shown, totalElements),
		Links:      Links(q, basePath, totalPages),
	}
	if q.Page > 1 {
		prev := q.Page - 1
		if prev > totalPages {
			prev = totalPages
		}
		p.PrevHref = q.WithPage(prev).Href(basePath)
	}
	if q.Page < totalPages {
		p.NextHref = q.WithPage(q.Page + 1).Href(basePath)
	}
	return p
}
