package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/system/paging"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// runList prints one JSON line per record, then a summary line with the
// page window. page is 1-based.
func runList(ctx context.Context, w io.Writer, res *backend.Resource[record], token string, page, size int, filters map[string]string) error {
	p, err := res.List(ctx, token, backend.PageQuery{Page: page - 1, Size: size, Filters: filters})
	if err != nil {
		return err
	}
	for _, rec := range p.Content {
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, string(b)); err != nil {
			return err
		}
	}
	total := p.TotalPages
	if total < 1 {
		total = 1
	}
	_, err = fmt.Fprintf(w, "page %d of %d, %d records: %s\n", page, total, p.TotalElements, windowLine(page, total))
	return err
}

// windowLine renders the page window, e.g. "1 … 4 5 [6] 7 8 … 20".
func windowLine(current, total int) string {
	items := paging.Window(current, total)
	parts := make([]string, 0, len(items))
	for _, it := range items {
		switch {
		case it.IsEllipsis():
			parts = append(parts, "…")
		case it.Current:
			parts = append(parts, "["+strconv.Itoa(it.Page)+"]")
		default:
			parts = append(parts, strconv.Itoa(it.Page))
		}
	}
	return strings.Join(parts, " ")
}
