package navigation

import "strings"

// Item is one sidebar link.
type Item struct {
	Key    string
	Label  string
	Href   string
	Active bool
}

// Section groups sidebar links under a heading.
type Section struct {
	Title string
	Items []Item
}

// menu is the sidebar in display order. Keys match the URL segment each
// feature is mounted under.
var menu = []Section{
	{Title: "Front office", Items: []Item{
		{Key: "guests", Label: "Guests"},
		{Key: "customers", Label: "Customers"},
		{Key: "folios", Label: "Folios"},
		{Key: "feedback", Label: "Feedback"},
		{Key: "loyalty-levels", Label: "Loyalty levels"},
	}},
	{Title: "Operations", Items: []Item{
		{Key: "housekeeping-requests", Label: "Housekeeping requests"},
		{Key: "housekeeping-schedules", Label: "Housekeeping schedules"},
		{Key: "services", Label: "Services"},
		{Key: "service-requests", Label: "Service requests"},
	}},
	{Title: "Staff", Items: []Item{
		{Key: "schedules", Label: "Schedules"},
		{Key: "salaries", Label: "Salaries"},
	}},
	{Title: "Property", Items: []Item{
		{Key: "assets", Label: "Assets"},
		{Key: "audit-reports", Label: "Audit reports"},
	}},
	{Title: "System", Items: []Item{
		{Key: "activity", Label: "Activity"},
	}},
}

// Menu returns the sidebar with the entry owning currentPath marked active.
func Menu(currentPath string) []Section {
	out := make([]Section, len(menu))
	for i, s := range menu {
		items := make([]Item, len(s.Items))
		for j, it := range s.Items {
			it.Href = "/" + it.Key
			it.Active = currentPath == it.Href || strings.HasPrefix(currentPath, it.Href+"/")
			items[j] = it
		}
		out[i] = Section{Title: s.Title, Items: items}
	}
	return out
}

// Label returns the sidebar label for key, or "" if key is not in the menu.
func Label(key string) string {
	for _, s := range menu {
		for _, it := range s.Items {
			if it.Key == key {
				return it.Label
			}
		}
	}
	return ""
}

// Keys lists every menu key in display order.
func Keys() []string {
	var out []string
	for _, s := range menu {
		for _, it := range s.Items {
			out = append(out, it.Key)
		}
	}
	return out
}
