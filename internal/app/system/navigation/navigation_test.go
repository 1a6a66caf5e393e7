package navigation

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestSafeBackURL(t *testing.T) {
	opts := ForResource("folios")
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"valid return", "/folios/3?return=" + url.QueryEscape("/folios?status=PAID&page=2"), "/folios?status=PAID&page=2"},
		{"other section", "/folios/3?return=%2Fguests", "/folios"},
		{"edit page excluded", "/folios/3?return=%2Ffolios%2F3%2Fedit", "/folios"},
		{"absolute url rejected", "/folios/3?return=" + url.QueryEscape("https://evil.example/folios"), "/folios"},
		{"protocol relative rejected", "/folios/3?return=" + url.QueryEscape("//evil.example/folios"), "/folios"},
		{"missing", "/folios/3", "/folios"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			if got := SafeBackURL(r, opts); got != tt.want {
				t.Errorf("SafeBackURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSafeBackURL_PreservesParam(t *testing.T) {
	opts := BackURLOptions{Fallback: "/folios", PreserveQueryParam: "status"}
	r := httptest.NewRequest("GET", "/folios/3?status=UNPAID", nil)
	if got := SafeBackURL(r, opts); got != "/folios?status=UNPAID" {
		t.Errorf("SafeBackURL = %q", got)
	}
}

func TestSafeBackURL_FormValue(t *testing.T) {
	r := httptest.NewRequest("POST", "/guests/1/edit", strings.NewReader("return=%2Fguests%3Fpage%3D3"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if got := SafeBackURL(r, ForResource("guests")); got != "/guests?page=3" {
		t.Errorf("SafeBackURL = %q", got)
	}
}

func TestMenu_MarksActive(t *testing.T) {
	var active []string
	for _, s := range Menu("/housekeeping-requests/12/edit") {
		for _, it := range s.Items {
			if it.Active {
				active = append(active, it.Key)
			}
		}
	}
	if len(active) != 1 || active[0] != "housekeeping-requests" {
		t.Errorf("active = %v", active)
	}
	if Label("folios") != "Folios" || Label("nope") != "" {
		t.Error("Label lookup wrong")
	}
	keys := Keys()
	seen := map[string]bool{}
	for _, k := range keys {
		if seen[k] {
			t.Errorf("duplicate key %q", k)
		}
		seen[k] = true
	}
	// 13 backend resources plus the activity log.
	if len(keys) != 14 || !seen["activity"] {
		t.Errorf("Keys() = %v", keys)
	}
}
