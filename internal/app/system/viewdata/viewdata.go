package viewdata

import (
	"net/http"
	"sync"
	"time"

	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/format"
	"github.com/dalemusser/hotelhub/internal/app/system/navigation"
	"github.com/dalemusser/hotelhub/internal/app/system/notify"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// DefaultSiteName is shown when no site_name is configured.
const DefaultSiteName = "HotelHub"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(w, r, "Page Title", "/default-back"),
//	}
type BaseVM struct {
	SiteName string

	// User context (from auth middleware)
	IsLoggedIn     bool
	Role           string
	UserName       string
	SessionExpires string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
	Nav         []navigation.Section

	// One-shot toasts queued by the previous request.
	Notices []notify.Notice

	// Inline form error, shown above the form rather than as a toast.
	Error string
}

// SetError sets the inline form error.
func (b *BaseVM) SetError(msg string) { b.Error = msg }

// AddNotice appends a toast for the page being rendered now.
func (b *BaseVM) AddNotice(level notify.Level, msg string) {
	b.Notices = append(b.Notices, notify.Notice{Level: level, Message: msg})
}

var (
	mu       sync.RWMutex
	siteName = DefaultSiteName
	notifier *notify.Notifier
)

// Init sets the site name and the notifier whose queued notices every page
// shows. Call this once at startup from bootstrap.
func Init(name string, n *notify.Notifier) {
	mu.Lock()
	defer mu.Unlock()
	if name != "" {
		siteName = name
	}
	notifier = n
}

// NewBaseVM creates a fully populated BaseVM for a page, popping any queued
// notices. w is needed because popping rewrites the session cookie.
func NewBaseVM(w http.ResponseWriter, r *http.Request, title, backDefault string) BaseVM {
	mu.RLock()
	name, n := siteName, notifier
	mu.RUnlock()

	vm := BaseVM{
		SiteName:    name,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}
	if u, ok := auth.CurrentUser(r); ok {
		vm.IsLoggedIn = true
		vm.UserName = u.Name
		vm.Role = u.Role
		if !u.ExpiresAt.IsZero() {
			vm.SessionExpires = format.DateTime(u.ExpiresAt.Format(time.RFC3339))
		}
		vm.Nav = navigation.Menu(vm.CurrentPath)
	}
	if n != nil && w != nil {
		vm.Notices = n.Pop(w, r)
	}
	return vm
}

// SiteName returns the configured site name.
func SiteName() string {
	mu.RLock()
	defer mu.RUnlock()
	return siteName
}
