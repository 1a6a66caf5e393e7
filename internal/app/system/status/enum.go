package status

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Enum is a fixed, ordered set of allowed values for a status field.
type Enum struct {
	Name   string
	values []string
	set    map[string]struct{}
}

// NewEnum builds an Enum. Values are kept in the order given.
func NewEnum(name string, values ...string) Enum {
	e := Enum{Name: name, values: make([]string, 0, len(values)), set: make(map[string]struct{}, len(values))}
	for _, v := range values {
		v = normalize(v)
		if _, dup := e.set[v]; dup || v == "" {
			continue
		}
		e.values = append(e.values, v)
		e.set[v] = struct{}{}
	}
	return e
}

// Contains reports whether v (case-insensitive) is a member of the set.
func (e Enum) Contains(v string) bool {
	_, ok := e.set[normalize(v)]
	return ok
}

// Values returns a copy of the allowed values in declaration order.
func (e Enum) Values() []string {
	out := make([]string, len(e.values))
	copy(out, e.values)
	return out
}

// Canonical returns the stored spelling of v and whether it is a member.
func (e Enum) Canonical(v string) (string, bool) {
	n := normalize(v)
	_, ok := e.set[n]
	return n, ok
}

// Option is a select-box entry for an enum value.
type Option struct {
	Value    string
	Label    string
	Class    string
	Selected bool
}

// Options returns select options with current marked as selected.
func (e Enum) Options(current string) []Option {
	cur := normalize(current)
	out := make([]Option, 0, len(e.values))
	for _, v := range e.values {
		out = append(out, Option{Value: v, Label: Label(v), Class: BadgeClass(v), Selected: v == cur})
	}
	return out
}

// Names of the registered enum sets.
const (
	FolioStatus                = "folio"
	SalaryStatus               = "salary"
	HousekeepingRequestStatus  = "housekeeping_request"
	HousekeepingScheduleStatus = "housekeeping_schedule"
	ServiceRequestStatus       = "service_request"
	ScheduleStatus             = "schedule"
	AssetStatus                = "asset"
	AuditReportStatus          = "audit_report"
	FeedbackStatus             = "feedback"
	ServiceStatus              = "service"
	ShiftName                  = "shift"
)

var (
	mu       sync.RWMutex
	registry = map[string]Enum{}
)

func init() {
	Register(NewEnum(FolioStatus, "PAID", "PENDING", "UNPAID"))
	Register(NewEnum(SalaryStatus, "PAID", "PENDING"))
	Register(NewEnum(HousekeepingRequestStatus, "PENDING", "ASSIGNED", "IN_PROGRESS", "COMPLETED", "CANCELLED"))
	Register(NewEnum(HousekeepingScheduleStatus, "SCHEDULED", "IN_PROGRESS", "COMPLETED", "CANCELLED"))
	Register(NewEnum(ServiceRequestStatus, "PENDING", "ASSIGNED", "IN_PROGRESS", "COMPLETED", "CANCELLED"))
	Register(NewEnum(ScheduleStatus, "SCHEDULED", "COMPLETED", "CANCELLED"))
	Register(NewEnum(AssetStatus, "ACTIVE", "IN_MAINTENANCE", "RETIRED"))
	Register(NewEnum(AuditReportStatus, "DRAFT", "SUBMITTED", "APPROVED", "REJECTED"))
	Register(NewEnum(FeedbackStatus, "NEW", "REVIEWED", "RESOLVED"))
	Register(NewEnum(ServiceStatus, "ACTIVE", "INACTIVE"))
	Register(NewEnum(ShiftName, "MORNING", "AFTERNOON", "NIGHT"))
}

// Register adds or replaces a named enum set.
func Register(e Enum) {
	mu.Lock()
	defer mu.Unlock()
	registry[e.Name] = e
}

// Lookup returns the enum registered under name.
func Lookup(name string) (Enum, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := registry[strings.TrimSpace(name)]
	return e, ok
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) Enum {
	e, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("status: unknown enum %q", name))
	}
	return e
}

// Names lists registered enum names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
