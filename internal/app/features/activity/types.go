// internal/app/features/activity/types.go
package activity

import (
	"github.com/dalemusser/hotelhub/internal/app/store/audit"
	"github.com/dalemusser/hotelhub/internal/app/system/paging"
	"github.com/dalemusser/hotelhub/internal/app/system/viewdata"
)

const basePath = "/activity"

// Filter keys understood by the list and the export.
const (
	filterResource = "resource"
	filterAction   = "action"
	filterActor    = "actor"
	filterFrom     = "from"
	filterTo       = "to"
)

var filterKeys = []string{filterResource, filterAction, filterActor, filterFrom, filterTo}

// actions are the event types in the order the filter lists them.
var actions = []struct {
	Value string
	Label string
}{
	{audit.EventRecordCreated, "Created"},
	{audit.EventRecordUpdated, "Updated"},
	{audit.EventRecordPatched, "Patched"},
	{audit.EventStatusChanged, "Status changed"},
	{audit.EventWriteRejected, "Write rejected"},
	{audit.EventLoginSuccess, "Signed in"},
	{audit.EventLoginFailed, "Sign-in failed"},
	{audit.EventLoginFailedRateLimit, "Sign-in throttled"},
	{audit.EventLogout, "Signed out"},
	{audit.EventSessionExpired, "Session expired"},
}

func actionLabel(eventType string) string {
	for _, a := range actions {
		if a.Value == eventType {
			return a.Label
		}
	}
	return eventType
}

// option is a select-box entry.
type option struct {
	Value    string
	Label    string
	Selected bool
}

// eventRow is one line of the activity table.
type eventRow struct {
	When       string
	Actor      string
	Action     string
	Resource   string
	RecordHref string
	RecordID   int64
	Success    bool
	Reason     string
	Details    string
}

// listData is the view model for /activity.
type listData struct {
	viewdata.BaseVM

	Resources []option
	Actions   []option
	Actor     string
	From      string
	To        string
	Size      int

	HasFilters bool
	ResetHref  string
	ExportHref string

	Rows  []eventRow
	Pager paging.Pager
}
