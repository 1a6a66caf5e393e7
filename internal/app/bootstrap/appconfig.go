// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// Values come from HOTELHUB_* environment variables, config files, or
// command-line flags (see LoadConfig). Framework settings such as ports,
// TLS and log level live in WAFFLE's CoreConfig.
type AppConfig struct {
	// Hotel REST backend
	BackendURL     string        // origin of the hotel API (e.g., http://localhost:8080)
	BackendTimeout time.Duration // cap on one backend round trip

	// Listing
	PageSize      int // rows per list page
	ExportMaxRows int // row cap for spreadsheet and CSV exports

	// MongoDB holds the activity log only
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session cookie
	SessionKey    string // signing key for the cookie store
	SessionName   string
	SessionDomain string // blank means current host

	// Audit logging destinations: all, db, log, off
	AuditLogAuth   string
	AuditLogChange string

	// Login throttling in "<limit>-<period>" form, e.g. 10-M
	LoginRate     string
	LoginUserRate string

	// Proxy addresses/CIDRs whose X-Forwarded-For and X-Real-IP are believed.
	TrustedProxies string

	SiteName string
}
