// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/system/clientip"
	"github.com/dalemusser/hotelhub/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// devSessionKey is the default signing key. ValidateConfig refuses it in prod.
const devSessionKey = "dev-only-change-me-please-0123456789ABCDEF"

// appConfigKeys defines the configuration keys for HotelHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: backend_url, mongo_uri, etc.
//   - Environment variables: HOTELHUB_BACKEND_URL, HOTELHUB_MONGO_URI, etc.
//   - Command-line flags: --backend_url, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "backend_url", Default: "http://localhost:8080", Desc: "Hotel REST backend origin"},
	{Name: "backend_timeout", Default: "10s", Desc: "Timeout for one backend request (e.g., 10s, 1m)"},

	{Name: "page_size", Default: 10, Desc: "Rows per list page"},
	{Name: "export_max_rows", Default: 5000, Desc: "Maximum rows in an export"},

	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI (activity log)"},
	{Name: "mongo_database", Default: "hotel_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 50, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 5, Desc: "MongoDB min connection pool size"},

	{Name: "session_key", Default: devSessionKey, Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "hotelhub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Audit logging settings
	{Name: "audit_log_auth", Default: "all", Desc: "Auth event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_change", Default: "all", Desc: "Change event logging: 'all' (db+log), 'db', 'log', or 'off'"},

	{Name: "login_rate", Default: ratelimit.DefaultIPRate, Desc: "Login attempts per client IP (e.g., 10-M)"},
	{Name: "login_user_rate", Default: ratelimit.DefaultUserRate, Desc: "Login attempts per username (e.g., 5-M)"},
	{Name: "trusted_proxies", Default: "", Desc: "Comma-separated proxy IPs/CIDRs allowed to set X-Forwarded-For (blank trusts none)"},

	{Name: "site_name", Default: "HotelHub", Desc: "Name shown in the page header"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges flags > env > files > defaults,
// reading WAFFLE_* for core settings and HOTELHUB_* for the keys above.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "HOTELHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		BackendURL:     strings.TrimSpace(appValues.String("backend_url")),
		BackendTimeout: appValues.Duration("backend_timeout", backend.DefaultTimeout),

		PageSize:      appValues.Int("page_size"),
		ExportMaxRows: appValues.Int("export_max_rows"),

		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		AuditLogAuth:   appValues.String("audit_log_auth"),
		AuditLogChange: appValues.String("audit_log_change"),

		LoginRate:     appValues.String("login_rate"),
		LoginUserRate: appValues.String("login_user_rate"),

		TrustedProxies: appValues.String("trusted_proxies"),

		SiteName: appValues.String("site_name"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// It catches a bad Mongo URI, backend URL or login rate before anything
// connects, and refuses the development session key in production.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if err := validateBackendURL(appCfg.BackendURL); err != nil {
		logger.Error("invalid backend URL", zap.String("backend_url", appCfg.BackendURL), zap.Error(err))
		return err
	}
	if err := validateApp(appCfg); err != nil {
		return err
	}
	if coreCfg != nil && coreCfg.Env == "prod" {
		if appCfg.SessionKey == "" || appCfg.SessionKey == devSessionKey {
			return errors.New("session_key must be set to a strong value in production")
		}
	}
	return nil
}

func validateBackendURL(raw string) error {
	if raw == "" {
		return errors.New("backend_url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("backend_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend_url %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("backend_url %q has no host", raw)
	}
	return nil
}

// validateApp checks the values the handlers and limiter depend on.
func validateApp(appCfg AppConfig) error {
	if appCfg.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", appCfg.PageSize)
	}
	if appCfg.ExportMaxRows < 1 {
		return fmt.Errorf("export_max_rows must be at least 1, got %d", appCfg.ExportMaxRows)
	}
	if appCfg.BackendTimeout <= 0 || appCfg.BackendTimeout > 5*time.Minute {
		return fmt.Errorf("backend_timeout %s out of range", appCfg.BackendTimeout)
	}
	if err := ratelimit.ValidateRate(appCfg.LoginRate); err != nil {
		return fmt.Errorf("login_rate: %w", err)
	}
	if err := ratelimit.ValidateRate(appCfg.LoginUserRate); err != nil {
		return fmt.Errorf("login_user_rate: %w", err)
	}
	if _, err := clientip.Parse(appCfg.TrustedProxies); err != nil {
		return fmt.Errorf("trusted_proxies: %w", err)
	}
	return nil
}
