// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	activityfeature "github.com/dalemusser/hotelhub/internal/app/features/activity"
	"github.com/dalemusser/hotelhub/internal/app/features/assets"
	"github.com/dalemusser/hotelhub/internal/app/features/auditreports"
	"github.com/dalemusser/hotelhub/internal/app/features/crud"
	"github.com/dalemusser/hotelhub/internal/app/features/customers"
	dashboardfeature "github.com/dalemusser/hotelhub/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/hotelhub/internal/app/features/errors"
	"github.com/dalemusser/hotelhub/internal/app/features/feedback"
	"github.com/dalemusser/hotelhub/internal/app/features/folios"
	"github.com/dalemusser/hotelhub/internal/app/features/guests"
	healthfeature "github.com/dalemusser/hotelhub/internal/app/features/health"
	"github.com/dalemusser/hotelhub/internal/app/features/housekeepingrequests"
	"github.com/dalemusser/hotelhub/internal/app/features/housekeepingschedules"
	loginfeature "github.com/dalemusser/hotelhub/internal/app/features/login"
	logoutfeature "github.com/dalemusser/hotelhub/internal/app/features/logout"
	"github.com/dalemusser/hotelhub/internal/app/features/loyaltylevels"
	"github.com/dalemusser/hotelhub/internal/app/features/salaries"
	"github.com/dalemusser/hotelhub/internal/app/features/schedules"
	"github.com/dalemusser/hotelhub/internal/app/features/servicerequests"
	"github.com/dalemusser/hotelhub/internal/app/features/services"
	auditstore "github.com/dalemusser/hotelhub/internal/app/store/audit"
	"github.com/dalemusser/hotelhub/internal/app/system/auditlog"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/clientip"
	"github.com/dalemusser/hotelhub/internal/app/system/notify"
	"github.com/dalemusser/hotelhub/internal/app/system/ratelimit"
	"github.com/dalemusser/hotelhub/internal/app/system/requestid"
	"github.com/dalemusser/hotelhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// resourceMount ties a URL segment to the feature serving it. Keys match
// navigation.Keys.
type resourceMount struct {
	key    string
	routes func(*backend.Client, crud.Deps, *auth.SessionManager) chi.Router
}

var resourceMounts = []resourceMount{
	{"guests", guests.Routes},
	{"customers", customers.Routes},
	{"folios", folios.Routes},
	{"feedback", feedback.Routes},
	{"loyalty-levels", loyaltylevels.Routes},
	{"housekeeping-requests", housekeepingrequests.Routes},
	{"housekeeping-schedules", housekeepingschedules.Routes},
	{"services", services.Routes},
	{"service-requests", servicerequests.Routes},
	{"schedules", schedules.Routes},
	{"salaries", salaries.Routes},
	{"assets", assets.Routes},
	{"audit-reports", auditreports.Routes},
}

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, the DB connection, schema setup
// and Startup have completed. HotelHub boots the template engine, installs
// the request-id and session middleware, and mounts the public pages
// (health, metrics, static, login, logout) beside the signed-in ones
// (dashboard, activity and every hotel resource).
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	notifier := notify.New(sessionMgr, logger)
	viewdata.Init(appCfg.SiteName, notifier)

	errLog := errorsfeature.NewErrorLogger(logger)
	client := backend.New(appCfg.BackendURL, appCfg.BackendTimeout, logger)
	logger.Info("hotel backend configured",
		zap.String("backend_url", client.BaseURL()),
		zap.Duration("timeout", appCfg.BackendTimeout))

	var store *auditstore.Store
	if deps.MongoDatabase != nil {
		store = auditstore.New(deps.MongoDatabase)
	}
	clients, err := clientip.Parse(appCfg.TrustedProxies)
	if err != nil {
		return nil, err
	}
	auditLog := auditlog.New(recorder(store), logger, auditlog.Config{
		Auth:    appCfg.AuditLogAuth,
		Change:  appCfg.AuditLogChange,
		Clients: clients,
	})

	limiter, err := ratelimit.NewLoginLimiter(appCfg.LoginRate, appCfg.LoginUserRate, clients)
	if err != nil {
		logger.Error("login limiter init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	// Loads the signed-in operator so handlers can read auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Set before any Mount so subrouters inherit it.
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, client, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	r.Handle("/metrics", promhttp.Handler())

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Authentication
	loginHandler := loginfeature.NewHandler(client, sessionMgr, errLog, auditLog, limiter, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, auditLog, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Error pages
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	dashboardHandler := dashboardfeature.NewHandler(client, sessionMgr, logger)
	r.Mount("/", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	if store != nil {
		activityHandler := activityfeature.NewHandler(store, errLog, appCfg.PageSize, appCfg.ExportMaxRows, logger)
		r.Mount("/activity", activityfeature.Routes(activityHandler, sessionMgr))
	}

	mountResources(r, client, crud.Deps{
		ErrLog:        errLog,
		Audit:         auditLog,
		Notify:        notifier,
		Sessions:      sessionMgr,
		History:       history(store),
		Log:           logger,
		PageSize:      appCfg.PageSize,
		ExportMaxRows: appCfg.ExportMaxRows,
	}, sessionMgr)

	return r, nil
}

// mountResources mounts every hotel resource under "/"+key.
func mountResources(r chi.Router, client *backend.Client, deps crud.Deps, sm *auth.SessionManager) {
	for _, m := range resourceMounts {
		r.Mount("/"+m.key, m.routes(client, deps, sm))
	}
}

// recorder and history keep a nil *Store from becoming a non-nil interface.
func recorder(s *auditstore.Store) auditlog.Recorder {
	if s == nil {
		return nil
	}
	return s
}

func history(s *auditstore.Store) crud.History {
	if s == nil {
		return nil
	}
	return s
}
