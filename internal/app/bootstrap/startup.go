// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/hotelhub/internal/app/resources"
	"github.com/dalemusser/hotelhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after the DB is ready and before the handler is built.
// It scales the per-operation timeouts to the backend timeout and registers
// the shared templates.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.FromBackendTimeout(appCfg.BackendTimeout))
	logger.Info("timeouts configured", zap.Duration("backend_timeout", appCfg.BackendTimeout))
	resources.LoadSharedTemplates()
	return nil
}
