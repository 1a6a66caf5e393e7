// internal/app/features/activity/handler.go
package activity

import (
	"context"

	uierrors "github.com/dalemusser/hotelhub/internal/app/features/errors"
	"github.com/dalemusser/hotelhub/internal/app/store/audit"
	"github.com/dalemusser/hotelhub/internal/app/system/paging"
	"go.uber.org/zap"
)

// Events is the read side of the activity log. *audit.Store satisfies it.
type Events interface {
	Query(ctx context.Context, filter audit.QueryFilter) ([]audit.Event, error)
	CountByFilter(ctx context.Context, filter audit.QueryFilter) (int64, error)
}

// Handler owns the activity log pages.
type Handler struct {
	Events   Events
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
	PageSize int
	// ExportMaxRows caps the CSV export.
	ExportMaxRows int
}

// NewHandler creates a new activity Handler.
func NewHandler(events Events, errLog *uierrors.ErrorLogger, pageSize, exportMax int, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if errLog == nil {
		errLog = uierrors.NewErrorLogger(logger)
	}
	if pageSize < 1 {
		pageSize = paging.DefaultSize
	}
	if exportMax < 1 {
		exportMax = 5000
	}
	return &Handler{
		Events:        events,
		ErrLog:        errLog,
		Log:           logger,
		PageSize:      pageSize,
		ExportMaxRows: exportMax,
	}
}
