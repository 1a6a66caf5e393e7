// Package timeouts holds the per-operation deadlines applied to backend and
// database calls made while serving a request.
//
// Every handler derives its context from r.Context(), so a browser that
// navigates away cancels the in-flight backend call; these values only bound
// how long a live request may wait.
//
//   - Ping: health checks
//   - Read: fetch one record
//   - List: fetch one page of records, activity queries
//   - Write: PUT, PATCH, POST, status changes, login
//   - Export: walking every page of a list for a spreadsheet
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultPing   = 2 * time.Second
	DefaultRead   = 5 * time.Second
	DefaultList   = 10 * time.Second
	DefaultWrite  = 10 * time.Second
	DefaultExport = 60 * time.Second
)

var (
	mu      sync.RWMutex
	current = defaults()
)

// Config holds timeout values. Zero fields keep the current value.
type Config struct {
	Ping   time.Duration
	Read   time.Duration
	List   time.Duration
	Write  time.Duration
	Export time.Duration
}

func defaults() Config {
	return Config{
		Ping:   DefaultPing,
		Read:   DefaultRead,
		List:   DefaultList,
		Write:  DefaultWrite,
		Export: DefaultExport,
	}
}

func get(pick func(Config) time.Duration) time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return pick(current)
}

func Ping() time.Duration   { return get(func(c Config) time.Duration { return c.Ping }) }
func Read() time.Duration   { return get(func(c Config) time.Duration { return c.Read }) }
func List() time.Duration   { return get(func(c Config) time.Duration { return c.List }) }
func Write() time.Duration  { return get(func(c Config) time.Duration { return c.Write }) }
func Export() time.Duration { return get(func(c Config) time.Duration { return c.Export }) }

// Configure overrides timeouts at startup.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	set := func(dst *time.Duration, v time.Duration) {
		if v > 0 {
			*dst = v
		}
	}
	set(&current.Ping, cfg.Ping)
	set(&current.Read, cfg.Read)
	set(&current.List, cfg.List)
	set(&current.Write, cfg.Write)
	set(&current.Export, cfg.Export)
}

// FromBackendTimeout derives the request classes from the single
// backend_timeout setting: reads get half of it, lists and writes get all of
// it, exports get six times it.
func FromBackendTimeout(d time.Duration) Config {
	if d <= 0 {
		return Config{}
	}
	return Config{Read: d / 2, List: d, Write: d, Export: 6 * d}
}

// Reset restores the defaults. Used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = defaults()
}

// Current returns the active configuration for logging.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// WithTimeout wraps context.WithTimeout and logs a warning from the returned
// cancel func when the deadline was what ended the operation.
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
