package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigure_IgnoresZero(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{List: 3 * time.Second})
	if List() != 3*time.Second {
		t.Errorf("List() = %v, want 3s", List())
	}
	if Read() != DefaultRead {
		t.Errorf("Read() = %v, want default", Read())
	}

	Reset()
	if List() != DefaultList {
		t.Errorf("after Reset List() = %v", List())
	}
}

func TestFromBackendTimeout(t *testing.T) {
	cfg := FromBackendTimeout(4 * time.Second)
	if cfg.Read != 2*time.Second || cfg.List != 4*time.Second || cfg.Export != 24*time.Second {
		t.Errorf("FromBackendTimeout(4s) = %+v", cfg)
	}
	if FromBackendTimeout(0) != (Config{}) {
		t.Error("zero duration should produce an empty Config")
	}
}

func TestWithTimeout_LogsDeadline(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, zap.New(core), "list folios")
	<-ctx.Done()
	cancel()

	if logs.Len() != 1 {
		t.Fatalf("got %d log entries, want 1", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["operation"]; got != "list folios" {
		t.Errorf("operation = %v", got)
	}
}

func TestWithTimeout_QuietOnCancel(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	_, cancel := WithTimeout(context.Background(), time.Hour, zap.New(core), "get folio")
	cancel()
	if logs.Len() != 0 {
		t.Errorf("got %d log entries, want 0", logs.Len())
	}
}
