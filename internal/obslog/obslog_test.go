package obslog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "minichess.log")
	logger, err := New(Options{Level: "debug", Format: "json", ToFile: true, FilePath: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("minichess_test_event")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(raw), `"msg":"minichess_test_event"`) {
		t.Fatalf("log file missing event: %s", raw)
	}
}

func TestNewWithoutSinksIsNop(t *testing.T) {
	logger, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.Core().Enabled(parseLevel("error")) {
		t.Fatalf("expected nop logger when no sinks are enabled")
	}
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_TO_FILE", "TRUE")
	t.Setenv("LOG_FILE", "")
	opts := OptionsFromEnv()
	if opts.Level != "warn" || opts.Format != "json" || !opts.ToFile {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.FilePath != filepath.Join("logs", "minichess.log") {
		t.Fatalf("default file path = %q", opts.FilePath)
	}
	if parseLevel("bogus").String() != "info" {
		t.Fatalf("unknown level should fall back to info")
	}
}
