package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/vanderheijden86/walkthrough/pkg/watcher"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestReloaderStopReleasesGoroutines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  layout: auto\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := NewReloader(path, nil)
	if err != nil {
		t.Fatalf("NewReloader: %v", err)
	}
	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := os.WriteFile(path, []byte("ui:\n  layout: columns\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r.Stop()

	goleak.VerifyNone(t)
}

func TestReloaderPublishesNewConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  layout: auto\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	errs := make(chan error, 4)
	r, err := NewReloader(path, func(err error) { errs <- err },
		watcher.WithForcePoll(true),
		watcher.WithPollInterval(30*time.Millisecond),
		watcher.WithDebounceDuration(20*time.Millisecond),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	defer r.Stop()

	if err := os.WriteFile(path, []byte("ui:\n  layout: stacked\n  animations: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-r.Updates():
		if cfg.UI.Layout != LayoutStacked || cfg.UI.Animations {
			t.Errorf("unexpected reloaded config: %+v", cfg.UI)
		}
	case err := <-errs:
		t.Fatalf("unexpected reload error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestReloaderReportsParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	errs := make(chan error, 4)
	r, err := NewReloader(path, func(err error) { errs <- err },
		watcher.WithForcePoll(true),
		watcher.WithPollInterval(30*time.Millisecond),
		watcher.WithDebounceDuration(20*time.Millisecond),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	defer r.Stop()

	if err := os.WriteFile(path, []byte("ui: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-errs:
		if err == nil {
			t.Error("expected a non-nil error")
		}
	case cfg := <-r.Updates():
		t.Fatalf("broken config should not be published, got %+v", cfg)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for parse error")
	}
}
