package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/vanderheijden86/walkthrough/pkg/catalog"
	"github.com/vanderheijden86/walkthrough/pkg/export"
	"github.com/vanderheijden86/walkthrough/pkg/version"
)

// runCmd executes the CLI with args and an isolated config directory.
func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestStepsJSON(t *testing.T) {
	out, _, err := runCmd(t, "steps", "--json")
	if err != nil {
		t.Fatalf("steps --json: %v", err)
	}
	var doc export.CatalogDocument
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(doc.Steps) != 6 {
		t.Fatalf("steps = %d, want 6", len(doc.Steps))
	}
	if doc.Steps[2].Interface != catalog.Backend {
		t.Errorf("step 3 interface = %v, want backend", doc.Steps[2].Interface)
	}
}

func TestStepsTable(t *testing.T) {
	out, _, err := runCmd(t, "steps")
	if err != nil {
		t.Fatalf("steps: %v", err)
	}
	for _, want := range []string{"Backend API", "API Endpoints", "myapp.com/optimized", "17 lines"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in:\n%s", want, out)
		}
	}
}

func TestRenderStep(t *testing.T) {
	out, _, err := runCmd(t, "render", "--step", "3", "--width", "100")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"API Endpoints", "localhost:3000/api/products", "System Console"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in render output", want)
		}
	}
}

func TestRenderUnknownStep(t *testing.T) {
	_, _, err := runCmd(t, "render", "--step", "9", "--width", "80")
	if !errors.Is(err, catalog.ErrUnknownStep) {
		t.Errorf("error = %v, want ErrUnknownStep", err)
	}
}

func TestRenderBrokenConfigWarns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, stderr, err := runCmd(t, "--config", path, "render", "--step", "1", "--width", "100")
	if err != nil {
		t.Fatalf("render with broken config should fall back to defaults: %v", err)
	}
	if !strings.Contains(stderr, "warning") {
		t.Errorf("Expected a warning on stderr, got %q", stderr)
	}
	if !strings.Contains(out, "Project Initialization") {
		t.Error("Expected the step 1 mockup")
	}
}

func TestExportSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "step2.svg")
	if _, _, err := runCmd(t, "export", "svg", "--step", "2", "--out", path); err != nil {
		t.Fatalf("export svg: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Contains(data, []byte("React Dashboard")) || !bytes.Contains(data, []byte("localhost:3000/dashboard")) {
		t.Error("svg missing template heading or URL")
	}
}

func TestExportAll(t *testing.T) {
	dir := t.TempDir()
	out, _, err := runCmd(t, "export", "png", "--all", "--out", dir)
	if err != nil {
		t.Fatalf("export png --all: %v", err)
	}
	if got := strings.Count(strings.TrimSpace(out), "\n") + 1; got != 6 {
		t.Errorf("listed %d files, want 6", got)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "step-*.png"))
	if len(matches) != 6 {
		t.Errorf("wrote %d files, want 6", len(matches))
	}
}

func TestExportFlagErrors(t *testing.T) {
	tests := [][]string{
		{"export", "svg", "--step", "2"},
		{"export", "svg", "--all", "--step", "2", "--out", "x"},
	}
	for _, args := range tests {
		if _, _, err := runCmd(t, args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestVersion(t *testing.T) {
	out, _, err := runCmd(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != "wt "+version.Version {
		t.Errorf("version output = %q", out)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	if _, _, err := runCmd(t, "bogus"); err == nil {
		t.Error("Expected an error for an unknown command")
	}
}

func TestCommandTree(t *testing.T) {
	root := newRootCmd()
	want := map[string]bool{"steps": false, "render": false, "export": false, "version": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}

	var exportCmd *cobra.Command
	for _, c := range root.Commands() {
		if c.Name() == "export" {
			exportCmd = c
		}
	}
	if exportCmd == nil || len(exportCmd.Commands()) != 2 {
		t.Error("export should offer svg and png")
	}
}
