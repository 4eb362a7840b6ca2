package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/emojidrop/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunHeadless(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "awake.svg")
	out, err := execute(t, "run", "--seed", "3", "--frames", "120", "--text", "hi", "--plot", plot)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, want := range []string{"particles: 2", "activity:", "settle_frame:", "awake bodies"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	data, err := os.ReadFile(plot)
	if err != nil {
		t.Fatalf("plot not written: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("expected an SVG plot")
	}
}

func TestRunDefaultText(t *testing.T) {
	out, err := execute(t, "run", "--seed", "1", "--frames", "100")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "particles: 9") {
		t.Errorf("expected one particle per default key, got:\n%s", out)
	}
}

func TestExportSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.svg")
	out, err := execute(t, "export", "--seed", "5", "--frames", "30", "--text", "ok", "-o", path)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "2 particles") {
		t.Errorf("unexpected output %q", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "<text"); n != 2 {
		t.Errorf("expected 2 glyphs and no hint, got %d text elements", n)
	}
}

func TestConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(path, []byte("seed: 11\nfps: 30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	saved := filepath.Join(dir, "saved.yaml")
	out, err := execute(t, "config", "--preset", "moon", "--config", path, "--fps", "50", "--write", saved)
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	cfg, err := config.Load(saved)
	if err != nil {
		t.Fatalf("load saved: %v", err)
	}
	if cfg.Seed != 11 {
		t.Errorf("file should set the seed, got %d", cfg.Seed)
	}
	if cfg.FPS != 50 {
		t.Errorf("flag should win over the file, got fps %d", cfg.FPS)
	}
	if cfg.Physics.Gravity != 0.06 {
		t.Errorf("preset physics should survive the file, got gravity %f", cfg.Physics.Gravity)
	}
	if !strings.Contains(out, "gravity: 0.06") {
		t.Errorf("expected yaml output, got:\n%s", out)
	}
}

func TestConfigErrors(t *testing.T) {
	if _, err := execute(t, "config", "--preset", "nope"); err == nil {
		t.Error("expected an unknown preset error")
	}
	if _, err := execute(t, "config", "--fps", "0"); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
	if _, err := execute(t, "config", "--theme", "plaid"); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for theme, got %v", err)
	}
}

func TestGlyphs(t *testing.T) {
	out, err := execute(t, "glyphs", "A")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "A (letter): ") {
		t.Errorf("unexpected output %q", out)
	}

	out, _ = execute(t, "glyphs", "space")
	if !strings.Contains(out, "(space): ☁️") {
		t.Errorf("unexpected output %q", out)
	}

	out, _ = execute(t, "glyphs")
	if !strings.HasPrefix(out, "tap: ") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestPresets(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range config.ListPresets() {
		if !strings.Contains(out, name) {
			t.Errorf("expected preset %s in output", name)
		}
	}
}

func TestBench(t *testing.T) {
	out, err := execute(t, "bench", "--frames", "10", "--count", "5,10", "--seed", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "FRAMES/SEC") {
		t.Errorf("expected a table header, got:\n%s", out)
	}
	if lines := strings.Count(strings.TrimSpace(out), "\n"); lines != 4 {
		t.Errorf("expected title, blank, header and two rows, got:\n%s", out)
	}
}

func TestSweep(t *testing.T) {
	out, err := execute(t, "sweep", "--runs", "3", "--seed", "100", "--frames", "400", "--text", "ab")
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	for _, seed := range []string{"100", "101", "102"} {
		if !strings.Contains(out, "\n"+seed+" ") {
			t.Errorf("expected a row for seed %s in:\n%s", seed, out)
		}
	}
	if !strings.Contains(out, "/3 settled") {
		t.Errorf("expected a summary line, got:\n%s", out)
	}
}

func TestSweepAcrossZeroReplays(t *testing.T) {
	rows := func() string {
		out, err := execute(t, "sweep", "--runs", "3", "--seed=-1", "--frames", "300", "--text", "abc")
		if err != nil {
			t.Fatalf("sweep: %v", err)
		}
		return out[:strings.LastIndex(out, "\n\n")]
	}

	first, second := rows(), rows()
	if !strings.Contains(first, "\n0 ") {
		t.Errorf("expected a row for seed 0 in:\n%s", first)
	}
	if first != second {
		t.Errorf("sweep is not reproducible:\n%s\nvs\n%s", first, second)
	}
}
