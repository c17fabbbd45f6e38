package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidatesWithPaths(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err == nil {
		t.Fatal("defaults without table paths should not validate")
	}
	cfg.Paths.Alignments = "/tmp/a.ctm"
	cfg.Paths.Dictionary = "/tmp/d.txt"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phoneclip.toml")
	data := `
[paths]
alignments = "align.ctm"
dictionary = "/data/lexicon.txt"

[matching]
silence = " sp "

[batch]
workers = 8

[logging]
format = "JSON"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !filepath.IsAbs(cfg.Paths.Alignments) {
		t.Errorf("Alignments = %s, want absolute path", cfg.Paths.Alignments)
	}
	if cfg.Paths.Dictionary != "/data/lexicon.txt" {
		t.Errorf("Dictionary = %s", cfg.Paths.Dictionary)
	}
	if cfg.Matching.Silence != "sp" {
		t.Errorf("Silence = %q, want sp", cfg.Matching.Silence)
	}
	if cfg.Batch.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Batch.Workers)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "info" {
		t.Errorf("Logging = %+v, want json/info", cfg.Logging)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate error: %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phoneclip.yaml")
	data := "paths:\n  alignments: /a.ctm\n  dictionary: /d.txt\nmatching:\n  strict_order: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.Matching.StrictOrder {
		t.Error("StrictOrder = false, want true")
	}
	if cfg.Matching.Silence != "SIL" {
		t.Errorf("Silence = %q, want default SIL", cfg.Matching.Silence)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[matching]\nsilense = \"SIL\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Batch.Workers = 0
	cfg.Logging.Level = "loud"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"paths.alignments", "batch.workers", "logging.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestCreateSampleLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample error: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load sample error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("sample config does not validate: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/clips")
	if err != nil {
		t.Fatalf("ExpandPath error: %v", err)
	}
	if got != filepath.Join(home, "clips") {
		t.Errorf("ExpandPath = %s, want %s", got, filepath.Join(home, "clips"))
	}
	if got, _ := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want empty", got)
	}
}
