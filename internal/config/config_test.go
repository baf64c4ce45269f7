package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tangzhangming/lumo/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	if cfg.Repl.Prompt != "> " {
		t.Errorf("prompt = %q, want %q", cfg.Repl.Prompt, "> ")
	}
	if cfg.Lang != "" {
		t.Errorf("lang = %q, want empty", cfg.Lang)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lumo.toml")
	content := "lang = \"zh\"\n\n[repl]\nprompt = \"lumo> \"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Lang != "zh" {
		t.Errorf("lang = %q, want %q", cfg.Lang, "zh")
	}
	if cfg.Repl.Prompt != "lumo> " {
		t.Errorf("prompt = %q, want %q", cfg.Repl.Prompt, "lumo> ")
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lumo.toml")
	if err := os.WriteFile(path, []byte("lang = \"en\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Repl.Prompt != "> " {
		t.Errorf("prompt = %q, want %q", cfg.Repl.Prompt, "> ")
	}
}

func TestFindAndLoadSearchesUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, "lumo.toml")
	if err := os.WriteFile(path, []byte("[repl]\nprompt = \">> \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, found, err := config.FindAndLoad(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != path {
		t.Errorf("found = %q, want %q", found, path)
	}
	if cfg.Repl.Prompt != ">> " {
		t.Errorf("prompt = %q, want %q", cfg.Repl.Prompt, ">> ")
	}
}

func TestFindAndLoadMissingReturnsDefaults(t *testing.T) {
	cfg, found, err := config.FindAndLoad(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != "" {
		t.Errorf("found = %q, want empty", found)
	}
	if cfg.Repl.Prompt != "> " {
		t.Errorf("prompt = %q, want %q", cfg.Repl.Prompt, "> ")
	}
}
