package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.StartCategory() != "all" {
		t.Errorf("default StartCategory() = %q, want all", cfg.StartCategory())
	}
	if !cfg.BadgesEnabled() {
		t.Error("expected badges enabled by default")
	}
}

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StartCategory() != "all" {
		t.Errorf("StartCategory() = %q, want all", cfg.StartCategory())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected defaults written to %s: %v", path, err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
corpus: /tmp/corpus.yaml
category: reasoning
show_badges: false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Corpus != "/tmp/corpus.yaml" {
		t.Errorf("Corpus = %q", cfg.Corpus)
	}
	if cfg.StartCategory() != "reasoning" {
		t.Errorf("StartCategory() = %q, want reasoning", cfg.StartCategory())
	}
	if cfg.BadgesEnabled() {
		t.Error("expected badges disabled")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("corpus: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidateCorpusURL(t *testing.T) {
	tests := []struct {
		corpus  string
		wantErr bool
	}{
		{"", false},
		{"/some/path.yaml", false},
		{"https://example.com/corpus.yaml", false},
		{"http://example.com/corpus.yaml", false},
		{"ftp://example.com/corpus.yaml", true},
	}
	for _, tt := range tests {
		err := validate(&Config{Corpus: tt.corpus})
		if tt.wantErr && err == nil {
			t.Errorf("validate(corpus=%q): expected error", tt.corpus)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("validate(corpus=%q): unexpected error: %v", tt.corpus, err)
		}
	}
}
