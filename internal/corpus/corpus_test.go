package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if s.Len() == 0 {
		t.Error("expected built-in corpus to have prompts")
	}
	if m := s.CategoryMeta("reasoning"); m.Label == "" {
		t.Error("expected built-in corpus to define reasoning metadata")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.yaml")
	data := `
prompts:
  - id: a
    content: first prompt
    categories: [alpha]
    engagement: high
  - id: b
    content: second prompt
    categories: [beta]
categories:
  alpha:
    label: Alpha
    style: blue
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 prompts, got %d", s.Len())
	}
	items := s.Items()
	if items[0].ID != "a" || items[1].ID != "b" {
		t.Errorf("corpus order not preserved: %s, %s", items[0].ID, items[1].ID)
	}
	if items[0].Engagement != EngagementHigh {
		t.Errorf("expected high engagement, got %s", items[0].Engagement)
	}
	if items[1].Engagement != EngagementLow {
		t.Errorf("absent engagement should fall back to low, got %s", items[1].Engagement)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing corpus file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     document
		wantErr bool
	}{
		{
			name: "valid",
			doc: document{Prompts: []Item{
				{ID: "a", Content: "x", Categories: []string{"c"}},
			}},
		},
		{
			name: "missing id",
			doc: document{Prompts: []Item{
				{Content: "x", Categories: []string{"c"}},
			}},
			wantErr: true,
		},
		{
			name: "duplicate id",
			doc: document{Prompts: []Item{
				{ID: "a", Content: "x", Categories: []string{"c"}},
				{ID: "a", Content: "y", Categories: []string{"c"}},
			}},
			wantErr: true,
		},
		{
			name: "empty content",
			doc: document{Prompts: []Item{
				{ID: "a", Content: "   ", Categories: []string{"c"}},
			}},
			wantErr: true,
		},
		{
			name: "no categories",
			doc: document{Prompts: []Item{
				{ID: "a", Content: "x"},
			}},
			wantErr: true,
		},
		{
			name: "bad source scheme",
			doc: document{Prompts: []Item{
				{ID: "a", Content: "x", Categories: []string{"c"}, Source: "ftp://example.com"},
			}},
			wantErr: true,
		},
		{
			name: "unknown engagement is not an error",
			doc: document{Prompts: []Item{
				{ID: "a", Content: "x", Categories: []string{"c"}, Engagement: "viral"},
			}},
		},
	}

	for _, tt := range tests {
		err := validate(&tt.doc)
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
	}
}

func TestParseEngagement(t *testing.T) {
	tests := []struct {
		input string
		want  Engagement
	}{
		{"high", EngagementHigh},
		{"HIGH", EngagementHigh},
		{" medium ", EngagementMedium},
		{"low", EngagementLow},
		{"viral", EngagementLow},
		{"", EngagementLow},
	}
	for _, tt := range tests {
		if got := ParseEngagement(tt.input); got != tt.want {
			t.Errorf("ParseEngagement(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCategoryMetaFallback(t *testing.T) {
	s := New(nil, map[string]Meta{
		"reasoning": {Label: "Reasoning", Style: "blue"},
		"general":   {Label: "General", Style: "neutral"},
	})

	if m := s.CategoryMeta("reasoning"); m.Label != "Reasoning" {
		t.Errorf("CategoryMeta(reasoning).Label = %q, want Reasoning", m.Label)
	}
	if m := s.CategoryMeta("unknown-key"); m.Label != "General" {
		t.Errorf("CategoryMeta(unknown-key) should fall back to general, got %q", m.Label)
	}
}

func TestCategoryMetaFallbackWithoutGeneralEntry(t *testing.T) {
	s := New(nil, nil)
	m := s.CategoryMeta("anything")
	if m.Label == "" || m.Style == "" {
		t.Errorf("CategoryMeta must never return an empty entry, got %+v", m)
	}
}
